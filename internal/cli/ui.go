package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("35") // Green - success
	colorCyan  = lipgloss.Color("36") // Teal - highlighted values

	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
)

// successMessage formats the end-of-run status line naming the output path.
func successMessage(path string) string {
	return styleSuccess.Render("✔") + " Generated " + styleHighlight.Render(path) + " in BlueMap format"
}
