// Package cli implements the markergen command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. The main
// command is generate, which fetches the station, line, and river datasets,
// builds the marker document, and writes the BlueMap marker config file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/markergen/pkg/buildinfo"
)

// appName is the application name used for the command and display.
const appName = "markergen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Markergen turns transit datasets into BlueMap marker configs",
		Long:         `Markergen fetches station, line, and river datasets as JSON and writes them out as a BlueMap marker configuration file for 3D map rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.completionCommand())

	return root
}
