package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/markergen/internal/config"
	"github.com/matzehuels/markergen/pkg/hocon"
	"github.com/matzehuels/markergen/pkg/marker"
	"github.com/matzehuels/markergen/pkg/source"
)

// fileHeader is the comment line written before the encoded document.
const fileHeader = "# BlueMap Marker Config\n"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string // output file path
	stationURI string // station dataset URI or path
	lineURI    string // line dataset URI or path
	riverURI   string // river dataset URI or path
	configPath string // optional TOML config file
}

// generateCommand creates the generate command, the tool's main operation.
//
// Precedence for every setting is: built-in default < config file < flag.
// Only flags the user actually set override the config file.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a BlueMap marker config from JSON datasets",
		Long: `Generate a BlueMap marker config from JSON datasets.

Each dataset URI may be an http(s) endpoint or a local file path. Datasets
that cannot be fetched or decoded are skipped with a warning; their marker
sets are simply left out of the output. The run only fails when the output
file cannot be written or an explicitly given config file cannot be parsed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "output file path")
	cmd.Flags().StringVar(&opts.stationURI, "station-uri", config.DefaultStationURI, "station dataset URI or path")
	cmd.Flags().StringVar(&opts.lineURI, "line-uri", config.DefaultLineURI, "line dataset URI or path")
	cmd.Flags().StringVar(&opts.riverURI, "river-uri", config.DefaultRiverURI, "river dataset URI or path")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file with output path and dataset URIs")

	return cmd
}

// runGenerate loads the three datasets, builds the marker document, and
// writes it to the output path.
func (c *CLI) runGenerate(ctx context.Context, cmd *cobra.Command, opts *generateOpts) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = opts.output
	}
	if cmd.Flags().Changed("station-uri") {
		cfg.StationURI = opts.stationURI
	}
	if cmd.Flags().Changed("line-uri") {
		cfg.LineURI = opts.lineURI
	}
	if cmd.Flags().Changed("river-uri") {
		cfg.RiverURI = opts.riverURI
	}

	p := newProgress(c.Logger)
	loader := source.New(c.Logger)

	stations := loader.Stations(ctx, cfg.StationURI)
	lines := loader.Lines(ctx, cfg.LineURI)
	rivers := loader.Rivers(ctx, cfg.RiverURI)
	c.Logger.Debug("datasets loaded",
		"stations", len(stations), "lines", len(lines), "rivers", len(rivers))

	doc := marker.BuildDocument(stations, lines, rivers)
	content := fileHeader + hocon.Encode(doc)

	if err := writeMarkerFile(cfg.Output, content); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	p.done(fmt.Sprintf("Generated %s", cfg.Output))
	fmt.Fprintln(cmd.OutOrStdout(), successMessage(cfg.Output))
	return nil
}

// writeMarkerFile writes content to path, creating parent directories as
// needed. The file is written to a temp sibling and renamed into place so
// the map renderer never observes a half-written config.
func writeMarkerFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
