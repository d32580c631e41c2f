// Package config holds the markergen run configuration: the output path and
// one source URI per dataset. Values come from built-in defaults, optionally
// overridden by a TOML file, optionally overridden again by CLI flags.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Built-in defaults, used when neither a config file nor a flag provides a
// value.
const (
	DefaultOutput     = "config/maps/overworld_markers.conf"
	DefaultStationURI = "https://wupa.ydtw.net/api/stations"
	DefaultLineURI    = "https://wupa.ydtw.net/api/lines"
	DefaultRiverURI   = "https://wupa.ydtw.net/api/rivers"
)

// Config is a fully resolved run configuration. Every field is always set;
// loading fills absent keys with the defaults.
type Config struct {
	Output     string `toml:"output"`
	StationURI string `toml:"station_uri"`
	LineURI    string `toml:"line_uri"`
	RiverURI   string `toml:"river_uri"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Output:     DefaultOutput,
		StationURI: DefaultStationURI,
		LineURI:    DefaultLineURI,
		RiverURI:   DefaultRiverURI,
	}
}

// Load parses the TOML file at path on top of the defaults, so keys missing
// from the file keep their default values. A missing or malformed file is an
// error: a config file was requested explicitly, so silently falling back to
// defaults would hide a misconfiguration.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
