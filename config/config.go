// Package config loads the small set of CLI-wide settings that don't belong
// on a single subcommand's flags: the default optimisation level, a frame
// rate, the default output format, and a color-intern table path. Only the
// optimisation level and the default format are read by the CLI; FrameRate
// and ColorTablePath are loaded but nothing reads them (interpretation
// always runs at ir.FPS, and no color table is dumped). Backed by
// gopkg.in/yaml.v3, the one YAML library present anywhere in the reference
// corpus.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted before the default path.
const EnvVar = "LEDCTRL_CONFIG"

// DefaultPath is read when EnvVar is unset.
const DefaultPath = "ledctrl.yaml"

// Config is the on-disk shape of ledctrl.yaml. Every field has a zero value
// that Default() fills in, so a partial or entirely absent file is not an
// error.
type Config struct {
	OptimisationLevel int    `yaml:"optimisation_level"`
	FrameRate         int    `yaml:"frame_rate"`
	DefaultFormat     string `yaml:"default_format"`
	ColorTablePath    string `yaml:"color_table_path"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		OptimisationLevel: 2,
		FrameRate:         50,
		DefaultFormat:     "binary",
	}
}

// Load reads $LEDCTRL_CONFIG, falling back to DefaultPath, merging whatever
// it finds over Default(). A missing file at either location is not an
// error; a malformed one is.
func Load() (Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		path = DefaultPath
	}
	return LoadFrom(path)
}

// LoadFrom reads and parses a specific config file path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
