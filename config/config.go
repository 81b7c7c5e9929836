/*
Config - Persisted Settings
=============================

Config merges the teacher's two separate settings surfaces —
`constants.Table` (a JSON-loaded name-to-value map) and
`settings.Precision` (a package-level int with a validating setter) —
into one YAML-backed file, in keeping with this package's broader
ambient-settings role: precision, a history file name (stored and
saved, but not read by the history package, which always writes
~/.ucalc/history.json), the names bound to graph variables, and any
user-defined constants beyond
the built-in `pi, tau, e, i, inf, nan` set `evalctx.NewVariables`
already seeds.
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultGraphVars names the graph variables a freshly-created Config
// resolves identifiers against, mirroring evalctx's single-variable
// convention (`x`) used throughout the rest of this module's examples.
var DefaultGraphVars = []string{"x"}

// Config is the whole of ucalc's persisted, user-editable settings.
type Config struct {
	Precision   int                `yaml:"precision"`
	HistoryPath string             `yaml:"history_path"`
	GraphVars   []string           `yaml:"graph_vars"`
	Constants   map[string]float64 `yaml:"constants"`
}

// Default returns the settings a fresh install starts from: the
// teacher's own default precision of 6 significant digits, an empty
// constants table, and the single graph variable `x`.
func Default() *Config {
	return &Config{
		Precision:   6,
		HistoryPath: "history.json",
		GraphVars:   append([]string(nil), DefaultGraphVars...),
		Constants:   map[string]float64{},
	}
}

// Dir returns `~/.ucalc`, creating it if absent.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".ucalc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// Path returns the full path to config.yaml under Dir().
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads config.yaml, returning Default() unmodified if the file
// does not exist yet — a fresh install has nothing to load.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes c to config.yaml, creating ~/.ucalc if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SetPrecision validates and sets the display precision, matching the
// teacher's settings.Set bound of [0, 20].
func (c *Config) SetPrecision(p int) error {
	if p < 0 || p > 20 {
		return fmt.Errorf("precision must be between 0 and 20")
	}
	c.Precision = p
	return nil
}
