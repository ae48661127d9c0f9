// Package config reads the blossom.toml project file consumed by the CLI.
// The library itself takes explicit arguments and never reads a config.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// DefaultFile is the config file name looked up when none is given.
const DefaultFile = "blossom.toml"

type Config struct {
	// Entry is the schema file the import graph is resolved from.
	Entry string `toml:"entry"`
	// Targets lists the files to link; defaults to the entry file.
	Targets []string `toml:"targets"`
	// WarnDuplicates surfaces duplicate declaration names as warnings.
	WarnDuplicates bool `toml:"warn_duplicates"`
}

func Default() *Config {
	return &Config{WarnDuplicates: true}
}

// Load reads and validates a project config. Relative entry and target
// paths are resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Entry == "" {
		return nil, fmt.Errorf("%s: missing required key %q", path, "entry")
	}

	dir := filepath.Dir(path)
	cfg.Entry = resolve(dir, cfg.Entry)
	for i, t := range cfg.Targets {
		cfg.Targets[i] = resolve(dir, t)
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{cfg.Entry}
	}
	return cfg, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
