package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project settings file read from the root.
const ConfigFileName = "cpexpand.yaml"

// Config holds project-level defaults. Command-line flags override it.
type Config struct {
	Output      string   `yaml:"output"`
	Markers     *bool    `yaml:"markers"`
	IncludeDirs []string `yaml:"include_dirs"`
}

// LoadConfig reads ConfigFileName from root. A missing file yields an empty Config.
func LoadConfig(root string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// MarkersEnabled returns the configured marker setting, or fallback when unset.
func (c Config) MarkersEnabled(fallback bool) bool {
	if c.Markers == nil {
		return fallback
	}
	return *c.Markers
}
