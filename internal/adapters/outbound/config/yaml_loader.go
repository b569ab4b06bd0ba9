package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Figglewatts/sanity/internal/domain"
)

// DefaultFileName is the config file looked up inside the target directory
// when no -c flag is given.
const DefaultFileName = ".sanity.yaml"

// YAMLLoader implements domain.ConfigLoader by reading a YAML config file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and validates the config file at path. A relative checker_dir
// is resolved against the config file's directory, so a config can travel
// with the checkers it references.
func (l *YAMLLoader) Load(path string) (domain.RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RunConfig{}, fmt.Errorf("opening config file: %w", err)
	}

	var cfg domain.RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	if !filepath.IsAbs(cfg.CheckerDir) {
		cfg.CheckerDir = filepath.Join(filepath.Dir(path), cfg.CheckerDir)
	}

	return cfg, nil
}
