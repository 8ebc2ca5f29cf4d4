package assets

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config describes a collider registry: where the mesh assets live and
// which file extensions are treated as meshes.
type Config struct {
	// Root is the directory holding the mesh assets. It is watched
	// recursively.
	Root string `toml:"root"`
	// Extensions lists the file extensions (with leading dot) loaded
	// as meshes.
	Extensions []string `toml:"extensions"`
}

// DefaultConfig returns a config rooted at the given directory that
// loads OBJ files.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:       root,
		Extensions: []string{".obj"},
	}
}

// LoadConfig reads a registry config from a TOML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse registry config %q: %w", path, err)
	}
	if config.Root == "" {
		return nil, fmt.Errorf("registry config %q: root is required", path)
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".obj"}
	}
	return config, nil
}
