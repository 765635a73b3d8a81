package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// DefaultLoadOptions resolves, merges and validates.
var DefaultLoadOptions = LoadOptions{
	ValidateImmediately: true,
	ResolvePaths:        true,
	MergeFiles:          true,
}

// LoadFromFile loads a PuzzleConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*PuzzleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &PuzzleConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		config.ResolvePaths(NewPathResolver(filepath.Dir(path)))
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, &InvalidError{Errors: errs}
		}
	}

	return config, nil
}

// SaveToFile stamps metadata and writes config as YAML
func SaveToFile(config *PuzzleConfig, path string) error {
	collector := NewMetadataCollector()
	collector.PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths makes every file reference in the config absolute
func (c *PuzzleConfig) ResolvePaths(resolver *PathResolver) {
	if c.Scene.Mirrors.FromFile != "" {
		c.Scene.Mirrors.FromFile = resolver.ResolvePath(c.Scene.Mirrors.FromFile)
	}
	if c.Scene.Obstacles.Mesh != nil {
		c.Scene.Obstacles.Mesh.Path = resolver.ResolvePath(c.Scene.Obstacles.Mesh.Path)
	}
}
