package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeMirrors appends the mirrors listed in FromFile, a JSON array of mirror
// specs, after the inline ones. Mirror indices in search results follow this order.
func (m *Mirrors) MergeMirrors() error {
	if m.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(m.FromFile)
	if err != nil {
		return fmt.Errorf("reading mirrors file: %w", err)
	}

	var fileMirrors []MirrorSpec
	if err := json.Unmarshal(data, &fileMirrors); err != nil {
		return fmt.Errorf("parsing mirrors file: %w", err)
	}

	m.Inline = append(m.Inline, fileMirrors...)
	// merged once; a second call must not duplicate
	m.FromFile = ""
	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *PuzzleConfig) LoadAndMerge() error {
	if err := c.Scene.Mirrors.MergeMirrors(); err != nil {
		return fmt.Errorf("merging mirrors: %w", err)
	}
	return nil
}
