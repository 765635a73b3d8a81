// Package experiment manages per-run output directories.
package experiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	RunsDir       = "runs"
	LatestSymlink = "latest"
)

type RunDir struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateRunDirectory creates a fresh directory under base (RunsDir when empty)
// and points base/latest at it.
func CreateRunDirectory(base string) (*RunDir, error) {
	if base == "" {
		base = RunsDir
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	now := time.Now().UTC()
	id := GenerateRunID(now)
	absPath, err := filepath.Abs(filepath.Join(base, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}
	// names can collide within the same second
	for i := 2; ; i++ {
		err = os.Mkdir(absPath, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) || i > 100 {
			return nil, fmt.Errorf("creating run directory: %w", err)
		}
		id = fmt.Sprintf("%s-%d", GenerateRunID(now), i)
		absPath = filepath.Join(filepath.Dir(absPath), id)
	}

	latestPath := filepath.Join(base, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		slog.Warn("failed to create latest symlink", "err", err)
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: now,
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the puzzle file into the run directory, keeping its name
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := os.WriteFile(r.GetFilePath(filepath.Base(srcPath)), content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
