package config

import (
	"os"
	"path/filepath"
)

// PathResolver handles resolution of relative paths in the config
type PathResolver struct {
	baseDir string
}

func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{baseDir: baseDir}
}

// ResolvePath joins relative paths onto the base directory
func (pr *PathResolver) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(pr.baseDir, path)
}

// FileExists checks if a file exists and is readable
func (pr *PathResolver) FileExists(path string) bool {
	_, err := os.Stat(pr.ResolvePath(path))
	return err == nil
}
