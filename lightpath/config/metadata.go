package config

import (
	"os/exec"
	"strings"
	"time"
)

// MetadataCollector stamps configs with when and from which commit they were saved
type MetadataCollector struct {
	timestamp time.Time
	gitCommit string
}

// NewMetadataCollector records the current time. Outside a git checkout the
// commit is left empty.
func NewMetadataCollector() *MetadataCollector {
	commit, _ := getCurrentGitCommit()
	return &MetadataCollector{
		timestamp: time.Now().UTC(),
		gitCommit: commit,
	}
}

func getCurrentGitCommit() (string, error) {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (mc *MetadataCollector) PopulateMetadata(config *PuzzleConfig) {
	config.Metadata.Timestamp = mc.timestamp.Format("2006-01-02 15:04:05")
	config.Metadata.GitCommit = mc.gitCommit
}
