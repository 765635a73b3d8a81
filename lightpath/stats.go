package lightpath

import (
	"context"
	"log/slog"
	"time"
)

// Stats are diagnostic counters for one search. They never affect the outcome.
type Stats struct {
	Elapsed time.Duration
	// Image nodes created on both sides, including the two roots
	NodesGenerated int
	// Candidate pairs examined while joining frontiers
	ConnectionChecks int
	// Deepest reflection round started
	Depth int
	// Frontier sizes after each completed round
	SourceFrontier []int
	TargetFrontier []int
}

func (s *Solver) logResult(outcome string, stats Stats) {
	if s.opts.Logger == nil {
		return
	}
	s.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "lightpath search",
		slog.String("outcome", outcome),
		slog.Duration("elapsed", stats.Elapsed),
		slog.Int("depth", stats.Depth),
		slog.Int("nodes", stats.NodesGenerated),
		slog.Int("connection_checks", stats.ConnectionChecks),
	)
}
