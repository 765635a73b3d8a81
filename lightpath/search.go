package lightpath

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrNodeBudget is returned when a search generates more image nodes than Options.MaxNodes allows.
var ErrNodeBudget = errors.New("lightpath: node budget exceeded")

// how many connection checks run between context polls
const cancelCheckInterval = 1024

// Options tune a Solver. The zero value searches without limits or logging.
type Options struct {
	// Abort the search once this many image nodes exist across both sides.
	// Zero means unlimited.
	MaxNodes int
	// Receives one debug record per search. May be nil.
	Logger *slog.Logger
}

// Query is one reachability question.
type Query struct {
	// Light source. Nil means the scene has none and nothing is reachable.
	Source *Point
	// Point the light must reach. Nil means nothing is reachable.
	Target *Point
	// Mirrors are copied at the start of the search; later changes to the
	// slice do not affect a search in progress.
	Mirrors []Mirror
	// Maximum number of reflections. Negative values are treated as 0.
	MaxReflections int
}

// Result of a search.
type Result struct {
	Reachable bool
	// Source, each reflection point in travel order, then target. Empty when unreachable.
	Path []Point
	// Index into Query.Mirrors of the mirror hit at each interior point of Path
	Mirrors []int
	Stats   Stats
}

// Solver runs bidirectional method-of-images searches against one occlusion world.
//
// A Solver reuses scratch buffers between searches and must not be shared
// between goroutines. Nothing semantic carries over from one search to the next.
type Solver struct {
	occ  Occluder
	opts Options

	geos         []mirrorGeo
	poolS, poolT arena
	frontS       []int
	frontT       []int
	next         []int
	seen         map[dedupKey]struct{}
	seqA, seqB   []int
	combined     []int
	hitsReverse  []Point
	path         []Point
}

func NewSolver(occ Occluder, opts Options) *Solver {
	if occ == nil {
		occ = Open
	}
	return &Solver{
		occ:  occ,
		opts: opts,
		seen: make(map[dedupKey]struct{}, 256),
	}
}

// FindPath decides whether light from q.Source reaches q.Target after at most
// q.MaxReflections mirror bounces without crossing an obstacle, and returns
// the first valid path found.
//
// The search expands virtual images from both ends one reflection layer at a
// time, always growing the smaller frontier first, and tries to join each
// freshly grown layer to the other side's current layer. Only the current
// layer of each side is kept. Joins whose combined depth would exceed
// MaxReflections are skipped, so a returned path never has more bounces than
// asked for.
//
// An error is returned only when ctx is done or the node budget runs out; the
// result is then unreachable.
func (s *Solver) FindPath(ctx context.Context, q Query) (Result, error) {
	start := time.Now()
	var stats Stats

	done := func(outcome string, ok bool, err error) (Result, error) {
		stats.Elapsed = time.Since(start)
		s.logResult(outcome, stats)
		if !ok {
			s.path = s.path[:0]
			return Result{Stats: stats}, err
		}
		res := Result{
			Reachable: true,
			Path:      append([]Point(nil), s.path...),
			Mirrors:   append([]int(nil), s.combined...),
			Stats:     stats,
		}
		verifyPath(res, s.geos)
		return res, nil
	}

	if q.Source == nil || q.Target == nil || !finite(*q.Source) || !finite(*q.Target) {
		return done("no_endpoint", false, nil)
	}
	source, target := *q.Source, *q.Target
	maxDepth := max(q.MaxReflections, 0)

	s.geos = buildMirrorGeometries(q.Mirrors, s.geos)
	s.poolS.reset(source)
	s.poolT.reset(target)
	s.frontS = append(s.frontS[:0], 0)
	s.frontT = append(s.frontT[:0], 0)
	stats.NodesGenerated = 2

	if !s.occ.IsBlocked(source, target, MaskObstacles) {
		s.combined = s.combined[:0]
		if s.validateAndBuild(source, target, source, s.combined) {
			return done("direct", true, nil)
		}
	}

	// depth of the current frontier on each side
	depthS, depthT := 0, 0
	for depth := 1; depth <= maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return done("cancelled", false, err)
		}
		stats.Depth = depth
		sourceFirst := len(s.frontS) <= len(s.frontT)
		for pass := 0; pass < 2; pass++ {
			// any join made from here on would exceed maxDepth reflections
			if depthS+depthT+1 > maxDepth {
				break
			}
			if sourceFirst == (pass == 0) {
				s.next = expandOneLayer(s.frontS, s.geos, &s.poolS, s.seen, s.next)
				stats.NodesGenerated += len(s.next)
				// an empty layer stays empty, and joins against it test nothing
				if len(s.next) == 0 {
					return done("unreachable", false, nil)
				}
				if s.overBudget(stats) {
					return done("budget", false, ErrNodeBudget)
				}
				ok, err := s.tryConnectLayers(ctx, s.next, s.frontT, source, target, &stats)
				if err != nil {
					return done("cancelled", false, err)
				}
				if ok {
					return done("connected", true, nil)
				}
				s.frontS, s.next = s.next, s.frontS
				depthS++
			} else {
				s.next = expandOneLayer(s.frontT, s.geos, &s.poolT, s.seen, s.next)
				stats.NodesGenerated += len(s.next)
				// an empty layer stays empty, and joins against it test nothing
				if len(s.next) == 0 {
					return done("unreachable", false, nil)
				}
				if s.overBudget(stats) {
					return done("budget", false, ErrNodeBudget)
				}
				ok, err := s.tryConnectLayers(ctx, s.frontS, s.next, source, target, &stats)
				if err != nil {
					return done("cancelled", false, err)
				}
				if ok {
					return done("connected", true, nil)
				}
				s.frontT, s.next = s.next, s.frontT
				depthT++
			}
		}
		stats.SourceFrontier = append(stats.SourceFrontier, len(s.frontS))
		stats.TargetFrontier = append(stats.TargetFrontier, len(s.frontT))
		if depthS+depthT+1 > maxDepth {
			break
		}
	}
	return done("unreachable", false, nil)
}

func (s *Solver) overBudget(stats Stats) bool {
	return s.opts.MaxNodes > 0 && stats.NodesGenerated > s.opts.MaxNodes
}

// tryConnectLayers looks for a source-side node in sideA and a target-side node
// in sideB whose images see each other, and validates the mirror chain they
// imply. Pairs are tried in index order; the first valid path wins and is left
// in s.path and s.combined.
func (s *Solver) tryConnectLayers(ctx context.Context, sideA, sideB []int, source, target Point, stats *Stats) (bool, error) {
	for _, idxA := range sideA {
		nodeA := s.poolS.nodes[idxA]
		for _, idxB := range sideB {
			nodeB := s.poolT.nodes[idxB]
			stats.ConnectionChecks++
			if stats.ConnectionChecks%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return false, err
				}
			}

			if s.occ.IsBlocked(nodeA.pos, nodeB.pos, MaskObstacles) {
				continue
			}
			// the seam would bounce twice in a row off the same mirror
			if nodeA.mirror >= 0 && nodeA.mirror == nodeB.mirror {
				continue
			}

			s.seqA = s.poolS.sequence(idxA, s.seqA)
			s.seqB = s.poolT.sequence(idxB, s.seqB)

			virtual := nodeA.pos
			for k := len(s.seqB) - 1; k >= 0; k-- {
				virtual = reflectPoint(virtual, s.geos[s.seqB[k]])
			}

			s.combined = append(s.combined[:0], s.seqA...)
			for k := len(s.seqB) - 1; k >= 0; k-- {
				s.combined = append(s.combined, s.seqB[k])
			}

			if s.validateAndBuild(source, target, virtual, s.combined) {
				return true, nil
			}
		}
	}
	return false, nil
}
