package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"

	"github.com/jdginn/go-lightpath/interact"
	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/config"
	"github.com/jdginn/go-lightpath/lightpath/experiment"
	"github.com/jdginn/go-lightpath/lightpath/view"
)

var CLI struct {
	Debug bool `help:"log one debug record per search"`

	Solve    SolveCmd    `cmd:"" help:"Solve a puzzle and write its results to a run directory"`
	Render   RenderCmd   `cmd:"" help:"Solve a puzzle and draw it"`
	Browse   BrowseCmd   `cmd:"" help:"Solve a puzzle and browse the legs of its light path"`
	Batch    BatchCmd    `cmd:"" help:"Solve many puzzles concurrently"`
	Validate ValidateCmd `cmd:"" help:"Check a puzzle file without solving it"`
}

type globals struct {
	logger *slog.Logger
	// used for puzzles that set search.debug
	debugLogger *slog.Logger
}

func newGlobals(debug bool) globals {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return globals{
		logger:      slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		debugLogger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

// searchLogger picks the logger for one puzzle.
func (g globals) searchLogger(p *config.Puzzle) *slog.Logger {
	if p.Debug {
		return g.debugLogger
	}
	return g.logger
}

type solved struct {
	puzzle *config.Puzzle
	result lightpath.Result
	report lightpath.BeamReport
}

func (s solved) scene() view.Scene {
	return view.Scene{World: s.puzzle.World, Source: s.puzzle.Query.Source, Target: s.puzzle.Query.Target}
}

func (s solved) view() *view.View {
	return &view.View{
		Scene:  s.scene(),
		XSize:  s.puzzle.Render.Width,
		YSize:  s.puzzle.Render.Height,
		Margin: s.puzzle.Render.Margin,
	}
}

// solvePuzzle loads, builds and searches one puzzle file.
func solvePuzzle(ctx context.Context, path string, g globals) (solved, error) {
	cfg, err := config.LoadFromFile(path, config.DefaultLoadOptions)
	if err != nil {
		return solved{}, err
	}
	puzzle, err := cfg.Build()
	if err != nil {
		return solved{}, err
	}
	if puzzle.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, puzzle.Timeout)
		defer cancel()
	}
	opts := puzzle.Options
	opts.Logger = g.searchLogger(puzzle)

	res, err := lightpath.NewSolver(puzzle.World, opts).FindPath(ctx, puzzle.Query)
	if err != nil {
		return solved{}, fmt.Errorf("searching %s: %w", path, err)
	}
	return solved{
		puzzle: puzzle,
		result: res,
		report: lightpath.Analyze(res, puzzle.Query.Mirrors, puzzle.Reflectivity),
	}, nil
}

func describe(s solved) string {
	var b strings.Builder
	res := s.result
	if !res.Reachable {
		fmt.Fprintf(&b, "unreachable within %d reflections\n", s.puzzle.Query.MaxReflections)
	} else {
		fmt.Fprintf(&b, "reachable with %d reflections, length %.4f, gain %.2f dB\n", len(res.Mirrors), s.report.Length, s.report.GainDB)
		for i, p := range res.Path {
			fmt.Fprintf(&b, "  %d: (%.4f, %.4f)", i, p.X, p.Y)
			if i > 0 && i <= len(res.Mirrors) {
				bounce := s.report.Bounces[i-1]
				fmt.Fprintf(&b, " mirror %d, %.1f°, %.2f dB", bounce.Mirror, bounce.IncidenceDeg, bounce.LossDB)
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "searched %d rounds, %d images, %d connection checks in %s\n",
		res.Stats.Depth, res.Stats.NodesGenerated, res.Stats.ConnectionChecks, res.Stats.Elapsed)
	return b.String()
}

type SolveCmd struct {
	Config  string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	RunsDir string `name:"runs-dir" help:"where run directories are created" default:"runs"`
}

func (c SolveCmd) Run(g globals) error {
	s, err := solvePuzzle(context.Background(), c.Config, g)
	if err != nil {
		return err
	}
	fmt.Print(describe(s))

	run, err := experiment.CreateRunDirectory(c.RunsDir)
	if err != nil {
		return err
	}
	if err := run.CopyConfigFile(c.Config); err != nil {
		return err
	}
	if err := view.SaveResultJSON(run.GetFilePath("result.json"), s.scene(), s.result, s.report); err != nil {
		return err
	}
	if err := view.SavePNG(run.GetFilePath("scene.png"), s.view().Draw(s.result, -1)); err != nil {
		return err
	}
	err = view.SaveFrontierChart(run.GetFilePath("frontiers.png"), s.result.Stats, 6*vg.Inch, 4*vg.Inch)
	if err != nil && !errors.Is(err, view.ErrNoFrontiers) {
		return err
	}
	fmt.Println("results written to", run.Path)
	return nil
}

type RenderCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	Out    string `arg:"" name:"out" help:"PNG file to write"`
	Leg    int    `name:"leg" help:"highlight this leg of the path" default:"-1"`
}

func (c RenderCmd) Run(g globals) error {
	s, err := solvePuzzle(context.Background(), c.Config, g)
	if err != nil {
		return err
	}
	return view.SavePNG(c.Out, s.view().Draw(s.result, c.Leg))
}

type BrowseCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	Out    string `name:"out" help:"PNG redrawn with the selected leg" default:"leg.png"`
}

func (c BrowseCmd) Run(g globals) error {
	s, err := solvePuzzle(context.Background(), c.Config, g)
	if err != nil {
		return err
	}
	return interact.Interact(s.view(), s.result, s.report, c.Out)
}

type BatchCmd struct {
	Configs  []string `arg:"" name:"configs" help:"puzzle files" type:"existingfile"`
	Parallel int      `name:"parallel" help:"puzzles solved at once" default:"4"`
}

func (c BatchCmd) Run(g globals) error {
	lines := make([]string, len(c.Configs))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(max(c.Parallel, 1))
	for i, path := range c.Configs {
		i, path := i, path
		eg.Go(func() error {
			start := time.Now()
			s, err := solvePuzzle(ctx, path, g)
			if err != nil {
				return err
			}
			g.logger.Info("solved", "config", path, "reachable", s.result.Reachable, "elapsed", time.Since(start))
			if s.result.Reachable {
				lines[i] = fmt.Sprintf("%s: reachable, %d reflections, length %.4f", path, len(s.result.Mirrors), s.report.Length)
			} else {
				lines[i] = fmt.Sprintf("%s: unreachable", path)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true, MergeFiles: true})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Print(config.FormatValidationErrors(errs))
		return fmt.Errorf("%s: %d validation errors", c.Config, len(errs))
	}
	fmt.Println(c.Config, "is valid")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(newGlobals(CLI.Debug))
	if err != nil {
		log.Fatal(err)
	}
}
