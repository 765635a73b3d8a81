package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-lightpath/lightpath"
)

func TestLoadCorridor(t *testing.T) {
	cfg, err := LoadFromFile("testdata/corridor.yaml", DefaultLoadOptions)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(&[2]float64{1, 0}, cfg.Scene.Source)
	assert.Equal(1, cfg.Scene.MaxReflections)
	require.Len(t, cfg.Scene.Mirrors.Inline, 2, "file mirrors are appended")
	assert.NotNil(cfg.Scene.Mirrors.Inline[1].Placement)
	assert.Empty(cfg.Scene.Mirrors.FromFile)
	assert.Equal(map[float64]float64{0: -0.5, 90: -6}, cfg.Beam.Reflectivity)

	// merging twice does not duplicate
	require.NoError(t, cfg.LoadAndMerge())
	assert.Len(cfg.Scene.Mirrors.Inline, 2)
}

func TestBuildAndSolve(t *testing.T) {
	cfg, err := LoadFromFile("testdata/corridor.yaml", DefaultLoadOptions)
	require.NoError(t, err)
	puzzle, err := cfg.Build()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(250*time.Millisecond, puzzle.Timeout)
	assert.Equal(10000, puzzle.Options.MaxNodes)
	assert.True(puzzle.Debug)
	assert.Equal(640, puzzle.Render.Width)
	require.Len(t, puzzle.Query.Mirrors, 2)

	bottom := puzzle.Query.Mirrors[1]
	assert.InDelta(10, bottom.Length(), 1e-12)
	assert.InDelta(0, bottom.A.X+bottom.B.X-10, 1e-12, "centred on x=5")
	assert.InDelta(-1, bottom.A.Y, 1e-12)
	assert.InDelta(-1, bottom.B.Y, 1e-12)

	res, err := lightpath.NewSolver(puzzle.World, puzzle.Options).FindPath(context.Background(), puzzle.Query)
	require.NoError(t, err)
	assert.True(res.Reachable)
	assert.Equal([]int{0}, res.Mirrors)
	assert.Len(res.Path, 3)
}

func TestBuildDefaults(t *testing.T) {
	cfg := &PuzzleConfig{}
	puzzle, err := cfg.Build()
	require.NoError(t, err)
	assert.Nil(t, puzzle.Query.Source)
	assert.Nil(t, puzzle.Query.Target)
	assert.Equal(t, defaultRenderWidth, puzzle.Render.Width)
	assert.Equal(t, defaultRenderHeight, puzzle.Render.Height)
	assert.Zero(t, puzzle.Timeout)
	assert.False(t, puzzle.Debug)
}

func TestBuildMissingMesh(t *testing.T) {
	cfg := &PuzzleConfig{}
	cfg.Scene.Obstacles.Mesh = &MeshSpec{Path: "testdata/missing.3mf"}
	_, err := cfg.Build()
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	_, err := LoadFromFile("testdata/invalid.yaml", DefaultLoadOptions)
	var invalid *InvalidError
	require.True(t, errors.As(err, &invalid))

	fields := map[string]bool{}
	for _, e := range invalid.Errors {
		fields[e.Field] = true
	}
	for _, field := range []string{
		"scene.max_reflections",
		"scene.mirrors.0",
		"scene.mirrors.1",
		"scene.mirrors.2",
		"scene.obstacles.circles.0.radius",
		"search.timeout_ms",
		"beam.reflectivity.120",
		"beam.reflectivity.10",
	} {
		assert.True(t, fields[field], "missing error for %s", field)
	}

	msg := FormatValidationErrors(invalid.Errors)
	assert.Contains(t, msg, "SCENE:")
	assert.Contains(t, msg, "  - max_reflections: must be non-negative")
	assert.Contains(t, msg, "SEARCH:")
	assert.Equal(t, msg, invalid.Error())

	// loading without validation accepts the file
	_, err = LoadFromFile("testdata/invalid.yaml", LoadOptions{ResolvePaths: true})
	assert.NoError(t, err)
}

func TestFormatValidationErrorsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatValidationErrors(nil))
}

func TestPathResolver(t *testing.T) {
	r := NewPathResolver("/base")
	assert.Equal(t, "/base/a/b.json", r.ResolvePath("a/b.json"))
	assert.Equal(t, "/abs.json", r.ResolvePath("/abs.json"))
	assert.Equal(t, "", r.ResolvePath(""))
	assert.True(t, NewPathResolver("testdata").FileExists("corridor.yaml"))
	assert.False(t, NewPathResolver("testdata").FileExists("nope.yaml"))
}

func TestSaveToFile(t *testing.T) {
	cfg, err := LoadFromFile("testdata/corridor.yaml", DefaultLoadOptions)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveToFile(cfg, out))
	assert.NotEmpty(t, cfg.Metadata.Timestamp)

	_, err = os.Stat(out)
	require.NoError(t, err)

	again, err := LoadFromFile(out, DefaultLoadOptions)
	require.NoError(t, err)
	assert.Equal(t, cfg.Scene.Mirrors.Inline, again.Scene.Mirrors.Inline)
	assert.Equal(t, cfg.Metadata, again.Metadata)
}
