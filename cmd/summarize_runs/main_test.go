package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/view"
)

func TestSummarizeRoundTrip(t *testing.T) {
	source, target := lightpath.P(0, 0), lightpath.P(4, 0)
	mirrors := []lightpath.Mirror{{A: lightpath.P(0, 2), B: lightpath.P(4, 2)}}
	res := lightpath.Result{
		Reachable: true,
		Path:      []lightpath.Point{source, lightpath.P(2, 2), target},
		Mirrors:   []int{0},
	}
	report := lightpath.Analyze(res, mirrors, lightpath.Reflectivity{})
	scene := view.Scene{Source: &source, Target: &target}

	file := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, view.SaveResultJSON(file, scene, res, report))

	loaded, err := loadResult(file)
	require.NoError(t, err)
	s := summarize(file, loaded)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Reflections)
	assert.InDelta(t, report.Length-4, s.Detour, 1e-9)

	assert.Nil(t, summarize("x", view.ResultJSON{}))
}

func TestWriteSummariesSortsByDetour(t *testing.T) {
	var buf bytes.Buffer
	writeSummaries(&buf, []Summary{
		{File: "long", Detour: 3},
		{File: "short", Detour: 1},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "short:"))
	assert.True(t, strings.HasPrefix(lines[1], "long:"))
}

func TestLoadResultMissing(t *testing.T) {
	_, err := loadResult("missing.json")
	assert.Error(t, err)
}
