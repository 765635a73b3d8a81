package interact

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/view"
	"github.com/jdginn/go-lightpath/lightpath/world"
)

func bounceResult() (lightpath.Result, []lightpath.Mirror) {
	mirrors := []lightpath.Mirror{{A: lightpath.P(0, 2), B: lightpath.P(4, 2)}}
	return lightpath.Result{
		Reachable: true,
		Path:      []lightpath.Point{lightpath.P(0, 0), lightpath.P(2, 2), lightpath.P(4, 0)},
		Mirrors:   []int{0},
	}, mirrors
}

func TestLegItems(t *testing.T) {
	res, mirrors := bounceResult()
	report := lightpath.Analyze(res, mirrors, lightpath.Reflectivity{})
	items := legItems(res, report)
	require.Len(t, items, 2)

	first := items[0].(item)
	assert.Equal(t, 0, first.mirror)
	assert.Contains(t, first.Description(), "mirror 0 at 45.0°")

	last := items[1].(item)
	assert.Equal(t, -1, last.mirror)
	assert.Contains(t, last.Description(), "reaches target")
	assert.Equal(t, last.Title(), last.FilterValue())

	assert.Empty(t, legItems(lightpath.Result{}, lightpath.BeamReport{}))
}

func TestUpdateRendersSelection(t *testing.T) {
	res, mirrors := bounceResult()
	w := world.New()
	w.SetMirrors(mirrors)
	source, target := res.Path[0], res.Path[2]
	v := &view.View{Scene: view.Scene{World: w, Source: &source, Target: &target}, XSize: 80, YSize: 60}

	out := filepath.Join(t.TempDir(), "leg.png")
	m := newModel(v, res, lightpath.Analyze(res, mirrors, lightpath.Reflectivity{}), out)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated := next.(model)
	assert.NoError(t, updated.err)
	assert.Equal(t, 0, updated.rendered)
	_, err := os.Stat(out)
	assert.NoError(t, err)

	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestInteractUnreachable(t *testing.T) {
	assert.Error(t, Interact(&view.View{}, lightpath.Result{}, lightpath.BeamReport{}, ""))
}
