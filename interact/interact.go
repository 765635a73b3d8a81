// Package interact is a terminal browser over the legs of a found light path.
package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/view"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	leg      int
	from, to lightpath.Point
	// mirror hit at the end of the leg, -1 for the target
	mirror int
	bounce *lightpath.Bounce
}

func (i item) Title() string {
	return fmt.Sprintf("leg %d: (%.3f, %.3f) -> (%.3f, %.3f)", i.leg, i.from.X, i.from.Y, i.to.X, i.to.Y)
}

func (i item) Description() string {
	length := r2.Norm(r2.Sub(i.to, i.from))
	if i.bounce == nil {
		return fmt.Sprintf("%.3f long, reaches target", length)
	}
	return fmt.Sprintf("%.3f long, mirror %d at %.1f° (%.2f dB)", length, i.mirror, i.bounce.IncidenceDeg, i.bounce.LossDB)
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list     list.Model
	view     *view.View
	result   lightpath.Result
	out      string
	rendered int
	err      error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.render()
	return m, cmd
}

// render redraws the scene with the selected leg highlighted when the
// selection changed.
func (m *model) render() {
	selected, ok := m.list.SelectedItem().(item)
	if !ok || selected.leg == m.rendered || m.out == "" {
		return
	}
	m.rendered = selected.leg
	m.err = view.SavePNG(m.out, m.view.Draw(m.result, selected.leg))
}

func (m model) View() string {
	s := m.list.View()
	if m.err != nil {
		s += "\n" + m.err.Error()
	}
	return docStyle.Render(s)
}

func legItems(res lightpath.Result, report lightpath.BeamReport) []list.Item {
	if !res.Reachable {
		return nil
	}
	items := make([]list.Item, 0, len(res.Path)-1)
	for i := 0; i < len(res.Path)-1; i++ {
		it := item{leg: i, from: res.Path[i], to: res.Path[i+1], mirror: -1}
		if i < len(res.Mirrors) {
			it.mirror = res.Mirrors[i]
		}
		if i < len(report.Bounces) {
			it.bounce = &report.Bounces[i]
		}
		items = append(items, it)
	}
	return items
}

func newModel(v *view.View, res lightpath.Result, report lightpath.BeamReport, out string) model {
	m := model{
		list:     list.New(legItems(res, report), list.NewDefaultDelegate(), 0, 0),
		view:     v,
		result:   res,
		out:      out,
		rendered: -1,
	}
	m.list.Title = fmt.Sprintf("%d reflections, %.3f long", len(res.Mirrors), report.Length)
	return m
}

// Interact lists the legs of res; moving the selection redraws the scene to
// out with that leg highlighted.
func Interact(v *view.View, res lightpath.Result, report lightpath.BeamReport, out string) error {
	if !res.Reachable {
		return fmt.Errorf("nothing to browse: target is not reachable")
	}
	p := tea.NewProgram(newModel(v, res, report, out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
