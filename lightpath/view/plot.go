package view

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jdginn/go-lightpath/lightpath"
)

var ErrNoFrontiers = errors.New("view: search finished no rounds")

// SaveFrontierChart writes a bar chart of the source and target frontier sizes
// after each search round. The format follows the file extension.
func SaveFrontierChart(path string, stats lightpath.Stats, width, height font.Length) error {
	if len(stats.SourceFrontier) == 0 {
		return ErrNoFrontiers
	}

	p := plot.New()
	p.Title.Text = "Frontier size per round"
	p.X.Label.Text = "Round"
	p.Y.Label.Text = "Images"

	barWidth := vg.Points(12)
	source, err := plotter.NewBarChart(toValues(stats.SourceFrontier), barWidth)
	if err != nil {
		return fmt.Errorf("source bars: %w", err)
	}
	source.Color = sourceColor
	source.LineStyle.Width = 0
	source.Offset = -barWidth / 2

	target, err := plotter.NewBarChart(toValues(stats.TargetFrontier), barWidth)
	if err != nil {
		return fmt.Errorf("target bars: %w", err)
	}
	target.Color = targetColor
	target.LineStyle.Width = 0
	target.Offset = barWidth / 2

	p.Add(source, target)
	p.Legend.Add("source", source)
	p.Legend.Add("target", target)
	p.Legend.Top = true

	names := make([]string, len(stats.SourceFrontier))
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	p.NominalX(names...)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving frontier chart: %w", err)
	}
	return nil
}

func toValues(sizes []int) plotter.Values {
	v := make(plotter.Values, len(sizes))
	for i, n := range sizes {
		v[i] = float64(n)
	}
	return v
}
