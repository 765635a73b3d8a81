package view

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jdginn/go-lightpath/lightpath"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name,omitempty"`
}

type LineJSON struct {
	A     PointJSON `json:"a"`
	B     PointJSON `json:"b"`
	Color string    `json:"color,omitempty"`
}

type ZoneJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type BounceJSON struct {
	Position     PointJSON `json:"position"`
	Mirror       int       `json:"mirror"`
	IncidenceDeg float64   `json:"incidenceDeg"`
	LossDB       float64   `json:"lossDb"`
}

type BeamJSON struct {
	Points    []PointJSON  `json:"points"`
	Bounces   []BounceJSON `json:"bounces"`
	Length    float64      `json:"length"`
	GainDB    float64      `json:"gainDb"`
	Color     string       `json:"color,omitempty"`
	Thickness float64      `json:"thickness,omitempty"`
}

type StatsJSON struct {
	ElapsedMS        float64 `json:"elapsedMs"`
	NodesGenerated   int     `json:"nodesGenerated"`
	ConnectionChecks int     `json:"connectionChecks"`
	Depth            int     `json:"depth"`
	SourceFrontier   []int   `json:"sourceFrontier,omitempty"`
	TargetFrontier   []int   `json:"targetFrontier,omitempty"`
}

type ResultJSON struct {
	Reachable bool       `json:"reachable"`
	Source    *PointJSON `json:"source,omitempty"`
	Target    *PointJSON `json:"target,omitempty"`
	Beam      *BeamJSON  `json:"beam,omitempty"`
	Mirrors   []LineJSON `json:"mirrors,omitempty"`
	Walls     []LineJSON `json:"walls,omitempty"`
	Zones     []ZoneJSON `json:"zones,omitempty"`
	Stats     StatsJSON  `json:"stats"`
}

func PointToJSON(p lightpath.Point) PointJSON {
	return PointJSON{X: p.X, Y: p.Y}
}

func namedPoint(p *lightpath.Point, name string) *PointJSON {
	if p == nil {
		return nil
	}
	j := PointToJSON(*p)
	j.Name = name
	return &j
}

// ResultToJSON converts a search result, its beam report and the scene it ran
// in to the annotation schema.
func ResultToJSON(scene Scene, res lightpath.Result, report lightpath.BeamReport) ResultJSON {
	out := ResultJSON{
		Reachable: res.Reachable,
		Source:    namedPoint(scene.Source, "source"),
		Target:    namedPoint(scene.Target, "target"),
		Stats: StatsJSON{
			ElapsedMS:        float64(res.Stats.Elapsed.Microseconds()) / 1000,
			NodesGenerated:   res.Stats.NodesGenerated,
			ConnectionChecks: res.Stats.ConnectionChecks,
			Depth:            res.Stats.Depth,
			SourceFrontier:   res.Stats.SourceFrontier,
			TargetFrontier:   res.Stats.TargetFrontier,
		},
	}

	if res.Reachable {
		beam := &BeamJSON{
			Points:  make([]PointJSON, 0, len(res.Path)),
			Bounces: make([]BounceJSON, 0, len(report.Bounces)),
			Length:  report.Length,
			GainDB:  report.GainDB,
			Color:   "#F0A020",
		}
		for _, p := range res.Path {
			beam.Points = append(beam.Points, PointToJSON(p))
		}
		for _, b := range report.Bounces {
			beam.Bounces = append(beam.Bounces, BounceJSON{
				Position:     PointToJSON(b.Position),
				Mirror:       b.Mirror,
				IncidenceDeg: b.IncidenceDeg,
				LossDB:       b.LossDB,
			})
		}
		out.Beam = beam
	}

	if w := scene.World; w != nil {
		out.Mirrors = linesToJSON(w.Mirrors, "#1F6FD0")
		for _, s := range w.Segments {
			out.Walls = append(out.Walls, LineJSON{A: PointToJSON(s.A), B: PointToJSON(s.B)})
		}
		for _, c := range w.Circles {
			out.Zones = append(out.Zones, ZoneJSON{X: c.Center.X, Y: c.Center.Y, Radius: c.Radius})
		}
	}
	return out
}

func linesToJSON(mirrors []lightpath.Mirror, color string) []LineJSON {
	lines := make([]LineJSON, 0, len(mirrors))
	for _, m := range mirrors {
		lines = append(lines, LineJSON{A: PointToJSON(m.A), B: PointToJSON(m.B), Color: color})
	}
	return lines
}

// SaveResultJSON writes the annotations of one search to filename
func SaveResultJSON(filename string, scene Scene, res lightpath.Result, report lightpath.BeamReport) error {
	data, err := json.MarshalIndent(ResultToJSON(scene, res, report), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
