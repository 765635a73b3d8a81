package config

import (
	"fmt"
	"time"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/meshslice"
	"github.com/jdginn/go-lightpath/lightpath/world"
)

const (
	defaultRenderWidth  = 1024
	defaultRenderHeight = 768
	defaultMeshScale    = 1000
)

// Puzzle is a config turned into something a Solver can run.
type Puzzle struct {
	World        *world.World
	Query        lightpath.Query
	Options      lightpath.Options
	Reflectivity lightpath.Reflectivity
	// Zero means no deadline
	Timeout time.Duration
	// Emit the per-search debug record regardless of the caller's log level
	Debug  bool
	Render Render
}

func point(p [2]float64) lightpath.Point {
	return lightpath.P(p[0], p[1])
}

func optionalPoint(p *[2]float64) *lightpath.Point {
	if p == nil {
		return nil
	}
	pt := point(*p)
	return &pt
}

// Mirror converts a spec into a mirror. Specs are assumed validated.
func (m MirrorSpec) Mirror() lightpath.Mirror {
	if m.Placement != nil {
		return lightpath.MirrorFromPlacement(point(m.Placement.At), point(m.Placement.Toward), m.Placement.Length)
	}
	if m.A == nil || m.B == nil {
		return lightpath.Mirror{}
	}
	return lightpath.Mirror{A: point(*m.A), B: point(*m.B)}
}

// Build assembles the occlusion world and query described by c, loading and
// slicing the obstacle mesh if one is configured.
func (c *PuzzleConfig) Build() (*Puzzle, error) {
	w := world.New()
	for _, circle := range c.Scene.Obstacles.Circles {
		w.AddCircle(point(circle.Center), circle.Radius)
	}
	for _, seg := range c.Scene.Obstacles.Segments {
		w.AddSegment(point(seg.A), point(seg.B))
	}
	if spec := c.Scene.Obstacles.Mesh; spec != nil {
		scale := spec.Scale
		if scale == 0 {
			scale = defaultMeshScale
		}
		mesh, err := meshslice.Load3MF(spec.Path, scale)
		if err != nil {
			return nil, fmt.Errorf("loading obstacle mesh: %w", err)
		}
		w.Segments = append(w.Segments, meshslice.HorizontalPlane(spec.SliceHeight).Segments(mesh)...)
	}

	mirrors := make([]lightpath.Mirror, 0, len(c.Scene.Mirrors.Inline))
	for _, spec := range c.Scene.Mirrors.Inline {
		mirrors = append(mirrors, spec.Mirror())
	}
	w.SetMirrors(mirrors)

	render := c.Render
	if render.Width == 0 {
		render.Width = defaultRenderWidth
	}
	if render.Height == 0 {
		render.Height = defaultRenderHeight
	}

	return &Puzzle{
		World: w,
		Query: lightpath.Query{
			Source:         optionalPoint(c.Scene.Source),
			Target:         optionalPoint(c.Scene.Target),
			Mirrors:        mirrors,
			MaxReflections: c.Scene.MaxReflections,
		},
		Options:      lightpath.Options{MaxNodes: c.Search.MaxNodes},
		Reflectivity: lightpath.NewReflectivity(c.Beam.Reflectivity),
		Timeout:      time.Duration(c.Search.TimeoutMS) * time.Millisecond,
		Debug:        c.Search.Debug,
		Render:       render,
	}, nil
}
