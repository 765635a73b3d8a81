// Package world is the occlusion oracle for light path searches: a flat 2D
// scene of circular and straight obstacles plus the mirrors themselves.
package world

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-lightpath/lightpath"
)

// Circle is a round obstacle, such as an asteroid.
type Circle struct {
	Center lightpath.Point
	Radius float64
}

// Segment is a thin straight obstacle, such as a wall edge.
type Segment struct {
	A, B lightpath.Point
}

// World holds everything that can block light. Obstacles live on the
// lightpath.MaskObstacles layer and mirrors on lightpath.MaskMirrors.
type World struct {
	Circles  []Circle
	Segments []Segment
	Mirrors  []lightpath.Mirror
	// Length trimmed off each end of a queried leg, so the mirror a leg starts
	// or ends on does not count as blocking it. Zero uses lightpath.EPS_SHRINK.
	Shrink float64
}

func New() *World {
	return &World{}
}

func (w *World) AddCircle(center lightpath.Point, radius float64) {
	w.Circles = append(w.Circles, Circle{Center: center, Radius: radius})
}

func (w *World) AddSegment(a, b lightpath.Point) {
	w.Segments = append(w.Segments, Segment{A: a, B: b})
}

// SetMirrors replaces the mirror layer with a copy of mirrors.
func (w *World) SetMirrors(mirrors []lightpath.Mirror) {
	w.Mirrors = append(w.Mirrors[:0], mirrors...)
}

func (w *World) shrink() float64 {
	if w.Shrink > 0 {
		return w.Shrink
	}
	return lightpath.EPS_SHRINK
}

// IsBlocked reports whether anything on the layers in mask touches the leg
// p1-p2, ignoring the first and last Shrink of its length.
func (w *World) IsBlocked(p1, p2 lightpath.Point, mask lightpath.Mask) bool {
	d := r2.Sub(p2, p1)
	length := r2.Norm(d)
	shrink := w.shrink()
	if length <= 2*shrink {
		return false
	}
	step := r2.Scale(shrink/length, d)
	q1, q2 := r2.Add(p1, step), r2.Sub(p2, step)

	if mask&lightpath.MaskObstacles != 0 {
		for _, c := range w.Circles {
			if segmentCircle(q1, q2, c) {
				return true
			}
		}
		for _, s := range w.Segments {
			if segmentsTouch(q1, q2, s.A, s.B) {
				return true
			}
		}
	}
	if mask&lightpath.MaskMirrors != 0 {
		for _, m := range w.Mirrors {
			if segmentsTouch(q1, q2, m.A, m.B) {
				return true
			}
		}
	}
	return false
}

// Contains reports whether p lies inside any circle obstacle.
func (w *World) Contains(p lightpath.Point) bool {
	for _, c := range w.Circles {
		if r2.Norm(r2.Sub(p, c.Center)) < c.Radius {
			return true
		}
	}
	return false
}

// Bounds returns the box enclosing every obstacle and mirror.
func (w *World) Bounds() r2.Box {
	box := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	grow := func(p lightpath.Point) {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	for _, c := range w.Circles {
		grow(r2.Sub(c.Center, r2.Vec{X: c.Radius, Y: c.Radius}))
		grow(r2.Add(c.Center, r2.Vec{X: c.Radius, Y: c.Radius}))
	}
	for _, s := range w.Segments {
		grow(s.A)
		grow(s.B)
	}
	for _, m := range w.Mirrors {
		grow(m.A)
		grow(m.B)
	}
	return box
}

func segmentCircle(a, b lightpath.Point, c Circle) bool {
	ab := r2.Sub(b, a)
	t := 0.0
	if l2 := r2.Norm2(ab); l2 > 0 {
		t = r2.Dot(r2.Sub(c.Center, a), ab) / l2
		t = math.Max(0, math.Min(1, t))
	}
	closest := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm2(r2.Sub(c.Center, closest)) <= c.Radius*c.Radius
}

// segmentsTouch reports whether the closed segments p1-p2 and p3-p4 share a point.
func segmentsTouch(p1, p2, p3, p4 lightpath.Point) bool {
	r := r2.Sub(p2, p1)
	s := r2.Sub(p4, p3)
	qp := r2.Sub(p3, p1)
	rxs := r2.Cross(r, s)
	if math.Abs(rxs) < lightpath.EPS_PARALLEL {
		if math.Abs(r2.Cross(qp, r)) >= lightpath.EPS_PARALLEL {
			return false
		}
		// collinear: overlap of projections onto r
		rr := r2.Norm2(r)
		if rr == 0 {
			return r2.Norm2(qp) == 0
		}
		t0 := r2.Dot(qp, r) / rr
		t1 := t0 + r2.Dot(s, r)/rr
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		return t1 >= 0 && t0 <= 1
	}
	t := r2.Cross(qp, s) / rxs
	u := r2.Cross(qp, r) / rxs
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
