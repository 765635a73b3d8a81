// Package meshslice cuts 3D meshes with a horizontal plane to produce 2D
// obstacle walls for a light path scene.
package meshslice

import (
	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/world"
)

// Slicing approach follows https://github.com/fogleman/choppy

// Triangle is one face of a mesh with vertices in counter-clockwise order
// seen from outside.
type Triangle struct {
	V1, V2, V3 pt.Vector
}

func (t Triangle) Normal() pt.Vector {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

type Mesh struct {
	Triangles []Triangle
}

// Plane is a cutting plane with an in-plane basis U, V used to flatten the cut.
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
}

// HorizontalPlane is the plane z = height, flattened so that scene x and y are
// the mesh x and y.
func HorizontalPlane(height float64) Plane {
	return Plane{
		Point:  pt.Vector{Z: height},
		Normal: pt.Vector{Z: 1},
		U:      pt.Vector{X: 1},
		V:      pt.Vector{Y: 1},
	}
}

// Project maps a point on the plane to scene coordinates.
func (p Plane) Project(v pt.Vector) lightpath.Point {
	d := v.Sub(p.Point)
	return lightpath.P(d.Dot(p.U), d.Dot(p.V))
}

// Path is a chain of cut points in 3D.
type Path []pt.Vector

func (p Plane) intersectSegment(v0, v1 pt.Vector) (pt.Vector, bool) {
	u := v1.Sub(v0)
	w := v0.Sub(p.Point)
	d := p.Normal.Dot(u)
	if d > -1e-9 && d < 1e-9 {
		return pt.Vector{}, false
	}
	t := -p.Normal.Dot(w) / d
	if t < 0 || t > 1 {
		return pt.Vector{}, false
	}
	return v0.Add(u.MulScalar(t)), true
}

// IntersectTriangle returns the two points where the plane cuts t, ordered so
// the solid lies on the same side of the cut for every triangle of a closed mesh.
func (p Plane) IntersectTriangle(t Triangle) (pt.Vector, pt.Vector, bool) {
	v1, ok1 := p.intersectSegment(t.V1, t.V2)
	v2, ok2 := p.intersectSegment(t.V2, t.V3)
	v3, ok3 := p.intersectSegment(t.V3, t.V1)
	var p1, p2 pt.Vector
	switch {
	case ok1 && ok2:
		p1, p2 = v1, v2
	case ok1 && ok3:
		p1, p2 = v1, v3
	case ok2 && ok3:
		p1, p2 = v2, v3
	default:
		return pt.Vector{}, pt.Vector{}, false
	}
	if p1 == p2 {
		return pt.Vector{}, pt.Vector{}, false
	}
	n := p2.Sub(p1).Cross(p.Normal)
	if n.Dot(t.Normal()) < 0 {
		return p1, p2, true
	}
	return p2, p1, true
}

// joinPaths chains cut fragments that share end points.
func joinPaths(paths []Path) []Path {
	frontLookup := make(map[pt.Vector]Path, len(paths))
	order := make([]pt.Vector, 0, len(paths))
	for _, path := range paths {
		if _, ok := frontLookup[path[0]]; !ok {
			order = append(order, path[0])
		}
		frontLookup[path[0]] = path
	}
	var result []Path
	for _, start := range order {
		if _, ok := frontLookup[start]; !ok {
			continue
		}
		v := start
		var path Path
		for {
			path = append(path, v)
			next, ok := frontLookup[v]
			if !ok {
				break
			}
			delete(frontLookup, v)
			v = next[len(next)-1]
		}
		result = append(result, path)
	}
	return result
}

// Slice cuts every triangle of m and joins the fragments into paths.
func (p Plane) Slice(m Mesh) []Path {
	var paths []Path
	for _, t := range m.Triangles {
		if v1, v2, ok := p.IntersectTriangle(t); ok {
			paths = append(paths, Path{v1, v2})
		}
	}
	return joinPaths(paths)
}

// Segments slices m and returns each consecutive pair of cut points as an
// obstacle segment in scene coordinates.
func (p Plane) Segments(m Mesh) []world.Segment {
	var segs []world.Segment
	for _, path := range p.Slice(m) {
		for i := 0; i < len(path)-1; i++ {
			a, b := p.Project(path[i]), p.Project(path[i+1])
			if a == b {
				continue
			}
			segs = append(segs, world.Segment{A: a, B: b})
		}
	}
	return segs
}
