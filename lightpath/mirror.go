package lightpath

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Mirror is a finite two-sided reflective segment in world space.
type Mirror struct {
	A, B Point
}

// Length of the reflective segment
func (m Mirror) Length() float64 {
	return r2.Norm(r2.Sub(m.B, m.A))
}

// Degenerate reports whether the mirror is too short to have a direction.
// Degenerate mirrors never reflect.
func (m Mirror) Degenerate() bool {
	return r2.Norm2(r2.Sub(m.B, m.A)) < EPS_DEGENERATE
}

// Normal returns the unit normal (-dy, dx) of the mirror, or the zero vector
// for a degenerate mirror. Its sign carries no meaning; either face reflects.
func (m Mirror) Normal() Point {
	dir, ok := unit(r2.Sub(m.B, m.A))
	if !ok {
		return Point{}
	}
	return Point{X: -dir.Y, Y: dir.X}
}

// MirrorFromPlacement builds a mirror of the given length centred on at, with
// its reflective face turned towards toward. This is the press-then-drag
// gesture used to place mirrors: the drag direction becomes the mirror normal.
func MirrorFromPlacement(at, toward Point, length float64) Mirror {
	facing, ok := unit(r2.Sub(toward, at))
	if !ok {
		return Mirror{A: at, B: at}
	}
	half := r2.Scale(length/2, Point{X: -facing.Y, Y: facing.X})
	return Mirror{A: r2.Sub(at, half), B: r2.Add(at, half)}
}

// mirrorGeo is the per-search snapshot of one mirror.
type mirrorGeo struct {
	a, b Point
	// unit normal, zero when !ok
	n  Point
	ok bool
}

// buildMirrorGeometries copies mirror endpoints by value into buf, indexed like mirrors.
func buildMirrorGeometries(mirrors []Mirror, buf []mirrorGeo) []mirrorGeo {
	buf = buf[:0]
	for _, m := range mirrors {
		buf = append(buf, mirrorGeo{
			a:  m.A,
			b:  m.B,
			n:  m.Normal(),
			ok: !m.Degenerate(),
		})
	}
	return buf
}
