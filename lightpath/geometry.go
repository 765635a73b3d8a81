package lightpath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerances used by the search. They are tuned for world units of roughly
// one metre and scenes a few tens of units across.
const (
	// Cross term below which two lines are treated as parallel
	EPS_PARALLEL = 1e-9
	// Minimum |cos| between incoming ray and mirror normal; smaller is a grazing hit
	EPS_FRONT = 1e-4
	// Allowed deviation of dot(reflected, outgoing) from 1
	EPS_REFLECT_MATCH = 3e-3
	// Slack for segment containment
	EPS_SEGMENT = 1e-3
	// Length trimmed off both ends of a leg before an occlusion query
	EPS_SHRINK = 1e-4
	// Squared length below which a mirror or vector has no direction
	EPS_DEGENERATE = 1e-12
	// Position quantization for per-layer image dedup (~1e-3 precision)
	DEDUP_QUANT = 1000.0
)

// reflectPoint mirrors p across the infinite line through the mirror.
//
// A degenerate mirror has a zero normal, so p comes back unchanged.
func reflectPoint(p Point, mg mirrorGeo) Point {
	dist := r2.Dot(r2.Sub(p, mg.a), mg.n)
	return r2.Sub(p, r2.Scale(2*dist, mg.n))
}

// lineLineIntersection intersects the infinite line through p1,p2 with the
// infinite line through p3,p4.
func lineLineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	r := r2.Sub(p2, p1)
	s := r2.Sub(p4, p3)
	rxs := r2.Cross(r, s)
	if math.Abs(rxs) < EPS_PARALLEL {
		return Point{}, false
	}
	t := r2.Cross(r2.Sub(p3, p1), s) / rxs
	return r2.Add(p1, r2.Scale(t, r)), true
}

// IsOnSegment reports whether p lies on the finite segment a-b, within EPS_SEGMENT.
// Both betweenness and collinearity are required.
func IsOnSegment(p, a, b Point) bool {
	ab := r2.Norm2(r2.Sub(b, a))
	ap := r2.Norm2(r2.Sub(p, a))
	pb := r2.Norm2(r2.Sub(b, p))
	if ap+pb > ab+EPS_SEGMENT {
		return false
	}
	cross := math.Abs(r2.Cross(r2.Sub(b, a), r2.Sub(p, a)))
	return cross <= EPS_SEGMENT
}

// ReflectVector reflects v about a surface with the given normal. The normal
// need not be unit length; a zero normal leaves v unchanged.
func ReflectVector(v, normal Point) Point {
	nn, ok := unit(normal)
	if !ok {
		return v
	}
	return r2.Sub(v, r2.Scale(2*r2.Dot(v, nn), nn))
}

// reflectsAt checks the law of reflection at cur for a ray arriving from prev
// and leaving towards next, off a mirror with normal n.
//
// The front face is whichever side the ray arrives from, so n is flipped to
// oppose the incoming direction before the checks.
func reflectsAt(prev, cur, next, n Point) bool {
	inc, ok := unit(r2.Sub(cur, prev))
	if !ok {
		return false
	}
	out, ok := unit(r2.Sub(next, cur))
	if !ok {
		return false
	}
	d := r2.Dot(inc, n)
	if d > 0 {
		n = r2.Scale(-1, n)
		d = -d
	}
	if d > -EPS_FRONT {
		return false
	}
	refl, ok := unit(ReflectVector(inc, n))
	if !ok {
		return false
	}
	return r2.Dot(refl, out) >= 1-EPS_REFLECT_MATCH
}
