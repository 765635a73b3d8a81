package lightpath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position or a direction in world space.
type Point = r2.Vec

// P is a shorthand constructor for Point
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// unit returns v scaled to length 1, or false when v is too short to have a direction.
func unit(v Point) (Point, bool) {
	if r2.Norm2(v) < EPS_DEGENERATE {
		return Point{}, false
	}
	return r2.Scale(1/r2.Norm(v), v), true
}
