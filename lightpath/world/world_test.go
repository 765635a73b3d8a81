package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-lightpath/lightpath"
)

func P(x, y float64) lightpath.Point { return lightpath.P(x, y) }

func TestIsBlockedCircle(t *testing.T) {
	w := New()
	w.AddCircle(P(5, 0), 1)

	tests := []struct {
		name   string
		p1, p2 lightpath.Point
		expect bool
	}{
		{"through_center", P(0, 0), P(10, 0), true},
		{"tangent", P(0, 1), P(10, 1), true},
		{"miss", P(0, 1.5), P(10, 1.5), false},
		{"stops_short", P(0, 0), P(3.9, 0), false},
		{"starts_inside", P(5, 0), P(5, 10), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, w.IsBlocked(test.p1, test.p2, lightpath.MaskAll))
			assert.False(t, w.IsBlocked(test.p1, test.p2, lightpath.MaskMirrors), "circles are obstacles")
		})
	}
}

func TestIsBlockedMasks(t *testing.T) {
	w := New()
	w.AddSegment(P(2, -1), P(2, 1))
	w.SetMirrors([]lightpath.Mirror{{A: P(6, -1), B: P(6, 1)}})

	assert := assert.New(t)
	assert.True(w.IsBlocked(P(0, 0), P(4, 0), lightpath.MaskObstacles))
	assert.False(w.IsBlocked(P(0, 0), P(4, 0), lightpath.MaskMirrors))
	assert.False(w.IsBlocked(P(4, 0), P(8, 0), lightpath.MaskObstacles))
	assert.True(w.IsBlocked(P(4, 0), P(8, 0), lightpath.MaskMirrors))
	assert.True(w.IsBlocked(P(0, 0), P(8, 0), lightpath.MaskAll))
	assert.False(w.IsBlocked(P(0, 0), P(8, 0), 0))
}

func TestIsBlockedShrink(t *testing.T) {
	assert := assert.New(t)

	w := New()
	w.SetMirrors([]lightpath.Mirror{{A: P(0, 2), B: P(4, 2)}})

	// legs that start or end on the mirror are not blocked by it
	assert.False(w.IsBlocked(P(0, 0), P(2, 2), lightpath.MaskAll))
	assert.False(w.IsBlocked(P(2, 2), P(4, 0), lightpath.MaskAll))
	// a leg that crosses it is
	assert.True(w.IsBlocked(P(2, 0), P(2, 4), lightpath.MaskAll))

	// legs too short to trim are never blocked
	assert.False(w.IsBlocked(P(2, 2), P(2, 2+lightpath.EPS_SHRINK), lightpath.MaskAll))

	w.Shrink = 0.5
	assert.False(w.IsBlocked(P(2, 2.4), P(2, 4), lightpath.MaskAll))
	assert.True(w.IsBlocked(P(2, 1), P(2, 4), lightpath.MaskAll))
}

func TestSegmentsTouch(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 lightpath.Point
		expect         bool
	}{
		{"cross", P(0, 0), P(2, 2), P(0, 2), P(2, 0), true},
		{"disjoint", P(0, 0), P(1, 0), P(0, 1), P(1, 1), false},
		{"t_junction", P(0, 0), P(2, 0), P(1, 0), P(1, 3), true},
		{"short_of_line", P(0, 0), P(2, 0), P(1, 0.1), P(1, 3), false},
		{"collinear_overlap", P(0, 0), P(2, 0), P(1, 0), P(3, 0), true},
		{"collinear_touching", P(0, 0), P(1, 0), P(1, 0), P(3, 0), true},
		{"collinear_apart", P(0, 0), P(1, 0), P(2, 0), P(3, 0), false},
		{"parallel", P(0, 0), P(2, 0), P(0, 1), P(2, 1), false},
		{"point_off_line", P(0, 0), P(2, 0), P(1, 1), P(1, 1), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, segmentsTouch(test.p1, test.p2, test.p3, test.p4))
			assert.Equal(t, test.expect, segmentsTouch(test.p3, test.p4, test.p1, test.p2), "symmetric")
		})
	}
}

func TestContainsAndBounds(t *testing.T) {
	assert := assert.New(t)

	w := New()
	assert.True(math.IsInf(w.Bounds().Min.X, 1), "empty world has an empty box")

	w.AddCircle(P(0, 0), 1)
	w.AddSegment(P(3, -4), P(5, 2))
	w.SetMirrors([]lightpath.Mirror{{A: P(-2, 6), B: P(0, 6)}})

	assert.True(w.Contains(P(0.5, 0.5)))
	assert.False(w.Contains(P(1, 1)))
	assert.Equal(r2.Box{Min: r2.Vec{X: -2, Y: -4}, Max: r2.Vec{X: 5, Y: 6}}, w.Bounds())
}

func TestSetMirrorsCopies(t *testing.T) {
	mirrors := []lightpath.Mirror{{A: P(0, 0), B: P(1, 0)}}
	w := New()
	w.SetMirrors(mirrors)
	mirrors[0].A = P(9, 9)
	assert.Equal(t, P(0, 0), w.Mirrors[0].A)
}
