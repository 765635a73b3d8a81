package lightpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMirrorNormal(t *testing.T) {
	assert := assert.New(t)

	n := Mirror{P(0, 0), P(4, 0)}.Normal()
	assert.InDelta(0, n.X, 1e-12)
	assert.InDelta(1, n.Y, 1e-12)

	n = Mirror{P(0, 2), P(2, 0)}.Normal()
	assert.InDelta(math.Sqrt2/2, n.X, 1e-12)
	assert.InDelta(math.Sqrt2/2, n.Y, 1e-12)

	assert.Equal(Point{}, Mirror{P(1, 1), P(1, 1)}.Normal())
}

func TestMirrorDegenerate(t *testing.T) {
	assert.True(t, Mirror{P(1, 1), P(1, 1)}.Degenerate())
	assert.True(t, Mirror{P(1, 1), P(1, 1+1e-7)}.Degenerate())
	assert.False(t, Mirror{P(1, 1), P(1, 1.01)}.Degenerate())
}

func TestMirrorFromPlacement(t *testing.T) {
	assert := assert.New(t)

	m := MirrorFromPlacement(P(2, 3), P(2, 10), 2)
	assert.InDelta(2, m.Length(), 1e-12)
	assert.True(near(m.A, P(3, 3)), "got %v", m.A)
	assert.True(near(m.B, P(1, 3)), "got %v", m.B)

	// the drag direction is the face normal
	n := m.Normal()
	assert.InDelta(1, math.Abs(n.Y), 1e-12)

	assert.True(MirrorFromPlacement(P(2, 3), P(2, 3), 2).Degenerate())
}

func TestMirrorGeometrySnapshot(t *testing.T) {
	mirrors := []Mirror{{P(0, 0), P(1, 0)}, {P(5, 5), P(5, 5)}}
	geos := buildMirrorGeometries(mirrors, nil)

	mirrors[0].B = P(0, 9)

	assert.Len(t, geos, 2)
	assert.Equal(t, P(1, 0), geos[0].b, "cache holds values, not references")
	assert.True(t, geos[0].ok)
	assert.False(t, geos[1].ok)
	assert.Equal(t, Point{}, geos[1].n)
}
