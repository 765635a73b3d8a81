package lightpath

// Mask selects which layers of the world an occlusion query tests against.
type Mask uint32

const (
	MaskObstacles Mask = 1 << iota
	MaskMirrors

	MaskAll = MaskObstacles | MaskMirrors
)

// Occluder answers line-of-sight queries for the search. IsBlocked reports
// whether anything on the layers in mask lies between p1 and p2.
type Occluder interface {
	IsBlocked(p1, p2 Point, mask Mask) bool
}

// OccluderFunc adapts a plain function to the Occluder interface.
type OccluderFunc func(p1, p2 Point, mask Mask) bool

func (f OccluderFunc) IsBlocked(p1, p2 Point, mask Mask) bool {
	return f(p1, p2, mask)
}

// Open is an Occluder with nothing in it.
var Open = OccluderFunc(func(Point, Point, Mask) bool { return false })
