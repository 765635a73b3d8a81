package lightpath

import "math"

// imageNode is one virtual image in a search tree. Nodes refer to their parent
// by index into the owning arena; parent is always smaller than the node's own
// index, so walking parents terminates.
type imageNode struct {
	pos Point
	// -1 at the root
	parent int
	// mirror reflected across to produce this node, -1 at the root
	mirror int
}

// arena is the append-only node store for one side of the search.
type arena struct {
	nodes []imageNode
}

func (a *arena) reset(root Point) {
	a.nodes = append(a.nodes[:0], imageNode{pos: root, parent: -1, mirror: -1})
}

func (a *arena) add(n imageNode) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// sequence writes the mirror indices from the root to node idx into out.
func (a *arena) sequence(idx int, out []int) []int {
	out = out[:0]
	for cur := idx; cur >= 0; {
		n := a.nodes[cur]
		if n.mirror >= 0 {
			out = append(out, n.mirror)
		}
		cur = n.parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

type dedupKey struct {
	mirror int
	x, y   int64
}

func quantize(v float64) int64 {
	return int64(math.RoundToEven(v * DEDUP_QUANT))
}

// expandOneLayer reflects every frontier node across every mirror except the
// one that produced it, and returns the indices of the new nodes in next.
//
// Images are deduplicated within this layer only. Degenerate mirrors are skipped.
func expandOneLayer(frontier []int, geos []mirrorGeo, pool *arena, seen map[dedupKey]struct{}, next []int) []int {
	next = next[:0]
	clear(seen)
	for _, parentIdx := range frontier {
		parent := pool.nodes[parentIdx]
		for m, mg := range geos {
			if m == parent.mirror || !mg.ok {
				continue
			}
			img := reflectPoint(parent.pos, mg)
			key := dedupKey{mirror: m, x: quantize(img.X), y: quantize(img.Y)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			next = append(next, pool.add(imageNode{pos: img, parent: parentIdx, mirror: m}))
		}
	}
	return next
}
