//go:build verify_reflections
// +build verify_reflections

package lightpath

import (
	"fmt"
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

// verifyPath re-checks a returned path from scratch and panics on any violation.
func verifyPath(res Result, geos []mirrorGeo) {
	if len(res.Path) != len(res.Mirrors)+2 {
		panic(fmt.Sprintf("path has %d points for %d mirrors", len(res.Path), len(res.Mirrors)))
	}
	for i, m := range res.Mirrors {
		if i > 0 && res.Mirrors[i-1] == m {
			panic(fmt.Sprintf("mirror %d hit twice in a row", m))
		}
		mg := geos[m]
		hit := res.Path[i+1]
		if !IsOnSegment(hit, mg.a, mg.b) {
			panic(fmt.Sprintf("hit %v is off mirror %d", hit, m))
		}
		if !reflectsAt(res.Path[i], hit, res.Path[i+2], mg.n) {
			panic(fmt.Sprintf("reflection law fails at %v on mirror %d", hit, m))
		}
	}
}
