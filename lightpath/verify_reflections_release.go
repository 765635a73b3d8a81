//go:build !verify_reflections
// +build !verify_reflections

package lightpath

// Empty stub that will be optimized out
func verifyPath(res Result, geos []mirrorGeo) {
}
