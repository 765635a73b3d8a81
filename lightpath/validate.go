package lightpath

// validateAndBuild turns a mirror sequence and the matching virtual image of
// the source into a physical path in s.path. It reports false, with s.path
// empty, if any hit falls off its mirror, breaks the law of reflection, or any
// leg is blocked by an obstacle or another mirror.
func (s *Solver) validateAndBuild(source, target, virtualEndpoint Point, seq []int) bool {
	if !s.buildFullPath(source, target, virtualEndpoint, seq) || len(s.path) < 2 {
		s.path = s.path[:0]
		return false
	}

	for i := 1; i < len(s.path)-1; i++ {
		mg := s.geos[seq[i-1]]
		if !reflectsAt(s.path[i-1], s.path[i], s.path[i+1], mg.n) {
			s.path = s.path[:0]
			return false
		}
	}

	for i := 0; i < len(s.path)-1; i++ {
		if s.occ.IsBlocked(s.path[i], s.path[i+1], MaskObstacles|MaskMirrors) {
			s.path = s.path[:0]
			return false
		}
	}
	return true
}

// buildFullPath unfolds the straight line from target to the virtual source
// image one mirror at a time, last mirror first. Each step intersects the
// working line with the mirror, then reflects the line back across it so it
// lines up with the previous mirror in the chain.
func (s *Solver) buildFullPath(source, target, virtualEndpoint Point, seq []int) bool {
	lineFrom, lineTo := target, virtualEndpoint
	s.hitsReverse = s.hitsReverse[:0]
	for i := len(seq) - 1; i >= 0; i-- {
		mg := s.geos[seq[i]]
		hit, ok := lineLineIntersection(lineFrom, lineTo, mg.a, mg.b)
		if !ok || !IsOnSegment(hit, mg.a, mg.b) {
			return false
		}
		s.hitsReverse = append(s.hitsReverse, hit)
		virtualEndpoint = reflectPoint(virtualEndpoint, mg)
		lineFrom = reflectPoint(lineFrom, mg)
		lineTo = virtualEndpoint
	}

	s.path = append(s.path[:0], source)
	for i := len(s.hitsReverse) - 1; i >= 0; i-- {
		s.path = append(s.path, s.hitsReverse[i])
	}
	s.path = append(s.path, target)
	return true
}
