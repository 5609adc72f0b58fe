package cspace

import (
	"github.com/chazu/burst/pkg/kernel"
)

// Contains reports whether p lies on the boundary curve. The robot's
// center is legal only while touching the boundary, so interior and
// exterior points are both false.
func (s *Space) Contains(p kernel.Point) bool {
	for _, e := range s.candidates(pointBox(p)) {
		if e.Contains(p) {
			return true
		}
	}
	return false
}

// Crossings returns every transversal crossing of the probe segment
// with the boundary, deduplicated by certified equality so a probe
// through a boundary vertex yields that vertex once. Tangential
// contacts and collinear runs along a straight edge are not crossings:
// a crossing exists only where the probe's line passes from one side
// of the boundary to the other.
func (s *Space) Crossings(probe kernel.Segment) []kernel.Point {
	var pts []kernel.Point
	for _, e := range s.candidates(segmentBox(probe)) {
		for _, p := range e.crossings(probe) {
			if !containsPoint(pts, p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// CountCrossings returns the number of distinct transversal crossings
// of the probe with the boundary.
func (s *Space) CountCrossings(probe kernel.Segment) int {
	return len(s.Crossings(probe))
}

// FirstCrossing returns the nearest point, forward along dir from
// origin, where the boundary is crossed again. The probe is clipped at
// the bounding-box margin (width plus height), which exceeds the
// diagonal, so a crossing inside the box cannot be missed. The origin
// itself is never a result.
func (s *Space) FirstCrossing(origin kernel.Point, dir kernel.Vector) (kernel.Point, bool) {
	box := s.BoundingBox()
	margin := (box.Max.X - box.Min.X) + (box.Max.Y - box.Min.Y)
	u := dir.Unit()
	probe := kernel.Segment{A: origin, B: origin.Add(u.Scale(kernel.Exact(margin)))}

	best := kernel.Point{}
	bestT := 0.0
	found := false
	for _, p := range s.Crossings(probe) {
		if p.Equal(origin) {
			continue
		}
		t := p.Sub(origin).Dot(u).Float()
		if !found || t < bestT {
			best, bestT, found = p, t, true
		}
	}
	return best, found
}

// containsPoint reports whether pts already holds a point certified
// equal to p.
func containsPoint(pts []kernel.Point, p kernel.Point) bool {
	for _, q := range pts {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
