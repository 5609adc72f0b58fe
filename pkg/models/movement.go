package models

import (
	"github.com/chazu/burst/pkg/cspace"
	"github.com/chazu/burst/pkg/kernel"
)

// Movement computes a valid translation endpoint for a heading from a
// boundary point. All outcomes that reject the movement — origin not
// on the boundary, or a heading with no forward crossing — are the
// same ok=false; callers needing to distinguish check
// space.Contains(origin) first.
type Movement interface {
	// Attempt returns the endpoint of a move from origin along
	// heading, or ok=false when no valid movement exists.
	Attempt(origin kernel.Point, heading float64, space *cspace.Space) (kernel.Point, bool)

	// Path returns the straight path of the move. A zero-length
	// movement is invalid, so ok=false whenever Attempt fails or the
	// endpoint coincides with the origin.
	Path(origin kernel.Point, heading float64, space *cspace.Space) (kernel.Segment, bool)
}

// Linear is the straight-line movement model: the robot translates
// along the heading until the boundary is next crossed.
type Linear struct{}

var _ Movement = Linear{}

// Attempt rejects origins off the boundary, embeds the heading as a
// certified direction, and delegates to the first-crossing query. A
// heading that immediately exits the legal region has no forward
// crossing and is rejected by that query alone; there is no separate
// outward check.
func (Linear) Attempt(origin kernel.Point, heading float64, space *cspace.Space) (kernel.Point, bool) {
	if !space.Contains(origin) {
		return kernel.Point{}, false
	}
	return space.FirstCrossing(origin, kernel.Direction(heading))
}

// Path wraps Attempt and materialises the movement as a segment.
func (m Linear) Path(origin kernel.Point, heading float64, space *cspace.Space) (kernel.Segment, bool) {
	end, ok := m.Attempt(origin, heading, space)
	if !ok || end.Equal(origin) {
		return kernel.Segment{}, false
	}
	return kernel.Segment{A: origin, B: end}, true
}
