package cspace

import (
	"errors"
	"fmt"

	"github.com/chazu/burst/pkg/enclosure"
	"github.com/chazu/burst/pkg/kernel"
)

// ErrDegenerate is wrapped by every construction failure: the erosion
// yields zero, several, or a non-simple boundary, so no legal
// configuration space exists for this radius. Callers must treat it as
// an expected outcome, not a fault.
var ErrDegenerate = errors.New("degenerate configuration space")

// Construct erodes the enclosure by the robot radius and returns the
// configuration space, or an error wrapping ErrDegenerate when the
// erosion collapses. No partial Space is ever returned.
func Construct(enc *enclosure.Polygon, radius float64) (*Space, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("robot radius must be positive, got %v", radius)
	}
	r := kernel.Exact(radius)
	n := enc.Len()

	// Offset every edge inward. The enclosure is counter-clockwise,
	// so the interior lies to the left of each directed edge and the
	// inward normal is the left perpendicular.
	offsets := make([]kernel.Segment, n)
	for i := 0; i < n; i++ {
		e := enc.Edge(i)
		shift := e.Vector().Perp().Unit().Scale(r)
		offsets[i] = kernel.Segment{A: e.A.Add(shift), B: e.B.Add(shift)}
	}

	// Join the offsets at each vertex: sharp corner when convex,
	// rounding arc when reflex.
	starts := make([]kernel.Point, n)
	ends := make([]kernel.Point, n)
	arcs := make([]*kernel.Arc, n)
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		turn := enc.Edge(prev).Vector().Cross(enc.Edge(i).Vector()).Sign()
		switch {
		case turn > 0: // convex
			q, ok := kernel.LineIntersection(offsets[prev], offsets[i])
			if !ok {
				return nil, fmt.Errorf("%w: offset edges parallel at vertex %d", ErrDegenerate, i)
			}
			if !enc.Interior(q) {
				return nil, fmt.Errorf("%w: offset corner at vertex %d leaves the enclosure", ErrDegenerate, i)
			}
			ends[prev] = q
			starts[i] = q
		case turn < 0: // reflex
			ends[prev] = offsets[prev].B
			starts[i] = offsets[i].A
			arcs[i] = &kernel.Arc{
				Center: enc.Vertex(i),
				Radius: r,
				Start:  offsets[prev].B,
				End:    offsets[i].A,
			}
		default:
			return nil, fmt.Errorf("%w: collinear adjacent edges at vertex %d", ErrDegenerate, i)
		}
	}

	// Assemble the cyclic boundary. A trimmed segment that vanished or
	// inverted against its source edge means the enclosure pinches to
	// less than the robot diameter there.
	var edges []Edge
	for i := 0; i < n; i++ {
		if arcs[i] != nil {
			edges = append(edges, ArcEdge{Arc: *arcs[i]})
		}
		seg := kernel.Segment{A: starts[i], B: ends[i]}
		if seg.Vector().Dot(enc.Edge(i).Vector()).Sign() <= 0 {
			return nil, fmt.Errorf("%w: edge %d collapses under offset", ErrDegenerate, i)
		}
		edges = append(edges, LineEdge{Seg: seg})
	}

	if err := checkSimple(edges); err != nil {
		return nil, err
	}
	if chordArea2(edges).Sign() <= 0 {
		return nil, fmt.Errorf("%w: boundary winding is degenerate", ErrDegenerate)
	}
	return &Space{edges: edges}, nil
}

// checkSimple verifies that the assembled boundary is one simple
// closed curve: non-adjacent edges may not touch at all (tangency
// included), adjacent edges only at their shared endpoint. A touch
// anywhere else means the erosion pinched the region apart.
func checkSimple(edges []Edge) error {
	m := len(edges)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			pts, overlap := edgeContacts(edges[i], edges[j])
			if overlap {
				return fmt.Errorf("%w: boundary edges %d and %d overlap", ErrDegenerate, i, j)
			}
			var shared kernel.Point
			adjacent := false
			switch {
			case j == i+1:
				shared, adjacent = edges[i].end(), true
			case i == 0 && j == m-1:
				shared, adjacent = edges[i].start(), true
			}
			for _, c := range pts {
				if adjacent && c.Equal(shared) {
					continue
				}
				return fmt.Errorf("%w: boundary edges %d and %d touch", ErrDegenerate, i, j)
			}
		}
	}
	return nil
}

// edgeContacts returns every touch point between two boundary edges,
// tangential contacts included, plus the collinear-overlap flag for
// segment pairs.
func edgeContacts(a, b Edge) ([]kernel.Point, bool) {
	switch ea := a.(type) {
	case LineEdge:
		switch eb := b.(type) {
		case LineEdge:
			return kernel.SegmentContacts(ea.Seg, eb.Seg)
		case ArcEdge:
			return kernel.ArcSegmentContacts(eb.Arc, ea.Seg), false
		}
	case ArcEdge:
		switch eb := b.(type) {
		case LineEdge:
			return kernel.ArcSegmentContacts(ea.Arc, eb.Seg), false
		case ArcEdge:
			return kernel.ArcArcContacts(ea.Arc, eb.Arc), false
		}
	}
	return nil, false
}

// chordArea2 returns twice the signed area of the polygon through the
// edge start points. Arcs sweep less than a half turn, so the chord
// polygon carries the winding of the full curve; a certified
// non-positive area means the boundary collapsed or flipped.
func chordArea2(edges []Edge) kernel.Scalar {
	area := kernel.Exact(0)
	for i := range edges {
		a := edges[i].start()
		b := edges[(i+1)%len(edges)].start()
		area = area.Add(a.X.Mul(b.Y).Sub(b.X.Mul(a.Y)))
	}
	return area
}
