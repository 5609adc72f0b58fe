// Package cspace implements the configuration-space engine: erosion of
// an enclosure polygon by the robot radius into a closed boundary of
// straight segments and circular arcs, plus membership and crossing
// queries against that boundary.
//
// A Space is immutable after construction; the bounding box and the
// R-tree edge index are memoized on first use, so concurrent read-only
// queries need no synchronisation.
package cspace

import (
	"math"
	"sync"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/dhconnelly/rtreego"

	"github.com/chazu/burst/pkg/kernel"
)

// Edge is one piece of the boundary curve: either a straight segment
// (LineEdge) or a circular arc (ArcEdge). The set is closed.
type Edge interface {
	// Contains reports whether p lies on this edge.
	Contains(p kernel.Point) bool

	start() kernel.Point
	end() kernel.Point
	crossings(probe kernel.Segment) []kernel.Point
	boundingBox() sdf.Box2
}

// LineEdge is the inward offset of one enclosure edge.
type LineEdge struct {
	Seg kernel.Segment
}

// ArcEdge rounds one reflex vertex of the enclosure.
type ArcEdge struct {
	Arc kernel.Arc
}

var (
	_ Edge = LineEdge{}
	_ Edge = ArcEdge{}
)

// Contains reports whether p lies on the segment.
func (e LineEdge) Contains(p kernel.Point) bool { return e.Seg.On(p) }

func (e LineEdge) start() kernel.Point { return e.Seg.A }
func (e LineEdge) end() kernel.Point   { return e.Seg.B }

func (e LineEdge) crossings(probe kernel.Segment) []kernel.Point {
	if p, ok := kernel.SegmentCrossing(e.Seg, probe); ok {
		return []kernel.Point{p}
	}
	return nil
}

func (e LineEdge) boundingBox() sdf.Box2 {
	return pointBox(e.Seg.A).Extend(pointBox(e.Seg.B))
}

// Contains reports whether p lies on the arc.
func (e ArcEdge) Contains(p kernel.Point) bool { return e.Arc.On(p) }

func (e ArcEdge) start() kernel.Point { return e.Arc.Start }
func (e ArcEdge) end() kernel.Point   { return e.Arc.End }

func (e ArcEdge) crossings(probe kernel.Segment) []kernel.Point {
	return kernel.ArcSegmentCrossings(e.Arc, probe)
}

func (e ArcEdge) boundingBox() sdf.Box2 {
	// Conservative: the full circle around the reflex vertex.
	r := e.Arc.Radius.Float() + e.Arc.Radius.Err()
	c := e.Arc.Center
	cx, cy := c.X.Float(), c.Y.Float()
	pad := c.X.Err() + c.Y.Err()
	return sdf.Box2{
		Min: v2.Vec{X: cx - r - pad, Y: cy - r - pad},
		Max: v2.Vec{X: cx + r + pad, Y: cy + r + pad},
	}
}

// pointBox returns a box covering the certified ball of a point.
func pointBox(p kernel.Point) sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: p.X.Float() - p.X.Err(), Y: p.Y.Float() - p.Y.Err()},
		Max: v2.Vec{X: p.X.Float() + p.X.Err(), Y: p.Y.Float() + p.Y.Err()},
	}
}

// Space is a constructed configuration space: the closed curve of
// legal robot-center positions. Only Construct creates one.
type Space struct {
	edges []Edge

	bboxOnce sync.Once
	bbox     sdf.Box2

	indexOnce sync.Once
	index     *rtreego.Rtree
}

// Edges returns the boundary pieces in cyclic order.
func (s *Space) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Orientation reports the winding of the boundary curve. Construction
// normalises the enclosure to counter-clockwise, so a Space is always
// counter-clockwise; the accessor exists for callers that reason about
// winding explicitly.
func (s *Space) Orientation() Winding { return CounterClockwise }

// Winding is the rotational order of a closed curve.
type Winding int

const (
	Clockwise        Winding = -1
	CounterClockwise Winding = 1
)

// BoundingBox returns the axis-aligned bounding box of the boundary,
// computed once on first use.
func (s *Space) BoundingBox() sdf.Box2 {
	s.bboxOnce.Do(func() {
		box := s.edges[0].boundingBox()
		for _, e := range s.edges[1:] {
			box = box.Extend(e.boundingBox())
		}
		s.bbox = box
	})
	return s.bbox
}

// edgeItem adapts an Edge to the R-tree's Spatial interface.
type edgeItem struct {
	rect rtreego.Rect
	edge Edge
}

func (it *edgeItem) Bounds() rtreego.Rect { return it.rect }

// rtree returns the edge index, built once on first query.
func (s *Space) rtree() *rtreego.Rtree {
	s.indexOnce.Do(func() {
		s.index = rtreego.NewTree(2, 4, 8)
		for _, e := range s.edges {
			s.index.Insert(&edgeItem{rect: boxRect(e.boundingBox()), edge: e})
		}
	})
	return s.index
}

// candidates returns the edges whose bounds meet the query box.
func (s *Space) candidates(box sdf.Box2) []Edge {
	hits := s.rtree().SearchIntersect(boxRect(box))
	edges := make([]Edge, 0, len(hits))
	for _, h := range hits {
		edges = append(edges, h.(*edgeItem).edge)
	}
	return edges
}

// rectPad keeps R-tree rectangles non-degenerate and absorbs the
// certified error radii of edge endpoints.
const rectPad = 1e-9

// boxRect converts an sdfx box to a padded rtreego rectangle.
func boxRect(b sdf.Box2) rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.X - rectPad, b.Min.Y - rectPad},
		[]float64{b.Max.X - b.Min.X + 2*rectPad, b.Max.Y - b.Min.Y + 2*rectPad},
	)
	if err != nil {
		// Only reachable with non-finite coordinates, which
		// construction rejects.
		panic(err)
	}
	return rect
}

// segmentBox returns the bounding box of a probe segment.
func segmentBox(s kernel.Segment) sdf.Box2 {
	ax, ay := s.A.X.Float(), s.A.Y.Float()
	bx, by := s.B.X.Float(), s.B.Y.Float()
	return sdf.Box2{
		Min: v2.Vec{X: math.Min(ax, bx), Y: math.Min(ay, by)},
		Max: v2.Vec{X: math.Max(ax, bx), Y: math.Max(ay, by)},
	}
}
