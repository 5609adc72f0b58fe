// Package enclosure provides the validated enclosure polygon consumed
// by the configuration-space engine. A Polygon is immutable once
// constructed and always stored with counter-clockwise winding.
package enclosure

import (
	"errors"
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/burst/pkg/kernel"
)

// ErrInvalid is wrapped by every rejection from New.
var ErrInvalid = errors.New("invalid enclosure polygon")

// Polygon is a simple, non-degenerate enclosure polygon with
// counter-clockwise winding. Immutable after New.
type Polygon struct {
	verts []kernel.Point
}

// New validates raw vertices and builds an enclosure polygon.
// Requirements: at least three vertices, consecutive vertices
// distinct, not all collinear, no self-intersection. Clockwise input
// is reversed so the stored winding is always counter-clockwise.
func New(verts []v2.Vec) (*Polygon, error) {
	n := len(verts)
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalid, n)
	}

	pts := make([]kernel.Point, n)
	for i, v := range verts {
		pts[i] = kernel.Pt(v.X, v.Y)
	}
	for i := range pts {
		if pts[i].Equal(pts[(i+1)%n]) {
			return nil, fmt.Errorf("%w: duplicate consecutive vertex at index %d", ErrInvalid, i)
		}
	}

	area2 := signedArea2(pts)
	switch area2.Sign() {
	case 0:
		return nil, fmt.Errorf("%w: vertices are collinear", ErrInvalid)
	case -1:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	p := &Polygon{verts: pts}
	if err := p.checkSimple(); err != nil {
		return nil, err
	}
	return p, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.verts) }

// Vertex returns vertex i, indices taken modulo Len.
func (p *Polygon) Vertex(i int) kernel.Point {
	n := len(p.verts)
	return p.verts[((i%n)+n)%n]
}

// Edge returns the directed edge from vertex i to vertex i+1.
func (p *Polygon) Edge(i int) kernel.Segment {
	return kernel.Segment{A: p.Vertex(i), B: p.Vertex(i + 1)}
}

// Vertices returns a copy of the vertex ring.
func (p *Polygon) Vertices() []kernel.Point {
	out := make([]kernel.Point, len(p.verts))
	copy(out, p.verts)
	return out
}

// Interior reports whether q lies strictly inside the polygon.
// Boundary points are not interior. Winding-number walk with certified
// orientation signs.
func (p *Polygon) Interior(q kernel.Point) bool {
	for i := range p.verts {
		if p.Edge(i).On(q) {
			return false
		}
	}
	wn := 0
	for i := range p.verts {
		a, b := p.Vertex(i), p.Vertex(i+1)
		ay := a.Y.Cmp(q.Y)
		by := b.Y.Cmp(q.Y)
		if ay <= 0 && by > 0 {
			if kernel.Orientation(a, b, q) > 0 {
				wn++
			}
		} else if ay > 0 && by <= 0 {
			if kernel.Orientation(a, b, q) < 0 {
				wn--
			}
		}
	}
	return wn != 0
}

// checkSimple rejects any pair of edges touching anywhere other than
// the one shared endpoint of cyclically adjacent edges.
func (p *Polygon) checkSimple() error {
	n := len(p.verts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pts, overlap := kernel.SegmentContacts(p.Edge(i), p.Edge(j))
			if overlap {
				return fmt.Errorf("%w: edges %d and %d overlap", ErrInvalid, i, j)
			}
			var shared kernel.Point
			adjacent := false
			switch {
			case j == i+1:
				shared, adjacent = p.Vertex(j), true
			case i == 0 && j == n-1:
				shared, adjacent = p.Vertex(0), true
			}
			for _, c := range pts {
				if adjacent && c.Equal(shared) {
					continue
				}
				return fmt.Errorf("%w: edges %d and %d intersect", ErrInvalid, i, j)
			}
		}
	}
	return nil
}

// signedArea2 returns twice the signed area of the vertex ring.
func signedArea2(pts []kernel.Point) kernel.Scalar {
	area := kernel.Exact(0)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area = area.Add(a.X.Mul(b.Y).Sub(b.X.Mul(a.Y)))
	}
	return area
}
