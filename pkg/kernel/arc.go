package kernel

// Arc is a circular arc swept clockwise from Start to End around
// Center. The sweep is strictly less than a half turn: an erosion arc
// at a reflex vertex of interior angle θ ∈ (π, 2π) spans θ-π. That
// bound lets angular membership be decided by two cross-product signs
// instead of inverse trigonometry.
type Arc struct {
	Center Point
	Radius Scalar
	Start  Point
	End    Point
}

// inSector reports whether the direction u from Center lies within the
// clockwise sweep from the Start spoke to the End spoke, endpoints
// included. Valid only for sweeps below a half turn.
func (a Arc) inSector(u Vector) bool {
	s := a.Start.Sub(a.Center)
	e := a.End.Sub(a.Center)
	return s.Cross(u).Sign() <= 0 && u.Cross(e).Sign() <= 0
}

// On reports whether p lies on the arc, endpoints included.
func (a Arc) On(p Point) bool {
	u := p.Sub(a.Center)
	r2 := a.Radius.Mul(a.Radius)
	if u.Dot(u).Cmp(r2) != 0 {
		return false
	}
	return a.inSector(u)
}

// ArcSegmentCrossings returns the transversal crossings of a segment
// with the arc. A certified-zero discriminant is a tangency and yields
// no crossing.
func ArcSegmentCrossings(a Arc, s Segment) []Point {
	return arcSegmentHits(a, s, false)
}

// ArcSegmentContacts returns every contact between a segment and the
// arc, tangencies included. Used by boundary validation.
func ArcSegmentContacts(a Arc, s Segment) []Point {
	return arcSegmentHits(a, s, true)
}

// arcSegmentHits solves |s.A + t·d - Center|² = Radius² for t ∈ [0, 1]
// and filters the roots through the angular sector.
func arcSegmentHits(a Arc, s Segment, tangents bool) []Point {
	d := s.Vector()
	f := s.A.Sub(a.Center)
	qa := d.Dot(d)
	qb := f.Dot(d) // half of the quadratic's linear coefficient
	qc := f.Dot(f).Sub(a.Radius.Mul(a.Radius))
	disc := qb.Mul(qb).Sub(qa.Mul(qc))

	var roots []Scalar
	switch disc.Sign() {
	case -1:
		return nil
	case 0:
		if !tangents {
			return nil
		}
		roots = []Scalar{qb.Neg().Div(qa)}
	default:
		sq := disc.Sqrt()
		roots = []Scalar{
			qb.Neg().Sub(sq).Div(qa),
			qb.Neg().Add(sq).Div(qa),
		}
	}

	var pts []Point
	for _, t := range roots {
		if !paramOnUnit(t) {
			continue
		}
		p := s.A.Add(d.Scale(t))
		if a.inSector(p.Sub(a.Center)) {
			pts = append(pts, p)
		}
	}
	return pts
}

// ArcArcContacts returns every contact between two arcs, tangencies
// included. The arcs may have distinct radii; erosion only ever
// produces equal ones.
func ArcArcContacts(a1, a2 Arc) []Point {
	delta := a2.Center.Sub(a1.Center)
	d2 := delta.Dot(delta)
	if d2.Sign() == 0 {
		// Concentric circles of erosion arcs never coincide:
		// reflex vertices are distinct.
		return nil
	}
	r1sq := a1.Radius.Mul(a1.Radius)
	r2sq := a2.Radius.Mul(a2.Radius)
	// k is the projection of the chord midpoint onto the center axis,
	// scaled by |delta|.
	k := d2.Add(r1sq).Sub(r2sq).Div(Exact(2))
	base := a1.Center.Add(delta.Scale(k.Div(d2)))
	h2 := r1sq.Sub(k.Mul(k).Div(d2))

	var candidates []Point
	switch h2.Sign() {
	case -1:
		return nil
	case 0:
		candidates = []Point{base}
	default:
		off := delta.Perp().Scale(h2.Sqrt().Div(d2.Sqrt()))
		candidates = []Point{base.Add(off), base.Add(off.Scale(Exact(-1)))}
	}

	var pts []Point
	for _, p := range candidates {
		if a1.inSector(p.Sub(a1.Center)) && a2.inSector(p.Sub(a2.Center)) {
			pts = append(pts, p)
		}
	}
	return pts
}
