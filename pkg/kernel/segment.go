package kernel

// Segment is a directed straight line segment between two points.
type Segment struct {
	A, B Point
}

// Vector returns the displacement from A to B.
func (s Segment) Vector() Vector { return s.B.Sub(s.A) }

// Length returns the segment length.
func (s Segment) Length() Scalar { return s.Vector().Length() }

// On reports whether p lies on the segment, endpoints included.
func (s Segment) On(p Point) bool {
	ab := s.Vector()
	ap := p.Sub(s.A)
	if ab.Cross(ap).Sign() != 0 {
		return false
	}
	t := ap.Dot(ab)
	if t.Sign() < 0 {
		return false
	}
	return t.Cmp(ab.Dot(ab)) <= 0
}

// LineIntersection intersects the infinite support lines of two
// segments. It fails when the lines are parallel within certification.
func LineIntersection(s1, s2 Segment) (Point, bool) {
	d1, d2 := s1.Vector(), s2.Vector()
	den := d1.Cross(d2)
	if den.Sign() == 0 {
		return Point{}, false
	}
	t := s2.A.Sub(s1.A).Cross(d2).Div(den)
	return s1.A.Add(d1.Scale(t)), true
}

// SegmentCrossing returns the transversal intersection of two segments,
// parameter range inclusive of endpoints. Parallel and collinear pairs
// never produce a crossing: a probe running along a segment does not,
// by itself, cross it.
func SegmentCrossing(s1, s2 Segment) (Point, bool) {
	d1, d2 := s1.Vector(), s2.Vector()
	den := d1.Cross(d2)
	if den.Sign() == 0 {
		return Point{}, false
	}
	w := s2.A.Sub(s1.A)
	t := w.Cross(d2).Div(den)
	u := w.Cross(d1).Div(den)
	if !paramOnUnit(t) || !paramOnUnit(u) {
		return Point{}, false
	}
	return s1.A.Add(d1.Scale(t)), true
}

// SegmentContacts returns every point where two segments touch,
// tangential or transversal, plus a flag reporting a collinear overlap
// of certified positive length. Used by boundary validation, where any
// contact beyond a shared endpoint is fatal.
func SegmentContacts(s1, s2 Segment) ([]Point, bool) {
	d1, d2 := s1.Vector(), s2.Vector()
	den := d1.Cross(d2)
	if den.Sign() != 0 {
		if p, ok := SegmentCrossing(s1, s2); ok {
			return []Point{p}, false
		}
		return nil, false
	}
	// Parallel. Distinct support lines cannot touch.
	if Orientation(s1.A, s1.B, s2.A) != 0 {
		return nil, false
	}
	// Collinear: compare the 1-D projections onto s1.
	length := d1.Dot(d1)
	t0 := s2.A.Sub(s1.A).Dot(d1)
	t1 := s2.B.Sub(s1.A).Dot(d1)
	lo, hi := t0, t1
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	if lo.Sign() < 0 {
		lo = Exact(0)
	}
	if hi.Cmp(length) > 0 {
		hi = length
	}
	switch hi.Cmp(lo) {
	case -1:
		return nil, false
	case 0:
		t := lo.Div(length)
		return []Point{s1.A.Add(d1.Scale(t))}, false
	default:
		return nil, true
	}
}

// paramOnUnit reports that t is not certified outside [0, 1].
func paramOnUnit(t Scalar) bool {
	return t.Sign() >= 0 && t.Cmp(Exact(1)) <= 0
}
