package cspace

import (
	"math"
	"testing"

	"github.com/chazu/burst/pkg/kernel"
)

func squareSpace(t *testing.T) *Space {
	t.Helper()
	s, err := Construct(squareEnclosure(t), 1)
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	return s
}

func arrowheadSpace(t *testing.T) *Space {
	t.Helper()
	s, err := Construct(arrowheadEnclosure(t), 1)
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	return s
}

func probe(ax, ay, bx, by float64) kernel.Segment {
	return kernel.Segment{A: kernel.Pt(ax, ay), B: kernel.Pt(bx, by)}
}

// ---------------------------------------------------------------------------
// Membership
// ---------------------------------------------------------------------------

func TestContains(t *testing.T) {
	s := squareSpace(t)
	cases := []struct {
		name string
		p    kernel.Point
		want bool
	}{
		{"interior point", kernel.Pt(5, 5), false},
		{"left edge", kernel.Pt(1, 5), true},
		{"corner", kernel.Pt(1, 1), true},
		{"between enclosure and boundary", kernel.Pt(0.5, 5), false},
		{"outside the enclosure", kernel.Pt(-3, 5), false},
		{"on the enclosure wall itself", kernel.Pt(0, 5), false},
	}
	for _, c := range cases {
		if got := s.Contains(c.p); got != c.want {
			t.Errorf("%s: Contains = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestContainsArcPoint(t *testing.T) {
	s := arrowheadSpace(t)
	if !s.Contains(kernel.Pt(0, 1)) {
		t.Error("top of the rounding arc must be on the boundary")
	}
	if s.Contains(kernel.Pt(0, 0.5)) {
		t.Error("inside the rounding circle is not on the boundary")
	}
}

// ---------------------------------------------------------------------------
// Crossing counts
// ---------------------------------------------------------------------------

func TestCountCrossings(t *testing.T) {
	s := squareSpace(t)
	cases := []struct {
		name  string
		probe kernel.Segment
		want  int
	}{
		{"clean pass through", probe(-5, 5, 15, 5), 2},
		{"stops before the boundary", probe(-5, 5, 0, 5), 0},
		{"terminates inside", probe(-5, 5, 5, 5), 1},
		{"misses entirely", probe(-5, 20, 15, 20), 0},
		{"collinear with an edge", probe(-5, 1, 15, 1), 2},
	}
	for _, c := range cases {
		if got := s.CountCrossings(c.probe); got != c.want {
			t.Errorf("%s: CountCrossings = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestCountCrossingsThroughVertexIsOne(t *testing.T) {
	// A diagonal probe entering exactly at the (1,1) corner and
	// stopping inside: the vertex counts once, not once per incident
	// edge.
	s := squareSpace(t)
	if got := s.CountCrossings(probe(0, 0, 5, 5)); got != 1 {
		t.Fatalf("CountCrossings through corner = %d, want 1", got)
	}
}

func TestCountCrossingsOnArc(t *testing.T) {
	s := arrowheadSpace(t)

	// Chord through the rounding arc at height 0.9: two crossings.
	if got := s.CountCrossings(probe(-2, 0.9, 2, 0.9)); got != 2 {
		t.Errorf("chord through arc: CountCrossings = %d, want 2", got)
	}

	// Tangent to the top of the arc: a graze, not a crossing; the
	// adjacent offset segments are not reached either.
	if got := s.CountCrossings(probe(-2, 1, 2, 1)); got != 0 {
		t.Errorf("tangent graze: CountCrossings = %d, want 0", got)
	}

	// Below the arc's angular span, the probe meets the straight
	// offsets of the notch edges instead.
	if got := s.CountCrossings(probe(-2, 0.5, 2, 0.5)); got != 2 {
		t.Errorf("through the notch offsets: CountCrossings = %d, want 2", got)
	}
}

// ---------------------------------------------------------------------------
// First crossing
// ---------------------------------------------------------------------------

func TestFirstCrossingAcross(t *testing.T) {
	s := squareSpace(t)
	p, ok := s.FirstCrossing(kernel.Pt(1, 5), kernel.Vec(1, 0))
	if !ok {
		t.Fatal("expected a crossing")
	}
	if !p.Equal(kernel.Pt(9, 5)) {
		t.Fatalf("crossing at (%v, %v), want (9, 5)", p.X.Float(), p.Y.Float())
	}
}

func TestFirstCrossingSlidesAlongEdgeToCorner(t *testing.T) {
	// From a corner along the bottom edge: the collinear edge itself
	// is not a crossing; the far corner is, via the adjacent edge.
	s := squareSpace(t)
	p, ok := s.FirstCrossing(kernel.Pt(1, 1), kernel.Vec(1, 0))
	if !ok {
		t.Fatal("expected a crossing")
	}
	if !p.Equal(kernel.Pt(9, 1)) {
		t.Fatalf("crossing at (%v, %v), want (9, 1)", p.X.Float(), p.Y.Float())
	}
}

func TestFirstCrossingOutwardHeadingHasNone(t *testing.T) {
	s := squareSpace(t)
	if _, ok := s.FirstCrossing(kernel.Pt(1, 5), kernel.Vec(-1, 0)); ok {
		t.Fatal("heading straight out of the region must have no forward crossing")
	}
}

func TestFirstCrossingPicksNearest(t *testing.T) {
	// Diagonal from the bottom-left corner: the far corner (9,9) is
	// the only other boundary point on the diagonal.
	s := squareSpace(t)
	p, ok := s.FirstCrossing(kernel.Pt(1, 1), kernel.Vec(1, 1))
	if !ok {
		t.Fatal("expected a crossing")
	}
	if !p.Equal(kernel.Pt(9, 9)) {
		t.Fatalf("crossing at (%v, %v), want (9, 9)", p.X.Float(), p.Y.Float())
	}
}

func TestFirstCrossingFromArcThroughOppositeVertex(t *testing.T) {
	// From the top of the rounding arc straight up: leaves the arc
	// (its own residual root is the origin, which is excluded) and
	// lands exactly on the sharp offset corner below the apex, where
	// the two wing offsets meet at (0, 20-sqrt(5)).
	s := arrowheadSpace(t)
	p, ok := s.FirstCrossing(kernel.Pt(0, 1), kernel.Vec(0, 1))
	if !ok {
		t.Fatal("expected a crossing")
	}
	wantY := 20 - math.Sqrt(5)
	if math.Abs(p.X.Float()) > 1e-9 || math.Abs(p.Y.Float()-wantY) > 1e-9 {
		t.Fatalf("crossing at (%v, %v), want (0, %v)", p.X.Float(), p.Y.Float(), wantY)
	}
}
