package kernel

import "math"

// Point is a location in the plane with certified coordinates.
type Point struct {
	X, Y Scalar
}

// Vector is a displacement in the plane with certified coordinates.
type Vector struct {
	X, Y Scalar
}

// Pt returns the Point at exact float64 coordinates.
func Pt(x, y float64) Point {
	return Point{Exact(x), Exact(y)}
}

// Vec returns the Vector with exact float64 components.
func Vec(x, y float64) Vector {
	return Vector{Exact(x), Exact(y)}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X.Sub(q.X), p.Y.Sub(q.Y)}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X.Add(v.X), p.Y.Add(v.Y)}
}

// Equal reports certified coincidence of two points.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X.Add(w.X), v.Y.Add(w.Y)}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s Scalar) Vector {
	return Vector{v.X.Mul(s), v.Y.Mul(s)}
}

// Dot returns the dot product v·w.
func (v Vector) Dot(w Vector) Scalar {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y))
}

// Cross returns the 2-D cross product v×w.
func (v Vector) Cross(w Vector) Scalar {
	return v.X.Mul(w.Y).Sub(v.Y.Mul(w.X))
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vector) Perp() Vector {
	return Vector{v.Y.Neg(), v.X}
}

// Length returns |v|.
func (v Vector) Length() Scalar {
	return v.Dot(v).Sqrt()
}

// Unit returns v normalised to unit length. A certified-zero vector
// yields unbounded components.
func (v Vector) Unit() Vector {
	return v.Scale(Exact(1).Div(v.Length()))
}

// Direction returns the unit vector for a heading angle in radians.
// The transcendental evaluations happen in floating point and are
// re-embedded as certified scalars with a one-ulp error radius, so
// downstream predicates stay within the certified model.
func Direction(theta float64) Vector {
	c, s := math.Cos(theta), math.Sin(theta)
	return Vector{
		Approx(c, math.Abs(c)*macheps+0x1p-53),
		Approx(s, math.Abs(s)*macheps+0x1p-53),
	}
}

// Orientation returns the certified turn sign of the triple (a, b, c):
// +1 for a left (counter-clockwise) turn, -1 for a right turn, 0 when
// the points are certified collinear or indistinguishable from it.
func Orientation(a, b, c Point) int {
	return b.Sub(a).Cross(c.Sub(a)).Sign()
}
