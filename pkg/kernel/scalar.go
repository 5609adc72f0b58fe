// Package kernel provides the certified arithmetic and 2-D primitive
// kernel for the configuration-space engine. Every scalar carries a
// propagated absolute error radius ("ball arithmetic"); sign and
// equality predicates report zero whenever the certified interval
// straddles zero, so geometric verdicts never flip due to rounding.
//
// The tolerance in every comparison is the propagated error bound
// itself, never an ad hoc epsilon.
package kernel

import "math"

// macheps is the relative rounding error of a single float64 operation.
const macheps = 0x1p-52

// Scalar is a certified scalar: a float64 value together with an
// absolute error radius. The true value is guaranteed to lie in
// [v-e, v+e]. The zero Scalar is an exact zero.
type Scalar struct {
	v float64
	e float64
}

// Exact returns a Scalar representing f with no uncertainty.
func Exact(f float64) Scalar {
	return Scalar{v: f}
}

// Approx returns a Scalar for a value known only to within radius e.
func Approx(f, e float64) Scalar {
	return Scalar{v: f, e: math.Abs(e)}
}

// Float returns the central value of the ball.
func (a Scalar) Float() float64 { return a.v }

// Err returns the absolute error radius of the ball.
func (a Scalar) Err() float64 { return a.e }

// Add returns a+b.
func (a Scalar) Add(b Scalar) Scalar {
	v := a.v + b.v
	return Scalar{v, a.e + b.e + math.Abs(v)*macheps}
}

// Sub returns a-b.
func (a Scalar) Sub(b Scalar) Scalar {
	v := a.v - b.v
	return Scalar{v, a.e + b.e + math.Abs(v)*macheps}
}

// Mul returns a*b.
func (a Scalar) Mul(b Scalar) Scalar {
	v := a.v * b.v
	e := math.Abs(a.v)*b.e + math.Abs(b.v)*a.e + a.e*b.e + math.Abs(v)*macheps
	return Scalar{v, e}
}

// Div returns a/b. If b's ball contains zero the quotient is
// unbounded: the result has infinite error radius and sign 0.
func (a Scalar) Div(b Scalar) Scalar {
	if b.Sign() == 0 {
		return Scalar{v: a.v / b.v, e: math.Inf(1)}
	}
	v := a.v / b.v
	e := (a.e+math.Abs(v)*b.e)/(math.Abs(b.v)-b.e) + math.Abs(v)*macheps
	return Scalar{v, e}
}

// Neg returns -a.
func (a Scalar) Neg() Scalar { return Scalar{-a.v, a.e} }

// Abs returns |a|.
func (a Scalar) Abs() Scalar { return Scalar{math.Abs(a.v), a.e} }

// Sqrt returns the square root of a. A ball certified negative yields
// an unbounded result; a ball straddling zero is clamped at zero.
func (a Scalar) Sqrt() Scalar {
	hi := a.v + a.e
	if hi < 0 {
		return Scalar{v: math.NaN(), e: math.Inf(1)}
	}
	lo := a.v - a.e
	if lo < 0 {
		lo = 0
	}
	slo, shi := math.Sqrt(lo), math.Sqrt(hi)
	v := (slo + shi) / 2
	return Scalar{v, (shi-slo)/2 + v*macheps}
}

// Sign returns +1 or -1 when the ball is certified positive or
// negative, and 0 when it straddles zero (including unbounded balls).
func (a Scalar) Sign() int {
	switch {
	case a.v-a.e > 0:
		return 1
	case a.v+a.e < 0:
		return -1
	default:
		return 0
	}
}

// IsZero reports whether the ball is indistinguishable from zero.
func (a Scalar) IsZero() bool { return a.Sign() == 0 }

// Cmp returns the certified sign of a-b.
func (a Scalar) Cmp(b Scalar) int { return a.Sub(b).Sign() }

// Less reports that a is certified strictly less than b.
func (a Scalar) Less(b Scalar) bool { return a.Cmp(b) < 0 }

// LessEq reports that a is not certified greater than b.
func (a Scalar) LessEq(b Scalar) bool { return a.Cmp(b) <= 0 }
