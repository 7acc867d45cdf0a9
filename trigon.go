/*
Package trigon implements solving of triangles from partial information.
The root package holds the numeric foundation: tolerant comparison of
floating point values, conversion between degrees and radians, and
2D points for laying out triangles in the plane.

The solver itself lives in package triangle.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trigon

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trigon'
func tracer() tracing.Trace {
	return tracing.Select("trigon")
}

// === Tolerant Comparison ===================================================

// Tolerance is the default slack for comparing computed values. It is
// scaled by max(1, |a|, |b|), i.e. it acts as an absolute tolerance for
// small numbers and as a relative one for large numbers.
var Tolerance float64 = 2e-7

func slack(a, b, eps float64) float64 {
	return eps * math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// IsEqual is a predicate: is a = b within Tolerance?
func IsEqual(a, b float64) bool {
	return IsEqualEps(a, b, Tolerance)
}

// IsEqualEps is IsEqual with an explicit tolerance.
func IsEqualEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= slack(a, b, eps)
}

// IsLess is a predicate: is a < b by more than Tolerance?
func IsLess(a, b float64) bool {
	return IsLessEps(a, b, Tolerance)
}

// IsLessEps is IsLess with an explicit tolerance.
func IsLessEps(a, b, eps float64) bool {
	return a < b-slack(a, b, eps)
}

// IsLessOrEqual is a predicate: is a < b, or a = b within Tolerance?
func IsLessOrEqual(a, b float64) bool {
	return IsLessOrEqualEps(a, b, Tolerance)
}

// IsLessOrEqualEps is IsLessOrEqual with an explicit tolerance.
func IsLessOrEqualEps(a, b, eps float64) bool {
	return a < b+slack(a, b, eps)
}

// IsGreater is a predicate: is a > b by more than Tolerance?
func IsGreater(a, b float64) bool {
	return IsGreaterEps(a, b, Tolerance)
}

// IsGreaterEps is IsGreater with an explicit tolerance.
func IsGreaterEps(a, b, eps float64) bool {
	return a > b+slack(a, b, eps)
}

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return IsEqual(n, 0)
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp restricts n to [lo, hi]. Used to keep arguments of acos/asin
// in their domain after rounding.
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// IsFinite is a predicate: is n neither NaN nor ±Inf?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Angle Units ===========================================================

// Deg2Rad converts an angle from degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts an angle from radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, represented as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar constructs a pair from a length r and an angle theta (radians).
func Polar(r, theta float64) Pair {
	return Pair(cmplx.Rect(r, theta))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsNaN is a predicate: does either coordinate of p not hold a number?
func (p Pair) IsNaN() bool {
	return cmplx.IsNaN(p.C())
}

// Zap rounds x-part and y-part to zero, if they mean to be zero.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return IsEqual(p.X(), p2.X()) && IsEqual(p.Y(), p2.Y())
}

// Abs returns the distance of p from the origin.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Dist returns the distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return (p2 - p).Abs()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
// Argument is in radians.
func (p Pair) Rotated(theta float64) Pair {
	return p * Polar(1, theta)
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v)
}

// AngleAt returns the interior angle (radians, within [0,π]) at vertex p,
// spanned by the rays towards q and r. Returns NaN if one of the rays
// has zero length.
func (p Pair) AngleAt(q, r Pair) float64 {
	u, v := q-p, r-p
	if Is0(u.Abs()) || Is0(v.Abs()) {
		tracer().Errorf("angle at %s undefined for degenerate rays", p)
		return math.NaN()
	}
	return math.Abs(cmplx.Phase(v.C() / u.C()))
}
