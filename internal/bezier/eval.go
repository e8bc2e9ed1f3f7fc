package bezier

import "math"

// EvalCubic precomputes the power-basis coefficients of a cubic Bezier
// (A, B, C, P0) so that the curve can be evaluated at one or two
// parameter values without re-deriving the coefficients each time.
//
//	C = 3*(P1-P0)
//	B = 3*(P2-P1) - C
//	A = P3 - P0 - 3*(P2-P1)
type EvalCubic struct {
	pts        [4]Point
	a, b, c Vec2
}

// NewEvalCubic precomputes the coefficients for pts.
func NewEvalCubic(pts [4]Point) EvalCubic {
	p0, p1, p2, p3 := pts[0], pts[1], pts[2], pts[3]
	c := p1.Sub(p0).Scale(3)
	p2p1 := p2.Sub(p1).Scale(3)
	b := p2p1.Sub(c)
	a := p3.Sub(p0).Sub(p2p1)
	return EvalCubic{pts: pts, a: a, b: b, c: c}
}

// At evaluates the curve at a single parameter t.
func (e EvalCubic) At(t float32) Point {
	// P(t) = A*t^3 + B*t^2 + C*t + P0, evaluated with Horner's rule.
	v := e.a.Scale(t).Add(e.b).Scale(t).Add(e.c).Scale(t)
	return e.pts[0].Add(v)
}

// AtTwo evaluates the curve at two parameter values, returning both
// points. This mirrors the original's 4-lane SIMD evaluation of two t's
// at once; in Go the two evaluations are simply sequential, but grouped
// here so call sites that want "both chop endpoints in one call" have a
// single entry point.
func (e EvalCubic) AtTwo(t0, t1 float32) (Point, Point) {
	return e.At(t0), e.At(t1)
}

// EvalCubicAt evaluates a cubic at t without precomputing an EvalCubic.
// Convenience wrapper for one-shot evaluation.
func EvalCubicAt(pts [4]Point, t float32) Point {
	return NewEvalCubic(pts).At(t)
}

// Tangent returns the (unnormalized) derivative of the curve at t:
// P'(t) = 3*A*t^2 + 2*B*t + C.
func (e EvalCubic) Tangent(t float32) Vec2 {
	return e.a.Scale(3 * t * t).Add(e.b.Scale(2 * t)).Add(e.c)
}

// StartTangentOf returns the curve's initial tangent direction, falling
// back to the chord to the first distinct control point if P0==P1==P2,
// and finally to the full chord P0->P3.
func StartTangentOf(pts [4]Point) Vec2 {
	for _, p := range pts[1:] {
		v := p.Sub(pts[0])
		if v.LengthSquared() > 0 {
			return v
		}
	}
	return Vec2{}
}

// EndTangentOf returns the curve's final tangent direction, the mirror
// of StartTangentOf.
func EndTangentOf(pts [4]Point) Vec2 {
	for i := 2; i >= 0; i-- {
		v := pts[3].Sub(pts[i])
		if v.LengthSquared() > 0 {
			return v
		}
	}
	return Vec2{}
}

// SolveTForTangentDirection finds the parameter t at which the cubic's
// tangent is parallel to dir, returning the root closest to the curve's
// midpoint. ok is false if no root lies strictly within (0, 1).
//
// Derived from crossing the power-basis coefficients with dir (the
// tangent is parallel to dir exactly where cross(P'(t), dir) == 0, a
// quadratic in t) and solving via the numerically stable
// citardauq variant so near-zero leading coefficients don't blow up the
// usual quadratic formula.
func SolveTForTangentDirection(pts [4]Point, dir Vec2) (t float32, ok bool) {
	e := NewEvalCubic(pts)
	a := e.a.Cross(dir)
	bOver2 := e.b.Cross(dir) / 3
	c := e.c.Cross(dir) / 3

	discrOver4 := bOver2*bOver2 - a*c
	if discrOver4 < 0 {
		return 0, false
	}
	q := float32(math.Sqrt(float64(discrOver4)))
	q = -bOver2 - float32(math.Copysign(float64(q), float64(bOver2)))

	root1 := q / a
	root2 := c / q
	if math.Abs(float64(root1-0.5)) < math.Abs(float64(root2-0.5)) {
		t = root1
	} else {
		t = root2
	}
	return t, t > 0 && t < 1
}

// Rotate rotates v by theta radians.
func (v Vec2) Rotate(theta float32) Vec2 {
	s, c := math.Sincos(float64(theta))
	return Vec2{
		X: v.X*float32(c) - v.Y*float32(s),
		Y: v.X*float32(s) + v.Y*float32(c),
	}
}
