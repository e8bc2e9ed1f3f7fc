package bezier

import "math"

// Point is a 2D point in single precision. Kept as an internal copy
// (rather than importing the root package's Point) to avoid an import
// cycle, matching the pattern internal/stroke uses for the same reason.
type Point struct {
	X, Y float32
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

func (p Point) Sub(q Point) Vec2    { return Vec2{p.X - q.X, p.Y - q.Y} }
func (p Point) Add(v Vec2) Point    { return Point{p.X + v.X, p.Y + v.Y} }
func (p Point) Lerp(q Point, t float32) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (v Vec2) Add(w Vec2) Vec2      { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2      { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(w Vec2) float32   { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Cross(w Vec2) float32 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}
func (v Vec2) Length() float32 { return float32(math.Sqrt(float64(v.LengthSquared()))) }

// Normalized returns v scaled to unit length, or the zero vector if v is
// zero or non-finite.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 || math.IsNaN(float64(l)) {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// VectorTransform represents the upper-left 2x2 of an affine transform,
// applied to difference vectors (not points) so that length-based
// formulas such as Wang's can be evaluated in device space.
//
// Ported from rive's wangs_formula.hpp VectorXform.
type VectorTransform struct {
	A, B, C, D float32 // [[A B] [C D]]
}

// IdentityVectorTransform returns the transform that leaves vectors
// unchanged.
func IdentityVectorTransform() VectorTransform {
	return VectorTransform{A: 1, B: 0, C: 0, D: 1}
}

// NewVectorTransform builds a VectorTransform from the 2x2 part of an
// affine matrix (a, b, c, d) in the (a b; c d) * (x y) convention used by
// this module's Transform type.
func NewVectorTransform(a, b, c, d float32) VectorTransform {
	return VectorTransform{A: a, B: b, C: c, D: d}
}

// Apply maps a difference vector through the 2x2.
func (x VectorTransform) Apply(v Vec2) Vec2 {
	return Vec2{
		X: x.A*v.X + x.B*v.Y,
		Y: x.C*v.X + x.D*v.Y,
	}
}
