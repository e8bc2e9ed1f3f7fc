package bezier

import "math"

// Wang's formula gives the minimum number of evenly spaced (in the
// parametric sense) line segments a cubic must be chopped into to stay
// within 1/precision pixels of the true curve:
//
//	maxLength = max(|P0-2P1+P2|, |P1-2P2+P3|)
//	N = sqrt(maxLength * precision * 3*2/8)
//
// Ported from rive's wangs_formula.hpp, including the bit-level
// nextlog2/nextlog4/nextlog16 helpers so integer segment counts match
// the reference exactly.

// lengthTermPow2Cubic is 3^2 * 2^2 / 64 = 9*4/64 = 0.5625, i.e.
// (3*2/8)^2, multiplied by precision^2.
func lengthTermPow2Cubic(precision float32) float32 {
	const degree = 3
	return (degree * degree) * ((degree - 1) * (degree - 1)) / 64.0 * (precision * precision)
}

// CubicPow4 returns Wang's formula for a cubic, raised to the 4th
// power, optionally applying a VectorTransform to the difference
// vectors first so the result reflects device space.
func CubicPow4(pts [4]Point, precision float32, xform VectorTransform) float32 {
	d1 := diff2(pts[0], pts[1], pts[2])
	d2 := diff2(pts[1], pts[2], pts[3])
	d1 = xform.Apply(d1)
	d2 = xform.Apply(d2)
	l1 := d1.X*d1.X + d1.Y*d1.Y
	l2 := d2.X*d2.X + d2.Y*d2.Y
	maxLenSq := l1
	if l2 > maxLenSq {
		maxLenSq = l2
	}
	return maxLenSq * lengthTermPow2Cubic(precision)
}

// diff2 returns p0 - 2*p1 + p2 as a vector.
func diff2(p0, p1, p2 Point) Vec2 {
	return Vec2{
		X: p0.X - 2*p1.X + p2.X,
		Y: p0.Y - 2*p1.Y + p2.Y,
	}
}

func root4(x float32) float32 {
	return float32(math.Sqrt(math.Sqrt(float64(x))))
}

// Cubic returns Wang's formula (segment count, not rounded) for a cubic.
func Cubic(pts [4]Point, precision float32, xform VectorTransform) float32 {
	return root4(CubicPow4(pts, precision, xform))
}

// nextLog2 returns the log2 of x were it rounded up to the next power
// of 2, using the exact IEEE-754 bit trick from the original so results
// agree bit-for-bit with a C++ reference. Returns 0 for x <= 0 or NaN.
func nextLog2(x float32) int {
	bits := math.Float32bits(x)
	bits += (1 << 23) - 1
	exp := int(int32(bits)>>23) - 127
	if exp < 0 {
		return 0
	}
	return exp
}

func nextLog4(x float32) int  { return (nextLog2(x) + 1) >> 1 }
func nextLog16(x float32) int { return (nextLog2(x) + 3) >> 2 }

// CubicLog2 returns ceil(log2(Cubic(pts, precision, xform))), computed
// via the exact bit-trick path so it agrees with the scalar reference
// implementation.
func CubicLog2(pts [4]Point, precision float32, xform VectorTransform) int {
	return nextLog16(CubicPow4(pts, precision, xform))
}

// WorstCaseCubicPow4 returns the maximum possible Wang's-formula value
// (4th power) for any cubic whose device-space bounding box is
// devWidth x devHeight -- used before real control points are available,
// to decide up-front whether interior triangulation is worth attempting.
func WorstCaseCubicPow4(devWidth, devHeight, precision float32) float32 {
	kk := lengthTermPow2Cubic(precision)
	return 4 * kk * (devWidth*devWidth + devHeight*devHeight)
}

// WorstCaseCubicLog2 returns nextlog16(WorstCaseCubicPow4(...)).
func WorstCaseCubicLog2(devWidth, devHeight, precision float32) int {
	return nextLog16(WorstCaseCubicPow4(devWidth, devHeight, precision))
}

// SegmentCount converts a raw (non-log2) Wang's-formula value into an
// integer segment count, clamped to [1, maxSegments].
func SegmentCount(value float32, maxSegments int) int {
	n := int(math.Ceil(float64(value)))
	if n < 1 {
		n = 1
	}
	if n > maxSegments {
		n = maxSegments
	}
	return n
}

// SegmentCountFromPow4 converts a raw (4th-power) Wang's-formula value
// into an integer segment count via the integer 4th-root ceil, clamped
// to [1, maxSegments]. Resolves a batched parametric segment count by
// taking the integer ceil of the fourth root of n^4 directly, rather
// than a scalar square-root-of-square-root per curve.
func SegmentCountFromPow4(pow4 float32, maxSegments int) int {
	if pow4 < 0 {
		pow4 = 0
	}
	n := int(math.Ceil(float64(root4(pow4))))
	if n < 1 {
		n = 1
	}
	if n > maxSegments {
		n = maxSegments
	}
	return n
}
