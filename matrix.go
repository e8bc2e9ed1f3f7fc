package corerender

import "math"

// Matrix is a 2x3 affine transform: | a b c | / | d e f |, mapping
// (x, y) to (a*x + b*y + c, d*x + e*y + f).
//
// Grounded on the teacher's matrix.go, narrowed to float32 (the
// precision every downstream tessellation budget works in) and
// reordered to match internal/drawbuilder.Options.Matrix's row-major
// a,b,c/d,e,f layout, so a Matrix converts to drawbuilder.Options by a
// plain field copy.
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation transform.
func Translate(x, y float32) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling transform.
func Scale(x, y float32) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation transform, angle in radians.
func Rotate(angle float32) Matrix {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Mul composes m then other: result maps a point by applying m first,
// then other (other.Mul-style composition, other * m in matrix terms).
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: other.A*m.A + other.B*m.D,
		B: other.A*m.B + other.B*m.E,
		C: other.A*m.C + other.B*m.F + other.C,
		D: other.D*m.A + other.E*m.D,
		E: other.D*m.B + other.E*m.E,
		F: other.D*m.C + other.E*m.F + other.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(x, y float32) (float32, float32) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// MaxScale returns the transform's largest singular value, approximated
// as the max column length of the linear part -- the same budgeting
// approximation internal/drawbuilder.Options.matrixMaxScale uses, so a
// Matrix and the Options built from it always agree on device-space
// scale.
func (m Matrix) MaxScale() float32 {
	col0 := m.A*m.A + m.D*m.D
	col1 := m.B*m.B + m.E*m.E
	s := col0
	if col1 > s {
		s = col1
	}
	return float32(math.Sqrt(float64(s)))
}

// toArray returns m in internal/drawbuilder.Options.Matrix's [6]float32
// row-major layout.
func (m Matrix) toArray() [6]float32 {
	return [6]float32{m.A, m.B, m.C, m.D, m.E, m.F}
}

// IsAxisAligned reports whether m has no rotation or shear, so a
// rectangle mapped through it is still a rectangle with edges parallel
// to the axes.
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// Rect is an axis-aligned floating-point rectangle, empty when
// Right <= Left or Bottom <= Top or any component is NaN.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	if r.Right <= r.Left || r.Bottom <= r.Top {
		return true
	}
	return r.Left != r.Left || r.Top != r.Top || r.Right != r.Right || r.Bottom != r.Bottom
}

// mapBoundingBox returns the tight axis-aligned bounding box of r's
// four corners mapped through m.
func (m Matrix) mapBoundingBox(r Rect) Rect {
	xs := [4]float32{}
	ys := [4]float32{}
	corners := [4][2]float32{{r.Left, r.Top}, {r.Right, r.Top}, {r.Right, r.Bottom}, {r.Left, r.Bottom}}
	for i, c := range corners {
		xs[i], ys[i] = m.TransformPoint(c[0], c[1])
	}
	out := Rect{Left: xs[0], Top: ys[0], Right: xs[0], Bottom: ys[0]}
	for i := 1; i < 4; i++ {
		if xs[i] < out.Left {
			out.Left = xs[i]
		}
		if xs[i] > out.Right {
			out.Right = xs[i]
		}
		if ys[i] < out.Top {
			out.Top = ys[i]
		}
		if ys[i] > out.Bottom {
			out.Bottom = ys[i]
		}
	}
	return out
}
