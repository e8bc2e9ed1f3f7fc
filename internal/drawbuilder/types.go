package drawbuilder

import "math"

// Join selects how two stroked segments meet at a shared vertex.
// Duplicated locally rather than imported from internal/stroke, the
// way every internal package keeps its own small value types: this
// package works in float32 device space, while internal/stroke is
// float64 path space.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Cap selects how an open contour's unstroked ends are finished.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Direction is the winding direction a contour's stroke or fill
// triangles are emitted in.
type Direction int

const (
	// Forward emits triangles following the contour's own winding.
	Forward Direction = iota
	// Reverse emits triangles in the opposite winding.
	Reverse
	// ForwardThenReverse double-covers the contour, forward first.
	ForwardThenReverse
	// ReverseThenForward double-covers the contour, reverse first.
	ReverseThenForward
)

// IsDoubleSided reports whether dir requires two independent vertex
// ranges, doubled because the contour is covered in both winding
// directions.
func (dir Direction) IsDoubleSided() bool {
	return dir == ForwardThenReverse || dir == ReverseThenForward
}

// Mode is the high-level tessellation strategy chosen for a path.
type Mode int

const (
	MidpointFan Mode = iota
	InteriorTriangulation
)

// FillRule mirrors the root package's clockwise/nonzero/evenodd
// choice. Clockwise collapses to NonZero for consumers, like the
// interior triangulator, that only understand the two standard
// winding rules.
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
	FillClockwise
)

// EffectiveFillRule collapses Clockwise to NonZero for consumers (like
// the interior-fan triangulator) that only understand the standard
// two winding rules.
func (f FillRule) EffectiveFillRule() FillRule {
	if f == FillClockwise {
		return FillNonZero
	}
	return f
}

// StrokeStyle carries the stroke parameters needed to budget join and
// cap vertices. Radius <= 0 means the path is filled, not stroked.
type StrokeStyle struct {
	Radius float32
	Join   Join
	Cap    Cap
}

// Options selects how one path should be planned.
type Options struct {
	Matrix          [6]float32 // row-major 2x3: a b c / d e f
	Stroke          StrokeStyle
	Feather         float32
	FillRule        FillRule
	MSAA            bool
	DevicePrecision float32
}

// matrixMaxScale returns the transform's largest singular value,
// approximated the way the original renderer does for budgeting
// purposes: the max column length of the linear part.
func (o Options) matrixMaxScale() float32 {
	a, b, d, e := o.Matrix[0], o.Matrix[1], o.Matrix[3], o.Matrix[4]
	col0 := a*a + d*d
	col1 := b*b + e*e
	m := col0
	if col1 > m {
		m = col1
	}
	return float32(math.Sqrt(float64(m)))
}

// MatrixMaxScale exposes Options.matrixMaxScale to other packages that
// need the same device-space scale BuildPlan budgets against, such as
// renderpath's feather-softening cache.
func MatrixMaxScale(o Options) float32 {
	return o.matrixMaxScale()
}

func (o Options) determinant() float32 {
	a, b, d, e := o.Matrix[0], o.Matrix[1], o.Matrix[3], o.Matrix[4]
	return a*e - b*d
}
