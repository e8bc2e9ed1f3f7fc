package drawbuilder

// Patch segment spans and segment-count ceilings. Grounded on
// original_source/renderer/src/draw.cpp's kOuterCurvePatchSegmentSpan/
// kMaxParametricSegments/kMaxPolarSegments/kMidpointFanPatchSegmentSpan,
// whose defining header (shaders/constants.glsl) was not part of the
// retrieved source subset; values here are documented choices matching
// the public renderer's known defaults.
const (
	// OuterCurvePatchSegmentSpan is how many tessellated vertices one
	// outer-curve GPU patch spans, including its closing join.
	OuterCurvePatchSegmentSpan = 8

	// MidpointFanPatchSegmentSpan is the vertex-count alignment every
	// midpoint-fan contour is padded up to.
	MidpointFanPatchSegmentSpan = 8

	// JoinSegmentCount is how much of a patch's segment span its
	// closing join consumes.
	JoinSegmentCount = 1

	// MaxParametricSegments bounds how many parametric (Wang's-formula)
	// segments one curve can resolve to.
	MaxParametricSegments = 1023

	// MaxPolarSegments bounds how many polar (curvature-driven) segments
	// one curve, join, or cap can resolve to.
	MaxPolarSegments = 1023

	// patchSegmentCountExcludingJoin is how many segments of an
	// outer-curve patch are left for curve subdivision once the join is
	// accounted for.
	patchSegmentCountExcludingJoin = OuterCurvePatchSegmentSpan - JoinSegmentCount

	// MaxCurveSubdivisions bounds how many outer-curve patches one
	// curve's parametric segment budget can be spread across.
	MaxCurveSubdivisions = (MaxParametricSegments + patchSegmentCountExcludingJoin - 1) / patchSegmentCountExcludingJoin

	// MiterOrBevelJoinSegmentCount is the fixed vertex cost of a miter
	// or bevel join: miter/bevel joins contribute a fixed 5 segments
	// each, regardless of angle.
	MiterOrBevelJoinSegmentCount = 5

	// InteriorTriangulationMinAreaPixels / MaxVerbCount gate interior
	// triangulation mode's applicability.
	InteriorTriangulationMinAreaPixels = 512 * 512
	InteriorTriangulationMaxVerbCount  = 1000
)
