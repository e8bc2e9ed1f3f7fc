package drawbuilder

import (
	"github.com/gogpu/corerender/internal/bezier"
)

// CurveSegment is one (possibly chopped) piece of a contour's curve,
// carrying the parametric and polar vertex budgets resolved for it
// during the pre-pass.
type CurveSegment struct {
	Pts                [4]bezier.Point
	ParametricSegments int
	PolarSegments      int
}

// MergedVertexCount is how many tessellated vertices this segment
// contributes: parametric and polar segments share their start and
// end vertex.
func (c CurveSegment) MergedVertexCount() int {
	return c.ParametricSegments + c.PolarSegments
}

// JoinSegment is one join or cap vertex budget between two curves.
type JoinSegment struct {
	SegmentCount int
}

// Contour is one moveTo..close (or moveTo..next-moveTo) run's
// midpoint-fan tessellation plan.
type Contour struct {
	Curves         []CurveSegment
	Joins          []JoinSegment // interior joins, one fewer than len(Curves), plus a closing join if IsClosed
	CapVertexCount int
	IsClosed       bool
	IsEmpty        bool
}

// VertexCount is the contour's tessellated vertex count before
// span-alignment padding.
func (c Contour) VertexCount() int {
	n := c.CapVertexCount
	for _, curve := range c.Curves {
		n += curve.MergedVertexCount()
	}
	for _, j := range c.Joins {
		n += j.SegmentCount
	}
	return n
}

// PaddedVertexCount rounds VertexCount up to a multiple of
// MidpointFanPatchSegmentSpan, padding the contour's vertex count up
// to a whole number of midpoint-fan patches.
func (c Contour) PaddedVertexCount() int {
	return padUp(c.VertexCount(), MidpointFanPatchSegmentSpan)
}

func padUp(n, span int) int {
	if span <= 0 {
		return n
	}
	if rem := n % span; rem != 0 {
		return n + (span - rem)
	}
	return n
}

// effectiveRadius is the device-space radius polar segment counting
// budgets against: the stroke radius, or the feather radius for
// feathered fills, whose polar segments derive from the feather
// radius alone.
func effectiveRadius(opts Options) float32 {
	scale := opts.matrixMaxScale()
	if opts.Stroke.Radius > 0 {
		return opts.Stroke.Radius * scale
	}
	if opts.Feather > 0 {
		return opts.Feather * scale
	}
	return 0
}

func devicePrecision(opts Options) float32 {
	if opts.DevicePrecision > 0 {
		return opts.DevicePrecision
	}
	return bezier.DefaultDevicePrecision
}

// needsCurveChop reports whether a cubic must be split into
// non-inflecting, <=180-degree-rotating pieces before budgeting: only
// stroked and feathered paths care about per-piece rotation (plain
// fills tessellate the whole cubic as one parametric run).
func needsCurveChop(opts Options) bool {
	return opts.Stroke.Radius > 0 || opts.Feather > 0
}

// joinSegmentCountFor returns the vertex budget for a join between two
// tangent directions: miter/bevel joins are a fixed cost, round joins
// (and feather-fill joins, which use the same curvature-driven
// formula) scale with the turn angle.
func joinSegmentCountFor(join Join, tan0, tan1 bezier.Vec2, polarSegmentsPerRadian float32) int {
	if join == JoinMiter || join == JoinBevel {
		return MiterOrBevelJoinSegmentCount
	}
	theta := bezier.AngleBetween(tan0, tan1)
	return bezier.PolarSegmentCount(theta, polarSegmentsPerRadian, MaxPolarSegments)
}

// capVertexCountFor returns the vertex budget for a contour's open
// ends. Round caps rotate 180 degrees and need 2 extra vertices versus
// a normal round join of the same angle, to emit vertices at t=0 and
// t=1.
func capVertexCountFor(cap Cap, polarSegmentsPerRadian float32) int {
	switch cap {
	case CapRound:
		return bezier.PolarSegmentCount(pi, polarSegmentsPerRadian, MaxPolarSegments) + 2
	case CapSquare:
		return MiterOrBevelJoinSegmentCount
	default: // CapButt
		return 0
	}
}

const pi = 3.14159265358979323846

// impliedCapForEmptyContour resolves the cap a closed empty stroke
// emits, implied by its join: round->round, miter->square,
// bevel->butt (skip).
func impliedCapForEmptyContour(join Join) Cap {
	switch join {
	case JoinRound:
		return CapRound
	case JoinMiter:
		return CapSquare
	default: // JoinBevel
		return CapButt
	}
}
