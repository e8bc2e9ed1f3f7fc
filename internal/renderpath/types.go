package renderpath

import "github.com/gogpu/corerender/internal/drawbuilder"

// FillRule mirrors the root package's winding rule choice.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
	Clockwise
)

func (f FillRule) toDrawBuilder() drawbuilder.FillRule {
	switch f {
	case EvenOdd:
		return drawbuilder.FillEvenOdd
	case Clockwise:
		return drawbuilder.FillClockwise
	default:
		return drawbuilder.FillNonZero
	}
}

// cacheKey is what a cached tessellation plan is keyed on: the
// matrix's linear 2x2 (Matrix[0], [1], [3], [4], stored as a, b, c,
// d), the feather radius, and, for strokes, thickness/join/cap.
// Translation (Matrix[2], Matrix[5]) is deliberately excluded: BuildPlan's segment counting only ever consults the
// matrix's linear part, so a path redrawn at a new position with
// everything else unchanged can reuse the exact same Plan with no
// fix-up at all. The fill rule, MSAA flag and device precision are not
// part of the key either, so a call that differs only in those reuses
// the cached plan.
type cacheKey struct {
	a, b, c, d float32
	feather    float32
	stroke     drawbuilder.StrokeStyle
}

func keyFor(opts drawbuilder.Options) cacheKey {
	return cacheKey{
		a:       opts.Matrix[0],
		b:       opts.Matrix[1],
		c:       opts.Matrix[3],
		d:       opts.Matrix[4],
		feather: opts.Feather,
		stroke:  opts.Stroke,
	}
}

type cacheEntry struct {
	valid         bool
	key           cacheKey
	plan          drawbuilder.Plan
	rawMutationID uint64
}
