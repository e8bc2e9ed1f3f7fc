package drawbuilder

import (
	"github.com/gogpu/corerender/internal/bezier"
	"github.com/gogpu/corerender/internal/rawpath"
)

// Plan is the full tessellation plan for one path under one set of
// Options: one Contour per moveTo..close (or moveTo..next-moveTo) run,
// plus the tessellation mode and winding direction chosen for the
// whole path.
type Plan struct {
	Contours  []Contour
	Mode      Mode
	Direction Direction
}

// TotalVertexCount sums every contour's padded vertex count, doubled
// when the chosen direction is double-sided.
func (p Plan) TotalVertexCount() int {
	n := 0
	for _, c := range p.Contours {
		n += c.PaddedVertexCount()
	}
	if p.Direction.IsDoubleSided() {
		n *= 2
	}
	return n
}

// BuildPlan walks path contour by contour, resolving each one's
// midpoint-fan segment/join/cap budget, and chooses the path's
// tessellation mode and winding direction.
func BuildPlan(path *rawpath.RawPath, opts Options) Plan {
	bounds := path.Bounds()
	mode := MidpointFan
	if ShouldUseInteriorTriangulation(opts, bounds, len(path.Verbs())) {
		mode = InteriorTriangulation
	}
	return Plan{
		Contours:  buildContours(path, opts),
		Mode:      mode,
		Direction: chooseDirection(path, opts, mode),
	}
}

// ShouldUseInteriorTriangulation reports whether a fill qualifies for
// the chopped-polyline-plus-inner-fan mode: large, unstroked,
// unfeathered, non-MSAA fills with few verbs. Strokes and feathered
// fills always need the per-vertex join/cap machinery midpoint-fan
// mode provides, and MSAA's stencil-then-cover approach gets no
// benefit from pre-triangulating the interior.
func ShouldUseInteriorTriangulation(opts Options, bounds rawpath.Bounds, verbCount int) bool {
	if opts.Stroke.Radius > 0 || opts.Feather > 0 || opts.MSAA {
		return false
	}
	if verbCount >= InteriorTriangulationMaxVerbCount {
		return false
	}
	if bounds.Empty() {
		return false
	}
	scale := opts.matrixMaxScale()
	w := (bounds.Right - bounds.Left) * scale
	h := (bounds.Bottom - bounds.Top) * scale
	return w*h > InteriorTriangulationMinAreaPixels
}

// chooseDirection resolves the contour winding direction the whole
// path pushes to the render context in: stroke triangles always
// render forward, since a stroke's two sides are independent offset
// curves rather than a single fillable region whose winding matters.
// Clockwise fills need their triangles reversed (MSAA) or
// double-covered (non-MSAA, so both possible device-space windings
// are covered once the path's own transform is known), and a
// negative-determinant transform flips which physical direction reads
// as clockwise. MSAA non-zero fills additionally dominance-test the
// path's own coarse winding against the transform's handedness, since
// the stencil buffer only accumulates correctly when triangles are
// emitted in the contour's true device-space winding.
func chooseDirection(path *rawpath.RawPath, opts Options, mode Mode) Direction {
	if opts.Stroke.Radius > 0 {
		return Forward
	}

	negatedByTransform := opts.determinant() < 0

	if opts.FillRule == FillClockwise {
		if opts.MSAA {
			if negatedByTransform {
				return Forward
			}
			return Reverse
		}
		if negatedByTransform {
			return ReverseThenForward
		}
		return ForwardThenReverse
	}

	if opts.MSAA && opts.FillRule.EffectiveFillRule() == FillNonZero {
		clockwiseInDeviceSpace := (path.CoarseSignedArea() >= 0) != negatedByTransform
		if clockwiseInDeviceSpace {
			return Reverse
		}
		return Forward
	}

	return Forward
}

// buildContours walks path's verbs, grouping points between a Move
// and the next Close or Move into one Contour each and resolving its
// curve/join/cap budgets as it goes.
func buildContours(path *rawpath.RawPath, opts Options) []Contour {
	points := path.Points()
	precision := devicePrecision(opts)
	xform := bezier.NewVectorTransform(opts.Matrix[0], opts.Matrix[1], opts.Matrix[3], opts.Matrix[4])
	radius := effectiveRadius(opts)
	stroked := opts.Stroke.Radius > 0
	chopCurves := needsCurveChop(opts)

	var polarSegmentsPerRadian float32
	if radius > 0 {
		polarSegmentsPerRadian = bezier.PolarSegmentsPerRadian(precision, radius)
	}

	var contours []Contour
	var cur *Contour
	var lastPoint, startPoint bezier.Point
	var startTangent, lastTangent bezier.Vec2
	haveCurve := false

	appendPiece := func(piece [4]bezier.Point) {
		pow4 := bezier.CubicPow4(piece, precision, xform)
		parametric := bezier.SegmentCountFromPow4(pow4, MaxParametricSegments)
		polar := 0
		if radius > 0 {
			theta := bezier.AngleBetween(bezier.StartTangentOf(piece), bezier.EndTangentOf(piece))
			polar = bezier.PolarSegmentCount(theta, polarSegmentsPerRadian, MaxPolarSegments)
		}

		pieceStartTangent := bezier.StartTangentOf(piece)
		if stroked && haveCurve {
			cur.Joins = append(cur.Joins, JoinSegment{
				SegmentCount: joinSegmentCountFor(opts.Stroke.Join, lastTangent, pieceStartTangent, polarSegmentsPerRadian),
			})
		}
		if !haveCurve {
			startTangent = pieceStartTangent
		}

		cur.Curves = append(cur.Curves, CurveSegment{
			Pts:                piece,
			ParametricSegments: parametric,
			PolarSegments:      polar,
		})
		lastTangent = bezier.EndTangentOf(piece)
		haveCurve = true
	}

	addSegment := func(pts [4]bezier.Point) {
		if !chopCurves {
			appendPiece(pts)
			return
		}
		chops := bezier.FindConvex180Chops(pts)
		if chops.Count == 0 {
			appendPiece(pts)
			return
		}
		raw := bezier.ChopAtValues(pts, chops.T[:chops.Count], chops.Count)
		for i := 0; i+3 < len(raw); i += 3 {
			var piece [4]bezier.Point
			copy(piece[:], raw[i:i+4])
			appendPiece(piece)
		}
	}

	flush := func(closed bool) {
		if cur == nil {
			return
		}
		cur.IsClosed = closed
		if !haveCurve {
			cur.IsEmpty = true
			if stroked {
				if closed {
					cap := impliedCapForEmptyContour(opts.Stroke.Join)
					cur.CapVertexCount = capVertexCountFor(cap, polarSegmentsPerRadian)
				} else {
					cur.CapVertexCount = 2 * capVertexCountFor(opts.Stroke.Cap, polarSegmentsPerRadian)
				}
			}
		} else if stroked {
			if closed {
				cur.Joins = append(cur.Joins, JoinSegment{
					SegmentCount: joinSegmentCountFor(opts.Stroke.Join, lastTangent, startTangent, polarSegmentsPerRadian),
				})
			} else {
				cur.CapVertexCount = 2 * capVertexCountFor(opts.Stroke.Cap, polarSegmentsPerRadian)
			}
		}
		contours = append(contours, *cur)
		cur = nil
		haveCurve = false
	}

	path.Iterate(func(verb rawpath.Verb, idx int) {
		switch verb {
		case rawpath.VerbMove:
			flush(false)
			pt := points[idx]
			cur = &Contour{}
			startPoint, lastPoint = pt, pt
		case rawpath.VerbLine:
			pt := points[idx]
			addSegment([4]bezier.Point{lastPoint, lastPoint, pt, pt})
			lastPoint = pt
		case rawpath.VerbCubic:
			c1, c2, pt := points[idx], points[idx+1], points[idx+2]
			addSegment([4]bezier.Point{lastPoint, c1, c2, pt})
			lastPoint = pt
		case rawpath.VerbClose:
			if stroked && cur != nil && lastPoint != startPoint {
				addSegment([4]bezier.Point{lastPoint, lastPoint, startPoint, startPoint})
			}
			flush(true)
			lastPoint = startPoint
		}
	})
	flush(false)

	return contours
}
