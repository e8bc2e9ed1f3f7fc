package rawpath

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/corerender/internal/bezier"
)

// Verb identifies one element of a raw path.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbCubic
	VerbClose
)

// Point is the path's point type, shared with internal/bezier so
// tessellation code never has to convert between incompatible point
// types at the raw-path boundary.
type Point = bezier.Point

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Left, Top, Right, Bottom float32
}

// Empty reports whether b has not been grown by any point yet.
func (b Bounds) Empty() bool {
	return b.Left > b.Right || b.Top > b.Bottom
}

func emptyBounds() Bounds {
	return Bounds{
		Left:   float32(math.Inf(1)),
		Top:    float32(math.Inf(1)),
		Right:  float32(math.Inf(-1)),
		Bottom: float32(math.Inf(-1)),
	}
}

// mutationCounter is the renderer's only process-wide mutable state: a
// 64-bit monotonic counter stamping raw-path mutation IDs. Every raw
// path, however many there are and whichever goroutine mutates them,
// draws its IDs from this one counter, so two raw paths never
// coincidentally share a mutation ID. Incremented atomically rather
// than behind a lock, matching logger.go's atomic.Pointer idiom for
// process-wide state.
var mutationCounter atomic.Uint64

func nextMutationID() uint64 {
	return mutationCounter.Add(1)
}

// RawPath is an append-only sequence of verbs and points. Every mutator
// bumps mutationID and invalidates the cached bounds and coarse area.
// It does not track fill rule or any render-side state; see the
// render-side Path wrapper for that.
type RawPath struct {
	verbs  []Verb
	points []Point

	mutationID uint64

	// hasOpenContour is true once a Move has started a contour that
	// has not yet seen a Close. Needed to decide whether the next
	// non-move verb requires an implicit move.
	hasOpenContour bool
	startPoint     Point
	lastPoint      Point

	boundsValid bool
	bounds      Bounds

	areaValid bool
	area      float32
}

// New returns an empty raw path.
func New() *RawPath {
	return &RawPath{bounds: emptyBounds(), boundsValid: true, areaValid: true}
}

// MutationID returns the path's current mutation ID. Two raw paths with
// equal mutation IDs are guaranteed to hold identical verb/point
// content, since the ID is stamped from the same process-wide counter
// every raw path draws from.
func (p *RawPath) MutationID() uint64 { return p.mutationID }

// Verbs returns the path's verb sequence. Callers must not retain it
// past the next mutation.
func (p *RawPath) Verbs() []Verb { return p.verbs }

// Points returns the path's point sequence, indexed the way Iterate's
// pointer-to-first-point arguments index into it. Callers must not
// retain it past the next mutation.
func (p *RawPath) Points() []Point { return p.points }

// Reset empties the path, keeping its backing arrays.
func (p *RawPath) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.hasOpenContour = false
	p.startPoint = Point{}
	p.lastPoint = Point{}
	p.invalidate()
}

func (p *RawPath) invalidate() {
	p.boundsValid = false
	p.areaValid = false
	p.mutationID = nextMutationID()
}

// MoveTo starts a new contour at pt. It never requires an implicit
// move since a move is itself the thing an implicit move would insert.
func (p *RawPath) MoveTo(pt Point) {
	p.verbs = append(p.verbs, VerbMove)
	p.points = append(p.points, pt)
	p.hasOpenContour = true
	p.startPoint = pt
	p.lastPoint = pt
	p.invalidate()
}

// implicitMoveIfNeeded injects a move to the last known point before a
// non-move verb is appended to a path with no open contour, so that a
// line/cubic issued right after Close (or as the very first verb) still
// has a well-defined start point.
func (p *RawPath) implicitMoveIfNeeded() {
	if p.hasOpenContour {
		return
	}
	p.verbs = append(p.verbs, VerbMove)
	p.points = append(p.points, p.lastPoint)
	p.startPoint = p.lastPoint
	p.hasOpenContour = true
}

// LineTo appends a line to pt, injecting an implicit move first if the
// current contour is closed or this is the first verb.
func (p *RawPath) LineTo(pt Point) {
	p.implicitMoveIfNeeded()
	p.verbs = append(p.verbs, VerbLine)
	p.points = append(p.points, pt)
	p.lastPoint = pt
	p.invalidate()
}

// CubicTo appends a cubic Bezier through the two control points to pt,
// injecting an implicit move first if needed.
func (p *RawPath) CubicTo(c1, c2, pt Point) {
	p.implicitMoveIfNeeded()
	p.verbs = append(p.verbs, VerbCubic)
	p.points = append(p.points, c1, c2, pt)
	p.lastPoint = pt
	p.invalidate()
}

// Close closes the current contour, returning the pen to its start
// point. Closing an already-closed or empty path is a no-op.
func (p *RawPath) Close() {
	if !p.hasOpenContour {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.hasOpenContour = false
	p.lastPoint = p.startPoint
	p.invalidate()
}

// IsEmpty reports whether the path has no verbs at all.
func (p *RawPath) IsEmpty() bool { return len(p.verbs) == 0 }

// pointCount returns how many points in Points() a verb consumes.
func pointCount(v Verb) int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// Iterate calls fn once per verb with the verb and the index into
// Points() of that verb's first point (VerbClose passes -1, since it
// carries no point of its own).
func (p *RawPath) Iterate(fn func(verb Verb, pointIndex int)) {
	pointIdx := 0
	for _, v := range p.verbs {
		if v == VerbClose {
			fn(v, -1)
			continue
		}
		fn(v, pointIdx)
		pointIdx += pointCount(v)
	}
}

// PruneEmptySegments removes line verbs whose endpoints equal the
// previous point and cubic verbs whose four control points are all
// equal, in place. It does not remove the implicit/explicit move that
// precedes them, even if the resulting contour then contains only a
// move. Bumps the mutation ID only if something was actually removed.
func (p *RawPath) PruneEmptySegments() {
	newVerbs := p.verbs[:0:0]
	newPoints := p.points[:0:0]
	changed := false

	pointIdx := 0
	prev := Point{}
	for _, v := range p.verbs {
		switch v {
		case VerbMove:
			pt := p.points[pointIdx]
			newVerbs = append(newVerbs, v)
			newPoints = append(newPoints, pt)
			prev = pt
			pointIdx++
		case VerbLine:
			pt := p.points[pointIdx]
			pointIdx++
			if pt == prev {
				changed = true
				continue
			}
			newVerbs = append(newVerbs, v)
			newPoints = append(newPoints, pt)
			prev = pt
		case VerbCubic:
			c1, c2, pt := p.points[pointIdx], p.points[pointIdx+1], p.points[pointIdx+2]
			pointIdx += 3
			if c1 == prev && c2 == prev && pt == prev {
				changed = true
				continue
			}
			newVerbs = append(newVerbs, v)
			newPoints = append(newPoints, c1, c2, pt)
			prev = pt
		case VerbClose:
			newVerbs = append(newVerbs, v)
		}
	}

	if !changed {
		return
	}
	p.verbs = newVerbs
	p.points = newPoints
	p.invalidate()
}

// Bounds returns the axis-aligned hull of every point in the path (not
// tight on curves: control points count, not just the curve itself).
// Cached until the next mutation.
func (p *RawPath) Bounds() Bounds {
	if p.boundsValid {
		return p.bounds
	}
	b := emptyBounds()
	for _, pt := range p.points {
		if pt.X < b.Left {
			b.Left = pt.X
		}
		if pt.X > b.Right {
			b.Right = pt.X
		}
		if pt.Y < b.Top {
			b.Top = pt.Y
		}
		if pt.Y > b.Bottom {
			b.Bottom = pt.Y
		}
	}
	if b.Empty() {
		b = Bounds{}
	}
	p.bounds = b
	p.boundsValid = true
	return b
}

// flattenTolerance is the chord-height tolerance, in local path units,
// used when polygonally approximating curves for CoarseSignedArea.
const flattenTolerance = 8

// CoarseSignedArea returns a signed area over the path's polygonal
// approximation (curves flattened at flattenTolerance), positive when
// the path winds clockwise in a y-down coordinate system. Used to
// decide whether a clockwise-fill path needs its winding inverted
// under the current transform. Cached until the next mutation.
func (p *RawPath) CoarseSignedArea() float32 {
	if p.areaValid {
		return p.area
	}

	var area float32
	var contourStart, prev Point
	haveStart := false

	flushEdge := func(a, b Point) {
		area += a.X*b.Y - b.X*a.Y
	}

	pointIdx := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMove:
			pt := p.points[pointIdx]
			pointIdx++
			if haveStart {
				flushEdge(prev, contourStart)
			}
			contourStart = pt
			prev = pt
			haveStart = true
		case VerbLine:
			pt := p.points[pointIdx]
			pointIdx++
			flushEdge(prev, pt)
			prev = pt
		case VerbCubic:
			pts := [4]Point{prev, p.points[pointIdx], p.points[pointIdx+1], p.points[pointIdx+2]}
			pointIdx += 3
			flattenCubicArea(pts, flattenTolerance, flushEdge)
			prev = pts[3]
		case VerbClose:
			if haveStart {
				flushEdge(prev, contourStart)
				prev = contourStart
			}
		}
	}
	if haveStart {
		flushEdge(prev, contourStart)
	}

	p.area = area * 0.5
	p.areaValid = true
	return p.area
}

// flattenCubicArea walks pts via Wang's-formula-driven uniform chopping
// and calls edge(a, b) for every resulting chord, rather than building
// and returning a polyline, since CoarseSignedArea only needs the
// running cross-product sum.
func flattenCubicArea(pts [4]Point, tolerance float32, edge func(a, b Point)) {
	precision := 1 / tolerance
	n := bezier.SegmentCountFromPow4(bezier.CubicPow4(pts, precision, bezier.IdentityVectorTransform()), 1024)
	if n < 1 {
		n = 1
	}
	eval := bezier.NewEvalCubic(pts)
	prev := pts[0]
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		cur := eval.At(t)
		edge(prev, cur)
		prev = cur
	}
}
