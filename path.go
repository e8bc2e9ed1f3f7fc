package corerender

import (
	"github.com/gogpu/corerender/internal/rawpath"
	"github.com/gogpu/corerender/internal/renderpath"
)

// FillRule selects how a path's winding is resolved to inside/outside.
type FillRule = renderpath.FillRule

const (
	NonZero   = renderpath.NonZero
	EvenOdd   = renderpath.EvenOdd
	Clockwise = renderpath.Clockwise
)

// RenderPath is a caller-owned, mutable vector path: move/line/cubic
// verbs plus a fill rule, thinly wrapping internal/renderpath.Path so
// the renderer facade's drawPath/clipPath calls get tessellation-plan
// caching for free.
//
// Grounded on the teacher's path_builder.go for the verb-builder shape
// (moveTo/lineTo/cubicTo/close as the only mutators, quadratics always
// elevated to cubics before storage).
type RenderPath struct {
	render *renderpath.Path
}

// NewRenderPath returns an empty path with the non-zero fill rule.
func NewRenderPath() *RenderPath {
	return &RenderPath{render: renderpath.New(rawpath.New())}
}

// MoveTo starts a new contour at (x, y).
func (p *RenderPath) MoveTo(x, y float32) {
	p.render.Raw.MoveTo(rawpath.Point{X: x, Y: y})
}

// LineTo appends a line segment to (x, y).
func (p *RenderPath) LineTo(x, y float32) {
	p.render.Raw.LineTo(rawpath.Point{X: x, Y: y})
}

// QuadTo appends a quadratic Bezier, elevated to the cubic the raw
// path stores internally: C1 = start + 2/3*(ctrl-start), C2 = end +
// 2/3*(ctrl-end).
func (p *RenderPath) QuadTo(cx, cy, x, y float32) {
	pts := p.render.Raw.Points()
	var start rawpath.Point
	if n := len(pts); n > 0 {
		start = pts[n-1]
	}
	c1x := start.X + 2.0/3.0*(cx-start.X)
	c1y := start.Y + 2.0/3.0*(cy-start.Y)
	c2x := x + 2.0/3.0*(cx-x)
	c2y := y + 2.0/3.0*(cy-y)
	p.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// CubicTo appends a cubic Bezier segment.
func (p *RenderPath) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.render.Raw.CubicTo(
		rawpath.Point{X: c1x, Y: c1y},
		rawpath.Point{X: c2x, Y: c2y},
		rawpath.Point{X: x, Y: y},
	)
}

// Close closes the current contour.
func (p *RenderPath) Close() {
	p.render.Raw.Close()
}

// Rewind clears the path back to empty, keeping its fill rule.
func (p *RenderPath) Rewind() {
	p.render.Raw.Reset()
}

// SetFillRule sets the path's winding rule.
func (p *RenderPath) SetFillRule(rule FillRule) {
	p.render.FillRule = rule
}

// FillRule returns the path's winding rule.
func (p *RenderPath) FillRule() FillRule {
	return p.render.FillRule
}

// IsEmpty reports whether the path has no verbs.
func (p *RenderPath) IsEmpty() bool {
	return p.render.Raw.IsEmpty()
}

// Bounds returns the path's (un-transformed) bounding box.
func (p *RenderPath) Bounds() Rect {
	b := p.render.Raw.Bounds()
	if b.Empty() {
		return Rect{}
	}
	return Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// IsAxisAlignedRect reports whether p is exactly one closed contour
// shaped like an axis-aligned rectangle (a move, three axis-parallel
// lines and a close, the fourth edge implied by the close), returning
// its bounds if so. Used to route a clip path through the scope
// stack's ClipRectMatrix fast path instead of the general clip table.
func (p *RenderPath) IsAxisAlignedRect() (Rect, bool) {
	verbs := p.render.Raw.Verbs()
	points := p.render.Raw.Points()
	if len(verbs) != 5 || len(points) != 4 {
		return Rect{}, false
	}
	if verbs[0] != rawpath.VerbMove || verbs[4] != rawpath.VerbClose {
		return Rect{}, false
	}
	if verbs[1] != rawpath.VerbLine || verbs[2] != rawpath.VerbLine || verbs[3] != rawpath.VerbLine {
		return Rect{}, false
	}
	pts := [4]rawpath.Point{points[0], points[1], points[2], points[3]}
	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[(i+1)%4]
		if a.X != b.X && a.Y != b.Y {
			return Rect{}, false
		}
	}
	left, right := pts[0].X, pts[0].X
	top, bottom := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		if pt.X < left {
			left = pt.X
		}
		if pt.X > right {
			right = pt.X
		}
		if pt.Y < top {
			top = pt.Y
		}
		if pt.Y > bottom {
			bottom = pt.Y
		}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, true
}

// AddRenderPath appends other's contours to p, as if each of other's
// verbs had been replayed against p directly.
func (p *RenderPath) AddRenderPath(other *RenderPath) {
	addPathVerbs(p, other, false)
}

// AddRenderPathBackwards appends other's contours to p in reverse verb
// order, used to build a double-covered contour for a clockwise fill
// under a handedness-flipping transform.
func (p *RenderPath) AddRenderPathBackwards(other *RenderPath) {
	addPathVerbs(p, other, true)
}

func addPathVerbs(dst, src *RenderPath, backwards bool) {
	verbs := src.render.Raw.Verbs()
	points := src.render.Raw.Points()
	if backwards {
		replayBackwards(dst, verbs, points)
		return
	}
	idx := 0
	for _, v := range verbs {
		switch v {
		case rawpath.VerbMove:
			dst.MoveTo(points[idx].X, points[idx].Y)
			idx++
		case rawpath.VerbLine:
			dst.LineTo(points[idx].X, points[idx].Y)
			idx++
		case rawpath.VerbCubic:
			dst.CubicTo(points[idx].X, points[idx].Y, points[idx+1].X, points[idx+1].Y, points[idx+2].X, points[idx+2].Y)
			idx += 3
		case rawpath.VerbClose:
			dst.Close()
		}
	}
}

// cubicSeg is one contour segment expressed as a full cubic, a line's
// control points collapsed onto its endpoints.
type cubicSeg struct {
	p0, p1, p2, p3 rawpath.Point
}

func (s cubicSeg) reversed() cubicSeg {
	return cubicSeg{p0: s.p3, p1: s.p2, p2: s.p1, p3: s.p0}
}

// replayBackwards walks src's verbs/points and re-emits every contour
// with its segments in reverse order and each segment's own direction
// flipped, preserving closedness.
func replayBackwards(dst *RenderPath, verbs []rawpath.Verb, points []rawpath.Point) {
	var segs []cubicSeg
	closed := false
	idx := 0
	var cur rawpath.Point

	flush := func() {
		if len(segs) == 0 {
			return
		}
		last := segs[len(segs)-1].reversed()
		dst.MoveTo(last.p0.X, last.p0.Y)
		for i := len(segs) - 1; i >= 0; i-- {
			s := segs[i].reversed()
			if s.p1 == s.p0 && s.p2 == s.p3 {
				dst.LineTo(s.p3.X, s.p3.Y)
			} else {
				dst.CubicTo(s.p1.X, s.p1.Y, s.p2.X, s.p2.Y, s.p3.X, s.p3.Y)
			}
		}
		if closed {
			dst.Close()
		}
		segs = segs[:0]
		closed = false
	}

	for _, v := range verbs {
		switch v {
		case rawpath.VerbMove:
			flush()
			cur = points[idx]
			idx++
		case rawpath.VerbLine:
			pt := points[idx]
			segs = append(segs, cubicSeg{p0: cur, p1: cur, p2: pt, p3: pt})
			cur = pt
			idx++
		case rawpath.VerbCubic:
			c1, c2, pt := points[idx], points[idx+1], points[idx+2]
			segs = append(segs, cubicSeg{p0: cur, p1: c1, p2: c2, p3: pt})
			cur = pt
			idx += 3
		case rawpath.VerbClose:
			closed = true
		}
	}
	flush()
}
