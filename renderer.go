package corerender

import (
	"fmt"

	"github.com/gogpu/corerender/backend"
	"github.com/gogpu/corerender/internal/clipstack"
	"github.com/gogpu/corerender/internal/drawbuilder"
	"github.com/gogpu/corerender/internal/flush"
	"github.com/gogpu/corerender/internal/isect"
)

// Renderer is the save/restore facade a caller draws through between
// BeginFrame and Flush: save/restore/transform, drawPath, clipPath,
// drawImage. It never touches GPU resources directly -- every draw it
// accepts is ingested into its RenderContext's current logical flush.
//
// Grounded on the teacher's Context draw methods (save/restore stack,
// matrix concatenation, a per-call cull-against-viewport check)
// generalized onto internal/clipstack.ScopeStack for the save/restore
// and clip-rect state, and internal/flush.LogicalFlush.PushDrawBatch
// for the retry-once-on-ingest-failure loop spec.md's renderer facade
// describes.
type Renderer struct {
	ctx    *RenderContext
	scopes *clipstack.ScopeStack
}

func newRenderer(ctx *RenderContext) *Renderer {
	return &Renderer{ctx: ctx, scopes: clipstack.NewScopeStack(clipstack.Identity())}
}

// Save pushes the current transform and clip state.
func (r *Renderer) Save() {
	r.scopes.Save()
}

// Restore pops back to the state active before the matching Save.
func (r *Renderer) Restore() {
	r.scopes.Restore()
}

// Transform concats m onto the current scope's transform, as if m were
// applied before everything already on the stack.
func (r *Renderer) Transform(m Matrix) {
	cur := r.scopes.Current()
	cur.Transform = clipstack.Concat(cur.Transform, toClipTransform(m))
}

// currentMatrix returns the current scope's transform as a Matrix.
func (r *Renderer) currentMatrix() Matrix {
	t := r.scopes.Current().Transform
	return Matrix{A: t.A, B: t.B, C: t.C, D: t.D, E: t.E, F: t.F}
}

func toClipTransform(m Matrix) clipstack.Transform {
	return clipstack.Transform{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// DrawPath tessellates path under paint and the current transform and
// pushes it as a draw into the active logical flush, retrying once
// against a fresh logical flush if ingest fails for any reorder-mode
// resource ceiling. Paths whose device-space bounds fall entirely
// outside the frame's viewport are skipped without tessellating.
func (r *Renderer) DrawPath(path *RenderPath, paint *RenderPaint) error {
	if r.scopes.Current().IsEmpty || path.IsEmpty() {
		return nil
	}

	m := r.currentMatrix()
	bounds := m.mapBoundingBox(path.Bounds())
	viewport := Rect{Right: float32(r.ctx.viewportWidth), Bottom: float32(r.ctx.viewportHeight)}
	if !rectsOverlap(bounds, viewport) {
		return nil
	}

	opts := drawbuilder.Options{
		Matrix:  m.toArray(),
		Stroke:  paint.strokeStyle(),
		Feather: paint.Feather,
		FillRule: fillRuleToDrawBuilder(path.FillRule()),
	}
	plan := path.render.PlanFor(opts)

	d := flush.Draw{
		Type:        flush.DrawMidpointFanPath,
		Plan:        &plan,
		BlendMode:   uint8(paint.BlendMode),
		Bounds:      rectToLTRB(bounds),
		Contents:    drawContentsFor(path, paint),
		ClipElement: r.activeClipElement(),
	}
	if d.ClipElement != nil {
		d.ClipID = d.ClipElement.ClipID
		d.ClipElement.AccumulateReadBounds(clipstackRect(bounds))
	}
	if plan.Mode == drawbuilder.InteriorTriangulation {
		d.Type = flush.DrawInteriorTriangulation
	}

	return r.pushWithRetry([]flush.Draw{d})
}

// ClipPath intersects the current clip with path. An axis-aligned
// rectangle under an axis-aligned transform takes the scope stack's
// ClipRectMatrix fast path; anything else mints a new clip element on
// the active logical flush's clip table at the current scope's stack
// height.
func (r *Renderer) ClipPath(path *RenderPath) error {
	m := r.currentMatrix()

	cur := r.scopes.Current()
	if rect, ok := path.IsAxisAlignedRect(); ok && m.IsAxisAligned() &&
		(!cur.HasClipRect || cur.ClipRectMatrix == toClipTransform(m)) {
		if !cur.HasClipRect {
			cur.ClipRectMatrix = toClipTransform(m)
		}
		r.scopes.IntersectClipRect(clipstackRect(rect))
		return nil
	}

	bounds := m.mapBoundingBox(path.Bounds())
	depth := r.scopes.Current().ClipPathStackHeight
	table := r.ctx.currentLogicalFlush().ClipTable
	_, _ = table.Push(depth, toClipTransform(m), path.render.Raw.MutationID(), toClipFillRule(path.FillRule()), clipstackRect(bounds))
	r.scopes.Current().ClipPathStackHeight = depth + 1
	return nil
}

// DrawImage draws img as an axis-aligned rectangle covering (0,0) to
// (w,h) in path space, under the current transform, blend mode and
// opacity.
func (r *Renderer) DrawImage(img backend.ImageTexture, blend BlendMode, opacity float32) error {
	w, h := float32(img.Width()), float32(img.Height())
	m := r.currentMatrix()
	bounds := m.mapBoundingBox(Rect{Right: w, Bottom: h})
	viewport := Rect{Right: float32(r.ctx.viewportWidth), Bottom: float32(r.ctx.viewportHeight)}
	if !rectsOverlap(bounds, viewport) {
		return nil
	}

	d := flush.Draw{
		Type:             flush.DrawImageRect,
		BlendMode:        uint8(blend),
		Bounds:           rectToLTRB(bounds),
		ImageTextureHash: imageTextureHash(img),
		ClipElement:      r.activeClipElement(),
	}
	if opacity >= 1 {
		d.Contents |= flush.ContentsOpaque
	}
	if d.ClipElement != nil {
		d.ClipID = d.ClipElement.ClipID
		d.ClipElement.AccumulateReadBounds(clipstackRect(bounds))
	}
	return r.pushWithRetry([]flush.Draw{d})
}

// DrawImageMesh draws img warped by a caller-supplied vertex/uv mesh
// rather than as a plain rectangle; meshBounds is the mesh's
// device-space bounds, precomputed by the caller since the mesh
// geometry itself isn't part of this package's data model.
func (r *Renderer) DrawImageMesh(img backend.ImageTexture, meshBounds Rect, blend BlendMode) error {
	viewport := Rect{Right: float32(r.ctx.viewportWidth), Bottom: float32(r.ctx.viewportHeight)}
	if !rectsOverlap(meshBounds, viewport) {
		return nil
	}
	d := flush.Draw{
		Type:             flush.DrawImageMesh,
		BlendMode:        uint8(blend),
		Bounds:           rectToLTRB(meshBounds),
		ImageTextureHash: imageTextureHash(img),
		ClipElement:      r.activeClipElement(),
	}
	if d.ClipElement != nil {
		d.ClipID = d.ClipElement.ClipID
		d.ClipElement.AccumulateReadBounds(clipstackRect(meshBounds))
	}
	return r.pushWithRetry([]flush.Draw{d})
}

// imageTextureHash derives a draw-batching key from img's identity.
// Two draws referencing the same backend.ImageTexture value compare
// equal here and so are eligible to merge.
func imageTextureHash(img backend.ImageTexture) uint64 {
	return fnv64(fmt.Sprintf("%p", img))
}

func fnv64(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

func (r *Renderer) activeClipElement() *clipstack.Element {
	depth := r.scopes.Current().ClipPathStackHeight
	if depth == 0 {
		return nil
	}
	el := r.ctx.currentLogicalFlush().ClipTable.At(depth - 1)
	if el == nil {
		return nil
	}
	return el
}

// pushWithRetry attempts to ingest draws into the active logical
// flush, starting a fresh one and retrying exactly once on failure.
func (r *Renderer) pushWithRetry(draws []flush.Draw) error {
	lf := r.ctx.currentLogicalFlush()
	if err := lf.PushDrawBatch(draws); err != nil {
		r.ctx.startFreshLogicalFlush()
		return r.ctx.currentLogicalFlush().PushDrawBatch(draws)
	}
	return nil
}

func rectsOverlap(a, b Rect) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Left < b.Right && a.Right > b.Left && a.Top < b.Bottom && a.Bottom > b.Top
}

func rectToLTRB(r Rect) isect.LTRB {
	return isect.LTRB{
		Left:   int32(r.Left),
		Top:    int32(r.Top),
		Right:  int32(r.Right) + 1,
		Bottom: int32(r.Bottom) + 1,
	}
}

func clipstackRect(r Rect) clipstack.Rect {
	return clipstack.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func fillRuleToDrawBuilder(f FillRule) drawbuilder.FillRule {
	switch f {
	case EvenOdd:
		return drawbuilder.FillEvenOdd
	case Clockwise:
		return drawbuilder.FillClockwise
	default:
		return drawbuilder.FillNonZero
	}
}

func toClipFillRule(f FillRule) clipstack.FillRule {
	if f == EvenOdd {
		return clipstack.FillRuleEvenOdd
	}
	return clipstack.FillRuleNonZero
}

func drawContentsFor(path *RenderPath, paint *RenderPaint) flush.DrawContents {
	var c flush.DrawContents
	if paint.isOpaque() {
		c |= flush.ContentsOpaque
	}
	if path.FillRule() == EvenOdd {
		c |= flush.ContentsEvenOdd
	}
	if paint.Style == StyleStroke {
		c |= flush.ContentsStroked
	}
	if paint.Feather > 0 {
		c |= flush.ContentsFeathered
	}
	return c
}
