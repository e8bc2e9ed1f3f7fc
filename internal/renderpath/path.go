package renderpath

import (
	"github.com/gogpu/corerender/internal/drawbuilder"
	"github.com/gogpu/corerender/internal/feather"
	"github.com/gogpu/corerender/internal/rawpath"
)

// Path is the render-side wrapper around a raw path: a fill rule, a
// feather-softened copy cached against the raw path's mutation ID,
// and the two paint-draw caches (fill and stroke) a renderer consults
// before re-running tessellation planning.
type Path struct {
	Raw      *rawpath.RawPath
	FillRule FillRule

	featherMutationID uint64
	featherRadius     float32
	featherMaxScale   float32
	featherSoftened   *rawpath.RawPath

	fillCache   cacheEntry
	strokeCache cacheEntry
}

// New wraps an existing raw path. The raw path remains caller-owned;
// Path only reads it.
func New(raw *rawpath.RawPath) *Path {
	return &Path{Raw: raw, FillRule: NonZero}
}

// softenedPath returns the feather-softened copy of Raw for the given
// feather radius and matrix max-scale, rebuilding it only when the raw
// path has mutated or the feather parameters changed since the last
// call. feather<=0 still goes through MakeSoftenedCopy, which returns
// an unsoftened structural copy in that case, so downstream code
// always has a consistent path to plan from.
func (p *Path) softenedPath(featherRadius, maxScale float32) *rawpath.RawPath {
	if p.featherSoftened != nil &&
		p.featherMutationID == p.Raw.MutationID() &&
		p.featherRadius == featherRadius &&
		p.featherMaxScale == maxScale {
		return p.featherSoftened
	}
	p.featherSoftened = feather.MakeSoftenedCopy(p.Raw, featherRadius, maxScale)
	p.featherMutationID = p.Raw.MutationID()
	p.featherRadius = featherRadius
	p.featherMaxScale = maxScale
	return p.featherSoftened
}

// invalidateIfStale drops both draw caches if the underlying raw path
// has mutated since either was built, so a stale plan is never handed
// back after the path's geometry changed.
func (p *Path) invalidateIfStale() {
	id := p.Raw.MutationID()
	if p.fillCache.valid && p.fillCache.rawMutationID != id {
		p.fillCache = cacheEntry{}
	}
	if p.strokeCache.valid && p.strokeCache.rawMutationID != id {
		p.strokeCache = cacheEntry{}
	}
}

// PlanFor returns the tessellation plan for opts, reusing the cached
// plan when opts' matrix linear part, feather radius, and stroke style
// match the last call that populated the relevant cache slot.
// Translation-only changes (opts.Matrix[2], opts.Matrix[5]) always hit
// the cache, since BuildPlan's segment counting never looks at them.
func (p *Path) PlanFor(opts drawbuilder.Options) drawbuilder.Plan {
	p.invalidateIfStale()

	slot := &p.fillCache
	if opts.Stroke.Radius > 0 {
		slot = &p.strokeCache
	}

	key := keyFor(opts)
	if slot.valid && slot.key == key {
		return slot.plan
	}

	scale := drawbuilder.MatrixMaxScale(opts)
	src := p.Raw
	if opts.Feather > 0 {
		src = p.softenedPath(opts.Feather, scale)
	}

	plan := drawbuilder.BuildPlan(src, opts)
	*slot = cacheEntry{valid: true, key: key, plan: plan, rawMutationID: p.Raw.MutationID()}
	return plan
}

// EffectiveFillRule folds clockwise into nonZero for planning
// purposes, mirroring drawbuilder.FillRule.EffectiveFillRule.
func (p *Path) EffectiveFillRule() FillRule {
	if p.FillRule == Clockwise {
		return NonZero
	}
	return p.FillRule
}
