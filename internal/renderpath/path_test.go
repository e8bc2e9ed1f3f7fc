package renderpath

import (
	"testing"

	"github.com/gogpu/corerender/internal/drawbuilder"
	"github.com/gogpu/corerender/internal/rawpath"
)

func square() *rawpath.RawPath {
	r := rawpath.New()
	r.MoveTo(rawpath.Point{X: 0, Y: 0})
	r.LineTo(rawpath.Point{X: 10, Y: 0})
	r.LineTo(rawpath.Point{X: 10, Y: 10})
	r.LineTo(rawpath.Point{X: 0, Y: 10})
	r.Close()
	return r
}

func fillOptions(e, f float32) drawbuilder.Options {
	return drawbuilder.Options{Matrix: [6]float32{1, 0, e, 0, 1, f}}
}

func TestPlanForCachesAcrossTranslationOnly(t *testing.T) {
	p := New(square())

	plan1 := p.PlanFor(fillOptions(0, 0))
	if !p.fillCache.valid {
		t.Fatal("expected fillCache to be populated")
	}

	plan2 := p.PlanFor(fillOptions(100, 200))
	if len(plan2.Contours) != len(plan1.Contours) {
		t.Fatalf("translation-only redraw should reuse the same plan shape")
	}
	if p.fillCache.key != keyFor(fillOptions(999, -999)) {
		t.Fatalf("cache key should ignore translation entirely")
	}
}

func TestPlanForRebuildsWhenLinearPartChanges(t *testing.T) {
	p := New(square())
	_ = p.PlanFor(fillOptions(0, 0))
	key1 := p.fillCache.key

	opts := fillOptions(0, 0)
	opts.Matrix[0] = 2
	_ = p.PlanFor(opts)
	key2 := p.fillCache.key

	if key1 == key2 {
		t.Fatal("expected cache key to change when the matrix's linear part changes")
	}
}

func TestPlanForUsesSeparateSlotsForFillAndStroke(t *testing.T) {
	p := New(square())

	fillOpts := fillOptions(0, 0)
	strokeOpts := fillOptions(0, 0)
	strokeOpts.Stroke = drawbuilder.StrokeStyle{Radius: 2, Join: drawbuilder.JoinMiter, Cap: drawbuilder.CapButt}

	_ = p.PlanFor(fillOpts)
	_ = p.PlanFor(strokeOpts)

	if !p.fillCache.valid || !p.strokeCache.valid {
		t.Fatal("expected both cache slots to be populated independently")
	}
	if p.fillCache.key == p.strokeCache.key {
		t.Fatal("fill and stroke cache keys should differ once a stroke style is set")
	}
}

func TestPlanForInvalidatesOnPathMutation(t *testing.T) {
	raw := square()
	p := New(raw)
	_ = p.PlanFor(fillOptions(0, 0))

	raw.LineTo(rawpath.Point{X: 20, Y: 20})

	plan := p.PlanFor(fillOptions(0, 0))
	if len(plan.Contours) == 0 {
		t.Fatal("expected a rebuilt plan after mutation")
	}
	if p.fillCache.rawMutationID != raw.MutationID() {
		t.Fatal("cache should be stamped with the latest mutation ID after a rebuild")
	}
}

func TestEffectiveFillRuleCollapsesClockwise(t *testing.T) {
	p := New(square())
	p.FillRule = Clockwise
	if got := p.EffectiveFillRule(); got != NonZero {
		t.Errorf("EffectiveFillRule() = %v, want NonZero", got)
	}
}
