package clipstack

import "testing"

func TestSaveRestoreRoundTripsTransformAndClipRect(t *testing.T) {
	s := NewScopeStack(Identity())
	s.Current().ClipPathStackHeight = 2
	s.IntersectClipRect(Rect{Right: 50, Bottom: 50})

	s.Save()
	s.Current().Transform = Concat(s.Current().Transform, Transform{A: 2, E: 2})
	s.IntersectClipRect(Rect{Right: 10, Bottom: 10})
	if s.Current().ClipRect.Right != 10 {
		t.Fatalf("nested clip rect = %+v, want narrowed to 10", s.Current().ClipRect)
	}

	s.Restore()
	if s.Depth() != 1 {
		t.Fatalf("Depth after restore = %d, want 1", s.Depth())
	}
	if s.Current().Transform != Identity() {
		t.Fatalf("transform not restored: %+v", s.Current().Transform)
	}
	if s.Current().ClipRect.Right != 50 {
		t.Fatalf("clip rect not restored: %+v", s.Current().ClipRect)
	}
}

func TestUnbalancedRestoreIsNoOp(t *testing.T) {
	s := NewScopeStack(Identity())
	s.Restore()
	if s.Depth() != 1 {
		t.Fatalf("unbalanced restore changed depth to %d, want 1", s.Depth())
	}
}

func TestIntersectClipRectMarksScopeEmpty(t *testing.T) {
	s := NewScopeStack(Identity())
	s.IntersectClipRect(Rect{Left: 0, Top: 0, Right: 10, Bottom: 10})
	s.IntersectClipRect(Rect{Left: 20, Top: 20, Right: 30, Bottom: 30})
	if !s.Current().IsEmpty {
		t.Fatalf("disjoint clip rects should mark the scope empty")
	}
}

func TestConcatComposesTranslationThenScale(t *testing.T) {
	translate := Transform{A: 1, E: 1, C: 10, F: 20}
	scale := Transform{A: 2, E: 2}
	// scale applied first, then translate: point (1,1) -> (2,2) -> (12,22)
	combined := Concat(translate, scale)
	x := combined.A*1 + combined.B*1 + combined.C
	y := combined.D*1 + combined.E*1 + combined.F
	if x != 12 || y != 22 {
		t.Fatalf("Concat produced (%v, %v), want (12, 22)", x, y)
	}
}

func TestSaveDoesNotAliasClipRect(t *testing.T) {
	s := NewScopeStack(Identity())
	s.IntersectClipRect(Rect{Right: 100, Bottom: 100})
	s.Save()
	s.IntersectClipRect(Rect{Right: 5, Bottom: 5})
	s.Restore()
	if s.Current().ClipRect.Right != 100 {
		t.Fatalf("outer scope's clip rect was mutated by the inner scope: %+v", s.Current().ClipRect)
	}
}
