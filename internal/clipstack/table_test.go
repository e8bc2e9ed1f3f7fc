package clipstack

import "testing"

func TestPushReusesMatchingElementAtSameDepth(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	el1, isNew1 := tbl.Push(0, m, 42, FillRuleNonZero, Rect{Right: 10, Bottom: 10})
	if !isNew1 {
		t.Fatalf("first push at a fresh depth should be new")
	}
	el2, isNew2 := tbl.Push(0, m, 42, FillRuleNonZero, Rect{Right: 10, Bottom: 10})
	if isNew2 {
		t.Fatalf("matching push at the same depth should reuse the element")
	}
	if el1 != el2 {
		t.Fatalf("reused element pointer differs: %p vs %p", el1, el2)
	}
}

func TestPushReplacesOnMutationIDMismatch(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	tbl.Push(0, m, 1, FillRuleNonZero, Rect{})
	_, isNew := tbl.Push(0, m, 2, FillRuleNonZero, Rect{})
	if !isNew {
		t.Fatalf("a different source path's mutation ID should force a new element")
	}
}

func TestPushReplacesOnTransformMismatch(t *testing.T) {
	tbl := NewTable()
	tbl.Push(0, Identity(), 1, FillRuleNonZero, Rect{})
	other := Transform{A: 2, E: 2}
	_, isNew := tbl.Push(0, other, 1, FillRuleNonZero, Rect{})
	if !isNew {
		t.Fatalf("a different transform should force a new element")
	}
}

func TestPushTruncatesStaleElementsAboveDepth(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	tbl.Push(0, m, 1, FillRuleNonZero, Rect{})
	tbl.Push(1, m, 2, FillRuleNonZero, Rect{})
	tbl.Push(2, m, 3, FillRuleNonZero, Rect{})
	if tbl.Height() != 3 {
		t.Fatalf("Height = %d, want 3", tbl.Height())
	}

	// Re-pushing a different path at depth 1 must drop everything above it.
	tbl.Push(1, m, 99, FillRuleNonZero, Rect{})
	if tbl.Height() != 2 {
		t.Fatalf("Height after mismatch at depth 1 = %d, want 2", tbl.Height())
	}
	if tbl.At(1).PathMutationID != 99 {
		t.Fatalf("element at depth 1 has mutation ID %d, want 99", tbl.At(1).PathMutationID)
	}
}

func TestDrawUpdatesForMintsFreshIDsAndChainsOuterClip(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	tbl.Push(0, m, 1, FillRuleNonZero, Rect{})
	tbl.Push(1, m, 2, FillRuleNonZero, Rect{})

	updates := tbl.DrawUpdatesFor(1)
	if len(updates) != 2 {
		t.Fatalf("DrawUpdatesFor returned %d updates, want 2", len(updates))
	}
	if updates[0].OuterClipID != 0 {
		t.Fatalf("bottommost update outer clip = %d, want 0", updates[0].OuterClipID)
	}
	if updates[1].OuterClipID != updates[0].NewClipID {
		t.Fatalf("second update's outer clip %d does not chain from first's new clip %d",
			updates[1].OuterClipID, updates[0].NewClipID)
	}
	if updates[0].NewClipID == updates[1].NewClipID {
		t.Fatalf("updates must mint distinct clip IDs, got %d twice", updates[0].NewClipID)
	}

	if tbl.NeedsUpdate(1) {
		t.Fatalf("table should not need an update immediately after drawing through depth 1")
	}
}

func TestDrawUpdatesForIsIncremental(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	tbl.Push(0, m, 1, FillRuleNonZero, Rect{})
	tbl.Push(1, m, 2, FillRuleNonZero, Rect{})
	tbl.Push(2, m, 3, FillRuleNonZero, Rect{})

	first := tbl.DrawUpdatesFor(0)
	if len(first) != 1 {
		t.Fatalf("first DrawUpdatesFor(0) returned %d updates, want 1", len(first))
	}
	second := tbl.DrawUpdatesFor(2)
	if len(second) != 2 {
		t.Fatalf("second DrawUpdatesFor(2) returned %d updates, want 2 (indices 1 and 2)", len(second))
	}
	if second[0].Index != 1 || second[1].Index != 2 {
		t.Fatalf("second update batch covers wrong indices: %+v", second)
	}
}

func TestTruncateToClampsRenderedHeight(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	tbl.Push(0, m, 1, FillRuleNonZero, Rect{})
	tbl.Push(1, m, 2, FillRuleNonZero, Rect{})
	tbl.DrawUpdatesFor(1)

	tbl.TruncateTo(1)
	if tbl.Height() != 1 {
		t.Fatalf("truncate should leave height 1, got %d", tbl.Height())
	}
	if tbl.NeedsUpdate(0) {
		t.Fatalf("element at depth 0 was already rendered before the truncate, should not need an update")
	}
	// After truncating away the rendered element's successor, re-pushing
	// at depth 1 and drawing again must mint IDs from scratch, not skip
	// the (now-gone) prior render.
	tbl.Push(1, m, 5, FillRuleNonZero, Rect{})
	if !tbl.NeedsUpdate(1) {
		t.Fatalf("newly pushed element at depth 1 should need a clip update")
	}
}

func TestResetClearsElementsAndRenderedHeight(t *testing.T) {
	tbl := NewTable()
	m := Identity()
	tbl.Push(0, m, 1, FillRuleNonZero, Rect{})
	tbl.DrawUpdatesFor(0)
	tbl.Reset()
	if tbl.Height() != 0 {
		t.Fatalf("Height after reset = %d, want 0", tbl.Height())
	}
	if !tbl.NeedsUpdate(0) {
		t.Fatalf("reset table should need an update before anything is pushed again")
	}
}

func TestAccumulateReadBoundsUnionsAcrossDraws(t *testing.T) {
	tbl := NewTable()
	el, _ := tbl.Push(0, Identity(), 1, FillRuleNonZero, Rect{})
	el.AccumulateReadBounds(Rect{Left: 0, Top: 0, Right: 10, Bottom: 10})
	el.AccumulateReadBounds(Rect{Left: 5, Top: 5, Right: 20, Bottom: 20})
	want := Rect{Left: 0, Top: 0, Right: 20, Bottom: 20}
	if el.ReadBounds != want {
		t.Fatalf("ReadBounds = %+v, want %+v", el.ReadBounds, want)
	}
}
