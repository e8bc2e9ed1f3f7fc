package rawpath

import "testing"

func pt(x, y float32) Point { return Point{X: x, Y: y} }

func TestImplicitMoveBeforeFirstVerb(t *testing.T) {
	p := New()
	p.LineTo(pt(1, 1))

	if len(p.verbs) != 2 || p.verbs[0] != VerbMove || p.verbs[1] != VerbLine {
		t.Fatalf("verbs = %v, want [Move Line]", p.verbs)
	}
	if p.points[0] != (Point{}) {
		t.Fatalf("implicit move point = %v, want zero value", p.points[0])
	}
}

func TestImplicitMoveAfterClose(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(10, 0))
	p.Close()
	p.LineTo(pt(5, 5))

	wantVerbs := []Verb{VerbMove, VerbLine, VerbClose, VerbMove, VerbLine}
	if len(p.verbs) != len(wantVerbs) {
		t.Fatalf("verbs = %v, want %v", p.verbs, wantVerbs)
	}
	for i, v := range wantVerbs {
		if p.verbs[i] != v {
			t.Fatalf("verb[%d] = %v, want %v", i, p.verbs[i], v)
		}
	}
	// The implicit move after Close should start from the close point
	// (the contour's start point), not (0,0) literally by coincidence.
	if p.points[2] != pt(0, 0) {
		t.Fatalf("implicit move after close = %v, want (0,0)", p.points[2])
	}
}

func TestMutationIDChangesOnEveryEdit(t *testing.T) {
	p := New()
	id0 := p.MutationID()
	p.MoveTo(pt(0, 0))
	id1 := p.MutationID()
	p.LineTo(pt(1, 1))
	id2 := p.MutationID()

	if id0 == id1 || id1 == id2 || id0 == id2 {
		t.Fatalf("mutation IDs did not strictly increase: %d, %d, %d", id0, id1, id2)
	}
}

func TestMutationIDsAreProcessWideUnique(t *testing.T) {
	a := New()
	b := New()
	a.MoveTo(pt(0, 0))
	b.MoveTo(pt(0, 0))

	if a.MutationID() == b.MutationID() {
		t.Fatalf("two distinct raw paths drew the same mutation ID %d", a.MutationID())
	}
}

func TestPruneEmptySegments(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(0, 0)) // degenerate, should be pruned
	p.LineTo(pt(5, 0))
	p.CubicTo(pt(5, 0), pt(5, 0), pt(5, 0)) // degenerate, should be pruned
	p.CubicTo(pt(6, 0), pt(7, 1), pt(8, 1))

	beforeID := p.MutationID()
	p.PruneEmptySegments()
	afterID := p.MutationID()

	if afterID == beforeID {
		t.Fatalf("PruneEmptySegments did not bump mutation ID despite pruning")
	}

	wantVerbs := []Verb{VerbMove, VerbLine, VerbCubic}
	if len(p.verbs) != len(wantVerbs) {
		t.Fatalf("verbs after prune = %v, want %v", p.verbs, wantVerbs)
	}
	for i, v := range wantVerbs {
		if p.verbs[i] != v {
			t.Fatalf("verb[%d] = %v, want %v", i, p.verbs[i], v)
		}
	}
}

func TestPruneNoOpDoesNotBumpMutationID(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(5, 0))

	beforeID := p.MutationID()
	p.PruneEmptySegments()
	if p.MutationID() != beforeID {
		t.Fatalf("PruneEmptySegments bumped mutation ID with nothing to prune")
	}
}

func TestBoundsIsHullOfAllPoints(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.CubicTo(pt(-5, 2), pt(15, -3), pt(10, 10))

	b := p.Bounds()
	if b.Left != -5 || b.Top != -3 || b.Right != 15 || b.Bottom != 10 {
		t.Fatalf("bounds = %+v, want hull of control points {-5,-3,15,10}", b)
	}
}

func TestBoundsCacheInvalidatesOnMutation(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(1, 1))
	_ = p.Bounds()

	p.LineTo(pt(100, 100))
	b := p.Bounds()
	if b.Right != 100 || b.Bottom != 100 {
		t.Fatalf("stale bounds after mutation: %+v", b)
	}
}

func TestCoarseSignedAreaClockwiseSquare(t *testing.T) {
	p := New()
	// Clockwise in a y-down coordinate system.
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(10, 0))
	p.LineTo(pt(10, 10))
	p.LineTo(pt(0, 10))
	p.Close()

	area := p.CoarseSignedArea()
	if area <= 0 {
		t.Fatalf("clockwise square area = %v, want > 0", area)
	}
	if diff := area - 100; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("clockwise square area = %v, want ~100", area)
	}
}

func TestCoarseSignedAreaCounterClockwiseIsNegative(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(0, 10))
	p.LineTo(pt(10, 10))
	p.LineTo(pt(10, 0))
	p.Close()

	if area := p.CoarseSignedArea(); area >= 0 {
		t.Fatalf("counter-clockwise square area = %v, want < 0", area)
	}
}

func TestIterateYieldsVerbsWithPointIndices(t *testing.T) {
	p := New()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(1, 1))
	p.CubicTo(pt(2, 2), pt(3, 3), pt(4, 4))
	p.Close()

	var got []struct {
		verb Verb
		idx  int
	}
	p.Iterate(func(v Verb, idx int) {
		got = append(got, struct {
			verb Verb
			idx  int
		}{v, idx})
	})

	want := []struct {
		verb Verb
		idx  int
	}{
		{VerbMove, 0},
		{VerbLine, 1},
		{VerbCubic, 2},
		{VerbClose, -1},
	}
	if len(got) != len(want) {
		t.Fatalf("iterate produced %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
