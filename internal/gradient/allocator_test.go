package gradient

import (
	"testing"

	"github.com/gogpu/corerender/internal/color"
)

func red() color.ColorU8   { return color.ColorU8{R: 255, A: 255} }
func green() color.ColorU8 { return color.ColorU8{G: 255, A: 255} }
func blue() color.ColorU8  { return color.ColorU8{B: 255, A: 255} }

func TestAddSimpleDedupsIdenticalColorPairs(t *testing.T) {
	a := NewAllocator()
	loc1, ok := a.AddSimple(red(), blue())
	if !ok {
		t.Fatalf("AddSimple failed")
	}
	loc2, ok := a.AddSimple(red(), blue())
	if !ok {
		t.Fatalf("AddSimple failed")
	}
	if loc1 != loc2 {
		t.Fatalf("repeated simple gradient got different locations: %v vs %v", loc1, loc2)
	}
	if a.SimpleDataHeight() != 1 {
		t.Fatalf("SimpleDataHeight = %d, want 1 for %d ramps", a.SimpleDataHeight(), WidthInSimpleRamps)
	}
}

func TestAddSimpleDistinctColorsGetDistinctSlots(t *testing.T) {
	a := NewAllocator()
	loc1, _ := a.AddSimple(red(), blue())
	loc2, _ := a.AddSimple(green(), blue())
	if loc1 == loc2 {
		t.Fatalf("distinct simple gradients collided at %v", loc1)
	}
	if loc2.Col != loc1.Col+2 {
		t.Fatalf("second simple ramp col = %d, want %d", loc2.Col, loc1.Col+2)
	}
}

func TestAddSimpleRowWrapsAtTextureWidth(t *testing.T) {
	a := NewAllocator()
	var last Location
	for i := 0; i < WidthInSimpleRamps+1; i++ {
		c0 := color.ColorU8{R: uint8(i), A: 255}
		c1 := color.ColorU8{G: uint8(i >> 8), B: uint8(i), A: 255}
		loc, ok := a.AddSimple(c0, c1)
		if !ok {
			t.Fatalf("AddSimple failed at i=%d", i)
		}
		last = loc
	}
	if last.Row != 1 {
		t.Fatalf("after %d ramps, last row = %d, want 1", WidthInSimpleRamps+1, last.Row)
	}
	if last.Col != 0 {
		t.Fatalf("after wrap, col = %d, want 0", last.Col)
	}
}

func TestAddComplexDedupsIdenticalStopSets(t *testing.T) {
	a := NewAllocator()
	stops := []Stop{{Offset: 0, Color: red()}, {Offset: 0.5, Color: green()}, {Offset: 1, Color: blue()}}
	loc1, ok := a.AddComplex(stops)
	if !ok {
		t.Fatalf("AddComplex failed")
	}
	loc2, ok := a.AddComplex(append([]Stop(nil), stops...))
	if !ok {
		t.Fatalf("AddComplex failed")
	}
	if loc1 != loc2 {
		t.Fatalf("repeated complex gradient got different locations: %v vs %v", loc1, loc2)
	}
	if !loc1.IsComplex() {
		t.Fatalf("complex location not flagged as complex: %v", loc1)
	}
	if a.ComplexDataHeight() != 1 {
		t.Fatalf("ComplexDataHeight = %d, want 1", a.ComplexDataHeight())
	}
}

func TestAddComplexDistinctStopsGetDistinctRows(t *testing.T) {
	a := NewAllocator()
	stopsA := []Stop{{Offset: 0, Color: red()}, {Offset: 0.5, Color: green()}, {Offset: 1, Color: blue()}}
	stopsB := []Stop{{Offset: 0, Color: blue()}, {Offset: 0.5, Color: green()}, {Offset: 1, Color: red()}}
	locA, _ := a.AddComplex(stopsA)
	locB, _ := a.AddComplex(stopsB)
	if locA.Row == locB.Row {
		t.Fatalf("distinct complex gradients collided at row %d", locA.Row)
	}
}

func TestComplexSpanCountTracksStopCountPlusOne(t *testing.T) {
	a := NewAllocator()
	stops := []Stop{{Offset: 0, Color: red()}, {Offset: 0.3, Color: green()}, {Offset: 1, Color: blue()}}
	a.AddComplex(stops)
	if got, want := a.ComplexSpanCount(), len(stops)+1; got != want {
		t.Fatalf("ComplexSpanCount = %d, want %d", got, want)
	}
	// Repeating the same gradient must not inflate the span count.
	a.AddComplex(append([]Stop(nil), stops...))
	if got, want := a.ComplexSpanCount(), len(stops)+1; got != want {
		t.Fatalf("ComplexSpanCount after dedup = %d, want %d", got, want)
	}
}

func TestGradientDataHeightMatchesResourceTextureHeightFormula(t *testing.T) {
	cases := []struct {
		simple, complex, want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{WidthInSimpleRamps, 0, 1},
		{WidthInSimpleRamps + 1, 0, 2},
		{0, 3, 3},
		{WidthInSimpleRamps, 3, 4},
	}
	for _, c := range cases {
		if got := gradientDataHeight(c.simple, c.complex); got != c.want {
			t.Fatalf("gradientDataHeight(%d, %d) = %d, want %d", c.simple, c.complex, got, c.want)
		}
	}
}

func TestAddSimpleFailsPastMaxTextureHeight(t *testing.T) {
	a := NewAllocator()
	// Pre-fill the dedup table directly, one ramp short of the texture's
	// ramp budget, so the boundary check can be exercised without
	// actually inserting hundreds of thousands of ramps.
	for i := 0; i < MaxTextureHeight*WidthInSimpleRamps-1; i++ {
		a.simpleGradients[uint64(i)+1<<40] = uint32(i * 2)
	}
	c0 := color.ColorU8{R: 1, G: 2, B: 3, A: 4}
	c1 := color.ColorU8{R: 5, G: 6, B: 7, A: 8}
	if _, ok := a.AddSimple(c0, c1); !ok {
		t.Fatalf("AddSimple should still succeed exactly at the row budget")
	}
	c2 := color.ColorU8{R: 9, G: 10, B: 11, A: 12}
	c3 := color.ColorU8{R: 13, G: 14, B: 15, A: 16}
	if _, ok := a.AddSimple(c2, c3); ok {
		t.Fatalf("AddSimple should fail once rows would exceed MaxTextureHeight")
	}
}

func TestEmitSpansOrdersTransitionsAndCapsBoundaries(t *testing.T) {
	a := NewAllocator()
	stops := []Stop{{Offset: 0, Color: red()}, {Offset: 0.5, Color: green()}, {Offset: 1, Color: blue()}}
	a.AddComplex(stops)

	spans := a.EmitSpans()
	if len(spans) != len(stops)+1 {
		t.Fatalf("EmitSpans returned %d spans, want %d", len(spans), len(stops)+1)
	}
	if spans[0].X0Fixed != 0 {
		t.Fatalf("first span does not start at x=0: %v", spans[0])
	}
	last := spans[len(spans)-1]
	if last.X1Fixed != 65535 {
		t.Fatalf("last span does not cap at 65535: %v", last)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].X0Fixed != spans[i-1].X1Fixed {
			t.Fatalf("span %d does not chain from span %d: %v vs %v", i, i-1, spans[i], spans[i-1])
		}
		if spans[i].X1Fixed < spans[i].X0Fixed {
			t.Fatalf("span %d has x1 < x0: %v", i, spans[i])
		}
	}
	for _, s := range spans {
		if s.Row != 0 {
			t.Fatalf("span row = %d, want 0", s.Row)
		}
	}
}

func TestDataHeightCombinesSimpleAndComplexRows(t *testing.T) {
	a := NewAllocator()
	a.AddSimple(red(), blue())
	a.AddComplex([]Stop{{Offset: 0, Color: red()}, {Offset: 0.4, Color: green()}, {Offset: 1, Color: blue()}})
	if a.DataHeight() != a.SimpleDataHeight()+a.ComplexDataHeight() {
		t.Fatalf("DataHeight inconsistent: %d != %d + %d",
			a.DataHeight(), a.SimpleDataHeight(), a.ComplexDataHeight())
	}
	if a.DataHeight() != 2 {
		t.Fatalf("DataHeight = %d, want 2 (1 simple row + 1 complex row)", a.DataHeight())
	}
}
