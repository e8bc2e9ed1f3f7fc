package bezier

import (
	"math"
	"testing"
)

func samplePts() [4]Point {
	return [4]Point{{0, 0}, {10, 40}, {60, 40}, {70, 0}}
}

func almostEqual(a, b Point, eps float32) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx+dy*dy))) <= eps
}

func TestChopAtExactEndpoints(t *testing.T) {
	pts := samplePts()

	at0 := ChopAt(pts, 0)
	for i := 0; i < 3; i++ {
		if at0[i] != pts[0] {
			t.Fatalf("chop at t=0: dst[%d] = %v, want %v", i, at0[i], pts[0])
		}
	}
	for i := 0; i < 4; i++ {
		if at0[3+i] != pts[i] {
			t.Fatalf("chop at t=0: dst[%d] = %v, want %v", 3+i, at0[3+i], pts[i])
		}
	}

	at1 := ChopAt(pts, 1)
	for i := 0; i < 4; i++ {
		if at1[i] != pts[i] {
			t.Fatalf("chop at t=1: dst[%d] = %v, want %v", i, at1[i], pts[i])
		}
	}
	for i := 0; i < 3; i++ {
		if at1[4+i] != pts[3] {
			t.Fatalf("chop at t=1: dst[%d] = %v, want %v", 4+i, at1[4+i], pts[3])
		}
	}
}

func TestChopAtTwoDegenerateMiddle(t *testing.T) {
	pts := samplePts()
	dst := ChopAtTwo(pts, 0.5, 0.5)
	mid := dst[3]
	for i := 3; i < 7; i++ {
		if dst[i] != mid {
			t.Fatalf("middle sub-cubic at t=(0.5,0.5) not degenerate: dst[%d]=%v want %v", i, dst[i], mid)
		}
	}
}

func TestChopRoundTrip(t *testing.T) {
	pts := samplePts()
	tValues := []float32{0.2, 0.5, 0.8}
	chopped := ChopAtValues(pts, tValues, len(tValues))

	ev := NewEvalCubic(pts)
	// chopped has 3*3+4=13 points -> sub-cubics at indices [0:4],[3:7],[6:10],[9:13]
	// The t boundaries in the ORIGINAL curve are 0, 0.2, 0.5, 0.8, 1.
	bounds := []float32{0, 0.2, 0.5, 0.8, 1}
	for i := 0; i < 4; i++ {
		var sub [4]Point
		copy(sub[:], chopped[i*3:i*3+4])
		subEval := NewEvalCubic(sub)
		// Sample the sub-cubic at its own t=0 and t=1 and compare against
		// the original curve evaluated at the corresponding global
		// parameter.
		gotStart := sub[0]
		gotEnd := sub[3]
		wantStart := ev.At(bounds[i])
		wantEnd := ev.At(bounds[i+1])
		if !almostEqual(gotStart, wantStart, 1e-2) {
			t.Fatalf("segment %d start: got %v want %v", i, gotStart, wantStart)
		}
		if !almostEqual(gotEnd, wantEnd, 1e-2) {
			t.Fatalf("segment %d end: got %v want %v", i, gotEnd, wantEnd)
		}
		// Sample the middle of the sub-cubic and compare against the
		// original curve at the corresponding global parameter.
		globalMid := bounds[i] + (bounds[i+1]-bounds[i])*0.5
		gotMid := subEval.At(0.5)
		wantMid := ev.At(globalMid)
		if !almostEqual(gotMid, wantMid, 1e-2) {
			t.Fatalf("segment %d mid: got %v want %v", i, gotMid, wantMid)
		}
	}
}

func TestChopAtValuesNilUniform(t *testing.T) {
	pts := samplePts()
	chopped := ChopAtValues(pts, nil, 3)
	if len(chopped) != 13 {
		t.Fatalf("expected 13 points for n=3, got %d", len(chopped))
	}
}
