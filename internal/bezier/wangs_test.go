package bezier

import (
	"math"
	"testing"
)

func TestWangsFormulaTightness(t *testing.T) {
	pts := [4]Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}}
	const precision = 4 // within 1/4 px
	n := SegmentCount(Cubic(pts, precision, IdentityVectorTransform()), 1024)

	ev := NewEvalCubic(pts)
	maxDist := float32(0)
	const samples = 2000
	for i := 0; i <= samples; i++ {
		tt := float32(i) / samples
		curvePt := ev.At(tt)
		// Find nearest point on the n-segment polyline approximation by
		// checking the segment whose parametric range contains tt.
		segT := tt * float32(n)
		seg := int(segT)
		if seg >= n {
			seg = n - 1
		}
		localT := segT - float32(seg)
		a := ev.At(float32(seg) / float32(n))
		b := ev.At(float32(seg+1) / float32(n))
		approx := a.Lerp(b, localT)
		d := curvePt.Sub(approx).Length()
		if d > maxDist {
			maxDist = d
		}
	}
	tolerance := float32(1.0/precision) + 0.5 // slack for the line-vs-nearest-point approx above
	if maxDist > tolerance {
		t.Fatalf("max chord-to-curve distance %v exceeds tolerance %v (n=%d)", maxDist, tolerance, n)
	}
}

func TestCubicLog2MatchesCeilLog2OfReference(t *testing.T) {
	pts := [4]Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}}
	const precision = 4
	ref := Cubic(pts, precision, IdentityVectorTransform())
	want := int(math.Ceil(math.Log2(float64(ref))))
	got := CubicLog2(pts, precision, IdentityVectorTransform())
	if got != want {
		t.Fatalf("CubicLog2 = %d, want ceil(log2(%v)) = %d", got, ref, want)
	}
}

func TestCubicLog2TransformInvariant(t *testing.T) {
	pts := [4]Point{{0, 0}, {5, 20}, {30, 25}, {40, 0}}
	const precision = 4

	// Scale by 2x via VectorTransform vs. pre-scaling the points with
	// identity transform; both must agree.
	xform := NewVectorTransform(2, 0, 0, 2)
	a := CubicLog2(pts, precision, xform)

	var scaled [4]Point
	for i, p := range pts {
		scaled[i] = Point{X: p.X * 2, Y: p.Y * 2}
	}
	b := CubicLog2(scaled, precision, IdentityVectorTransform())

	if a != b {
		t.Fatalf("CubicLog2 with VectorTransform(2x) = %d, CubicLog2(2x points) = %d", a, b)
	}
}

func TestNextLog2Basics(t *testing.T) {
	cases := []struct {
		x    float32
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 0},
		{1.5, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
	}
	for _, c := range cases {
		if got := nextLog2(c.x); got != c.want {
			t.Errorf("nextLog2(%v) = %d, want %d", c.x, got, c.want)
		}
	}
}
