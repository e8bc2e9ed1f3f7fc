package bezier

import (
	"math"
	"testing"
)

func TestFindConvex180ChopsFlatOrderedLine(t *testing.T) {
	pts := [4]Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}
	res := FindConvex180Chops(pts)
	if res.Count != 0 {
		t.Fatalf("ordered flat line should need 0 chops, got %d", res.Count)
	}
}

func TestFindConvex180ChopsInflectingCubic(t *testing.T) {
	// A cubic whose inflection quadratic has a double root at t=0.5: the
	// two inflections coincide in a cusp there.
	pts := [4]Point{{0, 0}, {10, 10}, {0, 10}, {10, 0}}
	res := FindConvex180Chops(pts)
	if res.Count == 0 {
		t.Fatalf("expected at least one chop at the cusp")
	}
	for i := 0; i < res.Count; i++ {
		if res.T[i] <= 0 || res.T[i] >= 1 {
			t.Fatalf("chop t[%d]=%v out of (0,1)", i, res.T[i])
		}
	}
}

func TestFindConvex180RotationBound(t *testing.T) {
	pts := [4]Point{{0, 0}, {10, 40}, {60, 40}, {70, 0}}
	res := FindConvex180Chops(pts)

	bounds := []float32{0}
	for i := 0; i < res.Count; i++ {
		bounds = append(bounds, res.T[i])
	}
	bounds = append(bounds, 1)

	total := AngleBetween(StartTangentOf(pts), EndTangentOf(pts))
	var sum float32
	for i := 0; i+1 < len(bounds); i++ {
		sub := subCubic(pts, bounds[i], bounds[i+1])
		rot := AngleBetween(StartTangentOf(sub), EndTangentOf(sub))
		if rot > math.Pi+1e-3 {
			t.Fatalf("segment %d rotates %v > pi", i, rot)
		}
		sum += rot
	}
	if math.Abs(float64(sum-total)) > 1e-2 {
		t.Fatalf("rotation sum %v != total %v", sum, total)
	}
}
