package feather

import (
	"math"
	"testing"

	"github.com/gogpu/corerender/internal/bezier"
	"github.com/gogpu/corerender/internal/rawpath"
)

func buildCircle(r float32) *rawpath.RawPath {
	p := rawpath.New()
	const k = 0.5522847498307936
	p.MoveTo(rawpath.Point{X: r, Y: 0})
	p.CubicTo(
		rawpath.Point{X: r, Y: r * k},
		rawpath.Point{X: r * k, Y: r},
		rawpath.Point{X: 0, Y: r},
	)
	p.CubicTo(
		rawpath.Point{X: -r * k, Y: r},
		rawpath.Point{X: -r, Y: r * k},
		rawpath.Point{X: -r, Y: 0},
	)
	p.CubicTo(
		rawpath.Point{X: -r, Y: -r * k},
		rawpath.Point{X: -r * k, Y: -r},
		rawpath.Point{X: 0, Y: -r},
	)
	p.CubicTo(
		rawpath.Point{X: r * k, Y: -r},
		rawpath.Point{X: r, Y: -r * k},
		rawpath.Point{X: r, Y: 0},
	)
	p.Close()
	return p
}

func TestMakeSoftenedCopyUnfeatheredIsUnchanged(t *testing.T) {
	src := buildCircle(50)
	dst := MakeSoftenedCopy(src, 0, 1)

	if len(dst.Verbs()) != len(src.Verbs()) {
		t.Fatalf("unfeathered copy verb count = %d, want %d", len(dst.Verbs()), len(src.Verbs()))
	}
	for i, v := range src.Verbs() {
		if dst.Verbs()[i] != v {
			t.Fatalf("verb[%d] = %v, want %v", i, dst.Verbs()[i], v)
		}
	}
	for i, p := range src.Points() {
		if dst.Points()[i] != p {
			t.Fatalf("point[%d] = %v, want %v", i, dst.Points()[i], p)
		}
	}
}

func TestMakeSoftenedCopyProducesClosedContour(t *testing.T) {
	src := buildCircle(50)
	dst := MakeSoftenedCopy(src, 10, 1)

	if dst.IsEmpty() {
		t.Fatalf("softened copy is empty")
	}
	verbs := dst.Verbs()
	if verbs[0] != rawpath.VerbMove {
		t.Fatalf("softened copy does not start with a move")
	}
	if verbs[len(verbs)-1] != rawpath.VerbClose {
		t.Fatalf("softened copy does not end with a close")
	}
	for _, v := range verbs[1 : len(verbs)-1] {
		if v != rawpath.VerbCubic && v != rawpath.VerbLine {
			t.Fatalf("unexpected verb %v in softened copy body", v)
		}
	}
}

// TestFeatheredCopyHeightDecreasesWithFeather checks a "feathered
// shape catalogue" property: across a spread of feather radii, no
// softened cubic's max perpendicular height exceeds the unsoftened
// curve's.
func TestFeatheredCopyHeightDecreasesWithFeather(t *testing.T) {
	src := rawpath.New()
	src.MoveTo(rawpath.Point{X: 0, Y: 0})
	src.CubicTo(
		rawpath.Point{X: 20, Y: 80},
		rawpath.Point{X: 80, Y: 80},
		rawpath.Point{X: 100, Y: 0},
	)

	origPts := [4]bezier.Point{{X: 0, Y: 0}, {X: 20, Y: 80}, {X: 80, Y: 80}, {X: 100, Y: 0}}
	origHeight, _ := bezier.MaxHeight(origPts)

	for _, feather := range []float32{1, 7.4, 20, 54} {
		dst := MakeSoftenedCopy(src, feather, 1)
		maxSoftHeight := float32(0)
		var prev rawpath.Point
		pts := dst.Points()
		dst.Iterate(func(verb rawpath.Verb, idx int) {
			switch verb {
			case rawpath.VerbMove:
				prev = pts[idx]
			case rawpath.VerbCubic:
				cubic := [4]bezier.Point{prev, pts[idx], pts[idx+1], pts[idx+2]}
				h, _ := bezier.MaxHeight(cubic)
				if h > maxSoftHeight {
					maxSoftHeight = h
				}
				prev = cubic[3]
			}
		})
		if maxSoftHeight > origHeight+1e-3 {
			t.Fatalf("feather=%v: softened max height %v exceeds unsoftened height %v",
				feather, maxSoftHeight, origHeight)
		}
	}
}

func TestInverseGaussianIntegralIsMonotonicAndCentered(t *testing.T) {
	if got := InverseGaussianIntegral(0.5); math.Abs(float64(got-0.5)) > 1e-4 {
		t.Fatalf("InverseGaussianIntegral(0.5) = %v, want ~0.5", got)
	}
	prev := float32(-1)
	for _, p := range []float32{0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		got := InverseGaussianIntegral(p)
		if got <= prev {
			t.Fatalf("InverseGaussianIntegral not monotonic at p=%v: got %v, prev %v", p, got, prev)
		}
		prev = got
	}
}

func TestInverseGaussianIntegralClampsExtremes(t *testing.T) {
	if got := InverseGaussianIntegral(0); math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
		t.Fatalf("InverseGaussianIntegral(0) = %v, want finite", got)
	}
	if got := InverseGaussianIntegral(1); math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
		t.Fatalf("InverseGaussianIntegral(1) = %v, want finite", got)
	}
}
