package bezier

import "math"

// CurvatureAt measures the local rotation of pts around parameter t,
// over a symmetric window [t-dt, t+dt] whose chord length approaches
// spread (in local/curve-space units). Returns the rotation (radians) of
// that sub-cubic's start-to-end tangent.
//
// If the requested window would run past either end of the curve, a
// smaller (still symmetric) spread is used so the window stays inside
// [0, 1].
func CurvatureAt(pts [4]Point, t, spread float32) float32 {
	if spread <= 0 || math.IsNaN(float64(spread)) {
		spread = 0
	}
	maxDt := float32(math.Min(float64(t), float64(1-t)))
	ev := NewEvalCubic(pts)
	center := ev.At(t)

	dt := maxDt
	if dt <= 0 {
		return 0
	}

	// Iteratively refine dt so the chord length across [t-dt, t+dt]
	// approaches the requested spread, via simple bisection -- the
	// mapping from dt to chord length is monotonic for dt in (0, maxDt].
	lo, hi := float32(0), maxDt
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if mid <= 0 {
			break
		}
		a := ev.At(clampUnit(t - mid))
		b := ev.At(clampUnit(t + mid))
		chord := b.Sub(a).Length()
		if chord < spread {
			lo = mid
		} else {
			hi = mid
		}
	}
	dt = (lo + hi) / 2
	if dt <= 0 {
		dt = maxDt
	}

	t0 := clampUnit(t - dt)
	t1 := clampUnit(t + dt)
	_ = center
	sub := subCubic(pts, t0, t1)
	return AngleBetween(StartTangentOf(sub), EndTangentOf(sub))
}
