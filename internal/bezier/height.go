package bezier

import "math"

// MaxHeight returns the maximum perpendicular distance from the chord
// P0->P3 to the curve, and the parameter t at which it occurs. Uses a
// coarse ternary search since the distance-from-chord function is
// unimodal for the convex, non-inflecting arcs this is called on (see
// ChopConvex90).
func MaxHeight(pts [4]Point) (height float32, atT float32) {
	chord := pts[3].Sub(pts[0])
	chordLen := chord.Length()
	if chordLen == 0 {
		// Degenerate chord: measure distance from P0 instead.
		ev := NewEvalCubic(pts)
		best := float32(0)
		bestT := float32(0)
		const steps = 64
		for i := 0; i <= steps; i++ {
			t := float32(i) / steps
			d := ev.At(t).Sub(pts[0]).Length()
			if d > best {
				best = d
				bestT = t
			}
		}
		return best, bestT
	}

	n := Vec2{X: -chord.Y, Y: chord.X}.Scale(1 / chordLen) // unit normal
	ev := NewEvalCubic(pts)
	distAt := func(t float32) float32 {
		v := ev.At(t).Sub(pts[0])
		d := v.Dot(n)
		if d < 0 {
			return -d
		}
		return d
	}

	lo, hi := float32(0), float32(1)
	for i := 0; i < 40; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if distAt(m1) < distAt(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}
	t := (lo + hi) / 2
	return distAt(t), t
}

// clampUnit clamps to [0,1], coalescing NaN to 0.
func clampUnit(t float32) float32 {
	if math.IsNaN(float64(t)) {
		return 0
	}
	return clampF(t, 0, 1)
}
