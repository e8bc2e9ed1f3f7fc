package bezier

// Convex90Arc is one section of a cubic that has been chopped so it
// rotates no more than 90 degrees, used for feathering (see
// MakeSoftenedCopy).
type Convex90Arc struct {
	Pts      [4]Point
	T0, T1   float32 // parameter range within the original curve
	AtCusp   bool    // true if this arc straddles a cusp
}

// ChopConvex90 iteratively chops pts into sections that each rotate no
// more than 90 degrees. Around cusps, the two straddling sub-cubics are
// padded by cuspPad (a small epsilon) on either side so that, after the
// chop, consecutive odd-numbered sub-cubics straddle the cusp and can be
// replaced by a single pivot vertex at render time.
func ChopConvex90(pts [4]Point, cuspPad float32) []Convex90Arc {
	chops180 := FindConvex180Chops(pts)

	// Build the list of 180-chop boundaries, inserting cusp padding.
	var bounds []float32
	if chops180.Count == 0 {
		bounds = []float32{0, 1}
	} else if chops180.AreCusps {
		bounds = append(bounds, 0)
		for i := 0; i < chops180.Count; i++ {
			t := chops180.T[i]
			lo, hi := t-cuspPad, t+cuspPad
			if lo < 0 {
				lo = 0
			}
			if hi > 1 {
				hi = 1
			}
			bounds = append(bounds, lo, hi)
		}
		bounds = append(bounds, 1)
	} else {
		bounds = append(bounds, 0)
		for i := 0; i < chops180.Count; i++ {
			bounds = append(bounds, chops180.T[i])
		}
		bounds = append(bounds, 1)
	}

	var arcs []Convex90Arc
	for i := 0; i+1 < len(bounds); i++ {
		t0, t1 := bounds[i], bounds[i+1]
		if t1 <= t0 {
			continue
		}
		sub := subCubic(pts, t0, t1)
		arcs = append(arcs, splitTo90(sub, t0, t1)...)
	}
	// Mark arcs adjacent to a cusp boundary.
	if chops180.AreCusps {
		for i := range arcs {
			for j := 0; j < chops180.Count; j++ {
				t := chops180.T[j]
				if arcs[i].T0 <= t && t <= arcs[i].T1 {
					arcs[i].AtCusp = true
				}
			}
		}
	}
	return arcs
}

// splitTo90 recursively halves sub until each resulting piece's total
// rotation (measured start-tangent to end-tangent) is at most 90
// degrees.
func splitTo90(sub [4]Point, t0, t1 float32) []Convex90Arc {
	rotation := AngleBetween(StartTangentOf(sub), EndTangentOf(sub))
	const ninety = 1.5707963267948966
	if rotation <= ninety || t1-t0 < 1e-4 {
		return []Convex90Arc{{Pts: sub, T0: t0, T1: t1}}
	}
	mid := float32(0.5)
	chopped := ChopAt(sub, mid)
	var left, right [4]Point
	copy(left[:], chopped[0:4])
	copy(right[:], chopped[3:7])
	tm := t0 + (t1-t0)*mid
	out := splitTo90(left, t0, tm)
	out = append(out, splitTo90(right, tm, t1)...)
	return out
}

// subCubic extracts the portion of pts spanning the original parameter
// range [t0, t1].
func subCubic(pts [4]Point, t0, t1 float32) [4]Point {
	if t0 <= 0 && t1 >= 1 {
		return pts
	}
	chopped := ChopAtTwo(pts, t0, t1)
	var out [4]Point
	copy(out[:], chopped[3:7])
	return out
}
