package bezier

// ChopAt splits a cubic at a single parameter t in [0, 1] using De
// Casteljau's algorithm, producing 7 points: dst[0:4] is the first
// sub-cubic, dst[3:7] is the second.
//
// Exactly t=0 yields (P0,P0,P0,P0..P3); t=1 yields (P0..P3,P3,P3,P3).
func ChopAt(src [4]Point, t float32) (dst [7]Point) {
	if t <= 0 {
		dst[0], dst[1], dst[2] = src[0], src[0], src[0]
		dst[3], dst[4], dst[5], dst[6] = src[0], src[1], src[2], src[3]
		return
	}
	if t >= 1 {
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], src[3]
		dst[4], dst[5], dst[6] = src[3], src[3], src[3]
		return
	}

	ab := src[0].Lerp(src[1], t)
	bc := src[1].Lerp(src[2], t)
	cd := src[2].Lerp(src[3], t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	abcd := abc.Lerp(bcd, t)

	dst[0] = src[0]
	dst[1] = ab
	dst[2] = abc
	dst[3] = abcd
	dst[4] = bcd
	dst[5] = cd
	dst[6] = src[3]
	return
}

// ChopAtTwo splits a cubic at two ordered parameters t0 <= t1 in [0, 1],
// producing 10 points: dst[0:4], dst[3:7], dst[6:10] are the three
// resulting sub-cubics. When t0 == t1 the middle sub-cubic (dst[3:7]) is
// exactly degenerate: all four points equal.
func ChopAtTwo(src [4]Point, t0, t1 float32) (dst [10]Point) {
	// Chop at t1 first, then re-map t0 into the first segment's local
	// parameter space and chop that segment again. This mirrors the
	// "remap each subsequent t into the remaining segment" rule that
	// ChopAtValues uses for the general n-value case.
	first := ChopAt(src, t1)
	var firstCubic [4]Point
	copy(firstCubic[:], first[0:4])

	localT0 := t0
	if t1 > 0 {
		localT0 = t0 / t1
	}
	if localT0 < 0 {
		localT0 = 0
	}
	if localT0 > 1 {
		localT0 = 1
	}

	head := ChopAt(firstCubic, localT0)
	copy(dst[0:4], head[0:4])
	copy(dst[3:7], head[3:7])
	copy(dst[6:10], first[3:7])
	return
}

// ChopAtValues splits a cubic at n ordered values t0 <= t1 <= ... <=
// t(n-1), all in [0, 1], producing 3n+4 points: n+1 sub-cubics sharing
// endpoints, at out[0:4], out[3:7], ..., out[3n:3n+4]. When tValues is
// nil, the n chop values are spaced uniformly at (i+1)/(n+1), giving n+1
// sub-cubics of equal parameter length.
func ChopAtValues(src [4]Point, tValues []float32, n int) []Point {
	if n <= 0 {
		out := make([]Point, 4)
		copy(out, src[:])
		return out
	}

	values := tValues
	if values == nil {
		values = make([]float32, n)
		for i := 0; i < n; i++ {
			values[i] = float32(i+1) / float32(n+1)
		}
	}

	out := make([]Point, 3*n+4)
	cur := src
	prevT := float32(0)
	outIdx := 0
	for i := 0; i < n; i++ {
		t := values[i]
		// Re-map t into the remaining segment's local parameter: the
		// remaining segment spans [prevT, 1] of the original curve, so
		// local = (t - prevT) / (1 - prevT).
		remaining := 1 - prevT
		var localT float32
		if remaining <= 0 {
			localT = 1
		} else {
			localT = (t - prevT) / remaining
		}
		if localT < 0 {
			localT = 0
		}
		if localT > 1 {
			localT = 1
		}

		chopped := ChopAt(cur, localT)
		copy(out[outIdx:outIdx+4], chopped[0:4])
		outIdx += 3

		var tail [4]Point
		copy(tail[:], chopped[3:7])
		cur = tail
		prevT = t
	}
	copy(out[outIdx:outIdx+4], cur[:])
	return out
}
