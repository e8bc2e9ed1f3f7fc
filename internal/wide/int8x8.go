package wide

// Int8x8 represents 8 int8 values for SIMD-style operations. The
// intersection board uses four of these per chunk (L, T, 255-R, 255-B,
// each biased into signed int8 range) so every part of the four-way
// rectangle intersection test is the same signed less-than per lane.
type Int8x8 [8]int8

// SplatInt8 creates an Int8x8 with all elements set to n.
func SplatInt8(n int8) Int8x8 {
	var result Int8x8
	for i := range result {
		result[i] = n
	}
	return result
}

// LessThan performs an element-wise signed less-than, returning an
// Int16x8 mask where each lane is -1 (0xffff) if v[i] < other[i], else
// 0. Widened to 16 bits directly since that is the only width the
// caller (isect.Tile) ever needs the mask at.
func (v Int8x8) LessThan(other Int8x8) Int16x8 {
	var result Int16x8
	for i := range v {
		if v[i] < other[i] {
			result[i] = -1
		}
	}
	return result
}
