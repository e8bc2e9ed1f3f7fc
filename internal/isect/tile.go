package isect

import (
	"math"

	"github.com/gogpu/corerender/internal/wide"
)

const (
	tileChunkSize = 8
	tileSpan      = 255
	int8Min       = math.MinInt8
	int8Max       = math.MaxInt8
)

// edgeChunk holds one chunk of up to 8 rectangles, encoded as
// [L, T, 255-R, 255-B] relative to the tile's top-left corner and
// biased into signed int8 range, transposed so each component is its
// own 8-lane vector (L0..L7, T0..T7, negR0..negR7, negB0..negB7).
type edgeChunk struct {
	l, t, negR, negB wide.Int8x8
}

// Tile is a 255x255 region of the intersection board. Rectangle edges,
// once clamped to the tile, fit in 8 bits, so "do two rectangles
// intersect" collapses to one signed less-than per edge.
type Tile struct {
	topLeft             [2]int32
	baselineGroupIndex  int16
	maxGroupIndex       int16
	rectangleCount      int
	edges               []edgeChunk
	groupIndices        []wide.Int16x8
}

// Reset clears all rectangles and establishes a new tile-space origin
// and baseline group index: every subsequent query on this tile
// returns at least baselineGroupIndex.
func (tile *Tile) Reset(left, top int32, baselineGroupIndex int16) {
	tile.topLeft = [2]int32{left, top}
	tile.baselineGroupIndex = baselineGroupIndex
	tile.maxGroupIndex = baselineGroupIndex
	tile.edges = tile.edges[:0]
	tile.groupIndices = tile.groupIndices[:0]
	tile.rectangleCount = 0
}

// AddRectangle inserts ltrb (in board coordinates) with the given
// groupIndex, which must be strictly greater than the max intersecting
// index already present (callers are expected to have queried that via
// FindMaxIntersectingGroupIndex first). If ltrb covers the entire tile,
// the tile is reset to this new baseline instead of storing a rectangle.
func (tile *Tile) AddRectangle(ltrb LTRB, groupIndex int16) {
	// Translate into tile-local coordinates and negate right/bottom.
	l := ltrb.Left - tile.topLeft[0]
	t := ltrb.Top - tile.topLeft[1]
	r := tileSpan - (ltrb.Right - tile.topLeft[0])
	b := tileSpan - (ltrb.Bottom - tile.topLeft[1])

	l = clampI32(l, 0, tileSpan)
	t = clampI32(t, 0, tileSpan)
	r = clampI32(r, 0, tileSpan)
	b = clampI32(b, 0, tileSpan)

	if l == 0 && t == 0 && r == 0 && b == 0 {
		// ltrb covers the entire tile: reset to a new baseline.
		tile.Reset(tile.topLeft[0], tile.topLeft[1], groupIndex)
		return
	}

	subIdx := tile.rectangleCount % tileChunkSize
	if subIdx == 0 {
		// Push a fresh chunk, pre-filled with maximally-positive edges so
		// unused slots always fail intersection tests.
		tile.edges = append(tile.edges, edgeChunk{
			l:    wide.SplatInt8(int8Max),
			t:    wide.SplatInt8(int8Max),
			negR: wide.SplatInt8(int8Max),
			negB: wide.SplatInt8(int8Max),
		})
		tile.groupIndices = append(tile.groupIndices, wide.Int16x8{})
	}

	chunk := &tile.edges[len(tile.edges)-1]
	chunk.l[subIdx] = biasInt8(l)
	chunk.t[subIdx] = biasInt8(t)
	chunk.negR[subIdx] = biasInt8(r)
	chunk.negB[subIdx] = biasInt8(b)
	tile.groupIndices[len(tile.groupIndices)-1][subIdx] = groupIndex

	if groupIndex > tile.maxGroupIndex {
		tile.maxGroupIndex = groupIndex
	}
	tile.rectangleCount++
}

// biasInt8 biases a value in [0, 255] into signed int8 range by
// subtracting 128, matching the original's "+ INT8_MIN" bias so the
// encoded edges can use a signed comparison.
func biasInt8(v int32) int8 {
	return int8(v + int8Min)
}

// FindMaxIntersectingGroupIndex returns, per lane of runningMaxGroupIndices,
// the local max group index of any stored rectangle that overlaps ltrb,
// always at least the tile's baseline. The overall maximum the
// rectangle intersects with across every tile it touches is
// ReduceMax(result).
func (tile *Tile) FindMaxIntersectingGroupIndex(ltrb LTRB, running wide.Int16x8) wide.Int16x8 {
	l := tileSpan - (ltrb.Left - tile.topLeft[0])
	t := tileSpan - (ltrb.Top - tile.topLeft[1])
	r := ltrb.Right - tile.topLeft[0]
	b := ltrb.Bottom - tile.topLeft[1]

	l = clampI32(l, 0, tileSpan)
	t = clampI32(t, 0, tileSpan)
	r = clampI32(r, 0, tileSpan)
	b = clampI32(b, 0, tileSpan)

	if l == tileSpan && t == tileSpan && r == tileSpan && b == tileSpan {
		// ltrb covers the entire tile: it intersects with every rectangle.
		if tile.maxGroupIndex > running[0] {
			running[0] = tile.maxGroupIndex
		}
		return running
	}

	// Intersection test per stored rectangle i:
	//   l0 < r_i && t0 < b_i && r0 > l_i && b0 > t_i
	// Rewritten so every comparison is the same operator:
	//   +l0 < +r_i && +t0 < +b_i && -r0 < -l_i && -b0 < -t_i
	// m_edges already stores [-l_i, -t_i, ... ] style quantities (255-R,
	// 255-B for the right/bottom columns); encode ltrb to match.
	rQuery := biasInt8(r)
	bQuery := biasInt8(b)
	lQuery := biasInt8(l) // already "255 - left"
	tQuery := biasInt8(t) // already "255 - top"

	result := running
	for i := range tile.edges {
		chunk := &tile.edges[i]
		maskR := chunk.l.LessThan(wide.SplatInt8(rQuery))
		maskB := chunk.t.LessThan(wide.SplatInt8(bQuery))
		maskL := chunk.negR.LessThan(wide.SplatInt8(lQuery))
		maskT := chunk.negB.LessThan(wide.SplatInt8(tQuery))

		isect := andMask(andMask(maskR, maskB), andMask(maskL, maskT))
		masked := tile.groupIndices[i].And(isect)
		result = result.Max(masked)
	}

	if tile.baselineGroupIndex > result[0] {
		result[0] = tile.baselineGroupIndex
	}
	return result
}

func andMask(a, b wide.Int16x8) wide.Int16x8 {
	return a.And(b)
}
