package isect

import "github.com/gogpu/corerender/internal/wide"

// Board manages a set of rectangles and their groupIndex across a
// variable-sized viewport. Each time a rectangle is added, it is
// assigned a groupIndex one larger than the maximum groupIndex among
// the existing rectangles it intersects.
type Board struct {
	viewport  [2]int32
	cols, rows int32
	tiles     []Tile
}

// NewBoard creates an empty board. Call ResizeAndReset before use.
func NewBoard() *Board {
	return &Board{}
}

// ResizeAndReset sizes the tile grid to cover a viewport of the given
// dimensions and clears every rectangle.
func (board *Board) ResizeAndReset(viewportWidth, viewportHeight uint32) {
	board.viewport = [2]int32{int32(viewportWidth), int32(viewportHeight)}

	cols := (int32(viewportWidth) + tileSpan - 1) / tileSpan
	rows := (int32(viewportHeight) + tileSpan - 1) / tileSpan
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	board.cols, board.rows = cols, rows

	needed := int(cols * rows)
	if len(board.tiles) < needed {
		grown := make([]Tile, needed)
		copy(grown, board.tiles)
		board.tiles = grown
	}

	for y := int32(0); y < rows; y++ {
		for x := int32(0); x < cols; x++ {
			board.tiles[y*cols+x].Reset(x*tileSpan, y*tileSpan, 0)
		}
	}
}

// AddRectangle adds ltrb to the board and returns the groupIndex
// assigned to it: one larger than the max groupIndex among every
// existing rectangle it overlaps, or 1 if it overlaps nothing. Empty,
// negative, or fully-offscreen rectangles are discarded and return 0.
//
// It is the caller's responsibility not to insert more rectangles than
// fit in a signed 16-bit index.
func (board *Board) AddRectangle(ltrb LTRB) int16 {
	if ltrb.Left >= board.viewport[0] || ltrb.Top >= board.viewport[1] ||
		ltrb.Right <= 0 || ltrb.Bottom <= 0 || ltrb.Empty() {
		return 0
	}

	// Clamp to the viewport to avoid integer overflow in tile math.
	ltrb.Left = maxI32(ltrb.Left, 0)
	ltrb.Top = maxI32(ltrb.Top, 0)
	ltrb.Right = minI32(ltrb.Right, board.viewport[0])
	ltrb.Bottom = minI32(ltrb.Bottom, board.viewport[1])

	colSpanLo := clampI32((ltrb.Left)/tileSpan, 0, board.cols-1)
	colSpanHi := clampI32((ltrb.Right-1)/tileSpan, 0, board.cols-1)
	rowSpanLo := clampI32((ltrb.Top)/tileSpan, 0, board.rows-1)
	rowSpanHi := clampI32((ltrb.Bottom-1)/tileSpan, 0, board.rows-1)

	var maxGroupIndices wide.Int16x8
	for y := rowSpanLo; y <= rowSpanHi; y++ {
		rowBase := y * board.cols
		for x := colSpanLo; x <= colSpanHi; x++ {
			maxGroupIndices = board.tiles[rowBase+x].FindMaxIntersectingGroupIndex(ltrb, maxGroupIndices)
		}
	}

	maxGroupIndex := maxGroupIndices.ReduceMax()
	nextGroupIndex := maxGroupIndex + 1

	for y := rowSpanLo; y <= rowSpanHi; y++ {
		rowBase := y * board.cols
		for x := colSpanLo; x <= colSpanHi; x++ {
			board.tiles[rowBase+x].AddRectangle(ltrb, nextGroupIndex)
		}
	}

	return nextGroupIndex
}
