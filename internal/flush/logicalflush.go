package flush

import (
	"errors"
	"fmt"

	"github.com/gogpu/corerender/internal/clipstack"
	"github.com/gogpu/corerender/internal/gradient"
	"github.com/gogpu/corerender/internal/isect"
)

// ErrBatchRefused is returned by PushDrawBatch when accepting the
// batch would push some resource count past its ceiling. The caller's
// recovery is
// always the same: start a fresh LogicalFlush and retry the batch
// there, per the frame's two-retry policy.
var ErrBatchRefused = errors.New("flush: draw batch refused")

// LogicalFlush accumulates one render pass's worth of draws: ingest via
// PushDrawBatch, a one-time Layout pass, then Write and the sorted,
// batched draw list PushCallback consumes.
//
// One LogicalFlush never spans more than one clip buffer and one
// gradient texture; a frame that needs more capacity than a single
// flush can hold starts a new LogicalFlush and continues there.
type LogicalFlush struct {
	draws []Draw

	nextPathID    uint32
	nextContourID uint32
	tessVertexCount uint32

	ClipTable *clipstack.Table
	Gradients *gradient.Allocator
	board     *isect.Board

	desc FlushDescriptor
}

// NewLogicalFlush returns an empty logical flush sized against
// viewportWidth x viewportHeight for draw-group reordering.
func NewLogicalFlush(viewportWidth, viewportHeight uint32) *LogicalFlush {
	board := isect.NewBoard()
	board.ResizeAndReset(viewportWidth, viewportHeight)
	return &LogicalFlush{
		// Path ID 0 is reserved for the clearColor pseudo-draw (Layout
		// step 1), so real paths start at 1.
		nextPathID:    1,
		ClipTable:     clipstack.NewTable(),
		Gradients:     gradient.NewAllocator(),
		board:         board,
	}
}

// PushDrawBatch adds draws to the flush if doing so keeps every
// resource count under its ceiling. Draws must already carry a
// resolved PaintIndex and gradient Location (if any); gradient
// allocation itself happens before this call, against lf.Gradients, so
// a caller can refuse the whole batch on an allocation failure without
// this method needing to unwind partial state.
//
// On success, each draw's PathID, ContourFirst/Count and drawGroupIndex
// are assigned on copies that are appended to the flush's list; the
// caller's draws slice is not modified.
func (lf *LogicalFlush) PushDrawBatch(draws []Draw) error {
	addedPaths := uint32(len(draws))
	addedContours := uint32(0)
	addedVertices := uint32(0)
	for i := range draws {
		if draws[i].Plan != nil {
			addedContours += uint32(len(draws[i].Plan.Contours))
			addedVertices += uint32(draws[i].Plan.TotalVertexCount())
		}
	}

	if lf.nextPathID+addedPaths > MaxPathID {
		return fmt.Errorf("%w: path ID ceiling", ErrBatchRefused)
	}
	if lf.nextContourID+addedContours > MaxContourID {
		return fmt.Errorf("%w: contour ID ceiling", ErrBatchRefused)
	}
	if lf.tessVertexCount+addedVertices > MaxTessellationVertexCountBeforePadding {
		return fmt.Errorf("%w: tessellation vertex ceiling", ErrBatchRefused)
	}
	if len(lf.draws)+len(draws) > MaxReorderedDrawCount {
		return fmt.Errorf("%w: reordered draw count ceiling", ErrBatchRefused)
	}

	for i := range draws {
		d := draws[i]
		d.PathID = lf.nextPathID
		lf.nextPathID++

		d.ContourFirst = lf.nextContourID
		if d.Plan != nil {
			d.ContourCount = uint32(len(d.Plan.Contours))
			lf.nextContourID += d.ContourCount
		}

		d.originalIndex = len(lf.draws)
		if !d.Bounds.Empty() {
			d.drawGroupIndex = lf.board.AddRectangle(d.Bounds)
		}

		lf.draws = append(lf.draws, d)
	}
	lf.tessVertexCount += addedVertices
	return nil
}

// Draws returns the flush's current draw list, in ingest order (call
// SortAndBatch to get the reordered, batched submission order).
func (lf *LogicalFlush) Draws() []Draw {
	return lf.draws
}

// PathCount returns the number of path record slots this flush has
// reserved, including the clearColor pseudo-draw at path ID 0.
func (lf *LogicalFlush) PathCount() uint32 {
	return lf.nextPathID
}

// ContourCount returns the number of contour record slots this flush
// has assigned.
func (lf *LogicalFlush) ContourCount() uint32 {
	return lf.nextContourID
}

// PaintCount returns the number of paint record slots this flush
// needs: one per draw, since each draw carries its own paint.
func (lf *LogicalFlush) PaintCount() uint32 {
	return uint32(len(lf.draws))
}

// Reset clears the flush back to empty, reusing its clip table,
// gradient allocator and isect board's backing storage.
func (lf *LogicalFlush) Reset(viewportWidth, viewportHeight uint32) {
	lf.draws = lf.draws[:0]
	lf.nextPathID = 1
	lf.nextContourID = 0
	lf.tessVertexCount = 0
	lf.ClipTable.Reset()
	lf.Gradients = gradient.NewAllocator()
	lf.board.ResizeAndReset(viewportWidth, viewportHeight)
}
