package flush

import (
	"github.com/gogpu/corerender/internal/drawbuilder"
	"github.com/gogpu/corerender/internal/gradient"
	"github.com/gogpu/corerender/internal/isect"
)

// BufferOffsets are the base record indices this flush's path, paint,
// paintAux and contour records start at within the frame's shared GPU
// buffers. A frame with a single logical flush passes all-zero
// offsets; a frame spanning several flushes (because an earlier one
// hit a resource ceiling) assigns each subsequent flush's offsets past
// the previous one's record counts, so every flush's records occupy a
// disjoint range of the same buffers.
type BufferOffsets struct {
	Path, Contour, Paint, PaintAux uint32
}

// ClearRequest describes the render-target clear a flush's Layout step
// resolves into a load action.
type ClearRequest struct {
	Requested  bool
	Color      [4]uint8
	AtomicMode bool
}

// Layout runs the flush's once-per-flush layout pass: reserves the
// clearColor pseudo-draw's path record, assigns tessellation vertex
// ranges, resolves the load action and render-target update bounds,
// and fills in the rest of the flush descriptor. renderTargetBounds is
// the full render target's device-space bounds.
func (lf *LogicalFlush) Layout(offsets BufferOffsets, renderTargetBounds isect.LTRB, clear ClearRequest) FlushDescriptor {
	// Step 1: path record 0 is the clearColor pseudo-draw; real path
	// records start one slot past it, which PushDrawBatch already
	// arranged for by starting nextPathID at 1.
	desc := FlushDescriptor{
		FirstPath:     offsets.Path,
		FirstContour:  offsets.Contour,
		FirstPaint:    offsets.Paint,
		FirstPaintAux: offsets.PaintAux,
	}

	// Step 3: assign tessellation vertex ranges, one prepadding patch
	// before the first real draw's vertices.
	cursor := uint32(drawbuilder.MidpointFanPatchSegmentSpan)
	for i := range lf.draws {
		d := &lf.draws[i]
		if d.Plan == nil {
			continue
		}
		d.VertexFirst = cursor
		d.VertexCount = uint32(d.Plan.TotalVertexCount())
		cursor += d.VertexCount
	}
	cursor = padUp32(cursor, drawbuilder.OuterCurvePatchSegmentSpan)
	cursor++ // trailing padding vertex

	desc.TessDataHeight = rowsFor(cursor, TessTextureWidth)

	// Step 4/5: load action and render-target update bounds.
	desc.LoadAction, desc.AtomicCoverageInitialValue = resolveLoadAction(clear)
	desc.RenderTargetUpdateBounds = resolveUpdateBounds(clear.Requested, renderTargetBounds, lf.draws)

	// Step 6: gradient texture extents. Simple ramps occupy the bottom
	// rows, complex gradients the rows above them, mirroring
	// Allocator.SimpleDataHeight/ComplexDataHeight's own row ordering.
	desc.SimpleGradTexelsWidth = gradient.TextureWidth
	desc.SimpleGradTexelsHeight = uint32(lf.Gradients.SimpleDataHeight())
	desc.ComplexGradRowsTop = desc.SimpleGradTexelsHeight
	desc.ComplexGradRowsHeight = uint32(lf.Gradients.ComplexDataHeight())
	desc.ClearColor = clear.Color

	lf.desc = desc
	return desc
}

func resolveLoadAction(clear ClearRequest) (LoadAction, CoverageInitialValue) {
	if !clear.Requested {
		return LoadPreserve, CoverageZero
	}
	opaque := clear.Color[3] == 0xFF
	if clear.AtomicMode && opaque {
		return LoadFoldIntoAtomicResolve, CoverageFullyCovered
	}
	if clear.AtomicMode {
		return LoadFoldIntoAtomicResolve, CoverageZero
	}
	return LoadClear, CoverageZero
}

func resolveUpdateBounds(clearing bool, renderTarget isect.LTRB, draws []Draw) isect.LTRB {
	if clearing {
		return renderTarget
	}
	var combined isect.LTRB
	has := false
	for _, d := range draws {
		if d.Bounds.Empty() {
			continue
		}
		if !has {
			combined = d.Bounds
			has = true
			continue
		}
		combined = unionLTRB(combined, d.Bounds)
	}
	if !has {
		return isect.LTRB{}
	}
	return intersectLTRB(combined, renderTarget)
}

func unionLTRB(a, b isect.LTRB) isect.LTRB {
	return isect.LTRB{
		Left:   minI32(a.Left, b.Left),
		Top:    minI32(a.Top, b.Top),
		Right:  maxI32(a.Right, b.Right),
		Bottom: maxI32(a.Bottom, b.Bottom),
	}
}

func intersectLTRB(a, b isect.LTRB) isect.LTRB {
	out := isect.LTRB{
		Left:   maxI32(a.Left, b.Left),
		Top:    maxI32(a.Top, b.Top),
		Right:  minI32(a.Right, b.Right),
		Bottom: minI32(a.Bottom, b.Bottom),
	}
	if out.Empty() {
		return isect.LTRB{}
	}
	return out
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func padUp32(n, span uint32) uint32 {
	if span == 0 {
		return n
	}
	if rem := n % span; rem != 0 {
		return n + (span - rem)
	}
	return n
}

// rowsFor returns how many rows of width texels it takes to hold n
// tessellation vertices, one vertex per texel, auto-wrapping the way
// tessellation span writes wrap at TessTextureWidth.
func rowsFor(n, width uint32) uint32 {
	if width == 0 {
		return 0
	}
	return (n + width - 1) / width
}
