package flush

import (
	"github.com/gogpu/corerender/internal/clipstack"
	"github.com/gogpu/corerender/internal/drawbuilder"
	"github.com/gogpu/corerender/internal/isect"
)

// Resource ceilings a logical flush's ingest enforces before accepting
// a draw batch. Grounded on render_context.cpp's kMaxPathID/
// kMaxContourID/kMaxTessellationVertexCountBeforePadding/
// kMaxReorderedDrawCount; the defining header (shaders/constants.glsl)
// was not part of the retrieved source subset, so these are documented
// choices sized generously for a single render pass rather than values
// copied from it.
const (
	MaxPathID                             = 1 << 16
	MaxContourID                          = 1 << 16
	MaxTessellationVertexCountBeforePadding = 1 << 20
	MaxReorderedDrawCount                  = 1 << 14

	// TessTextureWidth is how many tessellation vertices fit across one
	// row of the tessellation data texture before a span write must
	// wrap to the next row.
	TessTextureWidth = 2048

	// BufferAlignment is the byte boundary every storage buffer
	// (path, paint, paintAux, contour, complex-grad-span) is padded to.
	BufferAlignment = 256
)

// DrawType identifies what kind of GPU patch a Draw submits.
type DrawType int

const (
	DrawMidpointFanPath DrawType = iota
	DrawInteriorTriangulation
	DrawImageRect
	DrawImageMesh
	DrawClipUpdate
	DrawGPUAtomicInitialize
	DrawGPUAtomicResolve
)

// String returns the draw type's name.
func (t DrawType) String() string {
	switch t {
	case DrawMidpointFanPath:
		return "midpointFanPath"
	case DrawInteriorTriangulation:
		return "interiorTriangulation"
	case DrawImageRect:
		return "imageRect"
	case DrawImageMesh:
		return "imageMesh"
	case DrawClipUpdate:
		return "clipUpdate"
	case DrawGPUAtomicInitialize:
		return "gpuAtomicInitialize"
	case DrawGPUAtomicResolve:
		return "gpuAtomicResolve"
	default:
		return "unknown"
	}
}

// DrawContents is a bitfield summarizing a draw's shader-visible
// properties, consulted both for the sort key and for MSAA's
// batch-barrier rule (a run of draws only merges while these bits
// stay constant).
type DrawContents uint8

const (
	ContentsOpaque DrawContents = 1 << iota
	ContentsEvenOdd
	ContentsNestedClip
	ContentsStroked
	ContentsFeathered
)

// Draw is one path/image/clip-update submission pushed into a logical
// flush's draw list, carrying everything PushDrawBatch's ceiling
// checks, Layout's vertex-offset assignment, and the sort/batch pass
// need.
type Draw struct {
	Type DrawType

	// PathID/ContourFirst/ContourCount address this draw's path and
	// contour records once Layout has assigned them base offsets.
	PathID       uint32
	ContourFirst uint32
	ContourCount uint32

	// Plan is the tessellation plan BuildPlan produced for this draw's
	// path under its current paint/transform; nil for image and
	// clip-update draws, which don't tessellate a path.
	Plan *drawbuilder.Plan

	// VertexFirst/VertexCount address this draw's tessellated vertices
	// in the tessellation data texture, assigned during Layout.
	VertexFirst uint32
	VertexCount uint32

	PaintIndex uint32
	ClipID     uint16
	BlendMode  uint8
	Contents   DrawContents

	// ImageTextureHash identifies the bound image texture, 0 if none;
	// consecutive draws with the same non-zero hash and a mergeable
	// type may batch together.
	ImageTextureHash uint64

	// Bounds is this draw's device-space bounding box, used both for
	// isect.Board draw-group assignment and the render-target update
	// bounds computation.
	Bounds isect.LTRB

	// ClipElement is the clip-stack element active for this draw, or
	// nil if unclipped.
	ClipElement *clipstack.Element

	// drawGroupIndex is assigned by isect.Board.AddRectangle during
	// ingest; negated in the sort key for opaque, unclipped MSAA
	// draws so they sort front-to-back instead of back-to-front.
	drawGroupIndex int16

	// originalIndex is this draw's position in the call order the
	// caller pushed it in, the sort key's tie-breaker and the ordering
	// guarantee's logical z-order floor.
	originalIndex int
}

// FlushDescriptor is the backend-facing summary of one logical flush's
// layout: buffer base offsets, load action, and render-target update
// bounds. The root package's Context hands this (augmented with
// render-target dimensions) to the backend as a backend.FlushSubmission.
type FlushDescriptor struct {
	FirstPath     uint32
	FirstContour  uint32
	FirstPaint    uint32
	FirstPaintAux uint32

	SimpleGradTexelsWidth  uint32
	SimpleGradTexelsHeight uint32
	ComplexGradRowsTop     uint32
	ComplexGradRowsHeight  uint32

	TessDataHeight uint32

	LoadAction LoadAction
	ClearColor [4]uint8

	// RenderTargetUpdateBounds is the region of the render target this
	// flush's draws actually touch: the full target when clearing,
	// otherwise the union of every draw's bounds intersected with the
	// render target, empty if neither applies.
	RenderTargetUpdateBounds isect.LTRB

	// AtomicCoverageInitialValue is set only in atomic mode: "fully
	// covered, pathID 0" when the clear folds into the atomic resolve
	// step, "zero coverage, pathID 0" otherwise.
	AtomicCoverageInitialValue CoverageInitialValue
}

// LoadAction selects how the render target is primed before a logical
// flush's draws run.
type LoadAction int

const (
	LoadClear LoadAction = iota
	LoadPreserve
	LoadFoldIntoAtomicResolve
)

// CoverageInitialValue describes the atomic-mode coverage buffer's
// starting state, meaningful only when LoadAction ==
// LoadFoldIntoAtomicResolve.
type CoverageInitialValue int

const (
	CoverageZero CoverageInitialValue = iota
	CoverageFullyCovered
)
