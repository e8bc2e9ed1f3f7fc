package corerender

import (
	"github.com/gogpu/corerender/backend"
	"github.com/gogpu/corerender/internal/flush"
)

// LoadAction selects how the render target is primed at the start of
// a frame.
type LoadAction int

const (
	LoadActionClear LoadAction = iota
	LoadActionPreserve
	LoadActionDontCare
)

// FrameDescriptor is the caller-supplied description of one frame's
// render target and debug switches, passed to BeginFrame.
//
// Grounded on spec.md's "Frame descriptor (inputs to a flush)" data
// model entry and render_context.cpp's RenderTarget/FrameDescriptor
// pair.
type FrameDescriptor struct {
	RenderTargetWidth, RenderTargetHeight uint32
	ClearColor                            [4]uint8
	LoadAction                            LoadAction

	// MSAASampleCount >0 selects the MSAA interlock mode; 0 lets
	// BeginFrame pick a mode from the platform's features, which is MSAA
	// only when the platform supports none of the other modes.
	MSAASampleCount uint32

	StrokesDisabled bool
	FillsDisabled   bool

	// ClockwiseFillOverride forces every nonZero fill's winding
	// resolution as if it were a clockwise fill, a debug switch for
	// isolating winding bugs.
	ClockwiseFillOverride bool

	Wireframe bool
}

// InterlockMode is how the active backend resolves overlapping
// coverage between draws: via hardware-ordered storage writes, a
// software atomic emulation, MSAA stencil-then-cover, or clip planes.
type InterlockMode int

const (
	InterlockRasterOrdering InterlockMode = iota
	InterlockAtomics
	InterlockMSAA
	InterlockClipPlanes
)

// chooseInterlockMode resolves beginFrame's interlock-mode decision
// from the requested sample count and what the active backend's
// platform supports: MSAA always wins when requested (its
// stencil-then-cover path doesn't need PLS at all), otherwise the
// highest-fidelity non-MSAA mode the platform actually supports, and
// MSAA when it supports none of them.
func chooseInterlockMode(features backend.PlatformFeatures, msaaSampleCount uint32) InterlockMode {
	if msaaSampleCount > 0 {
		return InterlockMSAA
	}
	switch {
	case features.SupportsRasterOrdering:
		return InterlockRasterOrdering
	case features.SupportsPixelLocalStorage:
		return InterlockAtomics
	case features.SupportsClipPlanes:
		return InterlockClipPlanes
	default:
		return InterlockMSAA
	}
}

// clearRequest converts a FrameDescriptor's load action into the
// internal/flush.ClearRequest its Layout step consumes.
func clearRequestFrom(desc FrameDescriptor, atomicMode bool) flush.ClearRequest {
	return flush.ClearRequest{
		Requested:  desc.LoadAction == LoadActionClear,
		Color:      desc.ClearColor,
		AtomicMode: atomicMode,
	}
}
