package backend

import "errors"

// Common backend errors.
var (
	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrUnsupportedBuffer is returned when a buffer kind has no backing
	// GPU resource on this backend.
	ErrUnsupportedBuffer = errors.New("backend: unsupported buffer kind")
)

// BufferKind identifies one of the GPU-facing buffers a flush descriptor
// addresses by first*/count offsets.
type BufferKind int

const (
	PathBuffer BufferKind = iota
	PaintBuffer
	PaintAuxBuffer
	ContourBuffer
	ComplexGradSpanBuffer
	TessVertexBuffer
)

// String returns the buffer kind's name, for log records.
func (k BufferKind) String() string {
	switch k {
	case PathBuffer:
		return "path"
	case PaintBuffer:
		return "paint"
	case PaintAuxBuffer:
		return "paintAux"
	case ContourBuffer:
		return "contour"
	case ComplexGradSpanBuffer:
		return "complexGradSpan"
	case TessVertexBuffer:
		return "tessVertex"
	default:
		return "unknown"
	}
}

// BufferStructure optionally tells the backend how to interpret a resize,
// for buffers whose element layout depends on run-time state (e.g. the
// tessellation texture's row width).
type BufferStructure struct {
	ElementStride uint32
	RowWidth      uint32
}

// PlatformFeatures reports what the active backend's platform supports,
// consulted by beginFrame when selecting an interlock mode.
type PlatformFeatures struct {
	SupportsRasterOrdering           bool
	SupportsPixelLocalStorage        bool
	SupportsClipPlanes               bool
	SupportsBindlessTextures         bool
	SupportsKHRBlendEquations        bool
	AlwaysFeatherToAtlas             bool
	AtomicPLSMustBeInitializedAsDraw bool
	PathIDGranularity                uint32
}

// MappedBuffer is a writable view onto a mapped GPU-facing buffer, valid
// between MapBuffer and the matching UnmapBuffer call.
type MappedBuffer interface {
	// Bytes returns the mapped region. Writes are visible to the backend
	// only after the matching Unmap call.
	Bytes() []byte
}

// ImageTexture is an opaque handle to a decoded image resource, owned by
// the backend and referenced by draws via DecodeImageTexture's return
// value.
type ImageTexture interface {
	Width() int
	Height() int
}

// Backend is the external collaborator this core drives between
// beginFrame and flush. It owns all GPU residency; the core only ever
// asks for byte ranges and describes what to submit.
type Backend interface {
	// Resize ensures kind's backing buffer is at least byteSize bytes,
	// growing (never shrinking in place) it if necessary. structure
	// further describes the element layout for buffers that need it
	// (the tessellation texture's row width).
	Resize(kind BufferKind, byteSize uint32, structure BufferStructure) error

	// MapBuffer returns a writable view onto kind's buffer, sized to
	// its most recent Resize call.
	MapBuffer(kind BufferKind) (MappedBuffer, error)

	// UnmapBuffer flushes and releases the writable view returned by the
	// matching MapBuffer call.
	UnmapBuffer(kind BufferKind) error

	// Flush submits one flush descriptor's worth of GPU work.
	Flush(desc *FlushSubmission) error

	// ResizeGradientTexture ensures the gradient texture is at least
	// w x h texels.
	ResizeGradientTexture(w, h uint32) error

	// ResizeTessellationTexture ensures the tessellation data texture is
	// at least w x h texels.
	ResizeTessellationTexture(w, h uint32) error

	// PlatformFeatures reports what this backend's platform supports.
	PlatformFeatures() PlatformFeatures

	// SecondsNow returns a monotonic wall-clock reading, used by the
	// frame/context's 5-second buffer-trim clock.
	SecondsNow() float64

	// DecodeImageTexture decodes bytes into a backend-owned texture.
	DecodeImageTexture(bytes []byte) (ImageTexture, error)
}

// FlushSubmission is the backend-facing view of one logical flush: the
// buffer ranges it touched plus enough of the flush descriptor for the
// backend to issue its render passes. The core never interprets what the
// backend does with it beyond the error return.
type FlushSubmission struct {
	RenderTargetWidth, RenderTargetHeight uint32
	LoadAction                            int
	ClearColor                            [4]uint8
	IsFinalFlush                          bool
}
