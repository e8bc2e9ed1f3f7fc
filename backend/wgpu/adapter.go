package wgpu

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/gogpu/corerender/backend"
	"github.com/gogpu/gputypes"
	_ "golang.org/x/image/bmp"
)

func init() {
	backend.Register("wgpu", func() (backend.Backend, error) {
		return New("corerender")
	})
}

// hostBuffer is a []byte-backed stand-in for a mapped wgpu buffer. It
// satisfies backend.MappedBuffer directly; Unmap is a no-op until real
// buffer uploads are wired (see stub.go).
type hostBuffer struct{ data []byte }

func (b *hostBuffer) Bytes() []byte { return b.data }

// texture is a host-side stand-in for a resizable wgpu texture, sized in
// texels rather than bytes.
type texture struct {
	id            StubTextureID
	width, height uint32
}

// Adapter implements backend.Backend against one acquired Device. Buffer
// and texture residency is staged through StubBufferID/StubTextureID
// placeholders backed by plain host memory, per stub.go; Flush submits
// nothing and the texture resizes only record the requested size.
type Adapter struct {
	device *Device

	buffers    map[backend.BufferKind]*hostBuffer
	structures map[backend.BufferKind]backend.BufferStructure

	gradientTex     texture
	tessellationTex texture
	nextStubTexture StubTextureID
	decodedTextures []*decodedImage
}

type decodedImage struct {
	img image.Image
}

func (d *decodedImage) Width() int  { return d.img.Bounds().Dx() }
func (d *decodedImage) Height() int { return d.img.Bounds().Dy() }

// New acquires a GPU device and returns an Adapter bound to it.
func New(label string) (backend.Backend, error) {
	device, err := NewDevice(label)
	if err != nil {
		return nil, err
	}
	return &Adapter{
		device:          device,
		buffers:         make(map[backend.BufferKind]*hostBuffer),
		structures:      make(map[backend.BufferKind]backend.BufferStructure),
		nextStubTexture: 1,
	}, nil
}

// Resize implements backend.Backend.
func (a *Adapter) Resize(kind backend.BufferKind, byteSize uint32, structure backend.BufferStructure) error {
	buf, ok := a.buffers[kind]
	if !ok {
		buf = &hostBuffer{}
		a.buffers[kind] = buf
	}
	if uint32(len(buf.data)) < byteSize {
		buf.data = make([]byte, byteSize)
	}
	a.structures[kind] = structure
	return nil
}

// MapBuffer implements backend.Backend.
func (a *Adapter) MapBuffer(kind backend.BufferKind) (backend.MappedBuffer, error) {
	buf, ok := a.buffers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s never resized", backend.ErrUnsupportedBuffer, kind)
	}
	return buf, nil
}

// UnmapBuffer implements backend.Backend. Until real buffer uploads are
// wired (stub.go), the host slice a MappedBuffer views is already the
// buffer's backing store, so there is nothing to flush.
func (a *Adapter) UnmapBuffer(kind backend.BufferKind) error {
	if _, ok := a.buffers[kind]; !ok {
		return fmt.Errorf("%w: %s never resized", backend.ErrUnsupportedBuffer, kind)
	}
	return nil
}

// Flush implements backend.Backend. It rejects a nil submission and
// otherwise returns without recording, logging or submitting any GPU
// work.
func (a *Adapter) Flush(desc *backend.FlushSubmission) error {
	if desc == nil {
		return fmt.Errorf("wgpu: nil flush submission")
	}
	return nil
}

// ResizeGradientTexture implements backend.Backend.
func (a *Adapter) ResizeGradientTexture(w, h uint32) error {
	if a.gradientTex.id == 0 {
		a.gradientTex.id = a.nextStubTexture
		a.nextStubTexture++
	}
	a.gradientTex.width, a.gradientTex.height = w, h
	return nil
}

// ResizeTessellationTexture implements backend.Backend.
func (a *Adapter) ResizeTessellationTexture(w, h uint32) error {
	if a.tessellationTex.id == 0 {
		a.tessellationTex.id = a.nextStubTexture
		a.nextStubTexture++
	}
	a.tessellationTex.width, a.tessellationTex.height = w, h
	return nil
}

// PlatformFeatures implements backend.Backend, reporting a conservative
// baseline: no raster-ordering or pixel-local-storage extensions, one
// path ID per draw. A finished driver would query these off the
// adapter's reported limits and extension set instead of hardcoding them.
func (a *Adapter) PlatformFeatures() backend.PlatformFeatures {
	return backend.PlatformFeatures{
		SupportsRasterOrdering:           false,
		SupportsPixelLocalStorage:        false,
		SupportsClipPlanes:               false,
		SupportsBindlessTextures:         false,
		SupportsKHRBlendEquations:        false,
		AlwaysFeatherToAtlas:             true,
		AtomicPLSMustBeInitializedAsDraw: false,
		PathIDGranularity:                1,
	}
}

// SecondsNow implements backend.Backend.
func (a *Adapter) SecondsNow() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// DecodeImageTexture implements backend.Backend. PNG, JPEG and GIF decode
// through the standard library; BMP decodes through golang.org/x/image/bmp,
// registered for image.Decode via its blank import above, the same
// decode-then-dispatch shape the teacher's image tooling uses.
func (a *Adapter) DecodeImageTexture(data []byte) (backend.ImageTexture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("wgpu: decode image texture: %w", err)
	}
	decoded := &decodedImage{img: img}
	a.decodedTextures = append(a.decodedTextures, decoded)
	return decoded, nil
}

// DeviceHandle returns a gpucontext.DeviceProvider for this adapter. Its
// Device, Queue and Adapter accessors return nil and its surface format
// is TextureFormatUndefined; it does not expose the device this adapter
// acquired.
func (a *Adapter) DeviceHandle() DeviceHandle {
	return ownedDeviceHandle{format: gputypes.TextureFormatUndefined}
}

// Close releases the underlying device.
func (a *Adapter) Close() {
	a.device.Close()
}
