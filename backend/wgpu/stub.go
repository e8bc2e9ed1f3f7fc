package wgpu

// StubBufferID is a placeholder for an actual wgpu core.BufferID.
//
// Grounded on the teacher's own pipeline.go, which stages wgpu calls it
// hasn't wired yet behind StubPipelineID/StubBindGroupID placeholders and
// a "TODO: When wgpu is ready" comment at each call site. Buffer and
// texture residency here follow the same discipline: the id is real
// bookkeeping (it indexes into the host-backed byte slice a MappedBuffer
// views), but the wgpu-side core.CreateBuffer/core.WriteBuffer calls that
// would back it on a real GPU are not part of the retrieved source
// subset, so they are staged the same way.
type StubBufferID uint64

// StubTextureID is a placeholder for an actual wgpu core.TextureID.
type StubTextureID uint64

// InvalidStubBufferID marks a buffer slot that has never been resized.
const InvalidStubBufferID StubBufferID = 0

// TODO: When wgpu buffer creation is ready, replace the []byte-backed
// hostBuffer below with a real mapped wgpu buffer:
//
//	id, err := core.CreateBuffer(device, &types.BufferDescriptor{
//	    Size:  byteSize,
//	    Usage: types.BufferUsageStorage | types.BufferUsageCopyDst,
//	})
