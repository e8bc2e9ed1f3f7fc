package wgpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle is an alias for gpucontext.DeviceProvider, grounded on
// the teacher's render.DeviceHandle of the same shape. This backend has
// no API that accepts a host-owned device: New always acquires its own
// through NewDevice.
type DeviceHandle = gpucontext.DeviceProvider

// ownedDeviceHandle adapts a *Device acquired by NewDevice to
// gpucontext.DeviceProvider. Since Device is built on the wgpu/core ID
// types rather than gpucontext's Device/Queue/Adapter interfaces, there is
// no real conversion to perform; every accessor returns nil, the same
// fallback the teacher's own NullDeviceHandle uses for CPU-only
// rendering. This exists so code written against gpucontext.DeviceProvider
// can be handed a value for this backend.
type ownedDeviceHandle struct {
	format gputypes.TextureFormat
}

func (ownedDeviceHandle) Device() gpucontext.Device   { return nil }
func (ownedDeviceHandle) Queue() gpucontext.Queue     { return nil }
func (ownedDeviceHandle) Adapter() gpucontext.Adapter { return nil }

func (h ownedDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return h.format
}

var _ DeviceHandle = ownedDeviceHandle{}
