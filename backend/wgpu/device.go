package wgpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	"github.com/gogpu/wgpu/types"
)

// ErrNoGPU is returned when no suitable GPU adapter could be found.
var ErrNoGPU = errors.New("wgpu: no suitable GPU adapter")

// GPUInfo describes the adapter a Device ended up bound to.
type GPUInfo struct {
	Name       string
	Vendor     string
	DeviceType types.DeviceType
	Backend    types.Backend
	Driver     string
}

func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Device owns one WebGPU instance/adapter/device/queue, acquired the way
// the teacher's native backend does: an instance, a high-performance
// adapter request, then a device and queue off that adapter.
type Device struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	info *GPUInfo
}

// NewDevice creates and initializes a WebGPU device.
func NewDevice(label string) (*Device, error) {
	d := &Device{
		instance: core.NewInstance(&gputypes.InstanceDescriptor{
			Backends: gputypes.BackendsPrimary,
		}),
	}

	adapterID, err := d.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	d.adapter = adapterID
	d.info, _ = getGPUInfo(adapterID)
	logGPUInfo(d.info)

	deviceID, err := createDevice(adapterID, label)
	if err != nil {
		return nil, fmt.Errorf("wgpu: device creation failed: %w", err)
	}
	d.device = deviceID

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		return nil, fmt.Errorf("wgpu: queue retrieval failed: %w", err)
	}
	d.queue = queueID

	return d, nil
}

// Info returns the adapter this device is bound to.
func (d *Device) Info() *GPUInfo { return d.info }

// Close releases the device and adapter, in that order.
func (d *Device) Close() {
	if !d.device.IsZero() {
		if err := releaseDevice(d.device); err != nil {
			log.Printf("wgpu: error releasing device: %v", err)
		}
		d.device = core.DeviceID{}
	}
	if !d.adapter.IsZero() {
		if err := releaseAdapter(d.adapter); err != nil {
			log.Printf("wgpu: error releasing adapter: %v", err)
		}
		d.adapter = core.AdapterID{}
	}
}

func getGPUInfo(adapterID core.AdapterID) (*GPUInfo, error) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to get adapter info: %w", err)
	}
	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}, nil
}

func logGPUInfo(info *GPUInfo) {
	if info == nil {
		return
	}
	log.Printf("wgpu: GPU: %s", info.String())
	if info.Driver != "" {
		log.Printf("wgpu: Driver: %s", info.Driver)
	}
}

func createDevice(adapterID core.AdapterID, label string) (core.DeviceID, error) {
	desc := &types.DeviceDescriptor{
		Label:          label,
		RequiredLimits: types.DefaultLimits(),
	}
	deviceID, err := core.RequestDevice(adapterID, desc)
	if err != nil {
		return core.DeviceID{}, fmt.Errorf("failed to create device: %w", err)
	}
	return deviceID, nil
}

func getDeviceQueue(deviceID core.DeviceID) (core.QueueID, error) {
	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		return core.QueueID{}, fmt.Errorf("failed to get device queue: %w", err)
	}
	return queueID, nil
}

func releaseDevice(deviceID core.DeviceID) error {
	if deviceID.IsZero() {
		return nil
	}
	if err := core.DeviceDrop(deviceID); err != nil {
		return fmt.Errorf("failed to release device: %w", err)
	}
	return nil
}

func releaseAdapter(adapterID core.AdapterID) error {
	if adapterID.IsZero() {
		return nil
	}
	if err := core.AdapterDrop(adapterID); err != nil {
		return fmt.Errorf("failed to release adapter: %w", err)
	}
	return nil
}
