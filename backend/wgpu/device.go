package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/scenic"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType types.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend types.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// getGPUInfo retrieves information about the GPU adapter.
func getGPUInfo(adapterID core.AdapterID) (*GPUInfo, error) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get adapter info: %w", err)
	}

	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}, nil
}

// logGPUInfo logs information about the selected GPU.
func logGPUInfo(adapterID core.AdapterID) {
	info, err := getGPUInfo(adapterID)
	if err != nil {
		scenic.Logger().Warn("failed to get GPU info", "error", err)
		return
	}
	scenic.Logger().Info("GPU adapter selected",
		"gpu", info.String(), "driver", info.Driver)
}

// selfHostedDevice owns a GPU device created by this backend when no
// host application shares one.
type selfHostedDevice struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
	info     *GPUInfo
}

// newSelfHostedDevice creates an instance, requests a high-performance
// adapter, and sets up a device and queue.
func newSelfHostedDevice(label string) (*selfHostedDevice, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: no suitable GPU adapter: %w", err)
	}
	logGPUInfo(adapterID)

	deviceID, err := core.RequestDevice(adapterID, &types.DeviceDescriptor{
		Label:            label,
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	})
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("wgpu: device creation failed: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("wgpu: queue retrieval failed: %w", err)
	}

	d := &selfHostedDevice{
		instance: instance,
		adapter:  adapterID,
		device:   deviceID,
		queue:    queueID,
	}
	d.info, _ = getGPUInfo(adapterID)
	return d, nil
}

// release drops the device and adapter in reverse creation order.
func (d *selfHostedDevice) release() {
	if !d.device.IsZero() {
		if err := core.DeviceDrop(d.device); err != nil {
			scenic.Logger().Warn("error releasing device", "error", err)
		}
		d.device = core.DeviceID{}
	}
	if !d.adapter.IsZero() {
		if err := core.AdapterDrop(d.adapter); err != nil {
			scenic.Logger().Warn("error releasing adapter", "error", err)
		}
		d.adapter = core.AdapterID{}
	}
	d.instance = nil
	d.queue = core.QueueID{}
	d.info = nil
}
