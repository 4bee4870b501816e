//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// deviceProvider is the structural interface a host exposes to share its
// GPU device. HalDevice must return hal.Device and HalQueue hal.Queue.
type deviceProvider interface {
	HalDevice() any
	HalQueue() any
}

// initGPU creates a standalone Vulkan device. This is the path taken when
// no external device is provided to NewWithProvider.
func (t *Target) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}
	t.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("wgpu: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("wgpu: open device: %w", err)
	}
	t.device = openDev.Device
	t.queue = openDev.Queue
	t.ownsDevice = true

	slogger().Info("wgpu: GPU target initialized (standalone)", "adapter", selected.Info.Name)
	return nil
}

// adoptDevice switches the target to a shared GPU device from a host
// provider instead of creating its own.
func (t *Target) adoptDevice(provider any) error {
	hp, ok := provider.(deviceProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HalDevice/HalQueue")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	t.device = device
	t.queue = queue
	t.ownsDevice = false

	slogger().Debug("wgpu: using shared GPU device")
	return nil
}
