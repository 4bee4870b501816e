//go:build !nogpu

// Package gpu registers the GPU-backed render target.
//
// Import this package to make the wgpu target available to the render
// registry. When no usable GPU is present (no Vulkan device), the wgpu
// factory reports unavailability and target selection falls back to the
// memory target.
//
// Usage:
//
//	import _ "github.com/gogpu/viewport/gpu" // enable the GPU target
package gpu

import (
	"github.com/gogpu/viewport/render"
	"github.com/gogpu/viewport/render/wgpu"
)

func init() {
	render.Register(render.TargetWGPU, wgpu.New)
}

// NewTargetWithProvider creates a wgpu target that shares the host's GPU
// device instead of opening its own. The provider must expose
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func NewTargetWithProvider(provider any) (render.Target, error) {
	return wgpu.NewWithProvider(provider)
}
