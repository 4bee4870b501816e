//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// maskShaderSource is the WGSL source of the planar classifier mask pass:
// a fullscreen triangle writing classifier coverage into an R8 mask
// texture that later passes sample to restrict classified geometry.
const maskShaderSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    var out: VertexOutput;
    let x = f32(i32(index) / 2) * 4.0 - 1.0;
    let y = f32(i32(index) % 2) * 4.0 - 1.0;
    out.position = vec4<f32>(x, y, 0.0, 1.0);
    out.uv = vec2<f32>((x + 1.0) * 0.5, (y + 1.0) * 0.5);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) f32 {
    return 1.0;
}
`

// compileWGSL compiles WGSL to SPIR-V words for hal shader modules.
// SPIR-V is little-endian 32-bit words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile shader: %w", err)
	}
	return spirvWords(spirvBytes), nil
}

// spirvWords packs little-endian SPIR-V bytes into 32-bit words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}

// createMaskShader compiles and uploads the classifier mask shader.
func createMaskShader(device hal.Device) (hal.ShaderModule, error) {
	words, err := compileWGSL(maskShaderSource)
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "classifier_mask",
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create mask shader module: %w", err)
	}
	return module, nil
}
