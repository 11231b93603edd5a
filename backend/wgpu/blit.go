package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/scenic"
)

// blitWGSL is a fullscreen textured-triangle shader used to present the
// rasterized frame onto the window surface.
const blitWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var out: VertexOutput;
    let x = f32(i32(idx) / 2) * 4.0 - 1.0;
    let y = f32(i32(idx) & 1) * 4.0 - 1.0;
    out.position = vec4<f32>(x, -y, 0.0, 1.0);
    out.uv = vec2<f32>((x + 1.0) * 0.5, (y + 1.0) * 0.5);
    return out;
}

@group(0) @binding(0) var frame: texture_2d<f32>;
@group(0) @binding(1) var frame_sampler: sampler;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(frame, frame_sampler, in.uv);
}
`

// compileShaderToSPIRV compiles WGSL source into SPIR-V words.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// blitShader holds the compiled presentation shader for a device.
type blitShader struct {
	device hal.Device
	module hal.ShaderModule
}

// halProvider is implemented by device providers that expose the
// underlying HAL handles.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// newBlitShader compiles the blit shader against the host device, when
// the provider exposes HAL access. Providers without HAL access present
// through gpucontext textures alone, so a nil shader is not an error.
func newBlitShader(provider gpucontext.DeviceProvider) (*blitShader, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil
	}

	code, err := compileShaderToSPIRV(blitWGSL)
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "scenic blit",
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blit shader module: %w", err)
	}

	scenic.Logger().Debug("blit shader compiled", "words", len(code))
	return &blitShader{device: device, module: module}, nil
}

// destroy releases the shader module.
func (b *blitShader) destroy() {
	if b == nil || b.module == nil {
		return
	}
	b.device.DestroyShaderModule(b.module)
	b.module = nil
	b.device = nil
}
