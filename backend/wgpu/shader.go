package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V word stream. Every
// shader this backend needs -- the midpoint-fan fill vertex/fragment pair,
// the interior-triangulation pair, the gradient/tessellation-texture
// compute pass -- goes through this one entry point, the way the teacher's
// CompileShaderToSPIRV centralizes shader compilation for all of its GPU
// rasterizers.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: shader compilation failed: %w", err)
	}

	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// CreateShaderModule creates a HAL shader module from SPIR-V code compiled
// by CompileShaderToSPIRV.
func CreateShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}

// pipelineResources tracks the HAL objects one compiled draw pipeline
// owns, so Adapter.Close (once wired past its current stub) can release
// them in dependency order.
//
// TODO: populate this from real pipeline construction once Adapter.Flush
// submits through an actual command encoder instead of the host-memory
// stub; for now nothing constructs a non-zero pipelineResources.
type pipelineResources struct {
	device         hal.Device
	shaderModule   hal.ShaderModule
	pipelineLayout hal.PipelineLayout
	bindLayouts    []hal.BindGroupLayout
}

func (r *pipelineResources) release() {
	if r.device == nil {
		return
	}
	if r.pipelineLayout != nil {
		r.device.DestroyPipelineLayout(r.pipelineLayout)
	}
	for _, l := range r.bindLayouts {
		if l != nil {
			r.device.DestroyBindGroupLayout(l)
		}
	}
	if r.shaderModule != nil {
		r.device.DestroyShaderModule(r.shaderModule)
	}
}
