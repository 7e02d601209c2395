// Package raymarch implements sphere tracing against a formula's
// distance estimator and the interleaved-row scanline dispatcher that
// runs it across a pool of workers.
package raymarch

import (
	"encoding/binary"
	"math"

	"github.com/guidogerb/mb3d/vec3"
)

// RenderParams controls one render_scanlines invocation: image size,
// camera placement, the ray-basis vectors used to build per-pixel ray
// directions, the marcher's step-size tuning, the Julia-mode constant,
// and the optional cutting plane.
type RenderParams struct {
	Width, Height int
	Camera        vec3.Vec3

	// ViewBase is the ray direction at the image center; ViewDX/ViewDY
	// are the per-pixel horizontal/vertical basis vectors a pixel's
	// normalized screen coordinate is scaled by and added to ViewBase.
	ViewBase vec3.Vec3
	ViewDX   vec3.Vec3
	ViewDY   vec3.Vec3

	DEStop         float64
	StepWidth      float64
	MaxRayLength   float64
	MaxIterations  uint32
	Bailout        float64
	FOVFactor      float64

	JuliaMode bool
	JuliaC    vec3.Vec3

	CutPlaneEnabled bool
	CutPlaneNormal  vec3.Vec3
	CutPlaneD       float64

	BinSearchSteps int
}

// DefaultRenderParams mirrors the engine's built-in defaults.
func DefaultRenderParams() RenderParams {
	return RenderParams{
		Width: 800, Height: 600,
		Camera:         vec3.New(0, 0, -2.5),
		ViewBase:       vec3.New(0, 0, 1),
		ViewDX:         vec3.New(1, 0, 0),
		ViewDY:         vec3.New(0, 1, 0),
		DEStop:         0.0005,
		StepWidth:      0.8,
		MaxRayLength:   50,
		MaxIterations:  12,
		Bailout:        16,
		FOVFactor:      0,
		CutPlaneNormal: vec3.New(0, 0, 1),
		BinSearchSteps: 3,
	}
}

// paramsFloatCount is the render_params layout's fixed width: 30
// float64s. Shorter buffers fall back to DefaultRenderParams entirely
// rather than partially decoding.
const paramsFloatCount = 30

// ParamsFromBuffer decodes a 30-float64 render_params buffer:
//
//	0-1   width, height
//	2-4   camera position
//	5-7   ray base direction
//	8-10  ray dx basis
//	11-13 ray dy basis
//	14    de_stop
//	15    step_width
//	16    max_ray_length
//	17    max_iterations
//	18    bailout
//	19    fov_factor
//	20    julia mode flag
//	21-23 julia constant
//	24    cutting-plane enable flag
//	25-27 cutting-plane normal
//	28    cutting-plane d
//	29    bin_search_steps
//
// Buffers shorter than the expected layout fall back to
// DefaultRenderParams rather than erroring, matching the host's
// tolerant wire contract.
func ParamsFromBuffer(data []byte) RenderParams {
	p := DefaultRenderParams()
	if len(data) < paramsFloatCount*8 {
		return p
	}

	f := make([]float64, len(data)/8)
	for i := range f {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		f[i] = math.Float64frombits(bits)
	}

	p.Width = int(f[0])
	p.Height = int(f[1])
	p.Camera = vec3.New(f[2], f[3], f[4])
	p.ViewBase = vec3.New(f[5], f[6], f[7])
	p.ViewDX = vec3.New(f[8], f[9], f[10])
	p.ViewDY = vec3.New(f[11], f[12], f[13])
	p.DEStop = f[14]
	p.StepWidth = f[15]
	p.MaxRayLength = f[16]
	p.MaxIterations = uint32(f[17])
	p.Bailout = f[18]
	p.FOVFactor = f[19]
	p.JuliaMode = f[20] != 0
	p.JuliaC = vec3.New(f[21], f[22], f[23])
	p.CutPlaneEnabled = f[24] != 0
	p.CutPlaneNormal = vec3.New(f[25], f[26], f[27])
	p.CutPlaneD = f[28]
	p.BinSearchSteps = int(f[29])
	return p
}
