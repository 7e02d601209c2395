// Package mb3d is the external boundary of the renderer: it decodes
// the wire-format buffers a host hands in (render_params,
// formula_ids, paint_params), drives the scanline dispatcher and
// shading pass, and hands back packed bytes. Every function here is
// total: short or empty buffers fall back to documented defaults
// rather than returning an error, since a WASM compute kernel has no
// good place to surface one mid-frame.
package mb3d

import (
	"encoding/binary"

	"github.com/guidogerb/mb3d/formula"
	"github.com/guidogerb/mb3d/gbuffer"
	"github.com/guidogerb/mb3d/raymarch"
	"github.com/guidogerb/mb3d/shade"
	"github.com/guidogerb/mb3d/vec3"
)

// maxHybridSlots caps how many formula slots BuildHybridFormula
// will build, matching the host's fixed-size slot array.
const maxHybridSlots = 6

// BuildHybridFormula decodes a formula_ids buffer into a
// HybridFormula. The layout is a sequence of uint32s:
// [num_slots, (id, iters) * num_slots, mode]. An empty buffer builds
// a single MandelbulbPower8 slot, the documented default formula.
func BuildHybridFormula(data []byte, totalIterations uint32, bailout float64) *formula.HybridFormula {
	if len(data) < 4 {
		return &formula.HybridFormula{
			Slots:           []formula.Slot{{Formula: formula.MandelbulbPower8(), Iterations: totalIterations, Active: true}},
			Mode:            formula.Alternating,
			TotalIterations: totalIterations,
			Bailout:         bailout,
		}
	}

	u := make([]uint32, len(data)/4)
	for i := range u {
		u[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}

	numSlots := int(u[0])
	if numSlots > maxHybridSlots {
		numSlots = maxHybridSlots
	}

	slots := make([]formula.Slot, 0, numSlots)
	idx := 1
	for i := 0; i < numSlots; i++ {
		if idx+2 > len(u) {
			break
		}
		id := formula.ID(u[idx])
		iters := u[idx+1]
		idx += 2
		slots = append(slots, formula.Slot{Formula: formula.FromID(id, iters), Iterations: iters, Active: true})
	}

	mode := formula.Alternating
	if idx < len(u) {
		mode = formula.Mode(u[idx])
	}

	if len(slots) == 0 {
		slots = []formula.Slot{{Formula: formula.MandelbulbPower8(), Iterations: totalIterations, Active: true}}
	}

	return &formula.HybridFormula{
		Slots:           slots,
		Mode:            mode,
		TotalIterations: totalIterations,
		Bailout:         bailout,
	}
}

// hybridDE adapts a HybridFormula to raymarch.DE, the single-method
// seam the marcher needs.
type hybridDE struct {
	h *formula.HybridFormula
}

func (d hybridDE) ComputeDE(pos vec3.Vec3, juliaC *vec3.Vec3) formula.FormulaResult {
	return d.h.ComputeDE(pos, juliaC)
}

// RenderScanlines sphere-traces paramsBuf/formulaBuf into a packed
// G-buffer and returns it. juliaC overrides the render_params Julia
// constant when non-nil; pass nil to use whatever paramsBuf decodes
// (or the Mandelbrot-mode default of no constant at all).
func RenderScanlines(paramsBuf, formulaBuf []byte, juliaC *vec3.Vec3) []byte {
	p := raymarch.ParamsFromBuffer(paramsBuf)
	h := BuildHybridFormula(formulaBuf, p.MaxIterations, p.Bailout)

	if juliaC == nil && p.JuliaMode {
		juliaC = &p.JuliaC
	}

	out := make([]byte, p.Width*p.Height*gbuffer.BytesPerPixel)
	raymarch.RenderScanlines(hybridDE{h}, p, juliaC, out, 0)
	return out
}

// PaintGBuffer shades a packed G-buffer into RGBA8 pixels using
// paintBuf to configure lighting; width/height must match the buffer
// that produced gbuf.
func PaintGBuffer(gbuf []byte, width, height int, paintBuf []byte) []byte {
	cfg := shade.PaintConfigFromBuffer(paintBuf)
	return shade.PaintGBuffer(gbuf, width, height, cfg)
}

// RenderQuick runs RenderScanlines immediately followed by
// PaintGBuffer, the single-call convenience entry point a preview
// host uses instead of driving both passes itself.
func RenderQuick(paramsBuf, formulaBuf, paintBuf []byte, juliaC *vec3.Vec3) []byte {
	p := raymarch.ParamsFromBuffer(paramsBuf)
	gbuf := RenderScanlines(paramsBuf, formulaBuf, juliaC)
	return PaintGBuffer(gbuf, p.Width, p.Height, paintBuf)
}
