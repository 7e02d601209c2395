// Package wire builds the flat render_params/formula_ids buffers the
// mb3d package expects, so the CLI only has to deal with ordinary
// flag values.
package wire

import (
	"encoding/binary"
	"math"
)

// RenderParams mirrors raymarch.RenderParams' flat fields for the
// purpose of flag parsing; it is encoded into the same 30-float64
// layout raymarch.ParamsFromBuffer decodes.
type RenderParams struct {
	Width, Height                             int
	CameraX, CameraY, CameraZ                 float64
	DEStop, StepWidth, MaxRayLength           float64
	MaxIterations                             int
	Bailout, FOVFactor                        float64
	BinSearchSteps                            int
}

// EncodeRenderParams packs p into a render_params buffer.
func EncodeRenderParams(p RenderParams) []byte {
	vals := make([]float64, 30)
	vals[0] = float64(p.Width)
	vals[1] = float64(p.Height)
	vals[2], vals[3], vals[4] = p.CameraX, p.CameraY, p.CameraZ
	// ray basis: looking straight down +z with no Julia constant or
	// cutting plane, matching raymarch.DefaultRenderParams.
	vals[5], vals[6], vals[7] = 0, 0, 1
	vals[8], vals[9], vals[10] = 1, 0, 0
	vals[11], vals[12], vals[13] = 0, 1, 0
	vals[14] = p.DEStop
	vals[15] = p.StepWidth
	vals[16] = p.MaxRayLength
	vals[17] = float64(p.MaxIterations)
	vals[18] = p.Bailout
	vals[19] = p.FOVFactor
	// vals[20..28] left zero: Julia mode off, cutting plane disabled.
	vals[29] = float64(p.BinSearchSteps)

	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
	}
	return buf
}

// EncodeFormulaIDs packs a single formula slot into a formula_ids
// buffer: [num_slots=1, id, iters, mode=Alternating].
func EncodeFormulaIDs(id, iters uint32) []byte {
	buf := make([]byte, 4*4)
	binary.LittleEndian.PutUint32(buf[0:4], 1)
	binary.LittleEndian.PutUint32(buf[4:8], id)
	binary.LittleEndian.PutUint32(buf[8:12], iters)
	binary.LittleEndian.PutUint32(buf[12:16], 0)
	return buf
}
