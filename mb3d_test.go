package mb3d

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/guidogerb/mb3d/formula"
	"github.com/stretchr/testify/assert"
)

func f64Buf(vals ...float64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
	}
	return buf
}

func TestBuildHybridFormulaEmptyDefaultsToMandelbulb8(t *testing.T) {
	h := BuildHybridFormula(nil, 12, 16)
	assert.Len(t, h.Slots, 1)
	assert.Equal(t, "Mandelbulb", h.Slots[0].Formula.Name())
}

func TestBuildHybridFormulaDecodesSlots(t *testing.T) {
	data := make([]byte, 4*(1+2*2+1))
	binary.LittleEndian.PutUint32(data[0:4], 2)
	binary.LittleEndian.PutUint32(data[4:8], uint32(formula.IDAmazingBox))
	binary.LittleEndian.PutUint32(data[8:12], 4)
	binary.LittleEndian.PutUint32(data[12:16], uint32(formula.IDMandelbulbPower2))
	binary.LittleEndian.PutUint32(data[16:20], 4)
	binary.LittleEndian.PutUint32(data[20:24], uint32(formula.Interpolated))

	h := BuildHybridFormula(data, 8, 16)
	assert.Len(t, h.Slots, 2)
	assert.Equal(t, "AmazingBox", h.Slots[0].Formula.Name())
	assert.Equal(t, "Mandelbulb", h.Slots[1].Formula.Name())
	assert.Equal(t, formula.Interpolated, h.Mode)
}

func TestBuildHybridFormulaCapsAtSixSlots(t *testing.T) {
	n := 10
	data := make([]byte, 4*(1+2*n))
	binary.LittleEndian.PutUint32(data[0:4], uint32(n))
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(data[4+i*8:8+i*8], uint32(formula.IDMandelbulbPower2))
		binary.LittleEndian.PutUint32(data[8+i*8:12+i*8], 4)
	}
	h := BuildHybridFormula(data, 8, 16)
	assert.LessOrEqual(t, len(h.Slots), 6)
}

func renderParamsBuf(width, height float64) []byte {
	vals := []float64{
		width, height, // width, height
		0, 0, -2.5, // camera
		0, 0, 1, // ray base
		1, 0, 0, // ray dx
		0, 1, 0, // ray dy
		0.0005, 0.8, 50, 12, 16, 0, // de_stop..fov_factor
	}
	for len(vals) < 29 {
		vals = append(vals, 0)
	}
	vals = append(vals, 3) // bin_search_steps
	return f64Buf(vals...)
}

func TestRenderScanlinesProducesPackedBuffer(t *testing.T) {
	out := RenderScanlines(renderParamsBuf(4, 4), nil, nil)
	assert.Len(t, out, 4*4*18)
}

func TestRenderQuickProducesRGBA(t *testing.T) {
	out := RenderQuick(renderParamsBuf(2, 2), nil, nil, nil)
	assert.Len(t, out, 2*2*4)
	for i := 3; i < len(out); i += 4 {
		assert.Equal(t, byte(255), out[i])
	}
}
