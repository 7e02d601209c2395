package raymarch

import (
	"testing"

	"github.com/guidogerb/mb3d/formula"
	"github.com/guidogerb/mb3d/vec3"
	"github.com/stretchr/testify/assert"
)

type singleFormula struct {
	f formula.Formula
	p RenderParams
}

func (s singleFormula) ComputeDE(pos vec3.Vec3, juliaC *vec3.Vec3) formula.FormulaResult {
	return s.f.ComputeDE(pos, s.p.MaxIterations, s.p.Bailout, juliaC)
}

func TestMarchRayHitsMandelbulb(t *testing.T) {
	p := DefaultRenderParams()
	de := singleFormula{f: formula.MandelbulbPower8(), p: p}

	r := MarchRay(de, vec3.New(0, 0, -2.5), vec3.New(0, 0, 1), nil, p)
	assert.True(t, r.Hit)
	assert.Greater(t, r.TotalDistance, 0.0)
	assert.InDelta(t, 1.0, vec3.Length(r.Normal), 1e-6)
}

func TestMarchRayMissesEmptySpace(t *testing.T) {
	p := DefaultRenderParams()
	de := singleFormula{f: formula.Empty{}, p: p}

	r := MarchRay(de, vec3.New(0, 0, -2.5), vec3.New(0, 0, 1), nil, p)
	assert.False(t, r.Hit)
}

func TestParamsFromBufferShortFallsBackToDefault(t *testing.T) {
	p := ParamsFromBuffer([]byte{1, 2, 3})
	assert.Equal(t, DefaultRenderParams(), p)
}

func TestParamsFromBufferEmptyFallsBackToDefault(t *testing.T) {
	p := ParamsFromBuffer(nil)
	assert.Equal(t, DefaultRenderParams(), p)
}
