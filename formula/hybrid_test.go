package formula

import (
	"testing"

	"github.com/guidogerb/mb3d/vec3"
	"github.com/stretchr/testify/assert"
)

func TestHybridSingleSlotDelegates(t *testing.T) {
	h := &HybridFormula{
		Slots: []Slot{
			{Formula: MandelbulbPower8(), Iterations: 12, Active: true},
		},
		Mode:            Alternating,
		TotalIterations: 12,
		Bailout:         16,
	}
	direct := MandelbulbPower8().ComputeDE(vec3.New(10, 10, 10), 12, 16, nil)
	hybrid := h.ComputeDE(vec3.New(10, 10, 10), nil)
	assert.Equal(t, direct.DE, hybrid.DE)
}

func TestHybridAlternatingRunsBothSlots(t *testing.T) {
	h := &HybridFormula{
		Slots: []Slot{
			{Formula: NewAmazingBox(), Iterations: 2, Active: true},
			{Formula: MandelbulbPower2(), Iterations: 2, Active: true},
		},
		Mode:            Alternating,
		TotalIterations: 8,
		Bailout:         1000,
	}
	r := h.ComputeDE(vec3.New(0.5, 0.5, 0.5), nil)
	assert.GreaterOrEqual(t, r.DE, 0.0)

	// AmazingBox alone holds this point on a fixed orbit and never
	// escapes, so an escape here means the Mandelbulb slot also ran.
	boxOnly := NewAmazingBox().ComputeDE(vec3.New(0.5, 0.5, 0.5), 8, 1000, nil)
	assert.True(t, boxOnly.Inside)
	assert.False(t, r.Inside)
}

func TestHybridInterpolatedBlendsHalf(t *testing.T) {
	h := &HybridFormula{
		Slots: []Slot{
			{Formula: MandelbulbPower8(), Iterations: 12, Active: true},
			{Formula: MandelbulbPower2(), Iterations: 12, Active: true},
		},
		Mode:            Interpolated,
		TotalIterations: 12,
		Bailout:         16,
	}
	a := MandelbulbPower8().ComputeDE(vec3.New(1, 1, 1), 12, 16, nil)
	b := MandelbulbPower2().ComputeDE(vec3.New(1, 1, 1), 12, 16, nil)
	r := h.ComputeDE(vec3.New(1, 1, 1), nil)
	assert.InDelta(t, a.DE*0.5+b.DE*0.5, r.DE, 1e-9)
}

func TestHybridFourDSameAsAlternating(t *testing.T) {
	slots := []Slot{
		{Formula: MandelbulbPower8(), Iterations: 3, Active: true},
		{Formula: NewTricorn(), Iterations: 3, Active: true},
	}
	alt := &HybridFormula{Slots: slots, Mode: Alternating, TotalIterations: 9, Bailout: 16}
	fourD := &HybridFormula{Slots: slots, Mode: FourD, TotalIterations: 9, Bailout: 16}

	pos := vec3.New(0.6, 0.3, 0.1)
	assert.Equal(t, alt.ComputeDE(pos, nil), fourD.ComputeDE(pos, nil))
}

func TestHybridNoActiveSlots(t *testing.T) {
	h := &HybridFormula{Slots: []Slot{{Formula: MandelbulbPower8(), Active: false}}}
	r := h.ComputeDE(vec3.New(0, 0, 0), nil)
	assert.Equal(t, defaultResult(), r)
}

func TestModeFromName(t *testing.T) {
	assert.Equal(t, Interpolated, ModeFromName("interpolated"))
	assert.Equal(t, FourD, ModeFromName("4d"))
	assert.Equal(t, Alternating, ModeFromName("alternating"))
	assert.Equal(t, Alternating, ModeFromName("unknown"))
}
