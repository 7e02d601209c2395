package shade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleClampsOutOfRange(t *testing.T) {
	g := DefaultGradient()
	low := g.Sample(-1)
	exact := g.Sample(0)
	assert.Equal(t, exact, low)

	high := g.Sample(2)
	exactHigh := g.Sample(1)
	assert.Equal(t, exactHigh, high)
}

func TestSampleMidpointIsWhite(t *testing.T) {
	g := DefaultGradient()
	c := g.Sample(0.5)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 1.0, c.G, 1e-6)
	assert.InDelta(t, 1.0, c.B, 1e-6)
}

func TestSampleSingleStop(t *testing.T) {
	g := FromStops([]ColorStop{{Position: 0.5, Color: colorRGB(1, 0, 0)}})
	c := g.Sample(0.9)
	assert.Equal(t, 1.0, c.R)
}

func TestPresetsContainDefault(t *testing.T) {
	assert.Contains(t, Presets, "blue-orange")
	assert.Contains(t, Presets, "earth")
	assert.Contains(t, Presets, "mono")
}
