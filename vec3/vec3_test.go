package vec3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	v := Normalize(New(3, 0, 4))
	assert.InDelta(t, 0.6, v.X, 1e-10)
	assert.InDelta(t, 0.0, v.Y, 1e-10)
	assert.InDelta(t, 0.8, v.Z, 1e-10)
}

func TestNormalizeDegenerate(t *testing.T) {
	v := New(1e-40, 0, 0)
	assert.Equal(t, v, Normalize(v))
}

func TestCross(t *testing.T) {
	c := Cross(New(1, 0, 0), New(0, 1, 0))
	assert.InDelta(t, 0.0, c.X, 1e-10)
	assert.InDelta(t, 0.0, c.Y, 1e-10)
	assert.InDelta(t, 1.0, c.Z, 1e-10)
}

func TestIdentityMatrix3(t *testing.T) {
	m := IdentityMatrix3()
	v := m.MulVec(New(1, 2, 3))
	assert.InDelta(t, 1.0, v.X, 1e-10)
	assert.InDelta(t, 2.0, v.Y, 1e-10)
	assert.InDelta(t, 3.0, v.Z, 1e-10)
}

func TestClipI15(t *testing.T) {
	assert.EqualValues(t, 32767, ClipI15(1.0))
	assert.EqualValues(t, -32767, ClipI15(-1.0))
	assert.EqualValues(t, 0, ClipI15(0.0))
}

func TestClipU16RoundTrip(t *testing.T) {
	for _, d := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		packed := ClipU16(d)
		back := float64(packed) / 65535.0
		assert.InDelta(t, d, back, 1.0/65535.0)
	}
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-10)
	assert.InDelta(t, 0.0, Lerp(0, 10, 0.0), 1e-10)
	assert.InDelta(t, 10.0, Lerp(0, 10, 1.0), 1e-10)
}
