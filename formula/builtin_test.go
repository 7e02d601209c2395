package formula

import (
	"testing"

	"github.com/guidogerb/mb3d/vec3"
	"github.com/stretchr/testify/assert"
)

func TestMandelbulbOriginInside(t *testing.T) {
	m := MandelbulbPower8()
	r := m.ComputeDE(vec3.New(0, 0, 0), 12, 16, nil)
	assert.True(t, r.Inside)
}

func TestMandelbulbFarPointOutside(t *testing.T) {
	m := MandelbulbPower8()
	r := m.ComputeDE(vec3.New(10, 10, 10), 12, 16, nil)
	assert.False(t, r.Inside)
	assert.Greater(t, r.DE, 0.0)
}

func TestMandelbulbNearSurface(t *testing.T) {
	m := MandelbulbPower8()
	r := m.ComputeDE(vec3.New(1.0, 0, 0), 12, 16, nil)
	assert.False(t, r.Inside)
}

func TestAmazingBoxOrigin(t *testing.T) {
	a := NewAmazingBox()
	r := a.ComputeDE(vec3.New(0, 0, 0), 20, 1000, nil)
	assert.GreaterOrEqual(t, r.DE, 0.0)
}

func TestQuaternionJulia(t *testing.T) {
	q := NewQuaternionJulia()
	c := vec3.New(-0.2, 0.6, 0.2)
	r := q.ComputeDE(vec3.New(0, 0, 0), 12, 16, &c)
	assert.GreaterOrEqual(t, r.DE, 0.0)
}

func TestFormulaDispatch(t *testing.T) {
	cases := map[ID]string{
		IDMandelbulbPower2: "Mandelbulb",
		IDMandelbulbPower8: "Mandelbulb",
		IDAmazingBox:       "AmazingBox",
		IDAmazingSurf:      "AmazingSurf",
		IDBulbox:           "Bulbox",
		IDQuaternionJulia:  "QuaternionJulia",
		IDTricorn:          "Tricorn",
		IDFoldingIntPow:    "FoldingIntPow",
		IDRealPower:        "Mandelbulb",
		IDAexionC:          "AexionC",
	}
	for id, name := range cases {
		f := FromID(id, 2)
		assert.Equal(t, name, f.Name())
	}
	assert.Equal(t, "Empty", FromID(IDNone, 0).Name())
	assert.Equal(t, "Empty", FromID(ID(999), 0).Name())
}

func TestEmptyAlwaysEscaped(t *testing.T) {
	e := Empty{}
	r := e.ComputeDE(vec3.New(0, 0, 0), 12, 16, nil)
	assert.False(t, r.Inside)
	assert.Equal(t, defaultResult(), r)
}
