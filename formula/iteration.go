// Package formula implements the distance-estimator fractal formulas
// and the hybrid composer that sequences or blends them.
package formula

import (
	"math"

	"github.com/guidogerb/mb3d/vec3"
)

// Vec3 is re-exported here so callers building positions don't need a
// separate import of the vec3 package.
type Vec3 = vec3.Vec3

// IterationState is the evolving point carried through a formula's
// iteration loop. w is only mutated by 4D formulas (QuaternionJulia,
// AexionC); other formulas leave it at zero.
type IterationState struct {
	X, Y, Z, W float64
	C1, C2, C3 float64
	Dr         float64
	RSqr       float64
	OrbitTrap  float64
	Iteration  uint32
}

// NewIterationState builds a fresh state for position pos. If juliaC
// is non-nil it becomes the additive constant (Julia mode); otherwise
// pos itself is reused as the constant (Mandelbrot mode).
func NewIterationState(pos Vec3, juliaC *Vec3) IterationState {
	c := pos
	if juliaC != nil {
		c = *juliaC
	}
	return IterationState{
		X: pos.X, Y: pos.Y, Z: pos.Z, W: 0,
		C1: c.X, C2: c.Y, C3: c.Z,
		Dr:        1,
		OrbitTrap: math.MaxFloat64,
	}
}

// trapUpdate folds the running orbit-trap minimum over |x|,|y|,|z|.
func trapUpdate(s *IterationState, x, y, z float64) {
	t := math.Min(math.Abs(x), math.Min(math.Abs(y), math.Abs(z)))
	if t < s.OrbitTrap {
		s.OrbitTrap = t
	}
}

// FormulaResult is the outcome of a full DE evaluation.
type FormulaResult struct {
	DE         float64
	SmoothIt   float64
	OrbitTrap  float64
	Inside     bool
	Iterations uint32
}

// defaultResult is returned by formulas/hybrids with no work to do.
func defaultResult() FormulaResult {
	return FormulaResult{DE: math.MaxFloat64, OrbitTrap: math.MaxFloat64}
}

// Formula is implemented by every fractal variant. IterateOnce
// advances state by a single step and reports escape; ComputeDE runs
// a full iteration loop from a fresh state at pos.
type Formula interface {
	Name() string
	ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult
	IterateOnce(state *IterationState, bailout float64) bool
}

// canonicalDE implements the shared spherical-power DE formula:
// de = max(0, 0.5*r*ln(r)/dr), smooth_it = i+1-ln(ln(r_sqr))/ln(p).
func canonicalDE(i uint32, rSqr, dr, lnPower float64) (de, smooth float64) {
	r := math.Sqrt(rSqr)
	de = 0.5 * r * math.Log(r) / dr
	if de < 0 {
		de = 0
	}
	smooth = float64(i) + 1 - math.Log(math.Log(rSqr))/lnPower
	return de, smooth
}
