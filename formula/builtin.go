package formula

import "math"

// boxFold reflects v back into [-limit, limit] by mirroring across the
// nearer boundary, the shared first stage of the Mandelbox family.
func boxFold(v, limit float64) float64 {
	if v > limit {
		return 2*limit - v
	}
	if v < -limit {
		return -2*limit - v
	}
	return v
}

// sphereFoldFactor returns the radial scaling applied by a Mandelbox
// sphere fold: points inside minR2 are inverted out to fixedR2/minR2,
// points inside fixedR2 are inverted onto its boundary, and points
// outside are left alone.
func sphereFoldFactor(rSqr, minR2, fixedR2 float64) float64 {
	switch {
	case rSqr < minR2:
		return fixedR2 / minR2
	case rSqr < fixedR2:
		return fixedR2 / rSqr
	default:
		return 1
	}
}

// Empty always escapes and contributes no geometry; it is the formula
// placeholder used when a hybrid slot is inactive.
type Empty struct{}

func (Empty) Name() string { return "Empty" }

func (Empty) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	return defaultResult()
}

func (Empty) IterateOnce(state *IterationState, bailout float64) bool { return true }

// Mandelbulb is the classic spherical-power iteration
// z -> z^power + c carried out in spherical coordinates, for integer
// or real power.
type Mandelbulb struct {
	Power float64
}

// MandelbulbPower2 and MandelbulbPower8 are the two power presets the
// host exposes directly; RealPower below exposes an arbitrary power.
func MandelbulbPower2() *Mandelbulb { return &Mandelbulb{Power: 2} }
func MandelbulbPower8() *Mandelbulb { return &Mandelbulb{Power: 8} }

func (m *Mandelbulb) Name() string { return "Mandelbulb" }

func (m *Mandelbulb) IterateOnce(s *IterationState, bailout float64) bool {
	rSqr := s.X*s.X + s.Y*s.Y + s.Z*s.Z
	s.RSqr = rSqr
	if rSqr > bailout {
		return true
	}
	r := math.Sqrt(rSqr)
	if r < 1e-30 {
		r = 1e-30
	}
	theta := math.Acos(s.Z / r)
	phi := math.Atan2(s.Y, s.X)

	s.Dr = math.Pow(r, m.Power-1)*m.Power*s.Dr + 1

	zr := math.Pow(r, m.Power)
	theta *= m.Power
	phi *= m.Power

	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	s.X = zr*st*cp + s.C1
	s.Y = zr*st*sp + s.C2
	s.Z = zr*ct + s.C3
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z
	trapUpdate(s, s.X, s.Y, s.Z)
	return false
}

func (m *Mandelbulb) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	lnPower := math.Log(m.Power)
	for i := uint32(0); i < maxIter; i++ {
		if m.IterateOnce(&s, bailout) {
			de, smooth := canonicalDE(i, s.RSqr, s.Dr, lnPower)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	return FormulaResult{DE: 0, SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// Tricorn is the Mandelbulb iteration with the azimuth angle taken
// from the conjugate, producing the characteristic tri-lobed fold.
type Tricorn struct {
	Power float64
}

func NewTricorn() *Tricorn { return &Tricorn{Power: 2} }

func (t *Tricorn) Name() string { return "Tricorn" }

func (t *Tricorn) IterateOnce(s *IterationState, bailout float64) bool {
	rSqr := s.X*s.X + s.Y*s.Y + s.Z*s.Z
	s.RSqr = rSqr
	if rSqr > bailout {
		return true
	}
	r := math.Sqrt(rSqr)
	if r < 1e-30 {
		r = 1e-30
	}
	theta := math.Acos(s.Z / r)
	phi := math.Atan2(-s.Y, s.X)

	s.Dr = math.Pow(r, t.Power-1)*t.Power*s.Dr + 1

	zr := math.Pow(r, t.Power)
	theta *= t.Power
	phi *= t.Power

	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	s.X = zr*st*cp + s.C1
	s.Y = zr*st*sp + s.C2
	s.Z = zr*ct + s.C3
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z
	trapUpdate(s, s.X, s.Y, s.Z)
	return false
}

func (t *Tricorn) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	lnPower := math.Log(t.Power)
	for i := uint32(0); i < maxIter; i++ {
		if t.IterateOnce(&s, bailout) {
			de, smooth := canonicalDE(i, s.RSqr, s.Dr, lnPower)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	return FormulaResult{DE: 0, SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// RealPower is Mandelbulb parameterized by an arbitrary, possibly
// non-integer power; the host constructs it with power 8 by default.
func RealPower(power float64) *Mandelbulb { return &Mandelbulb{Power: power} }

// AmazingBox is the Mandelbox fold: a box fold on each axis followed
// by a sphere fold and a uniform scale-and-translate.
type AmazingBox struct {
	Scale     float64
	FoldLimit float64
	MinRSqr   float64
	FixedRSqr float64
}

func NewAmazingBox() *AmazingBox {
	return &AmazingBox{Scale: 2.0, FoldLimit: 1.0, MinRSqr: 0.25, FixedRSqr: 1.0}
}

func (a *AmazingBox) Name() string { return "AmazingBox" }

func (a *AmazingBox) IterateOnce(s *IterationState, bailout float64) bool {
	x := boxFold(s.X, a.FoldLimit)
	y := boxFold(s.Y, a.FoldLimit)
	z := boxFold(s.Z, a.FoldLimit)

	rSqr := x*x + y*y + z*z
	factor := sphereFoldFactor(rSqr, a.MinRSqr, a.FixedRSqr)
	x *= factor
	y *= factor
	z *= factor
	s.Dr = s.Dr*factor*math.Abs(a.Scale) + 1

	s.X = a.Scale*x + s.C1
	s.Y = a.Scale*y + s.C2
	s.Z = a.Scale*z + s.C3
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z
	trapUpdate(s, s.X, s.Y, s.Z)
	return s.RSqr > bailout
}

func (a *AmazingBox) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	lnScale := math.Log(math.Abs(a.Scale))
	for i := uint32(0); i < maxIter; i++ {
		if a.IterateOnce(&s, bailout) {
			r := math.Sqrt(s.RSqr)
			de := r / math.Abs(s.Dr)
			smooth := float64(i) + 1 - (math.Log(bailout)-math.Log(s.RSqr))/(2*lnScale)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	r := math.Sqrt(s.RSqr)
	return FormulaResult{DE: r / math.Abs(s.Dr), SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// AmazingSurf folds only the X and Y axes by subtracting the fold
// limit from their absolute value (no reflection, unlike AmazingBox's
// box fold) before applying the same sphere fold and scale step,
// producing a surface-like rather than solid fold.
type AmazingSurf struct {
	Scale     float64
	FoldLimit float64
	MinRSqr   float64
	FixedRSqr float64
}

func NewAmazingSurf() *AmazingSurf {
	return &AmazingSurf{Scale: 1.5, FoldLimit: 1.0, MinRSqr: 0.25, FixedRSqr: 1.0}
}

func (a *AmazingSurf) Name() string { return "AmazingSurf" }

func (a *AmazingSurf) IterateOnce(s *IterationState, bailout float64) bool {
	x := math.Abs(s.X) - a.FoldLimit
	y := math.Abs(s.Y) - a.FoldLimit
	z := s.Z

	rSqr := x*x + y*y + z*z
	factor := sphereFoldFactor(rSqr, a.MinRSqr, a.FixedRSqr)
	x *= factor
	y *= factor
	z *= factor
	s.Dr = s.Dr*factor*math.Abs(a.Scale) + 1

	s.X = a.Scale*x + s.C1
	s.Y = a.Scale*y + s.C2
	s.Z = a.Scale*z + s.C3
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z
	trapUpdate(s, s.X, s.Y, s.Z)
	return s.RSqr > bailout
}

func (a *AmazingSurf) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	lnScale := math.Log(math.Abs(a.Scale))
	for i := uint32(0); i < maxIter; i++ {
		if a.IterateOnce(&s, bailout) {
			r := math.Sqrt(s.RSqr)
			de := r / math.Abs(s.Dr)
			smooth := float64(i) + 1 - (math.Log(bailout)-math.Log(s.RSqr))/(2*lnScale)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	r := math.Sqrt(s.RSqr)
	return FormulaResult{DE: r / math.Abs(s.Dr), SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// Bulbox applies one Mandelbox-style box fold ahead of a
// MandelbulbPower2 step, a cross-breed formula from the same family.
type Bulbox struct {
	FoldLimit float64
	bulb      Mandelbulb
}

func NewBulbox() *Bulbox {
	return &Bulbox{FoldLimit: 1.0, bulb: Mandelbulb{Power: 2}}
}

func (b *Bulbox) Name() string { return "Bulbox" }

func (b *Bulbox) IterateOnce(s *IterationState, bailout float64) bool {
	s.X = boxFold(s.X, b.FoldLimit)
	s.Y = boxFold(s.Y, b.FoldLimit)
	s.Z = boxFold(s.Z, b.FoldLimit)
	return b.bulb.IterateOnce(s, bailout)
}

func (b *Bulbox) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	lnPower := math.Log(b.bulb.Power)
	for i := uint32(0); i < maxIter; i++ {
		if b.IterateOnce(&s, bailout) {
			de, smooth := canonicalDE(i, s.RSqr, s.Dr, lnPower)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	return FormulaResult{DE: 0, SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// FoldingIntPow is a box fold followed directly by a Mandelbulb-like
// power iteration, with no intervening sphere fold, instead of the
// implicit power 2 of Bulbox.
type FoldingIntPow struct {
	Power     int
	FoldLimit float64
}

func NewFoldingIntPow(power int) *FoldingIntPow {
	if power <= 0 {
		power = 2
	}
	return &FoldingIntPow{Power: power, FoldLimit: 1.0}
}

func (f *FoldingIntPow) Name() string { return "FoldingIntPow" }

func (f *FoldingIntPow) IterateOnce(s *IterationState, bailout float64) bool {
	x := boxFold(s.X, f.FoldLimit)
	y := boxFold(s.Y, f.FoldLimit)
	z := boxFold(s.Z, f.FoldLimit)

	r := math.Sqrt(x*x + y*y + z*z)
	if r < 1e-30 {
		r = 1e-30
	}
	theta := math.Acos(z/r) * float64(f.Power)
	phi := math.Atan2(y, x) * float64(f.Power)
	zr := math.Pow(r, float64(f.Power))

	s.Dr = math.Pow(r, float64(f.Power-1))*float64(f.Power)*s.Dr + 1

	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	s.X = zr*st*cp + s.C1
	s.Y = zr*st*sp + s.C2
	s.Z = zr*ct + s.C3
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z
	trapUpdate(s, s.X, s.Y, s.Z)
	return s.RSqr > bailout
}

func (f *FoldingIntPow) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	lnPower := math.Log(float64(f.Power))
	for i := uint32(0); i < maxIter; i++ {
		if f.IterateOnce(&s, bailout) {
			de, smooth := canonicalDE(i, s.RSqr, s.Dr, lnPower)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	return FormulaResult{DE: 0, SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// QuaternionJulia iterates the full 4D quaternion square z -> z^2 + c,
// bailing out on the 4D norm rather than the 3D one.
type QuaternionJulia struct {
	JuliaW float64
}

func NewQuaternionJulia() *QuaternionJulia { return &QuaternionJulia{} }

func (q *QuaternionJulia) Name() string { return "QuaternionJulia" }

func (q *QuaternionJulia) IterateOnce(s *IterationState, bailout float64) bool {
	r4Sqr := s.X*s.X + s.Y*s.Y + s.Z*s.Z + s.W*s.W
	s.RSqr = r4Sqr
	if r4Sqr > bailout {
		return true
	}
	s.Dr = 2*math.Sqrt(r4Sqr)*s.Dr + 1

	x, y, z, w := s.X, s.Y, s.Z, s.W
	nx := x*x - y*y - z*z - w*w
	ny := 2 * x * y
	nz := 2 * x * z
	nw := 2 * x * w

	s.X = nx + s.C1
	s.Y = ny + s.C2
	s.Z = nz + s.C3
	s.W = nw + q.JuliaW
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z + s.W*s.W
	trapUpdate(s, s.X, s.Y, s.Z)
	return false
}

func (q *QuaternionJulia) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	for i := uint32(0); i < maxIter; i++ {
		if q.IterateOnce(&s, bailout) {
			r := math.Sqrt(s.RSqr)
			de := 0.5 * r * math.Log(r) / s.Dr
			if de < 0 {
				de = 0
			}
			smooth := float64(i) + 1 - math.Log(math.Log(s.RSqr))/math.Log(2)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	return FormulaResult{DE: 0, SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}

// AexionC is a bicomplex (4D) squaring formula distinct from the
// quaternion product: each output component mixes all four inputs
// through a bicomplex multiplication rule rather than a quaternion one.
type AexionC struct{}

func NewAexionC() *AexionC { return &AexionC{} }

func (AexionC) Name() string { return "AexionC" }

func (AexionC) IterateOnce(s *IterationState, bailout float64) bool {
	r4Sqr := s.X*s.X + s.Y*s.Y + s.Z*s.Z + s.W*s.W
	s.RSqr = r4Sqr
	if r4Sqr > bailout {
		return true
	}
	s.Dr = 2*math.Sqrt(r4Sqr)*s.Dr + 1

	x, y, z, w := s.X, s.Y, s.Z, s.W
	nx := x*x - y*y - z*z + w*w
	ny := 2 * (x*y - z*w)
	nz := 2 * (x*z - y*w)
	nw := 2 * (x*w + y*z)

	s.X = nx + s.C1
	s.Y = ny + s.C2
	s.Z = nz + s.C3
	s.W = nw
	s.RSqr = s.X*s.X + s.Y*s.Y + s.Z*s.Z + s.W*s.W
	trapUpdate(s, s.X, s.Y, s.Z)
	return false
}

func (a *AexionC) ComputeDE(pos Vec3, maxIter uint32, bailout float64, juliaC *Vec3) FormulaResult {
	s := NewIterationState(pos, juliaC)
	for i := uint32(0); i < maxIter; i++ {
		if a.IterateOnce(&s, bailout) {
			r := math.Sqrt(s.RSqr)
			de := 0.5 * r * math.Log(r) / s.Dr
			if de < 0 {
				de = 0
			}
			smooth := float64(i) + 1 - math.Log(math.Log(s.RSqr))/math.Log(2)
			return FormulaResult{DE: de, SmoothIt: smooth, OrbitTrap: s.OrbitTrap, Iterations: i + 1}
		}
	}
	return FormulaResult{DE: 0, SmoothIt: float64(maxIter), OrbitTrap: s.OrbitTrap, Inside: true, Iterations: maxIter}
}
