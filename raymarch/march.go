package raymarch

import (
	"math"

	"github.com/guidogerb/mb3d/formula"
	"github.com/guidogerb/mb3d/vec3"
)

// maxSteps bounds the sphere-tracing loop even when a formula's DE
// misbehaves; no legitimate ray needs this many steps at normal
// step widths.
const maxSteps = 8000

// Result is the outcome of marching one ray to either a hit or a miss.
type Result struct {
	Hit            bool
	TotalDistance  float64
	Normal         vec3.Vec3
	SmoothIter     float64
	OrbitTrap      float64
	Steps          int
	Fog            float64
	HitPos         vec3.Vec3
}

// DE evaluates a hybrid formula's distance estimator; it is the only
// seam MarchRay needs from the formula package, letting callers pass
// either a HybridFormula or a single Formula wrapped trivially.
type DE interface {
	ComputeDE(pos vec3.Vec3, juliaC *vec3.Vec3) formula.FormulaResult
}

// MarchRay sphere-traces from origin along dir (assumed normalized)
// against de, returning a miss Result if the ray exits max_ray_length,
// exceeds the internal step budget, or the DE goes non-finite.
func MarchRay(de DE, origin, dir vec3.Vec3, juliaC *vec3.Vec3, p RenderParams) Result {
	totalDistance := 0.0
	rsfMul := 1.0
	lastDE := math.Inf(1)
	lastStep := 0.0
	fog := 0.0
	deThreshold := p.DEStop * (1 + p.FOVFactor)

	if p.CutPlaneEnabled {
		planeDist := vec3.Dot(origin, p.CutPlaneNormal) - p.CutPlaneD
		if planeDist < 0 {
			cosAngle := vec3.Dot(dir, p.CutPlaneNormal)
			if math.Abs(cosAngle) > 1e-10 {
				t := -planeDist / cosAngle
				if t > 0 {
					totalDistance = t
				}
			}
		}
	}

	var lastResult formula.FormulaResult

	for step := 0; step < maxSteps; step++ {
		pos := vec3.Add(origin, vec3.Scale(totalDistance, dir))
		res := de.ComputeDE(pos, juliaC)
		lastResult = res

		if math.IsNaN(res.DE) || math.IsInf(res.DE, 0) {
			return Result{Hit: false, Steps: step, Fog: fog}
		}

		capped := res.DE
		if capped > lastDE+lastStep {
			capped = lastDE + lastStep
			rsfMul *= 0.9
			if rsfMul < 0.5 {
				rsfMul = 0.5
			}
		} else {
			rsfMul *= 1.01
			if rsfMul > 1.0 {
				rsfMul = 1.0
			}
		}

		if capped < deThreshold {
			hitDist := binarySearchRefine(de, origin, dir, totalDistance, lastStep, p.DEStop, juliaC, p.BinSearchSteps)
			hitPos := vec3.Add(origin, vec3.Scale(hitDist, dir))
			normal := calculateNormal(de, hitPos, juliaC, p.DEStop*0.5)
			return Result{
				Hit:           true,
				TotalDistance: hitDist,
				Normal:        normal,
				SmoothIter:    lastResult.SmoothIt,
				OrbitTrap:     lastResult.OrbitTrap,
				Steps:         step,
				Fog:           fog,
				HitPos:        hitPos,
			}
		}

		stepLen := capped * p.StepWidth * rsfMul
		fog += 1.0 / (1.0 + 100.0*res.DE*res.DE)
		totalDistance += stepLen
		lastDE = capped
		lastStep = stepLen

		if totalDistance > p.MaxRayLength {
			return Result{Hit: false, Steps: step, Fog: fog}
		}
	}

	return Result{Hit: false, Steps: maxSteps, Fog: fog}
}

// binarySearchRefine steps back by lastStep and bisects bin_search_steps
// times to tighten the hit distance against de_stop: each probe at
// t+step that is still outside (DE >= de_stop) moves t forward.
func binarySearchRefine(de DE, origin, dir vec3.Vec3, hitDistance, lastStep, deStop float64, juliaC *vec3.Vec3, steps int) float64 {
	t := hitDistance - lastStep
	step := lastStep
	for i := 0; i < steps; i++ {
		step *= 0.5
		pos := vec3.Add(origin, vec3.Scale(t+step, dir))
		res := de.ComputeDE(pos, juliaC)
		if res.DE >= deStop {
			t += step
		}
	}
	return t + step
}

// calculateNormal estimates the surface normal at pos via central
// differences of the distance estimator.
func calculateNormal(de DE, pos vec3.Vec3, juliaC *vec3.Vec3, eps float64) vec3.Vec3 {
	dx := de.ComputeDE(vec3.New(pos.X+eps, pos.Y, pos.Z), juliaC).DE -
		de.ComputeDE(vec3.New(pos.X-eps, pos.Y, pos.Z), juliaC).DE
	dy := de.ComputeDE(vec3.New(pos.X, pos.Y+eps, pos.Z), juliaC).DE -
		de.ComputeDE(vec3.New(pos.X, pos.Y-eps, pos.Z), juliaC).DE
	dz := de.ComputeDE(vec3.New(pos.X, pos.Y, pos.Z+eps), juliaC).DE -
		de.ComputeDE(vec3.New(pos.X, pos.Y, pos.Z-eps), juliaC).DE

	return vec3.Normalize(vec3.New(dx, dy, dz))
}
