package formula

import "math"

// Mode selects how a HybridFormula's active slots are composed.
type Mode int

const (
	// Alternating cycles the iteration loop through each active slot
	// in turn, sharing one IterationState across all of them.
	Alternating Mode = iota
	// Interpolated runs each active slot's full, independent DE
	// evaluation and blends the two results.
	Interpolated
	// FourD is reserved for a future 4D-aware composition; until one
	// is designed it behaves identically to Alternating.
	FourD
)

// ModeFromName maps a wire-format mode name to a Mode, defaulting to
// Alternating for anything unrecognized.
func ModeFromName(name string) Mode {
	switch name {
	case "interpolated":
		return Interpolated
	case "4d", "fourd":
		return FourD
	default:
		return Alternating
	}
}

// Slot binds a formula to how many consecutive iterations it runs
// per cycle in Alternating/FourD mode.
type Slot struct {
	Formula    Formula
	Iterations uint32
	Active     bool
}

// HybridFormula composes up to six formula slots into one DE
// evaluation. With a single active slot it degenerates to a plain
// delegate call.
type HybridFormula struct {
	Slots           []Slot
	Mode            Mode
	TotalIterations uint32
	Bailout         float64
}

// ActiveCount returns how many slots currently participate.
func (h *HybridFormula) ActiveCount() int {
	n := 0
	for _, s := range h.Slots {
		if s.Active {
			n++
		}
	}
	return n
}

// ComputeDE evaluates the hybrid's distance estimator at pos.
func (h *HybridFormula) ComputeDE(pos Vec3, juliaC *Vec3) FormulaResult {
	active := h.ActiveCount()
	if active == 0 {
		return defaultResult()
	}
	if active == 1 {
		for _, s := range h.Slots {
			if s.Active {
				return s.Formula.ComputeDE(pos, h.TotalIterations, h.Bailout, juliaC)
			}
		}
	}
	switch h.Mode {
	case Interpolated:
		return h.computeInterpolated(pos, juliaC)
	default:
		return h.computeAlternating(pos, juliaC)
	}
}

func (h *HybridFormula) computeAlternating(pos Vec3, juliaC *Vec3) FormulaResult {
	state := NewIterationState(pos, juliaC)
	slots := make([]Slot, 0, len(h.Slots))
	for _, s := range h.Slots {
		if s.Active {
			slots = append(slots, s)
		}
	}
	if len(slots) == 0 {
		return defaultResult()
	}

	var total uint32
	slotIdx := 0
	remaining := slots[0].Iterations

	for total < h.TotalIterations {
		if remaining == 0 {
			slotIdx = (slotIdx + 1) % len(slots)
			remaining = slots[slotIdx].Iterations
			if remaining == 0 {
				remaining = 1
			}
		}
		if slots[slotIdx].Formula.IterateOnce(&state, h.Bailout) {
			r := math.Sqrt(state.RSqr)
			var de float64
			if math.Abs(state.Dr) < 1e-30 {
				de = r * 0.5
			} else {
				de = 0.5 * r * math.Log(r) / state.Dr
				if de < 0 {
					de = 0
				}
			}
			return FormulaResult{DE: de, SmoothIt: float64(total) + 1, OrbitTrap: state.OrbitTrap, Iterations: total + 1}
		}
		total++
		remaining--
	}

	return FormulaResult{DE: 0, SmoothIt: float64(h.TotalIterations), OrbitTrap: state.OrbitTrap, Inside: true, Iterations: h.TotalIterations}
}

func (h *HybridFormula) computeInterpolated(pos Vec3, juliaC *Vec3) FormulaResult {
	const blend = 0.5

	var results []FormulaResult
	for _, s := range h.Slots {
		if s.Active {
			results = append(results, s.Formula.ComputeDE(pos, h.TotalIterations, h.Bailout, juliaC))
		}
	}
	if len(results) == 0 {
		return defaultResult()
	}
	if len(results) == 1 {
		return results[0]
	}

	a, b := results[0], results[1]
	iterations := a.Iterations
	if b.Iterations > iterations {
		iterations = b.Iterations
	}
	return FormulaResult{
		DE:         a.DE*(1-blend) + b.DE*blend,
		SmoothIt:   a.SmoothIt*(1-blend) + b.SmoothIt*blend,
		OrbitTrap:  math.Min(a.OrbitTrap, b.OrbitTrap),
		Inside:     a.Inside && b.Inside,
		Iterations: iterations,
	}
}
