package heuristic

import (
	"math"
	"math/rand"
)

// wlwEpsilon clamps tracked Σ(w·ln w) to zero, and skips ln for tiny weights.
const wlwEpsilon = 1e-9

// entropyTracker keeps Σ(w·ln w) per cell in step with the grid's bans.
type entropyTracker struct {
	stateWlw []float64
	cellWlw  []float64
	jitter   float64
	rng      *rand.Rand
}

func (e *entropyTracker) initialize(cells int, w Weights, rng *rand.Rand) {
	e.rng = rng
	e.stateWlw = make([]float64, w.StateCount())
	total := 0.0
	for s := range e.stateWlw {
		if wt := w.Weight(s); wt > wlwEpsilon {
			e.stateWlw[s] = wt * math.Log(wt)
		}
		total += e.stateWlw[s]
	}
	e.cellWlw = make([]float64, cells)
	for i := range e.cellWlw {
		e.cellWlw[i] = total
	}
}

func (e *entropyTracker) banned(cellID, state int) {
	e.cellWlw[cellID] -= e.stateWlw[state]
	if e.cellWlw[cellID] < wlwEpsilon {
		e.cellWlw[cellID] = 0
	}
}

func (e *entropyTracker) observed(cellID, state int) {
	e.cellWlw[cellID] = e.stateWlw[state]
}

// entropy returns ln(ΣW) − Σ(w·ln w)/ΣW for a cell.
func (e *entropyTracker) entropy(cellID int, sumWeights float64) float64 {
	return math.Log(sumWeights) - e.cellWlw[cellID]/sumWeights
}

// score is entropy plus tie-breaking noise.
func (e *entropyTracker) score(cellID int, sumWeights float64) float64 {
	h := e.entropy(cellID, sumWeights)
	if e.jitter > 0 && e.rng != nil {
		h += e.rng.Float64() * e.jitter
	}
	return h
}
