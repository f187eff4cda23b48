package heuristic

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tilewave/wave"
)

// MinEntropy scores every uncollapsed cell on each call and returns the
// lowest.
type MinEntropy struct {
	tracker     entropyTracker
	initialized bool
}

// NewMinEntropy returns a min-entropy heuristic.
func NewMinEntropy(opts ...Option) (*MinEntropy, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &MinEntropy{tracker: entropyTracker{jitter: o.jitter}}, nil
}

// Initialize implements Heuristic.
// Complexity: O(C + S).
func (h *MinEntropy) Initialize(grid *wave.Grid, w Weights, rng *rand.Rand) {
	h.tracker.initialize(grid.Len(), w, rng)
	h.initialized = true
}

// OnBanned implements wave.Observer.
func (h *MinEntropy) OnBanned(cellID, state int) {
	if h.initialized {
		h.tracker.banned(cellID, state)
	}
}

// OnObserved implements wave.Observer.
func (h *MinEntropy) OnObserved(cellID, state int) {
	if h.initialized {
		h.tracker.observed(cellID, state)
	}
}

// PickNextCell returns the uncollapsed, non-empty cell with the lowest
// score; ties go to the lowest id.
// Complexity: O(C).
func (h *MinEntropy) PickNextCell(grid *wave.Grid) (int, bool) {
	if !h.initialized {
		return -1, false
	}
	candidate := -1
	best := math.Inf(1)
	for id := 0; id < grid.Len(); id++ {
		cell := grid.Cell(id)
		if cell.IsObserved() || cell.DomainCount() < 1 {
			continue
		}
		score := h.tracker.score(id, cell.SumWeights())
		if score < best {
			best = score
			candidate = id
		}
	}
	return candidate, candidate >= 0
}

// Entropy returns the current entropy of cellID without jitter.
func (h *MinEntropy) Entropy(grid *wave.Grid, cellID int) float64 {
	return h.tracker.entropy(cellID, grid.Cell(cellID).SumWeights())
}
