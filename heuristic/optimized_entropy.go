package heuristic

import (
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/tilewave/wave"
)

// notBucketed marks an observed cell, which lives in no bucket.
const notBucketed = -1

// OptimizedEntropy scores only the smallest group of undecided cells.
// buckets[k] lists the uncollapsed cells with exactly k states left; a cell's
// slot is kept in position so moves and removals are O(1) swap-removes.
type OptimizedEntropy struct {
	tracker     entropyTracker
	buckets     [][]int
	position    []int
	size        []int
	initialized bool
}

// NewOptimizedEntropy returns a bucketed entropy heuristic.
func NewOptimizedEntropy(opts ...Option) (*OptimizedEntropy, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &OptimizedEntropy{tracker: entropyTracker{jitter: o.jitter}}, nil
}

// Initialize implements Heuristic. Observed cells are left out of every
// bucket.
// Complexity: O(C + S).
func (h *OptimizedEntropy) Initialize(grid *wave.Grid, w Weights, rng *rand.Rand) {
	cells := grid.Len()
	h.tracker.initialize(cells, w, rng)
	h.buckets = make([][]int, w.StateCount()+1)
	h.position = make([]int, cells)
	h.size = make([]int, cells)

	for id := 0; id < cells; id++ {
		cell := grid.Cell(id)
		if cell.IsObserved() {
			h.position[id] = notBucketed
			h.size[id] = 1
			continue
		}
		k := cell.DomainCount()
		h.size[id] = k
		h.position[id] = len(h.buckets[k])
		h.buckets[k] = append(h.buckets[k], id)
	}
	h.initialized = true
}

// OnBanned implements wave.Observer: the cell moves one bucket down.
func (h *OptimizedEntropy) OnBanned(cellID, state int) {
	if !h.initialized {
		return
	}
	h.tracker.banned(cellID, state)
	if h.position[cellID] == notBucketed {
		return
	}
	h.remove(cellID)
	k := h.size[cellID] - 1
	h.size[cellID] = k
	h.position[cellID] = len(h.buckets[k])
	h.buckets[k] = append(h.buckets[k], cellID)
}

// OnObserved implements wave.Observer: the cell leaves the buckets.
func (h *OptimizedEntropy) OnObserved(cellID, state int) {
	if !h.initialized {
		return
	}
	h.tracker.observed(cellID, state)
	if h.position[cellID] == notBucketed {
		return
	}
	h.remove(cellID)
	h.position[cellID] = notBucketed
	h.size[cellID] = 1
}

// remove swap-removes cellID from its current bucket.
func (h *OptimizedEntropy) remove(cellID int) {
	k := h.size[cellID]
	list := h.buckets[k]
	i := h.position[cellID]
	last := list[len(list)-1]
	list[i] = last
	h.position[last] = i
	h.buckets[k] = list[:len(list)-1]
}

// PickNextCell returns the lowest-id forced cell (one state left) if any,
// otherwise the lowest-scoring cell of the smallest non-empty bucket of
// size ≥ 2. Equal scores go to the lower id, as in MinEntropy.
// Complexity: O(S + |bucket|).
func (h *OptimizedEntropy) PickNextCell(grid *wave.Grid) (int, bool) {
	if !h.initialized {
		return -1, false
	}
	if len(h.buckets) > 1 && len(h.buckets[1]) > 0 {
		return slices.Min(h.buckets[1]), true
	}
	for k := 2; k < len(h.buckets); k++ {
		switch candidates := h.buckets[k]; len(candidates) {
		case 0:
			continue
		case 1:
			return candidates[0], true
		default:
			return h.pick(grid, candidates), true
		}
	}
	return -1, false
}

func (h *OptimizedEntropy) pick(grid *wave.Grid, candidates []int) int {
	candidate := -1
	best := math.Inf(1)
	for _, id := range candidates {
		score := h.tracker.score(id, grid.Cell(id).SumWeights())
		if score < best || (score == best && id < candidate) {
			best = score
			candidate = id
		}
	}
	return candidate
}
