package propagator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tilewave/wave"
)

// Sentinel errors for propagation.
var (
	// ErrContradiction indicates an emptied domain or a cell with no state
	// left to sample. The attempt must be discarded.
	ErrContradiction = errors.New("propagator: contradiction")
	// ErrAlreadyObserved indicates Collapse was called on an observed cell.
	ErrAlreadyObserved = errors.New("propagator: cell already observed")
	// ErrUnknownPropagator is returned by ByName.
	ErrUnknownPropagator = errors.New("propagator: unknown algorithm")
)

// Model is the read-only view of an adjacency model that propagation needs.
// *model.Model satisfies it.
type Model interface {
	StateCount() int
	Weight(state int) float64
	Compatible(state int, d wave.Direction) []int
	Pick(c *wave.Cell, rng *rand.Rand) (int, bool)
}

// Propagator restores arc consistency after collapsing one cell.
type Propagator interface {
	// Initialize prepares per-attempt state for grid. It must be called after
	// grid.Initialize and before the first Collapse.
	Initialize(grid *wave.Grid, m Model)
	// Collapse observes cellID with a sampled state and propagates.
	Collapse(grid *wave.Grid, m Model, cellID int, rng *rand.Rand) error
}

// ByName returns a fresh propagator for one of
// "ac3"/"naive", "ac2001"/"incremental", "ac4"/"support", "recursive".
func ByName(name string) (Propagator, error) {
	switch strings.ToLower(name) {
	case "ac3", "naive":
		return NewAC3(), nil
	case "ac2001", "incremental":
		return NewAC2001(), nil
	case "ac4", "support", "support-counted":
		return NewAC4(), nil
	case "recursive":
		return NewRecursive(0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPropagator, name)
	}
}

func contradiction(cellID int) error {
	return fmt.Errorf("%w at cell %d", ErrContradiction, cellID)
}

func observeErr(cellID int) error {
	return fmt.Errorf("%w: cell %d", ErrAlreadyObserved, cellID)
}

// observe samples a state for cellID and collapses the cell to it.
func observe(grid *wave.Grid, m Model, cellID int, rng *rand.Rand) (int, error) {
	cell := grid.Cell(cellID)
	if cell.IsObserved() {
		return -1, observeErr(cellID)
	}
	s, ok := m.Pick(cell, rng)
	if !ok || !grid.Observe(cellID, s, m.Weight(s)) {
		return -1, contradiction(cellID)
	}
	return s, nil
}

// supported reports whether state in a cell is backed, along direction d, by
// at least one state still alive in the neighboring cell other.
func supported(m Model, state int, d wave.Direction, other *wave.Cell) bool {
	for _, t := range m.Compatible(state, d) {
		if other.Has(t) {
			return true
		}
	}
	return false
}

// reviseNeighbor bans every state of neighbor n that has lost support from
// src along the shared edge. It reports whether n changed and whether n
// emptied.
func reviseNeighbor(grid *wave.Grid, m Model, src *wave.Cell, n wave.Neighbor) (changed, empty bool) {
	nCell := grid.Cell(n.ID)
	back := n.Dir.Opposite()
	for s := 0; s < m.StateCount(); s++ {
		if !nCell.Has(s) || supported(m, s, back, src) {
			continue
		}
		if !grid.Ban(n.ID, s, m.Weight(s)) {
			continue
		}
		changed = true
		if nCell.DomainCount() == 0 {
			return true, true
		}
	}
	return changed, false
}
