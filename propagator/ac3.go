package propagator

import (
	"math/rand"

	"github.com/katalvlaran/tilewave/wave"
)

// AC3 is the naive propagator: a LIFO stack of dirty cells whose neighbors
// are re-tested from scratch.
type AC3 struct {
	stack []int
}

// NewAC3 returns a naive propagator.
func NewAC3() *AC3 { return &AC3{} }

// Initialize implements Propagator. AC3 keeps no per-cell state.
func (p *AC3) Initialize(*wave.Grid, Model) {
	p.stack = p.stack[:0]
}

// Collapse implements Propagator.
//
// Steps:
//  1. Sample and observe a state for cellID.
//  2. Push cellID; pop cells until the stack drains.
//  3. For every neighbor of a popped cell, ban the states that have no
//     compatible state left in the popped cell; push the neighbor if it
//     changed, fail if it emptied.
//
// Complexity: O(changes × 4 × S × L), L = compatibility list length.
func (p *AC3) Collapse(grid *wave.Grid, m Model, cellID int, rng *rand.Rand) error {
	if _, err := observe(grid, m, cellID, rng); err != nil {
		return err
	}

	p.stack = append(p.stack[:0], cellID)
	for len(p.stack) > 0 {
		id := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		cell := grid.Cell(id)
		if cell.DomainCount() == 0 {
			return contradiction(id)
		}

		for _, n := range grid.NeighborsOf(id) {
			changed, empty := reviseNeighbor(grid, m, cell, n)
			if empty {
				return contradiction(n.ID)
			}
			if changed {
				p.stack = append(p.stack, n.ID)
			}
		}
	}

	return nil
}
