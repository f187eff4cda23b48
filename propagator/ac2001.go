package propagator

import (
	"math/rand"

	"github.com/katalvlaran/tilewave/wave"
)

// AC2001 is the incremental propagator. For every (cell, state, direction)
// it remembers the index into the state's compatibility list where support
// was last found, and resumes scanning from there.
type AC2001 struct {
	lastSupport []int
	stateDirs   int
	stack       []int
}

// NewAC2001 returns an incremental propagator.
func NewAC2001() *AC2001 { return &AC2001{} }

// Initialize implements Propagator. It allocates one resume index per
// (cell, state, direction), all starting at zero.
// Complexity: O(C × S × 4) memory.
func (p *AC2001) Initialize(grid *wave.Grid, m Model) {
	p.stateDirs = m.StateCount() * wave.DirectionCount
	p.lastSupport = make([]int, grid.Len()*p.stateDirs)
	p.stack = p.stack[:0]
}

func (p *AC2001) pointer(cellID, state int, d wave.Direction) int {
	return cellID*p.stateDirs + state*wave.DirectionCount + int(d)
}

// Collapse implements Propagator.
func (p *AC2001) Collapse(grid *wave.Grid, m Model, cellID int, rng *rand.Rand) error {
	if len(p.lastSupport) != grid.Len()*m.StateCount()*wave.DirectionCount {
		p.Initialize(grid, m)
	}
	if _, err := observe(grid, m, cellID, rng); err != nil {
		return err
	}

	p.stack = append(p.stack[:0], cellID)
	for len(p.stack) > 0 {
		id := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		cell := grid.Cell(id)

		for _, n := range grid.NeighborsOf(id) {
			changed, empty := p.revise(grid, m, cell, n)
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

// revise is reviseNeighbor with resumable support search.
func (p *AC2001) revise(grid *wave.Grid, m Model, src *wave.Cell, n wave.Neighbor) (changed, empty bool) {
	nCell := grid.Cell(n.ID)
	back := n.Dir.Opposite()
	for s := 0; s < m.StateCount(); s++ {
		if !nCell.Has(s) {
			continue
		}
		candidates := m.Compatible(s, back)
		ptr := p.pointer(n.ID, s, back)

		found := false
		for k := p.lastSupport[ptr]; k < len(candidates); k++ {
			if src.Has(candidates[k]) {
				p.lastSupport[ptr] = k
				found = true
				break
			}
		}
		if found {
			continue
		}
		p.lastSupport[ptr] = len(candidates)

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
