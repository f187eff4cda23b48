package propagator

import (
	"math/rand"

	"github.com/katalvlaran/tilewave/wave"
)

// removal is a (cell, state) pair whose ban still has to be propagated.
type removal struct {
	cellID, state int
}

// AC4 is the support-counted propagator. supports[cell, s, d] holds how many
// states alive in the neighbor at direction d are compatible with s.
//
// States that start with a zero count (possible with non-periodic models)
// are banned the first time the neighbor they depend on changes, which is
// when AC3 would notice them; swept records which cells have done so.
type AC4 struct {
	supports  []int
	stateDirs int
	queue     []removal
	swept     []bool
}

// NewAC4 returns a support-counted propagator.
func NewAC4() *AC4 { return &AC4{} }

func (p *AC4) index(cellID, state int, d wave.Direction) int {
	return cellID*p.stateDirs + state*wave.DirectionCount + int(d)
}

// Initialize implements Propagator. It counts, for every alive state of every
// cell and each in-bounds direction, the compatible states alive in that
// neighbor.
// Complexity: O(C × 4 × S × L) time, O(C × S × 4) memory.
func (p *AC4) Initialize(grid *wave.Grid, m Model) {
	p.stateDirs = m.StateCount() * wave.DirectionCount
	p.supports = make([]int, grid.Len()*p.stateDirs)
	p.swept = make([]bool, grid.Len())
	p.queue = p.queue[:0]

	for id := 0; id < grid.Len(); id++ {
		cell := grid.Cell(id)
		for _, n := range grid.NeighborsOf(id) {
			nCell := grid.Cell(n.ID)
			for s := 0; s < m.StateCount(); s++ {
				if !cell.Has(s) {
					continue
				}
				count := 0
				for _, t := range m.Compatible(s, n.Dir) {
					if nCell.Has(t) {
						count++
					}
				}
				p.supports[p.index(id, s, n.Dir)] = count
			}
		}
	}
}

// Collapse implements Propagator.
//
// Steps:
//  1. Sample a state; enqueue every other alive state of cellID as removed.
//  2. Observe the cell.
//  3. Drain the FIFO queue: each removal decrements the support counts of
//     the neighbor states it backed; a count reaching zero bans that state
//     and enqueues it.
func (p *AC4) Collapse(grid *wave.Grid, m Model, cellID int, rng *rand.Rand) error {
	if len(p.supports) != grid.Len()*m.StateCount()*wave.DirectionCount {
		p.Initialize(grid, m)
	}
	cell := grid.Cell(cellID)
	if cell.IsObserved() {
		return observeErr(cellID)
	}
	chosen, ok := m.Pick(cell, rng)
	if !ok {
		return contradiction(cellID)
	}

	p.queue = p.queue[:0]
	cell.Each(func(s int) {
		if s != chosen {
			p.queue = append(p.queue, removal{cellID: cellID, state: s})
		}
	})
	if !grid.Observe(cellID, chosen, m.Weight(chosen)) {
		return contradiction(cellID)
	}
	if err := p.sweep(grid, m, cellID); err != nil {
		return err
	}

	return p.propagate(grid, m)
}

// sweep bans, once per cell, the neighbor states whose support toward cellID
// was zero from the start.
func (p *AC4) sweep(grid *wave.Grid, m Model, cellID int) error {
	if p.swept[cellID] {
		return nil
	}
	p.swept[cellID] = true
	for _, n := range grid.NeighborsOf(cellID) {
		nCell := grid.Cell(n.ID)
		back := n.Dir.Opposite()
		for t := 0; t < m.StateCount(); t++ {
			if !nCell.Has(t) || p.supports[p.index(n.ID, t, back)] != 0 {
				continue
			}
			if !grid.Ban(n.ID, t, m.Weight(t)) {
				continue
			}
			if nCell.DomainCount() == 0 {
				return contradiction(n.ID)
			}
			p.queue = append(p.queue, removal{cellID: n.ID, state: t})
		}
	}
	return nil
}

func (p *AC4) propagate(grid *wave.Grid, m Model) error {
	supports := p.supports
	for qi := 0; qi < len(p.queue); qi++ {
		r := p.queue[qi]
		if err := p.sweep(grid, m, r.cellID); err != nil {
			return err
		}
		for _, n := range grid.NeighborsOf(r.cellID) {
			nCell := grid.Cell(n.ID)
			back := n.Dir.Opposite()
			for _, t := range m.Compatible(r.state, n.Dir) {
				if !nCell.Has(t) {
					continue
				}
				idx := p.index(n.ID, t, back)
				supports[idx]--
				if supports[idx] != 0 {
					continue
				}
				if !grid.Ban(n.ID, t, m.Weight(t)) {
					continue
				}
				if nCell.DomainCount() == 0 {
					return contradiction(n.ID)
				}
				p.queue = append(p.queue, removal{cellID: n.ID, state: t})
			}
		}
	}
	p.queue = p.queue[:0]

	return nil
}
