package propagator

import (
	"math/rand"

	"github.com/katalvlaran/tilewave/wave"
)

// frame is one level of the depth-first descent: the cell whose neighbors
// are being revised, the remaining depth budget and the scan cursor.
type frame struct {
	cellID   int
	depth    int
	neighbor int
	state    int
}

// Recursive applies the AC3 support test but descends into a neighbor right
// after each ban, depth first. The descent runs on an explicit stack.
type Recursive struct {
	maxDepth int
	deepest  int
	frames   []frame
}

// NewRecursive returns a depth-first propagator. maxDepth > 0 bounds the
// descent; maxDepth <= 0 means unbounded. A bounded descent can stop short of
// the fixpoint the other propagators reach.
func NewRecursive(maxDepth int) *Recursive {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Recursive{maxDepth: maxDepth}
}

// Initialize implements Propagator.
func (p *Recursive) Initialize(*wave.Grid, Model) {
	p.frames = p.frames[:0]
	p.deepest = 0
}

// MaxDepth returns the configured bound (0 = unbounded).
func (p *Recursive) MaxDepth() int { return p.maxDepth }

// Deepest returns the deepest descent level reached since Initialize.
func (p *Recursive) Deepest() int { return p.deepest }

// Collapse implements Propagator.
func (p *Recursive) Collapse(grid *wave.Grid, m Model, cellID int, rng *rand.Rand) error {
	if _, err := observe(grid, m, cellID, rng); err != nil {
		return err
	}

	depth := p.maxDepth
	if depth == 0 {
		depth = -1 // never counts down to zero
	}
	p.frames = append(p.frames[:0], frame{cellID: cellID, depth: depth})

	for len(p.frames) > 0 {
		top := len(p.frames) - 1
		f := &p.frames[top]
		neighbors := grid.NeighborsOf(f.cellID)
		if f.depth == 0 || f.neighbor >= len(neighbors) {
			p.frames = p.frames[:top]
			continue
		}

		n := neighbors[f.neighbor]
		src, nCell := grid.Cell(f.cellID), grid.Cell(n.ID)
		back := n.Dir.Opposite()

		descend := false
		for f.state < m.StateCount() {
			s := f.state
			f.state++
			if !nCell.Has(s) || supported(m, s, back, src) {
				continue
			}
			if !grid.Ban(n.ID, s, m.Weight(s)) {
				continue
			}
			if nCell.DomainCount() == 0 {
				p.frames = p.frames[:0]
				return contradiction(n.ID)
			}
			descend = true
			break
		}
		if !descend {
			f.neighbor++
			f.state = 0
			continue
		}

		child := f.depth
		if child > 0 {
			child--
		}
		p.frames = append(p.frames, frame{cellID: n.ID, depth: child})
		if level := len(p.frames) - 1; level > p.deepest {
			p.deepest = level
		}
	}

	return nil
}
