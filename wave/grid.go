// SPDX-License-Identifier: MIT
//
// File: grid.go
// Role: row-major wave grid, 4-neighborhood topology and mutation dispatch.
// Policy:
//   - Ban and Observe are the only mutators; both notify observers
//     synchronously and only on success.
//   - No wraparound: edge cells legitimately have fewer than 4 neighbors.

package wave

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a non-positive grid dimension.
var ErrInvalidSize = errors.New("wave: width and height must be positive")

// Neighbor is an adjacent cell id together with the direction leading to it.
type Neighbor struct {
	ID  int
	Dir Direction
}

// Grid is the collection of wave cells of one generation attempt.
type Grid struct {
	width, height int
	cells         []Cell
	neighbors     [][]Neighbor
	observers     []Observer
}

// NewGrid allocates the topology of a width×height grid. Cells are created by
// Initialize.
// Complexity: O(W×H).
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		width:     width,
		height:    height,
		neighbors: make([][]Neighbor, width*height),
	}
	// one backing array for all neighbor lists
	backing := make([]Neighbor, 0, 4*width*height)
	for id := range g.neighbors {
		x, y := g.Coordinate(id)
		start := len(backing)
		for _, d := range Directions {
			ox, oy := d.Offset()
			nx, ny := x+ox, y+oy
			if !g.InBounds(nx, ny) {
				continue
			}
			backing = append(backing, Neighbor{ID: g.Index(nx, ny), Dir: d})
		}
		g.neighbors[id] = backing[start:len(backing):len(backing)]
	}

	return g, nil
}

// Initialize (re)allocates every cell with the full domain of stateCount
// states and sumWeights = totalWeight. Observers are kept.
// Complexity: O(W×H×S/64).
func (g *Grid) Initialize(stateCount int, totalWeight float64) {
	g.cells = make([]Cell, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = newCell(stateCount, totalWeight)
	}
}

// Subscribe appends o to the observer list.
func (g *Grid) Subscribe(o Observer) {
	if o != nil {
		g.observers = append(g.observers, o)
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.width * g.height }

// Index maps (x,y) to a row-major cell id.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major cell id back to (x,y).
func (g *Grid) Coordinate(id int) (x, y int) { return id % g.width, id / g.width }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell with the given id. The pointer stays valid until the
// next Initialize.
func (g *Grid) Cell(id int) *Cell { return &g.cells[id] }

// NeighborsOf returns the in-bounds neighbors of id. The slice is shared and
// must not be modified.
func (g *Grid) NeighborsOf(id int) []Neighbor { return g.neighbors[id] }

// Observe collapses cellID to state and sets its weight sum to weight.
// It fails without side effects if the cell is already observed or state is
// no longer in its domain.
// Complexity: O(S/64) + O(observers).
func (g *Grid) Observe(cellID, state int, weight float64) bool {
	if !g.cells[cellID].observe(state, weight) {
		return false
	}
	for _, o := range g.observers {
		o.OnObserved(cellID, state)
	}

	return true
}

// Ban removes state from cellID's domain, subtracting weight from the cell's
// weight sum. It fails without side effects if the state is already excluded
// or the cell is observed.
// Complexity: O(1) + O(observers).
func (g *Grid) Ban(cellID, state int, weight float64) bool {
	if !g.cells[cellID].ban(state, weight) {
		return false
	}
	for _, o := range g.observers {
		o.OnBanned(cellID, state)
	}

	return true
}

// Observed returns the observed state of every cell in row-major order
// (Unobserved for cells not yet collapsed).
func (g *Grid) Observed() []int {
	out := make([]int, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].observed
	}
	return out
}

// Collapsed reports whether every cell is observed.
func (g *Grid) Collapsed() bool {
	for i := range g.cells {
		if g.cells[i].observed == Unobserved {
			return false
		}
	}
	return true
}
