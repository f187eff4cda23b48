package heuristic

import (
	"math/rand"

	"github.com/katalvlaran/tilewave/wave"
)

// Scanline walks the grid in row-major order and never looks back.
type Scanline struct {
	next int
}

// NewScanline returns a scanline heuristic.
func NewScanline() *Scanline { return &Scanline{} }

// Initialize implements Heuristic. It rewinds the pointer for a new attempt.
func (h *Scanline) Initialize(*wave.Grid, Weights, *rand.Rand) { h.next = 0 }

// PickNextCell returns the first unobserved cell at or after the pointer.
func (h *Scanline) PickNextCell(grid *wave.Grid) (int, bool) {
	for h.next < grid.Len() {
		id := h.next
		h.next++
		if !grid.Cell(id).IsObserved() {
			return id, true
		}
	}
	return -1, false
}

// OnBanned implements wave.Observer.
func (h *Scanline) OnBanned(int, int) {}

// OnObserved implements wave.Observer.
func (h *Scanline) OnObserved(int, int) {}
