package model

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tilewave/wave"
)

// Model is the learned vocabulary of patterns; a state id is an index into it.
type Model struct {
	n          int
	states     []state
	sumWeights float64
}

// Build learns a Model from a row-major tile-id grid of width×height.
//
// Steps:
//  1. Validate options and dimensions (fail fast).
//  2. Extract every n×n window (wrapped if periodic, clipped otherwise),
//     optionally expanded to its 8 dihedral variants.
//  3. Merge identical windows, counting occurrences as weight; state ids
//     follow first-seen order.
//  4. Precompute per-direction compatibility lists for every state.
//
// Complexity: O(W×H×v×n² + S²×4×n²).
func Build(tiles []int, width, height int, opts Options) (*Model, error) {
	n := opts.N
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPatternSize, n)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptySample
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrDimensionMismatch, len(tiles), width, height)
	}
	if !opts.Periodic && (width < n || height < n) {
		return nil, fmt.Errorf("%w: %dx%d sample, n=%d", ErrSampleTooSmall, width, height, n)
	}

	yMax, xMax := height, width
	if !opts.Periodic {
		yMax, xMax = height-n+1, width-n+1
	}

	m := &Model{n: n}
	index := make(map[string]int)
	for row := 0; row < yMax; row++ {
		for col := 0; col < xMax; col++ {
			window := make([]int, n*n)
			for sy := 0; sy < n; sy++ {
				for sx := 0; sx < n; sx++ {
					gy, gx := (row+sy)%height, (col+sx)%width
					window[sy*n+sx] = tiles[gy*width+gx]
				}
			}

			variants := [][]int{window}
			if opts.Symmetry {
				variants = dihedral(window, n)
			}
			for _, v := range variants {
				k := patternKey(v)
				if id, ok := index[k]; ok {
					m.states[id].weight++
					continue
				}
				index[k] = len(m.states)
				m.states = append(m.states, state{data: v, weight: 1})
			}
		}
	}

	for i := range m.states {
		m.sumWeights += m.states[i].weight
	}
	for a := range m.states {
		for b := range m.states {
			for _, d := range wave.Directions {
				if m.agrees(a, b, d) {
					m.states[a].compatible[d] = append(m.states[a].compatible[d], b)
				}
			}
		}
	}

	return m, nil
}

// patternKey encodes a pattern's content as a map key.
func patternKey(data []int) string {
	buf := make([]byte, 0, len(data)*binary.MaxVarintLen64)
	for _, v := range data {
		buf = binary.AppendVarint(buf, int64(v))
	}
	return string(buf)
}

// agrees reports whether pattern b placed at direction d of pattern a
// overlaps a without conflict.
func (m *Model) agrees(a, b int, d wave.Direction) bool {
	n := m.n
	dx, dy := d.Offset()
	pa, pb := m.states[a].data, m.states[b].data
	yMin, yMax := max(dy, 0), min(dy+n, n)
	xMin, xMax := max(dx, 0), min(dx+n, n)
	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			if pa[y*n+x] != pb[(y-dy)*n+(x-dx)] {
				return false
			}
		}
	}
	return true
}

// N returns the pattern size.
func (m *Model) N() int { return m.n }

// StateCount returns the number of distinct patterns.
func (m *Model) StateCount() int { return len(m.states) }

// SumWeights returns the total weight over all states.
func (m *Model) SumWeights() float64 { return m.sumWeights }

// TileID returns the tile shown by a cell fixed to state (the pattern's
// top-left tile), or -1 for state -1.
func (m *Model) TileID(s int) int {
	if s < 0 {
		return -1
	}
	return m.states[s].data[0]
}

// Weight returns the learned weight of state s, or 0 for s == -1.
func (m *Model) Weight(s int) float64 {
	if s < 0 {
		return 0
	}
	return m.states[s].weight
}

// Compatible returns the states allowed at direction d of state s.
// The slice is shared and must not be modified.
func (m *Model) Compatible(s int, d wave.Direction) []int {
	return m.states[s].compatible[d]
}

// Pattern returns a copy of the n×n tiles of state s.
func (m *Model) Pattern(s int) []int {
	out := make([]int, len(m.states[s].data))
	copy(out, m.states[s].data)
	return out
}

// Pick draws a state proportionally to weight among the states still set in
// c's domain, normalized by the cell's live weight sum. It returns false if
// the domain is empty.
// Complexity: O(S) worst case.
func (m *Model) Pick(c *wave.Cell, rng *rand.Rand) (int, bool) {
	if c.DomainCount() == 0 {
		return -1, false
	}
	r := rng.Float64() * c.SumWeights()
	last := -1
	for s := range m.states {
		if !c.Has(s) {
			continue
		}
		last = s
		r -= m.states[s].weight
		if r < 0 {
			return s, true
		}
	}
	// rounding left r marginally above zero
	return last, last >= 0
}

// String renders every pattern with its weight, for debugging.
func (m *Model) String() string {
	var sb strings.Builder
	for i, st := range m.states {
		fmt.Fprintf(&sb, "#%d (w: %g)\n", i, st.weight)
		for y := 0; y < m.n; y++ {
			for x := 0; x < m.n; x++ {
				fmt.Fprintf(&sb, "%-2d", st.data[y*m.n+x])
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
