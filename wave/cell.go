// SPDX-License-Identifier: MIT
//
// File: cell.go
// Role: per-cell domain bookkeeping (bitset, popcount, weight sum, observation).
// Policy:
//   - Mutations happen only through Grid so observers are always notified.
//   - Every mutation keeps domainCount == popcount(domain) and
//     sumWeights == Σ weight over set bits (clamped to zero on underflow).

package wave

import "math/bits"

// weightEpsilon clamps sumWeights to zero once float subtraction drifts below it.
const weightEpsilon = 1e-9

// Unobserved marks a cell that has not been collapsed yet.
const Unobserved = -1

// Cell is the mutable domain of one output position.
type Cell struct {
	domain      []uint64
	states      int
	domainCount int
	sumWeights  float64
	observed    int
}

func newCell(states int, totalWeight float64) Cell {
	c := Cell{
		domain:      make([]uint64, (states+63)/64),
		states:      states,
		domainCount: states,
		sumWeights:  totalWeight,
		observed:    Unobserved,
	}
	for i := range c.domain {
		c.domain[i] = ^uint64(0)
	}
	// trim the tail word so popcount matches states
	if rem := states % 64; rem != 0 {
		c.domain[len(c.domain)-1] = (uint64(1) << uint(rem)) - 1
	}

	return c
}

// Has reports whether state is still possible in this cell.
// Complexity: O(1).
func (c *Cell) Has(state int) bool {
	if state < 0 || state >= c.states {
		return false
	}
	return c.domain[state>>6]&(1<<uint(state&63)) != 0
}

// DomainCount returns the cached number of surviving states.
func (c *Cell) DomainCount() int { return c.domainCount }

// SumWeights returns the running weight sum over surviving states.
func (c *Cell) SumWeights() float64 { return c.sumWeights }

// Observed returns the chosen state, or Unobserved.
func (c *Cell) Observed() int { return c.observed }

// IsObserved reports whether the cell has been collapsed.
func (c *Cell) IsObserved() bool { return c.observed != Unobserved }

// IsContradicted reports whether the domain is empty.
func (c *Cell) IsContradicted() bool { return c.domainCount == 0 }

// StateCount returns the size of the state universe (domain capacity).
func (c *Cell) StateCount() int { return c.states }

// States returns the surviving state ids in ascending order.
// Complexity: O(S/64 + k).
func (c *Cell) States() []int {
	out := make([]int, 0, c.domainCount)
	c.Each(func(s int) { out = append(out, s) })
	return out
}

// Each calls fn for every surviving state in ascending order.
// fn must not mutate the cell.
func (c *Cell) Each(fn func(state int)) {
	for wi, w := range c.domain {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(wi<<6 | b)
			w &= w - 1
		}
	}
}

// DomainBits returns a copy of the raw domain words (bit i = state i).
func (c *Cell) DomainBits() []uint64 {
	out := make([]uint64, len(c.domain))
	copy(out, c.domain)
	return out
}

// popcount recomputes the domain size from the bitset.
func (c *Cell) popcount() int {
	n := 0
	for _, w := range c.domain {
		n += bits.OnesCount64(w)
	}
	return n
}

func (c *Cell) ban(state int, weight float64) bool {
	if c.observed != Unobserved || !c.Has(state) {
		return false
	}
	c.domain[state>>6] &^= 1 << uint(state&63)
	c.domainCount--
	c.sumWeights -= weight
	if c.sumWeights < weightEpsilon {
		c.sumWeights = 0
	}

	return true
}

func (c *Cell) observe(state int, weight float64) bool {
	if c.observed != Unobserved || !c.Has(state) {
		return false
	}
	for i := range c.domain {
		c.domain[i] = 0
	}
	c.domain[state>>6] = 1 << uint(state&63)
	c.domainCount = 1
	c.sumWeights = weight
	c.observed = state

	return true
}
