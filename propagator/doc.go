// Package propagator restores local arc consistency on a wave.Grid after a
// cell has been collapsed.
//
// The key algorithms offered are:
//
//   - AC3 (naive)
//
//   - Method: LIFO stack of dirty cells; every surviving state of every
//     neighbor is re-tested against the dirty cell's domain by scanning its
//     whole compatibility list.
//
//   - Cost:   simplest, rescans fully on every pass.
//
//   - AC2001 (incremental)
//
//   - Method: same stack, but remembers per (cell, state, direction) where
//     the last support was found and resumes from there. Domains only
//     shrink, so a support stays valid until it is banned.
//
//   - Cost:   avoids redundant rescans across rounds; O(C×S×4) ints.
//
//   - AC4 (support-counted)
//
//   - Method: counts, per (cell, state, direction), the alive compatible
//     states of that neighbor once in Initialize; every ban decrements the
//     counts it contributed to and a count reaching zero bans the dependent
//     state (FIFO queue of removals).
//
//   - Cost:   no rescans during propagation; O(C×S×4×S) precompute.
//
//   - Recursive (depth-bounded)
//
//   - Method: the AC3 test, descending into a neighbor right after each ban.
//     The descent uses an explicit frame stack so large grids cannot
//     exhaust the goroutine stack; maxDepth bounds it.
//
// # Contract
//
//	Initialize(grid, model)
//	Collapse(grid, model, cellID, rng) error
//
// Collapse samples a state for cellID from its domain, observes it and
// propagates outward. It returns ErrContradiction (wrapped with the cell id)
// as soon as any domain empties or no state can be sampled, and nil once
// the work set drains. For the same observations all four algorithms reach
// the same domains.
//
// Support is tested along the triggering edge only; this is edge-pairwise
// arc consistency, weaker than generalized consistency, and contradictions
// surface lazily when a domain finally empties.
package propagator
