// Package wave holds the mutable state of one generation attempt: a
// row-major grid of cells, each carrying the set of pattern states that are
// still possible there.
//
// What:
//
//   - Cell keeps a bitset domain over state ids, a cached popcount, the
//     running sum of weights over surviving states and the observed state.
//   - Grid owns width×height cells, the 4-neighborhood (no diagonals, no
//     wraparound) and a synchronous list of observers notified on every
//     successful Ban or Observe.
//
// Domains only shrink. A cell whose domain becomes empty signals a
// contradiction; the grid must then be discarded and a new attempt started.
//
// Complexity:
//
//   - Ban:         O(1) + O(observers).
//   - Observe:     O(S/64) + O(observers), S = state count.
//   - NeighborsOf: O(1), neighbor tables are precomputed.
//
// Errors:
//
//   - ErrInvalidSize: width or height is not positive.
//
// A Grid is not safe for concurrent mutation; exactly one propagation owns it
// at a time.
package wave
