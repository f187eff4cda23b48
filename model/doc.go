// Package model learns an overlapping adjacency model from a small sample
// grid of tile ids.
//
// What:
//
//   - Every n×n window of the sample (wrapped when Periodic, clipped
//     otherwise) becomes a candidate pattern; with Symmetry each window is
//     expanded to its 8 dihedral variants.
//   - Identical patterns are merged; the occurrence count is the weight.
//   - For every ordered pair of patterns and each of the 4 directions the
//     overlap of the two windows, shifted by that direction, must agree
//     cell-for-cell for the pair to be compatible.
//
// The Model is immutable once built and can be shared by any number of
// generation attempts. Sampling takes the caller's *rand.Rand so that one
// random stream drives the whole run.
//
// Complexity:
//
//   - Build: O(W×H×v×n²) to extract windows (v = 1 or 8 variants) plus
//     O(S²×4×n²) for the compatibility table, S = number of patterns.
//   - Pick:  O(S/64 + S) worst case.
//
// Errors:
//
//   - ErrPatternSize:       N < 2.
//   - ErrSampleTooSmall:    non-periodic sample narrower or shorter than N.
//   - ErrEmptySample:       width or height is zero.
//   - ErrDimensionMismatch: len(tiles) != width×height.
package model
