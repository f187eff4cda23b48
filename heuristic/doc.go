// Package heuristic decides which uncollapsed cell of a wave.Grid is
// collapsed next.
//
// Strategies:
//
//   - Scanline: row-major pointer that only moves forward. O(1) amortized.
//   - MinEntropy: Shannon entropy of every uncollapsed cell on every call,
//     H = ln(ΣW) − Σ(w·ln w)/ΣW, with Σ(w·ln w) tracked incrementally on each
//     ban and a small random jitter to break ties. O(C) per call.
//   - OptimizedEntropy: the same score plus buckets keyed by exact domain
//     size. A cell with a single state left is returned at once; otherwise
//     only the smallest non-empty bucket is scored.
//
// Every heuristic is also a wave.Observer: subscribe it to the grid so its
// bookkeeping follows every Ban and Observe. Initialize must be called, with
// the attempt's random source, before the first PickNextCell.
package heuristic
