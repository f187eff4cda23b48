// Package tilewave is a tile-synthesis engine: it learns which square
// patterns of a sample may sit next to each other and grows new outputs
// that respect those adjacencies, by constraint propagation over a grid of
// shrinking domains.
//
// 🚀 What is in the box?
//
//	A small, single-threaded, deterministic toolkit:
//		• Overlapping model: n×n windows, optional wrap and D4 symmetry
//		• Wave grid: bitset domains with cached counts and weight sums
//		• Propagators: AC3, AC2001, AC4 and a bounded recursive variant
//		• Heuristics: scanline, minimum entropy, bucketed entropy
//		• Generator: step/collapse loop with seeded retries
//
// Under the hood, everything is organized under these subpackages:
//
//	model/      — pattern extraction, weights, compatibility lists
//	wave/       — cells, grid topology, observer notifications
//	propagator/ — arc-consistency algorithms
//	heuristic/  — cell selection strategies
//	generator/  — orchestration, seeds, stats
//	tilemap/    — value ↔ tile id mapping, text grids
//	sample/     — built-in box sample, OpenSimplex terrain
//	runconfig/  — YAML run configuration
//	cmd/wfcbench — command-line runner
//
// Quick ASCII example, a 3×3 pattern and its right neighbor overlapping in
// two columns:
//
//	┌─┬─┬─┐
//	│a│b│c│d
//	│e│f│g│h
//	│i│j│k│l
//	└─┴─┴─┘
//
// Same (model, propagator, heuristic, seed) ⇒ same output.
//
//	go get github.com/katalvlaran/tilewave
package tilewave
