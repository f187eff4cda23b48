package model

import (
	"errors"

	"github.com/katalvlaran/tilewave/wave"
)

// Sentinel errors returned by Build.
var (
	// ErrPatternSize indicates a pattern size below 2.
	ErrPatternSize = errors.New("model: pattern size must be at least 2")
	// ErrSampleTooSmall indicates a non-periodic sample smaller than the pattern.
	ErrSampleTooSmall = errors.New("model: non-periodic sample is smaller than the pattern size")
	// ErrEmptySample indicates a sample without rows or columns.
	ErrEmptySample = errors.New("model: sample must have at least one row and one column")
	// ErrDimensionMismatch indicates len(tiles) != width*height.
	ErrDimensionMismatch = errors.New("model: tile count does not match width*height")
)

// Options configures how patterns are learned from the sample.
type Options struct {
	// N is the side length of the square patterns (N ≥ 2).
	N int
	// Periodic wraps windows around the sample edges.
	Periodic bool
	// Symmetry adds the 8 rotations/reflections of every window.
	Symmetry bool
}

// DefaultOptions returns Options{N: 3, Periodic: true, Symmetry: false}.
func DefaultOptions() Options {
	return Options{
		N:        3,
		Periodic: true,
		Symmetry: false,
	}
}

// state is one distinct pattern with its learned weight and, per direction,
// the ids of the patterns that may sit next to it.
type state struct {
	data       []int
	weight     float64
	compatible [wave.DirectionCount][]int
}
