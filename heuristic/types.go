package heuristic

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tilewave/wave"
)

// Sentinel errors for heuristic construction.
var (
	// ErrUnknownHeuristic is returned by ByName.
	ErrUnknownHeuristic = errors.New("heuristic: unknown strategy")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heuristic: invalid option supplied")
)

// DefaultJitter bounds the random noise added to entropy scores.
const DefaultJitter = 1e-4

// Weights is the part of a model the heuristics read. *model.Model
// satisfies it.
type Weights interface {
	StateCount() int
	Weight(state int) float64
}

// Heuristic selects the next cell to collapse.
type Heuristic interface {
	wave.Observer
	// Initialize wires the per-attempt state. rng is shared with the rest of
	// the run and must not be re-seeded.
	Initialize(grid *wave.Grid, w Weights, rng *rand.Rand)
	// PickNextCell returns the next cell id, or false once nothing is left.
	PickNextCell(grid *wave.Grid) (int, bool)
}

// Option configures the entropy heuristics.
type Option func(*options)

type options struct {
	jitter float64
	err    error
}

func defaultOptions() options {
	return options{jitter: DefaultJitter}
}

// WithJitter sets the upper bound of the tie-breaking noise.
//
//	j > 0:  noise drawn uniformly from [0, j)
//	j == 0: no noise, no randomness consumed
//	j < 0:  invalid → ErrOptionViolation
func WithJitter(j float64) Option {
	return func(o *options) {
		if j < 0 {
			o.err = fmt.Errorf("%w: jitter cannot be negative (%g)", ErrOptionViolation, j)
			return
		}
		o.jitter = j
	}
}

func applyOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o, o.err
}

// ByName returns a fresh heuristic: "scanline", "entropy"/"min-entropy" or
// "optimized"/"optimized-entropy".
func ByName(name string, opts ...Option) (Heuristic, error) {
	var (
		h   Heuristic
		err error
	)
	switch strings.ToLower(name) {
	case "scanline":
		h = NewScanline()
	case "entropy", "min-entropy", "minentropy":
		h, err = NewMinEntropy(opts...)
	case "optimized", "optimized-entropy", "optimizedentropy":
		h, err = NewOptimizedEntropy(opts...)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}
