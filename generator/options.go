package generator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tilewave/heuristic"
	"github.com/katalvlaran/tilewave/propagator"
)

// Option configures a Generator. Invalid options are recorded and surfaced
// by New as ErrOptionViolation.
type Option func(*options)

type options struct {
	propagator propagator.Propagator
	heuristic  heuristic.Heuristic
	seed       int64
	logger     *slog.Logger
	onStep     func(StepInfo)
	err        error
}

// defaultOptions: AC4 propagation, optimized entropy selection, DefaultSeed,
// a discarding logger and no step hook.
func defaultOptions() options {
	h, _ := heuristic.NewOptimizedEntropy()
	return options{
		propagator: propagator.NewAC4(),
		heuristic:  h,
		seed:       DefaultSeed,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		onStep:     func(StepInfo) {},
	}
}

// WithPropagator selects the arc-consistency algorithm.
func WithPropagator(p propagator.Propagator) Option {
	return func(o *options) {
		if p == nil {
			o.err = fmt.Errorf("%w: propagator is nil", ErrOptionViolation)
			return
		}
		o.propagator = p
	}
}

// WithHeuristic selects the cell-selection strategy.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.heuristic = h
	}
}

// WithSeed sets the seed of the first attempt (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger routes progress logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnStep registers a hook called after every Step that did work, for
// callers that render intermediate progress.
func WithOnStep(fn func(StepInfo)) Option {
	return func(o *options) {
		if fn != nil {
			o.onStep = fn
		}
	}
}
