// SPDX-License-Identifier: MIT
//
// File: generator.go
// Role: orchestration of one generation attempt (Initialize → Step* → terminal).
// Policy:
//   - Contradicted and Collapsed are sticky until Reset.
//   - A Reset always builds a fresh grid; nothing survives a contradiction.

package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/tilewave/heuristic"
	"github.com/katalvlaran/tilewave/model"
	"github.com/katalvlaran/tilewave/propagator"
	"github.com/katalvlaran/tilewave/wave"
)

// Generator runs generation attempts for one model and output size.
type Generator struct {
	model         *model.Model
	width, height int
	propagator    propagator.Propagator
	heuristic     heuristic.Heuristic
	logger        *slog.Logger
	onStep        func(StepInfo)

	grid   *wave.Grid
	rng    *rand.Rand
	result Result
	err    error
	stats  Stats
}

// New validates its inputs and prepares the first attempt.
//
// Errors:
//   - ErrNilModel, ErrEmptyModel for unusable models.
//   - wave.ErrInvalidSize for non-positive output dimensions.
//   - ErrOptionViolation for invalid options.
func New(m *model.Model, width, height int, opts ...Option) (*Generator, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if m.StateCount() == 0 {
		return nil, ErrEmptyModel
	}
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Generator{
		model:      m,
		width:      width,
		height:     height,
		propagator: o.propagator,
		heuristic:  o.heuristic,
		logger:     o.logger,
		onStep:     o.onStep,
	}
	if err := g.Reset(o.seed); err != nil {
		return nil, err
	}

	return g, nil
}

// Reset discards the current grid and starts a new attempt with seed
// (0 ⇒ DefaultSeed): fresh grid, fresh random source, propagator and
// heuristic re-initialized, heuristic subscribed to the new grid.
// Complexity: O(C × S) plus the propagator's precompute.
func (g *Generator) Reset(seed int64) error {
	grid, err := wave.NewGrid(g.width, g.height)
	if err != nil {
		return err
	}
	grid.Initialize(g.model.StateCount(), g.model.SumWeights())

	g.grid = grid
	g.rng = rngFromSeed(seed)
	g.result = Collapsing
	g.err = nil
	g.stats = Stats{Seed: normalizeSeed(seed), ContradictionCell: -1}

	g.propagator.Initialize(grid, g.model)
	g.heuristic.Initialize(grid, g.model, g.rng)
	grid.Subscribe(g.heuristic)
	grid.Subscribe(wave.ObserverFuncs{
		Banned:   func(int, int) { g.stats.Bans++ },
		Observed: func(int, int) { g.stats.Observations++ },
	})

	g.logger.Debug("attempt initialized",
		"seed", g.stats.Seed,
		"width", g.width,
		"height", g.height,
		"states", g.model.StateCount())

	return nil
}

// Step performs one selection + collapse. Once the attempt is Collapsed or
// Contradicted, Step returns that result again without doing anything.
func (g *Generator) Step() Result {
	if g.result != Collapsing {
		return g.result
	}
	start := time.Now()
	defer func() { g.stats.Elapsed += time.Since(start) }()

	g.stats.Steps++
	cellID, ok := g.heuristic.PickNextCell(g.grid)
	switch {
	case !ok && g.grid.Collapsed():
		g.finish(Collapsed, nil)
	case !ok:
		// only contradicted cells are left unobserved
		g.finish(Contradicted, fmt.Errorf("%w: no selectable cell left", propagator.ErrContradiction))
	default:
		if err := g.propagator.Collapse(g.grid, g.model, cellID, g.rng); err != nil {
			g.finish(Contradicted, err)
		}
	}

	g.onStep(StepInfo{Step: g.stats.Steps, Cell: cellID, Result: g.result})
	return g.result
}

// Generate steps until the attempt is Collapsed or Contradicted. Every
// Collapsing step observes at least one cell, so at most C+1 steps run.
func (g *Generator) Generate() Result {
	for g.Step() == Collapsing {
	}
	return g.result
}

func (g *Generator) finish(r Result, err error) {
	g.result = r
	g.err = err
	if r == Contradicted {
		g.stats.ContradictionCell = g.contradictionCell()
	}
	g.logger.Info("attempt finished",
		"result", r.String(),
		"seed", g.stats.Seed,
		"steps", g.stats.Steps,
		"bans", g.stats.Bans,
		"error", err)
}

func (g *Generator) contradictionCell() int {
	for id := 0; id < g.grid.Len(); id++ {
		if g.grid.Cell(id).IsContradicted() {
			return id
		}
	}
	return -1
}

// Result returns the outcome of the last Step.
func (g *Generator) Result() Result { return g.result }

// Err returns the contradiction behind a Contradicted result, or nil.
func (g *Generator) Err() error { return g.err }

// IsContradiction reports whether err stems from a contradiction.
func IsContradiction(err error) bool { return errors.Is(err, propagator.ErrContradiction) }

// Grid exposes the current attempt's wave grid, read-only by convention.
func (g *Generator) Grid() *wave.Grid { return g.grid }

// Stats returns a snapshot of the current attempt's counters.
func (g *Generator) Stats() Stats { return g.stats }

// Width returns the output width.
func (g *Generator) Width() int { return g.width }

// Height returns the output height.
func (g *Generator) Height() int { return g.height }

// Observed returns the chosen state per cell (wave.Unobserved if open).
func (g *Generator) Observed() []int { return g.grid.Observed() }

// TileIDs maps every cell to the tile of its observed state, -1 if open.
func (g *Generator) TileIDs() []int {
	states := g.grid.Observed()
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = g.model.TileID(s)
	}
	return out
}
