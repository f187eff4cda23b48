package heuristic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/model"
	"github.com/katalvlaran/tilewave/propagator"
	"github.com/katalvlaran/tilewave/wave"
)

var ringSample = []int{
	0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 0,
	0, 1, 0, 0, 1, 0,
	0, 1, 0, 0, 1, 0,
	0, 1, 1, 1, 1, 0,
	0, 0, 0, 0, 0, 0,
}

func ringModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.Build(ringSample, 6, 6, model.Options{N: 3, Periodic: true})
	require.NoError(t, err)
	return m
}

// uniformModel has 16 patterns of weight 1: every 2×2 window of a 4×4
// sample of distinct tiles.
func uniformModel(t *testing.T) *model.Model {
	t.Helper()
	tiles := make([]int, 16)
	for i := range tiles {
		tiles[i] = i
	}
	m, err := model.Build(tiles, 4, 4, model.Options{N: 2, Periodic: true})
	require.NoError(t, err)
	require.Equal(t, 16, m.StateCount())
	return m
}

// setup creates a grid for m and subscribes h to it.
func setup(t *testing.T, m *model.Model, w, h int, heur Heuristic, seed int64) (*wave.Grid, *rand.Rand) {
	t.Helper()
	g, err := wave.NewGrid(w, h)
	require.NoError(t, err)
	g.Initialize(m.StateCount(), m.SumWeights())
	rng := rand.New(rand.NewSource(seed))
	heur.Initialize(g, m, rng)
	g.Subscribe(heur)
	return g, rng
}

func TestScanline_StrictRowMajor(t *testing.T) {
	m := ringModel(t)
	sc := NewScanline()
	g, rng := setup(t, m, 10, 10, sc, 11)
	p := propagator.NewAC4()
	p.Initialize(g, m)

	last := -1
	for {
		id, ok := sc.PickNextCell(g)
		if !ok {
			break
		}
		require.Greater(t, id, last)
		require.False(t, g.Cell(id).IsObserved())
		last = id
		if err := p.Collapse(g, m, id, rng); err != nil {
			require.ErrorIs(t, err, propagator.ErrContradiction)
			return
		}
	}
	require.True(t, g.Collapsed())

	_, ok := sc.PickNextCell(g)
	require.False(t, ok, "scanline never rewinds on its own")
}

func TestScanline_SkipsObserved(t *testing.T) {
	m := uniformModel(t)
	sc := NewScanline()
	g, _ := setup(t, m, 3, 1, sc, 1)
	g.Observe(0, 0, m.Weight(0))
	g.Observe(1, 0, m.Weight(0))

	id, ok := sc.PickNextCell(g)
	require.True(t, ok)
	require.Equal(t, 2, id)

	sc.Initialize(g, m, nil)
	id, _ = sc.PickNextCell(g)
	require.Equal(t, 2, id)
}

// checkBuckets asserts that buckets partition exactly the uncollapsed cells
// by their current domain size.
func checkBuckets(t *testing.T, h *OptimizedEntropy, g *wave.Grid) {
	t.Helper()
	seen := make(map[int]int)
	for k, list := range h.buckets {
		for i, id := range list {
			seen[id]++
			require.Equal(t, k, g.Cell(id).DomainCount(), "cell %d in bucket %d", id, k)
			require.Equal(t, i, h.position[id])
		}
	}
	for id := 0; id < g.Len(); id++ {
		cell := g.Cell(id)
		if cell.IsObserved() {
			require.Zero(t, seen[id], "observed cell %d is bucketed", id)
			require.Equal(t, notBucketed, h.position[id])
			continue
		}
		require.Equal(t, 1, seen[id], "cell %d", id)
	}
}

func TestOptimizedEntropy_BucketPartition(t *testing.T) {
	m := ringModel(t)
	for _, seed := range []int64{1, 5, 9} {
		h, err := NewOptimizedEntropy()
		require.NoError(t, err)
		g, rng := setup(t, m, 10, 10, h, seed)
		p := propagator.NewAC3()
		p.Initialize(g, m)
		checkBuckets(t, h, g)

		for {
			id, ok := h.PickNextCell(g)
			if !ok {
				break
			}
			err := p.Collapse(g, m, id, rng)
			checkBuckets(t, h, g)
			if err != nil {
				break
			}
		}
	}
}

func TestOptimizedEntropy_ForcedCellFirst(t *testing.T) {
	m := uniformModel(t)
	h, err := NewOptimizedEntropy(WithJitter(0))
	require.NoError(t, err)
	g, _ := setup(t, m, 4, 4, h, 1)

	// cell 9 keeps two states, cell 13 only one
	for s := 0; s < 14; s++ {
		g.Ban(9, s, m.Weight(s))
	}
	for s := 1; s < 16; s++ {
		g.Ban(13, s, m.Weight(s))
	}
	id, ok := h.PickNextCell(g)
	require.True(t, ok)
	require.Equal(t, 13, id)

	g.Observe(13, 0, m.Weight(0))
	id, _ = h.PickNextCell(g)
	require.Equal(t, 9, id)
}

func TestEntropyTracking(t *testing.T) {
	m := ringModel(t)
	h, err := NewMinEntropy(WithJitter(0))
	require.NoError(t, err)
	g, rng := setup(t, m, 6, 6, h, 3)
	p := propagator.NewAC2001()
	p.Initialize(g, m)
	require.NoError(t, p.Collapse(g, m, 14, rng))

	for id := 0; id < g.Len(); id++ {
		cell := g.Cell(id)
		if cell.IsObserved() {
			continue
		}
		sumW, sumWlw := 0.0, 0.0
		cell.Each(func(s int) {
			w := m.Weight(s)
			sumW += w
			sumWlw += w * math.Log(w)
		})
		want := math.Log(sumW) - sumWlw/sumW
		require.InDelta(t, want, h.Entropy(g, id), 1e-9, "cell %d", id)
	}
}

func TestMinEntropy_UniformFullDomain(t *testing.T) {
	m := uniformModel(t)
	h, err := NewMinEntropy(WithJitter(0))
	require.NoError(t, err)
	g, _ := setup(t, m, 2, 2, h, 1)
	require.InDelta(t, math.Log(16), h.Entropy(g, 3), 1e-12)
}

// TestCrossHeuristicAgreement drives both entropy heuristics over the same
// ban sequence with zero jitter and requires the same pick each time.
func TestCrossHeuristicAgreement(t *testing.T) {
	m := uniformModel(t)
	me, err := NewMinEntropy(WithJitter(0))
	require.NoError(t, err)
	oe, err := NewOptimizedEntropy(WithJitter(0))
	require.NoError(t, err)

	g, err := wave.NewGrid(5, 5)
	require.NoError(t, err)
	g.Initialize(m.StateCount(), m.SumWeights())
	me.Initialize(g, m, nil)
	oe.Initialize(g, m, nil)
	g.Subscribe(me)
	g.Subscribe(oe)

	agree := func() int {
		a, okA := me.PickNextCell(g)
		b, okB := oe.PickNextCell(g)
		require.Equal(t, okA, okB)
		require.Equal(t, a, b)
		return a
	}

	require.Equal(t, 0, agree())

	for s := 0; s < 12; s++ {
		g.Ban(17, s, m.Weight(s))
	}
	require.Equal(t, 17, agree())

	for s := 0; s < 14; s++ {
		g.Ban(6, s, m.Weight(s))
	}
	require.Equal(t, 6, agree())

	g.Observe(6, 15, m.Weight(15))
	require.Equal(t, 17, agree())
}

// Several forced cells, or several equal scores in one bucket: both entropy
// heuristics settle on the lowest id.
func TestCrossHeuristicAgreement_Ties(t *testing.T) {
	m := uniformModel(t)
	me, err := NewMinEntropy(WithJitter(0))
	require.NoError(t, err)
	oe, err := NewOptimizedEntropy(WithJitter(0))
	require.NoError(t, err)

	g, err := wave.NewGrid(5, 5)
	require.NoError(t, err)
	g.Initialize(m.StateCount(), m.SumWeights())
	me.Initialize(g, m, nil)
	oe.Initialize(g, m, nil)
	g.Subscribe(me)
	g.Subscribe(oe)

	picks := func() (int, int) {
		a, okA := me.PickNextCell(g)
		b, okB := oe.PickNextCell(g)
		require.True(t, okA)
		require.True(t, okB)
		return a, b
	}

	// equal-size cells reach their bucket in reverse id order
	g.Ban(20, 0, m.Weight(0))
	g.Ban(3, 0, m.Weight(0))
	a, b := picks()
	assert.Equal(t, 3, a)
	assert.Equal(t, 3, b)

	// two singletons, the higher id forced first
	for s := 0; s < 15; s++ {
		g.Ban(17, s, m.Weight(s))
	}
	for s := 0; s < 15; s++ {
		g.Ban(6, s, m.Weight(s))
	}
	a, b = picks()
	assert.Equal(t, 6, a)
	assert.Equal(t, 6, b)
}

func TestOptionsAndByName(t *testing.T) {
	_, err := NewMinEntropy(WithJitter(-1))
	require.ErrorIs(t, err, ErrOptionViolation)
	_, err = NewOptimizedEntropy(WithJitter(-0.5))
	require.ErrorIs(t, err, ErrOptionViolation)

	for name, want := range map[string]any{
		"scanline":    &Scanline{},
		"entropy":     &MinEntropy{},
		"min-entropy": &MinEntropy{},
		"optimized":   &OptimizedEntropy{},
	} {
		h, err := ByName(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, h, name)
	}
	_, err = ByName("random")
	require.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestUninitialized(t *testing.T) {
	g, err := wave.NewGrid(2, 2)
	require.NoError(t, err)
	g.Initialize(2, 2)

	me, _ := NewMinEntropy()
	_, ok := me.PickNextCell(g)
	require.False(t, ok)
	me.OnBanned(0, 0)

	oe, _ := NewOptimizedEntropy()
	_, ok = oe.PickNextCell(g)
	require.False(t, ok)
	oe.OnObserved(0, 0)
}
