package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts notifications per kind.
type recorder struct {
	banned   [][2]int
	observed [][2]int
}

func (r *recorder) OnBanned(cellID, state int)   { r.banned = append(r.banned, [2]int{cellID, state}) }
func (r *recorder) OnObserved(cellID, state int) { r.observed = append(r.observed, [2]int{cellID, state}) }

func newTestGrid(t *testing.T, w, h, states int, weights []float64) (*Grid, *recorder) {
	t.Helper()
	g, err := NewGrid(w, h)
	require.NoError(t, err)
	total := 0.0
	for _, wt := range weights {
		total += wt
	}
	require.Len(t, weights, states)
	g.Initialize(states, total)
	rec := &recorder{}
	g.Subscribe(rec)
	return g, rec
}

func TestNewGrid_InvalidSize(t *testing.T) {
	_, err := NewGrid(0, 3)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewGrid(3, -1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

// TestNeighborsOf checks corner, edge and interior neighborhoods on a 3×3 grid.
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestNeighborsOf(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	require.Len(t, g.NeighborsOf(0), 2)
	require.Len(t, g.NeighborsOf(1), 3)
	require.Len(t, g.NeighborsOf(4), 4)

	got := map[Direction]int{}
	for _, n := range g.NeighborsOf(4) {
		got[n.Dir] = n.ID
	}
	assert.Equal(t, map[Direction]int{Left: 3, Down: 7, Right: 5, Up: 1}, got)

	for _, n := range g.NeighborsOf(8) {
		assert.Contains(t, []Direction{Left, Up}, n.Dir)
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		x, y := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, 0, x+ox)
		assert.Equal(t, 0, y+oy)
	}
	assert.Equal(t, "invalid", Direction(9).String())
}

func TestInitialize_FullDomain(t *testing.T) {
	weights := make([]float64, 70)
	for i := range weights {
		weights[i] = 1
	}
	g, _ := newTestGrid(t, 2, 2, 70, weights)
	c := g.Cell(3)
	require.Equal(t, 70, c.DomainCount())
	require.Equal(t, 70, c.popcount())
	require.InDelta(t, 70.0, c.SumWeights(), 1e-12)
	require.True(t, c.Has(69))
	require.False(t, c.Has(70))
	require.False(t, c.IsObserved())
	require.Len(t, c.States(), 70)
}

func TestBan_Idempotent(t *testing.T) {
	g, rec := newTestGrid(t, 2, 1, 3, []float64{1, 2, 3})

	require.True(t, g.Ban(0, 1, 2))
	require.False(t, g.Ban(0, 1, 2), "second ban of the same state must fail")
	require.Len(t, rec.banned, 1, "failed ban must not notify")

	c := g.Cell(0)
	require.Equal(t, 2, c.DomainCount())
	require.InDelta(t, 4.0, c.SumWeights(), 1e-12)
	require.Equal(t, []int{0, 2}, c.States())
}

func TestBan_WeightInvariantAndMonotonicity(t *testing.T) {
	weights := []float64{0.5, 1, 1.5, 2, 2.5}
	g, _ := newTestGrid(t, 1, 1, len(weights), weights)
	c := g.Cell(0)

	prev := c.DomainCount()
	for _, s := range []int{3, 0, 4, 1} {
		require.True(t, g.Ban(0, s, weights[s]))
		require.LessOrEqual(t, c.DomainCount(), prev)
		prev = c.DomainCount()

		want := 0.0
		c.Each(func(st int) { want += weights[st] })
		require.InDelta(t, want, c.SumWeights(), 1e-9)
		require.Equal(t, c.popcount(), c.DomainCount())
	}

	require.True(t, g.Ban(0, 2, weights[2]))
	require.True(t, c.IsContradicted())
	require.Zero(t, c.SumWeights())
}

func TestBan_ClampsUnderflow(t *testing.T) {
	g, _ := newTestGrid(t, 1, 1, 2, []float64{0.1, 0.2})
	require.True(t, g.Ban(0, 0, 0.1))
	require.True(t, g.Ban(0, 1, 0.2+1e-12))
	require.Equal(t, 0.0, g.Cell(0).SumWeights())
}

func TestObserve(t *testing.T) {
	g, rec := newTestGrid(t, 2, 2, 4, []float64{1, 1, 1, 1})

	require.False(t, g.Observe(1, 7, 1), "state outside the universe")
	require.True(t, g.Observe(1, 2, 1))
	require.False(t, g.Observe(1, 3, 1), "already observed")
	require.Equal(t, [][2]int{{1, 2}}, rec.observed)

	c := g.Cell(1)
	require.Equal(t, 2, c.Observed())
	require.Equal(t, 1, c.DomainCount())
	require.Equal(t, []int{2}, c.States())
	require.InDelta(t, 1.0, c.SumWeights(), 1e-12)

	require.False(t, g.Ban(1, 2, 1), "observed cells are frozen")
	require.Empty(t, rec.banned)
}

func TestObserve_BannedState(t *testing.T) {
	g, _ := newTestGrid(t, 1, 1, 3, []float64{1, 1, 1})
	require.True(t, g.Ban(0, 1, 1))
	require.False(t, g.Observe(0, 1, 1))
	require.False(t, g.Cell(0).IsObserved())
}

func TestObservedAndCollapsed(t *testing.T) {
	g, _ := newTestGrid(t, 2, 1, 2, []float64{1, 1})
	require.Equal(t, []int{Unobserved, Unobserved}, g.Observed())
	require.False(t, g.Collapsed())
	g.Observe(0, 0, 1)
	g.Observe(1, 1, 1)
	require.Equal(t, []int{0, 1}, g.Observed())
	require.True(t, g.Collapsed())
}

func TestObserverFuncs(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)
	g.Initialize(2, 2)

	var bans, obs int
	g.Subscribe(ObserverFuncs{Banned: func(int, int) { bans++ }})
	g.Subscribe(ObserverFuncs{Observed: func(int, int) { obs++ }})
	g.Subscribe(nil)

	g.Ban(0, 0, 1)
	g.Observe(0, 1, 1)
	assert.Equal(t, 1, bans)
	assert.Equal(t, 1, obs)
}
