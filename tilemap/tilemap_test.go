package tilemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/tilemap"
)

func TestMapping_FirstSeenIDs(t *testing.T) {
	grid := []rune("ab?bca")
	m := tilemap.New(grid, '?')

	require.Equal(t, 3, m.Len())
	assert.Equal(t, []int{0, 1, -1, 1, 2, 0}, m.ToTileIDs(grid))
	assert.Equal(t, 'c', m.Value(2))
	assert.Equal(t, '?', m.Value(tilemap.Unknown))
	assert.Equal(t, '?', m.Value(3))
	assert.Equal(t, '?', m.Unknown())
	assert.Equal(t, tilemap.Unknown, m.ID('z'), "out of vocabulary")
}

func TestMapping_RoundTrip(t *testing.T) {
	grid := []string{"grass", "water", "sand", "water", "grass"}
	m := tilemap.New(grid, "")
	ids := m.ToTileIDs(grid)
	assert.Equal(t, grid, m.ToBase(ids))

	// unobserved cells come back as the unknown value
	assert.Equal(t, []string{"sand", ""}, m.ToBase([]int{2, -1}))
}

func TestParseRunes(t *testing.T) {
	grid, w, h := tilemap.ParseRunes("ab\r\nc\n╔═╗", '.')
	require.Equal(t, 3, w)
	require.Equal(t, 3, h)
	assert.Equal(t, []rune("ab.c..╔═╗"), grid)

	grid, w, h = tilemap.ParseRunes("", ' ')
	assert.Equal(t, 0, w)
	assert.Equal(t, 1, h)
	assert.Empty(t, grid)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "ab\ncd", tilemap.Render([]rune("abcd"), 2, 2, 1))
	assert.Equal(t, "1  10 \n-1 2  ", tilemap.Render([]int{1, 10, -1, 2}, 2, 2, 3))
	assert.Equal(t, "xy", tilemap.Render([]string{"x", "y"}, 2, 1, 0))
}
