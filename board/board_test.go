package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minemind/core"
)

func at(row, col int) core.Cell { return core.Cell{Row: row, Col: col} }

func TestNewGrid_PlacesRequestedMines(t *testing.T) {
	g, err := NewGrid(8, 6, 10, func(o *Options) {
		o.Rand = rand.New(rand.NewSource(1))
	})
	require.NoError(t, err)

	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 6, g.Height())
	assert.Equal(t, 10, g.MineCount())
	assert.Equal(t, 8*6-10, g.SafeCount())
	assert.Len(t, g.Mines(), 10)
}

func TestNewGrid_SeededGenerationIsReproducible(t *testing.T) {
	a, err := NewGrid(9, 9, 12, func(o *Options) {
		o.Rand = rand.New(rand.NewSource(99))
	})
	require.NoError(t, err)
	b, err := NewGrid(9, 9, 12, func(o *Options) {
		o.Rand = rand.New(rand.NewSource(99))
	})
	require.NoError(t, err)

	assert.Equal(t, a.Mines(), b.Mines())
}

func TestNewGrid_SafeStartStaysClear(t *testing.T) {
	start := at(0, 0)
	for seed := int64(0); seed < 20; seed++ {
		g, err := NewGrid(4, 4, 15, func(o *Options) {
			o.Rand = rand.New(rand.NewSource(seed))
			o.SafeStart = &start
		})
		require.NoError(t, err)
		assert.False(t, g.IsMine(start))
	}
}

func TestNewGrid_RejectsInvalidArguments(t *testing.T) {
	_, err := NewGrid(0, 5, 1)
	assert.Error(t, err)

	_, err = NewGrid(3, 3, 10)
	assert.Error(t, err, "more mines than cells")

	_, err = NewGrid(3, 3, -1)
	assert.Error(t, err)
}

func TestFromLayout(t *testing.T) {
	g, err := FromLayout(
		"*.",
		".*",
	)
	require.NoError(t, err)

	assert.True(t, g.IsMine(at(0, 0)))
	assert.False(t, g.IsMine(at(0, 1)))
	assert.True(t, g.IsMine(at(1, 1)))
	assert.Equal(t, 2, g.MineCount())
	assert.Equal(t, "*.\n.*", g.String())
}

func TestFromLayout_RejectsBadInput(t *testing.T) {
	_, err := FromLayout()
	assert.Error(t, err)

	_, err = FromLayout("..", "...")
	assert.Error(t, err, "ragged rows")

	_, err = FromLayout(".x")
	assert.Error(t, err, "unknown rune")
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := FromLayout(
		"...",
		"...",
		"...",
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []core.Cell{at(0, 1), at(1, 0), at(1, 1)}, g.Neighbors(at(0, 0)), "corner has 3 neighbors")
	assert.Len(t, g.Neighbors(at(0, 1)), 5, "edge has 5 neighbors")
	assert.Len(t, g.Neighbors(at(1, 1)), 8, "interior has 8 neighbors")
}

func TestGrid_AdjacentMines(t *testing.T) {
	g, err := FromLayout(
		"*.*",
		"...",
		"..*",
	)
	require.NoError(t, err)

	assert.Equal(t, 2, g.AdjacentMines(at(0, 1)))
	assert.Equal(t, 3, g.AdjacentMines(at(1, 1)))
	assert.Equal(t, 0, g.AdjacentMines(at(2, 0)))
}

func TestGrid_Contains(t *testing.T) {
	g, err := FromLayout("..", "..")
	require.NoError(t, err)

	assert.True(t, g.Contains(at(1, 1)))
	assert.False(t, g.Contains(at(2, 0)))
	assert.False(t, g.Contains(at(0, -1)))
}
