package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minemind/core"
)

func at(row, col int) core.Cell { return core.Cell{Row: row, Col: col} }

// pool in discovery order: (3,3) was found first, (0,1) last.
func discoveryPool() []core.Cell {
	return []core.Cell{at(3, 3), at(1, 2), at(0, 1)}
}

func TestNew_KnownStrategies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, name := range Names() {
		sel, err := New(name, rng)
		require.NoError(t, err, name)
		assert.Equal(t, name, sel.Name())
	}
}

func TestNew_UnknownStrategyRejected(t *testing.T) {
	_, err := New("tarot", nil)
	assert.Error(t, err)
}

func TestFIFO_SelectsEarliestDiscovered(t *testing.T) {
	cell, ok := FIFO{}.Select(discoveryPool())

	require.True(t, ok)
	assert.Equal(t, at(3, 3), cell)
}

func TestLIFO_SelectsLatestDiscovered(t *testing.T) {
	cell, ok := LIFO{}.Select(discoveryPool())

	require.True(t, ok)
	assert.Equal(t, at(0, 1), cell)
}

func TestSorted_SelectsRowMajorMinimum(t *testing.T) {
	cell, ok := Sorted{}.Select(discoveryPool())

	require.True(t, ok)
	assert.Equal(t, at(0, 1), cell)
}

func TestRandom_SelectsFromPool(t *testing.T) {
	sel := NewRandom(rand.New(rand.NewSource(42)))

	cell, ok := sel.Select(discoveryPool())

	require.True(t, ok)
	assert.Contains(t, discoveryPool(), cell)
}

func TestSelectors_EmptyPool(t *testing.T) {
	selectors := []Selector{FIFO{}, LIFO{}, Sorted{}, NewRandom(rand.New(rand.NewSource(1)))}

	for _, sel := range selectors {
		_, ok := sel.Select(nil)
		assert.False(t, ok, sel.Name())
	}
}

func TestSelectors_AreDeterministicAndPure(t *testing.T) {
	pool := discoveryPool()

	for _, sel := range []Selector{FIFO{}, Sorted{}} {
		first, ok := sel.Select(pool)
		require.True(t, ok)

		for i := 0; i < 10; i++ {
			again, ok := sel.Select(pool)
			require.True(t, ok)
			assert.Equal(t, first, again, sel.Name())
		}
		assert.Equal(t, discoveryPool(), pool, "%s must not mutate the pool", sel.Name())
	}
}
