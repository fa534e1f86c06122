package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_Less(t *testing.T) {
	assert.True(t, Cell{Row: 0, Col: 5}.Less(Cell{Row: 1, Col: 0}))
	assert.True(t, Cell{Row: 2, Col: 1}.Less(Cell{Row: 2, Col: 3}))
	assert.False(t, Cell{Row: 2, Col: 3}.Less(Cell{Row: 2, Col: 3}))
	assert.False(t, Cell{Row: 3, Col: 0}.Less(Cell{Row: 2, Col: 9}))
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "(4,7)", Cell{Row: 4, Col: 7}.String())
}

func TestSortCells(t *testing.T) {
	cells := []Cell{
		{Row: 1, Col: 1},
		{Row: 0, Col: 2},
		{Row: 1, Col: 0},
		{Row: 0, Col: 0},
	}

	sorted := SortCells(cells)

	assert.Equal(t, []Cell{
		{Row: 0, Col: 0},
		{Row: 0, Col: 2},
		{Row: 1, Col: 0},
		{Row: 1, Col: 1},
	}, sorted)
}
