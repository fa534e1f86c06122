package core

import (
	"fmt"
	"sort"
)

// Cell identifies a single board position by row and column. It is a plain
// value type so it can be used directly as a map key; ordering is row-major
// (top-left first), which gives sorting-based strategies deterministic
// semantics.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less reports whether c orders before other in row-major order.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// String returns the cell in "(row,col)" form for logs and error messages.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// SortCells sorts the slice in place into row-major order and returns it for
// chaining.
func SortCells(cells []Cell) []Cell {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
