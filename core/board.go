package core

// Board is the narrow query surface the reasoning core consumes from the
// game board collaborator. Implementations own cell layout and mine
// placement; the core only ever asks for bounds and adjacency. Ground truth
// (which cells hold mines) deliberately stays outside this interface so the
// knowledge base can never peek at it.
type Board interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Contains reports whether the cell lies inside board bounds.
	Contains(cell Cell) bool
	// Neighbors returns the up-to-8 adjacent cells inside board bounds.
	Neighbors(cell Cell) []Cell
}
