package core

import "errors"

var (
	// ErrCellPlayed is returned when knowledge is added for a cell that has
	// already been played. The caller violated a precondition; the knowledge
	// base is left untouched.
	ErrCellPlayed = errors.New("cell already played")

	// ErrOutOfBounds is returned when a cell lies outside the board.
	ErrOutOfBounds = errors.New("cell out of board bounds")

	// ErrInconsistency signals that inference derived an impossible
	// statement (a negative mine count, a count exceeding its cell set, or a
	// cell proven both safe and mine). This means the supplied counts
	// contradict each other; the knowledge base refuses all further
	// operations once it occurs.
	ErrInconsistency = errors.New("inconsistent knowledge")

	// ErrNoMove signals that a selector was asked for a move and none is
	// available. Callers decide whether this means victory, defeat or a
	// board generation bug.
	ErrNoMove = errors.New("no move available")
)
