// Package board provides an in-memory Minesweeper board implementing the
// core.Board query interface, used by the runner and by test harnesses.
//
// The reasoning core never sees mine positions; the ground-truth accessors
// (IsMine, AdjacentMines) exist so a simulated game loop can produce the
// neighbor-count argument that AddKnowledge expects. Mine placement draws
// from an injected random source for reproducible games.
package board
