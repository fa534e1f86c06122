package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minemind/core"
	"github.com/hupe1980/minemind/stats"
)

// stubBoard lets tests hand the base arbitrary neighbor sets, decoupling
// inference tests from real board geometry.
type stubBoard struct {
	width, height int
	neighbors     map[core.Cell][]core.Cell
}

// Compile-time interface assertion.
var _ core.Board = (*stubBoard)(nil)

func newStubBoard() *stubBoard {
	return &stubBoard{width: 10, height: 10, neighbors: map[core.Cell][]core.Cell{}}
}

func (s *stubBoard) Width() int  { return s.width }
func (s *stubBoard) Height() int { return s.height }

func (s *stubBoard) Contains(cell core.Cell) bool {
	return cell.Row >= 0 && cell.Row < s.height && cell.Col >= 0 && cell.Col < s.width
}

func (s *stubBoard) Neighbors(cell core.Cell) []core.Cell {
	out := make([]core.Cell, len(s.neighbors[cell]))
	copy(out, s.neighbors[cell])
	return out
}

func (s *stubBoard) on(cell core.Cell, neighbors ...core.Cell) {
	s.neighbors[cell] = neighbors
}

func at(row, col int) core.Cell { return core.Cell{Row: row, Col: col} }

func TestBase_AddKnowledge_RevealedCellBecomesSafeMove(t *testing.T) {
	b := NewBase(newStubBoard())

	require.NoError(t, b.AddKnowledge(at(4, 4), 0))

	assert.True(t, b.Played(at(4, 4)))
	assert.True(t, b.KnownSafe(at(4, 4)))
	assert.NotContains(t, b.SafeMoves(), at(4, 4), "played cells leave the pool")
}

func TestBase_AddKnowledge_ZeroCountResolvesAllNeighborsSafe(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(1, 0), at(1, 1))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 0))

	assert.ElementsMatch(t, []core.Cell{at(1, 0), at(1, 1)}, b.SafeMoves())
	assert.Empty(t, b.Sentences(), "fully resolved sentences are retired")
}

func TestBase_AddKnowledge_AllMinesResolved(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(2, 0))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 1))

	assert.Equal(t, []core.Cell{at(2, 0)}, b.Mines())
	assert.Empty(t, b.Sentences())
}

func TestBase_SubsetInference(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(0, 0), at(0, 1))
	board.on(at(5, 7), at(0, 0), at(0, 1), at(0, 2))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 1))
	require.NoError(t, b.AddKnowledge(at(5, 7), 2))

	// {(0,0),(0,1)}=1 subset of {(0,0),(0,1),(0,2)}=2 derives {(0,2)}=1,
	// which immediately resolves to a mine.
	assert.Equal(t, []core.Cell{at(0, 2)}, b.Mines())
}

func TestBase_KnownMineAdjustsLaterReveals(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(2, 0))
	board.on(at(5, 7), at(2, 0), at(3, 0), at(3, 1))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 1)) // (2,0) is a mine

	// The second reveal counts the known mine; it must be excluded and the
	// count reduced, leaving {(3,0),(3,1)}=0.
	require.NoError(t, b.AddKnowledge(at(5, 7), 1))

	assert.True(t, b.KnownSafe(at(3, 0)))
	assert.True(t, b.KnownSafe(at(3, 1)))
}

func TestBase_ClosureIsIdempotent(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(0, 0), at(0, 1))
	board.on(at(5, 7), at(0, 0), at(0, 1), at(0, 2))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 1))
	require.NoError(t, b.AddKnowledge(at(5, 7), 2))

	sentences := b.Sentences()
	mines := b.Mines()
	safes := b.SafeMoves()

	require.NoError(t, b.runClosure())

	assert.Equal(t, sentences, b.Sentences(), "closed base derives no new sentences")
	assert.Equal(t, mines, b.Mines())
	assert.Equal(t, safes, b.SafeMoves())
}

func TestBase_Monotonicity(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(0, 0), at(0, 1))
	board.on(at(6, 6), at(1, 0))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 1))
	minesBefore := b.Mines()
	safeCount := len(b.SafeMoves()) + b.MoveCount()

	require.NoError(t, b.AddKnowledge(at(6, 6), 1))

	for _, m := range minesBefore {
		assert.True(t, b.KnownMine(m), "known mines never shrink")
	}
	assert.GreaterOrEqual(t, len(b.SafeMoves())+b.MoveCount(), safeCount)
	assert.Equal(t, 2, b.MoveCount())
}

func TestBase_AddKnowledge_RejectsRepeatedCell(t *testing.T) {
	b := NewBase(newStubBoard())

	require.NoError(t, b.AddKnowledge(at(1, 1), 0))
	err := b.AddKnowledge(at(1, 1), 0)

	assert.ErrorIs(t, err, core.ErrCellPlayed)
	assert.NoError(t, b.Err(), "precondition violations do not poison the base")
}

func TestBase_AddKnowledge_RejectsOutOfBounds(t *testing.T) {
	b := NewBase(newStubBoard())

	assert.ErrorIs(t, b.AddKnowledge(at(-1, 0), 0), core.ErrOutOfBounds)
	assert.ErrorIs(t, b.AddKnowledge(at(0, 10), 0), core.ErrOutOfBounds)
}

func TestBase_InconsistentCountPoisonsBase(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(0, 0), at(0, 1))
	board.on(at(5, 7), at(0, 0))
	b := NewBase(board)

	// Both neighbors proven safe...
	require.NoError(t, b.AddKnowledge(at(5, 5), 0))

	// ...then a reveal claims one of them is a mine.
	err := b.AddKnowledge(at(5, 7), 1)
	require.ErrorIs(t, err, core.ErrInconsistency)

	// The base is poisoned: every further operation fails the same way.
	assert.ErrorIs(t, b.Err(), core.ErrInconsistency)
	assert.ErrorIs(t, b.AddKnowledge(at(9, 9), 0), core.ErrInconsistency)
}

func TestBase_CollectorRecordsClosureMetrics(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(0, 0), at(0, 1))
	board.on(at(5, 7), at(0, 0), at(0, 1), at(0, 2))
	collector := stats.NewCollector()
	b := NewBase(board, func(o *Options) {
		o.Collector = collector
	})

	require.NoError(t, b.AddKnowledge(at(5, 5), 1))
	require.NoError(t, b.AddKnowledge(at(5, 7), 2))

	summary := collector.Summary()
	assert.Equal(t, 2, summary.Moves)
	assert.Positive(t, summary.IterationsTotal)
	assert.Positive(t, summary.ComparisonsTotal)
	assert.Positive(t, summary.InferencesTotal)
}

func TestBase_SafeMovesPreserveDiscoveryOrder(t *testing.T) {
	board := newStubBoard()
	board.on(at(5, 5), at(3, 3), at(2, 2))
	b := NewBase(board)

	require.NoError(t, b.AddKnowledge(at(5, 5), 0))

	// Resolution applies cells in row-major order regardless of the
	// neighbor ordering the board returned.
	assert.Equal(t, []core.Cell{at(2, 2), at(3, 3)}, b.SafeMoves())
}
