package board

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hupe1980/minemind/core"
)

// Options configures grid generation.
type Options struct {
	// Rand supplies placement randomness; defaults to a time-seeded source.
	Rand *rand.Rand
	// SafeStart, when set, keeps the given cell mine-free so a simulated
	// game never loses on its opening move.
	SafeStart *core.Cell
}

// Grid is an immutable rectangular board with a fixed mine layout.
type Grid struct {
	width  int
	height int
	mines  map[core.Cell]struct{}
}

// Compile-time interface assertion.
var _ core.Board = (*Grid)(nil)

// NewGrid generates a width x height board with mineCount randomly placed
// mines.
func NewGrid(width, height, mineCount int, optFns ...func(o *Options)) (*Grid, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", width, height)
	}

	candidates := make([]core.Cell, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cell := core.Cell{Row: row, Col: col}
			if opts.SafeStart != nil && cell == *opts.SafeStart {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if mineCount < 0 || mineCount > len(candidates) {
		return nil, fmt.Errorf("mine count %d out of range for %dx%d board", mineCount, width, height)
	}

	opts.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	mines := make(map[core.Cell]struct{}, mineCount)
	for _, cell := range candidates[:mineCount] {
		mines[cell] = struct{}{}
	}

	return &Grid{width: width, height: height, mines: mines}, nil
}

// FromLayout parses a fixed board from rows of '*' (mine) and '.' (safe)
// characters. All rows must have equal length. Intended for tests and
// examples where the exact layout matters.
func FromLayout(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	width := len(rows[0])
	mines := make(map[core.Cell]struct{})
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ragged layout: row %d has %d cells, want %d", r, len(row), width)
		}
		for c, ch := range row {
			switch ch {
			case '*':
				mines[core.Cell{Row: r, Col: c}] = struct{}{}
			case '.':
			default:
				return nil, fmt.Errorf("invalid layout rune %q at row %d col %d", ch, r, c)
			}
		}
	}

	return &Grid{width: width, height: len(rows), mines: mines}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether the cell lies inside board bounds.
func (g *Grid) Contains(cell core.Cell) bool {
	return cell.Row >= 0 && cell.Row < g.height && cell.Col >= 0 && cell.Col < g.width
}

// Neighbors returns the up-to-8 adjacent cells inside board bounds, in
// row-major order.
func (g *Grid) Neighbors(cell core.Cell) []core.Cell {
	out := make([]core.Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := core.Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if g.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// IsMine reports ground truth for the cell. Simulation-only: the reasoning
// core never calls this.
func (g *Grid) IsMine(cell core.Cell) bool {
	_, ok := g.mines[cell]
	return ok
}

// AdjacentMines returns the number of mines among the cell's neighbors,
// the count a game loop passes to AddKnowledge on reveal.
func (g *Grid) AdjacentMines(cell core.Cell) int {
	count := 0
	for _, n := range g.Neighbors(cell) {
		if g.IsMine(n) {
			count++
		}
	}
	return count
}

// MineCount returns the total number of mines on the board.
func (g *Grid) MineCount() int { return len(g.mines) }

// SafeCount returns the number of mine-free cells, i.e. the number of
// moves a winning game makes.
func (g *Grid) SafeCount() int { return g.width*g.height - len(g.mines) }

// Mines returns all mine cells in row-major order.
func (g *Grid) Mines() []core.Cell {
	out := make([]core.Cell, 0, len(g.mines))
	for c := range g.mines {
		out = append(out, c)
	}
	return core.SortCells(out)
}

// String renders the layout in the FromLayout format, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.IsMine(core.Cell{Row: row, Col: col}) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		if row < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
