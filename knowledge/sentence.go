package knowledge

import (
	"fmt"
	"strings"

	"github.com/hupe1980/minemind/core"
)

// Sentence is a logical statement about the board: exactly Count of the
// referenced cells are mines. A Sentence is immutable after construction.
// MarkMine and MarkSafe return derived sentences instead of editing in
// place, so a closure pass can never invalidate the collection it is
// scanning. The zero value is the empty sentence.
type Sentence struct {
	cells []core.Cell // canonically sorted, no duplicates
	count int
}

// NewSentence builds a sentence over the given cells. Duplicates are
// collapsed and the cells are brought into canonical (row-major) order. It
// returns an error when count is negative or exceeds the number of distinct
// cells, since such a statement can never be true.
func NewSentence(cells []core.Cell, count int) (Sentence, error) {
	seen := make(map[core.Cell]struct{}, len(cells))
	uniq := make([]core.Cell, 0, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
	}
	core.SortCells(uniq)

	if count < 0 || count > len(uniq) {
		return Sentence{}, fmt.Errorf("%w: %d mines over %d cells", core.ErrInconsistency, count, len(uniq))
	}
	return Sentence{cells: uniq, count: count}, nil
}

// Cells returns a copy of the referenced cells in canonical order.
func (s Sentence) Cells() []core.Cell {
	out := make([]core.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Count returns the number of mines among the referenced cells.
func (s Sentence) Count() int { return s.count }

// Len returns the number of referenced cells.
func (s Sentence) Len() int { return len(s.cells) }

// IsEmpty reports whether the sentence references no cells. Empty sentences
// carry no information and are retired by the knowledge base.
func (s Sentence) IsEmpty() bool { return len(s.cells) == 0 }

// ContainsCell reports whether the sentence references the given cell.
func (s Sentence) ContainsCell(cell core.Cell) bool {
	for _, c := range s.cells {
		if c == cell {
			return true
		}
		if cell.Less(c) {
			return false
		}
	}
	return false
}

// KnownMines returns all cells proven to be mines by this sentence alone:
// the full cell set when the count equals the set size, otherwise nothing.
func (s Sentence) KnownMines() []core.Cell {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return s.Cells()
	}
	return nil
}

// KnownSafes returns all cells proven to be safe by this sentence alone:
// the full cell set when the count is zero, otherwise nothing.
func (s Sentence) KnownSafes() []core.Cell {
	if len(s.cells) > 0 && s.count == 0 {
		return s.Cells()
	}
	return nil
}

// MarkMine derives a new sentence with the given cell removed and the count
// decremented. If the cell is not referenced, the sentence is returned
// unchanged. Marking a mine in a sentence whose count is already zero would
// contradict the sentence and yields an inconsistency error.
func (s Sentence) MarkMine(cell core.Cell) (Sentence, error) {
	if !s.ContainsCell(cell) {
		return s, nil
	}
	if s.count == 0 {
		return Sentence{}, fmt.Errorf("%w: cell %s proven mine but %s allows none", core.ErrInconsistency, cell, s)
	}
	return Sentence{cells: s.without(cell), count: s.count - 1}, nil
}

// MarkSafe derives a new sentence with the given cell removed and the count
// unchanged. If the cell is not referenced, the sentence is returned
// unchanged. Marking a cell safe in a sentence that requires every
// referenced cell to be a mine yields an inconsistency error.
func (s Sentence) MarkSafe(cell core.Cell) (Sentence, error) {
	if !s.ContainsCell(cell) {
		return s, nil
	}
	if s.count == len(s.cells) {
		return Sentence{}, fmt.Errorf("%w: cell %s proven safe but %s requires all mines", core.ErrInconsistency, cell, s)
	}
	return Sentence{cells: s.without(cell), count: s.count}, nil
}

func (s Sentence) without(cell core.Cell) []core.Cell {
	out := make([]core.Cell, 0, len(s.cells)-1)
	for _, c := range s.cells {
		if c != cell {
			out = append(out, c)
		}
	}
	return out
}

// Equal reports structural equality: same cell set and same count, so
// identical deductions reached via different paths collapse to one.
func (s Sentence) Equal(other Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for i, c := range s.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Less defines a total order over sentences: by count, then by cell-set
// size, then lexicographically over the canonical cell order. Sorting with
// it makes inference processing deterministic.
func (s Sentence) Less(other Sentence) bool {
	if s.count != other.count {
		return s.count < other.count
	}
	if len(s.cells) != len(other.cells) {
		return len(s.cells) < len(other.cells)
	}
	for i, c := range s.cells {
		if c != other.cells[i] {
			return c.Less(other.cells[i])
		}
	}
	return false
}

// Key returns a stable string form usable as a map key for deduplication.
func (s Sentence) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", s.count)
	for i, c := range s.cells {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d,%d", c.Row, c.Col)
	}
	return b.String()
}

// SubsetOf reports whether every cell of s is also referenced by other.
// Both cell slices are in canonical order, so a single merge pass suffices.
func (s Sentence) SubsetOf(other Sentence) bool {
	if len(s.cells) > len(other.cells) {
		return false
	}
	j := 0
	for _, c := range s.cells {
		for j < len(other.cells) && other.cells[j].Less(c) {
			j++
		}
		if j >= len(other.cells) || other.cells[j] != c {
			return false
		}
		j++
	}
	return true
}

// Subtract derives the sentence covering the cells of s not referenced by
// sub, with sub's count removed. The caller must ensure sub is a subset of
// s; a resulting negative count reports an inconsistency.
func (s Sentence) Subtract(sub Sentence) (Sentence, error) {
	remaining := make([]core.Cell, 0, len(s.cells)-len(sub.cells))
	j := 0
	for _, c := range s.cells {
		for j < len(sub.cells) && sub.cells[j].Less(c) {
			j++
		}
		if j < len(sub.cells) && sub.cells[j] == c {
			j++
			continue
		}
		remaining = append(remaining, c)
	}
	return NewSentence(remaining, s.count-sub.count)
}

// String renders the sentence as "{(r,c) ...} = count".
func (s Sentence) String() string {
	parts := make([]string, len(s.cells))
	for i, c := range s.cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, " "), s.count)
}
