package knowledge

import (
	"fmt"
	"sort"

	"github.com/hupe1980/minemind/core"
	"github.com/hupe1980/minemind/logging"
	"github.com/hupe1980/minemind/stats"
)

// Options holds dependency overrides passed to NewBase().
type Options struct {
	// Logger receives inference progress; defaults to NoOp.
	Logger logging.Logger
	// Collector records closure metrics; nil disables collection.
	Collector *stats.Collector
}

// Base is the knowledge base for one game: the accumulated sentences plus
// the derived sets of known mines and known safe cells. All derived sets
// grow monotonically; a resolved cell is pruned from every sentence the
// moment it is discovered, so sentences never carry stale references.
//
// Base has exactly one owner and is not safe for concurrent use. Once an
// inconsistency is detected the base is poisoned: every further operation
// returns the original error, because no deduction made from contradictory
// input can be trusted.
type Base struct {
	board     core.Board
	logger    logging.Logger
	collector *stats.Collector

	movesMade  map[core.Cell]struct{}
	knownMines map[core.Cell]struct{}
	knownSafes map[core.Cell]struct{}
	safeOrder  []core.Cell // knownSafes in discovery order, feeds FIFO/LIFO pools

	sentences []Sentence
	seen      map[string]struct{} // every sentence ever held, resolved or not

	failure error
}

// NewBase constructs an empty knowledge base over the given board.
func NewBase(board core.Board, optFns ...func(o *Options)) *Base {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Base{
		board:      board,
		logger:     logging.OrNoOp(opts.Logger),
		collector:  opts.Collector,
		movesMade:  make(map[core.Cell]struct{}),
		knownMines: make(map[core.Cell]struct{}),
		knownSafes: make(map[core.Cell]struct{}),
		seen:       make(map[string]struct{}),
	}
}

// AddKnowledge records that cell was revealed with the given number of
// adjacent mines and runs inference to its fixed point.
//
// Preconditions: cell lies inside the board and has not been played before;
// violations are rejected with ErrOutOfBounds or ErrCellPlayed and leave
// the base untouched. A count that contradicts prior knowledge surfaces as
// ErrInconsistency and poisons the base.
func (b *Base) AddKnowledge(cell core.Cell, count int) error {
	if b.failure != nil {
		return b.failure
	}
	if !b.board.Contains(cell) {
		return fmt.Errorf("%w: %s", core.ErrOutOfBounds, cell)
	}
	if _, ok := b.movesMade[cell]; ok {
		return fmt.Errorf("%w: %s", core.ErrCellPlayed, cell)
	}

	b.collector.BeginMove()

	b.movesMade[cell] = struct{}{}
	if err := b.applySafe(cell); err != nil {
		return b.fail(err)
	}

	// Build the new sentence from the undetermined neighbors, folding
	// already-known mines into the count.
	remaining := make([]core.Cell, 0, 8)
	for _, n := range b.board.Neighbors(cell) {
		if _, ok := b.knownSafes[n]; ok {
			continue
		}
		if _, ok := b.knownMines[n]; ok {
			count--
			continue
		}
		remaining = append(remaining, n)
	}

	if len(remaining) > 0 {
		s, err := NewSentence(remaining, count)
		if err != nil {
			return b.fail(fmt.Errorf("reveal %s: %w", cell, err))
		}
		b.addSentence(s)
	} else if count != 0 {
		return b.fail(fmt.Errorf("%w: reveal %s reports %d mines but all neighbors are resolved", core.ErrInconsistency, cell, count))
	}

	if err := b.runClosure(); err != nil {
		return b.fail(err)
	}
	return nil
}

// runClosure alternates trivial resolution and subset inference until one
// full pass learns nothing new. Termination is guaranteed: the set of
// sentences ever held only grows and is bounded by the finite board.
func (b *Base) runClosure() error {
	iterations := 0

	for changed := true; changed; {
		changed = false
		iterations++

		// Gather every cell any sentence can resolve on its own, then
		// apply the marks across the whole base.
		resolvedSafe := make(map[core.Cell]struct{})
		resolvedMine := make(map[core.Cell]struct{})
		for _, s := range b.sentences {
			for _, c := range s.KnownSafes() {
				resolvedSafe[c] = struct{}{}
			}
			for _, c := range s.KnownMines() {
				resolvedMine[c] = struct{}{}
			}
		}

		if len(resolvedSafe) > 0 || len(resolvedMine) > 0 {
			changed = true
		}
		for _, c := range sortedCells(resolvedSafe) {
			if err := b.applySafe(c); err != nil {
				return err
			}
		}
		for _, c := range sortedCells(resolvedMine) {
			if err := b.applyMine(c); err != nil {
				return err
			}
		}

		b.compact()

		derived, err := b.inferSubsets()
		if err != nil {
			return err
		}
		for _, s := range derived {
			if b.addSentence(s) {
				changed = true
			}
		}
	}

	b.collector.RecordClosure(iterations)
	b.logger.Debug("closure reached", "iterations", iterations, "sentences", len(b.sentences), "safes", len(b.knownSafes), "mines", len(b.knownMines))
	return nil
}

// inferSubsets scans every ordered pair of sentences and derives the
// difference sentence wherever one is a subset of the other. The scan runs
// over a sorted snapshot so processing order is deterministic.
func (b *Base) inferSubsets() ([]Sentence, error) {
	snapshot := make([]Sentence, len(b.sentences))
	copy(snapshot, b.sentences)
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].Less(snapshot[j]) })

	var derived []Sentence
	derivedKeys := make(map[string]struct{})
	comparisons := 0

	for i, sub := range snapshot {
		if sub.IsEmpty() {
			continue
		}
		for j, super := range snapshot {
			if i == j {
				continue
			}
			comparisons++
			if !sub.SubsetOf(super) {
				continue
			}

			diff, err := super.Subtract(sub)
			if err != nil {
				return nil, fmt.Errorf("subtract %s from %s: %w", sub, super, err)
			}
			if diff.IsEmpty() {
				continue
			}
			if _, ok := derivedKeys[diff.Key()]; ok {
				continue
			}
			derivedKeys[diff.Key()] = struct{}{}
			derived = append(derived, diff)
		}
	}

	b.collector.RecordComparisons(comparisons)
	b.collector.RecordInferences(len(derived))
	return derived, nil
}

// addSentence appends a sentence unless it is empty or was already held at
// some point. Reports whether the base changed.
func (b *Base) addSentence(s Sentence) bool {
	if s.IsEmpty() {
		return false
	}
	if _, ok := b.seen[s.Key()]; ok {
		return false
	}
	b.seen[s.Key()] = struct{}{}
	b.sentences = append(b.sentences, s)
	return true
}

// applySafe adds the cell to the known-safe set and prunes it from every
// sentence, rebuilding the sentence list rather than editing it in place.
func (b *Base) applySafe(cell core.Cell) error {
	if _, ok := b.knownMines[cell]; ok {
		return fmt.Errorf("%w: %s proven both safe and mine", core.ErrInconsistency, cell)
	}
	if _, ok := b.knownSafes[cell]; !ok {
		b.knownSafes[cell] = struct{}{}
		b.safeOrder = append(b.safeOrder, cell)
	}

	rebuilt := make([]Sentence, 0, len(b.sentences))
	for _, s := range b.sentences {
		ns, err := s.MarkSafe(cell)
		if err != nil {
			return err
		}
		b.seen[ns.Key()] = struct{}{}
		rebuilt = append(rebuilt, ns)
	}
	b.sentences = rebuilt
	return nil
}

// applyMine adds the cell to the known-mine set and prunes it from every
// sentence, decrementing their counts.
func (b *Base) applyMine(cell core.Cell) error {
	if _, ok := b.knownSafes[cell]; ok {
		return fmt.Errorf("%w: %s proven both mine and safe", core.ErrInconsistency, cell)
	}
	b.knownMines[cell] = struct{}{}

	rebuilt := make([]Sentence, 0, len(b.sentences))
	for _, s := range b.sentences {
		ns, err := s.MarkMine(cell)
		if err != nil {
			return err
		}
		b.seen[ns.Key()] = struct{}{}
		rebuilt = append(rebuilt, ns)
	}
	b.sentences = rebuilt
	return nil
}

// compact drops fully resolved (empty) sentences and duplicates, keeping
// the first occurrence of each.
func (b *Base) compact() {
	kept := make([]Sentence, 0, len(b.sentences))
	keys := make(map[string]struct{}, len(b.sentences))
	duplicates := 0

	for _, s := range b.sentences {
		if s.IsEmpty() {
			continue
		}
		if _, ok := keys[s.Key()]; ok {
			duplicates++
			continue
		}
		keys[s.Key()] = struct{}{}
		kept = append(kept, s)
	}

	b.sentences = kept
	b.collector.RecordKBSize(len(kept))
	b.collector.RecordDuplicates(duplicates)
}

func (b *Base) fail(err error) error {
	b.failure = err
	b.logger.Error("knowledge base poisoned", "error", err)
	return err
}

// Err returns the inconsistency that poisoned the base, or nil.
func (b *Base) Err() error { return b.failure }

// SafeMoves returns the provably safe cells not yet played, in discovery
// order. The returned slice is a copy.
func (b *Base) SafeMoves() []core.Cell {
	out := make([]core.Cell, 0, len(b.safeOrder))
	for _, c := range b.safeOrder {
		if _, ok := b.movesMade[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Mines returns every cell proven to be a mine, in row-major order.
func (b *Base) Mines() []core.Cell {
	return sortedCells(b.knownMines)
}

// Sentences returns a copy of the active sentence set.
func (b *Base) Sentences() []Sentence {
	out := make([]Sentence, len(b.sentences))
	copy(out, b.sentences)
	return out
}

// Board returns the board this base reasons over.
func (b *Base) Board() core.Board { return b.board }

// Played reports whether the cell has been passed to AddKnowledge.
func (b *Base) Played(cell core.Cell) bool {
	_, ok := b.movesMade[cell]
	return ok
}

// KnownMine reports whether the cell is proven to be a mine.
func (b *Base) KnownMine(cell core.Cell) bool {
	_, ok := b.knownMines[cell]
	return ok
}

// KnownSafe reports whether the cell is proven to be safe.
func (b *Base) KnownSafe(cell core.Cell) bool {
	_, ok := b.knownSafes[cell]
	return ok
}

// MoveCount returns the number of cells played so far.
func (b *Base) MoveCount() int { return len(b.movesMade) }

func sortedCells(set map[core.Cell]struct{}) []core.Cell {
	out := make([]core.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return core.SortCells(out)
}
