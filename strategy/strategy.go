package strategy

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hupe1980/minemind/core"
)

// Selector picks the next cell to play from the pool of provably safe,
// not-yet-played cells. Implementations must not mutate the pool and must
// not touch the knowledge base; the caller records the chosen cell as
// played once it actually plays it.
type Selector interface {
	// Name returns the registry name of the strategy.
	Name() string
	// Select returns one cell from the pool, or false when the pool is
	// empty. The pool is ordered by discovery (earliest first).
	Select(pool []core.Cell) (core.Cell, bool)
}

// Registry names for the closed set of safe-cell strategies.
const (
	NameFIFO   = "fifo"
	NameLIFO   = "lifo"
	NameSorted = "sorted"
	NameRandom = "random"
)

// New returns the selector registered under name. The set of strategies is
// closed; unknown names are rejected rather than silently defaulted.
func New(name string, rng *rand.Rand) (Selector, error) {
	switch strings.ToLower(name) {
	case NameFIFO:
		return FIFO{}, nil
	case NameLIFO:
		return LIFO{}, nil
	case NameSorted:
		return Sorted{}, nil
	case NameRandom:
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown safe-cell strategy %q", name)
	}
}

// Names returns the registry names of all safe-cell strategies.
func Names() []string {
	return []string{NameFIFO, NameLIFO, NameSorted, NameRandom}
}

// FIFO returns the safe cell that became known earliest.
type FIFO struct{}

// Name returns the registry name of the strategy.
func (FIFO) Name() string { return NameFIFO }

// Select returns the first cell of the discovery-ordered pool.
func (FIFO) Select(pool []core.Cell) (core.Cell, bool) {
	if len(pool) == 0 {
		return core.Cell{}, false
	}
	return pool[0], true
}

// LIFO returns the most recently discovered safe cell.
type LIFO struct{}

// Name returns the registry name of the strategy.
func (LIFO) Name() string { return NameLIFO }

// Select returns the last cell of the discovery-ordered pool.
func (LIFO) Select(pool []core.Cell) (core.Cell, bool) {
	if len(pool) == 0 {
		return core.Cell{}, false
	}
	return pool[len(pool)-1], true
}

// Sorted returns the minimum cell in row-major order, i.e. the safe cell
// closest to the top-left corner.
type Sorted struct{}

// Name returns the registry name of the strategy.
func (Sorted) Name() string { return NameSorted }

// Select returns the row-major minimum of the pool.
func (Sorted) Select(pool []core.Cell) (core.Cell, bool) {
	if len(pool) == 0 {
		return core.Cell{}, false
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if c.Less(best) {
			best = c
		}
	}
	return best, true
}

// Random returns a uniformly random cell from the pool, drawing from an
// injected random source.
type Random struct {
	rng *rand.Rand
}

// NewRandom constructs a Random selector. A nil rng falls back to a
// time-seeded private source; callers wanting reproducibility inject their
// own.
func NewRandom(rng *rand.Rand) Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return Random{rng: rng}
}

// Name returns the registry name of the strategy.
func (Random) Name() string { return NameRandom }

// Select returns a uniformly random cell from the pool.
func (r Random) Select(pool []core.Cell) (core.Cell, bool) {
	if len(pool) == 0 {
		return core.Cell{}, false
	}
	return pool[r.rng.Intn(len(pool))], true
}
