package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/minemind"
	"github.com/hupe1980/minemind/board"
	"github.com/hupe1980/minemind/core"
	"github.com/hupe1980/minemind/logging"
	"github.com/hupe1980/minemind/stats"
	"github.com/hupe1980/minemind/strategy"
)

// Outcome describes one finished game.
type Outcome struct {
	GameID   string
	Strategy string
	Width    int
	Height   int
	Mines    int

	Won       bool
	Exhausted bool // no move was available before the board was cleared
	Moves     int
	Guesses   int
	LostOn    *core.Cell // the mine that ended a lost game
	Duration  time.Duration

	Inference stats.Summary
}

// Record converts the outcome into its persisted form.
func (o *Outcome) Record() stats.GameRecord {
	return stats.GameRecord{
		ID:        o.GameID,
		Strategy:  o.Strategy,
		Width:     o.Width,
		Height:    o.Height,
		Mines:     o.Mines,
		Won:       o.Won,
		Moves:     o.Moves,
		Guesses:   o.Guesses,
		Duration:  o.Duration,
		Inference: o.Inference,
	}
}

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// SafeStrategy names the safe-cell selection strategy for every game.
	SafeStrategy string
	// RiskPolicy combines per-sentence probability contributions in the
	// random fallback.
	RiskPolicy strategy.Policy
	// Rand supplies board generation and agent randomness. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
	// Store persists finished games when non-nil.
	Store *stats.Store
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Runner plays headless games with a fixed configuration.
type Runner struct {
	safeStrategy string
	riskPolicy   strategy.Policy
	rng          *rand.Rand
	store        *stats.Store
	logger       logging.Logger
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		SafeStrategy: strategy.NameFIFO,
		RiskPolicy:   strategy.PolicyMax,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Runner{
		safeStrategy: opts.SafeStrategy,
		riskPolicy:   opts.RiskPolicy,
		rng:          opts.Rand,
		store:        opts.Store,
		logger:       logging.OrNoOp(opts.Logger),
	}
}

// Play runs one complete game on the given board. The game ends when every
// mine-free cell has been revealed (win), a mine is revealed (loss), or no
// move is available.
func (r *Runner) Play(g *board.Grid) (*Outcome, error) {
	collector := stats.NewCollector()

	agent, err := minemind.New(g, func(o *minemind.Options) {
		o.SafeStrategy = r.safeStrategy
		o.RiskPolicy = r.riskPolicy
		o.Rand = r.rng
		o.Collector = collector
		o.Logger = r.logger
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	out := &Outcome{
		GameID:   uuid.NewString(),
		Strategy: r.safeStrategy,
		Width:    g.Width(),
		Height:   g.Height(),
		Mines:    g.MineCount(),
	}
	start := time.Now()

	for {
		if out.Moves == g.SafeCount() {
			out.Won = true
			break
		}

		cell, ok := agent.SelectSafeMove()
		guessed := false
		if !ok {
			cell, ok = agent.SelectRandomMove()
			guessed = true
		}
		if !ok {
			out.Exhausted = true
			break
		}

		if g.IsMine(cell) {
			lost := cell
			out.LostOn = &lost
			break
		}

		if err := agent.AddKnowledge(cell, g.AdjacentMines(cell)); err != nil {
			return nil, fmt.Errorf("game %s: %w", out.GameID, err)
		}
		out.Moves++
		if guessed {
			out.Guesses++
		}
	}

	out.Duration = time.Since(start)
	out.Inference = collector.Summary()

	r.logger.Info("game finished",
		"game_id", out.GameID,
		"strategy", out.Strategy,
		"won", out.Won,
		"moves", out.Moves,
		"guesses", out.Guesses,
		"duration", out.Duration,
	)

	if r.store != nil {
		if err := r.store.RecordGame(out.Record()); err != nil {
			return nil, fmt.Errorf("persist game %s: %w", out.GameID, err)
		}
	}
	return out, nil
}

// PlayMany generates and plays count fresh boards of the given shape,
// returning every outcome.
func (r *Runner) PlayMany(count, width, height, mines int) ([]*Outcome, error) {
	outcomes := make([]*Outcome, 0, count)
	for i := 0; i < count; i++ {
		g, err := board.NewGrid(width, height, mines, func(o *board.Options) {
			o.Rand = r.rng
		})
		if err != nil {
			return nil, fmt.Errorf("generate board %d: %w", i, err)
		}
		out, err := r.Play(g)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
