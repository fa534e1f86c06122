// Package minemind provides a high-level façade over the core knowledge
// base and strategy abstractions, enabling rapid construction of
// Minesweeper-solving agents. Most applications interact with this package
// by:
//  1. Creating an Agent via New() over a core.Board implementation
//  2. Feeding it revealed cells through AddKnowledge
//  3. Asking for the next move (SelectSafeMove, falling back to
//     SelectRandomMove when nothing is provably safe)
//
// The façade delegates inference to knowledge.Base and move selection to
// the strategy package while keeping setup and usage ergonomics concise.
// All defaults are safe for local experimentation; reproducible runs supply
// a seeded random source and an explicit safe-cell strategy.
package minemind

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/minemind/core"
	"github.com/hupe1980/minemind/knowledge"
	"github.com/hupe1980/minemind/logging"
	"github.com/hupe1980/minemind/stats"
	"github.com/hupe1980/minemind/strategy"
)

// Options configures the Agent instance.
type Options struct {
	// SafeStrategy names the safe-cell selection strategy (see
	// strategy.Names). Defaults to FIFO, matching discovery order.
	SafeStrategy string

	// Rand supplies all randomness (random strategy, risk fallback).
	// Defaults to a time-seeded source; inject a seeded one for
	// reproducible games.
	Rand *rand.Rand

	// RiskThreshold is the score below which an unproven cell counts as
	// low-risk for the random fallback.
	RiskThreshold float64
	// RiskPrior is the score assigned to cells no sentence constrains.
	RiskPrior float64
	// RiskPolicy combines per-sentence probability contributions.
	RiskPolicy strategy.Policy

	// Collector records inference metrics; nil disables collection.
	Collector *stats.Collector

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Agent is the high-level façade aggregating the knowledge base and the
// configured selection strategies for one game. Create a fresh Agent per
// game; knowledge never carries over.
type Agent struct {
	base   *knowledge.Base
	safe   strategy.Selector
	risk   *strategy.Risk
	logger logging.Logger
}

// New creates an Agent reasoning over the given board, with optional
// overrides.
func New(board core.Board, optFns ...func(o *Options)) (*Agent, error) {
	opts := Options{
		SafeStrategy:  strategy.NameFIFO,
		RiskThreshold: 0.25,
		RiskPrior:     0.10,
		RiskPolicy:    strategy.PolicyMax,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := logging.OrNoOp(opts.Logger)

	safe, err := strategy.New(opts.SafeStrategy, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("configure safe-cell strategy: %w", err)
	}

	risk := strategy.NewRisk(func(o *strategy.RiskOptions) {
		o.Threshold = opts.RiskThreshold
		o.Prior = opts.RiskPrior
		o.Policy = opts.RiskPolicy
		o.Rand = opts.Rand
		o.Logger = logger
	})

	base := knowledge.NewBase(board, func(o *knowledge.Options) {
		o.Logger = logger
		o.Collector = opts.Collector
	})

	return &Agent{base: base, safe: safe, risk: risk, logger: logger}, nil
}

// AddKnowledge records that cell was revealed with the given adjacent mine
// count and runs inference to its fixed point.
func (a *Agent) AddKnowledge(cell core.Cell, count int) error {
	return a.base.AddKnowledge(cell, count)
}

// KnownSafeMoves returns the provably safe cells not yet played, in
// discovery order.
func (a *Agent) KnownSafeMoves() []core.Cell {
	return a.base.SafeMoves()
}

// KnownMineCells returns every cell proven to be a mine.
func (a *Agent) KnownMineCells() []core.Cell {
	return a.base.Mines()
}

// SelectSafeMove picks the next cell from the known-safe pool using the
// configured strategy. Returns false when no cell is provably safe.
func (a *Agent) SelectSafeMove() (core.Cell, bool) {
	return a.safe.Select(a.base.SafeMoves())
}

// SelectRandomMove picks a cell via the risk-filtered random fallback.
// Returns false when every cell is either played or a proven mine.
func (a *Agent) SelectRandomMove() (core.Cell, bool) {
	return a.risk.Select(a.base)
}

// Sentences returns a copy of the active sentence set, useful for
// inspection and debugging.
func (a *Agent) Sentences() []knowledge.Sentence {
	return a.base.Sentences()
}

// MoveCount returns the number of cells played so far.
func (a *Agent) MoveCount() int {
	return a.base.MoveCount()
}

// StrategyName returns the name of the configured safe-cell strategy.
func (a *Agent) StrategyName() string {
	return a.safe.Name()
}

// Err returns the inconsistency that poisoned the knowledge base, or nil.
func (a *Agent) Err() error {
	return a.base.Err()
}
