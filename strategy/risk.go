package strategy

import (
	"math"
	"math/rand"
	"time"

	"github.com/hupe1980/minemind/core"
	"github.com/hupe1980/minemind/knowledge"
	"github.com/hupe1980/minemind/logging"
)

// Knowledge is the read-only view the risk selector needs from the agent's
// knowledge base.
type Knowledge interface {
	Board() core.Board
	Played(cell core.Cell) bool
	KnownMine(cell core.Cell) bool
	Sentences() []knowledge.Sentence
}

// Policy selects how contributions from multiple sentences referencing the
// same cell are combined into one risk score.
type Policy int

const (
	// PolicyMax scores a cell by the highest probability any single
	// sentence implies for it. This is the default: one damning sentence
	// outweighs several mild ones.
	PolicyMax Policy = iota
	// PolicyMean scores a cell by the average probability across all
	// sentences referencing it.
	PolicyMean
)

// String returns the registry name of the policy.
func (p Policy) String() string {
	if p == PolicyMean {
		return "mean"
	}
	return "max"
}

// scoreEpsilon absorbs float noise when comparing candidate scores.
const scoreEpsilon = 1e-9

// RiskOptions configures a Risk selector.
type RiskOptions struct {
	// Threshold is the score below which a candidate counts as low-risk.
	Threshold float64
	// Prior is the score assigned to candidates no sentence references.
	// It sits below the threshold: an unconstrained cell is a better bet
	// than one a high-count sentence points at.
	Prior float64
	// Policy combines multiple sentence contributions per cell.
	Policy Policy
	// Rand supplies all randomness; defaults to a time-seeded source.
	Rand *rand.Rand
	// Logger receives selection decisions; defaults to NoOp.
	Logger logging.Logger
}

// Risk chooses a cell to play when no cell is provably safe. Every
// candidate (neither played nor a proven mine) gets a mine-probability
// score from the active sentences; the choice is uniform among the
// low-risk candidates, falling back to a wall-bypass rule when none exist.
type Risk struct {
	threshold float64
	prior     float64
	policy    Policy
	rng       *rand.Rand
	logger    logging.Logger
}

// NewRisk constructs a Risk selector with optional overrides.
func NewRisk(optFns ...func(o *RiskOptions)) *Risk {
	opts := RiskOptions{
		Threshold: 0.25,
		Prior:     0.10,
		Policy:    PolicyMax,
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Risk{
		threshold: opts.Threshold,
		prior:     opts.Prior,
		policy:    opts.Policy,
		rng:       opts.Rand,
		logger:    logging.OrNoOp(opts.Logger),
	}
}

// Select returns a cell to play, or false when every board cell is either
// played or a proven mine. It never returns a cell known to be a mine.
func (r *Risk) Select(kb Knowledge) (core.Cell, bool) {
	board := kb.Board()

	var candidates []core.Cell
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			cell := core.Cell{Row: row, Col: col}
			if kb.Played(cell) || kb.KnownMine(cell) {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return core.Cell{}, false
	}

	scores := r.scoreCandidates(kb.Sentences(), candidates)

	var lowRisk []core.Cell
	for _, c := range candidates {
		if scores[c] < r.threshold {
			lowRisk = append(lowRisk, c)
		}
	}
	if len(lowRisk) > 0 {
		pick := lowRisk[r.rng.Intn(len(lowRisk))]
		r.logger.Debug("risk pick", "cell", pick.String(), "score", scores[pick], "low_risk", len(lowRisk))
		return pick, true
	}

	pick := r.bypassWall(board, candidates, scores)
	r.logger.Debug("wall bypass pick", "cell", pick.String(), "score", scores[pick])
	return pick, true
}

// scoreCandidates estimates each candidate's mine probability. A sentence
// referencing the cell contributes count/len(cells); contributions are
// combined per the configured policy. Candidates no sentence references
// score the prior.
func (r *Risk) scoreCandidates(sentences []knowledge.Sentence, candidates []core.Cell) map[core.Cell]float64 {
	scores := make(map[core.Cell]float64, len(candidates))

	for _, cell := range candidates {
		var sum, max float64
		hits := 0
		for _, s := range sentences {
			if s.Len() == 0 || !s.ContainsCell(cell) {
				continue
			}
			p := float64(s.Count()) / float64(s.Len())
			hits++
			sum += p
			if p > max {
				max = p
			}
		}

		switch {
		case hits == 0:
			scores[cell] = r.prior
		case r.policy == PolicyMean:
			scores[cell] = sum / float64(hits)
		default:
			scores[cell] = max
		}
	}
	return scores
}

// bypassWall handles the boxed-in case where every candidate scores at or
// above the threshold. Picking the first-found riskiest region would bias
// the agent toward one corner of the wall, so the choice is widened: take
// every candidate tied for the minimum score, add their undetermined board
// neighbors, and pick uniformly among the lowest-scoring cells of that
// widened set. Scores only ever decide downward, so the result is always a
// minimum-score cell, just drawn from the whole boundary instead of its
// first segment.
func (r *Risk) bypassWall(board core.Board, candidates []core.Cell, scores map[core.Cell]float64) core.Cell {
	min := math.Inf(1)
	for _, c := range candidates {
		if scores[c] < min {
			min = scores[c]
		}
	}

	candidateSet := make(map[core.Cell]struct{}, len(candidates))
	for _, c := range candidates {
		candidateSet[c] = struct{}{}
	}

	widened := make(map[core.Cell]struct{})
	for _, c := range candidates {
		if scores[c] > min+scoreEpsilon {
			continue
		}
		widened[c] = struct{}{}
		for _, n := range board.Neighbors(c) {
			if _, ok := candidateSet[n]; ok {
				widened[n] = struct{}{}
			}
		}
	}

	var floor []core.Cell
	for c := range widened {
		if scores[c] <= min+scoreEpsilon {
			floor = append(floor, c)
		}
	}
	core.SortCells(floor)

	return floor[r.rng.Intn(len(floor))]
}
