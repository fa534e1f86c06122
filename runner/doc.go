// Package runner plays complete headless games: it wires an Agent to a
// simulated board, feeds reveals back into the knowledge base, and reports
// per-game outcomes (win/loss, move and guess counts, inference metrics).
//
// A Runner holds game-independent configuration (strategy, randomness,
// logging, optional persistence) and can replay many boards for strategy
// comparison. Outcomes can be persisted to a stats.Store for later
// aggregation.
package runner
