// Package stats tracks inference performance metrics and persists game
// outcomes.
//
// Collector accumulates per-move closure metrics (knowledge base size,
// inference counts, subset comparisons, loop iterations) so different
// safe-cell strategies and board setups can be compared. Store writes game
// records to a SQLite database and aggregates them per strategy.
//
// A Collector is owned by exactly one knowledge base and is not safe for
// concurrent use; the reasoning core is single-threaded by design.
package stats
