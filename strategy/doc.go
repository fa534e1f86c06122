// Package strategy provides the interchangeable cell-selection policies
// used by the agent.
//
// Selector implementations pick the next move from the pool of provably
// safe, not-yet-played cells (FIFO, LIFO, Sorted, Random). They are pure
// with respect to the knowledge base: the pool is read, never mutated, and
// repeated calls over the same pool are deterministic for the
// deterministic variants.
//
// Risk is the fallback for the moment no cell is provably safe: it scores
// every remaining cell's mine probability from the active sentences and
// restricts the random choice to cells below a risk threshold, with a
// wall-bypass rule for boards where every candidate looks dangerous.
//
// All randomness is drawn from constructor-injected sources so tests can
// force determinism.
package strategy
