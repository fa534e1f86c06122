// Package knowledge implements the logical reasoning core: sentences about
// groups of board cells and the knowledge base that accumulates them.
//
// A Sentence states that exactly N of a set of cells are mines. The Base
// ingests one such statement per revealed cell and repeatedly applies two
// rules until nothing new can be learned (the fixed point):
//
//   - trivial resolution: a sentence whose count equals its cell-set size
//     proves every cell a mine; a zero-count sentence proves every cell safe
//   - subset inference: when one sentence's cells are contained in
//     another's, subtracting cells and counts yields a new, smaller sentence
//
// Sentences are immutable; every inference step builds fresh collections
// instead of editing the one being scanned, which rules out
// iteration-invalidation bugs by construction. The Base is exclusively
// owned by one agent for the duration of one game and is not safe for
// concurrent use.
package knowledge
