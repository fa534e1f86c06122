// Package core provides the foundational domain types and interfaces used by
// MineMind. It defines the core abstractions for:
//
//   - Cells (board positions used as set / map keys throughout the module)
//   - The Board query interface (the narrow surface consumed from the game
//     board collaborator: bounds and adjacency)
//   - The shared error taxonomy (precondition violations, fatal
//     inconsistencies, move exhaustion)
//
// The package intentionally keeps implementation concerns (inference,
// strategies, simulated boards) out of scope, exposing small types to enable
// custom board backends and extensions.
package core
