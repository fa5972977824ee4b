// Package game models temporal reachability games: directed graphs whose
// nodes belong to one of two players and whose edges carry temporal
// availability constraints.
//
// Components:
//
//   - Game / Node / Edge — the model. Node insertion order is preserved
//     because serialization order is part of the file-format contract.
//   - Validate / IsValid — structural well-formedness as a list of
//     Violation values (owner range, dangling endpoints, emptiness);
//     defective games still load and can be inspected.
//   - ReachableFrom / CannotReachTarget — structural BFS ignoring
//     constraints, used by validation tooling to flag degenerate games.
//
// Guarantees:
//
//   - Construction is permissive: only empty and duplicate identifiers are
//     construction errors; everything else is a validator finding.
//   - All accessors return copies; a Game is read-only after construction
//     and safe for concurrent reads.
//   - Determinism: iteration follows insertion order everywhere, so equal
//     construction sequences produce byte-identical serializations.
package game
