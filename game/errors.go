// SPDX-License-Identifier: MIT
// Package: tempograph/game
//
// errors.go — sentinel errors for game construction.
//
// Error policy:
//   • Only package-level sentinel variables are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Owner range and edge endpoints are deliberately NOT construction
//     errors: Validate reports them as Violations, so parsed files with
//     such defects still load and can be inspected.

package game

import "errors"

// ErrEmptyNodeID indicates an empty node identifier passed to AddNode or
// an empty endpoint passed to AddEdge.
// Usage: if errors.Is(err, ErrEmptyNodeID) { /* fix the id source */ }.
var ErrEmptyNodeID = errors.New("game: empty node id")

// ErrDuplicateNode indicates AddNode was called twice with the same id.
// Node identity is the file-format key; silent replacement would corrupt
// the insertion order contract.
// Usage: if errors.Is(err, ErrDuplicateNode) { /* deduplicate upstream */ }.
var ErrDuplicateNode = errors.New("game: duplicate node id")

// ErrNodeNotFound indicates an operation referenced a node id that was
// never added (MarkTarget on an undeclared node).
// Usage: if errors.Is(err, ErrNodeNotFound) { /* add the node first */ }.
var ErrNodeNotFound = errors.New("game: node not found")
