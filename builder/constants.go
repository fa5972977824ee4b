// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// constants.go — shared defaults used across shape constructors.
//
// Per-shape method tags and size minima are file-local to their impl_*.go;
// only knobs consumed by more than one constructor live here.

package builder

// Target sampling defaults: benchmark-style generation marks a uniform
// fraction of nodes drawn from [defaultTargetLo, defaultTargetHi] as targets,
// never fewer than minTargetCount.
const (
	defaultTargetLo = 0.10
	defaultTargetHi = 0.20
	minTargetCount  = 1
)

// Edge volume defaults: benchmark-style generation emits n·U(lo,hi) edges in
// total (one guaranteed outgoing edge per node, the remainder random).
const (
	defaultEdgeLo = 1.5
	defaultEdgeHi = 3.0
)

// Player identifiers as they appear in node ownership. The validator owns the
// range check; constructors only ever emit these two values.
const (
	playerReach = 0 // reachability player (wants to hit a target)
	playerSafe  = 1 // safety player (wants to avoid targets forever)
	playerCount = 2
)
