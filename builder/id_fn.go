// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// id_fn.go — node ID schemes for game constructors.
//
// Two schemes dominate the corpus of generated games: benchmark suites use
// "v0","v1",... while the hand-tuned strategic shapes use "s0","s1",....
// Both are exposed, plus a prefix factory and a bare decimal scheme for
// custom fixtures.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always
// returns the same string. Panics in implementations indicate programmer
// error in configuration (constructors never pass negative indices).
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx, O(1) extra space.
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// VertexIDFn returns "v" + decimal index, e.g. 0→"v0", 7→"v7".
// This is the benchmark-suite scheme and the package default.
// Panics if idx < 0.
func VertexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("VertexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return "v" + strconv.Itoa(idx)
}

// StateIDFn returns "s" + decimal index, e.g. 0→"s0", 7→"s7".
// This is the scheme of the strategic shapes (chain/racing/diamond/grid).
// Panics if idx < 0.
func StateIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("StateIDFn: idx must be ≥ 0, got %d", idx))
	}
	return "s" + strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index,
// e.g. PrefixIDFn("q") → "q0","q1",...
// Complexity: O(d) per call where d is the number of decimal digits in idx.
// The returned function panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn(%q): idx must be ≥ 0, got %d", prefix, idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithVertexIDs sets the ID scheme to VertexIDFn ("v0","v1",...).
// Complexity: O(1).
func WithVertexIDs() BuildOption {
	return WithIDScheme(VertexIDFn)
}

// WithStateIDs sets the ID scheme to StateIDFn ("s0","s1",...).
// Complexity: O(1).
func WithStateIDs() BuildOption {
	return WithIDScheme(StateIDFn)
}

// WithDefaultIDs sets the ID scheme to DefaultIDFn ("0","1",...).
// Complexity: O(1).
func WithDefaultIDs() BuildOption {
	return WithIDScheme(DefaultIDFn)
}

// WithIDPrefix sets the ID scheme to PrefixIDFn(prefix).
// Example: WithIDPrefix("q") → "q0","q1",...
// Complexity: O(1).
func WithIDPrefix(prefix string) BuildOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
