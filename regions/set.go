// SPDX-License-Identifier: MIT
// Package: tempograph/regions
//
// set.go - the node-id set underlying winning-region comparison.
//
// Contract:
//   - A nil Set behaves as the empty set for every read operation, so
//     parser results can be consumed without presence checks.
//   - Add is the only mutator and returns the set (append-style) so it
//     stays total on a nil receiver.
//   - Union/Intersect/Difference are pure: operands are never modified.
//   - Sorted and String are the deterministic renderings; iteration order
//     of the underlying map never leaks.

package regions

import (
	"sort"
	"strings"
)

// Set is an unordered collection of node ids.
type Set map[string]struct{}

// NewSet builds a set from ids, deduplicating as it goes.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports membership. Nil-safe.
func (s Set) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members. Nil-safe.
func (s Set) Len() int { return len(s) }

// Add inserts ids and returns the set, allocating when s is nil. Use as
// s = s.Add("v0").
func (s Set) Add(ids ...string) Set {
	if s == nil {
		s = make(Set, len(ids))
	}
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Union returns a new set holding every member of s and t.
func (s Set) Union(t Set) Set {
	out := make(Set, len(s)+len(t))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range t {
		out[id] = struct{}{}
	}

	return out
}

// Intersect returns a new set holding the members present in both s and t.
func (s Set) Intersect(t Set) Set {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Difference returns a new set holding the members of s absent from t.
func (s Set) Difference(t Set) Set {
	out := make(Set)
	for id := range s {
		if !t.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Equal reports exact equality, empty-vs-empty included; nil and empty
// sets are equal.
func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for id := range s {
		if !t.Has(id) {
			return false
		}
	}

	return true
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// String renders the set in brace form with sorted members: {} or {a, b}.
func (s Set) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
