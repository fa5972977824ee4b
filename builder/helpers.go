// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// helpers.go — shared internals for shape constructors.
//
// Design principles:
//   • Single responsibility: each helper does one well-defined job.
//   • Error context: helpers name the game operation that failed; the
//     calling constructor prefixes its method tag.
//   • Determinism: every random draw threads through the caller's rng.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// idSequence returns a closure yielding cfg.idFn(0), cfg.idFn(1), ... on
// successive calls. Shapes that interleave node groups (Racing, Diamond)
// use it to mirror a single running counter across the whole game.
func idSequence(cfg builderConfig) func() string {
	next := 0
	return func() string {
		id := cfg.idFn(next)
		next++
		return id
	}
}

// addIndexedNodes inserts n nodes with IDs cfg.idFn(0..n-1) into g.
// owner maps index → player; label maps index → display label, nil meaning
// “label equals the ID”. Returns the inserted IDs in index order.
// Complexity: O(n) time, O(n) space for the returned slice.
func addIndexedNodes(g *game.Game, cfg builderConfig, n int, owner func(int) int, label func(int) string) ([]string, error) {
	ids := make([]string, n)
	var lbl string
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		lbl = "" // empty label defers to the node ID
		if label != nil {
			lbl = label(i)
		}
		if err := g.AddNode(ids[i], lbl, owner(i)); err != nil {
			return nil, fmt.Errorf("AddNode(%s): %w", ids[i], err)
		}
	}

	return ids, nil
}

// uniformIn draws a float uniformly from [lo, hi).
func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intBetween draws an int uniformly from the inclusive range [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// drawModEq draws a modular-equality constraint (= (mod t M) R) with
// M ∈ [minMod, maxMod] inclusive and R ∈ [0, M).
func drawModEq(rng *rand.Rand, minMod, maxMod int) (temporal.Constraint, error) {
	m := intBetween(rng, minMod, maxMod)

	return temporal.Mod(m, rng.Intn(m))
}

// drawExplicitSet draws an explicit-set constraint with cardinality in
// [minSize, maxSize] inclusive, instants sampled without replacement from
// [0, domain). Cardinality is clamped to the domain.
func drawExplicitSet(rng *rand.Rand, domain, minSize, maxSize int) (temporal.Constraint, error) {
	size := intBetween(rng, minSize, maxSize)
	if size > domain {
		size = domain
	}

	return temporal.Set(rng.Perm(domain)[:size]...)
}

// validateTargetFraction checks the resolved target sampling pair.
// NaN fails every comparison and is therefore rejected too.
func validateTargetFraction(method string, cfg builderConfig) error {
	lo, hi := cfg.targetLo, cfg.targetHi
	if !(lo > 0 && lo <= hi && hi <= 1) {
		return fmt.Errorf("%s: target fraction [%v,%v]: %w", method, lo, hi, ErrBadFraction)
	}

	return nil
}

// validateEdgeFactor checks the resolved edge volume pair.
func validateEdgeFactor(method string, cfg builderConfig) error {
	lo, hi := cfg.edgeLo, cfg.edgeHi
	if !(lo > 0 && lo <= hi) {
		return fmt.Errorf("%s: edge factor [%v,%v]: %w", method, lo, hi, ErrBadFraction)
	}

	return nil
}

// markSampledTargets marks a benchmark-style target set on the given nodes:
// a uniform fraction from [cfg.targetLo, cfg.targetHi] of them, never fewer
// than minTargetCount, sampled without replacement.
// Complexity: O(len(ids)) time and space (permutation draw).
func markSampledTargets(g *game.Game, cfg builderConfig, ids []string) error {
	frac := uniformIn(cfg.rng, cfg.targetLo, cfg.targetHi)
	count := int(frac * float64(len(ids)))
	if count < minTargetCount {
		count = minTargetCount
	}
	if count > len(ids) {
		count = len(ids)
	}
	for _, idx := range cfg.rng.Perm(len(ids))[:count] {
		if err := g.MarkTarget(ids[idx]); err != nil {
			return fmt.Errorf("MarkTarget(%s): %w", ids[idx], err)
		}
	}

	return nil
}
