// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_diamond.go — implementation of Diamond() constructor.
//
// Contract:
//   • Fixed five-node strategic diamond; no parameters, no randomness
//     (the only shape that runs without cfg.rng).
//   • Nodes in ID order: start (owner 0), top (owner 1), bottom (owner 1),
//     merge (owner 0), goal (owner 0).
//   • Edges: start→top Always; top→merge (not (= (mod t 3) 2)) — the fast
//     route the safety player can block every third step; start→bottom
//     (>= t 1) — the slow route with a launch delay; bottom→merge Always;
//     merge→goal (< t 15) — time pressure on the finish.
//   • Timing self-loops: start (= (mod t 2) 1), top (= (mod t 4) 0),
//     bottom (= (mod t 3) 0); the goal carries an Always self-loop.
//   • The goal is the target.
//
// Complexity: O(1) nodes and edges.
// Determinism: total; identical output for every call.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodDiamond = "Diamond"

	// Merge deadline: the finishing hop closes at this instant.
	diamondDeadline = 15
)

// Diamond returns a Constructor that builds the fixed strategic diamond.
func Diamond() Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// 1) The five nodes in a single ID sequence.
		seq := idSequence(cfg)
		start, top, bottom, merge, goal := seq(), seq(), seq(), seq(), seq()
		nodes := []struct {
			id    string
			owner int
		}{
			{start, playerReach},
			{top, playerSafe},
			{bottom, playerSafe},
			{merge, playerReach},
			{goal, playerReach},
		}
		for _, nd := range nodes {
			if err := g.AddNode(nd.id, "", nd.owner); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodDiamond, nd.id, err)
			}
		}

		// 2) Route edges; each mod construction is in-range by definition.
		blockable, err := temporal.Mod(3, 2)
		if err != nil {
			return fmt.Errorf("%s: %w", methodDiamond, err)
		}
		type arc struct {
			from, to string
			c        temporal.Constraint
		}
		arcs := []arc{
			{start, top, temporal.Always()},               // fast route entry
			{top, merge, temporal.Not(blockable)},         // blockable every 3rd step
			{start, bottom, temporal.GreaterEq(1)},        // slow route, launch delay
			{bottom, merge, temporal.Always()},            // slow route, reliable
			{merge, goal, temporal.LessThan(diamondDeadline)}, // finish under pressure
		}

		// 3) Timing self-loops for tempo control, plus the goal anchor.
		startLoop, err := temporal.Mod(2, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodDiamond, err)
		}
		topLoop, err := temporal.Mod(4, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", methodDiamond, err)
		}
		bottomLoop, err := temporal.Mod(3, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", methodDiamond, err)
		}
		arcs = append(arcs,
			arc{start, start, startLoop},
			arc{top, top, topLoop},
			arc{bottom, bottom, bottomLoop},
			arc{goal, goal, temporal.Always()},
		)

		for _, a := range arcs {
			if err = g.AddEdge(a.from, a.to, a.c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodDiamond, a.from, a.to, err)
			}
		}

		// 4) Target: the goal node.
		if err = g.MarkTarget(goal); err != nil {
			return fmt.Errorf("%s: MarkTarget(%s): %w", methodDiamond, goal, err)
		}

		// Success: diamond fully constructed.
		return nil
	}
}
