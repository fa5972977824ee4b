// Package builder_test contains functional tests for all shape Constructor
// implementations, verifying topology, ownership, targets, determinism, and
// the validation sentinels.
package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/tempograph/builder"
	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// edgeKey identifies a directed edge by its endpoints.
type edgeKey struct{ From, To string }

// edgeIndex groups the constraints of every (From,To) pair; multi-edges keep
// one entry per occurrence.
func edgeIndex(g *game.Game) map[edgeKey][]temporal.Constraint {
	m := make(map[edgeKey][]temporal.Constraint)
	for _, e := range g.Edges() {
		k := edgeKey{From: e.From, To: e.To}
		m[k] = append(m[k], e.Constraint)
	}
	return m
}

// mustMod builds a modular constraint with parameters known to be valid.
func mustMod(t *testing.T, m, r int) temporal.Constraint {
	t.Helper()
	c, err := temporal.Mod(m, r)
	if err != nil {
		t.Fatalf("Mod(%d,%d): %v", m, r, err)
	}
	return c
}

// requireEdge asserts that exactly one (from,to) edge exists and carries want.
func requireEdge(t *testing.T, idx map[edgeKey][]temporal.Constraint, from, to string, want temporal.Constraint) {
	t.Helper()
	cs, ok := idx[edgeKey{From: from, To: to}]
	if !ok || len(cs) != 1 {
		t.Fatalf("edge %s→%s: expected exactly one, got %d", from, to, len(cs))
	}
	if !cs[0].Equal(want) {
		t.Fatalf("edge %s→%s: expected %q, got %q", from, to, want, cs[0])
	}
}

// requireSameGame fails unless a and b are structurally identical
// (names, node order, ownership, labels, targets, edge list, constraints).
func requireSameGame(t *testing.T, a, b *game.Game) {
	t.Helper()
	if a.Name() != b.Name() {
		t.Fatalf("names differ: %q vs %q", a.Name(), b.Name())
	}
	aIDs, bIDs := a.NodeIDs(), b.NodeIDs()
	if len(aIDs) != len(bIDs) {
		t.Fatalf("node counts differ: %d vs %d", len(aIDs), len(bIDs))
	}
	for i := range aIDs {
		if aIDs[i] != bIDs[i] {
			t.Fatalf("node order differs at %d: %q vs %q", i, aIDs[i], bIDs[i])
		}
		an, _ := a.Node(aIDs[i])
		bn, _ := b.Node(bIDs[i])
		if an != bn {
			t.Fatalf("node %s differs: %+v vs %+v", aIDs[i], an, bn)
		}
	}
	ae, be := a.Edges(), b.Edges()
	if len(ae) != len(be) {
		t.Fatalf("edge counts differ: %d vs %d", len(ae), len(be))
	}
	for i := range ae {
		if ae[i].From != be[i].From || ae[i].To != be[i].To || !ae[i].Constraint.Equal(be[i].Constraint) {
			t.Fatalf("edge %d differs: %s→%s %q vs %s→%s %q",
				i, ae[i].From, ae[i].To, ae[i].Constraint, be[i].From, be[i].To, be[i].Constraint)
		}
	}
}

// TestShapes_Functional runs per-shape topology checks on seeded builds.
func TestShapes_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []builder.BuildOption
		ctor  builder.Constructor
		check func(t *testing.T, g *game.Game)
	}{
		{
			name: "Chain(6)",
			opts: []builder.BuildOption{builder.WithSeed(7)},
			ctor: builder.Chain(6),
			check: func(t *testing.T, g *game.Game) {
				if g.NodeCount() != 6 {
					t.Fatalf("nodes: got %d, want 6", g.NodeCount())
				}
				// 5 chain edges + shortcut + interior loop + terminal loop.
				if g.EdgeCount() != 8 {
					t.Fatalf("edges: got %d, want 8", g.EdgeCount())
				}
				for i, id := range g.NodeIDs() {
					nd, _ := g.Node(id)
					if nd.Owner != i%2 {
						t.Errorf("node %s: owner %d, want %d", id, nd.Owner, i%2)
					}
					if g.OutDegree(id) < 1 {
						t.Errorf("node %s: out-degree 0", id)
					}
				}
				idx := edgeIndex(g)
				// Guaranteed unconstrained prefix.
				for i := 0; i < 3; i++ {
					requireEdge(t, idx, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), temporal.Always())
				}
				// Terminal Always self-loop and target.
				requireEdge(t, idx, "v5", "v5", temporal.Always())
				if ts := g.Targets(); len(ts) != 1 || ts[0] != "v5" {
					t.Errorf("targets: got %v, want [v5]", ts)
				}
			},
		},
		{
			name: "Cycle(5)",
			opts: []builder.BuildOption{builder.WithSeed(11)},
			ctor: builder.Cycle(5),
			check: func(t *testing.T, g *game.Game) {
				if g.NodeCount() != 5 {
					t.Fatalf("nodes: got %d, want 5", g.NodeCount())
				}
				idx := edgeIndex(g)
				for i := 0; i < 5; i++ {
					from := fmt.Sprintf("v%d", i)
					to := fmt.Sprintf("v%d", (i+1)%5)
					cs, ok := idx[edgeKey{From: from, To: to}]
					if !ok {
						t.Fatalf("missing ring edge %s→%s", from, to)
					}
					// Ring edges are never Always.
					if cs[0].Kind() == temporal.AlwaysKind {
						t.Errorf("ring edge %s→%s is unconstrained", from, to)
					}
					nd, _ := g.Node(from)
					if want := fmt.Sprintf("c%d", i); nd.Label != want {
						t.Errorf("node %s: label %q, want %q", from, nd.Label, want)
					}
					if g.OutDegree(from) < 1 {
						t.Errorf("node %s: out-degree 0", from)
					}
				}
				if ts := g.Targets(); len(ts) != 1 || ts[0] != "v4" {
					t.Errorf("targets: got %v, want [v4]", ts)
				}
			},
		},
		{
			name: "Tree(3,2)",
			opts: []builder.BuildOption{builder.WithSeed(3)},
			ctor: builder.Tree(3, 2),
			check: func(t *testing.T, g *game.Game) {
				if g.NodeCount() != 7 || g.EdgeCount() != 6 {
					t.Fatalf("size: got %d nodes / %d edges, want 7/6", g.NodeCount(), g.EdgeCount())
				}
				wantLabels := []string{"l0n0", "l1n0", "l1n1", "l2n0", "l2n1", "l2n2", "l2n3"}
				for i, id := range g.NodeIDs() {
					nd, _ := g.Node(id)
					if nd.Label != wantLabels[i] {
						t.Errorf("node %s: label %q, want %q", id, nd.Label, wantLabels[i])
					}
				}
				idx := edgeIndex(g)
				pairs := []edgeKey{
					{"v0", "v1"}, {"v0", "v2"},
					{"v1", "v3"}, {"v1", "v4"}, {"v2", "v5"}, {"v2", "v6"},
				}
				for _, p := range pairs {
					if _, ok := idx[p]; !ok {
						t.Errorf("missing tree edge %s→%s", p.From, p.To)
					}
				}
				want := []string{"v3", "v4", "v5", "v6"}
				ts := g.Targets()
				if len(ts) != len(want) {
					t.Fatalf("targets: got %v, want %v", ts, want)
				}
				for i := range want {
					if ts[i] != want[i] {
						t.Errorf("targets[%d]: got %q, want %q", i, ts[i], want[i])
					}
				}
			},
		},
		{
			name: "Grid(3,4)",
			opts: []builder.BuildOption{builder.WithSeed(21)},
			ctor: builder.Grid(3, 4),
			check: func(t *testing.T, g *game.Game) {
				const rows, cols = 3, 4
				if g.NodeCount() != rows*cols {
					t.Fatalf("nodes: got %d, want %d", g.NodeCount(), rows*cols)
				}
				at := func(x, y int) string { return fmt.Sprintf("v%d", y*cols+x) }
				for y := 0; y < rows; y++ {
					for x := 0; x < cols; x++ {
						nd, _ := g.Node(at(x, y))
						if want := fmt.Sprintf("(%d,%d)", x, y); nd.Label != want {
							t.Errorf("node %s: label %q, want %q", at(x, y), nd.Label, want)
						}
						if nd.Owner != (x+y)%2 {
							t.Errorf("node %s: owner %d, want %d", at(x, y), nd.Owner, (x+y)%2)
						}
					}
				}
				idx := edgeIndex(g)
				for y := 0; y < rows; y++ {
					// Critical columns x=0 and x=cols-2 stay open.
					requireEdge(t, idx, at(0, y), at(1, y), temporal.Always())
					requireEdge(t, idx, at(cols-2, y), at(cols-1, y), temporal.Always())
					// The single inner column x=1 carries a blocked phase.
					cs := idx[edgeKey{From: at(1, y), To: at(2, y)}]
					if len(cs) != 1 || cs[0].Kind() != temporal.NotKind {
						t.Errorf("inner right edge at y=%d: got %v", y, cs)
					}
				}
				// With rows=3 every row is critical: all down edges open.
				for y := 0; y < rows-1; y++ {
					for x := 0; x < cols; x++ {
						requireEdge(t, idx, at(x, y), at(x, y+1), temporal.Always())
					}
				}
				if ts := g.Targets(); len(ts) != 1 || ts[0] != at(cols-1, rows-1) {
					t.Errorf("targets: got %v, want [%s]", ts, at(cols-1, rows-1))
				}
			},
		},
		{
			name: "Dense(8)",
			opts: []builder.BuildOption{builder.WithSeed(13)},
			ctor: builder.Dense(8),
			check: func(t *testing.T, g *game.Game) {
				if g.NodeCount() != 8 {
					t.Fatalf("nodes: got %d, want 8", g.NodeCount())
				}
				first, _ := g.Node("v0")
				last, _ := g.Node("v7")
				if first.Label != "start" || last.Label != "target" {
					t.Errorf("boundary labels: got %q / %q", first.Label, last.Label)
				}
				if !last.Target {
					t.Errorf("the \"target\"-labelled node is not marked")
				}
				if g.EdgeCount() < 1 || g.EdgeCount() > 8*7 {
					t.Errorf("edges: got %d, want within (0,56]", g.EdgeCount())
				}
				for _, e := range g.Edges() {
					if e.From == e.To {
						t.Errorf("unexpected self-loop %s→%s", e.From, e.To)
					}
				}
			},
		},
		{
			name: "Racing(3,4)",
			opts: []builder.BuildOption{builder.WithSeed(5)},
			ctor: builder.Racing(3, 4),
			check: func(t *testing.T, g *game.Game) {
				// start + 3 lanes × 3 intermediates + goal.
				if g.NodeCount() != 11 {
					t.Fatalf("nodes: got %d, want 11", g.NodeCount())
				}
				// 3 lanes × (3 lane hops + goal hop) + one cross edge.
				if g.EdgeCount() != 13 {
					t.Fatalf("edges: got %d, want 13", g.EdgeCount())
				}
				idx := edgeIndex(g)
				// Fast lane end to end.
				requireEdge(t, idx, "v0", "v1", temporal.Always())
				requireEdge(t, idx, "v1", "v2", temporal.Always())
				requireEdge(t, idx, "v2", "v3", temporal.Always())
				requireEdge(t, idx, "v3", "v10", temporal.Always())
				// Phase-locked lane.
				requireEdge(t, idx, "v0", "v4", mustMod(t, 3, 0))
				requireEdge(t, idx, "v4", "v5", mustMod(t, 3, 1))
				requireEdge(t, idx, "v5", "v6", mustMod(t, 3, 2))
				requireEdge(t, idx, "v6", "v10", mustMod(t, 3, 2))
				// Mixed lane: delayed start, free next-to-last, deadline finish.
				requireEdge(t, idx, "v0", "v7", temporal.GreaterEq(4))
				requireEdge(t, idx, "v8", "v9", temporal.Always())
				requireEdge(t, idx, "v9", "v10", temporal.LessThan(20))
				if ts := g.Targets(); len(ts) != 1 || ts[0] != "v10" {
					t.Errorf("targets: got %v, want [v10]", ts)
				}
			},
		},
		{
			name: "Diamond",
			opts: nil, // the only shape that runs without an RNG
			ctor: builder.Diamond(),
			check: func(t *testing.T, g *game.Game) {
				if g.NodeCount() != 5 || g.EdgeCount() != 9 {
					t.Fatalf("size: got %d nodes / %d edges, want 5/9", g.NodeCount(), g.EdgeCount())
				}
				wantOwners := []int{0, 1, 1, 0, 0}
				for i, id := range g.NodeIDs() {
					nd, _ := g.Node(id)
					if nd.Owner != wantOwners[i] {
						t.Errorf("node %s: owner %d, want %d", id, nd.Owner, wantOwners[i])
					}
				}
				idx := edgeIndex(g)
				requireEdge(t, idx, "v0", "v1", temporal.Always())
				requireEdge(t, idx, "v1", "v3", temporal.Not(mustMod(t, 3, 2)))
				requireEdge(t, idx, "v0", "v2", temporal.GreaterEq(1))
				requireEdge(t, idx, "v2", "v3", temporal.Always())
				requireEdge(t, idx, "v3", "v4", temporal.LessThan(15))
				requireEdge(t, idx, "v0", "v0", mustMod(t, 2, 1))
				requireEdge(t, idx, "v1", "v1", mustMod(t, 4, 0))
				requireEdge(t, idx, "v2", "v2", mustMod(t, 3, 0))
				requireEdge(t, idx, "v4", "v4", temporal.Always())
				if ts := g.Targets(); len(ts) != 1 || ts[0] != "v4" {
					t.Errorf("targets: got %v, want [v4]", ts)
				}
			},
		},
		{
			name: "Benchmark(20)",
			opts: []builder.BuildOption{builder.WithSeed(99)},
			ctor: builder.Benchmark(20),
			check: func(t *testing.T, g *game.Game) {
				if g.NodeCount() != 20 {
					t.Fatalf("nodes: got %d, want 20", g.NodeCount())
				}
				// Volume bound: int(20·U[1.5,3.0)).
				if g.EdgeCount() < 30 || g.EdgeCount() >= 60 {
					t.Errorf("edges: got %d, want within [30,60)", g.EdgeCount())
				}
				for _, id := range g.NodeIDs() {
					if g.OutDegree(id) < 1 {
						t.Errorf("node %s: out-degree 0", id)
					}
					nd, _ := g.Node(id)
					if nd.Owner != 0 && nd.Owner != 1 {
						t.Errorf("node %s: owner %d outside {0,1}", id, nd.Owner)
					}
				}
				// Target volume: max(1, int(20·U[0.1,0.2))).
				if n := len(g.Targets()); n < 1 || n > 4 {
					t.Errorf("targets: got %d, want within [1,4]", n)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGame(tc.opts, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGame: %v", err)
			}
			tc.check(t, g)
		})
	}
}

// TestBuildGame_Determinism rebuilds every shape with the same seed and
// requires structural identity.
func TestBuildGame_Determinism(t *testing.T) {
	t.Parallel()

	shapes := []struct {
		name string
		ctor builder.Constructor
	}{
		{"Chain(9)", builder.Chain(9)},
		{"Cycle(7)", builder.Cycle(7)},
		{"Tree(3,3)", builder.Tree(3, 3)},
		{"Grid(4,4)", builder.Grid(4, 4)},
		{"Dense(9)", builder.Dense(9)},
		{"Racing(4,5)", builder.Racing(4, 5)},
		{"Benchmark(25)", builder.Benchmark(25)},
	}

	for _, sh := range shapes {
		sh := sh
		t.Run(sh.name, func(t *testing.T) {
			t.Parallel()
			opts := func() []builder.BuildOption {
				return []builder.BuildOption{builder.WithSeed(7), builder.WithStateIDs()}
			}
			a, err := builder.BuildGame(opts(), sh.ctor)
			if err != nil {
				t.Fatalf("first build: %v", err)
			}
			b, err := builder.BuildGame(opts(), sh.ctor)
			if err != nil {
				t.Fatalf("second build: %v", err)
			}
			requireSameGame(t, a, b)
		})
	}
}

// TestShapes_Validation exercises every sentinel the constructors return.
func TestShapes_Validation(t *testing.T) {
	t.Parallel()

	seed := []builder.BuildOption{builder.WithSeed(1)}
	tests := []struct {
		name    string
		opts    []builder.BuildOption
		ctor    builder.Constructor
		wantErr error
	}{
		{"Chain_tooSmall", seed, builder.Chain(1), builder.ErrTooFewNodes},
		{"Cycle_tooSmall", seed, builder.Cycle(2), builder.ErrTooFewNodes},
		{"Tree_zeroDepth", seed, builder.Tree(0, 2), builder.ErrTooFewNodes},
		{"Tree_zeroBranch", seed, builder.Tree(2, 0), builder.ErrTooFewNodes},
		{"Grid_thin", seed, builder.Grid(1, 5), builder.ErrTooFewNodes},
		{"Dense_tooSmall", seed, builder.Dense(1), builder.ErrTooFewNodes},
		{"Racing_noPaths", seed, builder.Racing(0, 3), builder.ErrTooFewNodes},
		{"Racing_shortLane", seed, builder.Racing(2, 1), builder.ErrTooFewNodes},
		{"Benchmark_tooSmall", seed, builder.Benchmark(1), builder.ErrTooFewNodes},

		{"Chain_noRNG", nil, builder.Chain(5), builder.ErrNeedRandSource},
		{"Cycle_noRNG", nil, builder.Cycle(4), builder.ErrNeedRandSource},
		{"Tree_noRNG", nil, builder.Tree(2, 2), builder.ErrNeedRandSource},
		{"Grid_noRNG", nil, builder.Grid(2, 2), builder.ErrNeedRandSource},
		{"Dense_noRNG", nil, builder.Dense(4), builder.ErrNeedRandSource},
		{"Racing_noRNG", nil, builder.Racing(2, 3), builder.ErrNeedRandSource},
		{"Benchmark_noRNG", nil, builder.Benchmark(5), builder.ErrNeedRandSource},

		{"Benchmark_invertedTargets",
			[]builder.BuildOption{builder.WithSeed(1), builder.WithTargetFraction(0.5, 0.2)},
			builder.Benchmark(10), builder.ErrBadFraction},
		{"Benchmark_zeroLoTargets",
			[]builder.BuildOption{builder.WithSeed(1), builder.WithTargetFraction(0, 0.2)},
			builder.Benchmark(10), builder.ErrBadFraction},
		{"Benchmark_badEdgeFactor",
			[]builder.BuildOption{builder.WithSeed(1), builder.WithEdgeFactor(2.0, 1.0)},
			builder.Benchmark(10), builder.ErrBadFraction},
		{"Dense_badTargets",
			[]builder.BuildOption{builder.WithSeed(1), builder.WithTargetFraction(2, 3)},
			builder.Dense(5), builder.ErrBadFraction},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGame(tc.opts, tc.ctor)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if g != nil {
				t.Errorf("expected nil game on error, got %v", g)
			}
		})
	}
}

// TestBuildGame_NilConstructor rejects nil constructors up front.
func TestBuildGame_NilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGame(nil, nil)
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("expected ErrConstructFailed, got %v", err)
	}
}

// TestBuildGame_Naming covers the name fallback and the explicit option.
func TestBuildGame_Naming(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGame(nil, builder.Diamond())
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	if g.Name() != game.DefaultName {
		t.Errorf("default name: got %q, want %q", g.Name(), game.DefaultName)
	}

	g, err = builder.BuildGame([]builder.BuildOption{builder.WithGameName("rally")}, builder.Diamond())
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	if g.Name() != "rally" {
		t.Errorf("WithGameName: got %q, want \"rally\"", g.Name())
	}
}

// TestBuildGame_ComposedConstructors verifies sequential composition over one
// shared config: two shapes with disjoint ID ranges cannot collide, so the
// second constructor's nodes land after the first's.
func TestBuildGame_ComposedConstructors(t *testing.T) {
	t.Parallel()

	// Diamond occupies v0..v4; a second Diamond would collide on IDs and must
	// surface the game sentinel through BuildGame's wrapping.
	_, err := builder.BuildGame(nil, builder.Diamond(), builder.Diamond())
	if !errors.Is(err, game.ErrDuplicateNode) {
		t.Fatalf("expected ErrDuplicateNode from the colliding rerun, got %v", err)
	}
}
