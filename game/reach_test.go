package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// diamond builds s -> {l, r} -> goal with a detached island node.
func diamond(t *testing.T) *game.Game {
	t.Helper()
	g := game.NewGame("diamond")
	for i, id := range []string{"s", "l", "r", "goal", "island"} {
		require.NoError(t, g.AddNode(id, "", i%2))
	}
	require.NoError(t, g.AddEdge("s", "l", temporal.Always()))
	require.NoError(t, g.AddEdge("s", "r", temporal.GreaterEq(2)))
	require.NoError(t, g.AddEdge("l", "goal", temporal.Always()))
	require.NoError(t, g.AddEdge("r", "goal", temporal.Always()))
	require.NoError(t, g.MarkTarget("goal"))
	return g
}

func TestReachableFrom_VisitOrder(t *testing.T) {
	g := diamond(t)
	assert.Equal(t, []string{"s", "l", "r", "goal"}, game.ReachableFrom(g, "s"),
		"BFS layer order, neighbors in edge insertion order")
	assert.Equal(t, []string{"l", "goal"}, game.ReachableFrom(g, "l"))
	assert.Equal(t, []string{"island"}, game.ReachableFrom(g, "island"))
}

func TestReachableFrom_IgnoresConstraints(t *testing.T) {
	// The s->r edge is gated on time >= 2; structural reachability must
	// still include r.
	g := diamond(t)
	assert.Contains(t, game.ReachableFrom(g, "s"), "r")
}

func TestReachableFrom_UnknownStart(t *testing.T) {
	g := diamond(t)
	assert.Nil(t, game.ReachableFrom(g, "ghost"))
	assert.Nil(t, game.ReachableFrom(nil, "s"))
}

func TestCannotReachTarget(t *testing.T) {
	g := diamond(t)
	assert.Equal(t, []string{"island"}, game.CannotReachTarget(g))
}

func TestCannotReachTarget_NoTargets(t *testing.T) {
	g := game.NewGame("t")
	require.NoError(t, g.AddNode("a", "", 0))
	require.NoError(t, g.AddNode("b", "", 1))
	require.NoError(t, g.AddEdge("a", "b", temporal.Always()))

	assert.Equal(t, []string{"a", "b"}, game.CannotReachTarget(g),
		"with no targets every node trivially fails")
}

func TestCannotReachTarget_TargetCountsAsReaching(t *testing.T) {
	g := game.NewGame("t")
	require.NoError(t, g.AddNode("a", "", 0))
	require.NoError(t, g.AddNode("goal", "", 1))
	require.NoError(t, g.AddEdge("a", "goal", temporal.Always()))
	require.NoError(t, g.MarkTarget("goal"))

	assert.Empty(t, game.CannotReachTarget(g),
		"a target reaches itself; its predecessors reach it")
}

func TestCannotReachTarget_SkipsDanglingEdges(t *testing.T) {
	g := game.NewGame("t")
	require.NoError(t, g.AddNode("a", "", 0))
	require.NoError(t, g.AddNode("goal", "", 1))
	require.NoError(t, g.AddEdge("a", "ghost", temporal.Always()))
	require.NoError(t, g.AddEdge("ghost", "goal", temporal.Always()))
	require.NoError(t, g.MarkTarget("goal"))

	// The path a -> ghost -> goal runs through an undeclared node, so it
	// must not count.
	assert.Equal(t, []string{"a"}, game.CannotReachTarget(g))
}

func TestReachability_CycleTerminates(t *testing.T) {
	g := game.NewGame("ring")
	const n = 5
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
		require.NoError(t, g.AddNode(ids[i], "", i%2))
	}
	for i := range ids {
		require.NoError(t, g.AddEdge(ids[i], ids[(i+1)%n], temporal.Always()))
	}
	require.NoError(t, g.MarkTarget("c"))

	assert.Len(t, game.ReachableFrom(g, "a"), n)
	assert.Empty(t, game.CannotReachTarget(g))
}
