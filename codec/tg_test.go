// SPDX-License-Identifier: MIT
// Package: tempograph/codec (tests)
//
// tg_test.go - .tg emission layout, round-trip fidelity, and per-line
// recovery behavior of ReadTG.

package codec_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/builder"
	"github.com/katalvlaran/tempograph/codec"
	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// demoGame builds a two-node game touching every .tg feature: a custom
// label, a defaulted label, a target, an unconstrained edge and a
// constrained self-loop.
func demoGame(t *testing.T) *game.Game {
	t.Helper()

	g := game.NewGame("demo")
	require.NoError(t, g.AddNode("a", "start", 0))
	require.NoError(t, g.AddNode("b", "", 1))
	require.NoError(t, g.MarkTarget("b"))
	require.NoError(t, g.AddEdge("a", "b", temporal.Always()))
	mod, err := temporal.Mod(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("b", "b", mod))

	return g
}

// requireSameStructure asserts that two games agree on node order, node
// fields, and the full edge list with structurally equal constraints. The
// name is deliberately not compared: the .tg format does not carry it.
func requireSameStructure(t *testing.T, want, got *game.Game) {
	t.Helper()

	require.Equal(t, want.NodeIDs(), got.NodeIDs())
	require.Equal(t, want.Nodes(), got.Nodes())

	wantEdges, gotEdges := want.Edges(), got.Edges()
	require.Len(t, gotEdges, len(wantEdges))
	for i := range wantEdges {
		require.Equal(t, wantEdges[i].From, gotEdges[i].From, "edge %d", i)
		require.Equal(t, wantEdges[i].To, gotEdges[i].To, "edge %d", i)
		require.True(t, wantEdges[i].Constraint.Equal(gotEdges[i].Constraint),
			"edge %d: want %q, got %q", i, wantEdges[i].Constraint, gotEdges[i].Constraint)
	}
}

func TestWriteTG_Layout(t *testing.T) {
	want := `// targets: b
node a: label["start"], owner[0]
node b: label["b"], owner[1]

edge a -> b
edge b -> b: (= (mod t 2) 1)
`
	if diff := cmp.Diff(want, codec.EncodeTG(demoGame(t))); diff != "" {
		t.Fatalf("EncodeTG mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTG_NoTargetsNoDirective(t *testing.T) {
	g := game.NewGame("")
	require.NoError(t, g.AddNode("a", "", 0))
	require.NoError(t, g.AddEdge("a", "a", temporal.Always()))

	text := codec.EncodeTG(g)
	require.False(t, strings.Contains(text, "targets"), "directive written for a target-less game:\n%s", text)
	require.True(t, strings.HasPrefix(text, "node a:"), "unexpected leading line:\n%s", text)
}

func TestTG_RoundTrip_SeededChain(t *testing.T) {
	orig, err := builder.BuildGame(
		[]builder.BuildOption{builder.WithSeed(7)},
		builder.Chain(6),
	)
	require.NoError(t, err)

	text := codec.EncodeTG(orig)
	got, rep, err := codec.ReadTG(strings.NewReader(text))
	require.NoError(t, err)
	require.True(t, rep.OK(), "unexpected line errors: %v", rep.Errors)
	require.Equal(t, 6, rep.Nodes)
	require.Equal(t, 8, rep.Edges)
	require.Zero(t, rep.DroppedConstraints)

	requireSameStructure(t, orig, got)
	require.Empty(t, game.Validate(got))

	// Emission is insertion-ordered on both sides, so re-encoding the loaded
	// game reproduces the document byte for byte.
	if diff := cmp.Diff(text, codec.EncodeTG(got)); diff != "" {
		t.Fatalf("re-encode mismatch (-first +second):\n%s", diff)
	}
}

func TestReadTG_Recovery(t *testing.T) {
	const defective = `// banner comment
// targets: v0,ghost
node v0: owner[0]
node v0: label["dup"], owner[1]
node v1: label["one"], owner[3]
garbage here
edge v0 -> v1: (= t nonsense)
edge v0 -> missing
edge v1 -> v0: (>= t 2)
`

	g, rep, err := codec.ReadTG(strings.NewReader(defective))
	require.NoError(t, err)

	// Structure that survived.
	require.Equal(t, []string{"v0", "v1"}, g.NodeIDs())
	v0, ok := g.Node("v0")
	require.True(t, ok)
	require.Equal(t, game.Node{ID: "v0", Owner: 0, Label: "v0", Target: true}, v0)
	v1, ok := g.Node("v1")
	require.True(t, ok)
	require.Equal(t, game.Node{ID: "v1", Owner: 3, Label: "one", Target: false}, v1)

	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, temporal.AlwaysKind, edges[0].Constraint.Kind(), "fallback expected for the unparseable clause")
	require.Equal(t, "missing", edges[1].To)
	require.True(t, edges[2].Constraint.Equal(temporal.GreaterEq(2)))

	// Report bookkeeping.
	require.Equal(t, 9, rep.Lines)
	require.Equal(t, 2, rep.Nodes)
	require.Equal(t, 3, rep.Edges)
	require.Equal(t, 1, rep.DroppedConstraints)
	require.False(t, rep.OK())
	require.Len(t, rep.Errors, 4)

	require.Equal(t, 4, rep.Errors[0].Line)
	require.ErrorIs(t, rep.Errors[0], game.ErrDuplicateNode)
	require.Equal(t, 6, rep.Errors[1].Line)
	require.ErrorIs(t, rep.Errors[1], codec.ErrMalformedLine)
	require.Equal(t, `line 6: codec: malformed line: "garbage here"`, rep.Errors[1].Error())
	require.Equal(t, 7, rep.Errors[2].Line)
	require.ErrorIs(t, rep.Errors[2], temporal.ErrMalformed)
	require.Equal(t, 2, rep.Errors[3].Line, "directive failures resolve after the scan")
	require.ErrorIs(t, rep.Errors[3], game.ErrNodeNotFound)

	// The loaded game is inspectable and the validator owns the rest.
	kinds := make([]game.ViolationKind, 0, 2)
	for _, v := range game.Validate(g) {
		kinds = append(kinds, v.Kind)
	}
	require.Equal(t, []game.ViolationKind{game.BadOwner, game.DanglingEdge}, kinds)
}

func TestReadTG_LabelLessBenchmarkFormat(t *testing.T) {
	// Benchmark corpus files omit the label clause entirely.
	const doc = `// Benchmark game 3 - 2 vertices
// time_bound: 7
// targets: v1
node v0: owner[0]
node v1: owner[1]

edge v0 -> v1: (= t 4)
edge v1 -> v1
`

	g, rep, err := codec.ReadTG(strings.NewReader(doc))
	require.NoError(t, err)
	require.True(t, rep.OK(), "unexpected line errors: %v", rep.Errors)

	v0, ok := g.Node("v0")
	require.True(t, ok)
	require.Equal(t, "v0", v0.Label, "label defaults to the id")
	require.Equal(t, []string{"v1"}, g.Targets())
	require.True(t, g.Edges()[0].Constraint.Equal(temporal.Eq(4)))
	require.Equal(t, temporal.AlwaysKind, g.Edges()[1].Constraint.Kind())
}

func TestTG_NilArguments(t *testing.T) {
	require.ErrorIs(t, codec.WriteTG(&strings.Builder{}, nil), codec.ErrNilGame)
	require.Equal(t, "", codec.EncodeTG(nil))

	_, _, err := codec.ReadTG(nil)
	require.ErrorIs(t, err, codec.ErrNilReader)
}
