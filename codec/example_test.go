// SPDX-License-Identifier: MIT
// Package: tempograph/codec (examples)

package codec_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tempograph/codec"
	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// ExampleEncodeTG serializes a two-node game in the .tg form: the targets
// directive leads, node declarations follow in insertion order, and the
// Always edge carries no constraint clause.
func ExampleEncodeTG() {
	g := game.NewGame("demo")
	_ = g.AddNode("a", "start", 0)
	_ = g.AddNode("b", "", 1)
	_ = g.MarkTarget("b")

	mod, _ := temporal.Mod(2, 1)
	_ = g.AddEdge("a", "b", temporal.Always())
	_ = g.AddEdge("b", "b", mod)

	fmt.Print(codec.EncodeTG(g))
	// Output:
	// // targets: b
	// node a: label["start"], owner[0]
	// node b: label["b"], owner[1]
	//
	// edge a -> b
	// edge b -> b: (= (mod t 2) 1)
}

// ExampleReadTG loads a benchmark-style document (label-less node lines)
// and reports what survived.
func ExampleReadTG() {
	const doc = `// targets: v1
node v0: owner[0]
node v1: owner[1]

edge v0 -> v1: (>= t 3)
edge v1 -> v1
`

	g, rep, _ := codec.ReadTG(strings.NewReader(doc))
	fmt.Println("nodes:", rep.Nodes, "edges:", rep.Edges, "clean:", rep.OK())
	fmt.Println("targets:", g.Targets())
	// Output:
	// nodes: 2 edges: 2 clean: true
	// targets: [v1]
}

// ExampleEncodeDOT shows the digraph projection: names and players as node
// attributes, constraints as infix attribute text.
func ExampleEncodeDOT() {
	g := game.NewGame("demo")
	_ = g.AddNode("a", "", 0)
	_ = g.AddNode("b", "", 1)
	_ = g.MarkTarget("b")
	_ = g.AddEdge("a", "b", temporal.LessThan(15))

	fmt.Print(codec.EncodeDOT(g))
	// Output:
	// digraph demo {
	//     a [name="a", player=0];
	//     b [name="b", player=1, target=1];
	//
	//     a -> b [constraint="time < 15"];
	// }
}
