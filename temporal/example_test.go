package temporal_test

import (
	"fmt"

	"github.com/katalvlaran/tempograph/temporal"
)

// ExampleParsePolish parses a compound availability window and shows both
// concrete syntaxes derived from the same tree.
func ExampleParsePolish() {
	c, err := temporal.ParsePolish("(and (>= t 2) (= (mod t 3) 1))")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Kind())
	fmt.Println(c.Polish())
	fmt.Println(c.Infix())
	// Output:
	// and
	// (and (>= t 2) (= (mod t 3) 1))
	// (time >= 2) && (time % 3 == 1)
}

// ExamplePolishToInfix converts an explicit time set; membership becomes a
// flat disjunction of equalities in the infix syntax.
func ExamplePolishToInfix() {
	infix, err := temporal.PolishToInfix("(0,3,7)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(infix)
	// Output:
	// time == 0 || time == 3 || time == 7
}

// ExampleTranslateBatch converts a mixed batch: the malformed middle item
// falls back to the always-available edge and is reported as a warning,
// while its neighbors convert normally.
func ExampleTranslateBatch() {
	items := []temporal.BatchItem{
		{ID: "a->b", Polish: "(= t 4)"},
		{ID: "b->c", Polish: "(xor (>= t 1) (< t 2))"},
		{ID: "c->a", Polish: "(not (= (mod t 4) 0))"},
	}
	out, warnings := temporal.TranslateBatch(items)

	fmt.Printf("%q\n", out)
	fmt.Println("warnings:", len(warnings), "on", warnings[0].ID)
	// Output:
	// ["time == 4" "" "!(time % 4 == 0)"]
	// warnings: 1 on b->c
}

// ExampleConstraint_HoldsAt evaluates a modular constraint over the first
// few time steps.
func ExampleConstraint_HoldsAt() {
	c, err := temporal.Mod(3, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for t := 0; t <= 6; t++ {
		fmt.Printf("t=%d %v\n", t, c.HoldsAt(t))
	}
	// Output:
	// t=0 true
	// t=1 false
	// t=2 false
	// t=3 true
	// t=4 false
	// t=5 false
	// t=6 true
}
