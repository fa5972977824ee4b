// SPDX-License-Identifier: MIT
// Package: tempograph/regions (examples)

package regions_test

import (
	"fmt"

	"github.com/katalvlaran/tempograph/regions"
)

// ExampleCompare cross-checks the time-0 region of a timed solver against
// the reachability player's region of a per-player solver.
func ExampleCompare() {
	timed := regions.ParseTimed(`W_0 = {"s0", "s1"}`)
	players := regions.ParsePlayers(`Player 0:
Winning regions:
  {s1, s2}
`)

	c := regions.Compare(timed[0], players[0])
	fmt.Println("equal:", c.Equal)
	fmt.Println("only timed:", c.OnlyA)
	fmt.Println("only players:", c.OnlyB)
	fmt.Println("both:", c.Both)
	// Output:
	// equal: false
	// only timed: {s0}
	// only players: {s2}
	// both: {s1}
}
