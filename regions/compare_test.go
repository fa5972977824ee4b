// SPDX-License-Identifier: MIT
// Package: tempograph/regions (tests)

package regions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/regions"
)

func TestCompare_Mismatch(t *testing.T) {
	a := regions.NewSet("s0", "s1")
	b := regions.NewSet("s1", "s2")

	c := regions.Compare(a, b)
	require.False(t, c.Equal)
	require.Equal(t, []string{"s0"}, c.OnlyA.Sorted())
	require.Equal(t, []string{"s2"}, c.OnlyB.Sorted())
	require.Equal(t, []string{"s1"}, c.Both.Sorted())
}

func TestCompare_EqualIncludingEmpty(t *testing.T) {
	c := regions.Compare(nil, regions.NewSet())
	require.True(t, c.Equal, "empty equals empty, nil included")
	require.Zero(t, c.OnlyA.Len())
	require.Zero(t, c.OnlyB.Len())
	require.Zero(t, c.Both.Len())

	same := regions.NewSet("v0", "v1")
	c = regions.Compare(same, regions.NewSet("v1", "v0"))
	require.True(t, c.Equal)
	require.Equal(t, []string{"v0", "v1"}, c.Both.Sorted(), "witnesses populate even on agreement")
}
