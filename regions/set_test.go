// SPDX-License-Identifier: MIT
// Package: tempograph/regions (tests)

package regions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/regions"
)

func TestSet_NilSafety(t *testing.T) {
	var s regions.Set

	require.False(t, s.Has("v0"))
	require.Zero(t, s.Len())
	require.Empty(t, s.Sorted())
	require.Equal(t, "{}", s.String())
	require.True(t, s.Equal(regions.NewSet()))
	require.True(t, s.Equal(nil))

	other := regions.NewSet("a")
	require.Equal(t, []string{"a"}, s.Union(other).Sorted())
	require.Zero(t, s.Intersect(other).Len())
	require.Zero(t, s.Difference(other).Len())
	require.Equal(t, []string{"a"}, other.Difference(s).Sorted())

	// Add allocates on a nil receiver.
	s = s.Add("v0", "v1")
	require.True(t, s.Has("v0"))
	require.Equal(t, 2, s.Len())
}

func TestSet_Algebra(t *testing.T) {
	a := regions.NewSet("s0", "s1", "s1")
	b := regions.NewSet("s1", "s2")

	require.Equal(t, 2, a.Len(), "NewSet deduplicates")
	require.Equal(t, []string{"s0", "s1"}, a.Sorted())

	require.Equal(t, []string{"s0", "s1", "s2"}, a.Union(b).Sorted())
	require.Equal(t, []string{"s1"}, a.Intersect(b).Sorted())
	require.Equal(t, []string{"s0"}, a.Difference(b).Sorted())
	require.Equal(t, []string{"s2"}, b.Difference(a).Sorted())

	// Purity: the operands are unchanged.
	require.Equal(t, []string{"s0", "s1"}, a.Sorted())
	require.Equal(t, []string{"s1", "s2"}, b.Sorted())
}

func TestSet_Equal(t *testing.T) {
	require.True(t, regions.NewSet("x", "y").Equal(regions.NewSet("y", "x")))
	require.False(t, regions.NewSet("x").Equal(regions.NewSet("x", "y")))
	require.False(t, regions.NewSet("x").Equal(regions.NewSet("z")))
}

func TestSet_String(t *testing.T) {
	require.Equal(t, "{}", regions.NewSet().String())
	require.Equal(t, "{a, b}", regions.NewSet("b", "a").String())
}
