package temporal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/temporal"
)

func TestHoldsAt_AtomicShapes(t *testing.T) {
	mod3, err := temporal.Mod(3, 1)
	require.NoError(t, err)
	set, err := temporal.Set(0, 3, 7)
	require.NoError(t, err)

	cases := []struct {
		name string
		c    temporal.Constraint
		t    int
		want bool
	}{
		{"always holds at zero", temporal.Always(), 0, true},
		{"always holds at negative", temporal.Always(), -5, true},
		{"eq at instant", temporal.Eq(5), 5, true},
		{"eq off instant", temporal.Eq(5), 4, false},
		{"ge at bound", temporal.GreaterEq(3), 3, true},
		{"ge below bound", temporal.GreaterEq(3), 2, false},
		{"lt below bound", temporal.LessThan(4), 3, true},
		{"lt at bound", temporal.LessThan(4), 4, false},
		{"le at bound", temporal.LessEq(4), 4, true},
		{"le above bound", temporal.LessEq(4), 5, false},
		{"mod hit", mod3, 7, true},
		{"mod miss", mod3, 6, false},
		{"mod canonical residue below zero", mod3, -2, true},
		{"mod miss below zero", mod3, -1, false},
		{"set member", set, 3, true},
		{"set non-member", set, 4, false},
		{"set below range", set, -1, false},
		{"set above range", set, 8, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.HoldsAt(tc.t))
		})
	}
}

func TestHoldsAt_CompoundShapes(t *testing.T) {
	window := temporal.And(temporal.GreaterEq(2), temporal.LessEq(5))
	for tm := 0; tm <= 8; tm++ {
		assert.Equal(t, tm >= 2 && tm <= 5, window.HoldsAt(tm), "t=%d", tm)
	}

	either := temporal.Or(temporal.Eq(1), temporal.Eq(6))
	assert.True(t, either.HoldsAt(1))
	assert.True(t, either.HoldsAt(6))
	assert.False(t, either.HoldsAt(3))

	mod4, err := temporal.Mod(4, 0)
	require.NoError(t, err)
	blocked := temporal.Not(mod4)
	assert.False(t, blocked.HoldsAt(0))
	assert.True(t, blocked.HoldsAt(1))
	assert.False(t, blocked.HoldsAt(8))
}

// The infix printer and the direct evaluator must agree on every fixed shape
// over a representative horizon.
func TestVerifyInfix_FixedShapes(t *testing.T) {
	mod5, err := temporal.Mod(5, 2)
	require.NoError(t, err)
	set, err := temporal.Set(0, 3, 7, 11)
	require.NoError(t, err)

	values := []temporal.Constraint{
		temporal.Always(),
		temporal.Eq(5),
		temporal.GreaterEq(3),
		temporal.LessThan(15),
		temporal.LessEq(25),
		mod5,
		set,
		temporal.Not(mod5),
		temporal.And(temporal.GreaterEq(2), temporal.LessEq(10)),
		temporal.Or(temporal.Eq(0), set),
		temporal.And(temporal.Not(temporal.LessThan(3)), temporal.Or(mod5, temporal.Eq(8))),
	}
	for _, c := range values {
		assert.NoError(t, temporal.VerifyInfix(c, 40), "constraint %q", c.Infix())
	}
}

// Cross-check the printer over a synthesized sample: any divergence between
// the infix text and HoldsAt would surface here as ErrMismatch.
func TestVerifyInfix_SynthesizedSample(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	w := temporal.ShapeWeights{
		Always:      1,
		Equality:    1,
		Modulo:      1,
		GreaterEq:   1,
		Less:        1,
		ExplicitSet: 1,
		Conjunction: 1,
		Disjunction: 1,
		Negation:    1,
	}
	for i := 0; i < 200; i++ {
		c, err := temporal.Synthesize(rng, w)
		require.NoError(t, err)
		require.NoError(t, temporal.VerifyInfix(c, 32), "draw %d: %q", i, c.Infix())
	}
}

func TestVerifyInfix_ZeroHorizonChecksOrigin(t *testing.T) {
	assert.NoError(t, temporal.VerifyInfix(temporal.Eq(0), 0))
	assert.NoError(t, temporal.VerifyInfix(temporal.Eq(9), 0))
}
