// SPDX-License-Identifier: MIT
// Package: tempograph/profile
//
// meta.go - the YAML sidecar written next to every generated game.
//
// The sidecar carries what a benchmark harness needs to re-run one game
// without re-parsing it: instance index, sizes, the solver time bound, the
// seed that produced it, and the target ids. Field order in the document
// follows the struct; targets render in flow style.

package profile

import (
	"fmt"
	"math/rand"

	"github.com/goccy/go-yaml"
)

// File-local method tags for error context.
const (
	methodEncodeMeta = "EncodeMeta"
	methodDecodeMeta = "DecodeMeta"
	methodTimeBound  = "TimeBound"
)

// Meta describes one generated game instance.
type Meta struct {
	Game      int      `yaml:"game"`
	Vertices  int      `yaml:"vertices"`
	Edges     int      `yaml:"edges"`
	TimeBound int      `yaml:"time_bound"`
	Seed      int64    `yaml:"seed"`
	Targets   []string `yaml:"targets,flow"`
}

// EncodeMeta renders m as a YAML document.
func EncodeMeta(m Meta) ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEncodeMeta, err)
	}

	return out, nil
}

// DecodeMeta parses a YAML sidecar back into a Meta.
func DecodeMeta(data []byte) (Meta, error) {
	var m Meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Meta{}, fmt.Errorf("%s: %w", methodDecodeMeta, err)
	}

	return m, nil
}

// TimeBound draws a solver time bound for an n-node game, uniform over the
// inclusive range [max(5, n/10), max(10, n/5)]: bounds that scale with the
// game and never collapse below the smallest useful horizon.
func TimeBound(rng *rand.Rand, n int) (int, error) {
	if rng == nil {
		return 0, fmt.Errorf("%s: %w", methodTimeBound, ErrNilRand)
	}

	lo, hi := 5, 10
	if n/10 > lo {
		lo = n / 10
	}
	if n/5 > hi {
		hi = n / 5
	}

	return lo + rng.Intn(hi-lo+1), nil
}
