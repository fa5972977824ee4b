// SPDX-License-Identifier: MIT
// Package: tempograph/profile
//
// profile.go - HCL generation profiles.
//
// A profile is a static HCL document: one optional top-level seed plus
// labeled suite blocks. Suites carry data, not behavior; shape names
// resolve to constructors in the command layer, and fraction pairs are
// range-checked by the builder that consumes them. Validation here is
// structural: the file must decode, every suite must be well-formed, and
// the weights attribute must evaluate to a number-valued map over known
// shape names.
//
// Determinism: profiles never reference variables or functions, so every
// expression evaluates against a nil EvalContext; a profile file decodes
// to the same Profile value on every load.

package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/tempograph/temporal"
)

// File-local method tags for error context.
const (
	methodLoad     = "Load"
	methodParse    = "Parse"
	methodValidate = "Validate"
	methodWeights  = "ShapeWeights"
)

// Profile is one generation profile: a default seed and the suites to run.
type Profile struct {
	// Seed drives suite generation when non-zero; zero means the caller
	// picks (the CLI falls back to wall-clock time).
	Seed   int64    `hcl:"seed,optional"`
	Suites []*Suite `hcl:"suite,block"`
}

// Suite describes one batch of games: a shape, the node counts to sweep,
// and how many instances to generate per count.
type Suite struct {
	Name  string `hcl:"name,label"`
	Shape string `hcl:"shape"`
	Sizes []int  `hcl:"sizes"`
	Count int    `hcl:"count"`

	// EdgeFactor and TargetFraction override the builder's [lo, hi] draw
	// ranges when present. Length is checked here; ordering and range are
	// the consuming builder's concern, so a bad pair fails the build with
	// builder context, not the load.
	EdgeFactor     []float64 `hcl:"edge_factor,optional"`
	TargetFraction []float64 `hcl:"target_fraction,optional"`

	// Weights is the raw constraint-distribution attribute, decoded on
	// demand by ShapeWeights. Kept as an expression so unknown keys can be
	// reported by name.
	Weights hcl.Expression `hcl:"weights,optional"`
}

// weightFields maps weights-attribute keys to ShapeWeights fields.
var weightFields = map[string]func(*temporal.ShapeWeights, float64){
	"always":     func(w *temporal.ShapeWeights, v float64) { w.Always = v },
	"equality":   func(w *temporal.ShapeWeights, v float64) { w.Equality = v },
	"modulo":     func(w *temporal.ShapeWeights, v float64) { w.Modulo = v },
	"greater_eq": func(w *temporal.ShapeWeights, v float64) { w.GreaterEq = v },
	"less":       func(w *temporal.ShapeWeights, v float64) { w.Less = v },
	"set":        func(w *temporal.ShapeWeights, v float64) { w.ExplicitSet = v },
	"conj":       func(w *temporal.ShapeWeights, v float64) { w.Conjunction = v },
	"disj":       func(w *temporal.ShapeWeights, v float64) { w.Disjunction = v },
	"negation":   func(w *temporal.ShapeWeights, v float64) { w.Negation = v },
}

// Load reads, decodes and validates a profile file.
func Load(path string) (*Profile, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s: %w", methodLoad, path, diags)
	}

	return decode(methodLoad, file)
}

// Parse decodes and validates an in-memory profile document. The filename
// only labels diagnostics.
func Parse(src []byte, filename string) (*Profile, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s: %w", methodParse, filename, diags)
	}

	return decode(methodParse, file)
}

// decode maps a parsed HCL file onto Profile and validates the result.
func decode(method string, file *hcl.File) (*Profile, error) {
	var p Profile
	if diags := gohcl.DecodeBody(file.Body, nil, &p); diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", method, diags)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &p, nil
}

// Validate checks the profile's structural rules: at least one suite,
// unique suite labels, and every suite well-formed per Suite.validate.
func (p *Profile) Validate() error {
	if len(p.Suites) == 0 {
		return fmt.Errorf("%s: no suite blocks: %w", methodValidate, ErrInvalidSuite)
	}
	seen := make(map[string]bool, len(p.Suites))
	for _, s := range p.Suites {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%s: %w", methodValidate, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("%s: duplicate suite %q: %w", methodValidate, s.Name, ErrInvalidSuite)
		}
		seen[s.Name] = true
	}

	return nil
}

// validate checks one suite block. Shape names are deliberately not checked
// against a catalogue here; the command layer owns the name→constructor
// mapping and reports unknown shapes with usage context.
func (s *Suite) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("suite label is empty: %w", ErrInvalidSuite)
	case s.Shape == "":
		return fmt.Errorf("suite %q: shape is empty: %w", s.Name, ErrInvalidSuite)
	case len(s.Sizes) == 0:
		return fmt.Errorf("suite %q: sizes is empty: %w", s.Name, ErrInvalidSuite)
	case s.Count < 1:
		return fmt.Errorf("suite %q: count %d: %w", s.Name, s.Count, ErrInvalidSuite)
	}
	for _, n := range s.Sizes {
		if n < 1 {
			return fmt.Errorf("suite %q: size %d: %w", s.Name, n, ErrInvalidSuite)
		}
	}
	if s.EdgeFactor != nil && len(s.EdgeFactor) != 2 {
		return fmt.Errorf("suite %q: edge_factor wants [lo, hi], got %d values: %w", s.Name, len(s.EdgeFactor), ErrInvalidSuite)
	}
	if s.TargetFraction != nil && len(s.TargetFraction) != 2 {
		return fmt.Errorf("suite %q: target_fraction wants [lo, hi], got %d values: %w", s.Name, len(s.TargetFraction), ErrInvalidSuite)
	}
	if _, err := s.ShapeWeights(); err != nil {
		return err
	}

	return nil
}

// ShapeWeights evaluates the weights attribute. An absent attribute means
// the default distribution; a present one defines the distribution in full,
// with omitted shapes at zero. Value ranges are not checked here, the
// synthesizer validates the distribution on use.
func (s *Suite) ShapeWeights() (temporal.ShapeWeights, error) {
	if s.Weights == nil {
		return temporal.DefaultShapeWeights(), nil
	}

	// 1) Evaluate statically: profiles carry no variables.
	val, diags := s.Weights.Value(nil)
	if diags.HasErrors() {
		return temporal.ShapeWeights{}, fmt.Errorf("%s: suite %q: weights: %w", methodWeights, s.Name, diags)
	}
	if val.IsNull() {
		return temporal.DefaultShapeWeights(), nil
	}
	if ty := val.Type(); !ty.IsObjectType() && !ty.IsMapType() {
		return temporal.ShapeWeights{}, fmt.Errorf("%s: suite %q: weights is %s, want a map: %w", methodWeights, s.Name, ty.FriendlyName(), ErrInvalidSuite)
	}

	// 2) Traverse the map; every key must name a shape, every value must
	// be a number.
	var w temporal.ShapeWeights
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name := k.AsString()
		assign, known := weightFields[name]
		if !known {
			return temporal.ShapeWeights{}, fmt.Errorf("%s: suite %q: weight %q: %w", methodWeights, s.Name, name, ErrUnknownWeight)
		}
		if v.Type() != cty.Number {
			return temporal.ShapeWeights{}, fmt.Errorf("%s: suite %q: weight %q is %s, want number: %w", methodWeights, s.Name, name, v.Type().FriendlyName(), ErrInvalidSuite)
		}
		f, _ := v.AsBigFloat().Float64()
		assign(&w, f)
	}

	return w, nil
}
