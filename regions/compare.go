// SPDX-License-Identifier: MIT
// Package: tempograph/regions
//
// compare.go - exact winning-region agreement.

package regions

// Comparison is the outcome of Compare: exact equality plus the witness
// sets that explain a mismatch. The witnesses are always populated, so a
// report can show the overlap even when the verdict is equal.
type Comparison struct {
	Equal bool
	OnlyA Set // members of a absent from b
	OnlyB Set // members of b absent from a
	Both  Set // members of both
}

// Compare evaluates two regions by pure set algebra. Equality is exact,
// empty-vs-empty included; the operands are never modified, and nil inputs
// read as empty.
func Compare(a, b Set) Comparison {
	return Comparison{
		Equal: a.Equal(b),
		OnlyA: a.Difference(b),
		OnlyB: b.Difference(a),
		Both:  a.Intersect(b),
	}
}
