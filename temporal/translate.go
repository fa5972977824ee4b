// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// translate.go - conversion between the two concrete syntaxes.
//
// Contract:
//   • The only translation direction is Polish → AST → Infix. Infix text is
//     solver output consumed as an opaque string; no infix parser exists
//     anywhere in the module.
//   • Batch conversion is per-item: a malformed item never aborts the batch.
//     The item falls back to Always (the empty infix string) because Always
//     cannot under-constrain a player's winning strategy while remaining
//     syntactically valid, and a Warning records the item's identifier.
//   • Every conversion is referentially transparent; items share no state,
//     so callers may parallelize batches with no coordination.

package temporal

import "fmt"

const methodTranslate = "PolishToInfix"

// PolishToInfix converts one Polish constraint text into the infix syntax.
// Empty input converts to the empty string (Always). Malformed input returns
// an error wrapping ErrMalformed and an empty result.
func PolishToInfix(text string) (string, error) {
	c, err := ParsePolish(text)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodTranslate, err)
	}

	return c.Infix(), nil
}

// BatchItem is one unit of batch translation: an identifier used in
// warnings (file name, edge index, corpus key) and the Polish text.
type BatchItem struct {
	ID     string
	Polish string
}

// Warning records one per-item fallback during TranslateBatch.
type Warning struct {
	// ID names the offending item, as given in the BatchItem.
	ID string
	// Err is the parse failure; it wraps ErrMalformed.
	Err error
}

// String renders the warning as a stable single line.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.ID, w.Err)
}

// TranslateBatch converts items independently and returns the infix texts
// aligned with the input by index, plus one Warning per failed item. Failed
// items yield the conservative fallback Always (empty infix). The warnings
// slice is nil when every item converted.
func TranslateBatch(items []BatchItem) ([]string, []Warning) {
	out := make([]string, len(items))
	var warnings []Warning
	for i, item := range items {
		c, err := ParsePolish(item.Polish)
		if err != nil {
			warnings = append(warnings, Warning{ID: item.ID, Err: err})
			// Fallback: Always renders as the empty string in both syntaxes.
			out[i] = ""

			continue
		}
		out[i] = c.Infix()
	}

	return out, warnings
}
