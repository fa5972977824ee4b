// Package codec serializes temporal-reachability games to and from the two
// on-disk text formats of the benchmarking corpus:
//
//   - .tg  — node/edge declarations with Polish constraint clauses; the
//     authoritative round-trip format (WriteTG / EncodeTG / ReadTG).
//   - .dot — a digraph projection with infix constraint attributes, written
//     for DOT-consuming tools and read back structurally only
//     (WriteDOT / EncodeDOT / ReadDOT).
//
// Reading is line-classified and never fatal: malformed lines, duplicate
// declarations, unknown target ids and unparseable constraint clauses are
// recorded per line in a ReadReport while the rest of the file loads. Both
// writers emit in the game's insertion order, so equal games produce
// byte-identical documents.
//
// The codecs stay permissive on purpose: out-of-range owners and dangling
// edge endpoints load as written, and game.Validate reports them afterwards.
package codec
