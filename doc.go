// Package tempograph is a workbench for temporal reachability games:
// generate them, convert them between solver formats, validate them, and
// compare the winning regions two solvers report for the same game.
//
// 🚀 What is tempograph?
//
//	A deterministic toolkit that brings together:
//		• Temporal constraints: Polish-notation parsing, infix printing,
//		  direct evaluation and semantic cross-checking
//		• Games: nodes with owners and targets, constrained edges,
//		  structural validation and target reachability
//		• Builders: eight seeded game shapes, from benchmark corpora to
//		  the fixed strategic diamond
//		• Codecs: the .tg and .dot text formats with line-level recovery
//		• Regions: solver-output parsing and winning-region comparison
//		• Harness: sequential external solver runs with timeout outcomes
//
// ✨ Why choose tempograph?
//
//   - Deterministic by construction – every random draw threads an
//     explicit seed, so corpora reproduce byte for byte
//   - Permissive readers, exact writers – malformed input degrades per
//     line, emitted documents round-trip identically
//   - Explicit errors – sentinel errors everywhere, panics reserved for
//     programmer mistakes in option constructors
//
// Everything is organized under focused subpackages:
//
//	temporal/ — constraint AST, Polish parser, printers, synthesis, semantics
//	game/     — game container, structural validation, reachability
//	builder/  — seeded shape constructors behind functional options
//	codec/    — .tg and .dot reading and writing with read reports
//	regions/  — winning-region sets, solver-output parsers, comparison
//	profile/  — HCL generation profiles and YAML meta sidecars
//	solver/   — external solver invocation with outcome classification
//	cmd/      — the tempograph command-line tool
//
// Quick ASCII example:
//
//	    start ──(>= t 1)──► bottom
//	      │                    │
//	   (always)             (always)
//	      ▼                    ▼
//	     top ──(not mod)──► merge ──(< t 15)──► goal
//
//	a five-node diamond: a fast risky route races a slow safe one.
//
// Dive into the subpackage docs for the formats, the shape catalogue and
// the solver output conventions.
//
//	go get github.com/katalvlaran/tempograph
package tempograph
