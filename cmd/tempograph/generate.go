// SPDX-License-Identifier: MIT
// Package: tempograph/cmd/tempograph
//
// generate.go - the generate command: synthesize benchmark corpora from an
// HCL profile, or a single game from -shape flags. Every game is written as
// a .tg/.dot/.meta triple with a per-game seed recorded in the sidecar.

package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tempograph/builder"
	"github.com/katalvlaran/tempograph/codec"
	"github.com/katalvlaran/tempograph/profile"
)

func cmdGenerate(env *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	profilePath := fs.String("profile", "", "HCL generation profile (suite mode)")
	shape := fs.String("shape", "", "single shape: benchmark, chain, cycle, tree, grid, dense, racing or diamond")
	n := fs.Int("n", 0, "requested node count for -shape")
	seed := fs.Int64("seed", 1, "random seed for -shape")
	out := fs.String("out", "", "output directory")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return &exitError{Code: exitUsage}
	}
	if *out == "" {
		return usageErrorf("generate: missing -out directory")
	}

	switch {
	case *profilePath != "" && *shape != "":
		return usageErrorf("generate: -profile and -shape are mutually exclusive")
	case *profilePath != "":
		return generateProfile(env, *profilePath, *out)
	case *shape != "":
		return generateSingle(env, *shape, *n, *seed, *out)
	default:
		return usageErrorf("generate: need -profile or -shape")
	}
}

// generateProfile walks every suite of the profile and emits count games per
// size. Game ids run globally across suites so filenames never collide, the
// same way a corpus numbers test001 onward.
func generateProfile(env *cmdEnv, path, outDir string) error {
	prof, err := profile.Load(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	gameID := 1
	for _, suite := range prof.Suites {
		weights, werr := suite.ShapeWeights()
		if werr != nil {
			return fmt.Errorf("generate: suite %q: %w", suite.Name, werr)
		}
		for _, size := range suite.Sizes {
			env.log.Info("generating games",
				"suite", suite.Name, "shape", suite.Shape, "size", size, "count", suite.Count)
			for i := 0; i < suite.Count; i++ {
				// Per-game seed: reproducible in isolation, recorded in .meta.
				gameSeed := prof.Seed + int64(gameID)
				stem := fmt.Sprintf("test%03d", gameID)
				opts := []builder.BuildOption{
					builder.WithGameName(stem),
					builder.WithShapeWeights(weights),
				}
				if suite.EdgeFactor != nil {
					opts = append(opts, builder.WithEdgeFactor(suite.EdgeFactor[0], suite.EdgeFactor[1]))
				}
				if suite.TargetFraction != nil {
					opts = append(opts, builder.WithTargetFraction(suite.TargetFraction[0], suite.TargetFraction[1]))
				}
				if err := emitGame(env, outDir, stem, gameID, suite.Shape, size, gameSeed, opts); err != nil {
					return fmt.Errorf("generate: suite %q: %w", suite.Name, err)
				}
				gameID++
			}
		}
	}
	env.log.Info("generation complete", "games", gameID-1, "dir", outDir)

	return nil
}

// generateSingle emits one game named after its shape, size and seed.
func generateSingle(env *cmdEnv, shape string, n int, seed int64, outDir string) error {
	shape = strings.ToLower(shape)
	if shape == "diamond" && n == 0 {
		n = 5 // the diamond is a fixed five-node shape
	}
	if n < 1 {
		return usageErrorf("generate: -n must be positive")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	stem := fmt.Sprintf("%s_n%d_s%d", shape, n, seed)
	opts := []builder.BuildOption{builder.WithGameName(stem)}
	if err := emitGame(env, outDir, stem, 1, shape, n, seed, opts); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	env.log.Info("generation complete", "games", 1, "dir", outDir)

	return nil
}

// emitGame builds one game and writes its .tg/.dot/.meta triple. The single
// rng serves both the builder draws and the time-bound draw, so a stem is
// fully reproducible from the recorded seed.
func emitGame(env *cmdEnv, dir, stem string, id int, shape string, n int, seed int64, opts []builder.BuildOption) error {
	cons, err := shapeConstructor(shape, n)
	if err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}

	rng := rand.New(rand.NewSource(seed))
	opts = append(opts, builder.WithRand(rng))
	g, err := builder.BuildGame(opts, cons)
	if err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}
	bound, err := profile.TimeBound(rng, g.NodeCount())
	if err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}

	banner := fmt.Sprintf("// %s game %d - %d vertices\n", titleShape(shape), id, g.NodeCount())

	if err := writeGameFile(dir, stem+".tg", func(w io.Writer) error {
		if _, werr := fmt.Fprintf(w, "%s// time_bound: %d\n", banner, bound); werr != nil {
			return werr
		}

		return codec.WriteTG(w, g)
	}); err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}

	if err := writeGameFile(dir, stem+".dot", func(w io.Writer) error {
		if _, werr := io.WriteString(w, banner); werr != nil {
			return werr
		}

		return codec.WriteDOT(w, g)
	}); err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}

	meta := profile.Meta{
		Game:      id,
		Vertices:  g.NodeCount(),
		Edges:     g.EdgeCount(),
		TimeBound: bound,
		Seed:      seed,
		Targets:   g.Targets(),
	}
	data, err := profile.EncodeMeta(meta)
	if err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}
	if err := os.WriteFile(filepath.Join(dir, stem+".meta"), data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", stem, err)
	}

	env.log.Debug("game written",
		"stem", stem, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "time_bound", bound, "seed", seed)

	return nil
}

// writeGameFile creates dir/name and runs emit against it.
func writeGameFile(dir, name string, emit func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// shapeConstructor maps a shape name and a requested node count onto a
// builder constructor. Two-parameter shapes derive their parameters here:
// trees branch by two and grow until they cover n, grids stay as square as
// possible, racing splits n across three paths.
func shapeConstructor(name string, n int) (builder.Constructor, error) {
	switch strings.ToLower(name) {
	case "benchmark":
		return builder.Benchmark(n), nil
	case "chain":
		return builder.Chain(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "tree":
		return builder.Tree(treeDepthFor(n), 2), nil
	case "grid":
		rows, cols := gridDimsFor(n)

		return builder.Grid(rows, cols), nil
	case "dense":
		return builder.Dense(n), nil
	case "racing":
		length := (n - 2) / 3
		if length < 2 {
			length = 2
		}

		return builder.Racing(3, length), nil
	case "diamond":
		return builder.Diamond(), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// treeDepthFor returns the smallest depth whose full binary tree holds at
// least n nodes (depth 1 holds 3, depth 2 holds 7, and so on).
func treeDepthFor(n int) int {
	depth, nodes := 1, 3
	for nodes < n && depth < 16 {
		depth++
		nodes = nodes*2 + 1
	}

	return depth
}

// gridDimsFor returns near-square lattice dimensions covering n nodes,
// never thinner than 2x2.
func gridDimsFor(n int) (rows, cols int) {
	rows = int(math.Sqrt(float64(n)))
	if rows < 2 {
		rows = 2
	}
	cols = (n + rows - 1) / rows
	if cols < 2 {
		cols = 2
	}

	return rows, cols
}

// titleShape capitalizes a shape name for the corpus banner comment.
func titleShape(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
