// SPDX-License-Identifier: MIT
// Package: tempograph/cmd/tempograph
//
// convert.go - the convert command: batch .tg to .dot conversion. Malformed
// lines never abort a file; they are logged and the affected constraint
// falls back to always. With -verify every edge constraint is cross-checked
// semantically before the .dot is written.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tempograph/codec"
	"github.com/katalvlaran/tempograph/temporal"
)

func cmdConvert(env *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	out := fs.String("out", "", "output directory (default: alongside each input)")
	verify := fs.Bool("verify", false, "cross-check every translated constraint semantically")
	horizon := fs.Int("horizon", 50, "time horizon for -verify")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return &exitError{Code: exitUsage}
	}
	files := fs.Args()
	if len(files) == 0 {
		return usageErrorf("convert: no input files")
	}
	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			return fmt.Errorf("convert: %w", err)
		}
	}

	for _, path := range files {
		if err := convertOne(env, path, *out, *verify, *horizon); err != nil {
			return fmt.Errorf("convert: %s: %w", path, err)
		}
	}
	env.log.Info("conversion complete", "files", len(files))

	return nil
}

// convertOne reads one .tg file, surfaces its recovery report as warnings
// and writes the .dot projection.
func convertOne(env *cmdEnv, path, outDir string, verify bool, horizon int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	g, rep, err := codec.ReadTG(f)
	cerr := f.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return cerr
	}

	for _, le := range rep.Errors {
		env.log.Warn("recovered from malformed line", "file", path, "line", le.Line, "err", le.Err)
	}
	if rep.DroppedConstraints > 0 {
		env.log.Warn("constraints fell back to always", "file", path, "dropped", rep.DroppedConstraints)
	}

	if verify {
		for _, e := range g.Edges() {
			if verr := temporal.VerifyInfix(e.Constraint, horizon); verr != nil {
				return fmt.Errorf("edge %s -> %s: %w", e.From, e.To, verr)
			}
		}
	}

	dst := dotPathFor(path, outDir)
	wf, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := codec.WriteDOT(wf, g); err != nil {
		wf.Close()

		return err
	}
	if err := wf.Close(); err != nil {
		return err
	}
	env.log.Info("converted", "from", path, "to", dst, "nodes", rep.Nodes, "edges", rep.Edges)

	return nil
}

// dotPathFor swaps the input extension for .dot, in outDir when given,
// otherwise next to the input.
func dotPathFor(tgPath, outDir string) string {
	base := filepath.Base(tgPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(tgPath)
	}

	return filepath.Join(dir, stem+".dot")
}
