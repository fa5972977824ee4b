// SPDX-License-Identifier: MIT
// Package: tempograph/cmd/tempograph
//
// validate.go - the validate command: parse game files (.tg or .dot by
// extension), print every recovered line error and structural violation,
// and with -reach flag the nodes from which no target is reachable.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tempograph/codec"
	"github.com/katalvlaran/tempograph/game"
)

func cmdValidate(env *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	reach := fs.Bool("reach", false, "also flag nodes that cannot reach any target")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return &exitError{Code: exitUsage}
	}
	files := fs.Args()
	if len(files) == 0 {
		return usageErrorf("validate: no input files")
	}

	problems := 0
	for _, path := range files {
		n, err := validateOne(env, path, *reach)
		if err != nil {
			return fmt.Errorf("validate: %s: %w", path, err)
		}
		problems += n
	}
	if problems > 0 {
		return &exitError{
			Code:    exitFailure,
			Message: fmt.Sprintf("validate: %d problem(s) found", problems),
		}
	}
	fmt.Fprintln(env.stdout, "all files valid")

	return nil
}

// validateOne reports every problem of one file on stdout and returns the
// problem count. Only I/O failures are errors.
func validateOne(env *cmdEnv, path string, reach bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	var g *game.Game
	var rep codec.ReadReport
	if strings.EqualFold(filepath.Ext(path), ".dot") {
		g, rep, err = codec.ReadDOT(f)
	} else {
		g, rep, err = codec.ReadTG(f)
	}
	cerr := f.Close()
	if err != nil {
		return 0, err
	}
	if cerr != nil {
		return 0, cerr
	}

	problems := 0
	for _, le := range rep.Errors {
		fmt.Fprintf(env.stdout, "%s: %s\n", path, le)
		problems++
	}
	for _, v := range game.Validate(g) {
		fmt.Fprintf(env.stdout, "%s: %s\n", path, v)
		problems++
	}
	if reach {
		for _, id := range game.CannotReachTarget(g) {
			fmt.Fprintf(env.stdout, "%s: node %q cannot reach any target\n", path, id)
			problems++
		}
	}
	if problems == 0 {
		env.log.Debug("file valid", "file", path, "nodes", rep.Nodes, "edges", rep.Edges)
	}

	return problems, nil
}
