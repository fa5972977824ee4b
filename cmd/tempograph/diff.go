// SPDX-License-Identifier: MIT
// Package: tempograph/cmd/tempograph
//
// diff.go - the diff command: character-level comparison of two game files
// for corpus drift inspection. Identical files exit zero; any difference is
// a comparison mismatch.

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func cmdDiff(env *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	plain := fs.Bool("plain", false, "print +/- hunks instead of colored inline text")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return &exitError{Code: exitUsage}
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return usageErrorf("diff: need exactly two files")
	}

	textA, err := readAll(rest[0])
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	textB, err := readAll(rest[1])
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	dmp := diffmatchpatch.New()
	multiLine := strings.Contains(textA, "\n") && strings.Contains(textB, "\n")
	diffs := dmp.DiffMain(textA, textB, multiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)

	inserted, deleted := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(d.Text)
		case diffmatchpatch.DiffDelete:
			deleted += len(d.Text)
		}
	}
	if inserted == 0 && deleted == 0 {
		fmt.Fprintln(env.stdout, "files are identical")

		return nil
	}

	if *plain {
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintf(env.stdout, "+ %q\n", d.Text)
			case diffmatchpatch.DiffDelete:
				fmt.Fprintf(env.stdout, "- %q\n", d.Text)
			}
		}
	} else {
		fmt.Fprint(env.stdout, dmp.DiffPrettyText(diffs))
	}
	fmt.Fprintf(env.stdout, "%d character(s) inserted, %d deleted\n", inserted, deleted)

	return &exitError{Code: exitMismatch}
}
