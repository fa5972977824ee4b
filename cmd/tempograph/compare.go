// SPDX-License-Identifier: MIT
// Package: tempograph/cmd/tempograph
//
// compare.go - the compare command: extract the two winning regions and
// print the agreement report. Side A conventionally carries the timed
// format (W_0), side B the player-sectioned format (player 0), but either
// side accepts either format. With -run the two arguments are whitespace-
// split solver command lines executed under a wall clock budget.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/tempograph/regions"
	"github.com/katalvlaran/tempograph/solver"
)

func cmdCompare(env *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	runMode := fs.Bool("run", false, "treat the two arguments as solver command lines and run them")
	timeout := fs.Duration("timeout", 30*time.Second, "per-solver wall clock budget with -run")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return &exitError{Code: exitUsage}
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return usageErrorf("compare: need exactly two solver outputs (or two command lines with -run)")
	}

	var textA, textB string
	var err error
	if *runMode {
		if textA, err = runSolver(env, rest[0], *timeout); err != nil {
			return err
		}
		if textB, err = runSolver(env, rest[1], *timeout); err != nil {
			return err
		}
	} else {
		if textA, err = readAll(rest[0]); err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		if textB, err = readAll(rest[1]); err != nil {
			return fmt.Errorf("compare: %w", err)
		}
	}

	regionA := regionFromOutput(textA)
	regionB := regionFromOutput(textB)
	verdict := regions.Compare(regionA, regionB)

	fmt.Fprintf(env.stdout, "A (W_0):      %s\n", regionA)
	fmt.Fprintf(env.stdout, "B (player 0): %s\n", regionB)
	if verdict.Equal {
		fmt.Fprintln(env.stdout, color.GreenString("✓ MATCH: winning regions agree"))

		return nil
	}

	fmt.Fprintln(env.stdout, color.RedString("✗ DIFFERENT: winning regions disagree"))
	if verdict.OnlyA.Len() > 0 {
		fmt.Fprintf(env.stdout, "  only in A: %s\n", verdict.OnlyA)
	}
	if verdict.OnlyB.Len() > 0 {
		fmt.Fprintf(env.stdout, "  only in B: %s\n", verdict.OnlyB)
	}
	if verdict.Both.Len() > 0 {
		fmt.Fprintf(env.stdout, "  in both:   %s\n", verdict.Both)
	}

	return &exitError{Code: exitMismatch}
}

// regionFromOutput extracts a solver's winning region: the timed region at
// time zero when present, the player-zero region otherwise, the empty set
// when the output carries neither.
func regionFromOutput(text string) regions.Set {
	if w, ok := regions.ParseTimed(text)[0]; ok {
		return w
	}
	if p, ok := regions.ParsePlayers(text)[0]; ok {
		return p
	}

	return regions.NewSet()
}

// runSolver executes one whitespace-split solver command line and returns
// its stdout. A missing binary is fatal before anything runs; a timeout or
// process failure is an operational error carrying the run details.
func runSolver(env *cmdEnv, cmdline string, timeout time.Duration) (string, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", usageErrorf("compare: empty solver command line")
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return "", fmt.Errorf("compare: %w", err)
	}

	env.log.Info("running solver", "cmd", cmdline, "timeout", timeout)
	out := solver.Run(env.ctx, timeout, fields[0], fields[1:]...)
	switch out.Kind {
	case solver.Solved:
		env.log.Debug("solver finished", "cmd", fields[0], "elapsed", out.Elapsed)

		return out.Stdout, nil
	case solver.Timeout:
		return "", fmt.Errorf("compare: solver %q timed out after %s",
			fields[0], out.Elapsed.Round(time.Millisecond))
	default:
		return "", fmt.Errorf("compare: solver %q failed (exit %d): %v: %s",
			fields[0], out.ExitCode, out.Err, strings.TrimSpace(out.Stderr))
	}
}

func readAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
