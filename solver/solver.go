// SPDX-License-Identifier: MIT
// Package: tempograph/solver
//
// solver.go - one external solver invocation.
//
// Contract:
//   - Run never returns a Go error: every way a run can end is an Outcome.
//     A deadline is a Timeout outcome; a missing binary, non-zero exit or
//     canceled context is Failed with the cause in Err.
//   - Stdout and stderr are captured in full (solver outputs are small
//     region listings, never streams).
//   - Runs are strictly sequential per call site; nothing here retries,
//     re-invokes, or keeps process state between calls.

package solver

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds the wait for output-pipe closure after the process dies.
const waitDelay = time.Second

// OutcomeKind classifies how a solver run ended.
type OutcomeKind uint8

const (
	// Solved: the process exited zero before any deadline.
	Solved OutcomeKind = iota
	// Timeout: the deadline expired first. A distinct kind, not an error.
	Timeout
	// Failed: the process could not start, was canceled, or exited non-zero.
	Failed
)

// String renders the kind for logs and reports.
func (k OutcomeKind) String() string {
	switch k {
	case Solved:
		return "solved"
	case Timeout:
		return "timeout"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the complete result of one solver run.
type Outcome struct {
	Kind     OutcomeKind
	Stdout   string        // captured standard output, possibly partial on timeout
	Stderr   string        // captured standard error
	Elapsed  time.Duration // wall time of the run
	ExitCode int           // process exit code; -1 when no exit code exists
	Err      error         // cause when Kind is Failed, nil otherwise
}

// Run executes one solver binary and waits for it. A positive timeout
// bounds the run on top of any deadline already carried by ctx; zero means
// ctx alone governs. The process is killed when the deadline expires and
// the captured output up to that point is returned with Kind Timeout.
func Run(ctx context.Context, timeout time.Duration, bin string, args ...string) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// A killed solver may leave children holding the output pipes; cap the
	// post-kill wait so Run returns with whatever was captured.
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()

	out := Outcome{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: time.Since(start),
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		out.Kind = Timeout
		out.ExitCode = -1
	case err == nil, errors.Is(err, exec.ErrWaitDelay):
		// ErrWaitDelay means the process exited zero but an inherited pipe
		// stayed open past the grace period; the run itself succeeded.
		out.Kind = Solved
	default:
		out.Kind = Failed
		out.Err = err
		out.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		}
	}

	return out
}
