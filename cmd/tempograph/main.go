// SPDX-License-Identifier: MIT
// Package: tempograph/cmd/tempograph
//
// main.go - entrypoint: global flags, logger wiring, command dispatch
// and exit codes.
//
// Exit codes:
//   0  success
//   1  usage error (bad flags, unknown command, missing arguments)
//   2  operational failure (I/O, malformed profile, solver failure)
//   3  comparison mismatch (compare, diff)

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	exitOK       = 0
	exitUsage    = 1
	exitFailure  = 2
	exitMismatch = 3
)

// exitError carries a specific process exit code out of a command. An empty
// Message means the command already reported everything it had to say.
type exitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *exitError) Error() string { return e.Message }

// usageErrorf builds an exit-code-1 error with a formatted message.
func usageErrorf(format string, args ...any) error {
	return &exitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

// cmdEnv bundles what every command needs: a context for process runs, a
// structured logger, and the two output streams. Reports go to stdout, logs
// and diagnostics to stderr.
type cmdEnv struct {
	ctx    context.Context
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	// Minimal logger until the flag-configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var xerr *exitError
		if errors.As(err, &xerr) {
			if xerr.Message != "" {
				fmt.Fprintln(os.Stderr, xerr.Message)
			}
			os.Exit(xerr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run parses global flags, builds the logger and dispatches to the named
// command. Separated from main so tests can drive the whole binary with
// in-memory streams.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("tempograph", flag.ContinueOnError)
	global.SetOutput(stderr)
	logLevel := global.String("log-level", "info", "log level: 'debug', 'info', 'warn' or 'error'")
	logFormat := global.String("log-format", "text", "log output format: 'text' or 'json'")
	global.Usage = func() { printUsage(stderr, global) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return &exitError{Code: exitUsage}
	}

	level := strings.ToLower(*logLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return usageErrorf("invalid -log-level %q: must be 'debug', 'info', 'warn' or 'error'", *logLevel)
	}
	format := strings.ToLower(*logFormat)
	if format != "text" && format != "json" {
		return usageErrorf("invalid -log-format %q: must be 'text' or 'json'", *logFormat)
	}

	env := &cmdEnv{
		ctx:    ctx,
		log:    newLogger(level, format, stderr),
		stdout: stdout,
		stderr: stderr,
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()

		return &exitError{Code: exitUsage, Message: "missing command"}
	}

	name, cmdArgs := rest[0], rest[1:]
	switch name {
	case "generate":
		return cmdGenerate(env, cmdArgs)
	case "convert":
		return cmdConvert(env, cmdArgs)
	case "validate":
		return cmdValidate(env, cmdArgs)
	case "compare":
		return cmdCompare(env, cmdArgs)
	case "diff":
		return cmdDiff(env, cmdArgs)
	case "help":
		global.Usage()

		return nil
	default:
		return usageErrorf("unknown command %q (run 'tempograph help')", name)
	}
}

// newLogger builds an isolated slog.Logger for the chosen level and format.
// Values are validated by run before this is called.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

func printUsage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprint(w, `tempograph - temporal reachability game workbench

Usage:
  tempograph [global flags] <command> [command flags] [arguments]

Commands:
  generate   synthesize game corpora as .tg/.dot/.meta triples
  convert    convert .tg games to .dot, with optional semantic verification
  validate   parse game files and report line errors and structural violations
  compare    compare winning regions from two solver outputs (or run solvers)
  diff       character-level diff of two game files
  help       print this text

Global flags:
`)
	global.PrintDefaults()
}
