// SPDX-License-Identifier: MIT
// Package: tempograph/codec
//
// errors.go - sentinel error set for the codec package.
// This file defines ONLY package-level sentinel errors. Writers return them
// (wrapped with the method tag) on unusable input; readers never fail on
// format trouble: per-line problems land in the ReadReport and reading
// continues, so the sentinels below appear inside LineError entries.

package codec

import "errors"

var (
	// ErrNilGame is returned by WriteTG/WriteDOT when the game is nil.
	ErrNilGame = errors.New("codec: nil game")

	// ErrNilReader is returned by ReadTG/ReadDOT when the reader is nil.
	ErrNilReader = errors.New("codec: nil reader")

	// ErrMalformedLine marks an input line that matches neither the node nor
	// the edge production of its format. Recoverable: the line is skipped and
	// recorded in the ReadReport.
	ErrMalformedLine = errors.New("codec: malformed line")
)
