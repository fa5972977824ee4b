// SPDX-License-Identifier: MIT
// Package: tempograph/profile
//
// errors.go - sentinel error set for the profile package.
// HCL syntax and decode failures wrap the parser's diagnostics directly
// (they carry file/range context already); the sentinels below cover the
// semantic layer on top.

package profile

import "errors"

var (
	// ErrInvalidSuite marks a structurally unusable suite block: empty
	// label or shape, no sizes, non-positive size or count, a bounds pair
	// that is not [lo, hi], or a non-number weight value.
	ErrInvalidSuite = errors.New("profile: invalid suite")

	// ErrUnknownWeight marks a weights key that names no constraint shape.
	ErrUnknownWeight = errors.New("profile: unknown weight name")

	// ErrNilRand is returned by TimeBound when no random source is given.
	ErrNilRand = errors.New("profile: nil random source")
)
