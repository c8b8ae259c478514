// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors add context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates board dimensions below what a constructor needs.
var ErrTooSmall = errors.New("builder: board too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the board leaves no room for what the
// constructor must place (e.g. fewer than two open cells for endpoints).
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes err with the constructor name.
func wrapf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
