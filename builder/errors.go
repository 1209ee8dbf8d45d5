// SPDX-License-Identifier: MIT
// Package: bstree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewValues indicates a negative count was requested from a constructor.
// Usage: if errors.Is(err, ErrTooFewValues) { /* report invalid size */ }.
var ErrTooFewValues = errors.New("builder: parameter too small")

// ErrInvalidRange indicates an empty value range (e.g. Random limit < 1).
var ErrInvalidRange = errors.New("builder: invalid value range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildTree could not run a constructor
// (e.g. a nil Constructor was passed).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
