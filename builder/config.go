// SPDX-License-Identifier: MIT
// Package: bstree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil  (pure/deterministic unless seeded)
//   • start = 1    (first value of Ascending/Descending/Balanced)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// First value of the ranged constructors.
	start int
}

const defaultStart = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:   nil,
		start: defaultStart,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
