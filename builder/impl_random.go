// SPDX-License-Identifier: MIT
// Package: bstree/builder
//
// impl_random.go - Random(n, limit) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewValues).
//   - limit ≥ 1 (else ErrInvalidRange).
//   - cfg.rng must be set via WithSeed/WithRand (else ErrNeedRandSource).
//   - Draws are independent, so duplicates appear whenever n > 1 and limit is small.
//
// Determinism:
//   - Fixed seed ⇒ identical draw sequence ⇒ identical tree.

package builder

import "github.com/katalvlaran/bstree/core"

const methodRandom = "Random"

// Random returns a Constructor inserting n values drawn uniformly from [0, limit).
func Random(n, limit int) Constructor {
	return func(t *core.Tree[int], cfg builderConfig) error {
		if n < 0 {
			return builderErrorf(methodRandom, ErrTooFewValues, "n=%d < 0", n)
		}
		if limit < 1 {
			return builderErrorf(methodRandom, ErrInvalidRange, "limit=%d < 1", limit)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandom, ErrNeedRandSource, "rng is required")
		}

		vals := make([]int, n)
		for i := range vals {
			vals[i] = cfg.rng.Intn(limit)
		}
		insertAll(t, vals)

		return nil
	}
}
