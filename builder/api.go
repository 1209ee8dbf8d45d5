// SPDX-License-Identifier: MIT
// Package: bstree/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildTree(bopts, cons...). Creates the tree, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical trees.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bstree/core"
)

// Constructor inserts a deterministic sequence of values into t using the
// resolved builderConfig. Constructors validate parameters before inserting
// anything, so a failing constructor leaves t as it found it.
type Constructor func(t *core.Tree[int], cfg builderConfig) error

// BuildTree creates a new core.Tree[int], resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildTree: %w" and
// returned immediately.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor sentinels (ErrTooFewValues, ErrInvalidRange, ErrNeedRandSource).
func BuildTree(bopts []BuilderOption, cons ...Constructor) (*core.Tree[int], error) {
	t := core.NewTree[int]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return t, nil
}

// insertAll inserts vals into t in order.
func insertAll(t *core.Tree[int], vals []int) {
	for _, v := range vals {
		t.Insert(v)
	}
}
