// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// api.go - entry point and constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Constructor mutates a board using the resolved configuration. Constructors
// validate early and return wrapped sentinels; they never panic.
type Constructor func(g *gridgraph.GridGraph, cfg builderConfig) error

// BuildBoard creates an h×w board and applies cons in order. The first
// failing constructor aborts the build.
func BuildBoard(h, w int, bopts []BuilderOption, cons ...Constructor) (*gridgraph.GridGraph, error) {
	g, err := gridgraph.New(h, w)
	if err != nil {
		return nil, fmt.Errorf("BuildBoard: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildBoard: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildBoard: %w", err)
		}
	}

	return g, nil
}
