// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_random.go - RandomWalls(p).
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - One Bernoulli trial per cell in row-major order; endpoints are skipped
//     but still consume a draw so the pattern does not depend on them.
//   - Existing walls stay.

package builder

import (
	"github.com/katalvlaran/pathviz/gridgraph"
)

const methodRandomWalls = "RandomWalls"

// RandomWalls walls each non-endpoint cell with probability p.
func RandomWalls(p float64) Constructor {
	return func(g *gridgraph.GridGraph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return wrapf(methodRandomWalls, "p=%.3f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return wrapf(methodRandomWalls, "%w", ErrNeedRandSource)
		}

		for i := 0; i < g.Len(); i++ {
			hit := p == 1
			if p > 0 && p < 1 {
				hit = cfg.rng.Float64() < p
			}
			c := g.Coordinate(i)
			if !hit || isEndpoint(g, c) {
				continue
			}
			if err := g.AddWall(c); err != nil {
				return wrapf(methodRandomWalls, "AddWall%v: %w", c, err)
			}
		}

		return nil
	}
}

func isEndpoint(g *gridgraph.GridGraph, c gridgraph.Coord) bool {
	if s, ok := g.Start(); ok && s == c {
		return true
	}
	e, ok := g.End()
	return ok && e == c
}
