// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_endpoints.go - Corners() and RandomEndpoints().
//
// Both replace any endpoints already on the board and need at least two
// open cells (else ErrConstructFailed).

package builder

import (
	"github.com/katalvlaran/pathviz/gridgraph"
)

const (
	methodCorners         = "Corners"
	methodRandomEndpoints = "RandomEndpoints"
)

// Corners puts the start on the first open cell and the end on the last open
// cell in row-major order.
func Corners() Constructor {
	return func(g *gridgraph.GridGraph, _ builderConfig) error {
		open := openCells(g)
		if len(open) < 2 {
			return wrapf(methodCorners, "%d open cells: %w", len(open), ErrConstructFailed)
		}

		return place(methodCorners, g, open[0], open[len(open)-1])
	}
}

// RandomEndpoints puts the start and the end on two distinct random open cells.
func RandomEndpoints() Constructor {
	return func(g *gridgraph.GridGraph, cfg builderConfig) error {
		if cfg.rng == nil {
			return wrapf(methodRandomEndpoints, "%w", ErrNeedRandSource)
		}
		open := openCells(g)
		if len(open) < 2 {
			return wrapf(methodRandomEndpoints, "%d open cells: %w", len(open), ErrConstructFailed)
		}
		i := cfg.rng.Intn(len(open))
		j := cfg.rng.Intn(len(open) - 1)
		if j >= i {
			j++
		}

		return place(methodRandomEndpoints, g, open[i], open[j])
	}
}

func openCells(g *gridgraph.GridGraph) []gridgraph.Coord {
	open := make([]gridgraph.Coord, 0, g.Len()-g.WallCount())
	for i := 0; i < g.Len(); i++ {
		if c := g.Coordinate(i); !g.IsWall(c) {
			open = append(open, c)
		}
	}

	return open
}

func place(method string, g *gridgraph.GridGraph, start, end gridgraph.Coord) error {
	g.ClearEndpoints()
	if err := g.SetStart(start); err != nil {
		return wrapf(method, "SetStart%v: %w", start, err)
	}
	if err := g.SetEnd(end); err != nil {
		return wrapf(method, "SetEnd%v: %w", end, err)
	}

	return nil
}
