// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// Package builder generates gridgraph boards for the visualizer and for tests.
//
// What:
//
//	BuildBoard(h, w, bopts, cons...) creates an empty h×w board, resolves the
//	builder configuration once and applies the constructors in order:
//
//	  RandomWalls(p)    wall each free cell independently with probability p
//	  Maze()            carve a perfect maze (one route between any two rooms)
//	  Corners()         start on the first open cell, end on the last one
//	  RandomEndpoints() start and end on two distinct random open cells
//
// Determinism:
//
//	Constructors scan cells in row-major order and draw from the configured
//	*rand.Rand only; the same seed and constructor order give the same board.
//
// Errors:
//
//	ErrTooSmall, ErrInvalidProbability, ErrNeedRandSource and
//	ErrConstructFailed, always wrapped with the constructor name.
package builder
