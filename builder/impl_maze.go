// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_maze.go - Maze(), a randomized depth-first carve.
//
// Layout:
//   - Rooms are the cells with even row and even column; every other cell
//     starts as a wall.
//   - An iterative DFS from room (0,0) visits rooms in random neighbor order
//     and opens the cell between consecutive rooms. The carved passages form
//     a spanning tree over the rooms, so any two rooms are joined by exactly
//     one route.
//   - Endpoints already on the board are left open.
//
// Complexity: O(h·w) time and space.

package builder

import (
	"github.com/katalvlaran/pathviz/gridgraph"
)

const methodMaze = "Maze"

// mazeMoves steps two cells at a time: up, right, down, left.
var mazeMoves = [4]gridgraph.Coord{{Row: -2}, {Col: 2}, {Row: 2}, {Col: -2}}

// Maze replaces the board's walls with a perfect maze.
func Maze() Constructor {
	return func(g *gridgraph.GridGraph, cfg builderConfig) error {
		if g.Height < 2 && g.Width < 2 {
			return wrapf(methodMaze, "%dx%d: %w", g.Height, g.Width, ErrTooSmall)
		}
		if cfg.rng == nil {
			return wrapf(methodMaze, "%w", ErrNeedRandSource)
		}

		g.ClearWalls()
		for i := 0; i < g.Len(); i++ {
			c := g.Coordinate(i)
			if isRoom(c) || isEndpoint(g, c) {
				continue
			}
			if err := g.AddWall(c); err != nil {
				return wrapf(methodMaze, "AddWall%v: %w", c, err)
			}
		}

		seen := make([]bool, g.Len())
		root := gridgraph.Coord{}
		seen[g.Index(root)] = true
		stack := []gridgraph.Coord{root}
		order := [4]int{0, 1, 2, 3}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]

			cfg.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			advanced := false
			for _, k := range order {
				next := gridgraph.Coord{Row: cur.Row + mazeMoves[k].Row, Col: cur.Col + mazeMoves[k].Col}
				if !g.InBounds(next) || seen[g.Index(next)] {
					continue
				}
				between := gridgraph.Coord{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
				if !isEndpoint(g, between) {
					if err := g.RemoveWall(between); err != nil {
						return wrapf(methodMaze, "RemoveWall%v: %w", between, err)
					}
				}
				seen[g.Index(next)] = true
				stack = append(stack, next)
				advanced = true
				break
			}
			if !advanced {
				stack = stack[:len(stack)-1]
			}
		}

		return nil
	}
}

func isRoom(c gridgraph.Coord) bool {
	return c.Row%2 == 0 && c.Col%2 == 0
}
