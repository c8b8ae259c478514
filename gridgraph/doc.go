// Package gridgraph models a bounded 2D board of cells as an unweighted graph.
//
// What:
//
//   - GridGraph holds fixed dimensions (Height × Width), a set of blocked
//     cells ("walls") and an optional start and end cell.
//   - Neighbors answers 4-connected adjacency in a fixed order
//     (up, right, down, left) so that searches built on top of it break ties
//     reproducibly.
//   - Every successful mutation bumps Version, letting long-running searches
//     detect that the topology they were seeded with is gone.
//   - HopDistances is a breadth-first flood fill used for quick reachability
//     checks and as an independent oracle for weighted searches.
//
// Why:
//
//   - Pathfinding playgrounds: paint walls, drop a start and an end, watch a
//     search spread over the board.
//   - Game maps: cheap in-bounds and passability checks on a row-major layout.
//
// Complexity:
//
//   - InBounds, IsWall, Index, Coordinate: O(1).
//   - Neighbors: O(1) (at most 4 results).
//   - Walls: O(H×W).
//   - HopDistances, Reachable: O(H×W), Memory: O(H×W).
//
// Errors:
//
//   - ErrInvalidDimensions: height or width is not positive.
//   - ErrInvalidCoordinate: cell is out of bounds, or is a wall where a wall is not allowed.
//   - ErrConflict: start and end would collide, or a wall would cover an endpoint.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell: malformed ASCII boards passed to Parse.
package gridgraph
