// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/pathviz.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates a non-positive height or width.
	ErrInvalidDimensions = errors.New("gridgraph: height and width must be positive")
	// ErrInvalidCoordinate indicates a cell outside the board, or a wall where an open cell is required.
	ErrInvalidCoordinate = errors.New("gridgraph: invalid coordinate")
	// ErrConflict indicates start/end colliding with each other or with a wall.
	ErrConflict = errors.New("gridgraph: conflicting cell assignment")
	// ErrEmptyGrid indicates an ASCII board with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates an ASCII board character Parse does not understand.
	ErrUnknownCell = errors.New("gridgraph: unknown cell character")
)

// Coord addresses a single cell by 0-indexed row and column.
// Coord is comparable and can be used as a map key.
type Coord struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Adjacent reports whether c and o share an edge (no diagonals).
func (c Coord) Adjacent(o Coord) bool {
	return c.Manhattan(o) == 1
}

// neighborOffsets lists (dRow, dCol) in the order Neighbors reports them:
// up, right, down, left.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// GridGraph is a Height × Width board with walls and optional endpoints.
// Dimensions are fixed at construction; walls and endpoints change only
// through the mutating methods, each of which validates before it writes.
//
// GridGraph is not safe for concurrent use.
type GridGraph struct {
	Height, Width int

	walls    []bool // row-major, len = Height*Width
	nWalls   int
	start    Coord
	end      Coord
	hasStart bool
	hasEnd   bool
	version  uint64
}
