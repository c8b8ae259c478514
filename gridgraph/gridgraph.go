package gridgraph

import (
	"fmt"
)

// New constructs an empty height × width board with no walls and no endpoints.
// Returns ErrInvalidDimensions if either dimension is ≤ 0.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*GridGraph, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, height, width)
	}

	return &GridGraph{
		Height: height,
		Width:  width,
		walls:  make([]bool, height*width),
	}, nil
}

// InBounds reports whether c lies within the board.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Len returns the number of cells on the board (Height×Width).
func (gg *GridGraph) Len() int {
	return gg.Height * gg.Width
}

// Index maps c to its row-major index: Row*Width + Col.
// The caller must ensure InBounds(c).
// Complexity: O(1).
func (gg *GridGraph) Index(c Coord) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Coord {
	return Coord{Row: idx / gg.Width, Col: idx % gg.Width}
}

// Version returns a counter that changes on every successful mutation
// of walls or endpoints. No-op mutations leave it untouched.
func (gg *GridGraph) Version() uint64 {
	return gg.version
}

// IsWall reports whether c is blocked. Out-of-bounds cells are not walls;
// use InBounds to tell them apart.
func (gg *GridGraph) IsWall(c Coord) bool {
	return gg.InBounds(c) && gg.walls[gg.Index(c)]
}

// WallCount returns the number of blocked cells.
func (gg *GridGraph) WallCount() int {
	return gg.nWalls
}

// Walls lists every blocked cell in row-major order.
// Complexity: O(H×W).
func (gg *GridGraph) Walls() []Coord {
	out := make([]Coord, 0, gg.nWalls)
	for i, w := range gg.walls {
		if w {
			out = append(out, gg.Coordinate(i))
		}
	}

	return out
}

// Neighbors returns the up-to-4 orthogonal neighbors of c that are in bounds
// and not walls, in the order up, right, down, left.
// c itself is not required to be open.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !gg.InBounds(n) || gg.walls[gg.Index(n)] {
			continue
		}
		out = append(out, n)
	}

	return out
}

// AddWall blocks c.
// Returns ErrInvalidCoordinate if c is out of bounds and ErrConflict if c is
// the current start or end. Blocking an existing wall is a no-op.
func (gg *GridGraph) AddWall(c Coord) error {
	if err := gg.checkWallTarget(c); err != nil {
		return err
	}
	i := gg.Index(c)
	if gg.walls[i] {
		return nil
	}
	gg.walls[i] = true
	gg.nWalls++
	gg.version++

	return nil
}

// RemoveWall unblocks c. Errors mirror AddWall; removing a missing wall is a no-op.
func (gg *GridGraph) RemoveWall(c Coord) error {
	if err := gg.checkWallTarget(c); err != nil {
		return err
	}
	i := gg.Index(c)
	if !gg.walls[i] {
		return nil
	}
	gg.walls[i] = false
	gg.nWalls--
	gg.version++

	return nil
}

// ClearWalls removes every wall. Endpoints are kept.
func (gg *GridGraph) ClearWalls() {
	if gg.nWalls == 0 {
		return
	}
	for i := range gg.walls {
		gg.walls[i] = false
	}
	gg.nWalls = 0
	gg.version++
}

func (gg *GridGraph) checkWallTarget(c Coord) error {
	if !gg.InBounds(c) {
		return fmt.Errorf("%w: %v outside %d×%d board", ErrInvalidCoordinate, c, gg.Height, gg.Width)
	}
	if gg.hasStart && c == gg.start {
		return fmt.Errorf("%w: %v is the start cell", ErrConflict, c)
	}
	if gg.hasEnd && c == gg.end {
		return fmt.Errorf("%w: %v is the end cell", ErrConflict, c)
	}

	return nil
}

// Start returns the start cell and whether one is set.
func (gg *GridGraph) Start() (Coord, bool) {
	return gg.start, gg.hasStart
}

// End returns the end cell and whether one is set.
func (gg *GridGraph) End() (Coord, bool) {
	return gg.end, gg.hasEnd
}

// SetStart places the start cell.
// Returns ErrInvalidCoordinate if c is out of bounds or a wall,
// ErrConflict if c is the current end.
func (gg *GridGraph) SetStart(c Coord) error {
	if err := gg.checkEndpoint(c); err != nil {
		return err
	}
	if gg.hasEnd && c == gg.end {
		return fmt.Errorf("%w: start %v equals end", ErrConflict, c)
	}
	if gg.hasStart && gg.start == c {
		return nil
	}
	gg.start, gg.hasStart = c, true
	gg.version++

	return nil
}

// SetEnd places the end cell. Errors mirror SetStart.
func (gg *GridGraph) SetEnd(c Coord) error {
	if err := gg.checkEndpoint(c); err != nil {
		return err
	}
	if gg.hasStart && c == gg.start {
		return fmt.Errorf("%w: end %v equals start", ErrConflict, c)
	}
	if gg.hasEnd && gg.end == c {
		return nil
	}
	gg.end, gg.hasEnd = c, true
	gg.version++

	return nil
}

// ClearEndpoints unsets both start and end.
func (gg *GridGraph) ClearEndpoints() {
	if !gg.hasStart && !gg.hasEnd {
		return
	}
	gg.start, gg.end = Coord{}, Coord{}
	gg.hasStart, gg.hasEnd = false, false
	gg.version++
}

func (gg *GridGraph) checkEndpoint(c Coord) error {
	if !gg.InBounds(c) {
		return fmt.Errorf("%w: %v outside %d×%d board", ErrInvalidCoordinate, c, gg.Height, gg.Width)
	}
	if gg.walls[gg.Index(c)] {
		return fmt.Errorf("%w: %v is a wall", ErrInvalidCoordinate, c)
	}

	return nil
}
