package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/gridgraph"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		h, w int
	}{
		{"ZeroHeight", 0, 3},
		{"ZeroWidth", 3, 0},
		{"NegativeHeight", -1, 3},
		{"NegativeBoth", -2, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.h, tc.w)
			if !errors.Is(err, gridgraph.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimensions", tc.h, tc.w, err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 board.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.New(2, 3)
	require.NoError(t, err)

	for _, c := range []gridgraph.Coord{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, gg.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridgraph.Coord{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, gg.InBounds(c), "InBounds(%v)", c)
	}
}

// TestIndexRoundTrip checks that Index and Coordinate are inverses.
func TestIndexRoundTrip(t *testing.T) {
	gg, err := gridgraph.New(4, 5)
	require.NoError(t, err)
	require.Equal(t, 20, gg.Len())

	for i := 0; i < gg.Len(); i++ {
		require.Equal(t, i, gg.Index(gg.Coordinate(i)))
	}
	require.Equal(t, gridgraph.Coord{Row: 2, Col: 3}, gg.Coordinate(13))
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the up, right, down, left order in the middle of the board.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Coord{Row: 1, Col: 1})
	want := []gridgraph.Coord{{0, 1}, {1, 2}, {2, 1}, {1, 0}}
	require.Equal(t, want, got)
}

// TestNeighbors_CornerAndWalls verifies bounds clipping and wall filtering.
func TestNeighbors_CornerAndWalls(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	require.Equal(t, []gridgraph.Coord{{0, 1}, {1, 0}}, gg.Neighbors(gridgraph.Coord{}))

	require.NoError(t, gg.AddWall(gridgraph.Coord{Row: 0, Col: 1}))
	require.Equal(t, []gridgraph.Coord{{1, 0}}, gg.Neighbors(gridgraph.Coord{}))

	require.NoError(t, gg.AddWall(gridgraph.Coord{Row: 1, Col: 0}))
	require.Empty(t, gg.Neighbors(gridgraph.Coord{}))
}

//----------------------------------------------------------------------------//
// Wall and endpoint mutation Tests
//----------------------------------------------------------------------------//

// TestWalls_AddRemove checks idempotency, counters and Version bumps.
func TestWalls_AddRemove(t *testing.T) {
	gg, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	c := gridgraph.Coord{Row: 1, Col: 0}

	v0 := gg.Version()
	require.NoError(t, gg.AddWall(c))
	require.True(t, gg.IsWall(c))
	require.Equal(t, 1, gg.WallCount())
	v1 := gg.Version()
	require.Greater(t, v1, v0)

	// Second add is a no-op.
	require.NoError(t, gg.AddWall(c))
	require.Equal(t, v1, gg.Version())
	require.Equal(t, []gridgraph.Coord{c}, gg.Walls())

	require.NoError(t, gg.RemoveWall(c))
	require.False(t, gg.IsWall(c))
	require.Zero(t, gg.WallCount())
	require.Greater(t, gg.Version(), v1)

	// Removing a missing wall is a no-op.
	v2 := gg.Version()
	require.NoError(t, gg.RemoveWall(c))
	require.Equal(t, v2, gg.Version())
}

// TestWalls_Errors checks out-of-bounds and endpoint conflicts.
func TestWalls_Errors(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	start := gridgraph.Coord{Row: 0, Col: 0}
	end := gridgraph.Coord{Row: 2, Col: 2}
	require.NoError(t, gg.SetStart(start))
	require.NoError(t, gg.SetEnd(end))

	v := gg.Version()
	require.ErrorIs(t, gg.AddWall(gridgraph.Coord{Row: 3, Col: 0}), gridgraph.ErrInvalidCoordinate)
	require.ErrorIs(t, gg.RemoveWall(gridgraph.Coord{Row: 0, Col: -1}), gridgraph.ErrInvalidCoordinate)
	require.ErrorIs(t, gg.AddWall(start), gridgraph.ErrConflict)
	require.ErrorIs(t, gg.AddWall(end), gridgraph.ErrConflict)
	require.ErrorIs(t, gg.RemoveWall(end), gridgraph.ErrConflict)

	// Failed calls must not mutate anything.
	require.Equal(t, v, gg.Version())
	require.Zero(t, gg.WallCount())
}

// TestEndpoints_Errors covers SetStart/SetEnd validation.
func TestEndpoints_Errors(t *testing.T) {
	gg, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	wall := gridgraph.Coord{Row: 1, Col: 1}
	require.NoError(t, gg.AddWall(wall))

	require.ErrorIs(t, gg.SetStart(gridgraph.Coord{Row: 5, Col: 5}), gridgraph.ErrInvalidCoordinate)
	require.ErrorIs(t, gg.SetEnd(gridgraph.Coord{Row: -1, Col: 0}), gridgraph.ErrInvalidCoordinate)
	require.ErrorIs(t, gg.SetStart(wall), gridgraph.ErrInvalidCoordinate)
	require.ErrorIs(t, gg.SetEnd(wall), gridgraph.ErrInvalidCoordinate)

	require.NoError(t, gg.SetStart(gridgraph.Coord{Row: 0, Col: 0}))
	require.ErrorIs(t, gg.SetEnd(gridgraph.Coord{Row: 0, Col: 0}), gridgraph.ErrConflict)
	require.NoError(t, gg.SetEnd(gridgraph.Coord{Row: 2, Col: 2}))
	require.ErrorIs(t, gg.SetStart(gridgraph.Coord{Row: 2, Col: 2}), gridgraph.ErrConflict)

	s, ok := gg.Start()
	require.True(t, ok)
	require.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, s)
	e, ok := gg.End()
	require.True(t, ok)
	require.Equal(t, gridgraph.Coord{Row: 2, Col: 2}, e)
}

// TestEndpoints_MoveAndClear checks moving endpoints and ClearEndpoints.
func TestEndpoints_MoveAndClear(t *testing.T) {
	gg, err := gridgraph.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, gg.SetStart(gridgraph.Coord{Row: 0, Col: 0}))
	v := gg.Version()
	require.NoError(t, gg.SetStart(gridgraph.Coord{Row: 0, Col: 0}))
	require.Equal(t, v, gg.Version(), "same start must not bump Version")

	require.NoError(t, gg.SetStart(gridgraph.Coord{Row: 1, Col: 1}))
	// The old start cell may now hold a wall.
	require.NoError(t, gg.AddWall(gridgraph.Coord{Row: 0, Col: 0}))

	gg.ClearEndpoints()
	_, ok := gg.Start()
	require.False(t, ok)
	_, ok = gg.End()
	require.False(t, ok)

	gg.ClearWalls()
	require.Zero(t, gg.WallCount())
	require.False(t, gg.IsWall(gridgraph.Coord{Row: 0, Col: 0}))
}

// TestCoord_Helpers covers Manhattan, Adjacent and String.
func TestCoord_Helpers(t *testing.T) {
	a := gridgraph.Coord{Row: 1, Col: 2}
	b := gridgraph.Coord{Row: 4, Col: 0}
	assert.Equal(t, 5, a.Manhattan(b))
	assert.Equal(t, 5, b.Manhattan(a))
	assert.False(t, a.Adjacent(b))
	assert.True(t, a.Adjacent(gridgraph.Coord{Row: 1, Col: 3}))
	assert.False(t, a.Adjacent(gridgraph.Coord{Row: 2, Col: 3}), "diagonal is not adjacent")
	assert.Equal(t, "(1,2)", a.String())
}
