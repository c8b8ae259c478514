package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
)

// randomBoard builds an h×w board with about density·h·w walls and random
// distinct endpoints on open cells.
func randomBoard(t testing.TB, rng *rand.Rand, h, w int, density float64) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.New(h, w)
	require.NoError(t, err)
	for i := 0; i < int(density*float64(h*w)); i++ {
		require.NoError(t, gg.AddWall(cell(rng.Intn(h), rng.Intn(w))))
	}
	start := cell(rng.Intn(h), rng.Intn(w))
	end := cell(rng.Intn(h), rng.Intn(w))
	for end == start {
		end = cell(rng.Intn(h), rng.Intn(w))
	}
	require.NoError(t, gg.RemoveWall(start))
	require.NoError(t, gg.RemoveWall(end))
	require.NoError(t, gg.SetStart(start))
	require.NoError(t, gg.SetEnd(end))

	return gg
}

// runToEnd resets e and steps it to a terminal state, recording the distance
// of every settled cell in order.
func runToEnd(t testing.TB, e *dijkstra.Engine) (dijkstra.Outcome, []int) {
	t.Helper()
	require.NoError(t, e.Reset())
	var settled []int
	for {
		o, err := e.Step()
		require.NoError(t, err)
		if cur, ok := e.Current(); ok && o != dijkstra.Exhausted {
			settled = append(settled, e.Distances().At(cur))
		}
		if o != dijkstra.Continue {
			return o, settled
		}
	}
}

// TestProperty_ManhattanOnOpenBoards: without walls the path has Manhattan+1 cells.
func TestProperty_ManhattanOnOpenBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		h, w := 1+rng.Intn(12), 2+rng.Intn(12)
		gg := randomBoard(t, rng, h, w, 0)
		e, err := dijkstra.New(gg)
		require.NoError(t, err)

		o, _ := runToEnd(t, e)
		require.Equal(t, dijkstra.Found, o)
		path, err := e.Path()
		require.NoError(t, err)

		start, _ := gg.Start()
		end, _ := gg.End()
		assert.Equal(t, start.Manhattan(end)+1, len(path), "board %d×%d %v→%v", h, w, start, end)
	}
}

// TestProperty_MatchesBreadthFirst compares every settled distance with an
// independent flood fill and checks path shape on random walled boards.
func TestProperty_MatchesBreadthFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 200; i++ {
		gg := randomBoard(t, rng, 2+rng.Intn(10), 2+rng.Intn(10), 0.3)
		e, err := dijkstra.New(gg)
		require.NoError(t, err)

		o, settled := runToEnd(t, e)
		start, _ := gg.Start()
		end, _ := gg.End()
		hops := gg.HopDistances(start)

		// Popped distances never decrease.
		for k := 1; k < len(settled); k++ {
			require.LessOrEqual(t, settled[k-1], settled[k])
		}
		// Settled distances are exact.
		dist := e.Distances()
		for _, c := range e.Visited() {
			require.Equal(t, hops[gg.Index(c)], dist.At(c), "cell %v", c)
		}

		if hops[gg.Index(end)] == gridgraph.Unreachable {
			require.Equal(t, dijkstra.Exhausted, o, "board:\n%s", gg)
			_, err = e.Path()
			require.ErrorIs(t, err, dijkstra.ErrInvalidState)
			continue
		}
		require.Equal(t, dijkstra.Found, o, "board:\n%s", gg)
		path, err := e.Path()
		require.NoError(t, err)
		require.Equal(t, hops[gg.Index(end)]+1, len(path))
		require.Equal(t, start, path[0])
		require.Equal(t, end, path[len(path)-1])
		for k := 1; k < len(path); k++ {
			require.True(t, path[k-1].Adjacent(path[k]), "%v→%v", path[k-1], path[k])
			require.False(t, gg.IsWall(path[k]))
		}
	}
}

// TestProperty_Deterministic: Reset + identical steps give identical results.
func TestProperty_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 30; i++ {
		gg := randomBoard(t, rng, 8, 8, 0.25)
		e, err := dijkstra.New(gg)
		require.NoError(t, err)

		o1, _ := runToEnd(t, e)
		v1, d1 := e.Visited(), e.Distances()

		o2, err := func() (dijkstra.Outcome, error) {
			require.NoError(t, e.Reset())
			return e.Run(context.Background())
		}()
		require.NoError(t, err)

		require.Equal(t, o1, o2)
		require.Equal(t, v1, e.Visited())
		require.Equal(t, d1, e.Distances())
	}
}
