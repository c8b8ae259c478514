package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
)

// TestCollector_CountsSearches runs one found and one exhausted search and
// checks every series.
func TestCollector_CountsSearches(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	gg, err := gridgraph.Parse([]string{
		"S..",
		"...",
		"..E",
	})
	require.NoError(t, err)
	e, err := dijkstra.New(gg, c.EngineOptions()...)
	require.NoError(t, err)

	require.NoError(t, e.Reset())
	o, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, dijkstra.Found, o)
	first := e.Stats()

	require.NoError(t, gg.AddWall(gridgraph.Coord{Row: 1, Col: 2}))
	require.NoError(t, gg.AddWall(gridgraph.Coord{Row: 2, Col: 1}))
	require.NoError(t, e.Reset())
	o, err = e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, dijkstra.Exhausted, o)
	second := e.Stats()

	require.Equal(t, float64(first.Steps+second.Steps), testutil.ToFloat64(c.steps))
	require.Equal(t, float64(first.Relaxations+second.Relaxations), testutil.ToFloat64(c.relaxations))
	require.Zero(t, testutil.ToFloat64(c.stale))
	require.Zero(t, testutil.ToFloat64(c.frontierSize), "exhausted search leaves an empty frontier")

	expected := `
# HELP pathviz_searches_total Total number of finished searches by outcome.
# TYPE pathviz_searches_total counter
pathviz_searches_total{outcome="exhausted"} 1
pathviz_searches_total{outcome="found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pathviz_searches_total"))
	require.Equal(t, 1, testutil.CollectAndCount(c.searchSteps))
}

// TestCollector_StaleHook feeds the stale counter directly; unit-weight
// searches never produce stale entries.
func TestCollector_StaleHook(t *testing.T) {
	c, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	var o dijkstra.Options
	for _, opt := range c.EngineOptions() {
		opt(&o)
	}
	require.NotNil(t, o.OnStale)
	o.OnStale(dijkstra.Entry{Dist: 3})
	o.OnStale(dijkstra.Entry{Dist: 4})
	require.Equal(t, 2.0, testutil.ToFloat64(c.stale))
}

// TestCollector_DuplicateRegistration surfaces registry conflicts.
func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}
