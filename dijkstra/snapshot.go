package dijkstra

import (
	"github.com/katalvlaran/pathviz/gridgraph"
)

// Snapshot captures everything a renderer needs for one frame.
// All slices and tables are copies; mutating them does not affect the Engine.
type Snapshot struct {
	State      State
	Stats      Stats
	Current    gridgraph.Coord // last settled cell, valid if HasCurrent
	HasCurrent bool
	Distances  DistanceTable
	Visited    []gridgraph.Coord // visitation order
	Frontier   []gridgraph.Coord // unsettled cells awaiting expansion
	Path       []gridgraph.Coord // start → end, only in StateFound
}

// Snapshot returns a copy of the engine's observable state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:      e.state,
		Stats:      e.stats,
		Current:    e.current,
		HasCurrent: e.hasCurrent,
		Distances:  e.Distances(),
		Visited:    e.Visited(),
		Frontier:   e.FrontierCells(),
	}
	if e.state == StateFound {
		s.Path, _ = e.Path()
	}

	return s
}
