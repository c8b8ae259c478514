package dijkstra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Engine runs one Dijkstra search at a time over a GridGraph, one relaxation
// round per Step. All state is owned by the Engine and replaced on Reset.
//
// Engine is not safe for concurrent use.
type Engine struct {
	g       *gridgraph.GridGraph // board being searched; read-only while a search is active
	options Options              // hooks and logger
	log     *slog.Logger

	state   State
	start   gridgraph.Coord
	end     gridgraph.Coord
	version uint64 // g.Version() captured at Reset

	dist     DistanceTable     // best known distance per cell
	prev     PredecessorMap    // cell each reached cell came from
	visited  []bool            // settled flags, row-major
	order    []gridgraph.Coord // settled cells in visitation order
	frontier *Frontier         // lazy min-heap of candidates

	current    gridgraph.Coord // last settled cell
	hasCurrent bool
	stats      Stats
}

// New creates an Idle Engine bound to g.
// Returns ErrNilGraph if g is nil.
func New(g *gridgraph.GridGraph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		g:        g,
		options:  cfg,
		log:      cfg.Logger.With(slog.String("component", "dijkstra")),
		state:    StateIdle,
		frontier: NewFrontier(0),
	}, nil
}

// Grid returns the board the engine searches.
func (e *Engine) Grid() *gridgraph.GridGraph { return e.g }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Stats returns counters for the current search.
func (e *Engine) Stats() Stats { return e.stats }

// Reset discards any search in progress and seeds a new one from the grid's
// current start and end: every distance becomes Infinity except the start (0),
// predecessors and the visited set are cleared, and the frontier holds only
// (0, start). The engine moves to StateReady.
//
// Returns ErrNotReady if the grid has no start or no end; the engine is left
// untouched in that case.
func (e *Engine) Reset() error {
	// 1) Validate prerequisites before touching any state.
	start, ok := e.g.Start()
	if !ok {
		return fmt.Errorf("%w: start cell not set", ErrNotReady)
	}
	end, ok := e.g.End()
	if !ok {
		return fmt.Errorf("%w: end cell not set", ErrNotReady)
	}

	// 2) Fresh tables sized to the board.
	h, w := e.g.Height, e.g.Width
	e.dist = newDistanceTable(h, w)
	e.prev = newPredecessorMap(h, w)
	e.visited = make([]bool, h*w)
	e.order = nil
	e.frontier.Reset()

	// 3) Seed the search.
	e.start, e.end = start, end
	e.dist.d[e.g.Index(start)] = 0
	e.frontier.Insert(0, start)

	e.version = e.g.Version()
	e.current, e.hasCurrent = gridgraph.Coord{}, false
	e.stats = Stats{MaxFrontier: 1}
	e.state = StateReady

	e.log.Debug("search reset",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("walls", e.g.WallCount()),
	)

	return nil
}

// Cancel abandons any search and returns the engine to StateIdle.
// It is always safe to call.
func (e *Engine) Cancel() {
	if e.state != StateIdle {
		e.log.Debug("search cancelled", slog.String("state", e.state.String()))
	}
	e.state = StateIdle
	e.dist = DistanceTable{}
	e.prev = PredecessorMap{}
	e.visited = nil
	e.order = nil
	e.frontier.Reset()
	e.hasCurrent = false
	e.stats = Stats{}
}

// Step performs exactly one relaxation round:
//
//  1. Extract the frontier minimum; an empty frontier ends the search with Exhausted.
//  2. Discard stale entries (already settled, or distance above the table value)
//     by extracting again, until a fresh entry turns up or the frontier empties.
//  3. Mark the extracted cell visited.
//  4. If it is the end cell, the search ends with Found.
//  5. Otherwise relax every unvisited neighbor: candidate = dist + 1; on
//     improvement record the distance and predecessor and push (candidate, neighbor).
//  6. Return Continue.
//
// Step fails with ErrInvalidState outside Ready/Running and with
// ErrStaleTopology if the grid changed since Reset. A failed Step changes nothing.
func (e *Engine) Step() (Outcome, error) {
	if !e.state.Active() {
		return 0, fmt.Errorf("%w: cannot step in state %s", ErrInvalidState, e.state)
	}
	if e.g.Version() != e.version {
		return 0, ErrStaleTopology
	}
	e.stats.Steps++

	// 1–2) Pop until a fresh entry appears.
	var item Entry
	for {
		var ok bool
		item, ok = e.frontier.ExtractMin()
		if !ok {
			return e.finish(Exhausted), nil
		}
		i := e.g.Index(item.Cell)
		if e.visited[i] || item.Dist > e.dist.d[i] {
			e.stats.StaleDiscards++
			e.options.OnStale(item)
			continue
		}
		break
	}

	// 3) Settle the cell. Its distance is now final.
	u := item.Cell
	e.visited[e.g.Index(u)] = true
	e.order = append(e.order, u)
	e.current, e.hasCurrent = u, true
	e.stats.Settled++
	e.options.OnVisit(u, item.Dist)

	// 4) Goal check.
	if u == e.end {
		return e.finish(Found), nil
	}

	// 5) Relax open, unsettled neighbors. Every edge costs 1.
	candidate := item.Dist + 1
	for _, v := range e.g.Neighbors(u) {
		vi := e.g.Index(v)
		if e.visited[vi] || candidate >= e.dist.d[vi] {
			continue
		}
		e.dist.d[vi] = candidate
		e.prev.set(v, u)
		e.frontier.Insert(candidate, v)
		e.stats.Relaxations++
		e.options.OnRelax(u, v, candidate)
	}
	if n := e.frontier.Len(); n > e.stats.MaxFrontier {
		e.stats.MaxFrontier = n
	}

	// 6) More work remains.
	e.state = StateRunning
	e.options.OnStep(Continue, e.frontier.Len())

	return Continue, nil
}

// finish moves the engine into the terminal state matching o.
func (e *Engine) finish(o Outcome) Outcome {
	if o == Found {
		e.state = StateFound
	} else {
		e.state = StateExhausted
	}
	e.options.OnStep(o, e.frontier.Len())
	e.options.OnFinish(o, e.stats)
	e.log.Debug("search finished",
		slog.String("outcome", o.String()),
		slog.Int("steps", e.stats.Steps),
		slog.Int("settled", e.stats.Settled),
		slog.Int("relaxations", e.stats.Relaxations),
		slog.Int("stale", e.stats.StaleDiscards),
	)

	return o
}

// Advance performs up to n Steps, stopping early at a terminal outcome.
// It returns the last outcome and the number of steps taken. With n ≤ 0 it
// only validates the state and reports Continue.
func (e *Engine) Advance(n int) (Outcome, int, error) {
	if !e.state.Active() {
		return 0, 0, fmt.Errorf("%w: cannot step in state %s", ErrInvalidState, e.state)
	}
	last, taken := Continue, 0
	for taken < n {
		o, err := e.Step()
		if err != nil {
			return 0, taken, err
		}
		taken++
		last = o
		if o != Continue {
			break
		}
	}

	return last, taken, nil
}

// Run steps until the search terminates or ctx is done.
// Cancellation is checked between steps; the engine stays resumable.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		o, err := e.Step()
		if err != nil {
			return 0, err
		}
		if o != Continue {
			return o, nil
		}
	}
}

// Distances returns a copy of the distance table. Before the first Reset, or
// after Cancel, every cell reads Infinity.
func (e *Engine) Distances() DistanceTable {
	if e.dist.d == nil {
		return newDistanceTable(e.g.Height, e.g.Width)
	}

	return e.dist.clone()
}

// Predecessors returns a copy of the predecessor map.
func (e *Engine) Predecessors() PredecessorMap {
	if e.prev.p == nil {
		return newPredecessorMap(e.g.Height, e.g.Width)
	}
	p := make([]int, len(e.prev.p))
	copy(p, e.prev.p)

	return PredecessorMap{width: e.prev.width, p: p}
}

// Visited returns the settled cells in the order they were settled.
func (e *Engine) Visited() []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(e.order))
	copy(out, e.order)

	return out
}

// IsVisited reports whether c has been settled in the current search.
func (e *Engine) IsVisited(c gridgraph.Coord) bool {
	if e.visited == nil || !e.g.InBounds(c) {
		return false
	}

	return e.visited[e.g.Index(c)]
}

// FrontierCells returns the distinct unsettled cells waiting in the frontier.
func (e *Engine) FrontierCells() []gridgraph.Coord {
	cells := e.frontier.Cells()
	out := cells[:0]
	for _, c := range cells {
		if !e.IsVisited(c) {
			out = append(out, c)
		}
	}

	return out
}

// Current returns the most recently settled cell, if any.
func (e *Engine) Current() (gridgraph.Coord, bool) {
	return e.current, e.hasCurrent
}
