package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Sentinel errors returned by the Engine.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNotReady indicates Reset was called before both start and end were set.
	ErrNotReady = errors.New("dijkstra: start and end must be set")

	// ErrInvalidState indicates an operation the current State forbids,
	// e.g. Step after Found or Path before Found.
	ErrInvalidState = errors.New("dijkstra: invalid engine state")

	// ErrStaleTopology indicates the grid changed after the last Reset.
	// It wraps ErrInvalidState.
	ErrStaleTopology = fmt.Errorf("%w: grid changed since last reset", ErrInvalidState)
)

// State is the position of an Engine in its search lifecycle.
type State int

const (
	// StateIdle: no search configured.
	StateIdle State = iota
	// StateReady: tables initialised, frontier seeded with the start cell.
	StateReady
	// StateRunning: at least one Step has been taken and work remains.
	StateRunning
	// StateFound: the end cell was settled. Terminal.
	StateFound
	// StateExhausted: the frontier emptied before the end was settled. Terminal.
	StateExhausted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Active reports whether Step may be called in this state.
func (s State) Active() bool {
	return s == StateReady || s == StateRunning
}

// Terminal reports whether the search has finished.
func (s State) Terminal() bool {
	return s == StateFound || s == StateExhausted
}

// Outcome is the signal returned by a successful Step.
type Outcome int

const (
	// Continue means more work remains.
	Continue Outcome = iota + 1
	// Found means the end cell has just been settled.
	Found
	// Exhausted means no path to the end exists.
	Exhausted
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Stats counts the work performed since the last Reset.
type Stats struct {
	Steps         int // successful Step calls
	Settled       int // cells finalised (len of the visited set)
	Relaxations   int // distance improvements, one frontier push each
	StaleDiscards int // popped entries thrown away by lazy deletion
	MaxFrontier   int // largest frontier size observed, stale entries included
}

// Options configures an Engine.
//
// Logger    – structured logger for lifecycle events (reset, finish). Defaults to a discarding logger.
// OnVisit   – called when a cell is settled, with its final distance.
// OnRelax   – called when a neighbor's tentative distance improves.
// OnStale   – called for each frontier entry discarded as stale.
// OnStep    – called after every successful Step with its Outcome and the frontier size.
// OnFinish  – called once when the search reaches Found or Exhausted.
type Options struct {
	Logger   *slog.Logger
	OnVisit  func(cell gridgraph.Coord, dist int)
	OnRelax  func(from, to gridgraph.Coord, dist int)
	OnStale  func(e Entry)
	OnStep   func(o Outcome, frontierLen int)
	OnFinish func(o Outcome, st Stats)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		OnVisit:  func(gridgraph.Coord, int) {},
		OnRelax:  func(_, _ gridgraph.Coord, _ int) {},
		OnStale:  func(Entry) {},
		OnStep:   func(Outcome, int) {},
		OnFinish: func(Outcome, Stats) {},
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback run when a cell is settled.
func WithOnVisit(fn func(cell gridgraph.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run on every distance improvement.
func WithOnRelax(fn func(from, to gridgraph.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnStale registers a callback run for every discarded stale entry.
func WithOnStale(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStale = fn
		}
	}
}

// WithOnStep registers a callback run after each successful Step.
func WithOnStep(fn func(o Outcome, frontierLen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnFinish registers a callback run when the search terminates.
func WithOnFinish(fn func(o Outcome, st Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}
