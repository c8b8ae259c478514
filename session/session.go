package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
)

// ErrOutsideBoard indicates a pixel position that maps to no cell.
var ErrOutsideBoard = errors.New("session: position outside board")

// options collects the functional Option values for New.
type options struct {
	logger     *slog.Logger
	grid       *gridgraph.GridGraph
	easing     ease.TweenFunc
	engineOpts []dijkstra.Option
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGrid starts the session on an existing board (e.g. one loaded with
// gridgraph.Parse). Its dimensions override Config.Rows and Config.Cols.
func WithGrid(g *gridgraph.GridGraph) Option {
	return func(o *options) {
		if g != nil {
			o.grid = g
		}
	}
}

// WithEasing selects the easing curve of the path reveal.
func WithEasing(fn ease.TweenFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.easing = fn
		}
	}
}

// WithEngineOptions forwards options to the underlying dijkstra.Engine.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// Session ties a board, a search engine and animation pacing together.
// It must be driven from a single goroutine.
type Session struct {
	cfg    Config
	grid   *gridgraph.GridGraph
	engine *dijkstra.Engine
	pacer  *Pacer
	reveal *PathReveal
	easing ease.TweenFunc
	log    *slog.Logger

	goalReachable bool
}

// New validates cfg and builds a Session with an empty board (or the board
// given via WithGrid).
func New(cfg Config, opts ...Option) (*Session, error) {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		easing: ease.OutCubic,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.grid != nil {
		cfg.Rows, cfg.Cols = o.grid.Height, o.grid.Width
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := o.grid
	if g == nil {
		var err error
		if g, err = gridgraph.New(cfg.Rows, cfg.Cols); err != nil {
			return nil, err
		}
	}
	log := o.logger.With(slog.String("component", "session"))
	engineOpts := append([]dijkstra.Option{dijkstra.WithLogger(o.logger)}, o.engineOpts...)
	e, err := dijkstra.New(g, engineOpts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:    cfg,
		grid:   g,
		engine: e,
		pacer:  NewPacer(cfg.StepInterval, cfg.StepsPerTick),
		easing: o.easing,
		log:    log,
	}, nil
}

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the board being edited.
func (s *Session) Grid() *gridgraph.GridGraph { return s.grid }

// Engine returns the search engine.
func (s *Session) Engine() *dijkstra.Engine { return s.engine }

// CellAt maps a pixel position to the cell under it.
func (s *Session) CellAt(x, y int) (gridgraph.Coord, error) {
	if x < 0 || y < 0 {
		return gridgraph.Coord{}, fmt.Errorf("%w: (%d,%d)", ErrOutsideBoard, x, y)
	}
	c := gridgraph.Coord{Row: y / s.cfg.TileSize, Col: x / s.cfg.TileSize}
	if !s.grid.InBounds(c) {
		return gridgraph.Coord{}, fmt.Errorf("%w: (%d,%d)", ErrOutsideBoard, x, y)
	}

	return c, nil
}

// PlaceStart moves the start cell to c.
func (s *Session) PlaceStart(c gridgraph.Coord) error {
	if err := s.mutate(func() error { return s.grid.SetStart(c) }); err != nil {
		return err
	}
	s.log.Info("start placed", slog.String("cell", c.String()))

	return nil
}

// PlaceEnd moves the end cell to c.
func (s *Session) PlaceEnd(c gridgraph.Coord) error {
	if err := s.mutate(func() error { return s.grid.SetEnd(c) }); err != nil {
		return err
	}
	s.log.Info("end placed", slog.String("cell", c.String()))

	return nil
}

// PaintWall blocks c. Painting an endpoint fails with gridgraph.ErrConflict.
func (s *Session) PaintWall(c gridgraph.Coord) error {
	return s.mutate(func() error { return s.grid.AddWall(c) })
}

// EraseWall unblocks c.
func (s *Session) EraseWall(c gridgraph.Coord) error {
	return s.mutate(func() error { return s.grid.RemoveWall(c) })
}

// mutate applies fn to the board and, if the board actually changed, drops
// the search in progress along with any path being revealed.
func (s *Session) mutate(fn func() error) error {
	before := s.grid.Version()
	if err := fn(); err != nil {
		return err
	}
	if s.grid.Version() != before {
		s.invalidate()
	}

	return nil
}

func (s *Session) invalidate() {
	if s.engine.State() != dijkstra.StateIdle {
		s.log.Debug("board changed, search dropped", slog.String("state", s.engine.State().String()))
	}
	s.engine.Cancel()
	s.pacer.Reset()
	s.reveal = nil
}

// Run starts a fresh search from the current start to the current end.
// Returns dijkstra.ErrNotReady if either endpoint is missing.
func (s *Session) Run() error {
	if err := s.engine.Reset(); err != nil {
		return err
	}
	s.pacer.Reset()
	s.reveal = nil

	start, _ := s.grid.Start()
	end, _ := s.grid.End()
	s.goalReachable = s.grid.Reachable(start, end)
	if !s.goalReachable {
		s.log.Warn("end is not reachable; search will exhaust",
			slog.String("start", start.String()), slog.String("end", end.String()))
	}
	s.log.Info("search started",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("walls", s.grid.WallCount()),
	)

	return nil
}

// Clear cancels any search and removes every wall. Endpoints stay.
func (s *Session) Clear() {
	s.invalidate()
	s.grid.ClearWalls()
	s.log.Info("board cleared")
}

// Update advances the session by elapsed wall-clock time: due engine steps
// first, then the path reveal.
func (s *Session) Update(elapsed time.Duration) error {
	if s.engine.State().Active() {
		n := s.pacer.Due(elapsed)
		if n > 0 {
			o, _, err := s.engine.Advance(n)
			if err != nil {
				return err
			}
			if o != dijkstra.Continue {
				s.onFinish(o)
			}
		}
		// Time spent searching does not count toward the reveal.
		return nil
	}
	if s.reveal != nil {
		s.reveal.Update(elapsed)
	}

	return nil
}

func (s *Session) onFinish(o dijkstra.Outcome) {
	st := s.engine.Stats()
	s.log.Info("search finished",
		slog.String("outcome", o.String()),
		slog.Int("steps", st.Steps),
		slog.Int("settled", st.Settled),
	)
	if o != dijkstra.Found {
		return
	}
	path, err := s.engine.Path()
	if err != nil {
		s.log.Error("path reconstruction failed", slog.Any("error", err))
		return
	}
	s.reveal = NewPathReveal(path, s.cfg.RevealDelay, s.cfg.RevealDuration, s.easing)
}

// View is everything a renderer needs for one frame.
type View struct {
	Rows, Cols       int
	Walls            []gridgraph.Coord
	Start, End       gridgraph.Coord
	HasStart, HasEnd bool
	State            dijkstra.State
	Visited          []gridgraph.Coord
	Frontier         []gridgraph.Coord
	Path             []gridgraph.Coord // revealed prefix of the route, start first
	PathComplete     bool
	GoalReachable    bool
	Stats            dijkstra.Stats
}

// View snapshots the board and search for rendering.
func (s *Session) View() View {
	v := View{
		Rows:          s.grid.Height,
		Cols:          s.grid.Width,
		Walls:         s.grid.Walls(),
		State:         s.engine.State(),
		Visited:       s.engine.Visited(),
		Frontier:      s.engine.FrontierCells(),
		GoalReachable: s.goalReachable,
		Stats:         s.engine.Stats(),
	}
	v.Start, v.HasStart = s.grid.Start()
	v.End, v.HasEnd = s.grid.End()
	if s.reveal != nil {
		v.Path = s.reveal.Visible()
		v.PathComplete = s.reveal.Done()
	}

	return v
}
