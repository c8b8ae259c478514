package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/session"
)

// Game adapts a session.Session to ebiten.Game.
type Game struct {
	s    *session.Session
	face *text.GoTextFace
	last time.Time

	// status is the most recent rejected action, shown in the HUD.
	status string
}

func newGame(s *session.Session) (*Game, error) {
	face, err := hudFace()
	if err != nil {
		return nil, err
	}

	return &Game{s: s, face: face}, nil
}

// Update translates input into session actions, then advances the session
// by the wall-clock time since the previous frame.
func (g *Game) Update() error {
	now := time.Now()
	elapsed := time.Duration(0)
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	g.handleInput()

	return g.s.Update(elapsed)
}

func (g *Game) handleInput() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.report(g.s.Run())
		return
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.s.Clear()
		g.status = ""
		return
	}

	cell, err := g.s.CellAt(ebiten.CursorPosition())
	if err != nil {
		return
	}
	switch {
	case !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.report(g.s.PlaceStart(cell))
	case !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.report(g.s.PlaceEnd(cell))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		// Dragging over an endpoint is expected; only the endpoint stays.
		if err := g.s.PaintWall(cell); err != nil && !errors.Is(err, gridgraph.ErrConflict) {
			g.report(err)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.report(g.s.EraseWall(cell))
	}
}

func (g *Game) report(err error) {
	switch {
	case err == nil:
		g.status = ""
	case errors.Is(err, dijkstra.ErrNotReady):
		g.status = "place a start (S) and an end (E) first"
	default:
		g.status = err.Error()
	}
}

// Layout keeps a fixed logical screen: the board plus the HUD strip.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.s.Config().ScreenSize()
	return w, h + hudHeight
}
