package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/session"
)

const (
	hudHeight   = 24
	hudFontSize = 14
)

var (
	colorBackground = color.RGBA{0xf4, 0xf4, 0xf0, 0xff}
	colorGridLine   = color.RGBA{0xd0, 0xd0, 0xc8, 0xff}
	colorWall       = color.RGBA{0x2b, 0x2d, 0x42, 0xff}
	colorVisited    = color.RGBA{0x8d, 0x99, 0xae, 0xff}
	colorFrontier   = color.RGBA{0xa8, 0xda, 0xdc, 0xff}
	colorPath       = color.RGBA{0xff, 0xb7, 0x03, 0xff}
	colorStart      = color.RGBA{0x2a, 0x9d, 0x8f, 0xff}
	colorEnd        = color.RGBA{0xe6, 0x39, 0x46, 0xff}
	colorHUD        = color.RGBA{0x1d, 0x1d, 0x1d, 0xff}
	colorWarn       = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
)

func hudFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}

	return &text.GoTextFace{Source: src, Size: hudFontSize}, nil
}

// Draw paints the board back to front: cells, grid lines, endpoints, path
// and finally the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := g.s.View()
	tile := float32(g.s.Config().TileSize)

	g.fillCells(screen, v.Visited, colorVisited)
	g.fillCells(screen, v.Frontier, colorFrontier)
	g.fillCells(screen, v.Walls, colorWall)
	g.drawGridLines(screen, v)
	if v.HasStart {
		g.fillCells(screen, []gridgraph.Coord{v.Start}, colorStart)
	}
	if v.HasEnd {
		g.fillCells(screen, []gridgraph.Coord{v.End}, colorEnd)
	}

	// The path runs through cell centres so endpoint colors stay visible.
	for i := 1; i < len(v.Path); i++ {
		a, b := v.Path[i-1], v.Path[i]
		vector.StrokeLine(screen,
			(float32(a.Col)+0.5)*tile, (float32(a.Row)+0.5)*tile,
			(float32(b.Col)+0.5)*tile, (float32(b.Row)+0.5)*tile,
			tile/3, colorPath, true)
	}

	g.drawHUD(screen, v)
}

func (g *Game) fillCells(screen *ebiten.Image, cells []gridgraph.Coord, clr color.Color) {
	tile := float32(g.s.Config().TileSize)
	for _, c := range cells {
		vector.DrawFilledRect(screen, float32(c.Col)*tile, float32(c.Row)*tile, tile, tile, clr, false)
	}
}

func (g *Game) drawGridLines(screen *ebiten.Image, v session.View) {
	tile := float32(g.s.Config().TileSize)
	w, h := float32(v.Cols)*tile, float32(v.Rows)*tile
	for r := 0; r <= v.Rows; r++ {
		y := float32(r) * tile
		vector.StrokeLine(screen, 0, y, w, y, 1, colorGridLine, false)
	}
	for c := 0; c <= v.Cols; c++ {
		x := float32(c) * tile
		vector.StrokeLine(screen, x, 0, x, h, 1, colorGridLine, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, v session.View) {
	_, boardH := g.s.Config().ScreenSize()

	line := fmt.Sprintf("%s  steps=%d  settled=%d  frontier=%d  walls=%d  %.0f TPS",
		v.State, v.Stats.Steps, v.Stats.Settled, len(v.Frontier), len(v.Walls), ebiten.ActualTPS())
	clr := colorHUD
	switch {
	case g.status != "":
		line, clr = g.status, colorWarn
	case v.State == dijkstra.StateFound && v.PathComplete:
		line += fmt.Sprintf("  path=%d", len(v.Path))
	case v.State == dijkstra.StateExhausted:
		line, clr = "no path: the end is walled off  (Ctrl+C clears walls)", colorWarn
	case v.State.Active() && !v.GoalReachable:
		clr = colorWarn
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(6, float64(boardH)+4)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, line, g.face, op)
}
