package gridgraph

import (
	"fmt"
	"strings"
)

// ASCII board characters understood by Parse and produced by String.
const (
	CellOpen  = '.'
	CellWall  = '#'
	CellStart = 'S'
	CellEnd   = 'E'
)

// Parse builds a GridGraph from rows of ASCII cells:
//
//	'.' open, '#' wall, 'S' start, 'E' end.
//
// Leading and trailing spaces on a row are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, or ErrConflict when
// more than one start or end is present.
// Complexity: O(H×W).
func Parse(rows []string) (*GridGraph, error) {
	trimmed := make([]string, 0, len(rows))
	for _, r := range rows {
		trimmed = append(trimmed, strings.TrimSpace(r))
	}
	if len(trimmed) == 0 || len(trimmed[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(trimmed), len(trimmed[0])
	for _, r := range trimmed {
		if len(r) != w {
			return nil, ErrNonRectangular
		}
	}

	gg, err := New(h, w)
	if err != nil {
		return nil, err
	}
	var start, end *Coord
	for row, r := range trimmed {
		for col := 0; col < w; col++ {
			c := Coord{Row: row, Col: col}
			switch r[col] {
			case CellOpen:
			case CellWall:
				gg.walls[gg.Index(c)] = true
				gg.nWalls++
			case CellStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second start at %v", ErrConflict, c)
				}
				start = &c
			case CellEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: second end at %v", ErrConflict, c)
				}
				end = &c
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, r[col], c)
			}
		}
	}
	if start != nil {
		if err = gg.SetStart(*start); err != nil {
			return nil, err
		}
	}
	if end != nil {
		if err = gg.SetEnd(*end); err != nil {
			return nil, err
		}
	}

	return gg, nil
}

// String renders the board in the format accepted by Parse, one row per line.
func (gg *GridGraph) String() string {
	var b strings.Builder
	b.Grow(gg.Height * (gg.Width + 1))
	for row := 0; row < gg.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < gg.Width; col++ {
			c := Coord{Row: row, Col: col}
			switch {
			case gg.hasStart && c == gg.start:
				b.WriteByte(CellStart)
			case gg.hasEnd && c == gg.end:
				b.WriteByte(CellEnd)
			case gg.walls[gg.Index(c)]:
				b.WriteByte(CellWall)
			default:
				b.WriteByte(CellOpen)
			}
		}
	}

	return b.String()
}
