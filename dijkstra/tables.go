package dijkstra

import (
	"math"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Infinity is the DistanceTable value of cells not reached yet.
const Infinity = math.MaxInt

// DistanceTable maps every cell to its best known distance from the start.
// Storage is row-major over the board the table was built for.
type DistanceTable struct {
	height, width int
	d             []int
}

func newDistanceTable(height, width int) DistanceTable {
	d := make([]int, height*width)
	for i := range d {
		d[i] = Infinity
	}

	return DistanceTable{height: height, width: width, d: d}
}

// At returns the distance recorded for c, or Infinity if c was not reached or
// lies outside the board.
func (t DistanceTable) At(c gridgraph.Coord) int {
	if c.Row < 0 || c.Row >= t.height || c.Col < 0 || c.Col >= t.width {
		return Infinity
	}

	return t.d[c.Row*t.width+c.Col]
}

// Reached reports whether c has a finite distance.
func (t DistanceTable) Reached(c gridgraph.Coord) bool {
	return t.At(c) != Infinity
}

// Rows returns a copy of the table as Height rows of Width values.
func (t DistanceTable) Rows() [][]int {
	out := make([][]int, t.height)
	for r := range out {
		out[r] = make([]int, t.width)
		copy(out[r], t.d[r*t.width:(r+1)*t.width])
	}

	return out
}

func (t DistanceTable) clone() DistanceTable {
	d := make([]int, len(t.d))
	copy(d, t.d)

	return DistanceTable{height: t.height, width: t.width, d: d}
}

// noPred marks a PredecessorMap slot without a predecessor.
const noPred = -1

// PredecessorMap records, for each reached cell, the cell it was reached from.
// The start cell and unreached cells have no entry.
type PredecessorMap struct {
	width int
	p     []int
}

func newPredecessorMap(height, width int) PredecessorMap {
	p := make([]int, height*width)
	for i := range p {
		p[i] = noPred
	}

	return PredecessorMap{width: width, p: p}
}

func (m PredecessorMap) index(c gridgraph.Coord) (int, bool) {
	if m.width == 0 || c.Row < 0 || c.Col < 0 || c.Col >= m.width {
		return 0, false
	}
	i := c.Row*m.width + c.Col
	if i >= len(m.p) {
		return 0, false
	}

	return i, true
}

// Get returns the predecessor of c, if any.
func (m PredecessorMap) Get(c gridgraph.Coord) (gridgraph.Coord, bool) {
	i, ok := m.index(c)
	if !ok || m.p[i] == noPred {
		return gridgraph.Coord{}, false
	}
	pi := m.p[i]

	return gridgraph.Coord{Row: pi / m.width, Col: pi % m.width}, true
}

// Walk follows predecessors from c back to the first cell without one,
// returning the chain in c → … → root order. The chain length is bounded by
// the number of cells, so a corrupted map cannot loop forever.
func (m PredecessorMap) Walk(c gridgraph.Coord) []gridgraph.Coord {
	path := []gridgraph.Coord{c}
	for cur := c; len(path) <= len(m.p); {
		prev, ok := m.Get(cur)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	return path
}

func (m PredecessorMap) set(c, from gridgraph.Coord) {
	m.p[c.Row*m.width+c.Col] = from.Row*m.width + from.Col
}
