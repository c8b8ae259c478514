package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Path reconstructs the shortest route from start to end, both included,
// by walking the predecessor map backward from the end and reversing it.
// When start equals end the result has a single cell.
//
// Returns ErrInvalidState unless the engine is in StateFound.
// Complexity: O(L) where L is the path length.
func (e *Engine) Path() ([]gridgraph.Coord, error) {
	path, err := e.PathFromEnd()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathFromEnd is Path in end → start order, the order the predecessor walk
// produces.
func (e *Engine) PathFromEnd() ([]gridgraph.Coord, error) {
	if e.state != StateFound {
		return nil, fmt.Errorf("%w: no path in state %s", ErrInvalidState, e.state)
	}
	if e.start == e.end {
		return []gridgraph.Coord{e.end}, nil
	}
	path := e.prev.Walk(e.end)
	if path[len(path)-1] != e.start {
		// Unreachable while the Step invariants hold.
		return nil, fmt.Errorf("%w: predecessor chain from %v ends at %v, not start %v",
			ErrInvalidState, e.end, path[len(path)-1], e.start)
	}

	return path, nil
}
