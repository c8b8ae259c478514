package gridgraph

// Unreachable marks cells HopDistances could not reach.
const Unreachable = -1

// HopDistances runs a breadth-first flood fill from `from` and returns, for every
// cell in row-major order, the number of orthogonal moves needed to reach it
// without crossing walls. Cells that cannot be reached (including walls) hold
// Unreachable. If from is out of bounds or a wall, every entry is Unreachable.
//
// Time:   O(H×W).
// Memory: O(H×W) for the distance slice and queue.
func (gg *GridGraph) HopDistances(from Coord) []int {
	dist := make([]int, gg.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	if !gg.InBounds(from) || gg.walls[gg.Index(from)] {
		return dist
	}

	i0 := gg.Index(from)
	dist[i0] = 0
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range gg.Neighbors(gg.Coordinate(u)) {
			vi := gg.Index(n)
			if dist[vi] != Unreachable {
				continue
			}
			dist[vi] = dist[u] + 1
			queue = append(queue, vi)
		}
	}

	return dist
}

// Reachable reports whether b can be reached from a through open cells.
// Both cells must be in bounds and open; otherwise it returns false.
// Complexity: O(H×W).
func (gg *GridGraph) Reachable(a, b Coord) bool {
	if !gg.InBounds(b) {
		return false
	}

	return gg.HopDistances(a)[gg.Index(b)] != Unreachable
}
