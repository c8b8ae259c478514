package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Entry is a (distance, cell) candidate held by the Frontier.
// Several entries for the same cell may coexist; only the one whose Dist equals
// the DistanceTable value is authoritative.
type Entry struct {
	Dist int
	Cell gridgraph.Coord
	seq  uint64 // insertion order, breaks distance ties
}

// entryHeap is a min-heap of Entry ordered by (Dist, seq).
type entryHeap []Entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by distance, then by insertion order so the first inserted wins.
func (h entryHeap) Less(i, j int) bool {
	if h[i].Dist != h[j].Dist {
		return h[i].Dist < h[j].Dist
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Frontier is a min-priority collection of (distance, cell) entries that
// tolerates duplicates. It has no decrease-key: callers insert a fresh entry
// and discard outdated ones on extraction.
type Frontier struct {
	h   entryHeap
	seq uint64
}

// NewFrontier returns an empty Frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Insert queues cell at dist. Complexity: O(log n).
func (f *Frontier) Insert(dist int, cell gridgraph.Coord) {
	f.seq++
	heap.Push(&f.h, Entry{Dist: dist, Cell: cell, seq: f.seq})
}

// ExtractMin removes and returns the entry with the smallest distance,
// earliest insertion first on ties. ok is false when the frontier is empty.
// Complexity: O(log n).
func (f *Frontier) ExtractMin() (e Entry, ok bool) {
	if len(f.h) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&f.h).(Entry), true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier) Peek() (Entry, bool) {
	if len(f.h) == 0 {
		return Entry{}, false
	}

	return f.h[0], true
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return len(f.h) }

// Reset empties the frontier, keeping its backing storage.
func (f *Frontier) Reset() {
	f.h = f.h[:0]
	f.seq = 0
}

// Cells returns the distinct cells currently queued, in heap order.
func (f *Frontier) Cells() []gridgraph.Coord {
	seen := make(map[gridgraph.Coord]struct{}, len(f.h))
	out := make([]gridgraph.Coord, 0, len(f.h))
	for _, e := range f.h {
		if _, dup := seen[e.Cell]; dup {
			continue
		}
		seen[e.Cell] = struct{}{}
		out = append(out, e.Cell)
	}

	return out
}
