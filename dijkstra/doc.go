// Package dijkstra implements an incremental, step-driven Dijkstra search over a
// gridgraph.GridGraph.
//
// Overview:
//
//   - Engine owns all search state: a DistanceTable, a PredecessorMap, a visited
//     set and a Frontier (binary min-heap).
//   - Each call to Engine.Step performs exactly one relaxation round: pop the
//     closest fresh frontier entry, settle it, relax its open neighbors. This lets
//     an external scheduler (a render loop, a ticker, a test) animate the search.
//   - Every edge costs 1; neighbors come from GridGraph.Neighbors in the order
//     up, right, down, left, and frontier ties resolve by insertion order, so two
//     runs over the same board visit cells in the same order.
//
// State machine:
//
//	Idle ──Reset──▶ Ready ──Step──▶ Running ──Step──▶ … ──▶ Found | Exhausted
//	  ▲                                                          │
//	  └──────────────────────── Cancel ◀─────────────────────────┘
//
// Reset may be called from any state once the grid has a start and an end.
// Step fails with ErrInvalidState in Idle, Found and Exhausted, and with
// ErrStaleTopology if the grid was mutated after the last Reset.
//
// Notes on implementation choices:
//
//   - “Lazy” decrease-key: improving a distance pushes a new entry; outdated
//     entries are discarded when popped (their distance exceeds the table value,
//     or their cell is already settled).
//   - The engine never spawns goroutines and holds no locks. It must be driven
//     from a single goroutine.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over a whole search, V = H×W, E ≤ 4V.
//   - One Step: O(k log V) where k is the number of stale entries skipped plus 4.
//   - Space: O(V + E) for tables and heap.
package dijkstra
