// Package pathviz is a step-driven Dijkstra visualizer for grids with walls.
//
// 🚀 What is pathviz?
//
//	A small library plus an interactive window that shows a shortest-path
//	search one settled cell at a time:
//		• gridgraph/   the board: walls, start, end, 4-neighborhood, ASCII I/O
//		• dijkstra/    the resumable engine: Reset, Step, Path, snapshots, hooks
//		• builder/    seeded board generators: random walls, mazes, endpoints
//		• session/    editing, wall-clock pacing and the eased path reveal
//		• metrics/    Prometheus series fed by engine hooks
//		• cmd/pathviz  the ebiten window
//
// Quick ASCII example:
//
//	S # .
//	. # E      Step() settles (0,0), (1,0), (2,0), (2,1), (2,2), (1,2)
//	. . .      and Path() returns that route, start first.
//
// Run it:
//
//	go run ./cmd/pathviz -generate maze -rows 31 -cols 47
package pathviz
