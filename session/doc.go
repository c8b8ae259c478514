// Package session is the display-agnostic model of an interactive pathfinding
// board: a GridGraph the user edits, a dijkstra.Engine that searches it, a
// Pacer that turns wall-clock time into engine steps, and a PathReveal that
// animates the final route once the search succeeds.
//
// A renderer (see cmd/pathviz) translates input into Session actions, calls
// Update once per frame with the elapsed time, and draws View. Session itself
// never draws and never reads input devices.
//
// Any topology change (start, end or walls) while a search is in progress
// cancels that search; the user starts a new one with Run.
package session
