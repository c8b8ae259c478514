// File: gridgraph/flood_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

// TestHopDistances_Open checks BFS hop counts on an open 3×3 board.
//
// Expected distances from (0,0):
//
//	0 1 2
//	1 2 3
//	2 3 4
func TestHopDistances_Open(t *testing.T) {
	gg, err := New(3, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got := gg.HopDistances(Coord{})
	want := []int{0, 1, 2, 1, 2, 3, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HopDistances = %v; want %v", got, want)
	}
}

// TestHopDistances_Barrier checks routing around a wall barrier.
//
// Board:
//
//	S # E
//	. # .
//	. . .
//
// The end is 6 moves away, walls stay Unreachable.
func TestHopDistances_Barrier(t *testing.T) {
	gg, err := Parse([]string{
		"S#E",
		".#.",
		"...",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := gg.HopDistances(Coord{})
	want := []int{
		0, Unreachable, 6,
		1, Unreachable, 5,
		2, 3, 4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HopDistances = %v; want %v", got, want)
	}
	if !gg.Reachable(Coord{}, Coord{Row: 0, Col: 2}) {
		t.Error("Reachable(S,E) = false; want true")
	}
}

// TestReachable_Enclosed checks a start sealed off by walls.
func TestReachable_Enclosed(t *testing.T) {
	gg, err := Parse([]string{
		".#.",
		"#S#",
		".#E",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if gg.Reachable(Coord{Row: 1, Col: 1}, Coord{Row: 2, Col: 2}) {
		t.Error("Reachable from enclosed start = true; want false")
	}
	if gg.Reachable(Coord{Row: 1, Col: 1}, Coord{Row: 9, Col: 9}) {
		t.Error("Reachable to out-of-bounds cell = true; want false")
	}
	// From a wall nothing is reachable, not even the wall itself.
	d := gg.HopDistances(Coord{Row: 0, Col: 1})
	for i, v := range d {
		if v != Unreachable {
			t.Fatalf("HopDistances from wall: d[%d] = %d; want Unreachable", i, v)
		}
	}
}
