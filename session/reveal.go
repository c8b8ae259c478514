package session

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// PathReveal grows the visible prefix of a found path over time: it waits for
// delay, then tweens the number of shown cells from 0 to len(path).
type PathReveal struct {
	path   []gridgraph.Coord
	delay  time.Duration
	waited time.Duration
	tween  *gween.Tween // nil when the path is shown at once
	shown  int
	done   bool
}

// NewPathReveal prepares a reveal of path. A non-positive duration shows the
// whole path as soon as delay has passed. A nil easing falls back to ease.Linear.
func NewPathReveal(path []gridgraph.Coord, delay, duration time.Duration, easing ease.TweenFunc) *PathReveal {
	if easing == nil {
		easing = ease.Linear
	}
	r := &PathReveal{path: path, delay: delay}
	if duration > 0 && len(path) > 0 {
		r.tween = gween.New(0, float32(len(path)), float32(duration.Seconds()), easing)
	}

	return r
}

// Update advances the reveal by elapsed.
func (r *PathReveal) Update(elapsed time.Duration) {
	if r.done || elapsed < 0 {
		return
	}
	if r.waited < r.delay {
		r.waited += elapsed
		if r.waited < r.delay {
			return
		}
		elapsed = r.waited - r.delay
	}
	if r.tween == nil {
		r.shown, r.done = len(r.path), true
		return
	}

	v, finished := r.tween.Update(float32(elapsed.Seconds()))
	n := int(v)
	if finished || n >= len(r.path) {
		r.shown, r.done = len(r.path), true
		return
	}
	if n > r.shown {
		r.shown = n
	}
}

// Visible returns the revealed prefix, start first.
func (r *PathReveal) Visible() []gridgraph.Coord {
	return r.path[:r.shown]
}

// Done reports whether the whole path is visible.
func (r *PathReveal) Done() bool { return r.done }
