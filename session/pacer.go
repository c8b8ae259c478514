package session

import "time"

// Pacer converts elapsed wall-clock time into a number of due steps.
// Time that does not add up to a whole interval carries over to the next call;
// backlog beyond maxSteps is dropped.
type Pacer struct {
	interval time.Duration
	maxSteps int
	acc      time.Duration
}

// NewPacer returns a Pacer firing once per interval, at most maxSteps per call.
func NewPacer(interval time.Duration, maxSteps int) *Pacer {
	return &Pacer{interval: interval, maxSteps: maxSteps}
}

// Due adds elapsed and returns how many steps should run now.
func (p *Pacer) Due(elapsed time.Duration) int {
	if p.interval <= 0 {
		return p.maxSteps
	}
	if elapsed > 0 {
		p.acc += elapsed
	}
	n := int(p.acc / p.interval)
	if n > p.maxSteps {
		n = p.maxSteps
		p.acc = 0
		return n
	}
	p.acc -= time.Duration(n) * p.interval

	return n
}

// Reset drops any carried-over time.
func (p *Pacer) Reset() { p.acc = 0 }
