package game

import "time"

// FPSCounter counts presented frames and reports a rate once per interval
type FPSCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

// NewFPSCounter starts counting at now with a one second report interval
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{interval: time.Second, last: now}
}

// Tick records one frame. When an interval has elapsed it returns the
// rounded rate and true, and starts a new interval.
func (c *FPSCounter) Tick(now time.Time) (int, bool) {
	c.frames++

	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return 0, false
	}

	fps := int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}
