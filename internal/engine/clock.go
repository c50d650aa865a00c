package engine

import "time"

// TickSource returns a monotonic time in whole milliseconds.
type TickSource func() uint64

// MonotonicTicks returns a TickSource measuring milliseconds since the call.
func MonotonicTicks() TickSource {
	start := time.Now()
	return func() uint64 {
		return uint64(time.Since(start).Milliseconds())
	}
}

// FrameClock turns a millisecond tick source into per-frame delta seconds.
type FrameClock struct {
	ticks TickSource
	last  uint64
}

// NewFrameClock samples the tick source once so the first Tick measures from here.
func NewFrameClock(ticks TickSource) *FrameClock {
	return &FrameClock{ticks: ticks, last: ticks()}
}

// Tick returns the seconds elapsed since the previous Tick (or since construction).
// A source that goes backwards yields zero rather than a negative delta.
func (c *FrameClock) Tick() float32 {
	now := c.ticks()
	if now < c.last {
		c.last = now
		return 0
	}
	delta := now - c.last
	c.last = now
	return float32(delta) / 1000.0
}
