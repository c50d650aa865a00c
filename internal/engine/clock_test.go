package engine

import "testing"

type fakeTicks struct {
	now uint64
}

func (f *fakeTicks) source() TickSource {
	return func() uint64 { return f.now }
}

func TestFrameClockTick(t *testing.T) {
	ticks := &fakeTicks{now: 1000}
	clock := NewFrameClock(ticks.source())

	ticks.now = 1016
	if dt := clock.Tick(); dt != 0.016 {
		t.Errorf("Expected 0.016, got %v", dt)
	}

	ticks.now = 1516
	if dt := clock.Tick(); dt != 0.5 {
		t.Errorf("Expected 0.5, got %v", dt)
	}

	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected 0 for no elapsed time, got %v", dt)
	}
}

func TestFrameClockBackwards(t *testing.T) {
	ticks := &fakeTicks{now: 500}
	clock := NewFrameClock(ticks.source())

	ticks.now = 400
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected 0 when ticks go backwards, got %v", dt)
	}

	ticks.now = 450
	if dt := clock.Tick(); dt != 0.05 {
		t.Errorf("Expected 0.05 after resync, got %v", dt)
	}
}

func TestMonotonicTicks(t *testing.T) {
	src := MonotonicTicks()
	a := src()
	b := src()
	if b < a {
		t.Errorf("ticks went backwards: %d then %d", a, b)
	}
}
