package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independently of the frame rate of the driver calling it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops accumulated time so the next step waits a full interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call; a slow caller does not catch up with
// a burst of ticks.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
