package core

import "time"

// FixedStep paces generations at a steady ticks-per-second rate. A zero rate
// disables pacing.
type FixedStep struct {
	step time.Duration
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates disable pacing.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Wait blocks until a full tick has elapsed since the previous Wait returned.
// The first call never blocks.
func (f *FixedStep) Wait() {
	now := f.now()
	if f.step == 0 || f.last.IsZero() {
		f.last = now
		return
	}
	if remaining := f.step - now.Sub(f.last); remaining > 0 {
		f.sleep(remaining)
		now = now.Add(remaining)
	}
	f.last = now
}
