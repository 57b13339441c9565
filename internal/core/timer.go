package core

import "time"

// FixedStep paces frame output at a steady ticks-per-second rate. A zero
// or negative rate disables pacing.
type FixedStep struct {
	step time.Duration
	next time.Time
	now  func() time.Time
	wait func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, wait: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Enabled reports whether pacing is active.
func (f *FixedStep) Enabled() bool { return f.step > 0 }

// Wait blocks until the next tick is due. The first call returns at once.
// Ticks that are already late are not made up.
func (f *FixedStep) Wait() {
	if f.step == 0 {
		return
	}
	now := f.now()
	if f.next.IsZero() || !now.Before(f.next) {
		f.next = now.Add(f.step)
		return
	}
	f.wait(f.next.Sub(now))
	f.next = f.next.Add(f.step)
}
