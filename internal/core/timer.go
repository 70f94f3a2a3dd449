package core

// Timer is a one-shot countdown advanced by simulation time rather than the
// wall clock, so entity cooldowns stay deterministic under a fixed tick.
type Timer struct {
	wait      float64
	remaining float64
}

// NewTimer constructs a stopped Timer with the given wait in seconds.
func NewTimer(wait float64) *Timer {
	t := &Timer{}
	t.SetWait(wait)
	return t
}

// SetWait changes the duration used by the next Start.
func (t *Timer) SetWait(wait float64) {
	if wait < 0 {
		wait = 0
	}
	t.wait = wait
}

// Wait returns the configured duration.
func (t *Timer) Wait() float64 { return t.wait }

// Start (re)arms the timer. A zero wait leaves it stopped.
func (t *Timer) Start() { t.remaining = t.wait }

// Stop disarms the timer without firing.
func (t *Timer) Stop() { t.remaining = 0 }

// Stopped reports whether the timer is idle.
func (t *Timer) Stopped() bool { return t.remaining <= 0 }

// Remaining returns the seconds left before the timer fires.
func (t *Timer) Remaining() float64 {
	if t.remaining < 0 {
		return 0
	}
	return t.remaining
}

// Advance moves the timer forward by dt seconds and reports whether it fired
// during this step.
func (t *Timer) Advance(dt float64) bool {
	if t.remaining <= 0 || dt <= 0 {
		return false
	}
	t.remaining -= dt
	return t.remaining <= 0
}
