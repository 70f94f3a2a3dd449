package core

import "testing"

func TestTimerFiresOnce(t *testing.T) {
	tm := NewTimer(0.5)
	if !tm.Stopped() {
		t.Fatal("new timer should be stopped")
	}
	tm.Start()
	if tm.Advance(0.25) {
		t.Fatal("timer fired early")
	}
	if tm.Stopped() {
		t.Fatal("timer should still be running")
	}
	if !tm.Advance(0.3) {
		t.Fatal("expected timer to fire")
	}
	if tm.Advance(1) {
		t.Fatal("stopped timer must not fire again")
	}
}

func TestTimerZeroWaitStaysStopped(t *testing.T) {
	tm := NewTimer(-1)
	tm.Start()
	if !tm.Stopped() {
		t.Fatal("zero-wait timer should not run")
	}
}
