package core

import (
	"testing"
	"time"
)

func TestFixedStepWaitsForNextTick(t *testing.T) {
	clock := time.Unix(0, 0)
	var slept []time.Duration
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.wait = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	fs.Wait()
	if len(slept) != 0 {
		t.Fatal("first tick must not block")
	}
	clock = clock.Add(30 * time.Millisecond)
	fs.Wait()
	if len(slept) != 1 || slept[0] != 70*time.Millisecond {
		t.Fatalf("expected a 70ms wait, got %v", slept)
	}
	clock = clock.Add(500 * time.Millisecond)
	fs.Wait()
	if len(slept) != 1 {
		t.Fatal("late ticks must not block")
	}
}

func TestFixedStepDisabled(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Enabled() {
		t.Fatal("zero TPS disables pacing")
	}
	fs.wait = func(time.Duration) { t.Fatal("disabled pacing must not wait") }
	fs.Wait()
	fs.Wait()
}
