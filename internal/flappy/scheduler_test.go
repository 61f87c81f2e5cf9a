package flappy

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(epoch, TimerPipes, 2500*time.Millisecond, func() { fired++ })

	s.Advance(epoch.Add(2499 * time.Millisecond))
	if fired != 0 {
		t.Fatalf("fired %d times before the first interval", fired)
	}
	s.Advance(epoch.Add(2500 * time.Millisecond))
	if fired != 1 {
		t.Fatalf("fired %d times at the first interval, want 1", fired)
	}
	s.Advance(epoch.Add(5000 * time.Millisecond))
	if fired != 2 {
		t.Errorf("fired %d times at the second interval, want 2", fired)
	}
}

func TestSchedulerDropsMissedPeriods(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(epoch, TimerPipes, time.Second, func() { fired++ })

	s.Advance(epoch.Add(10 * time.Second))
	if fired != 1 {
		t.Fatalf("fired %d times after a stall, want 1", fired)
	}
	s.Advance(epoch.Add(10*time.Second + 500*time.Millisecond))
	if fired != 1 {
		t.Errorf("fired %d times, want 1 (next tick one interval after the stall)", fired)
	}
	s.Advance(epoch.Add(11 * time.Second))
	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
}

func TestSchedulerAfter(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(epoch, TimerRestart, time.Second, func() { fired++ })

	s.Advance(epoch.Add(time.Second))
	s.Advance(epoch.Add(2 * time.Second))

	if fired != 1 {
		t.Errorf("one-shot fired %d times, want 1", fired)
	}
	if s.Active(TimerRestart) {
		t.Error("one-shot should be inactive after firing")
	}
}

func TestSchedulerRearmReplaces(t *testing.T) {
	s := NewScheduler()
	first, second := 0, 0
	s.Every(epoch, TimerPipes, time.Second, func() { first++ })
	s.Every(epoch, TimerPipes, 2*time.Second, func() { second++ })

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	s.Advance(epoch.Add(2 * time.Second))
	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Every(epoch, TimerHearts, time.Second, func() { fired = true })

	s.Cancel(TimerHearts)
	s.Cancel(TimerHearts)
	s.Advance(epoch.Add(time.Minute))

	if fired {
		t.Error("cancelled timer fired")
	}
	if s.Active(TimerHearts) {
		t.Error("cancelled timer still active")
	}
}

func TestSchedulerCallbackCancelsLaterTimer(t *testing.T) {
	s := NewScheduler()
	var order []TimerID
	s.After(epoch, TimerRestart, time.Second, func() {
		order = append(order, TimerRestart)
		s.Cancel(TimerPipes)
	})
	s.Every(epoch, TimerPipes, time.Second, func() { order = append(order, TimerPipes) })

	s.Advance(epoch.Add(time.Second))

	if len(order) != 1 || order[0] != TimerRestart {
		t.Errorf("fired %v, want only %v", order, TimerRestart)
	}
}

func TestSchedulerFiresInArmingOrder(t *testing.T) {
	s := NewScheduler()
	var order []TimerID
	s.Every(epoch, TimerPipes, time.Second, func() { order = append(order, TimerPipes) })
	s.Every(epoch, TimerHearts, time.Second, func() { order = append(order, TimerHearts) })

	s.Advance(epoch.Add(time.Second))

	if len(order) != 2 || order[0] != TimerPipes || order[1] != TimerHearts {
		t.Errorf("order = %v, want [pipes hearts]", order)
	}
}
