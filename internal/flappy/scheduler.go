package flappy

import "time"

// TimerID names a timer. Arming an id replaces any timer armed under it.
type TimerID string

// Timers used by the state machine.
const (
	TimerPipes       TimerID = "pipes"
	TimerHearts      TimerID = "hearts"
	TimerMenuConfirm TimerID = "menu-confirm"
	TimerRestart     TimerID = "restart"
)

type timer struct {
	id       TimerID
	interval time.Duration
	next     time.Time
	repeat   bool
	fn       func()
}

// Scheduler runs one-shot and recurring timers on frame time.
// Timers only fire from Advance, which the frame driver calls at the start of
// every frame, so callbacks never overlap with entity updates.
type Scheduler struct {
	timers []*timer // Arming order
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every arms a recurring timer whose first tick is one interval after now.
func (s *Scheduler) Every(now time.Time, id TimerID, interval time.Duration, fn func()) {
	s.arm(&timer{id: id, interval: interval, next: now.Add(interval), repeat: true, fn: fn})
}

// After arms a one-shot timer.
func (s *Scheduler) After(now time.Time, id TimerID, delay time.Duration, fn func()) {
	s.arm(&timer{id: id, interval: delay, next: now.Add(delay), fn: fn})
}

func (s *Scheduler) arm(t *timer) {
	s.Cancel(t.id)
	s.timers = append(s.timers, t)
}

// Cancel stops the timer armed under id, if any.
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Active reports whether a timer is armed under id.
func (s *Scheduler) Active(id TimerID) bool {
	return s.find(id) != nil
}

// Len returns the number of armed timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

func (s *Scheduler) find(id TimerID) *timer {
	for _, t := range s.timers {
		if t.id == id {
			return t
		}
	}
	return nil
}

// Advance fires every timer due at now, in arming order. A recurring timer
// fires at most once per call; periods missed during a stall are dropped.
// Callbacks may arm or cancel timers, including their own.
func (s *Scheduler) Advance(now time.Time) {
	due := make([]*timer, 0, len(s.timers))
	for _, t := range s.timers {
		if !now.Before(t.next) {
			due = append(due, t)
		}
	}

	for _, t := range due {
		// An earlier callback may have cancelled or replaced this timer.
		if s.find(t.id) != t {
			continue
		}
		if t.repeat {
			t.next = t.next.Add(t.interval)
			if !t.next.After(now) {
				t.next = now.Add(t.interval)
			}
		} else {
			s.Cancel(t.id)
		}
		t.fn()
	}
}
