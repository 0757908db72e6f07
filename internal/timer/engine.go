// Package timer implements the break countdown engine.
//
// The engine is a mutex-guarded state machine driven by fixed ticks. It
// performs no I/O itself; break notifications surface as events that the
// caller delivers.
package timer

import (
	"sync"
	"time"
)

// Phase describes what the engine is currently doing.
type Phase int

const (
	// PhaseCounting means the countdown toward the next break is running.
	PhaseCounting Phase = iota
	// PhaseReminding means a break is due and the engine is waiting for
	// the user to acknowledge it, re-reminding periodically.
	PhaseReminding
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCounting:
		return "counting"
	case PhaseReminding:
		return "reminding"
	default:
		return "unknown"
	}
}

// EventType identifies what happened during a tick.
type EventType int

const (
	// EventNone means the tick advanced the countdown without reaching zero.
	EventNone EventType = iota
	// EventBreakDue means the countdown hit zero and a break notification
	// should be delivered.
	EventBreakDue
	// EventReminder means an unacknowledged break was re-notified.
	EventReminder
	// EventCycleReset means the reminder budget ran out and the engine
	// started a fresh countdown on its own.
	EventCycleReset
)

// Event is the outcome of a single tick.
type Event struct {
	Type EventType
	// Reminder is the 1-based notification count within the current break,
	// counting the initial break-due notification. Zero unless Type is
	// EventBreakDue or EventReminder.
	Reminder int
}

// Options configures an Engine. All durations must be positive and
// Min <= Interval <= Max must hold; see Config.Validate, which enforces
// this before an Engine is built.
type Options struct {
	// Interval is the starting break frequency.
	Interval time.Duration
	// Min is the floor Decrease will never go below.
	Min time.Duration
	// Max is the cap Increase will never exceed.
	Max time.Duration
	// Step is the quantum Increase and Decrease apply.
	Step time.Duration
	// MaxReminders is the total number of notifications per break,
	// counting the first. Zero disables escalation: the countdown
	// notifies and immediately resets.
	MaxReminders int
	// ReminderEvery is the pause between repeated notifications for an
	// unacknowledged break.
	ReminderEvery time.Duration
}

// Snapshot is a consistent view of the engine state for rendering.
type Snapshot struct {
	Interval      time.Duration
	Remaining     time.Duration
	Phase         Phase
	RemindersSent int
	UntilReminder time.Duration
}

// Engine owns the countdown state. All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	opts          Options
	interval      time.Duration
	remaining     time.Duration
	phase         Phase
	remindersSent int
	untilReminder time.Duration
}

// New creates an Engine counting down from the configured interval.
// The interval is clamped into [Min, Max] so the invariants hold from the
// first tick regardless of what the caller passed.
func New(opts Options) *Engine {
	interval := clamp(opts.Interval, opts.Min, opts.Max)
	return &Engine{
		opts:      opts,
		interval:  interval,
		remaining: interval,
		phase:     PhaseCounting,
	}
}

// Tick advances the engine by one quantum of elapsed real time and
// reports what happened. It never fails.
func (e *Engine) Tick(quantum time.Duration) Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseCounting:
		e.remaining -= quantum
		if e.remaining > 0 {
			return Event{Type: EventNone}
		}
		e.remaining = 0

		if e.opts.MaxReminders == 0 {
			// No escalation configured: notify and start the next cycle.
			e.remaining = e.interval
			return Event{Type: EventBreakDue, Reminder: 1}
		}

		e.phase = PhaseReminding
		e.remindersSent = 1
		e.untilReminder = e.opts.ReminderEvery
		return Event{Type: EventBreakDue, Reminder: 1}

	case PhaseReminding:
		e.untilReminder -= quantum
		if e.untilReminder > 0 {
			return Event{Type: EventNone}
		}

		if e.remindersSent < e.opts.MaxReminders {
			e.remindersSent++
			e.untilReminder = e.opts.ReminderEvery
			return Event{Type: EventReminder, Reminder: e.remindersSent}
		}

		// Reminder budget exhausted; give up on this break and restart
		// the countdown. The loop has no terminal state.
		e.resetCycleLocked()
		return Event{Type: EventCycleReset}
	}

	return Event{Type: EventNone}
}

// Increase extends the interval by the configured step, capped at the
// maximum. The live countdown is extended by the same amount so the user
// sees the effect immediately. Returns the new state and whether the
// adjustment was applied; adjustments are ignored while a break is
// pending, as they were in the original tool.
func (e *Engine) Increase() (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseCounting {
		return e.snapshotLocked(), false
	}

	before := e.interval
	e.interval = clamp(e.interval+e.opts.Step, e.opts.Min, e.opts.Max)
	grown := e.interval - before
	e.remaining = clamp(e.remaining+grown, 0, e.interval)

	return e.snapshotLocked(), grown > 0
}

// Decrease shrinks the interval by the configured step, floored at the
// minimum. The live countdown is clamped down so remaining never exceeds
// the interval. Returns the new state and whether the interval actually
// changed (false once the floor is reached, or while a break is pending).
func (e *Engine) Decrease() (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseCounting {
		return e.snapshotLocked(), false
	}

	before := e.interval
	e.interval = clamp(e.interval-e.opts.Step, e.opts.Min, e.opts.Max)
	if e.remaining > e.interval {
		e.remaining = e.interval
	}

	return e.snapshotLocked(), e.interval != before
}

// Acknowledge marks the pending break as taken and starts the next
// countdown. Returns false when no break is pending.
func (e *Engine) Acknowledge() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseReminding {
		return false
	}
	e.resetCycleLocked()
	return true
}

// Snapshot returns a consistent copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Step returns the configured adjustment quantum.
func (e *Engine) Step() time.Duration {
	return e.opts.Step
}

func (e *Engine) resetCycleLocked() {
	e.phase = PhaseCounting
	e.remaining = e.interval
	e.remindersSent = 0
	e.untilReminder = 0
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Interval:      e.interval,
		Remaining:     e.remaining,
		Phase:         e.phase,
		RemindersSent: e.remindersSent,
		UntilReminder: e.untilReminder,
	}
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
