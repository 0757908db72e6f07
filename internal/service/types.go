// Package service provides the business logic layer for pausa. It wraps
// the timer engine, notification delivery, and configuration behind a
// clean API for the TUI and CLI frontends.
package service

import (
	"time"

	"github.com/xolan/pausa/internal/timer"
)

// TimerStatus is the renderable state of the break timer.
type TimerStatus struct {
	Snapshot timer.Snapshot
	// Step is the quantum each increase/decrease applies, for display.
	Step time.Duration
	// MaxReminders mirrors the configured escalation budget.
	MaxReminders int
}

// BreakDue reports whether a break is currently waiting to be taken.
func (s TimerStatus) BreakDue() bool {
	return s.Snapshot.Phase == timer.PhaseReminding
}
