package service

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/xolan/pausa/internal/notify"
	"github.com/xolan/pausa/internal/timer"
)

// TimerService drives the countdown engine and delivers its break
// signals. Notification failures are logged and swallowed; the loop must
// keep running whatever happens to the notifier.
type TimerService struct {
	engine       *timer.Engine
	notifier     notify.Notifier
	log          zerolog.Logger
	maxReminders int
}

// NewTimerService creates a TimerService with a fresh engine.
func NewTimerService(opts timer.Options, notifier notify.Notifier, log zerolog.Logger) *TimerService {
	return &TimerService{
		engine:       timer.New(opts),
		notifier:     notifier,
		log:          log,
		maxReminders: opts.MaxReminders,
	}
}

// Tick advances the timer by one quantum and dispatches any resulting
// notification. The returned event lets the caller update its display.
func (s *TimerService) Tick(quantum time.Duration) timer.Event {
	evt := s.engine.Tick(quantum)

	switch evt.Type {
	case timer.EventBreakDue, timer.EventReminder:
		n := notify.ForBreak(evt.Reminder)
		if err := s.notifier.Notify(n); err != nil {
			s.log.Warn().Err(err).Int("reminder", evt.Reminder).Msg("notification delivery failed")
		} else {
			s.log.Debug().Int("reminder", evt.Reminder).Msg("break notification sent")
		}
	case timer.EventCycleReset:
		s.log.Info().Msg("break unacknowledged, restarting countdown")
	}

	return evt
}

// Increase extends the break interval by the configured step. Returns
// the new status and whether the adjustment was applied.
func (s *TimerService) Increase() (TimerStatus, bool) {
	snap, ok := s.engine.Increase()
	if ok {
		s.log.Debug().Dur("interval", snap.Interval).Msg("interval increased")
	}
	return s.status(snap), ok
}

// Decrease shrinks the break interval by the configured step, floored at
// the configured minimum. Returns the new status and whether the
// interval actually changed.
func (s *TimerService) Decrease() (TimerStatus, bool) {
	snap, ok := s.engine.Decrease()
	if ok {
		s.log.Debug().Dur("interval", snap.Interval).Msg("interval decreased")
	}
	return s.status(snap), ok
}

// Acknowledge marks the pending break as taken. Returns false when no
// break was pending.
func (s *TimerService) Acknowledge() bool {
	ok := s.engine.Acknowledge()
	if ok {
		s.log.Info().Msg("break acknowledged")
	}
	return ok
}

// Status returns the current timer status.
func (s *TimerService) Status() TimerStatus {
	return s.status(s.engine.Snapshot())
}

func (s *TimerService) status(snap timer.Snapshot) TimerStatus {
	return TimerStatus{
		Snapshot:     snap,
		Step:         s.engine.Step(),
		MaxReminders: s.maxReminders,
	}
}
