// Package notify delivers break notifications. The timer engine never
// talks to a terminal or a desktop directly; it hands a Notification to
// a Notifier and moves on.
package notify

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/xolan/pausa/internal/osutil"
)

// Notification is a single break signal.
type Notification struct {
	Title   string
	Message string
	// Reminder is the 1-based notification count within the current
	// break; 1 is the initial break-due signal.
	Reminder int
}

// Notifier delivers a notification to the user. Implementations report
// delivery failures but callers are expected to log and ignore them —
// a lost notification must never stop the countdown.
type Notifier interface {
	Notify(n Notification) error
}

// Bell rings the terminal bell by writing BEL to the writer.
type Bell struct {
	W io.Writer
}

// Notify implements Notifier.
func (b Bell) Notify(Notification) error {
	_, err := b.W.Write([]byte("\a"))
	if err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Command delivers notifications by spawning an external program such as
// notify-send.
type Command struct {
	runner  osutil.CommandRunner
	program string
	args    func(n Notification) []string
}

// Notify implements Notifier.
func (c *Command) Notify(n Notification) error {
	if err := c.runner.Run(c.program, c.args(n)...); err != nil {
		return fmt.Errorf("%s: %w", c.program, err)
	}
	return nil
}

// Program returns the notifier binary in use, for logging.
func (c *Command) Program() string {
	return c.program
}

// NewDesktop returns a Command backed by the platform's notification
// helper: notify-send on Linux and BSDs, osascript on macOS. Returns
// false when no helper is available; desktop notifications are then
// silently disabled.
func NewDesktop(runner osutil.CommandRunner) (*Command, bool) {
	if runtime.GOOS == "darwin" {
		if _, err := runner.LookPath("osascript"); err != nil {
			return nil, false
		}
		return &Command{
			runner:  runner,
			program: "osascript",
			args: func(n Notification) []string {
				script := fmt.Sprintf("display notification %q with title %q", n.Message, n.Title)
				return []string{"-e", script}
			},
		}, true
	}

	if _, err := runner.LookPath("notify-send"); err != nil {
		return nil, false
	}
	return &Command{
		runner:  runner,
		program: "notify-send",
		args: func(n Notification) []string {
			return []string{"--urgency=normal", "--app-name=pausa", n.Title, n.Message}
		},
	}, true
}

// Multi fans a notification out to every notifier, collecting errors.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ForBreak builds the notification for a given reminder count.
func ForBreak(reminder int) Notification {
	n := Notification{
		Title:    "pausa",
		Message:  "Time to take a break!",
		Reminder: reminder,
	}
	if reminder > 1 {
		n.Message = fmt.Sprintf("Still time for a break (reminder %d)", reminder)
	}
	return n
}
