package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/pausa/internal/service"
	"github.com/xolan/pausa/internal/timer"
	"github.com/xolan/pausa/internal/tui/ui"
)

// toastTicks is how many seconds transient feedback stays visible.
const toastTicks = 4

// TickMsg drives the countdown; one is emitted every second. The root
// model routes it to the timer view even when another tab is active so
// the engine never stops advancing.
type TickMsg time.Time

// TimerModel is the model for the timer view
type TimerModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	status service.TimerStatus
	bar    progress.Model

	// Transient feedback line
	toast    string
	toastTTL int
}

// NewTimerModel creates a new timer view model
func NewTimerModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TimerModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)

	return TimerModel{
		services: services,
		styles:   styles,
		keys:     keys,
		status:   services.Timer.Status(),
		bar:      bar,
	}
}

// Init implements tea.Model
func (m TimerModel) Init() tea.Cmd {
	return tickTimer()
}

// Update implements tea.Model
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Increase):
			return m.handleIncrease(), nil
		case key.Matches(msg, m.keys.Decrease):
			return m.handleDecrease(), nil
		case key.Matches(msg, m.keys.Acknowledge):
			return m.handleAcknowledge(), nil
		}

	case TickMsg:
		evt := m.services.Timer.Tick(time.Second)
		m.status = m.services.Timer.Status()
		if evt.Type == timer.EventCycleReset {
			m.setToast("Break skipped, countdown restarted")
		}
		m.ageToast()
		return m, tickTimer()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

func (m TimerModel) handleIncrease() TimerModel {
	status, ok := m.services.Timer.Increase()
	m.status = status
	switch {
	case ok:
		m.setToast(fmt.Sprintf("Interval increased to %s", formatInterval(status.Snapshot.Interval)))
	case status.BreakDue():
		m.setToast("Interval is locked while a break is due")
	default:
		m.setToast("Interval already at maximum")
	}
	return m
}

func (m TimerModel) handleDecrease() TimerModel {
	status, ok := m.services.Timer.Decrease()
	m.status = status
	switch {
	case ok:
		m.setToast(fmt.Sprintf("Interval decreased to %s", formatInterval(status.Snapshot.Interval)))
	case status.BreakDue():
		m.setToast("Interval is locked while a break is due")
	default:
		m.setToast("Interval already at minimum")
	}
	return m
}

func (m TimerModel) handleAcknowledge() TimerModel {
	if m.services.Timer.Acknowledge() {
		m.status = m.services.Timer.Status()
		m.setToast("Break taken, countdown restarted")
	}
	return m
}

func (m *TimerModel) setToast(s string) {
	m.toast = s
	m.toastTTL = toastTicks
}

func (m *TimerModel) ageToast() {
	if m.toastTTL > 0 {
		m.toastTTL--
		if m.toastTTL == 0 {
			m.toast = ""
		}
	}
}

// View implements tea.Model
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Break Timer"))
	b.WriteString("\n\n")

	snap := m.status.Snapshot

	if m.status.BreakDue() {
		b.WriteString(m.styles.BreakBanner.Render("● Time to take a break!"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Reminder:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(
			fmt.Sprintf("%d of %d", snap.RemindersSent, m.status.MaxReminders)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'b' or Enter when you are back"))
	} else {
		b.WriteString(m.styles.PhaseLabel.Render("Next break in"))
		b.WriteString("\n")
		b.WriteString(m.styles.Countdown.Render(FormatCountdown(snap.Remaining)))
		b.WriteString("\n\n")
		b.WriteString(m.renderBar())
		b.WriteString("\n\n")

		b.WriteString(m.styles.StatLabel.Render("Interval:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(formatInterval(snap.Interval)))
		b.WriteString("\n")

		b.WriteString(m.styles.StatLabel.Render("Step:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(formatInterval(m.status.Step)))
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Toast.Render(m.toast))
	}

	return b.String()
}

// renderBar renders the countdown progress bar, filling as the break
// approaches.
func (m TimerModel) renderBar() string {
	snap := m.status.Snapshot
	if snap.Interval <= 0 {
		return ""
	}
	elapsed := snap.Interval - snap.Remaining
	return m.bar.ViewAs(float64(elapsed) / float64(snap.Interval))
}

// SetSize sets the view dimensions
func (m *TimerModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.bar.Width = barWidth
}

// Status exposes the last observed timer status for the root model's
// status bar.
func (m TimerModel) Status() service.TimerStatus {
	return m.status
}

// tickTimer returns a command that sends a tick after one second.
func tickTimer() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
