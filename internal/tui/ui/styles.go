package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Countdown
	Countdown    lipgloss.Style
	CountdownDue lipgloss.Style
	PhaseLabel   lipgloss.Style
	BreakBanner  lipgloss.Style
	Toast        lipgloss.Style

	// Key/value rows (settings, timer details)
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Selection lists
	ListSelected lipgloss.Style
	ListNormal   lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return NewThemeProvider("").Styles()
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic UI elements:
// - Primary: Purple (tabs, titles)
// - Secondary: Cyan (status keys, list markers)
// - Accent: BrightPurple (the countdown itself)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		// Content area
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Countdown
		Countdown: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		CountdownDue: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		PhaseLabel: lipgloss.NewStyle().
			Foreground(muted),
		BreakBanner: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		Toast: lipgloss.NewStyle().
			Foreground(secondary),

		// Key/value rows
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Selection lists
		ListSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		ListNormal: lipgloss.NewStyle().
			Foreground(fg),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
