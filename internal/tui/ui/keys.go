package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding

	// Actions
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding

	// Timer-specific
	Increase    key.Binding
	Decrease    key.Binding
	Acknowledge key.Binding
}

// DefaultKeyMap returns the default key bindings. The +/- interval keys
// match the original tool.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation (vim + arrows)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		// Tab navigation
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "timer"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "settings"),
		),

		// Actions
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		// Timer-specific
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer interval"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter interval"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys("b", "enter", " "),
			key.WithHelp("b", "take break"),
		),
	}
}
