// Package tui provides the Terminal User Interface for the pausa application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/pausa/internal/service"
	"github.com/xolan/pausa/internal/tui/ui"
	"github.com/xolan/pausa/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabTimer Tab = iota
	TabSettings
)

var tabNames = []string{"Timer", "Settings"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	timerView    views.TimerModel
	settingsView views.SettingsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	// Initialize theme from config
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabTimer,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		timerView:     views.NewTimerModel(services, styles, keys),
		settingsView:  views.NewSettingsModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.timerView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The theme selector captures navigation keys; keep the tab
		// keys out of its way while it is open.
		selecting := m.settingsView.IsSelectingTheme()

		// Handle global keys first
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !selecting:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !selecting:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab) && !selecting:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1) && !selecting:
			m.activeTab = TabTimer
			return m, nil

		case key.Matches(msg, m.keys.Tab2) && !selecting:
			m.activeTab = TabSettings
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update view dimensions
		contentHeight := m.height - 4 // Account for tabs and status bar
		m.timerView.SetSize(m.width, contentHeight)
		m.settingsView.SetSize(m.width, contentHeight)
		return m, nil

	case views.TickMsg:
		// The countdown keeps running no matter which tab is shown.
		m.timerView, cmd = m.timerView.Update(msg)
		return m, cmd

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()

		// Update styles
		m.styles = m.themeProvider.Styles()

		// Broadcast theme change to all views
		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.timerView, _ = m.timerView.Update(themeMsg)
		m.settingsView, _ = m.settingsView.Update(themeMsg)

		// Save theme to config
		return m, m.saveThemeConfig(newTheme)
	}

	// Update the active view
	switch m.activeTab {
	case TabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	case TabSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Render tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	// Render active view
	switch m.activeTab {
	case TabTimer:
		b.WriteString(m.timerView.View())
	case TabSettings:
		b.WriteString(m.settingsView.View())
	}

	// Render status bar
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	// Help overlay
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	status := m.timerView.Status()
	if status.BreakDue() {
		parts = append(parts, m.renderKeyHelp("b", "take break"))
	} else {
		parts = append(parts, m.renderKeyHelp("next", views.FormatCountdown(status.Snapshot.Remaining)))
	}

	// View-specific keys
	switch m.activeTab {
	case TabTimer:
		parts = append(parts, m.renderKeyHelp("+", "longer"))
		parts = append(parts, m.renderKeyHelp("-", "shorter"))
	case TabSettings:
		parts = append(parts, m.renderKeyHelp("t", "themes"))
	}

	// Global keys
	parts = append(parts, m.renderKeyHelp("1-2", "views"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// GetThemeProvider returns the theme provider for use by views
func (m Model) GetThemeProvider() *ui.ThemeProvider {
	return m.themeProvider
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	// Global keys
	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-2    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	// View-specific keys
	switch m.activeTab {
	case TabTimer:
		help.WriteString(m.styles.StatLabel.Render("Timer:"))
		help.WriteString("\n")
		help.WriteString("  +/=        Lengthen the interval\n")
		help.WriteString("  -/_        Shorten the interval\n")
		help.WriteString("  b/Enter    Acknowledge a break\n")
	case TabSettings:
		help.WriteString(m.styles.StatLabel.Render("Settings:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())

	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
