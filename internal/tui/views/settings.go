package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/pausa/internal/service"
	"github.com/xolan/pausa/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// SettingsModel is the model for the settings view
type SettingsModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	themeName string

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int // For scrolling
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) SettingsModel {
	themes := themeProvider.AvailableThemes()
	currentTheme := themeProvider.CurrentName()

	cursor := 0
	for i, t := range themes {
		if t == currentTheme {
			cursor = i
			break
		}
	}

	return SettingsModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themeName:     currentTheme,
		themes:        themes,
		themeCursor:   cursor,
	}
}

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		// Open theme selector with Enter or 't'
		if key.Matches(msg, m.keys.Select) || msg.String() == "t" {
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		return m, nil
	}

	return m, nil
}

// handleThemeSelection handles keys when the theme selector is open
func (m SettingsModel) handleThemeSelection(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		selectedTheme := m.themes[m.themeCursor]
		m.selectingTheme = false
		return m, m.requestThemeChange(selectedTheme)

	case key.Matches(msg, m.keys.Back):
		// Close selector without changing; reset cursor to current theme.
		m.selectingTheme = false
		for i, t := range m.themes {
			if t == m.themeName {
				m.themeCursor = i
				break
			}
		}
		return m, nil
	}

	return m, nil
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *SettingsModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// requestThemeChange creates a command to request a theme change by name
func (m SettingsModel) requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// View implements tea.Model
func (m SettingsModel) View() string {
	if m.selectingTheme {
		return m.renderThemeSelector()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n\n")

	cfg := m.services.Config.Get()

	b.WriteString(m.styles.StatLabel.Render("Config file:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.services.Config.GetPath()))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.services.Config.Exists() {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat("─", barRuleWidth(m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderSettingLine("interval", cfg.Interval))
	b.WriteString(m.renderSettingLine("min_interval", cfg.MinInterval))
	b.WriteString(m.renderSettingLine("max_interval", cfg.MaxInterval))
	b.WriteString(m.renderSettingLine("step", cfg.Step))
	b.WriteString(m.renderSettingLine("max_reminders", strconv.Itoa(cfg.MaxReminders)))
	b.WriteString(m.renderSettingLine("reminder_every", cfg.ReminderEvery))
	b.WriteString(m.renderSettingLine("bell", boolString(cfg.Bell)))
	b.WriteString(m.renderSettingLine("desktop_notifications", boolString(cfg.DesktopNotifications)))
	b.WriteString(m.renderSettingLine("theme", m.themeName))

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Press 't' or Enter to change the theme"))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Edit the config file to change timer settings"))

	return b.String()
}

// renderThemeSelector renders the scrollable theme list
func (m SettingsModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Choose Theme"))
	b.WriteString("\n\n")

	end := m.themeOffset + maxVisibleThemes
	if end > len(m.themes) {
		end = len(m.themes)
	}

	for i := m.themeOffset; i < end; i++ {
		name := m.themes[i]
		if i == m.themeCursor {
			b.WriteString(m.styles.ListSelected.Render("> " + name))
		} else {
			b.WriteString(m.styles.ListNormal.Render("  " + name))
		}
		if name == m.themeName {
			b.WriteString(m.styles.Success.Render(" (current)"))
		}
		b.WriteString("\n")
	}

	if len(m.themes) > maxVisibleThemes {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render(
			strconv.Itoa(m.themeCursor+1) + "/" + strconv.Itoa(len(m.themes)) + " themes"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to select, Esc to cancel"))

	return b.String()
}

// renderSettingLine renders a single key/value settings row
func (m SettingsModel) renderSettingLine(name, value string) string {
	return m.styles.StatLabel.Render(name) + " " + m.styles.StatValue.Render(value) + "\n"
}

// SetSize sets the view dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsSelectingTheme returns true while the theme selector is open.
func (m SettingsModel) IsSelectingTheme() bool {
	return m.selectingTheme
}

func barRuleWidth(width int) int {
	if width <= 0 || width > 50 {
		return 50
	}
	return width
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
