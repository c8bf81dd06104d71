package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huey/internal/color"
	"github.com/alexisbeaulieu97/huey/internal/palette"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.Close()
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.focusField((m.focus + 1) % fieldCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.focusField((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case tea.KeyCtrlT:
			m.settings.Theme = m.settings.Theme.Toggle()
			m.syncInputs()
			m.regenerate()
			return m, m.save()
		case tea.KeyCtrlF:
			m.format = m.format.Next()
			m.regenerate()
			return m, nil
		case tea.KeyCtrlR:
			m.settings = m.pref.Default()
			m.syncInputs()
			m.regenerate()
			return m, m.save()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, tea.Batch(cmd, m.applyInput())
	case SettingsChangedMsg:
		if m.echoes[msg.Settings] > 0 {
			m.forgetEcho(msg.Settings)
			return m, waitForChange(m.changes)
		}
		if msg.Settings != m.settings {
			m.log.Debug("palette settings changed externally", "theme", string(msg.Settings.Theme))
			m.settings = msg.Settings
			m.syncInputs()
			m.regenerate()
		}
		return m, waitForChange(m.changes)
	case changesClosedMsg:
		m.changes = nil
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.forgetEcho(msg.settings)
			m.saved = false
			m.err = msg.err
			m.log.Error(msg.err, "failed to save palette settings")
			return m, nil
		}
		if !msg.published {
			m.forgetEcho(msg.settings)
		}
		m.saved = true
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// applyInput parses the focused field and, when it holds a valid color that
// differs from the stored one, regenerates and saves.
func (m *Model) applyInput() tea.Cmd {
	c, err := color.Parse(strings.TrimSpace(m.inputs[m.focus].Value()))
	if err != nil {
		m.inputErr = err
		return nil
	}
	m.inputErr = nil

	active := m.settings.Active()
	switch m.focus {
	case fieldPrimary:
		if active.Primary == c.Hex {
			return nil
		}
		active.Primary = c.Hex
	case fieldBackground:
		if active.Background == c.Hex {
			return nil
		}
		active.Background = c.Hex
	}

	m.settings = m.settings.WithActive(active)
	m.regenerate()
	return m.save()
}

func (m *Model) save() tea.Cmd {
	m.saved = false
	m.echoes[m.settings]++
	return saveSettings(m.ctx, m.pref, m.settings)
}

func (m *Model) forgetEcho(s palette.Settings) {
	if n := m.echoes[s]; n > 1 {
		m.echoes[s] = n - 1
	} else {
		delete(m.echoes, s)
	}
}
