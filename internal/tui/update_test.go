package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huey/internal/palette"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestUpdateSwitchesFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldBackground, m.focus)
	require.True(t, m.inputs[fieldBackground].Focused())
	require.False(t, m.inputs[fieldPrimary].Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldPrimary, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, fieldBackground, m.focus)
}

func TestUpdateTogglesThemeAndSaves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, pref := newPreference(t)
	m := NewModel(ctx, pref, Options{})
	t.Cleanup(m.Close)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, palette.ThemeDark, m.Settings().Theme)
	require.Equal(t, "#000000", m.inputs[fieldBackground].Value())
	require.Contains(t, m.Output(), ".dark {")
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(savedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	m, _ = update(t, m, msg)
	require.True(t, m.saved)

	stored, err := pref.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, palette.ThemeDark, stored.Theme)
}

func TestUpdateCyclesFormat(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Nil(t, cmd)
	require.Equal(t, palette.FormatChakra, m.Format())
	require.Contains(t, m.Output(), "createSystem")
}

func TestUpdateAppliesValidInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.inputs[fieldPrimary].SetValue("red")

	cmd := m.applyInput()
	require.NotNil(t, cmd)
	require.NoError(t, m.inputErr)
	require.Equal(t, "#ff0000", m.Settings().Light.Primary)
	require.Equal(t, "#ff0000", m.Palette().Colors[palette.BaseIndex])
	require.Equal(t, "#3b82f6", m.Settings().Dark.Primary)

	require.Nil(t, m.applyInput(), "unchanged value is not saved again")
}

func TestUpdateAppliesBackgroundInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.inputs[fieldBackground].SetValue("#FFFFFF")

	require.NotNil(t, m.applyInput())
	require.Equal(t, "#ffffff", m.Settings().Light.Background)
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")})
	require.Equal(t, "#3b82f6zz", m.inputs[fieldPrimary].Value())
	require.Error(t, m.inputErr)
	require.Equal(t, palette.DefaultSettings(), m.Settings())
}

func TestUpdateResetsSettings(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.inputs[fieldPrimary].SetValue("#00ff00")
	require.NotNil(t, m.applyInput())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	require.Equal(t, palette.DefaultSettings(), m.Settings())
	require.Equal(t, "#3b82f6", m.inputs[fieldPrimary].Value())
}

func TestUpdateIgnoresOwnWrites(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.echoes[m.Settings()])

	m, next := update(t, m, SettingsChangedMsg{Settings: m.Settings()})
	require.NotNil(t, next)
	require.Zero(t, m.echoes[m.Settings()])
	require.Equal(t, palette.ThemeDark, m.Settings().Theme)
}

func TestUpdateResetWithNothingStoredLeavesNoEcho(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, pref := newPreference(t)
	m := NewModel(ctx, pref, Options{})
	t.Cleanup(m.Close)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	saved, ok := cmd().(savedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	require.False(t, saved.published)

	m, _ = update(t, m, saved)
	require.Empty(t, m.echoes)

	external := palette.DefaultSettings()
	external.Light.Primary = "#ff00ff"
	require.NoError(t, pref.Set(ctx, external))
	m, _ = update(t, m, waitForChange(m.changes)())
	require.Equal(t, external, m.Settings())

	require.NoError(t, pref.Reset(ctx))
	m, _ = update(t, m, waitForChange(m.changes)())
	require.Equal(t, palette.DefaultSettings(), m.Settings())
	require.Equal(t, "#3b82f6", m.inputs[fieldPrimary].Value())
}

func TestUpdateAdoptsExternalChanges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, pref := newPreference(t)
	m := NewModel(ctx, pref, Options{})
	t.Cleanup(m.Close)

	external := palette.DefaultSettings()
	external.Light.Primary = "#ff00ff"
	require.NoError(t, pref.Set(ctx, external))

	msg := waitForChange(m.changes)()
	changed, ok := msg.(SettingsChangedMsg)
	require.True(t, ok)
	require.Equal(t, external, changed.Settings)

	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd)
	require.Equal(t, external, m.Settings())
	require.Equal(t, "#ff00ff", m.inputs[fieldPrimary].Value())
	require.Equal(t, "#ff00ff", m.Palette().Colors[palette.BaseIndex])
}

func TestUpdateReportsSaveFailure(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.echoes[m.Settings()] = 1

	m, cmd := update(t, m, savedMsg{settings: m.Settings(), err: errors.New("disk full")})
	require.Nil(t, cmd)
	require.False(t, m.saved)
	require.EqualError(t, m.Err(), "disk full")
	require.Zero(t, m.echoes[m.Settings()])
}

func TestUpdateQuits(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateStopsListeningWhenChangesClose(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := update(t, m, changesClosedMsg{})
	require.Nil(t, cmd)
	require.Nil(t, m.changes)
	require.Nil(t, waitForChange(m.changes))
}
