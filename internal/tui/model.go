// Package tui implements the interactive palette generator screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huey/internal/color"
	"github.com/alexisbeaulieu97/huey/internal/logger"
	"github.com/alexisbeaulieu97/huey/internal/palette"
	"github.com/alexisbeaulieu97/huey/internal/store"
)

type field int

const (
	fieldPrimary field = iota
	fieldBackground
	fieldCount
)

// SettingsChangedMsg reports generator settings written outside this screen,
// for example by another huey process sharing the preference file.
type SettingsChangedMsg struct {
	Settings palette.Settings
}

type savedMsg struct {
	settings  palette.Settings
	published bool
	err       error
}

type changesClosedMsg struct{}

// Options configures NewModel.
type Options struct {
	Format palette.Format
	Space  color.Space
	Logger *logger.Logger
}

// Model contains the Bubbletea state for the palette generator.
type Model struct {
	ctx  context.Context
	pref *store.Preference[palette.Settings]
	log  *logger.Logger

	settings palette.Settings
	format   palette.Format
	space    color.Space

	palette  palette.Palette
	output   string
	contrast float64

	inputs   [fieldCount]textinput.Model
	focus    field
	inputErr error

	changes <-chan palette.Settings
	cancel  func()
	// echoes counts our own writes whose change notifications are still in
	// flight so they are not mistaken for external edits.
	echoes map[palette.Settings]int

	saved    bool
	err      error
	quitting bool
}

// NewModel loads the stored generator settings and subscribes to changes.
// A stored value that cannot be decoded falls back to the defaults and is
// reported in the status line.
func NewModel(ctx context.Context, pref *store.Preference[palette.Settings], opts Options) Model {
	if opts.Format == "" {
		opts.Format = palette.FormatCSS
	}

	m := Model{
		ctx:    ctx,
		pref:   pref,
		log:    opts.Logger.Component("tui"),
		format: opts.Format,
		space:  opts.Space,
		echoes: make(map[palette.Settings]int),
	}

	settings, err := pref.Get(ctx)
	if err != nil {
		m.err = err
		m.log.Warn("stored palette settings unusable, using defaults", "error", err.Error())
	}
	m.settings = settings

	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 64
		in.Width = 28
		m.inputs[i] = in
	}
	m.inputs[fieldPrimary].Placeholder = "#3b82f6"
	m.inputs[fieldBackground].Placeholder = "#f2f2f2"
	m.inputs[fieldPrimary].Focus()
	m.syncInputs()
	m.regenerate()

	m.changes, m.cancel = pref.Subscribe(ctx)
	return m
}

// Init starts cursor blinking and listens for stored setting changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

// Settings returns the current generator settings.
func (m Model) Settings() palette.Settings {
	return m.settings
}

// Format returns the selected output format.
func (m Model) Format() palette.Format {
	return m.format
}

// Palette returns the palette generated from the active inputs.
func (m Model) Palette() palette.Palette {
	return m.palette
}

// Output returns the serialised palette in the selected format.
func (m Model) Output() string {
	return m.output
}

// Err returns the last generation or storage error, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave the screen.
func (m Model) Quitting() bool {
	return m.quitting
}

// Close stops the change subscription.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// syncInputs copies the active theme's colors into the text inputs.
func (m *Model) syncInputs() {
	active := m.settings.Active()
	m.inputs[fieldPrimary].SetValue(active.Primary)
	m.inputs[fieldBackground].SetValue(active.Background)
	m.inputErr = nil
}

func (m *Model) regenerate() {
	active := m.settings.Active()
	p, err := palette.GenerateWith(palette.Options{
		Base:       active.Primary,
		Background: active.Background,
		Space:      m.space,
	})
	if err != nil {
		m.err = err
		return
	}

	out, err := palette.Serialize(m.format, p, active.Background, m.settings.Theme)
	if err != nil {
		m.err = err
		return
	}

	m.palette = p
	m.output = out
	m.contrast = 0
	if bg, err := color.ParseRGBValue(active.Background); err == nil {
		if text, err := color.ParseRGBValue(p.Colors[palette.Steps-1]); err == nil {
			m.contrast = color.Contrast(text, bg)
		}
	}
}

func (m *Model) focusField(f field) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}

func waitForChange(ch <-chan palette.Settings) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return changesClosedMsg{}
		}
		return SettingsChangedMsg{Settings: s}
	}
}

func saveSettings(ctx context.Context, pref *store.Preference[palette.Settings], s palette.Settings) tea.Cmd {
	return func() tea.Msg {
		published, err := pref.Write(ctx, s)
		return savedMsg{settings: s, published: published, err: err}
	}
}
