package palette

import (
	"fmt"
	"strings"
)

// Theme selects the light or dark variant of the generated output.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name. The empty string selects light.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "", ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeColors is the generator input for one theme.
type ThemeColors struct {
	Primary    string `json:"primaryColor" yaml:"primary" validate:"required"`
	Background string `json:"bgColor" yaml:"background" validate:"required"`
}

// SettingsKey is the preference key the generator state is stored under.
const SettingsKey = "palette-generator"

// Settings is the persisted generator state: the active theme plus the
// inputs remembered for each theme.
type Settings struct {
	Theme Theme       `json:"theme" yaml:"theme"`
	Light ThemeColors `json:"light" yaml:"light"`
	Dark  ThemeColors `json:"dark" yaml:"dark"`
}

// DefaultSettings returns the generator's starting state.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeLight,
		Light: ThemeColors{Primary: "#3b82f6", Background: "#f2f2f2"},
		Dark:  ThemeColors{Primary: "#3b82f6", Background: "#000000"},
	}
}

// Active returns the inputs of the current theme.
func (s Settings) Active() ThemeColors {
	if s.Theme == ThemeDark {
		return s.Dark
	}
	return s.Light
}

// WithActive returns a copy with the current theme's inputs replaced.
func (s Settings) WithActive(tc ThemeColors) Settings {
	if s.Theme == ThemeDark {
		s.Dark = tc
	} else {
		s.Light = tc
	}
	return s
}

// Generate builds the palette for the active theme.
func (s Settings) Generate() (Palette, error) {
	active := s.Active()
	return Generate(active.Primary, active.Background)
}
