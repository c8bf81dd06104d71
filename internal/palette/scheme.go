package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/huey/internal/color"
)

// alphaTolerance widens the accepted [0, 1] alpha window on both sides before
// the solved value is clamped.
const alphaTolerance = 0.05

// CalculateAlpha solves for the alpha at which tint composited over bg
// reproduces target. Only the channel with the largest bg-to-tint distance is
// used (ties resolve R, then G, then B). It returns -1 when that distance is
// below 5, which callers treat as "no match".
func CalculateAlpha(target, bg, tint color.RGB) float64 {
	t, b, ti := target.Rounded(), bg.Rounded(), tint.Rounded()

	diffR := ti.R - b.R
	diffG := ti.G - b.G
	diffB := ti.B - b.B

	maxDiff := max(abs(diffR), abs(diffG), abs(diffB))
	if maxDiff < 5 {
		return -1
	}

	switch maxDiff {
	case abs(diffR):
		return (t.R - b.R) / diffR
	case abs(diffG):
		return (t.G - b.G) / diffG
	default:
		return (t.B - b.B) / diffB
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// AlphaColor approximates target as a translucent color over bg. The step 9
// color is tried first, then the theme foreground; if neither solves inside
// the tolerance window the opaque target is returned unchanged.
func AlphaColor(target string, bg color.RGB, step9 color.RGB, fg color.RGB) (string, error) {
	t, err := color.ParseRGBValue(target)
	if err != nil {
		return "", err
	}

	for _, tint := range []color.RGB{step9, fg} {
		alpha := CalculateAlpha(t, bg, tint)
		if alpha >= -alphaTolerance && alpha <= 1+alphaTolerance {
			return tint.WithAlpha(clamp01(alpha)).Hex8(), nil
		}
	}

	return target, nil
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

// Surfaces are background shades derived for cards, sidebars and muted
// areas.
type Surfaces struct {
	Card    string `json:"card" yaml:"card" toml:"card"`
	Sidebar string `json:"sidebar" yaml:"sidebar" toml:"sidebar"`
	Muted   string `json:"muted" yaml:"muted" toml:"muted"`
}

// DeriveSurfaces lightens the background on dark themes and alternates
// lightening and darkening on light themes.
func DeriveSurfaces(bg color.RGB, theme Theme) Surfaces {
	if theme == ThemeDark {
		return Surfaces{
			Card:    bg.Lighten(5).Hex(),
			Sidebar: bg.Lighten(2).Hex(),
			Muted:   bg.Lighten(8).Hex(),
		}
	}
	return Surfaces{
		Card:    bg.Lighten(5).Hex(),
		Sidebar: bg.Darken(2).Hex(),
		Muted:   bg.Darken(5).Hex(),
	}
}

// Scheme is everything the CSS and token serialisers emit for one palette.
type Scheme struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Theme      Theme    `json:"theme" yaml:"theme" toml:"theme"`
	Background string   `json:"background" yaml:"background" toml:"background"`
	Surfaces   Surfaces `json:"surfaces" yaml:"surfaces" toml:"surfaces"`
	Solid      []string `json:"solid" yaml:"solid" toml:"solid"`
	Alpha      []string `json:"alpha" yaml:"alpha" toml:"alpha"`
	Contrast   string   `json:"contrast" yaml:"contrast" toml:"contrast"`
	Surface    string   `json:"surface" yaml:"surface" toml:"surface"`
	Indicator  string   `json:"indicator" yaml:"indicator" toml:"indicator"`
	Track      string   `json:"track" yaml:"track" toml:"track"`
}

// BuildScheme computes solid and alpha steps plus background surfaces.
func BuildScheme(name string, colors []string, bgColor string, theme Theme) (Scheme, error) {
	if len(colors) != Steps {
		return Scheme{}, fmt.Errorf("palette must have %d colors, got %d", Steps, len(colors))
	}

	bg, err := color.ParseRGBValue(bgColor)
	if err != nil {
		return Scheme{}, fmt.Errorf("background color: %w", err)
	}
	step9, err := color.ParseRGBValue(colors[BaseIndex])
	if err != nil {
		return Scheme{}, fmt.Errorf("step 9: %w", err)
	}

	fg := color.Black
	if theme == ThemeDark {
		fg = color.White
	}

	alphas := make([]string, len(colors))
	for i, c := range colors {
		a, err := AlphaColor(c, bg, step9, fg)
		if err != nil {
			return Scheme{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		alphas[i] = a
	}

	return Scheme{
		Name:       name,
		Theme:      theme,
		Background: bgColor,
		Surfaces:   DeriveSurfaces(bg, theme),
		Solid:      append([]string(nil), colors...),
		Alpha:      alphas,
		Contrast:   "#fff",
		Surface:    alphas[1],
		Indicator:  colors[BaseIndex],
		Track:      colors[BaseIndex],
	}, nil
}
