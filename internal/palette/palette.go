// Package palette derives a 12 step color ramp from a base color and a
// background color, and serialises it as CSS custom properties, design tokens
// or plain text.
package palette

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/huey/internal/color"
)

const (
	// Steps is the number of colors in every palette.
	Steps = 12
	// BaseIndex is the position of the base color ("step 9").
	BaseIndex = 8

	startMix = 7
	endMix   = 75
)

// Palette is a generated ramp plus a human readable name.
type Palette struct {
	Name   string        `json:"name" yaml:"name"`
	Colors [Steps]string `json:"colors" yaml:"colors"`
}

// Slice returns the colors as a slice.
func (p Palette) Slice() []string {
	return append([]string(nil), p.Colors[:]...)
}

// Options configures GenerateWith.
type Options struct {
	Base       string
	Background string
	Space      color.Space
}

// Generate builds the palette for base on top of background using channel
// interpolation.
func Generate(base, background string) (Palette, error) {
	return GenerateWith(Options{Base: base, Background: background})
}

// GenerateWith builds a palette. Steps 1-9 run from a 7% tint of the
// background up to the base color; steps 9-12 continue from the base toward
// white on dark backgrounds and toward black on light ones.
func GenerateWith(opts Options) (Palette, error) {
	base, err := color.ParseRGBValue(opts.Base)
	if err != nil {
		return Palette{}, fmt.Errorf("base color: %w", err)
	}
	bg, err := color.ParseRGBValue(opts.Background)
	if err != nil {
		return Palette{}, fmt.Errorf("background color: %w", err)
	}

	start := color.Mix(bg, base, startMix)

	var end color.RGB
	if bg.IsDark() {
		end = color.Mix(base, color.White, endMix)
	} else {
		end = color.Mix(base, color.Black, endMix)
	}

	lower := interpolate(start, base, BaseIndex+1, opts.Space)
	upper := interpolate(base, end, Steps-BaseIndex, opts.Space)

	var p Palette
	copy(p.Colors[:], lower)
	copy(p.Colors[BaseIndex+1:], upper[1:])
	// Step 9 is always the base color, whatever space the ramp was built in.
	p.Colors[BaseIndex] = base.Hex()
	p.Name = ClassifyName(base)

	return p, nil
}

func interpolate(start, end color.RGB, count int, space color.Space) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count-1)
		colors[i] = color.Blend(start, end, t, space).Hex()
	}
	return colors
}

// ClassifyName names a color. Exact CSS names win; otherwise achromatic colors
// are split by lightness and the rest by hue bucket. Lower bucket bounds are
// inclusive.
func ClassifyName(c color.RGB) string {
	if name, ok := color.Name(c); ok {
		return capitalize(name)
	}

	h, s, l := c.HSL()
	if s < 0.1 {
		switch {
		case l < 0.2:
			return "Black"
		case l > 0.8:
			return "White"
		default:
			return "Gray"
		}
	}

	switch {
	case h < 15 || h >= 345:
		return "Red"
	case h < 45:
		return "Orange"
	case h < 75:
		return "Yellow"
	case h < 165:
		return "Green"
	case h < 195:
		return "Cyan"
	case h < 255:
		return "Blue"
	case h < 315:
		return "Purple"
	default:
		return "Pink"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func slug(name string) string {
	return strings.ToLower(name)
}
