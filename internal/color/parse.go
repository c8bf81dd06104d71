package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

// Mode names a textual color representation.
type Mode string

const (
	ModeHex Mode = "hex"
	ModeRGB Mode = "rgb"
	ModeHSV Mode = "hsv"
)

// ParseMode validates a representation name. The empty string selects hex.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeHex:
		return ModeHex, nil
	case ModeRGB:
		return ModeRGB, nil
	case ModeHSV:
		return ModeHSV, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want hex, rgb or hsv)", s)
}

var (
	hexPattern = regexp.MustCompile(`^([0-9A-F]{3}|[0-9A-F]{6}|[0-9A-F]{8})$`)
	rgbPattern = regexp.MustCompile(`^(rgb|rgba)\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*(?:,\s*([\d.]+)\s*)?\)$`)
	hsvPattern = regexp.MustCompile(`^(hsv|hsva)\(\s*([\d.]+)\s*,\s*([\d.]+%?)\s*,\s*([\d.]+%?)(?:\s*,\s*([\d.]+))?\s*\)$`)

	errEmpty = errors.New("empty input")
)

// ParseHex normalises a hex color to an uppercase "#XXX", "#XXXXXX" or
// "#XXXXXXXX" string. The leading '#' is optional on input.
func ParseHex(s string) (string, error) {
	hex := strings.ToUpper(strings.TrimSpace(s))
	if hex == "" {
		return "", hueyerrors.NewParseError(s, "hex color", errEmpty)
	}
	hex = strings.TrimPrefix(hex, "#")
	if !hexPattern.MatchString(hex) {
		return "", hueyerrors.NewParseError(s, "hex color", errors.New("expected 3, 6 or 8 hex digits"))
	}
	return "#" + hex, nil
}

// ParseRGB reads rgb(r, g, b) or rgba(r, g, b, a). Channels outside 0-255 or
// alpha outside 0-1 are rejected rather than clamped.
func ParseRGB(s string) (RGB, error) {
	match := rgbPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if match == nil {
		return RGB{}, hueyerrors.NewParseError(s, "rgb color", errors.New("expected rgb(r, g, b) or rgba(r, g, b, a)"))
	}

	values := make([]float64, 3)
	for i := range values {
		v, err := strconv.ParseFloat(match[i+2], 64)
		if err != nil {
			return RGB{}, hueyerrors.NewParseError(s, "rgb color", err)
		}
		if v < 0 || v > 255 {
			return RGB{}, hueyerrors.NewParseError(s, "rgb color", fmt.Errorf("channel %v out of range 0-255", v))
		}
		values[i] = v
	}

	alpha := 1.0
	if match[5] != "" {
		a, err := strconv.ParseFloat(match[5], 64)
		if err != nil {
			return RGB{}, hueyerrors.NewParseError(s, "rgb color", err)
		}
		if a < 0 || a > 1 {
			return RGB{}, hueyerrors.NewParseError(s, "rgb color", fmt.Errorf("alpha %v out of range 0-1", a))
		}
		alpha = a
	}

	return RGB{R: values[0], G: values[1], B: values[2], A: alpha}, nil
}

// ParseHSV reads hsv(h, s, v) or hsva(h, s, v, a). Percent signs are optional
// and out of range values are clamped. Alpha is only honoured for hsva.
func ParseHSV(s string) (HSV, error) {
	match := hsvPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if match == nil {
		return HSV{}, hueyerrors.NewParseError(s, "hsv color", errors.New("expected hsv(h, s, v) or hsva(h, s, v, a)"))
	}

	values := make([]float64, 3)
	for i := range values {
		v, err := strconv.ParseFloat(strings.TrimSuffix(match[i+2], "%"), 64)
		if err != nil {
			return HSV{}, hueyerrors.NewParseError(s, "hsv color", err)
		}
		values[i] = v
	}

	alpha := 1.0
	if match[1] == "hsva" && match[5] != "" {
		a, err := strconv.ParseFloat(match[5], 64)
		if err != nil {
			return HSV{}, hueyerrors.NewParseError(s, "hsv color", err)
		}
		alpha = a
	}

	return HSV{H: values[0], S: values[1], V: values[2], A: alpha}.clamped(), nil
}

// Parse accepts any supported notation: hex, rgb(a), hsv(a) or a CSS color
// name.
func Parse(s string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	switch {
	case trimmed == "":
		return Color{}, hueyerrors.NewParseError(s, "color", errEmpty)
	case strings.HasPrefix(trimmed, "rgb"):
		rgb, err := ParseRGB(trimmed)
		if err != nil {
			return Color{}, err
		}
		return FromRGB(rgb), nil
	case strings.HasPrefix(trimmed, "hsv"):
		hsv, err := ParseHSV(trimmed)
		if err != nil {
			return Color{}, err
		}
		return FromHSV(hsv), nil
	}

	if rgb, ok := Named(trimmed); ok {
		return FromRGB(rgb), nil
	}

	hex, err := ParseHex(trimmed)
	if err != nil {
		return Color{}, hueyerrors.NewParseError(s, "color", errors.New("expected hex, rgb(), hsv() or a CSS color name"))
	}
	return FromHex(hex)
}

// ParseRGBValue is a convenience wrapper returning only the channels.
func ParseRGBValue(s string) (RGB, error) {
	c, err := Parse(s)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB, nil
}

// FormatRGB renders rgb(r, g, b), or rgba(r, g, b, a) when alpha is not 1.
func FormatRGB(c RGB) string {
	if c.A != 1 {
		return "rgba(" + joinNumbers(c.R, c.G, c.B, c.A) + ")"
	}
	return "rgb(" + joinNumbers(c.R, c.G, c.B) + ")"
}

// FormatHSV renders hsv(h, s, v, a). Alpha is always included.
func FormatHSV(c HSV) string {
	return "hsv(" + joinNumbers(c.H, c.S, c.V, c.A) + ")"
}

// Format renders a color in the requested mode.
func Format(c Color, mode Mode) string {
	switch mode {
	case ModeRGB:
		return FormatRGB(c.RGB)
	case ModeHSV:
		return FormatHSV(c.HSV)
	default:
		return c.Hex
	}
}

func joinNumbers(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(round2(v), 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
