// Package color holds huey's color model and the small set of color
// operations the palette and gradient engines are built on.
//
// A Color carries three representations of the same value (hex, RGB, HSV).
// Channel math works on 8-bit RGB values and rounds half up whenever a hex
// string is produced, so results match the browser tooling the palettes are
// pasted into.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with 0-255 channels and an alpha in [0, 1].
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// HSV is a color with hue in [0, 360], saturation and value in [0, 100] and an
// alpha in [0, 1].
type HSV struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
	A float64 `json:"a" yaml:"a"`
}

// Color bundles every representation of one color value.
type Color struct {
	Hex string `json:"hex" yaml:"hex"`
	RGB RGB    `json:"rgb" yaml:"rgb"`
	HSV HSV    `json:"hsv" yaml:"hsv"`
}

var (
	Black = RGB{A: 1}
	White = RGB{R: 255, G: 255, B: 255, A: 1}
)

// FromHex builds a Color from a 3, 4, 6 or 8 digit hex string.
func FromHex(hex string) (Color, error) {
	rgb, err := parseHexChannels(hex)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb), nil
}

// FromRGB builds a Color from RGB channels.
func FromRGB(rgb RGB) Color {
	rgb = rgb.clamped()
	return Color{Hex: rgb.hexOrHex8(), RGB: rgb, HSV: rgb.HSV()}
}

// FromHSV builds a Color from HSV values.
func FromHSV(hsv HSV) Color {
	hsv = hsv.clamped()
	c := colorful.Hsv(hsv.H, hsv.S/100, hsv.V/100)
	rgb := RGB{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: hsv.A}
	return Color{Hex: rgb.hexOrHex8(), RGB: rgb, HSV: hsv}
}

// MustHex is like FromHex but panics on malformed input. It is meant for
// constants.
func MustHex(hex string) RGB {
	rgb, err := parseHexChannels(hex)
	if err != nil {
		panic(err)
	}
	return rgb
}

// HSV converts the RGB channels to HSV.
func (c RGB) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h, S: s * 100, V: v * 100, A: c.A}
}

// HSL returns hue in degrees and saturation/lightness in [0, 1].
func (c RGB) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Rounded rounds every channel to an integer.
func (c RGB) Rounded() RGB {
	return RGB{R: roundHalfUp(c.R), G: roundHalfUp(c.G), B: roundHalfUp(c.B), A: c.A}
}

// Hex renders the color as lowercase #rrggbb, ignoring alpha.
func (c RGB) Hex() string {
	r := c.Rounded()
	return "#" + pad2(r.R) + pad2(r.G) + pad2(r.B)
}

// Hex8 renders the color as lowercase #rrggbbaa.
func (c RGB) Hex8() string {
	return c.Hex() + pad2(roundHalfUp(clamp(c.A, 0, 1)*255))
}

// WithAlpha returns a copy with the alpha replaced. Out of range values reset
// alpha to 1.
func (c RGB) WithAlpha(a float64) RGB {
	if math.IsNaN(a) || a < 0 || a > 1 {
		a = 1
	}
	c.A = a
	return c
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	if c.A < 1 {
		return c.Hex8()
	}
	return c.Hex()
}

func (c RGB) hexOrHex8() string {
	if c.A < 1 {
		return c.Hex8()
	}
	return c.Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

func fromColorful(c colorful.Color, alpha float64) RGB {
	c = c.Clamped()
	return RGB{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: alpha}
}

func (c RGB) clamped() RGB {
	return RGB{
		R: clamp(c.R, 0, 255),
		G: clamp(c.G, 0, 255),
		B: clamp(c.B, 0, 255),
		A: clamp(c.A, 0, 1),
	}
}

func (h HSV) clamped() HSV {
	return HSV{
		H: clamp(h.H, 0, 360),
		S: clamp(h.S, 0, 100),
		V: clamp(h.V, 0, 100),
		A: clamp(h.A, 0, 1),
	}
}

func parseHexChannels(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var digits [4]string
	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			digits[i] = strings.Repeat(s[i:i+1], 2)
		}
		if len(s) == 3 {
			digits[3] = "ff"
		}
	case 6, 8:
		for i := 0; i < len(s)/2; i++ {
			digits[i] = s[i*2 : i*2+2]
		}
		if len(s) == 6 {
			digits[3] = "ff"
		}
	default:
		return RGB{}, fmt.Errorf("expected 3, 4, 6 or 8 hex digits, got %d", len(s))
	}

	var values [4]float64
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex digits %q", d)
		}
		values[i] = float64(v)
	}

	return RGB{R: values[0], G: values[1], B: values[2], A: values[3] / 255}, nil
}

// roundHalfUp matches the rounding used by CSS color tooling (half toward
// positive infinity).
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func pad2(v float64) string {
	s := strconv.FormatInt(int64(clamp(v, 0, 255)), 16)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
