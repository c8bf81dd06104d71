package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Mix blends a toward b by amount percent (0-100). Both inputs are rounded to
// 8-bit channels first and the result keeps fractional channels; rounding
// happens when the result is rendered.
func Mix(a, b RGB, amount float64) RGB {
	p := amount / 100
	ra, rb := a.Rounded(), b.Rounded()
	return RGB{
		R: (rb.R-ra.R)*p + ra.R,
		G: (rb.G-ra.G)*p + ra.G,
		B: (rb.B-ra.B)*p + ra.B,
		A: (rb.A-ra.A)*p + ra.A,
	}
}

// Brightness is the perceived brightness (0-255) from the W3C accessibility
// guidelines.
func (c RGB) Brightness() float64 {
	r := c.Rounded()
	return (r.R*299 + r.G*587 + r.B*114) / 1000
}

// IsDark reports whether the perceived brightness is below 128.
func (c RGB) IsDark() bool {
	return c.Brightness() < 128
}

// IsLight is the complement of IsDark.
func (c RGB) IsLight() bool {
	return !c.IsDark()
}

// Luminance is the WCAG relative luminance in [0, 1].
func (c RGB) Luminance() float64 {
	r := c.Rounded()
	return 0.2126*linearChannel(r.R) + 0.7152*linearChannel(r.G) + 0.0722*linearChannel(r.B)
}

func linearChannel(v float64) float64 {
	s := v / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Lighten raises HSL lightness by amount percentage points.
func (c RGB) Lighten(amount float64) RGB {
	return c.shiftLightness(amount / 100)
}

// Darken lowers HSL lightness by amount percentage points.
func (c RGB) Darken(amount float64) RGB {
	return c.shiftLightness(-amount / 100)
}

func (c RGB) shiftLightness(delta float64) RGB {
	h, s, l := c.HSL()
	l = clamp(l+delta, 0, 1)
	return fromColorful(colorful.Hsl(h, s, l), c.A)
}

// Space selects the color space used when blending two colors.
type Space string

const (
	SpaceRGB       Space = "rgb"
	SpaceLinearRGB Space = "linear-rgb"
	SpaceLab       Space = "lab"
	SpaceLuv       Space = "luv"
	SpaceHCL       Space = "hcl"
)

// Spaces lists the supported blend spaces in display order.
func Spaces() []Space {
	return []Space{SpaceRGB, SpaceLinearRGB, SpaceLab, SpaceLuv, SpaceHCL}
}

// ParseSpace validates a blend space name. The empty string selects rgb.
func ParseSpace(s string) (Space, error) {
	if s == "" {
		return SpaceRGB, nil
	}
	for _, sp := range Spaces() {
		if string(sp) == s {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown color space %q", s)
}

// Blend interpolates from a to b at t in [0, 1] inside the given space.
// SpaceRGB is exactly Mix(a, b, t*100).
func Blend(a, b RGB, t float64, space Space) RGB {
	if space == SpaceRGB || space == "" {
		return Mix(a, b, t*100)
	}

	ca, cb := a.Rounded().colorful(), b.Rounded().colorful()
	alpha := a.A + (b.A-a.A)*t

	var out colorful.Color
	switch space {
	case SpaceLinearRGB:
		out = ca.BlendLinearRgb(cb, t)
	case SpaceLab:
		out = ca.BlendLab(cb, t)
	case SpaceLuv:
		out = ca.BlendLuv(cb, t)
	case SpaceHCL:
		out = ca.BlendHcl(cb, t)
	default:
		return Mix(a, b, t*100)
	}
	return fromColorful(out, alpha)
}

// Contrast returns the WCAG contrast ratio between two colors (1 to 21).
func Contrast(a, b RGB) float64 {
	la, lb := a.Luminance(), b.Luminance()
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// Rating classifies a contrast ratio.
type Rating struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Rate buckets a contrast ratio into a five step readability scale.
func Rate(ratio float64) Rating {
	switch {
	case ratio >= 10:
		return Rating{Label: "Excellent", Score: 5}
	case ratio >= 7:
		return Rating{Label: "Very Good", Score: 4}
	case ratio >= 4.5:
		return Rating{Label: "Good", Score: 3}
	case ratio >= 3:
		return Rating{Label: "Poor", Score: 2}
	default:
		return Rating{Label: "Very Poor", Score: 1}
	}
}
