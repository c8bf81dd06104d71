package gradient

import (
	"fmt"
	"strconv"
	"strings"
)

// CSSColor returns the CSS image for v. A single stop degrades to a flat
// color.
func CSSColor(v Value) string {
	switch len(v.Stops) {
	case 0:
		return ""
	case 1:
		return v.Stops[0].Color
	}

	parts := make([]string, 0, len(v.Stops))
	for _, s := range v.Stops {
		parts = append(parts, fmt.Sprintf("%s %s%%", s.Color, formatNumber(s.Offset)))
	}
	stops := strings.Join(parts, ", ")

	if v.Type == TypeRadial {
		return fmt.Sprintf("radial-gradient(circle, %s)", stops)
	}
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", formatNumber(v.Rotation), stops)
}

// CSS returns a two-line declaration block with a flat fallback color.
func CSS(v Value) string {
	first, _ := v.First()
	return fmt.Sprintf("background: %s;\nbackground-image: %s", first.Color, CSSColor(v))
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
