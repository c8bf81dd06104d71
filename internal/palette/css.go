package palette

import (
	"fmt"
	"strings"
)

// ToCSS renders the palette as CSS custom properties scoped to the theme:
// background surfaces, --<name>-1..12 solid steps, --<name>-a1..a12 alpha
// steps and a few semantic aliases.
func ToCSS(name string, colors []string, bgColor string, theme Theme) (string, error) {
	scheme, err := BuildScheme(name, colors, bgColor, theme)
	if err != nil {
		return "", err
	}
	return scheme.CSS(), nil
}

// CSS renders a computed scheme as CSS custom properties.
func (s Scheme) CSS() string {
	selector := ":root, .light"
	if s.Theme == ThemeDark {
		selector = ".dark"
	}
	prefix := slug(s.Name)

	lines := make([]string, 0, 40)
	lines = append(lines, selector+" {")

	lines = append(lines,
		fmt.Sprintf("  --background: %s;", s.Background),
		fmt.Sprintf("  --background-card: %s;", s.Surfaces.Card),
		fmt.Sprintf("  --background-sidebar: %s;", s.Surfaces.Sidebar),
		fmt.Sprintf("  --background-muted: %s;", s.Surfaces.Muted),
		"",
	)

	for i, c := range s.Solid {
		lines = append(lines, fmt.Sprintf("  --%s-%d: %s;", prefix, i+1, c))
	}

	lines = append(lines, "")
	for i, c := range s.Alpha {
		lines = append(lines, fmt.Sprintf("  --%s-a%d: %s;", prefix, i+1, c))
	}

	lines = append(lines, "",
		fmt.Sprintf("  --%s-contrast: %s;", prefix, s.Contrast),
		fmt.Sprintf("  --%s-surface: %s;", prefix, s.Surface),
		fmt.Sprintf("  --%s-indicator: %s;", prefix, s.Indicator),
		fmt.Sprintf("  --%s-track: %s;", prefix, s.Track),
		"}",
	)

	return strings.Join(lines, "\n")
}

// ParseCSSSteps extracts the solid --<name>-N custom properties from CSS
// produced by ToCSS, in step order.
func ParseCSSSteps(css, name string) ([]string, error) {
	prefix := "--" + slug(name) + "-"
	found := make(map[int]string, Steps)

	for _, line := range strings.Split(css, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		prop, value, ok := strings.Cut(strings.TrimSuffix(line, ";"), ":")
		if !ok {
			continue
		}
		var step int
		if _, err := fmt.Sscanf(strings.TrimPrefix(prop, prefix), "%d", &step); err != nil {
			continue
		}
		if strings.TrimPrefix(prop, prefix) != fmt.Sprint(step) {
			continue
		}
		found[step] = strings.TrimSpace(value)
	}

	steps := make([]string, Steps)
	for i := range steps {
		v, ok := found[i+1]
		if !ok {
			return nil, fmt.Errorf("missing %s%d", prefix, i+1)
		}
		steps[i] = v
	}
	return steps, nil
}
