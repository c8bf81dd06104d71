package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const swatchWidth = 5

// Swatch is one step of a palette ramp.
type Swatch struct {
	Step int
	Hex  string
}

// SwatchRow renders a palette as a strip of colored cells with step numbers
// underneath.
type SwatchRow struct {
	swatches []Swatch
}

// NewSwatchRow builds a row from colors in step order. Steps are numbered
// from 1.
func NewSwatchRow(colors []string) SwatchRow {
	swatches := make([]Swatch, 0, len(colors))
	for i, hex := range colors {
		swatches = append(swatches, Swatch{Step: i + 1, Hex: hex})
	}
	return SwatchRow{swatches: swatches}
}

// Swatches returns a copy of the row's entries.
func (r SwatchRow) Swatches() []Swatch {
	clone := make([]Swatch, len(r.swatches))
	copy(clone, r.swatches)
	return clone
}

// View renders the row. An empty row renders as the empty string.
func (r SwatchRow) View() string {
	if len(r.swatches) == 0 {
		return ""
	}

	cells := make([]string, 0, len(r.swatches))
	labels := make([]string, 0, len(r.swatches))
	for _, s := range r.swatches {
		cell := lipgloss.NewStyle().
			Width(swatchWidth).
			Background(lipgloss.Color(s.Hex)).
			Render("")
		cells = append(cells, cell)
		labels = append(labels, lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center).Render(fmt.Sprint(s.Step)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
	)
}

// Legend lists the hex value of every step, one per line.
func (r SwatchRow) Legend() string {
	lines := make([]string, 0, len(r.swatches))
	for _, s := range r.swatches {
		lines = append(lines, fmt.Sprintf("%2d  %s", s.Step, s.Hex))
	}
	return strings.Join(lines, "\n")
}
