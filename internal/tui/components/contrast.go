package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huey/internal/color"
)

// maxContrast is the WCAG ratio between black and white.
const maxContrast = 21.0

// ContrastMeter renders a contrast ratio as a bar plus its readability rating.
type ContrastMeter struct {
	bar progress.Model
}

// NewContrastMeter creates a meter with a fixed width bar.
func NewContrastMeter() ContrastMeter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return ContrastMeter{bar: bar}
}

// Fill maps a ratio in [1, 21] onto [0, 1].
func Fill(ratio float64) float64 {
	if math.IsNaN(ratio) || ratio <= 1 {
		return 0
	}
	return math.Min(1, (ratio-1)/(maxContrast-1))
}

// View renders the meter for the provided ratio.
func (c ContrastMeter) View(ratio float64) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%.2f:1", ratio))
	rating := color.Rate(ratio)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", c.bar.ViewAs(Fill(ratio)), " ", rating.Label)
}
