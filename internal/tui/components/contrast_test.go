package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"identical colors are empty", 1, 0},
		{"below one is empty", 0.5, 0},
		{"nan is empty", math.NaN(), 0},
		{"black on white is full", 21, 1},
		{"beyond the maximum is capped", 30, 1},
		{"midpoint", 11, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tt.want, Fill(tt.ratio), 1e-9)
		})
	}
}

func TestContrastMeterView(t *testing.T) {
	t.Parallel()

	m := NewContrastMeter()
	require.Equal(t, 30, m.bar.Width)

	t.Run("shows the ratio and rating", func(t *testing.T) {
		t.Parallel()
		view := m.View(21)
		require.Contains(t, view, "21.00:1")
		require.Contains(t, view, "Excellent")
	})

	t.Run("low ratios are rated poorly", func(t *testing.T) {
		t.Parallel()
		view := m.View(1.5)
		require.Contains(t, view, "1.50:1")
		require.Contains(t, view, "Very Poor")
	})

	t.Run("bar takes up space", func(t *testing.T) {
		t.Parallel()
		view := m.View(4.5)
		require.Greater(t, len(view), len("4.50:1 Good"))
	})
}
