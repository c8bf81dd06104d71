package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSwatchRow(t *testing.T) {
	t.Parallel()

	row := NewSwatchRow([]string{"#ffffff", "#808080", "#000000"})
	swatches := row.Swatches()
	require.Len(t, swatches, 3)
	require.Equal(t, Swatch{Step: 1, Hex: "#ffffff"}, swatches[0])
	require.Equal(t, Swatch{Step: 3, Hex: "#000000"}, swatches[2])

	swatches[0].Hex = "#123456"
	require.Equal(t, "#ffffff", row.Swatches()[0].Hex)
}

func TestSwatchRowView(t *testing.T) {
	t.Parallel()

	t.Run("empty row renders nothing", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", NewSwatchRow(nil).View())
	})

	t.Run("renders cells and step numbers", func(t *testing.T) {
		t.Parallel()
		view := NewSwatchRow([]string{"#ffffff", "#000000"}).View()
		lines := strings.Split(view, "\n")
		require.Len(t, lines, 2)
		require.Contains(t, lines[1], "1")
		require.Contains(t, lines[1], "2")
	})
}

func TestSwatchRowLegend(t *testing.T) {
	t.Parallel()

	legend := NewSwatchRow([]string{"#ffffff", "#000000"}).Legend()
	require.Equal(t, " 1  #ffffff\n 2  #000000", legend)
}
