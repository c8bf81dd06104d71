package color

import (
	"testing"

	"github.com/stretchr/testify/require"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

func TestFromHexRepresentationsAgree(t *testing.T) {
	t.Parallel()

	c, err := FromHex("#3b82f6")
	require.NoError(t, err)

	require.Equal(t, "#3b82f6", c.Hex)
	require.Equal(t, RGB{R: 59, G: 130, B: 246, A: 1}, c.RGB)
	require.InDelta(t, 217.22, c.HSV.H, 0.01)
	require.InDelta(t, 76.02, c.HSV.S, 0.01)
	require.InDelta(t, 96.47, c.HSV.V, 0.01)

	back := FromHSV(c.HSV)
	require.Equal(t, c.Hex, back.Hex)
	require.InDelta(t, c.RGB.R, back.RGB.R, 0.01)
	require.InDelta(t, c.RGB.G, back.RGB.G, 0.01)
	require.InDelta(t, c.RGB.B, back.RGB.B, 0.01)
}

func TestFromHexShortAndAlphaForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  RGB
		hex   string
	}{
		{"#fff", RGB{R: 255, G: 255, B: 255, A: 1}, "#ffffff"},
		{"0f08", RGB{R: 0, G: 255, B: 0, A: 136.0 / 255}, "#00ff0088"},
		{"#00000080", RGB{A: 128.0 / 255}, "#00000080"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			c, err := FromHex(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, c.RGB)
			require.Equal(t, tc.hex, c.Hex)
		})
	}
}

func TestFromHexRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12", "#12345", "#gggggg"} {
		_, err := FromHex(input)
		require.Error(t, err, input)
	}
}

func TestHexRoundsHalfUp(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#808080", RGB{R: 127.5, G: 127.5, B: 127.5, A: 1}.Hex())
	require.Equal(t, "#7f7f7f", RGB{R: 127.49, G: 127.49, B: 127.49, A: 1}.Hex())
}

func TestHex8EncodesAlphaByte(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ffffff80", White.WithAlpha(128.0/255).Hex8())
	require.Equal(t, "#00000000", Black.WithAlpha(0).Hex8())
	require.Equal(t, "#000000ff", Black.WithAlpha(7).Hex8(), "out of range alpha resets to opaque")
}

func TestMixMatchesLinearChannelBlend(t *testing.T) {
	t.Parallel()

	bg := MustHex("#f2f2f2")
	base := MustHex("#3b82f6")

	require.Equal(t, "#e5eaf2", Mix(bg, base, 7).Hex())
	require.Equal(t, "#808080", Mix(Black, White, 50).Hex())
	require.Equal(t, base.Hex(), Mix(bg, base, 100).Hex())
	require.Equal(t, bg.Hex(), Mix(bg, base, 0).Hex())
}

func TestBrightnessAndDarkness(t *testing.T) {
	t.Parallel()

	require.True(t, MustHex("#000000").IsDark())
	require.True(t, MustHex("#f2f2f2").IsLight())
	require.False(t, MustHex("#808080").IsDark(), "brightness 128 is light")
	require.True(t, MustHex("#7f7f7f").IsDark())
}

func TestLuminanceAndContrast(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0, Black.Luminance(), 1e-9)
	require.InDelta(t, 1, White.Luminance(), 1e-9)
	require.InDelta(t, 21, Contrast(Black, White), 1e-9)
	require.InDelta(t, 21, Contrast(White, Black), 1e-9)
	require.InDelta(t, 1, Contrast(White, White), 1e-9)
}

func TestRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		label string
	}{
		{21, "Excellent"},
		{10, "Excellent"},
		{7, "Very Good"},
		{4.5, "Good"},
		{3, "Poor"},
		{2.99, "Very Poor"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.label, Rate(tc.ratio).Label, tc.ratio)
	}
}

func TestLightenDarken(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#0d0d0d", Black.Lighten(5).Hex())
	require.Equal(t, "#ffffff", White.Lighten(5).Hex())
	require.Equal(t, "#e5e5e5", MustHex("#f2f2f2").Darken(5).Hex())
	require.Equal(t, "#000000", Black.Darken(10).Hex())
}

func TestBlendSpaces(t *testing.T) {
	t.Parallel()

	a := MustHex("#3b82f6")
	b := MustHex("#f2f2f2")

	for _, space := range Spaces() {
		require.Equal(t, a.Hex(), Blend(a, b, 0, space).Hex(), space)
		require.Equal(t, b.Hex(), Blend(a, b, 1, space).Hex(), space)
	}

	require.Equal(t, Mix(a, b, 30).Hex(), Blend(a, b, 0.3, SpaceRGB).Hex())
	require.Equal(t, "#808080", Blend(Black, White, 0.5, SpaceRGB).Hex())
	require.NotEqual(t, "#808080", Blend(Black, White, 0.5, SpaceLab).Hex())
}

func TestParseSpace(t *testing.T) {
	t.Parallel()

	sp, err := ParseSpace("")
	require.NoError(t, err)
	require.Equal(t, SpaceRGB, sp)

	sp, err = ParseSpace("hcl")
	require.NoError(t, err)
	require.Equal(t, SpaceHCL, sp)

	_, err = ParseSpace("cmyk")
	require.Error(t, err)
}

func TestNameExactMatchesOnly(t *testing.T) {
	t.Parallel()

	name, ok := Name(MustHex("#4169e1"))
	require.True(t, ok)
	require.Equal(t, "royalblue", name)

	name, ok = Name(MustHex("#00ffff"))
	require.True(t, ok)
	require.Equal(t, "cyan", name)

	name, ok = Name(MustHex("#808080"))
	require.True(t, ok)
	require.Equal(t, "grey", name)

	_, ok = Name(MustHex("#3b82f6"))
	require.False(t, ok)

	_, ok = Name(MustHex("#4169e1").WithAlpha(0.5))
	require.False(t, ok)

	name, ok = Name(RGB{})
	require.True(t, ok)
	require.Equal(t, "transparent", name)
}

func TestParseErrorsAreTyped(t *testing.T) {
	t.Parallel()

	_, err := Parse("definitely-not-a-color")

	var parseErr *hueyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "color", parseErr.Format)
}
