package gradient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

func offsets(v Value) []float64 {
	out := make([]float64, 0, len(v.Stops))
	for _, s := range v.Stops {
		out = append(out, s.Offset)
	}
	return out
}

func twoStop(t *testing.T) Value {
	t.Helper()
	v, err := New(TypeLinear, 90, NewStop("#000000", 100), NewStop("#ff0000", 0))
	require.NoError(t, err)
	return v
}

func TestNewSortsStops(t *testing.T) {
	t.Parallel()

	v := twoStop(t)
	require.Equal(t, []float64{0, 100}, offsets(v))
	require.Equal(t, "#ff0000", v.Stops[0].Color)
	require.NotEmpty(t, v.Stops[0].ID)
	require.NotEqual(t, v.Stops[0].ID, v.Stops[1].ID)
}

func TestNewRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   Type
		rot   float64
		stops []Stop
		field string
	}{
		{"no stops", TypeLinear, 0, nil, "colorStops"},
		{"bad color", TypeLinear, 0, []Stop{NewStop("red", 0)}, "colorStops[0].color"},
		{"offset too large", TypeLinear, 0, []Stop{NewStop("#fff", 120)}, "colorStops[0].offset"},
		{"rotation too large", TypeLinear, 400, []Stop{NewStop("#fff", 0)}, "rotation"},
		{"unknown type", Type("conic"), 0, []Stop{NewStop("#fff", 0)}, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.typ, tt.rot, tt.stops...)
			require.Error(t, err)

			var ve *hueyerrors.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestAddStopIsImmutable(t *testing.T) {
	t.Parallel()

	v := twoStop(t)
	next, stop := v.AddStop()

	require.Len(t, v.Stops, 2)
	require.Len(t, next.Stops, 3)
	require.Equal(t, NewStopColor, stop.Color)
	require.Equal(t, 50.0, stop.Offset)
	require.Equal(t, []float64{0, 50, 100}, offsets(next))
	require.Equal(t, stop.ID, next.Stops[1].ID)
}

func TestAddStopAtRoundsAndClamps(t *testing.T) {
	t.Parallel()

	v := twoStop(t)

	tests := []struct {
		in   float64
		want float64
	}{
		{33.6, 34},
		{33.4, 33},
		{-5, 0},
		{150, 100},
	}
	for _, tt := range tests {
		_, stop := v.AddStopAt(tt.in)
		require.Equal(t, tt.want, stop.Offset, "offset %v", tt.in)
	}
}

func TestUpdateColor(t *testing.T) {
	t.Parallel()

	v := twoStop(t)
	id := v.Stops[1].ID

	next, err := v.UpdateColor(id, "red")
	require.NoError(t, err)
	require.Equal(t, "#ff0000", next.Stops[1].Color)
	require.Equal(t, "#000000", v.Stops[1].Color)

	next, err = v.UpdateColor(id, "rgba(0, 0, 255, 0.5)")
	require.NoError(t, err)
	require.Equal(t, "#0000ff80", next.Stops[1].Color)
	require.NoError(t, next.Validate())

	_, err = v.UpdateColor("missing", "#fff")
	require.ErrorIs(t, err, ErrStopNotFound)

	_, err = v.UpdateColor(id, "not-a-color")
	var pe *hueyerrors.ParseError
	require.True(t, errors.As(err, &pe))
}

func TestUpdateOffsetResorts(t *testing.T) {
	t.Parallel()

	v := twoStop(t)
	first := v.Stops[0]

	next, err := v.UpdateOffset(first.ID, 250)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 100}, offsets(next))
	require.Equal(t, first.ID, next.Stops[0].ID, "ties keep their previous order")

	next, err = v.UpdateOffset(v.Stops[1].ID, -10)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, offsets(next))
}

func TestRemoveStop(t *testing.T) {
	t.Parallel()

	v := twoStop(t)

	next, err := v.RemoveStop(v.Stops[0].ID)
	require.NoError(t, err)
	require.Len(t, next.Stops, 1)

	_, err = next.RemoveStop(next.Stops[0].ID)
	require.ErrorIs(t, err, ErrLastStop)

	_, err = v.RemoveStop("missing")
	require.ErrorIs(t, err, ErrStopNotFound)
}

func TestSetTypeAndRotation(t *testing.T) {
	t.Parallel()

	v := twoStop(t)

	radial, err := v.SetType(TypeRadial)
	require.NoError(t, err)
	require.Equal(t, TypeRadial, radial.Type)
	require.Equal(t, TypeLinear, v.Type)

	_, err = v.SetType("conic")
	require.Error(t, err)

	require.Equal(t, 270.0, v.SetRotation(-90).Rotation)
	require.Equal(t, 90.0, v.SetRotation(450).Rotation)
	require.Equal(t, 360.0, v.SetRotation(360).Rotation)
	require.Equal(t, 0.0, NormalizeRotation(720))
}

func TestPresetsAreValid(t *testing.T) {
	t.Parallel()

	presets := Presets()
	require.Len(t, presets, 9)
	for i, p := range presets {
		require.NoError(t, p.Validate(), "preset %d", i)
	}

	again := Presets()
	require.NotEqual(t, presets[0].Stops[0].ID, again[0].Stops[0].ID)
	require.Equal(t, TypeRadial, presets[1].Type)
	require.Len(t, presets[8].Stops, 11)
}

func TestParseType(t *testing.T) {
	t.Parallel()

	typ, err := ParseType("radial")
	require.NoError(t, err)
	require.Equal(t, TypeRadial, typ)

	_, err = ParseType("diamond")
	require.Error(t, err)
}
