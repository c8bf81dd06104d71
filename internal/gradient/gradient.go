// Package gradient models CSS gradients as an ordered list of color stops and
// renders them to CSS strings or raster images.
//
// A Value is never modified in place. Every mutation returns a new Value whose
// stops are sorted by offset, so a Value handed to a renderer or persisted to
// a store can be shared freely.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/huey/internal/color"
	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

// Type is the gradient geometry.
type Type string

const (
	TypeLinear Type = "linear"
	TypeRadial Type = "radial"
)

// StoreKey is the preference key the edited gradient is stored under.
const StoreKey = "gradient-editor"

// NewStopColor is the color of a stop created by AddStop.
const NewStopColor = "#ffffff"

var (
	// ErrLastStop is returned when removing a stop would leave a gradient empty.
	ErrLastStop = errors.New("gradient must keep at least one color stop")
	// ErrStopNotFound is returned when no stop carries the requested id.
	ErrStopNotFound = errors.New("color stop not found")
)

// ParseType validates a gradient type name.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeLinear, TypeRadial:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown gradient type %q (want linear or radial)", s)
}

// Stop is a single color stop. Offset is a percentage in [0, 100].
type Stop struct {
	ID     string  `json:"id" yaml:"id" validate:"required"`
	Color  string  `json:"color" yaml:"color" validate:"required,stop_color"`
	Offset float64 `json:"offset" yaml:"offset" validate:"gte=0,lte=100"`
}

// Value is a complete gradient. Rotation is in degrees and only applies to
// linear gradients.
type Value struct {
	Type     Type    `json:"type" yaml:"type" validate:"required,oneof=linear radial"`
	Rotation float64 `json:"rotation" yaml:"rotation" validate:"gte=0,lte=360"`
	Stops    []Stop  `json:"colorStops" yaml:"colorStops" validate:"required,min=1,dive"`
}

// NewStop creates a stop with a fresh id.
func NewStop(c string, offset float64) Stop {
	return Stop{ID: uuid.NewString(), Color: c, Offset: offset}
}

// New builds a validated Value from the given stops.
func New(t Type, rotation float64, stops ...Stop) (Value, error) {
	v := Value{Type: t, Rotation: rotation, Stops: sortStops(stops)}
	if err := v.Validate(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Validate checks the value against its struct tags.
func (v Value) Validate() error {
	if err := validatorInstance().Struct(v); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Stop returns the stop with the given id.
func (v Value) Stop(id string) (Stop, bool) {
	i := v.indexOf(id)
	if i < 0 {
		return Stop{}, false
	}
	return v.Stops[i], true
}

// First returns the lowest-offset stop.
func (v Value) First() (Stop, bool) {
	if len(v.Stops) == 0 {
		return Stop{}, false
	}
	return v.Stops[0], true
}

// AddStop appends a white stop in the middle of the track.
func (v Value) AddStop() (Value, Stop) {
	stop := NewStop(NewStopColor, 50)
	return v.withStops(append(slices.Clone(v.Stops), stop)), stop
}

// AddStopAt inserts a white stop at the given offset, rounded to a whole
// percentage and clamped to the track.
func (v Value) AddStopAt(offset float64) (Value, Stop) {
	stop := NewStop(NewStopColor, clampOffset(math.Round(offset)))
	return v.withStops(append(slices.Clone(v.Stops), stop)), stop
}

// UpdateColor sets the color of one stop. Any parseable color is accepted and
// stored as lowercase hex.
func (v Value) UpdateColor(id, c string) (Value, error) {
	i := v.indexOf(id)
	if i < 0 {
		return v, ErrStopNotFound
	}
	parsed, err := color.Parse(c)
	if err != nil {
		return v, err
	}

	stops := slices.Clone(v.Stops)
	stops[i].Color = parsed.RGB.String()
	return v.withStops(stops), nil
}

// UpdateOffset moves one stop, clamping the offset to [0, 100].
func (v Value) UpdateOffset(id string, offset float64) (Value, error) {
	i := v.indexOf(id)
	if i < 0 {
		return v, ErrStopNotFound
	}
	stops := slices.Clone(v.Stops)
	stops[i].Offset = clampOffset(offset)
	return v.withStops(stops), nil
}

// RemoveStop deletes one stop. The last stop cannot be removed.
func (v Value) RemoveStop(id string) (Value, error) {
	i := v.indexOf(id)
	if i < 0 {
		return v, ErrStopNotFound
	}
	if len(v.Stops) <= 1 {
		return v, ErrLastStop
	}
	return v.withStops(slices.Delete(slices.Clone(v.Stops), i, i+1)), nil
}

// SetType switches between linear and radial.
func (v Value) SetType(t Type) (Value, error) {
	if _, err := ParseType(string(t)); err != nil {
		return v, hueyerrors.NewValidationError("type", err.Error(), err)
	}
	v.Stops = slices.Clone(v.Stops)
	v.Type = t
	return v, nil
}

// SetRotation sets the linear angle, wrapping it into [0, 360].
func (v Value) SetRotation(deg float64) Value {
	v.Stops = slices.Clone(v.Stops)
	v.Rotation = NormalizeRotation(deg)
	return v
}

// NormalizeRotation wraps an angle into [0, 360]. 360 itself is kept so a
// full turn stays distinguishable from zero.
func NormalizeRotation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	if deg >= 0 && deg <= 360 {
		return deg
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (v Value) withStops(stops []Stop) Value {
	v.Stops = sortStops(stops)
	return v
}

func (v Value) indexOf(id string) int {
	return slices.IndexFunc(v.Stops, func(s Stop) bool { return s.ID == id })
}

func sortStops(stops []Stop) []Stop {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	return sorted
}

func clampOffset(offset float64) float64 {
	return math.Min(100, math.Max(0, offset))
}
