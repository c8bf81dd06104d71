package gradient

import "fmt"

// Editor holds a gradient being edited together with the selected stop.
// It is not safe for concurrent use.
type Editor struct {
	value   Value
	current string
}

// NewEditor starts editing v with its first stop selected.
func NewEditor(v Value) *Editor {
	e := &Editor{value: v}
	if first, ok := v.First(); ok {
		e.current = first.ID
	}
	return e
}

// Value returns the gradient as currently edited.
func (e *Editor) Value() Value { return e.value }

// SetValue replaces the gradient and keeps the selection. If the selected
// stop is not part of v, the first stop acts as the selection.
func (e *Editor) SetValue(v Value) { e.value = v }

// Current returns the selected stop, or the first stop when the selection no
// longer exists. ok is false only for a gradient without stops.
func (e *Editor) Current() (Stop, bool) { return e.value.Stop(e.currentID()) }

func (e *Editor) currentID() string {
	if _, ok := e.value.Stop(e.current); ok {
		return e.current
	}
	if first, ok := e.value.First(); ok {
		return first.ID
	}
	return e.current
}

// Select changes the selected stop.
func (e *Editor) Select(id string) error {
	if _, ok := e.value.Stop(id); !ok {
		return fmt.Errorf("%w: %s", ErrStopNotFound, id)
	}
	e.current = id
	return nil
}

// AddStop adds a white stop at 50% and selects it.
func (e *Editor) AddStop() Stop {
	v, stop := e.value.AddStop()
	e.value, e.current = v, stop.ID
	return stop
}

// AddStopAt adds a white stop at offset and selects it.
func (e *Editor) AddStopAt(offset float64) Stop {
	v, stop := e.value.AddStopAt(offset)
	e.value, e.current = v, stop.ID
	return stop
}

// SetColor recolors the selected stop.
func (e *Editor) SetColor(c string) error {
	v, err := e.value.UpdateColor(e.currentID(), c)
	if err != nil {
		return err
	}
	e.value = v
	return nil
}

// SetOffset moves the selected stop.
func (e *Editor) SetOffset(offset float64) error {
	v, err := e.value.UpdateOffset(e.currentID(), offset)
	if err != nil {
		return err
	}
	e.value = v
	return nil
}

// Remove deletes a stop. When the selected stop is removed the selection
// moves to the stop before it, or to the one after it when it was first.
func (e *Editor) Remove(id string) error {
	idx := e.value.indexOf(id)
	v, err := e.value.RemoveStop(id)
	if err != nil {
		return err
	}

	if id == e.currentID() {
		switch {
		case idx > 0:
			e.current = e.value.Stops[idx-1].ID
		case idx+1 < len(e.value.Stops):
			e.current = e.value.Stops[idx+1].ID
		}
	}
	e.value = v
	return nil
}

// SetType switches the gradient geometry.
func (e *Editor) SetType(t Type) error {
	v, err := e.value.SetType(t)
	if err != nil {
		return err
	}
	e.value = v
	return nil
}

// SetRotation sets the linear angle.
func (e *Editor) SetRotation(deg float64) {
	e.value = e.value.SetRotation(deg)
}

// ApplyPreset replaces the gradient with preset i and selects its first stop.
func (e *Editor) ApplyPreset(i int) error {
	presets := Presets()
	if i < 0 || i >= len(presets) {
		return fmt.Errorf("preset %d out of range (0-%d)", i, len(presets)-1)
	}
	e.value = presets[i]
	e.current = presets[i].Stops[0].ID
	return nil
}
