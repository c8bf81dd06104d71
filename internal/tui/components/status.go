package components

import (
	"fmt"
	"strings"
)

// StatusData describes the generator state shown under the palette.
type StatusData struct {
	Theme   string
	Format  string
	Storage string
	Saved   bool
	Err     error
}

// Status renders a short status block.
type Status struct {
	data StatusData
}

// NewStatus creates a new Status component.
func NewStatus(data StatusData) Status {
	return Status{data: data}
}

// View renders the status.
func (s Status) View() string {
	var parts []string
	if s.data.Theme != "" {
		parts = append(parts, "Theme: "+s.data.Theme)
	}
	if s.data.Format != "" {
		parts = append(parts, "Format: "+s.data.Format)
	}
	if s.data.Storage != "" {
		parts = append(parts, "Storage: "+s.data.Storage)
	}

	var lines []string
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, " · "))
	}

	switch {
	case s.data.Err != nil:
		lines = append(lines, fmt.Sprintf("✗ %v", s.data.Err))
	case s.data.Saved:
		lines = append(lines, "✓ saved")
	}

	return strings.Join(lines, "\n")
}
