package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huey/internal/palette"
	"github.com/alexisbeaulieu97/huey/internal/store"
)

// Run shows the palette generator until the user quits and returns the final
// model.
func Run(ctx context.Context, pref *store.Preference[palette.Settings], opts Options, programOpts ...tea.ProgramOption) (Model, error) {
	m := NewModel(ctx, pref, opts)
	defer m.Close()

	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		return m, fmt.Errorf("palette screen: %w", err)
	}

	result, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("palette screen: unexpected model %T", final)
	}
	return result, nil
}
