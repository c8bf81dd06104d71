package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huey/internal/tui/components"
)

var fieldLabels = [fieldCount]string{"Primary", "Background"}

const helpText = "tab switch field • ctrl+t theme • ctrl+f format • ctrl+r reset • esc quit"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Huey • %s", m.palette.Name)))

	sections = append(sections, sectionStyle.Render("Colors"), m.renderInputs())

	if m.output != "" {
		row := components.NewSwatchRow(m.palette.Slice())
		sections = append(sections, sectionStyle.Render("Palette"), row.View())
		sections = append(sections, sectionStyle.Render("Contrast"), components.NewContrastMeter().View(m.contrast))
		sections = append(sections, sectionStyle.Render(m.format.Label()), outputStyle.Render(strings.TrimRight(m.output, "\n")))
	}

	status := components.NewStatus(components.StatusData{
		Theme:   string(m.settings.Theme),
		Format:  m.format.Label(),
		Storage: string(m.pref.Kind(m.ctx)),
		Saved:   m.saved,
		Err:     m.err,
	}).View()
	if status != "" {
		sections = append(sections, sectionStyle.Render("Status"), status)
	}

	sections = append(sections, helpStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInputs() string {
	lines := make([]string, 0, fieldCount+1)
	for i := range m.inputs {
		label := fieldLabels[i]
		if field(i) == m.focus {
			label = focusedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		lines = append(lines, labelStyle.Render(label)+m.inputs[i].View())
	}
	if m.inputErr != nil {
		lines = append(lines, errorStyle.Render(m.inputErr.Error()))
	}
	return strings.Join(lines, "\n")
}
