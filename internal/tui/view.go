package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var helpStyle = lipgloss.NewStyle().Faint(true)

// View composes the renderer frame with a one-line help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.term.Frame() + "\n" + helpStyle.Render(m.helpLine())
}

func (m Model) helpLine() string {
	inst := m.openInstance()
	if inst == nil {
		return "↑/↓ select · enter open · q quit · " + m.FocusedID()
	}
	if m.entryActive {
		return m.entry.View() + "  enter ok · esc cancel"
	}

	switch inst.Type {
	case "list":
		return "↑/↓ move · enter pick · esc cancel"
	case "colorchooser":
		return "arrows move · space pick · enter ok · d default · c custom · esc cancel"
	case "borderside":
		return "t toggle · arrows move · space pick · enter ok · esc cancel"
	}
	return ""
}
