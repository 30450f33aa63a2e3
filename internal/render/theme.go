package render

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gridwell/overlaykit/internal/hexcolor"
)

// Theme holds the styles the terminal renderer paints with.
type Theme struct {
	Name string

	Panel       lipgloss.Style
	Title       lipgloss.Style
	Trigger     lipgloss.Style
	TriggerOff  lipgloss.Style
	Option      lipgloss.Style
	OptionHot   lipgloss.Style
	OptionSkip  lipgloss.Style
	Button      lipgloss.Style
	Input       lipgloss.Style
	Suggestion  lipgloss.Style
	SelectedRow lipgloss.Style
}

// DefaultTheme returns the standard panel styling.
func DefaultTheme() Theme {
	border := lipgloss.RoundedBorder()
	return Theme{
		Name:        "default",
		Panel:       lipgloss.NewStyle().Border(border).Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true),
		Trigger:     lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		TriggerOff:  lipgloss.NewStyle().Padding(0, 1).Faint(true),
		Option:      lipgloss.NewStyle(),
		OptionHot:   lipgloss.NewStyle().Reverse(true),
		OptionSkip:  lipgloss.NewStyle().Faint(true).Italic(true),
		Button:      lipgloss.NewStyle().Padding(0, 1).Bold(true),
		Input:       lipgloss.NewStyle().Underline(true),
		Suggestion:  lipgloss.NewStyle().Faint(true),
		SelectedRow: lipgloss.NewStyle().Bold(true),
	}
}

// HighContrastTheme returns a theme without faint styling for low-color
// terminals.
func HighContrastTheme() Theme {
	t := DefaultTheme()
	t.Name = "high-contrast"
	t.TriggerOff = lipgloss.NewStyle().Padding(0, 1).Strikethrough(true)
	t.OptionSkip = lipgloss.NewStyle().Italic(true)
	t.Suggestion = lipgloss.NewStyle().Italic(true)
	return t
}

// ThemeByName resolves a configured theme name, falling back to the default.
func ThemeByName(name string) Theme {
	if name == "high-contrast" {
		return HighContrastTheme()
	}
	return DefaultTheme()
}

// SwatchStyle builds a style that paints a color cell. The foreground is
// chosen by luminance so the selection marker stays readable on any ramp
// value.
func SwatchStyle(rgb string) lipgloss.Style {
	hex := "#" + hexcolor.RGBToHex(rgb)
	bg := lipgloss.Color(hex)

	fg := lipgloss.Color("#000000")
	if c, err := colorful.Hex(hex); err == nil {
		if _, _, l := c.Hcl(); l < 0.5 {
			fg = lipgloss.Color("#ffffff")
		}
	}

	return lipgloss.NewStyle().Background(bg).Foreground(fg)
}
