package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridwell/overlaykit/internal/geometry"
)

// Terminal renders triggers and overlays as a composed text frame suitable
// for a Bubble Tea view. Triggers stack vertically in attach order; the
// active overlay is spliced over the frame at its placed box.
type Terminal struct {
	theme    Theme
	viewport geometry.Rect

	order    []Handle
	triggers map[Handle]*terminalTrigger
	overlay  *terminalOverlay
}

type terminalTrigger struct {
	controlID string
	label     string
	width     int
	disabled  bool
	bounds    geometry.Rect
}

type terminalOverlay struct {
	handle Handle
	view   View
	at     geometry.Rect
}

// NewTerminal creates a terminal renderer for the given viewport size.
func NewTerminal(theme Theme, width, height int) *Terminal {
	return &Terminal{
		theme:    theme,
		viewport: geometry.Rect{Width: width, Height: height},
		triggers: make(map[Handle]*terminalTrigger),
	}
}

// Resize updates the viewport, e.g. on tea.WindowSizeMsg.
func (t *Terminal) Resize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = height
}

// AttachTrigger implements Renderer. Triggers are laid out one per row; a
// trigger that would land outside the viewport has no valid anchor.
func (t *Terminal) AttachTrigger(controlID, label string, width int) (Handle, bool) {
	row := len(t.order)
	if row >= t.viewport.Height {
		return "", false
	}
	if width <= 0 {
		width = len(label) + 4
	}

	h := NewHandle()
	t.triggers[h] = &terminalTrigger{
		controlID: controlID,
		label:     label,
		width:     width,
		bounds:    geometry.Rect{Top: row, Left: 0, Width: width, Height: 1},
	}
	t.order = append(t.order, h)
	return h, true
}

// SetTrigger implements Renderer.
func (t *Terminal) SetTrigger(h Handle, label string, disabled bool) {
	if tr, ok := t.triggers[h]; ok {
		tr.label = label
		tr.disabled = disabled
	}
}

// TriggerBounds implements Renderer.
func (t *Terminal) TriggerBounds(h Handle) geometry.Rect {
	if tr, ok := t.triggers[h]; ok {
		return tr.bounds
	}
	return geometry.Rect{}
}

// Viewport implements Renderer.
func (t *Terminal) Viewport() geometry.Rect {
	return t.viewport
}

// ShowOverlay implements Renderer.
func (t *Terminal) ShowOverlay(h Handle, v View, at geometry.Rect) {
	t.overlay = &terminalOverlay{handle: h, view: v, at: at}
}

// UpdateOverlay implements Renderer.
func (t *Terminal) UpdateOverlay(h Handle, v View) {
	if t.overlay != nil && t.overlay.handle == h {
		t.overlay.view = v
	}
}

// MoveOverlay implements Renderer.
func (t *Terminal) MoveOverlay(h Handle, to geometry.Rect) {
	if t.overlay != nil && t.overlay.handle == h {
		t.overlay.at = to
	}
}

// HideOverlay implements Renderer.
func (t *Terminal) HideOverlay(h Handle) {
	if t.overlay != nil && t.overlay.handle == h {
		t.overlay = nil
	}
}

// OverlayShown reports whether an overlay is currently composed.
func (t *Terminal) OverlayShown() bool {
	return t.overlay != nil
}

// Frame composes the current screen contents.
func (t *Terminal) Frame() string {
	lines := make([]string, t.viewport.Height)
	for _, h := range t.order {
		tr := t.triggers[h]
		if tr.bounds.Top >= len(lines) {
			continue
		}
		style := t.theme.Trigger
		if tr.disabled {
			style = t.theme.TriggerOff
		}
		lines[tr.bounds.Top] = style.Width(tr.width).Render(tr.label)
	}

	if t.overlay != nil {
		panel := t.renderView(t.overlay.view)
		lines = splice(lines, panel, t.overlay.at.Top, t.overlay.at.Left)
	}

	return strings.Join(lines, "\n")
}

func (t *Terminal) renderView(v View) string {
	var body string
	switch view := v.(type) {
	case OptionListView:
		body = t.renderOptionList(view)
	case TextEntryView:
		body = t.renderTextEntry(view)
	case ColorGridView:
		body = t.renderColorGrid(view)
	case BorderSideView:
		body = t.renderBorderSide(view)
	default:
		body = ""
	}
	return t.theme.Panel.Render(body)
}

func (t *Terminal) renderOptionList(v OptionListView) string {
	cols := make([]string, 0, len(v.Columns))
	for _, col := range v.Columns {
		rows := make([]string, 0, len(col))
		for _, item := range col {
			style := t.theme.Option
			switch {
			case item.Skip:
				style = t.theme.OptionSkip
			case item.Highlighted:
				style = t.theme.OptionHot
			}
			rows = append(rows, style.Render(item.Label))
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if v.Title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, t.theme.Title.Render(v.Title), body)
	}
	return body
}

func (t *Terminal) renderTextEntry(v TextEntryView) string {
	rows := []string{
		v.Prompt,
		t.theme.Input.Render(v.Text + "_"),
	}
	if v.Suggestion != "" {
		rows = append(rows, t.theme.Suggestion.Render(v.Suggestion))
	}
	rows = append(rows, t.theme.Button.Render(v.OKLabel)+" "+t.theme.Button.Render(v.CancelLabel))
	if v.Title != "" {
		rows = append([]string{t.theme.Title.Render(v.Title)}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (t *Terminal) renderColorGrid(v ColorGridView) string {
	rows := make([]string, 0, 18)
	for row := 0; row < 16; row++ {
		var sb strings.Builder
		for col := 0; col < 5; col++ {
			cell := "  "
			if v.SelectedRow[col] == row {
				cell = t.theme.SelectedRow.Render("<>")
			}
			sb.WriteString(SwatchStyle(v.Cells[row][col]).Render(cell))
		}
		if row == 0 {
			sample := v.Sample
			if sample == "" {
				sample = v.DefaultLabel
			}
			sb.WriteString(" " + sample)
		}
		rows = append(rows, sb.String())
	}

	buttons := []string{v.OKLabel, v.CancelLabel, v.CustomLabel, v.DefaultLabel}
	styled := make([]string, 0, len(buttons))
	for _, b := range buttons {
		styled = append(styled, t.theme.Button.Render(b))
	}
	rows = append(rows, strings.Join(styled, " "))

	if v.Title != "" {
		rows = append([]string{t.theme.Title.Render(v.Title)}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (t *Terminal) renderBorderSide(v BorderSideView) string {
	mark := "[ ]"
	if v.Checked {
		mark = "[x]"
	}
	rows := []string{mark + " " + v.ToggleLabel}

	if v.ChooserEnabled && v.Chooser != nil {
		rows = append(rows, t.renderColorGrid(*v.Chooser))
	}
	rows = append(rows, t.theme.Button.Render(v.OKLabel)+" "+t.theme.Button.Render(v.CancelLabel))

	if v.Title != "" {
		rows = append([]string{t.theme.Title.Render(v.Title)}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// splice lays panel over base starting at (top, left). Styled content is
// spliced per line; base content to the left of the panel is preserved,
// content underneath is covered to the end of the line.
func splice(base []string, panel string, top, left int) []string {
	overlayLines := strings.Split(panel, "\n")
	pad := strings.Repeat(" ", maxInt(0, left))
	for i, line := range overlayLines {
		row := top + i
		if row < 0 || row >= len(base) {
			continue
		}
		prefix := pad
		if w := lipgloss.Width(base[row]); w > left {
			prefix = truncateToWidth(base[row], left)
		} else if base[row] != "" {
			prefix = base[row] + strings.Repeat(" ", maxInt(0, left-w))
		}
		base[row] = prefix + line
	}
	return base
}

// truncateToWidth cuts a styled line to the given display width. Splitting
// inside an escape sequence is avoided by re-rendering through lipgloss.
func truncateToWidth(line string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var _ Renderer = (*Terminal)(nil)
