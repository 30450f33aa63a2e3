package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/colorchooser"
)

// Update handles Bubble Tea messages and routes them into registry calls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.term.Resize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.entryActive {
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.reg.Cancel()
		m.quitting = true
		return m, tea.Quit
	}

	inst := m.openInstance()
	if inst == nil {
		return m.handleNavKey(msg)
	}
	if m.entryActive {
		return m.handleEntryKey(msg, inst)
	}

	switch inst.Type {
	case "list":
		return m.handleListKey(msg, inst)
	case "colorchooser":
		return m.handleChooserKey(msg, inst)
	case "borderside":
		return m.handleBorderKey(msg, inst)
	}
	return m, nil
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.focus > 0 {
			m.focus--
		}
	case "down", "j":
		if m.focus < len(m.ids)-1 {
			m.focus++
		}
	case "enter", " ":
		if id := m.FocusedID(); id != "" {
			_ = m.reg.Click(id)
			m.optionCursor = 0
			m.gridRow, m.gridCol = 0, colorchooser.ColPresets
			m.syncEntry()
		}
	}
	return m, nil
}

func (m Model) handleEntryKey(msg tea.KeyMsg, inst *control.Instance) (tea.Model, tea.Cmd) {
	ctx := m.reg.Context()

	switch msg.Type {
	case tea.KeyEnter:
		if inst.Type == "list" {
			_ = m.bh.List.CustomOK(ctx, inst)
		} else {
			m.bh.Chooser.CustomOK(ctx, inst)
		}
		m.syncEntry()
		return m, nil
	case tea.KeyEsc:
		if inst.Type == "list" {
			m.bh.List.CustomCancel(ctx, inst)
		} else {
			m.bh.Chooser.CancelAction(ctx, inst)
		}
		m.syncEntry()
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	if inst.Type == "list" {
		m.bh.List.SetEntryText(ctx, inst, m.entry.Value())
	} else {
		m.bh.Chooser.SetHexText(ctx, inst, m.entry.Value())
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg, inst *control.Instance) (tea.Model, tea.Cmd) {
	ctx := m.reg.Context()
	count := m.bh.List.OptionCount(inst)

	switch msg.String() {
	case "up", "k":
		if m.optionCursor > 0 {
			m.optionCursor--
			m.bh.List.Hover(ctx, inst, m.optionCursor)
		}
	case "down", "j":
		if m.optionCursor < count-1 {
			m.optionCursor++
			m.bh.List.Hover(ctx, inst, m.optionCursor)
		}
	case "enter", " ":
		_ = m.bh.List.Select(ctx, inst, m.optionCursor)
		m.syncEntry()
	case "esc":
		m.reg.Cancel()
	}
	return m, nil
}

func (m Model) handleChooserKey(msg tea.KeyMsg, inst *control.Instance) (tea.Model, tea.Cmd) {
	ctx := m.reg.Context()

	switch msg.String() {
	case "up", "k", "down", "j", "left", "h", "right", "l":
		m.moveGridCursor(msg.String())
	case " ":
		m.bh.Chooser.Press(ctx, inst, m.gridRow, m.gridCol)
		m.bh.Chooser.Release(ctx, inst)
	case "enter":
		_ = m.bh.Chooser.OK(ctx, inst)
	case "d":
		_ = m.bh.Chooser.UseDefault(ctx, inst)
	case "c":
		m.bh.Chooser.EnterCustom(ctx, inst)
		m.syncEntry()
	case "esc":
		m.bh.Chooser.CancelAction(ctx, inst)
	}
	return m, nil
}

func (m Model) handleBorderKey(msg tea.KeyMsg, inst *control.Instance) (tea.Model, tea.Cmd) {
	ctx := m.reg.Context()

	switch msg.String() {
	case "t":
		m.bh.Border.Toggle(ctx, inst)
	case "up", "k", "down", "j", "left", "h", "right", "l":
		m.moveGridCursor(msg.String())
	case " ":
		m.bh.Border.Press(ctx, inst, m.gridRow, m.gridCol)
		m.bh.Border.Release(ctx, inst)
	case "enter":
		_ = m.bh.Border.OK(ctx, inst)
	case "esc":
		m.bh.Border.CancelAction(ctx, inst)
	}
	return m, nil
}

func (m *Model) moveGridCursor(key string) {
	switch key {
	case "up", "k":
		if m.gridRow > 0 {
			m.gridRow--
		}
	case "down", "j":
		if m.gridRow < colorchooser.GridRows-1 {
			m.gridRow++
		}
	case "left", "h":
		if m.gridCol > 0 {
			m.gridCol--
		}
	case "right", "l":
		if m.gridCol < colorchooser.GridCols-1 {
			m.gridCol++
		}
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	inst := m.openInstance()
	if inst == nil {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.clickTriggerAt(msg.X, msg.Y)
		}
		return m, nil
	}

	// Press, drag and release over the open color grid.
	if inst.Type != "colorchooser" && inst.Type != "borderside" {
		return m, nil
	}

	ctx := m.reg.Context()
	if msg.Action == tea.MouseActionRelease {
		if inst.Type == "colorchooser" {
			m.bh.Chooser.Release(ctx, inst)
		} else {
			m.bh.Border.Release(ctx, inst)
		}
		return m, nil
	}

	row, col, ok := m.gridCellAt(inst, msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if inst.Type == "colorchooser" {
			m.bh.Chooser.Press(ctx, inst, row, col)
		} else {
			m.bh.Border.Press(ctx, inst, row, col)
		}
	case tea.MouseActionMotion:
		if inst.Type == "colorchooser" {
			m.bh.Chooser.Move(ctx, inst, row, col)
		} else {
			m.bh.Border.Move(ctx, inst, row, col)
		}
	}
	return m, nil
}

func (m Model) clickTriggerAt(x, y int) (tea.Model, tea.Cmd) {
	for i, id := range m.ids {
		inst, err := m.reg.Lookup(id)
		if err != nil {
			continue
		}
		b := m.term.TriggerBounds(inst.Trigger)
		if y == b.Top && x >= b.Left && x < b.Right() {
			m.focus = i
			_ = m.reg.Click(id)
			m.optionCursor = 0
			m.gridRow, m.gridCol = 0, colorchooser.ColPresets
			m.syncEntry()
			break
		}
	}
	return m, nil
}

// gridCellAt maps screen coordinates inside the open overlay to a grid cell.
// The grid body sits below the panel border and optional title row; border
// editors add their toggle row above the grid.
func (m Model) gridCellAt(inst *control.Instance, x, y int) (row, col int, ok bool) {
	box := inst.OverlayBox

	rowOff := 1
	if inst.Attribs.Title != "" {
		rowOff++
	}
	if inst.Type == "borderside" {
		rowOff++
	}

	row = y - box.Top - rowOff
	col = (x - box.Left - 1) / 2
	if row < 0 || row >= colorchooser.GridRows || col < 0 || col >= colorchooser.GridCols {
		return 0, 0, false
	}
	return row, col, true
}
