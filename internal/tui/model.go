// Package tui drives a control registry interactively: it adapts Bubble Tea
// key and mouse events into registry and behavior calls and composes the
// terminal renderer's frame.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/borderside"
	"github.com/gridwell/overlaykit/internal/controls/colorchooser"
	"github.com/gridwell/overlaykit/internal/controls/list"
	"github.com/gridwell/overlaykit/internal/render"
)

// Behaviors bundles the typed behavior implementations the driver dispatches
// interaction methods on. They must be the same instances registered with
// the registry.
type Behaviors struct {
	List    *list.Behavior
	Chooser *colorchooser.Behavior
	Border  *borderside.Behavior
}

// Model contains the Bubble Tea state for the overlay driver.
type Model struct {
	reg  *control.Registry
	term *render.Terminal
	bh   Behaviors

	ids   []string
	focus int

	optionCursor int
	gridRow      int
	gridCol      int

	entry       textinput.Model
	entryActive bool

	quitting bool
}

// NewModel constructs the driver over an already-populated registry.
func NewModel(reg *control.Registry, term *render.Terminal, bh Behaviors) Model {
	entry := textinput.New()
	entry.Prompt = "> "
	entry.CharLimit = 64

	return Model{
		reg:   reg,
		term:  term,
		bh:    bh,
		ids:   reg.IDs(),
		entry: entry,
	}
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// FocusedID reports the control the trigger cursor rests on.
func (m Model) FocusedID() string {
	if len(m.ids) == 0 {
		return ""
	}
	return m.ids[m.focus]
}

// Quitting reports whether the driver has been told to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) openInstance() *control.Instance {
	id := m.reg.OpenID()
	if id == "" {
		return nil
	}
	inst, err := m.reg.Lookup(id)
	if err != nil {
		return nil
	}
	return inst
}

// syncEntry focuses the text field and seeds it when an overlay switched
// into an entry mode; it blurs the field otherwise.
func (m *Model) syncEntry() {
	inst := m.openInstance()
	if inst == nil {
		m.entryActive = false
		m.entry.Blur()
		return
	}

	active := false
	seed := ""
	switch inst.Type {
	case "list":
		if m.bh.List.InEntryMode(inst) {
			active = true
			seed = inst.Value
		}
	case "colorchooser":
		active = m.bh.Chooser.InCustomMode(inst)
	}

	if active && !m.entryActive {
		m.entry.SetValue(seed)
		m.entry.CursorEnd()
		m.entry.Focus()
	}
	if !active {
		m.entry.Blur()
	}
	m.entryActive = active
}
