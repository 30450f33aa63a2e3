// Package colorchooser implements the color grid control: a 16x5 swatch
// grid with preset, grayscale and per-channel ramp columns, plus a hex
// custom-entry view.
package colorchooser

import (
	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/hexcolor"
	"github.com/gridwell/overlaykit/internal/render"
)

// DragState is the explicit press/move/release machine that replaces an
// ambient "mouse is down" flag: movement only paints while Dragging.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

// State is the chooser's private instance state. Pending is the color being
// edited in the open overlay; it becomes the control value only on OK.
type State struct {
	Pending     string
	Cells       [GridRows][GridCols]string
	SelectedRow [GridCols]int
	Drag        DragState
	CustomMode  bool
	HexEntry    string
}

// Behavior implements control.Behavior for color chooser controls.
type Behavior struct{}

// New creates the color chooser behavior.
func New() *Behavior {
	return &Behavior{}
}

// Type implements control.Behavior.
func (b *Behavior) Type() string {
	return "colorchooser"
}

// Create implements control.Behavior.
func (b *Behavior) Create(_ *control.Context, inst *control.Instance) error {
	state := &State{}
	state.Cells, state.SelectedRow = DetermineColors("")
	inst.Data = state
	return nil
}

// Initialize implements control.Behavior. The chooser needs no external
// data; an optional string seeds the value without firing the callback.
func (b *Behavior) Initialize(_ *control.Context, inst *control.Instance, data any) error {
	if seed, ok := data.(string); ok {
		inst.Value = seed
		inst.Display = seed
	}
	return nil
}

// Show implements control.Behavior.
func (b *Behavior) Show(ctx *control.Context, inst *control.Instance) error {
	state := stateOf(inst)
	state.Pending = inst.Value
	state.Drag = Idle
	state.CustomMode = false
	state.Cells, state.SelectedRow = DetermineColors(state.Pending)

	ctx.ShowOverlay(inst, b.view(ctx, inst))
	return nil
}

// Hide implements control.Behavior.
func (b *Behavior) Hide(_ *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	state.Drag = Idle
	state.CustomMode = false
}

// Cancel implements control.Behavior.
func (b *Behavior) Cancel(_ *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	state.Drag = Idle
	state.CustomMode = false
	inst.Value = inst.ValueBeforeEdit
	inst.Display = inst.Value
	state.Pending = inst.Value
	state.Cells, state.SelectedRow = DetermineColors(state.Pending)
}

// GetValue implements control.Behavior. An empty value means "inherit
// default", distinct from any explicit color including white.
func (b *Behavior) GetValue(_ *control.Context, inst *control.Instance) control.AttributeValue {
	if inst.Value == "" {
		return control.Default()
	}
	return control.Explicit(inst.Value)
}

// SetValue implements control.Behavior.
func (b *Behavior) SetValue(_ *control.Context, inst *control.Instance, value control.AttributeValue) error {
	v := value.Value
	if value.IsDefault {
		v = ""
	}
	inst.Value = v
	inst.Display = v

	state := stateOf(inst)
	state.Pending = v
	state.Cells, state.SelectedRow = DetermineColors(v)
	return nil
}

// SetDisabled implements control.Behavior.
func (b *Behavior) SetDisabled(*control.Context, *control.Instance, bool) {}

// Reset implements control.Behavior. Chooser state is all per-instance.
func (b *Behavior) Reset(*control.Context) {}

// Press starts a drag on the grid and paints the pressed cell.
func (b *Behavior) Press(ctx *control.Context, inst *control.Instance, row, col int) {
	state := stateOf(inst)
	if state.CustomMode {
		return
	}
	state.Drag = Dragging
	b.paintCell(ctx, inst, row, col)
}

// Move paints the cell under the pointer, but only while a press is active;
// movement after release is ignored.
func (b *Behavior) Move(ctx *control.Context, inst *control.Instance, row, col int) {
	state := stateOf(inst)
	if state.Drag != Dragging {
		return
	}
	b.paintCell(ctx, inst, row, col)
}

// Release ends the drag.
func (b *Behavior) Release(_ *control.Context, inst *control.Instance) {
	stateOf(inst).Drag = Idle
}

// OK commits the pending color and closes the overlay.
func (b *Behavior) OK(ctx *control.Context, inst *control.Instance) error {
	state := stateOf(inst)
	if err := ctx.Registry.SetValue(inst.ID, control.Explicit(state.Pending)); err != nil {
		return err
	}
	ctx.Registry.Close()
	return nil
}

// UseDefault commits the empty "inherit" value, distinct from every explicit
// color, and closes the overlay.
func (b *Behavior) UseDefault(ctx *control.Context, inst *control.Instance) error {
	if err := ctx.Registry.SetValue(inst.ID, control.Default()); err != nil {
		return err
	}
	ctx.Registry.Close()
	return nil
}

// CancelAction abandons pending edits and closes the overlay.
func (b *Behavior) CancelAction(ctx *control.Context, inst *control.Instance) {
	ctx.Registry.Cancel()
}

// EnterCustom swaps the grid for the hex entry view, pre-filled with the hex
// encoding of the pending color.
func (b *Behavior) EnterCustom(ctx *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	state.CustomMode = true
	state.HexEntry = hexcolor.RGBToHex(state.Pending)
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

// SetHexText updates the hex entry buffer.
func (b *Behavior) SetHexText(ctx *control.Context, inst *control.Instance, text string) {
	state := stateOf(inst)
	if !state.CustomMode {
		return
	}
	state.HexEntry = text
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

// CustomOK re-derives the pending RGB color from the typed hex string and
// returns to the grid view.
func (b *Behavior) CustomOK(ctx *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	if !state.CustomMode {
		return
	}
	state.Pending = hexcolor.HexToRGB(state.HexEntry)
	state.CustomMode = false
	state.Cells, state.SelectedRow = DetermineColors(state.Pending)
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

// Pending reports the color currently being edited in the overlay.
func (b *Behavior) Pending(inst *control.Instance) string {
	return stateOf(inst).Pending
}

// InCustomMode reports whether the open overlay shows the hex entry form.
func (b *Behavior) InCustomMode(inst *control.Instance) bool {
	return stateOf(inst).CustomMode
}

// DragStateOf reports the chooser's press/drag machine state.
func (b *Behavior) DragStateOf(inst *control.Instance) DragState {
	return stateOf(inst).Drag
}

func (b *Behavior) paintCell(ctx *control.Context, inst *control.Instance, row, col int) {
	state := stateOf(inst)
	state.Pending = ApplyCell(state.Pending, row, col)
	state.Cells, state.SelectedRow = DetermineColors(state.Pending)
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

func (b *Behavior) view(ctx *control.Context, inst *control.Instance) render.View {
	state := stateOf(inst)

	if state.CustomMode {
		return render.TextEntryView{
			Title:       ctx.Localize(inst.Attribs.Title),
			Moveable:    inst.Attribs.Moveable,
			Prompt:      ctx.Localize("Custom"),
			Text:        state.HexEntry,
			OKLabel:     ctx.Localize("OK"),
			CancelLabel: ctx.Localize("Cancel"),
			Width:       inst.Attribs.InputWidth,
		}
	}

	return render.ColorGridView{
		Title:        ctx.Localize(inst.Attribs.Title),
		Moveable:     inst.Attribs.Moveable,
		Cells:        state.Cells,
		SelectedRow:  state.SelectedRow,
		Sample:       state.Pending,
		SampleWidth:  inst.Attribs.SampleWidth,
		SampleHeight: inst.Attribs.SampleHeight,
		OKLabel:      ctx.Localize("OK"),
		CancelLabel:  ctx.Localize("Cancel"),
		CustomLabel:  ctx.Localize("Custom"),
		DefaultLabel: ctx.Localize("Default"),
	}
}

// GridViewFor builds a grid view for a nested chooser embedded in another
// control's overlay, e.g. a border editor.
func GridViewFor(localize func(string) string, pending string) render.ColorGridView {
	cells, selected := DetermineColors(pending)
	return render.ColorGridView{
		Cells:        cells,
		SelectedRow:  selected,
		Sample:       pending,
		OKLabel:      localize("OK"),
		CancelLabel:  localize("Cancel"),
		CustomLabel:  localize("Custom"),
		DefaultLabel: localize("Default"),
	}
}

func stateOf(inst *control.Instance) *State {
	state, ok := inst.Data.(*State)
	if !ok {
		state = &State{}
		state.Cells, state.SelectedRow = DetermineColors("")
		inst.Data = state
	}
	return state
}

var _ control.Behavior = (*Behavior)(nil)
