// Package borderside implements the border editor control: an on/off toggle
// composed with a nested color chooser for the border color.
package borderside

import (
	"regexp"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/colorchooser"
	"github.com/gridwell/overlaykit/internal/render"
)

// DefaultColor is used when the border is on but no color was picked.
const DefaultColor = "rgb(0,0,0)"

// borderSpec splits "1px solid rgb(r,g,b)" into thickness, style and
// remainder-as-color.
var borderSpec = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(.+)$`)

// State is the border editor's private instance state. On and Color mirror
// the committed value while closed and carry pending edits while the overlay
// is open.
type State struct {
	On    bool
	Color string
	Drag  colorchooser.DragState
}

// Behavior implements control.Behavior for border side controls.
type Behavior struct{}

// New creates the border side behavior.
func New() *Behavior {
	return &Behavior{}
}

// Type implements control.Behavior.
func (b *Behavior) Type() string {
	return "borderside"
}

// Create implements control.Behavior.
func (b *Behavior) Create(_ *control.Context, inst *control.Instance) error {
	inst.Data = &State{}
	return nil
}

// Initialize implements control.Behavior. The nested chooser needs no
// external data.
func (b *Behavior) Initialize(*control.Context, *control.Instance, any) error {
	return nil
}

// Show implements control.Behavior.
func (b *Behavior) Show(ctx *control.Context, inst *control.Instance) error {
	state := stateOf(inst)
	state.Drag = colorchooser.Idle
	ctx.ShowOverlay(inst, b.view(ctx, inst))
	return nil
}

// Hide implements control.Behavior.
func (b *Behavior) Hide(_ *control.Context, inst *control.Instance) {
	stateOf(inst).Drag = colorchooser.Idle
}

// Cancel implements control.Behavior.
func (b *Behavior) Cancel(_ *control.Context, inst *control.Instance) {
	inst.Value = inst.ValueBeforeEdit
	inst.Display = inst.Value
	applySpec(stateOf(inst), inst.Value)
}

// GetValue implements control.Behavior. Off is the explicit "no border"
// value, distinct from "inherit default"; on yields a full border spec with
// black standing in for a missing color.
func (b *Behavior) GetValue(_ *control.Context, inst *control.Instance) control.AttributeValue {
	state := stateOf(inst)
	if !state.On {
		return control.AttributeValue{IsDefault: false, Value: ""}
	}
	color := state.Color
	if color == "" {
		color = DefaultColor
	}
	return control.Explicit("1px solid " + color)
}

// SetValue implements control.Behavior. A non-empty border spec is parsed
// into thickness/style/color and the color fed to the nested chooser; an
// empty spec unchecks the toggle and disables the chooser.
func (b *Behavior) SetValue(_ *control.Context, inst *control.Instance, value control.AttributeValue) error {
	v := value.Value
	if value.IsDefault {
		v = ""
	}
	inst.Value = v
	inst.Display = v
	applySpec(stateOf(inst), v)
	return nil
}

// SetDisabled implements control.Behavior.
func (b *Behavior) SetDisabled(*control.Context, *control.Instance, bool) {}

// Reset implements control.Behavior.
func (b *Behavior) Reset(*control.Context) {}

// Toggle flips the on/off checkbox, enabling or disabling the nested
// chooser.
func (b *Behavior) Toggle(ctx *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	state.On = !state.On
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

// IsOn reports the toggle state.
func (b *Behavior) IsOn(inst *control.Instance) bool {
	return stateOf(inst).On
}

// Color reports the nested chooser's current color.
func (b *Behavior) Color(inst *control.Instance) string {
	return stateOf(inst).Color
}

// Press starts a drag on the nested grid. Ignored while the border is off.
func (b *Behavior) Press(ctx *control.Context, inst *control.Instance, row, col int) {
	state := stateOf(inst)
	if !state.On {
		return
	}
	state.Drag = colorchooser.Dragging
	b.paintCell(ctx, inst, row, col)
}

// Move paints the nested grid cell while dragging.
func (b *Behavior) Move(ctx *control.Context, inst *control.Instance, row, col int) {
	state := stateOf(inst)
	if state.Drag != colorchooser.Dragging {
		return
	}
	b.paintCell(ctx, inst, row, col)
}

// Release ends the drag.
func (b *Behavior) Release(_ *control.Context, inst *control.Instance) {
	stateOf(inst).Drag = colorchooser.Idle
}

// OK commits the edited border and closes the overlay.
func (b *Behavior) OK(ctx *control.Context, inst *control.Instance) error {
	value := b.GetValue(ctx, inst)
	if err := ctx.Registry.SetValue(inst.ID, value); err != nil {
		return err
	}
	ctx.Registry.Close()
	return nil
}

// CancelAction abandons pending edits and closes the overlay.
func (b *Behavior) CancelAction(ctx *control.Context, inst *control.Instance) {
	ctx.Registry.Cancel()
}

func (b *Behavior) paintCell(ctx *control.Context, inst *control.Instance, row, col int) {
	state := stateOf(inst)
	state.Color = colorchooser.ApplyCell(state.Color, row, col)
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

func (b *Behavior) view(ctx *control.Context, inst *control.Instance) render.View {
	state := stateOf(inst)

	var grid *render.ColorGridView
	if state.On {
		g := colorchooser.GridViewFor(ctx.Localize, state.Color)
		grid = &g
	}

	return render.BorderSideView{
		Title:          ctx.Localize(inst.Attribs.Title),
		Moveable:       inst.Attribs.Moveable,
		Checked:        state.On,
		ToggleLabel:    ctx.Localize("Border"),
		ChooserEnabled: state.On,
		Chooser:        grid,
		OKLabel:        ctx.Localize("OK"),
		CancelLabel:    ctx.Localize("Cancel"),
	}
}

// applySpec derives toggle and chooser state from a border spec string.
// A spec that does not split into three parts turns the border on with no
// picked color.
func applySpec(state *State, spec string) {
	if spec == "" {
		state.On = false
		state.Color = ""
		return
	}

	state.On = true
	if m := borderSpec.FindStringSubmatch(spec); m != nil {
		state.Color = m[3]
	} else {
		state.Color = ""
	}
}

func stateOf(inst *control.Instance) *State {
	state, ok := inst.Data.(*State)
	if !ok {
		state = &State{}
		inst.Data = state
	}
	return state
}

var _ control.Behavior = (*Behavior)(nil)
