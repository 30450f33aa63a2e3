// Package list implements the enumerated-choice control: an ordered option
// list with a custom-value escape hatch rendered in the same overlay.
package list

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/render"
)

// Option is one entry of a list control. Skip options are non-selectable
// captions, Custom marks the "enter your own value" escape option, Cancel
// aborts without changing value, and NewCol is a rendering-only column break
// with no value semantics.
type Option struct {
	Label  string
	Value  string
	Skip   bool
	Custom bool
	Cancel bool
	NewCol bool
}

// selectable reports whether the option can match or commit a value.
func (o Option) selectable() bool {
	return !o.Skip && !o.Custom && !o.Cancel && !o.NewCol
}

// suggestionDistance is the maximum edit distance at which a typed custom
// value surfaces an existing option as a suggestion.
const suggestionDistance = 2

// State is the list control's private instance state.
type State struct {
	Options    []Option
	IsCustom   bool
	CustomMode bool
	Entry      string
	Suggestion string
	Highlight  int
}

// Behavior implements control.Behavior for list controls.
type Behavior struct{}

// New creates the list behavior.
func New() *Behavior {
	return &Behavior{}
}

// Type implements control.Behavior.
func (b *Behavior) Type() string {
	return "list"
}

// Create implements control.Behavior.
func (b *Behavior) Create(ctx *control.Context, inst *control.Instance) error {
	inst.Data = &State{Highlight: -1}
	b.applyValue(ctx, inst, inst.Value)
	return nil
}

// Initialize implements control.Behavior. data must be a []Option holding
// the enumerated choices.
func (b *Behavior) Initialize(ctx *control.Context, inst *control.Instance, data any) error {
	options, ok := data.([]Option)
	if !ok {
		return fmt.Errorf("list %s: initialize expects []Option, got %T", inst.ID, data)
	}

	state := stateOf(inst)
	state.Options = options
	b.applyValue(ctx, inst, inst.Value)
	return nil
}

// Show implements control.Behavior. A value that matches no selectable
// option opens directly in custom-entry mode.
func (b *Behavior) Show(ctx *control.Context, inst *control.Instance) error {
	state := stateOf(inst)
	state.Entry = inst.Value
	state.Suggestion = ""

	if idx := b.matchIndex(state, inst.Value); idx >= 0 {
		state.CustomMode = false
		state.Highlight = idx
	} else {
		state.CustomMode = true
		state.Highlight = -1
	}

	ctx.ShowOverlay(inst, b.view(ctx, inst))
	return nil
}

// Hide implements control.Behavior.
func (b *Behavior) Hide(_ *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	state.CustomMode = false
	state.Highlight = -1
}

// Cancel implements control.Behavior.
func (b *Behavior) Cancel(ctx *control.Context, inst *control.Instance) {
	state := stateOf(inst)
	state.CustomMode = false
	state.Highlight = -1
	b.applyValue(ctx, inst, inst.ValueBeforeEdit)
}

// GetValue implements control.Behavior. An empty value means "inherit".
func (b *Behavior) GetValue(_ *control.Context, inst *control.Instance) control.AttributeValue {
	if inst.Value == "" {
		return control.Default()
	}
	return control.Explicit(inst.Value)
}

// SetValue implements control.Behavior.
func (b *Behavior) SetValue(ctx *control.Context, inst *control.Instance, value control.AttributeValue) error {
	v := value.Value
	if value.IsDefault {
		v = ""
	}
	b.applyValue(ctx, inst, v)
	return nil
}

// SetDisabled implements control.Behavior.
func (b *Behavior) SetDisabled(*control.Context, *control.Instance, bool) {}

// Reset implements control.Behavior. List state is all per-instance.
func (b *Behavior) Reset(*control.Context) {}

// IsCustom reports whether the control currently displays the localized
// custom label because its value matches no selectable option.
func (b *Behavior) IsCustom(inst *control.Instance) bool {
	return stateOf(inst).IsCustom
}

// InEntryMode reports whether the open overlay shows the custom text form.
func (b *Behavior) InEntryMode(inst *control.Instance) bool {
	return stateOf(inst).CustomMode
}

// OptionCount reports the number of options, including captions and column
// breaks.
func (b *Behavior) OptionCount(inst *control.Instance) int {
	return len(stateOf(inst).Options)
}

// Hover highlights exactly one option; any previous highlight is cleared
// first. Skip captions and column breaks are not hover targets.
func (b *Behavior) Hover(ctx *control.Context, inst *control.Instance, index int) {
	state := stateOf(inst)
	if state.CustomMode || index < 0 || index >= len(state.Options) {
		return
	}
	opt := state.Options[index]
	if opt.Skip || opt.NewCol {
		return
	}

	state.Highlight = index
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

// Select activates the option at index. Selectable options commit their
// value and close the overlay; a custom option switches the same overlay
// into text-entry mode; a cancel option closes without changing the value.
func (b *Behavior) Select(ctx *control.Context, inst *control.Instance, index int) error {
	state := stateOf(inst)
	if state.CustomMode || index < 0 || index >= len(state.Options) {
		return nil
	}

	opt := state.Options[index]
	switch {
	case opt.Skip || opt.NewCol:
		return nil
	case opt.Cancel:
		ctx.Registry.Close()
		return nil
	case opt.Custom:
		state.CustomMode = true
		state.Entry = inst.Value
		state.Suggestion = ""
		ctx.UpdateOverlay(inst, b.view(ctx, inst))
		return nil
	default:
		if err := ctx.Registry.SetValue(inst.ID, control.Explicit(opt.Value)); err != nil {
			return err
		}
		ctx.Registry.Close()
		return nil
	}
}

// SetEntryText updates the custom-entry buffer and its near-match
// suggestion.
func (b *Behavior) SetEntryText(ctx *control.Context, inst *control.Instance, text string) {
	state := stateOf(inst)
	if !state.CustomMode {
		return
	}
	state.Entry = text
	state.Suggestion = b.suggest(state, text)
	ctx.UpdateOverlay(inst, b.view(ctx, inst))
}

// CustomOK commits the typed string as the new value. Any string is legal.
func (b *Behavior) CustomOK(ctx *control.Context, inst *control.Instance) error {
	state := stateOf(inst)
	if !state.CustomMode {
		return nil
	}
	if err := ctx.Registry.SetValue(inst.ID, control.Explicit(state.Entry)); err != nil {
		return err
	}
	ctx.Registry.Close()
	return nil
}

// CustomCancel abandons the entry form, rolling back to the value before the
// overlay opened.
func (b *Behavior) CustomCancel(ctx *control.Context, inst *control.Instance) {
	ctx.Registry.Cancel()
}

// applyValue stores the value and re-derives the display per the
// match-or-custom rule: first selectable option whose value compares equal
// wins; otherwise the control shows the localized custom label.
func (b *Behavior) applyValue(ctx *control.Context, inst *control.Instance, value string) {
	state := stateOf(inst)
	inst.Value = value

	if idx := b.matchIndex(state, value); idx >= 0 {
		state.IsCustom = false
		inst.Display = ctx.Localize(state.Options[idx].Label)
		return
	}
	state.IsCustom = true
	inst.Display = ctx.Localize("Custom")
}

func (b *Behavior) matchIndex(state *State, value string) int {
	for i, opt := range state.Options {
		if !opt.selectable() {
			continue
		}
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func (b *Behavior) suggest(state *State, text string) string {
	if text == "" {
		return ""
	}
	best := ""
	bestDist := suggestionDistance + 1
	for _, opt := range state.Options {
		if !opt.selectable() {
			continue
		}
		d := levenshtein.ComputeDistance(text, opt.Label)
		if d > 0 && d < bestDist {
			best = opt.Label
			bestDist = d
		}
	}
	return best
}

func (b *Behavior) view(ctx *control.Context, inst *control.Instance) render.View {
	state := stateOf(inst)

	if state.CustomMode {
		return render.TextEntryView{
			Title:       ctx.Localize(inst.Attribs.Title),
			Moveable:    inst.Attribs.Moveable,
			Prompt:      ctx.Localize("Custom"),
			Text:        state.Entry,
			Suggestion:  state.Suggestion,
			OKLabel:     ctx.Localize("OK"),
			CancelLabel: ctx.Localize("Cancel"),
			Width:       inst.Attribs.InputWidth,
		}
	}

	columns := [][]render.OptionItem{{}}
	col := 0
	for i, opt := range state.Options {
		if opt.NewCol {
			columns = append(columns, []render.OptionItem{})
			col++
			continue
		}
		columns[col] = append(columns[col], render.OptionItem{
			Label:       ctx.Localize(opt.Label),
			Skip:        opt.Skip,
			Custom:      opt.Custom,
			Cancel:      opt.Cancel,
			Highlighted: i == state.Highlight,
		})
	}

	return render.OptionListView{
		Title:    ctx.Localize(inst.Attribs.Title),
		Moveable: inst.Attribs.Moveable,
		Columns:  columns,
		Width:    inst.Attribs.Width,
	}
}

func stateOf(inst *control.Instance) *State {
	state, ok := inst.Data.(*State)
	if !ok {
		state = &State{Highlight: -1}
		inst.Data = state
	}
	return state
}

var _ control.Behavior = (*Behavior)(nil)
