package borderside

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/colorchooser"
	"github.com/gridwell/overlaykit/internal/geometry"
	"github.com/gridwell/overlaykit/internal/render"
)

type fixture struct {
	reg      *control.Registry
	rec      *render.Recorder
	behavior *Behavior
	calls    []control.AttributeValue
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		rec:      render.NewRecorder(geometry.Rect{Width: 200, Height: 100}),
		behavior: New(),
	}
	f.reg = control.NewRegistry(f.rec)
	require.NoError(t, f.reg.RegisterBehavior(f.behavior))

	attribs := control.Attribs{
		Title: "Top Border",
		OnChange: func(_ control.Attribs, _ string, v control.AttributeValue) {
			f.calls = append(f.calls, v)
		},
	}
	require.NoError(t, f.reg.Create("borderside", "border_top", attribs))
	return f
}

func (f *fixture) inst(t *testing.T) *control.Instance {
	t.Helper()
	inst, err := f.reg.Lookup("border_top")
	require.NoError(t, err)
	return inst
}

func TestSetValueParsesBorderSpec(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("1px solid rgb(255,0,0)")))

	inst := f.inst(t)
	assert.True(t, f.behavior.IsOn(inst))
	assert.Equal(t, "rgb(255,0,0)", f.behavior.Color(inst))
}

func TestSetValueColorIsRemainderAfterTwoTokens(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("2px dashed light sky blue")))

	assert.Equal(t, "light sky blue", f.behavior.Color(f.inst(t)))
}

func TestSetValueEmptyUnchecksToggle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("1px solid rgb(255,0,0)")))
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("")))

	inst := f.inst(t)
	assert.False(t, f.behavior.IsOn(inst))
	assert.Equal(t, "", f.behavior.Color(inst))
}

func TestSetValueMalformedSpecTurnsOnWithoutColor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("dotted")))

	inst := f.inst(t)
	assert.True(t, f.behavior.IsOn(inst))
	assert.Equal(t, "", f.behavior.Color(inst))
}

func TestGetValueOffIsExplicitEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	got, err := f.reg.GetValue("border_top")
	require.NoError(t, err)
	assert.False(t, got.IsDefault, "no border is an explicit value, not inherit")
	assert.Equal(t, "", got.Value)
}

func TestGetValueOnWithoutColorFallsBackToBlack(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("dotted")))

	got, err := f.reg.GetValue("border_top")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("1px solid rgb(0,0,0)"), got)
}

func TestShowRendersToggleAndChooser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("1px solid rgb(0,0,255)")))
	require.NoError(t, f.reg.Click("border_top"))

	view, ok := f.rec.OverlayView(f.inst(t).Trigger).(render.BorderSideView)
	require.True(t, ok)
	assert.True(t, view.Checked)
	assert.True(t, view.ChooserEnabled)
	require.NotNil(t, view.Chooser)
	assert.Equal(t, "rgb(0,0,255)", view.Chooser.Sample)
}

func TestShowOffDisablesNestedChooser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.Click("border_top"))

	view, ok := f.rec.OverlayView(f.inst(t).Trigger).(render.BorderSideView)
	require.True(t, ok)
	assert.False(t, view.Checked)
	assert.False(t, view.ChooserEnabled)
	assert.Nil(t, view.Chooser)
}

func TestToggleEnablesChooser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.Click("border_top"))

	ctx := f.reg.Context()
	inst := f.inst(t)
	f.behavior.Toggle(ctx, inst)

	view := f.rec.OverlayView(inst.Trigger).(render.BorderSideView)
	assert.True(t, view.Checked)
	assert.True(t, view.ChooserEnabled)
	require.NotNil(t, view.Chooser)
}

func TestPressIgnoredWhileOff(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.Click("border_top"))

	ctx := f.reg.Context()
	inst := f.inst(t)
	f.behavior.Press(ctx, inst, 0, colorchooser.ColRed)

	assert.Equal(t, "", f.behavior.Color(inst))
}

func TestDragPaintsNestedGridOnlyWhilePressed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("1px solid rgb(100,50,200)")))
	require.NoError(t, f.reg.Click("border_top"))

	ctx := f.reg.Context()
	inst := f.inst(t)

	f.behavior.Move(ctx, inst, 0, colorchooser.ColRed)
	assert.Equal(t, "rgb(100,50,200)", f.behavior.Color(inst), "move without press must not paint")

	f.behavior.Press(ctx, inst, 0, colorchooser.ColRed)
	assert.Equal(t, "rgb(255,50,200)", f.behavior.Color(inst))

	f.behavior.Move(ctx, inst, 4, colorchooser.ColRed)
	assert.Equal(t, "rgb(187,50,200)", f.behavior.Color(inst))

	f.behavior.Release(ctx, inst)
	f.behavior.Move(ctx, inst, 15, colorchooser.ColRed)
	assert.Equal(t, "rgb(187,50,200)", f.behavior.Color(inst))
}

func TestOKCommitsBorderSpecAndCloses(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.Click("border_top"))

	ctx := f.reg.Context()
	inst := f.inst(t)
	f.behavior.Toggle(ctx, inst)
	f.behavior.Press(ctx, inst, 0, colorchooser.ColRed)
	f.behavior.Release(ctx, inst)
	f.calls = nil

	require.NoError(t, f.behavior.OK(ctx, inst))

	assert.Equal(t, "", f.reg.OpenID())
	got, err := f.reg.GetValue("border_top")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("1px solid rgb(255,0,0)"), got)
	require.Len(t, f.calls, 1)
	assert.Equal(t, control.Explicit("1px solid rgb(255,0,0)"), f.calls[0])
}

func TestOKWithToggleOffCommitsNoBorder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("1px solid rgb(255,0,0)")))
	f.calls = nil

	require.NoError(t, f.reg.Click("border_top"))
	ctx := f.reg.Context()
	inst := f.inst(t)
	f.behavior.Toggle(ctx, inst)
	require.NoError(t, f.behavior.OK(ctx, inst))

	got, err := f.reg.GetValue("border_top")
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, "", got.Value)
	require.Len(t, f.calls, 1)
}

func TestCancelRollsBackToggleAndColor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("border_top", control.Explicit("1px solid rgb(0,255,0)")))
	f.calls = nil

	require.NoError(t, f.reg.Click("border_top"))
	ctx := f.reg.Context()
	inst := f.inst(t)

	f.behavior.Press(ctx, inst, 15, colorchooser.ColGreen)
	f.behavior.Release(ctx, inst)
	f.behavior.Toggle(ctx, inst)
	f.behavior.CancelAction(ctx, inst)

	assert.Equal(t, "", f.reg.OpenID())
	assert.True(t, f.behavior.IsOn(inst))
	assert.Equal(t, "rgb(0,255,0)", f.behavior.Color(inst))
	got, err := f.reg.GetValue("border_top")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("1px solid rgb(0,255,0)"), got)
	assert.Empty(t, f.calls)
}

func TestCommittedSpecRoundTrips(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.Click("border_top"))

	ctx := f.reg.Context()
	inst := f.inst(t)
	f.behavior.Toggle(ctx, inst)
	f.behavior.Press(ctx, inst, 2, colorchooser.ColPresets)
	f.behavior.Release(ctx, inst)
	require.NoError(t, f.behavior.OK(ctx, inst))

	// Feeding the committed spec back reproduces the editor state.
	require.NoError(t, f.reg.Click("border_top"))
	assert.True(t, f.behavior.IsOn(inst))
	assert.Equal(t, "rgb(255,0,0)", f.behavior.Color(inst))
}
