package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/geometry"
	"github.com/gridwell/overlaykit/internal/render"
)

func fontOptions() []Option {
	return []Option{
		{Label: "Fonts", Skip: true},
		{Label: "Arial", Value: "arial"},
		{Label: "Courier New", Value: "courier"},
		{NewCol: true},
		{Label: "Verdana", Value: "verdana"},
		{Label: "Custom", Custom: true},
		{Label: "Cancel", Cancel: true},
	}
}

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
		Title: "Font",
		OnChange: func(_ control.Attribs, _ string, v control.AttributeValue) {
			f.calls = append(f.calls, v)
		},
	}
	require.NoError(t, f.reg.Create("list", "font", attribs))
	require.NoError(t, f.reg.Initialize("font", fontOptions()))
	return f
}

func (f *fixture) inst(t *testing.T) *control.Instance {
	t.Helper()
	inst, err := f.reg.Lookup("font")
	require.NoError(t, err)
	return inst
}

func TestSetValueMatchesOptionLabel(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("courier")))

	inst := f.inst(t)
	assert.Equal(t, "Courier New", inst.Display)
	assert.False(t, f.behavior.IsCustom(inst))
}

func TestSetValueUnmatchedShowsCustomLabel(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("comic-sans")))

	inst := f.inst(t)
	assert.Equal(t, "Custom", inst.Display)
	assert.True(t, f.behavior.IsCustom(inst))
}

func TestSkipCustomCancelNeverMatch(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// "Fonts" is a skip caption with an empty value; empty must not match it.
	require.NoError(t, f.reg.SetValue("font", control.Default()))
	inst := f.inst(t)
	assert.True(t, f.behavior.IsCustom(inst))
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.Initialize("font", []Option{
		{Label: "First", Value: "dup"},
		{Label: "Second", Value: "dup"},
	}))

	require.NoError(t, f.reg.SetValue("font", control.Explicit("dup")))
	assert.Equal(t, "First", f.inst(t).Display)
}

func TestShowMatchedValueRendersOptionList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	require.NoError(t, f.reg.Click("font"))

	view, ok := f.rec.OverlayView(f.inst(t).Trigger).(render.OptionListView)
	require.True(t, ok, "matched value should open the option list")
	require.Len(t, view.Columns, 2, "newcol splits rendering into two columns")
	assert.Equal(t, "Arial", view.Columns[0][1].Label)
	assert.True(t, view.Columns[0][1].Highlighted)
}

func TestShowUnmatchedValueRendersEntryForm(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("comic-sans")))
	require.NoError(t, f.reg.Click("font"))

	view, ok := f.rec.OverlayView(f.inst(t).Trigger).(render.TextEntryView)
	require.True(t, ok, "unmatched value should open the custom entry form")
	assert.Equal(t, "comic-sans", view.Text)
}

func TestSelectCommitsValueAndCloses(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	f.calls = nil

	require.NoError(t, f.reg.Click("font"))
	require.NoError(t, f.behavior.Select(f.reg.Context(), f.inst(t), 4)) // Verdana

	assert.Equal(t, "", f.reg.OpenID())
	assert.Equal(t, 0, f.rec.OpenOverlays())

	got, err := f.reg.GetValue("font")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("verdana"), got)
	require.Len(t, f.calls, 1)
	assert.Equal(t, control.Explicit("verdana"), f.calls[0])
}

func TestSelectSkipIsNoOp(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	require.NoError(t, f.reg.Click("font"))

	require.NoError(t, f.behavior.Select(f.reg.Context(), f.inst(t), 0))
	assert.Equal(t, "font", f.reg.OpenID())
}

func TestSelectCancelClosesWithoutChange(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	f.calls = nil

	require.NoError(t, f.reg.Click("font"))
	require.NoError(t, f.behavior.Select(f.reg.Context(), f.inst(t), 6)) // Cancel

	assert.Equal(t, "", f.reg.OpenID())
	got, err := f.reg.GetValue("font")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("arial"), got)
	assert.Empty(t, f.calls)
}

func TestSelectCustomSwitchesSameOverlayToEntryMode(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	require.NoError(t, f.reg.Click("font"))

	require.NoError(t, f.behavior.Select(f.reg.Context(), f.inst(t), 5)) // Custom

	// Still the same open overlay, now showing the entry form.
	assert.Equal(t, "font", f.reg.OpenID())
	assert.Equal(t, 1, f.rec.OpenOverlays())
	_, ok := f.rec.OverlayView(f.inst(t).Trigger).(render.TextEntryView)
	assert.True(t, ok)
}

func TestCustomOKCommitsTypedString(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	f.calls = nil

	ctx := f.reg.Context()
	require.NoError(t, f.reg.Click("font"))
	require.NoError(t, f.behavior.Select(ctx, f.inst(t), 5))

	f.behavior.SetEntryText(ctx, f.inst(t), "Wingdings 3")
	require.NoError(t, f.behavior.CustomOK(ctx, f.inst(t)))

	assert.Equal(t, "", f.reg.OpenID())
	got, err := f.reg.GetValue("font")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("Wingdings 3"), got)
	require.Len(t, f.calls, 1)

	assert.Equal(t, "Custom", f.inst(t).Display)
	assert.True(t, f.behavior.IsCustom(f.inst(t)))
}

func TestCustomCancelRollsBack(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	f.calls = nil

	ctx := f.reg.Context()
	require.NoError(t, f.reg.Click("font"))
	require.NoError(t, f.behavior.Select(ctx, f.inst(t), 5))
	f.behavior.SetEntryText(ctx, f.inst(t), "half-typed")

	f.behavior.CustomCancel(ctx, f.inst(t))

	assert.Equal(t, "", f.reg.OpenID())
	got, err := f.reg.GetValue("font")
	require.NoError(t, err)
	assert.Equal(t, control.Explicit("arial"), got)
	assert.Empty(t, f.calls)
}

func TestHoverHighlightsExactlyOne(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	require.NoError(t, f.reg.Click("font"))

	ctx := f.reg.Context()
	f.behavior.Hover(ctx, f.inst(t), 2)
	f.behavior.Hover(ctx, f.inst(t), 4)

	view := f.rec.OverlayView(f.inst(t).Trigger).(render.OptionListView)
	highlighted := 0
	for _, col := range view.Columns {
		for _, item := range col {
			if item.Highlighted {
				highlighted++
				assert.Equal(t, "Verdana", item.Label)
			}
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestHoverSkipCaptionIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("arial")))
	require.NoError(t, f.reg.Click("font"))

	ctx := f.reg.Context()
	f.behavior.Hover(ctx, f.inst(t), 2)
	f.behavior.Hover(ctx, f.inst(t), 0) // skip caption

	view := f.rec.OverlayView(f.inst(t).Trigger).(render.OptionListView)
	assert.True(t, view.Columns[0][2].Highlighted, "previous highlight stays")
}

func TestSuggestionWithinDistanceTwo(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.reg.SetValue("font", control.Explicit("x")))
	require.NoError(t, f.reg.Click("font"))

	ctx := f.reg.Context()
	f.behavior.SetEntryText(ctx, f.inst(t), "Ariel")

	view := f.rec.OverlayView(f.inst(t).Trigger).(render.TextEntryView)
	assert.Equal(t, "Arial", view.Suggestion)

	f.behavior.SetEntryText(ctx, f.inst(t), "totally different")
	view = f.rec.OverlayView(f.inst(t).Trigger).(render.TextEntryView)
	assert.Equal(t, "", view.Suggestion)
}

func TestLocalizeAppliedToLabels(t *testing.T) {
	t.Parallel()

	rec := render.NewRecorder(geometry.Rect{Width: 200, Height: 100})
	upper := func(s string) string {
		if s == "Custom" {
			return "EIGENE"
		}
		return s
	}
	reg := control.NewRegistry(rec, control.WithLocalizer(upper))
	behavior := New()
	require.NoError(t, reg.RegisterBehavior(behavior))
	require.NoError(t, reg.Create("list", "font", control.Attribs{}))
	require.NoError(t, reg.Initialize("font", fontOptions()))

	require.NoError(t, reg.SetValue("font", control.Explicit("unknown")))
	inst, err := reg.Lookup("font")
	require.NoError(t, err)
	assert.Equal(t, "EIGENE", inst.Display)
}
