package control

import (
	"github.com/gridwell/overlaykit/internal/geometry"
	"github.com/gridwell/overlaykit/internal/logger"
	"github.com/gridwell/overlaykit/internal/render"
)

// Behavior is the capability contract every control type satisfies. The
// registry dispatches to exactly one Behavior per type name; behaviors keep
// their private state in Instance.Data.
type Behavior interface {
	// Type returns the type name the behavior registers under.
	Type() string

	// Create allocates the instance's type-specific Data. The trigger has
	// already been attached (or the instance marked inert) when Create runs.
	Create(ctx *Context, inst *Instance) error

	// Initialize performs one-time setup with caller-supplied data, e.g.
	// populating a list's options.
	Initialize(ctx *Context, inst *Instance, data any) error

	// Show renders the overlay for an opening control. The registry has
	// already snapshotted ValueBeforeEdit.
	Show(ctx *Context, inst *Instance) error

	// Hide detaches the overlay. Hide never alters the control's value.
	Hide(ctx *Context, inst *Instance)

	// Cancel restores the control's value to ValueBeforeEdit and detaches
	// the overlay. It must not fire the change callback.
	Cancel(ctx *Context, inst *Instance)

	// GetValue reports the control's committed value.
	GetValue(ctx *Context, inst *Instance) AttributeValue

	// SetValue updates the control's value and display. Owner notification
	// is the registry's job, not the behavior's.
	SetValue(ctx *Context, inst *Instance, value AttributeValue) error

	// SetDisabled applies the disabled state to type-specific parts.
	SetDisabled(ctx *Context, inst *Instance, disabled bool)

	// Reset clears any cross-instance state when the owning view changes
	// context. The registry closes a matching open overlay beforehand.
	Reset(ctx *Context)
}

// Context carries the collaborators behaviors operate through. One Context
// exists per Registry and is passed to every hook invocation.
type Context struct {
	Registry *Registry
	Renderer render.Renderer
	Log      *logger.Logger

	// Localize translates user-facing labels; it defaults to identity.
	Localize func(string) string
}

// ShowOverlay measures the view, chooses a placement near the instance's
// trigger that stays inside the bounding container, and attaches the overlay
// there. When nothing fits, the overlay keeps the instance's prior box.
func (c *Context) ShowOverlay(inst *Instance, v render.View) {
	at := c.placeOverlay(inst, v)
	inst.OverlayBox = at
	c.Renderer.ShowOverlay(inst.Trigger, v, at)
}

// UpdateOverlay repaints an open overlay, re-placing it when its measured
// size changed (e.g. a list swapping to its custom-entry form).
func (c *Context) UpdateOverlay(inst *Instance, v render.View) {
	w, h := v.ViewSize()
	if w != inst.OverlayBox.Width || h != inst.OverlayBox.Height {
		at := c.placeOverlay(inst, v)
		inst.OverlayBox = at
		c.Renderer.MoveOverlay(inst.Trigger, at)
	}
	c.Renderer.UpdateOverlay(inst.Trigger, v)
}

// HideOverlay detaches the instance's overlay.
func (c *Context) HideOverlay(inst *Instance) {
	c.Renderer.HideOverlay(inst.Trigger)
}

// RepaintTrigger refreshes the trigger's label and disabled styling from the
// instance's logical state.
func (c *Context) RepaintTrigger(inst *Instance) {
	c.Renderer.SetTrigger(inst.Trigger, inst.Display, inst.Disabled)
}

func (c *Context) placeOverlay(inst *Instance, v render.View) geometry.Rect {
	w, h := v.ViewSize()
	popup := inst.OverlayBox
	popup.Width = w
	popup.Height = h

	container := c.Renderer.Viewport()
	if inst.Attribs.EnsureWithin != nil {
		container = *inst.Attribs.EnsureWithin
	}

	anchor := c.Renderer.TriggerBounds(inst.Trigger)
	at, _ := geometry.Place(anchor, popup, container)
	return at
}
