// Package render is the seam between the control framework and whatever
// draws it. The framework core manipulates only logical state and issues
// attach/show/move/hide requests through the Renderer interface; handles are
// opaque tokens owned by the renderer.
package render

import (
	"github.com/google/uuid"

	"github.com/gridwell/overlaykit/internal/geometry"
)

// Handle is an opaque reference to a rendered trigger element and its
// associated overlay slot.
type Handle string

// NewHandle allocates a fresh opaque handle token.
func NewHandle() Handle {
	return Handle(uuid.NewString())
}

// View is a logical description of overlay content. Renderers decide how to
// draw it; the framework only needs its measured size for placement.
type View interface {
	ViewSize() (width, height int)
}

// Renderer renders triggers and transient overlay panels.
type Renderer interface {
	// AttachTrigger renders the inert trigger representation for a control.
	// ok is false when no valid anchor exists for the control, in which case
	// the control becomes inert.
	AttachTrigger(controlID, label string, width int) (h Handle, ok bool)

	// SetTrigger updates the trigger's label and disabled styling.
	SetTrigger(h Handle, label string, disabled bool)

	// TriggerBounds reports the trigger's current screen box, used as the
	// overlay anchor.
	TriggerBounds(h Handle) geometry.Rect

	// Viewport reports the default bounding container for overlay placement.
	Viewport() geometry.Rect

	// ShowOverlay attaches the overlay panel for h at the given box.
	ShowOverlay(h Handle, v View, at geometry.Rect)

	// UpdateOverlay repaints an already-visible overlay in place.
	UpdateOverlay(h Handle, v View)

	// MoveOverlay repositions an already-visible overlay.
	MoveOverlay(h Handle, to geometry.Rect)

	// HideOverlay detaches the overlay panel for h. Hiding an overlay that
	// is not shown is a no-op.
	HideOverlay(h Handle)
}
