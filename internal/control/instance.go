package control

import (
	"github.com/gridwell/overlaykit/internal/geometry"
	"github.com/gridwell/overlaykit/internal/render"
)

// Instance is the registry's record of one created control. Exactly one
// Instance exists per id for the process lifetime once created.
type Instance struct {
	ID       string
	Type     string
	Value    string
	Display  string
	Disabled bool

	// Inert marks a control whose trigger had no valid anchor at creation.
	// Operations on an inert control are a caller bug and are not guarded.
	Inert bool

	Attribs Attribs

	// Data holds type-specific private state allocated by the behavior's
	// Create hook.
	Data any

	// Trigger is the opaque render handle for the control's anchor element.
	Trigger render.Handle

	// ValueBeforeEdit is snapshotted when the overlay opens and consumed by
	// Cancel to roll back.
	ValueBeforeEdit string

	// OverlayBox is the last placed overlay box. When no placement candidate
	// fits the container, the overlay keeps this position.
	OverlayBox geometry.Rect
}
