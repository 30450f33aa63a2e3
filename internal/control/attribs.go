package control

import (
	"github.com/gridwell/overlaykit/internal/geometry"
)

// AttributeValue is the unit exchanged between a settings panel and the
// domain attribute map. IsDefault means "inherit, do not override"; Value is
// only meaningful when IsDefault is false.
type AttributeValue struct {
	IsDefault bool
	Value     string
}

// Default returns the "inherit from a higher-level default" value.
func Default() AttributeValue {
	return AttributeValue{IsDefault: true}
}

// Explicit returns an explicit override value.
func Explicit(v string) AttributeValue {
	return AttributeValue{Value: v}
}

// ChangeFunc is invoked exactly once per committed edit, and never on cancel.
type ChangeFunc func(attribs Attribs, id string, value AttributeValue)

// Attribs is the configuration bag a control owner supplies at creation time.
type Attribs struct {
	// Title is shown as the overlay header; with Moveable set the header is
	// draggable.
	Title    string
	Moveable bool

	// Width is a layout hint for the trigger representation.
	Width int

	// EnsureWithin overrides the renderer viewport as the bounding container
	// for overlay placement.
	EnsureWithin *geometry.Rect

	// OnChange is the committed-edit callback.
	OnChange ChangeFunc

	// InputWidth sizes the custom-entry field of list controls.
	InputWidth int

	// SampleWidth and SampleHeight size the color sample area of color
	// chooser controls.
	SampleWidth  int
	SampleHeight int

	// Extra carries any remaining type-specific options.
	Extra map[string]any
}
