package render

import (
	"github.com/gridwell/overlaykit/internal/geometry"
)

// Recorder is a headless Renderer that tracks what would be on screen. It
// backs the framework's tests and any embedding that only needs the logical
// state machine.
type Recorder struct {
	viewport    geometry.Rect
	anchors     map[string]geometry.Rect
	failAnchors map[string]bool

	triggers map[Handle]*recordedTrigger
	overlays map[Handle]*recordedOverlay

	// ShowCalls and HideCalls preserve ordering for close-before-open checks.
	ShowCalls []Handle
	HideCalls []Handle
}

type recordedTrigger struct {
	ControlID string
	Label     string
	Width     int
	Disabled  bool
	Bounds    geometry.Rect
}

type recordedOverlay struct {
	View View
	At   geometry.Rect
}

// NewRecorder creates a Recorder with the given viewport.
func NewRecorder(viewport geometry.Rect) *Recorder {
	return &Recorder{
		viewport:    viewport,
		anchors:     make(map[string]geometry.Rect),
		failAnchors: make(map[string]bool),
		triggers:    make(map[Handle]*recordedTrigger),
		overlays:    make(map[Handle]*recordedOverlay),
	}
}

// SetAnchor fixes the trigger bounds that AttachTrigger will assign to a
// control id.
func (r *Recorder) SetAnchor(controlID string, bounds geometry.Rect) {
	r.anchors[controlID] = bounds
}

// FailAnchor makes AttachTrigger report a missing anchor for the control id.
func (r *Recorder) FailAnchor(controlID string) {
	r.failAnchors[controlID] = true
}

// AttachTrigger implements Renderer.
func (r *Recorder) AttachTrigger(controlID, label string, width int) (Handle, bool) {
	if r.failAnchors[controlID] {
		return "", false
	}

	h := NewHandle()
	bounds, ok := r.anchors[controlID]
	if !ok {
		bounds = geometry.Rect{Top: 0, Left: 0, Width: width, Height: 1}
	}
	r.triggers[h] = &recordedTrigger{
		ControlID: controlID,
		Label:     label,
		Width:     width,
		Bounds:    bounds,
	}
	return h, true
}

// SetTrigger implements Renderer.
func (r *Recorder) SetTrigger(h Handle, label string, disabled bool) {
	if t, ok := r.triggers[h]; ok {
		t.Label = label
		t.Disabled = disabled
	}
}

// TriggerBounds implements Renderer.
func (r *Recorder) TriggerBounds(h Handle) geometry.Rect {
	if t, ok := r.triggers[h]; ok {
		return t.Bounds
	}
	return geometry.Rect{}
}

// Viewport implements Renderer.
func (r *Recorder) Viewport() geometry.Rect {
	return r.viewport
}

// ShowOverlay implements Renderer.
func (r *Recorder) ShowOverlay(h Handle, v View, at geometry.Rect) {
	r.overlays[h] = &recordedOverlay{View: v, At: at}
	r.ShowCalls = append(r.ShowCalls, h)
}

// UpdateOverlay implements Renderer.
func (r *Recorder) UpdateOverlay(h Handle, v View) {
	if o, ok := r.overlays[h]; ok {
		o.View = v
	}
}

// MoveOverlay implements Renderer.
func (r *Recorder) MoveOverlay(h Handle, to geometry.Rect) {
	if o, ok := r.overlays[h]; ok {
		o.At = to
	}
}

// HideOverlay implements Renderer.
func (r *Recorder) HideOverlay(h Handle) {
	if _, ok := r.overlays[h]; !ok {
		return
	}
	delete(r.overlays, h)
	r.HideCalls = append(r.HideCalls, h)
}

// OpenOverlays reports how many overlays are currently attached.
func (r *Recorder) OpenOverlays() int {
	return len(r.overlays)
}

// OverlayVisible reports whether the overlay for h is attached.
func (r *Recorder) OverlayVisible(h Handle) bool {
	_, ok := r.overlays[h]
	return ok
}

// OverlayView returns the view last painted for h, or nil.
func (r *Recorder) OverlayView(h Handle) View {
	if o, ok := r.overlays[h]; ok {
		return o.View
	}
	return nil
}

// OverlayBox returns the box the overlay for h occupies.
func (r *Recorder) OverlayBox(h Handle) geometry.Rect {
	if o, ok := r.overlays[h]; ok {
		return o.At
	}
	return geometry.Rect{}
}

// TriggerLabel returns the label last painted on the trigger for h.
func (r *Recorder) TriggerLabel(h Handle) string {
	if t, ok := r.triggers[h]; ok {
		return t.Label
	}
	return ""
}

// TriggerDisabled reports the disabled styling state of the trigger for h.
func (r *Recorder) TriggerDisabled(h Handle) bool {
	if t, ok := r.triggers[h]; ok {
		return t.Disabled
	}
	return false
}

var _ Renderer = (*Recorder)(nil)
