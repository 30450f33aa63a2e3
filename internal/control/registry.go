package control

import (
	"fmt"
	"sort"

	"github.com/gridwell/overlaykit/internal/logger"
	"github.com/gridwell/overlaykit/internal/render"
	overlayerrors "github.com/gridwell/overlaykit/pkg/errors"
)

// Registry owns every control instance and the behavior implementations they
// dispatch to. It is constructed once and passed by reference; there are no
// package-level singletons.
type Registry struct {
	behaviors map[string]Behavior
	controls  map[string]*Instance
	openID    string
	ctx       *Context
}

// Option customizes registry construction.
type Option func(*Context)

// WithLogger supplies the logger the registry and behaviors report through.
func WithLogger(log *logger.Logger) Option {
	return func(c *Context) {
		c.Log = log
	}
}

// WithLocalizer supplies the label translation hook.
func WithLocalizer(localize func(string) string) Option {
	return func(c *Context) {
		if localize != nil {
			c.Localize = localize
		}
	}
}

// NewRegistry creates an empty registry rendering through the given renderer.
func NewRegistry(renderer render.Renderer, opts ...Option) *Registry {
	r := &Registry{
		behaviors: make(map[string]Behavior),
		controls:  make(map[string]*Instance),
	}
	r.ctx = &Context{
		Registry: r,
		Renderer: renderer,
		Log:      logger.Discard(),
		Localize: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(r.ctx)
	}
	return r
}

// RegisterBehavior adds a behavior implementation for its type name.
func (r *Registry) RegisterBehavior(b Behavior) error {
	if b == nil {
		return overlayerrors.NewBehaviorError("", fmt.Errorf("behavior is nil"))
	}
	name := b.Type()
	if _, exists := r.behaviors[name]; exists {
		return overlayerrors.NewBehaviorError(name, fmt.Errorf("behavior already registered"))
	}
	r.behaviors[name] = b
	return nil
}

// Create registers a new control instance of the given type. Re-creating an
// existing id is an idempotent no-op reported as a warning. A control whose
// trigger finds no valid anchor is registered inert, also as a warning.
func (r *Registry) Create(controlType, id string, attribs Attribs) error {
	if _, exists := r.controls[id]; exists {
		r.ctx.Log.DuplicateCreate(controlType, id)
		return nil
	}

	behavior, ok := r.behaviors[controlType]
	if !ok {
		return overlayerrors.NewBehaviorError(controlType, fmt.Errorf("no behavior registered"))
	}

	inst := &Instance{
		ID:      id,
		Type:    controlType,
		Attribs: attribs,
	}

	handle, attached := r.ctx.Renderer.AttachTrigger(id, attribs.Title, attribs.Width)
	if !attached {
		r.ctx.Log.MissingAnchor(controlType, id)
		inst.Inert = true
	}
	inst.Trigger = handle

	if err := behavior.Create(r.ctx, inst); err != nil {
		return err
	}

	r.controls[id] = inst
	return nil
}

// SetValue commits a new value on the control and notifies the owner. This
// is the only path that fires the change callback.
func (r *Registry) SetValue(id string, value AttributeValue) error {
	inst, behavior, err := r.lookup("SetValue", id)
	if err != nil {
		return err
	}

	if err := behavior.SetValue(r.ctx, inst, value); err != nil {
		return err
	}
	r.ctx.RepaintTrigger(inst)

	if inst.Attribs.OnChange != nil {
		inst.Attribs.OnChange(inst.Attribs, id, value)
	}
	return nil
}

// GetValue reports the control's committed value.
func (r *Registry) GetValue(id string) (AttributeValue, error) {
	inst, behavior, err := r.lookup("GetValue", id)
	if err != nil {
		return AttributeValue{}, err
	}
	return behavior.GetValue(r.ctx, inst), nil
}

// SetDisabled toggles the control's disabled state. Disabling a control
// whose overlay is open cancels the overlay first, without committing
// pending edits.
func (r *Registry) SetDisabled(id string, disabled bool) error {
	inst, behavior, err := r.lookup("SetDisabled", id)
	if err != nil {
		return err
	}

	if disabled && r.openID == id {
		r.cancelOpen()
	}

	inst.Disabled = disabled
	behavior.SetDisabled(r.ctx, inst, disabled)
	r.ctx.RepaintTrigger(inst)
	return nil
}

// Initialize performs the control's one-time data setup.
func (r *Registry) Initialize(id string, data any) error {
	inst, behavior, err := r.lookup("Initialize", id)
	if err != nil {
		return err
	}
	return behavior.Initialize(r.ctx, inst, data)
}

// Reset force-closes the active overlay when it belongs to the given type,
// then lets the behavior clear any cross-instance state. An open overlay of
// a different type is left alone.
func (r *Registry) Reset(controlType string) {
	if r.openID != "" {
		if open, ok := r.controls[r.openID]; ok && open.Type == controlType {
			r.hideOpen(open)
		}
	}
	if behavior, ok := r.behaviors[controlType]; ok {
		behavior.Reset(r.ctx)
	}
}

// Lookup returns the instance registered under id.
func (r *Registry) Lookup(id string) (*Instance, error) {
	inst, ok := r.controls[id]
	if !ok {
		return nil, overlayerrors.NewUnknownControlError("Lookup", id)
	}
	return inst, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.controls[id]
	return ok
}

// IDs returns the registered control ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.controls))
	for id := range r.controls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Context exposes the registry's behavior context. Intended for behavior
// interaction methods invoked by an input driver.
func (r *Registry) Context() *Context {
	return r.ctx
}

func (r *Registry) lookup(op, id string) (*Instance, Behavior, error) {
	inst, ok := r.controls[id]
	if !ok {
		return nil, nil, overlayerrors.NewUnknownControlError(op, id)
	}

	behavior, ok := r.behaviors[inst.Type]
	if !ok {
		return nil, nil, overlayerrors.NewBehaviorError(inst.Type, fmt.Errorf("no behavior registered"))
	}
	return inst, behavior, nil
}
