// Package panel binds named groups of controls to flat attribute maps.
// A Panel is pure configuration: it owns no runtime state beyond the
// control ids it references, and two panels may point at the same control.
package panel

import (
	"sort"

	"github.com/gridwell/overlaykit/internal/control"
	overlayerrors "github.com/gridwell/overlaykit/pkg/errors"
)

// NameKey is reserved for panel metadata and never bound to a control.
const NameKey = "name"

// Entry binds one panel slot to a control and the attribute key it edits.
type Entry struct {
	Setting     string
	Type        string
	ControlID   string
	InitialData any
}

// Panel maps slot names to entries. Entries keyed NameKey are metadata and
// are skipped by every operation.
type Panel struct {
	Name    string
	Entries map[string]Entry
}

// New creates a named panel over the given entries.
func New(name string, entries map[string]Entry) *Panel {
	return &Panel{Name: name, Entries: entries}
}

// Settings returns the attribute keys the panel binds, sorted, excluding
// the reserved metadata key.
func (p *Panel) Settings() []string {
	settings := make([]string, 0, len(p.Entries))
	for slot, entry := range p.Entries {
		if slot == NameKey {
			continue
		}
		settings = append(settings, entry.Setting)
	}
	sort.Strings(settings)
	return settings
}

// Load pushes the attribute map into the panel's controls via SetValue.
// A setting absent from the map loads as the inherit-default value.
func Load(reg *control.Registry, p *Panel, attrs map[string]control.AttributeValue) error {
	for slot, entry := range p.Entries {
		if slot == NameKey {
			continue
		}
		value, ok := attrs[entry.Setting]
		if !ok {
			value = control.Default()
		}
		if err := reg.SetValue(entry.ControlID, value); err != nil {
			return overlayerrors.NewPanelError(p.Name, err)
		}
	}
	return nil
}

// Unload pulls the panel's controls back into an attribute map keyed by each
// entry's setting.
func Unload(reg *control.Registry, p *Panel) (map[string]control.AttributeValue, error) {
	attrs := make(map[string]control.AttributeValue, len(p.Entries))
	for slot, entry := range p.Entries {
		if slot == NameKey {
			continue
		}
		value, err := reg.GetValue(entry.ControlID)
		if err != nil {
			return nil, overlayerrors.NewPanelError(p.Name, err)
		}
		attrs[entry.Setting] = value
	}
	return attrs, nil
}

// Initialize runs each control's one-time setup hook with the entry's
// initial data, e.g. a List's option set.
func Initialize(reg *control.Registry, p *Panel) error {
	for slot, entry := range p.Entries {
		if slot == NameKey {
			continue
		}
		if err := reg.Initialize(entry.ControlID, entry.InitialData); err != nil {
			return overlayerrors.NewPanelError(p.Name, err)
		}
	}
	return nil
}
