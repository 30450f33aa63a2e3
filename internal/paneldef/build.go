package paneldef

import (
	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/list"
	"github.com/gridwell/overlaykit/internal/panel"
	overlayerrors "github.com/gridwell/overlaykit/pkg/errors"
)

// Build registers the document's controls and returns its panels keyed by
// name, initialized and ready to load. A control id referenced by several
// panels is created once and shared.
func Build(reg *control.Registry, doc *Document) (map[string]*panel.Panel, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	panels := make(map[string]*panel.Panel, len(doc.Panels))

	for _, p := range doc.Panels {
		entries := make(map[string]panel.Entry, len(p.Controls))

		for _, c := range p.Controls {
			if !reg.Has(c.ID) {
				if err := reg.Create(c.Type, c.ID, attribsFor(c)); err != nil {
					return nil, overlayerrors.NewPanelError(p.Name, err)
				}
			}
			entries[c.Setting] = panel.Entry{
				Setting:     c.Setting,
				Type:        c.Type,
				ControlID:   c.ID,
				InitialData: initialDataFor(c),
			}
		}

		built := panel.New(p.Name, entries)
		if err := panel.Initialize(reg, built); err != nil {
			return nil, err
		}
		panels[p.Name] = built
	}

	return panels, nil
}

func attribsFor(c ControlDef) control.Attribs {
	return control.Attribs{
		Title:        c.Title,
		Moveable:     c.Moveable,
		Width:        c.Width,
		InputWidth:   c.InputWidth,
		SampleWidth:  c.SampleWidth,
		SampleHeight: c.SampleHeight,
	}
}

func initialDataFor(c ControlDef) any {
	if c.Type != "list" || c.List == nil {
		return nil
	}

	options := make([]list.Option, 0, len(c.List.Options))
	for _, opt := range c.List.Options {
		options = append(options, list.Option{
			Label:  opt.Label,
			Value:  opt.Value,
			Skip:   opt.Skip,
			Custom: opt.Custom,
			Cancel: opt.Cancel,
			NewCol: opt.NewCol,
		})
	}
	return options
}
