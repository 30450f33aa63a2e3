// Package paneldef loads declarative panel definitions from YAML and turns
// them into registered controls and panel bindings.
package paneldef

import (
	"gopkg.in/yaml.v3"
)

// Document is a full panel definition file.
type Document struct {
	Version string     `yaml:"version,omitempty"`
	Name    string     `yaml:"name" validate:"required,min=1,max=100"`
	Panels  []PanelDef `yaml:"panels" validate:"required,min=1,dive"`
}

// PanelDef declares one named panel and the controls it binds.
type PanelDef struct {
	Name     string       `yaml:"name" validate:"required,control_id"`
	Controls []ControlDef `yaml:"controls" validate:"required,min=1,dive"`
}

// ControlDef declares a control binding inside a panel. The same control id
// may appear in several panels; it is created once and shared.
type ControlDef struct {
	ID      string `yaml:"id" validate:"required,control_id"`
	Setting string `yaml:"setting" validate:"required,min=1"`
	Type    string `yaml:"type" validate:"required,oneof=list colorchooser borderside"`

	Title    string `yaml:"title,omitempty"`
	Moveable bool   `yaml:"moveable,omitempty"`
	Width    int    `yaml:"width,omitempty" validate:"omitempty,min=1,max=200"`

	InputWidth   int `yaml:"input_width,omitempty" validate:"omitempty,min=1,max=200"`
	SampleWidth  int `yaml:"sample_width,omitempty" validate:"omitempty,min=1,max=200"`
	SampleHeight int `yaml:"sample_height,omitempty" validate:"omitempty,min=1,max=50"`

	List *ListDef `yaml:"-"`
}

// ListDef carries the list control's option payload.
type ListDef struct {
	Options []OptionDef `yaml:"options" validate:"required,min=1,dive"`
}

// OptionDef is one list entry. Skip, custom and cancel options carry no
// value; newcol is a rendering-only column break.
type OptionDef struct {
	Label  string `yaml:"label,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Skip   bool   `yaml:"skip,omitempty"`
	Custom bool   `yaml:"custom,omitempty"`
	Cancel bool   `yaml:"cancel,omitempty"`
	NewCol bool   `yaml:"newcol,omitempty"`
}

// UnmarshalYAML customises control decoding to populate the type-specific
// payload without key conflicts.
func (c *ControlDef) UnmarshalYAML(value *yaml.Node) error {
	type baseControl struct {
		ID           string `yaml:"id"`
		Setting      string `yaml:"setting"`
		Type         string `yaml:"type"`
		Title        string `yaml:"title"`
		Moveable     bool   `yaml:"moveable"`
		Width        int    `yaml:"width"`
		InputWidth   int    `yaml:"input_width"`
		SampleWidth  int    `yaml:"sample_width"`
		SampleHeight int    `yaml:"sample_height"`
	}

	var base baseControl
	if err := value.Decode(&base); err != nil {
		return err
	}

	c.ID = base.ID
	c.Setting = base.Setting
	c.Type = base.Type
	c.Title = base.Title
	c.Moveable = base.Moveable
	c.Width = base.Width
	c.InputWidth = base.InputWidth
	c.SampleWidth = base.SampleWidth
	c.SampleHeight = base.SampleHeight

	c.List = nil
	if base.Type == "list" {
		var payload ListDef
		if err := value.Decode(&payload); err != nil {
			return err
		}
		c.List = &payload
	}

	return nil
}
