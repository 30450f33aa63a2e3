package render

// OptionItem is one row of an option list overlay.
type OptionItem struct {
	Label       string
	Skip        bool
	Custom      bool
	Cancel      bool
	Highlighted bool
}

// OptionListView describes a list overlay. Columns are rendering-only splits
// produced by newcol markers; they carry no value semantics.
type OptionListView struct {
	Title    string
	Moveable bool
	Columns  [][]OptionItem
	Width    int
}

// ViewSize measures the list panel: the widest column stack plus padding per
// column, and the tallest column plus an optional title row.
func (v OptionListView) ViewSize() (int, int) {
	width := 0
	height := 0
	for _, col := range v.Columns {
		colWidth := 0
		for _, item := range col {
			if len(item.Label) > colWidth {
				colWidth = len(item.Label)
			}
		}
		width += colWidth + 2
		if len(col) > height {
			height = len(col)
		}
	}
	if v.Width > width {
		width = v.Width
	}
	if v.Title != "" {
		height++
	}
	return width, height
}

// TextEntryView describes a custom-value entry form shown inside the same
// overlay instance as the list or grid it replaces.
type TextEntryView struct {
	Title       string
	Moveable    bool
	Prompt      string
	Text        string
	Suggestion  string
	OKLabel     string
	CancelLabel string
	Width       int
}

// ViewSize measures the entry form: prompt, input row, buttons, and an
// optional suggestion line.
func (v TextEntryView) ViewSize() (int, int) {
	width := v.Width
	if width == 0 {
		width = len(v.Prompt) + len(v.Text) + 4
	}
	height := 3
	if v.Title != "" {
		height++
	}
	if v.Suggestion != "" {
		height++
	}
	return width, height
}

// ColorGridView describes the 16x5 color grid overlay. Cells hold
// "rgb(r,g,b)" strings by (row, col); SelectedRow maps a ramp column to its
// highlighted row, -1 for none.
type ColorGridView struct {
	Title        string
	Moveable     bool
	Cells        [16][5]string
	SelectedRow  [5]int
	Sample       string
	SampleWidth  int
	SampleHeight int
	OKLabel      string
	CancelLabel  string
	CustomLabel  string
	DefaultLabel string
}

// ViewSize measures the grid panel: five swatch columns beside the sample
// area, sixteen rows plus a button row and an optional title row.
func (v ColorGridView) ViewSize() (int, int) {
	sampleWidth := v.SampleWidth
	if sampleWidth == 0 {
		sampleWidth = 10
	}
	width := 5*2 + sampleWidth + 2
	height := 16 + 1
	if v.Title != "" {
		height++
	}
	return width, height
}

// BorderSideView composes an on/off toggle with a nested color grid.
type BorderSideView struct {
	Title          string
	Moveable       bool
	Checked        bool
	ToggleLabel    string
	ChooserEnabled bool
	Chooser        *ColorGridView
	OKLabel        string
	CancelLabel    string
}

// ViewSize measures the border editor: toggle row, buttons, and the nested
// grid when the chooser is enabled.
func (v BorderSideView) ViewSize() (int, int) {
	width := len(v.ToggleLabel) + 6
	height := 2
	if v.Title != "" {
		height++
	}
	if v.ChooserEnabled && v.Chooser != nil {
		cw, ch := v.Chooser.ViewSize()
		if cw > width {
			width = cw
		}
		height += ch
	}
	return width, height
}
