package colorchooser

import (
	"github.com/gridwell/overlaykit/internal/hexcolor"
)

// Grid geometry: 16 rows by 5 logical columns. Column 0 holds fixed named
// presets, column 1 a grayscale ramp, columns 2-4 one ramp per RGB channel.
const (
	GridRows = 16
	GridCols = 5

	ColPresets = 0
	ColGray    = 1
	ColRed     = 2
	ColGreen   = 3
	ColBlue    = 4
)

// Presets are the sixteen fixed colors of column 0, top to bottom.
var Presets = [GridRows]string{
	"rgb(0,0,0)",
	"rgb(255,255,255)",
	"rgb(255,0,0)",
	"rgb(0,255,0)",
	"rgb(0,0,255)",
	"rgb(255,255,0)",
	"rgb(0,255,255)",
	"rgb(255,0,255)",
	"rgb(255,128,0)",
	"rgb(128,0,128)",
	"rgb(128,64,0)",
	"rgb(255,192,203)",
	"rgb(0,0,128)",
	"rgb(0,128,128)",
	"rgb(128,128,0)",
	"rgb(128,128,128)",
}

// RowIntensity maps a grid row to its channel intensity: 17 x (15 - row),
// so row 0 is full intensity and row 15 is zero.
func RowIntensity(row int) int {
	return 17 * (GridRows - 1 - row)
}

// SelectedRow maps a channel value to the highlighted ramp row:
// 15 - floor((channel + 16) / 16). Values of 240 and above land outside the
// grid and yield -1, meaning no row is marked.
func SelectedRow(channel int) int {
	return GridRows - 1 - (channel+16)/16
}

// DetermineColors recomputes the full cell grid and per-column selection for
// the given current value. The ramp columns hold the other two channels of
// value constant; an empty value ramps against black.
func DetermineColors(value string) (cells [GridRows][GridCols]string, selected [GridCols]int) {
	r, g, b := hexcolor.SplitRGB(value)

	for col := 0; col < GridCols; col++ {
		selected[col] = -1
	}
	selected[ColRed] = SelectedRow(r)
	selected[ColGreen] = SelectedRow(g)
	selected[ColBlue] = SelectedRow(b)

	for row := 0; row < GridRows; row++ {
		intensity := RowIntensity(row)
		cells[row][ColPresets] = Presets[row]
		cells[row][ColGray] = hexcolor.FormatRGB(intensity, intensity, intensity)
		cells[row][ColRed] = hexcolor.FormatRGB(intensity, g, b)
		cells[row][ColGreen] = hexcolor.FormatRGB(r, intensity, b)
		cells[row][ColBlue] = hexcolor.FormatRGB(r, g, intensity)
	}
	return cells, selected
}

// ApplyCell returns the color resulting from activating the cell at
// (row, col) while editing value. Ramp columns update exactly one channel
// and hold the other two constant; the preset and gray columns replace the
// whole color.
func ApplyCell(value string, row, col int) string {
	if row < 0 || row >= GridRows {
		return value
	}

	r, g, b := hexcolor.SplitRGB(value)
	intensity := RowIntensity(row)

	switch col {
	case ColPresets:
		return Presets[row]
	case ColGray:
		return hexcolor.FormatRGB(intensity, intensity, intensity)
	case ColRed:
		return hexcolor.FormatRGB(intensity, g, b)
	case ColGreen:
		return hexcolor.FormatRGB(r, intensity, b)
	case ColBlue:
		return hexcolor.FormatRGB(r, g, intensity)
	default:
		return value
	}
}
