package geometry

// Placement identifies which candidate position was chosen for a popup.
type Placement int

const (
	// PlacementUnchanged means no candidate fit inside the container and the
	// popup keeps whatever position it already had.
	PlacementUnchanged Placement = iota
	PlacementBelowRight
	PlacementAboveRight
	PlacementBelowLeft
	PlacementAboveLeft
	PlacementBelowCentered
	PlacementAboveCentered
	PlacementMiddleRight
	PlacementMiddleLeft
)

// String returns the placement name for logging.
func (p Placement) String() string {
	switch p {
	case PlacementBelowRight:
		return "below-right"
	case PlacementAboveRight:
		return "above-right"
	case PlacementBelowLeft:
		return "below-left"
	case PlacementAboveLeft:
		return "above-left"
	case PlacementBelowCentered:
		return "below-centered"
	case PlacementAboveCentered:
		return "above-centered"
	case PlacementMiddleRight:
		return "middle-right"
	case PlacementMiddleLeft:
		return "middle-left"
	default:
		return "unchanged"
	}
}

// Place positions popup relative to anchor so that it stays inside container.
// Candidates are tried in a fixed priority order favouring positions nearest
// the anchor; the first candidate that fits wins. Cases 1-6 must fit on both
// axes, the two "middle" cases only need their cross axis to fit. When no
// candidate fits, popup is returned unchanged with PlacementUnchanged.
//
// "Below" puts the popup top at the anchor bottom, "above" puts the popup
// bottom at the anchor top. "Right" aligns the left edges, "left" aligns the
// right edges. "Centered" centers horizontally within the container, "middle"
// centers vertically within it.
func Place(anchor, popup, container Rect) (Rect, Placement) {
	below := anchor.Bottom()
	above := anchor.Top - popup.Height
	alignRight := anchor.Left
	alignLeft := anchor.Right() - popup.Width
	centered := container.Left + (container.Width-popup.Width)/2
	middle := container.Top + (container.Height-popup.Height)/2

	candidates := []struct {
		top, left int
		placement Placement
	}{
		{below, alignRight, PlacementBelowRight},
		{above, alignRight, PlacementAboveRight},
		{below, alignLeft, PlacementBelowLeft},
		{above, alignLeft, PlacementAboveLeft},
		{below, centered, PlacementBelowCentered},
		{above, centered, PlacementAboveCentered},
	}

	for _, c := range candidates {
		moved := Rect{Top: c.top, Left: c.left, Width: popup.Width, Height: popup.Height}
		if container.Contains(moved) {
			return moved, c.placement
		}
	}

	// Middle cases keep the anchor's horizontal alignment and only require
	// the vertical axis to fit.
	middleRight := Rect{Top: middle, Left: alignRight, Width: popup.Width, Height: popup.Height}
	if container.containsVertically(middleRight) {
		return middleRight, PlacementMiddleRight
	}

	middleLeft := Rect{Top: middle, Left: alignLeft, Width: popup.Width, Height: popup.Height}
	if container.containsVertically(middleLeft) {
		return middleLeft, PlacementMiddleLeft
	}

	return popup, PlacementUnchanged
}
