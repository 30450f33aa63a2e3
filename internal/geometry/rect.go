package geometry

// Rect is an axis-aligned box in cell coordinates. Top/Left name the origin
// corner; Width and Height extend right and down.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom returns the first row below the rect.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Right returns the first column right of the rect.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Contains reports whether other lies fully inside r.
func (r Rect) Contains(other Rect) bool {
	return other.Top >= r.Top &&
		other.Left >= r.Left &&
		other.Bottom() <= r.Bottom() &&
		other.Right() <= r.Right()
}

// containsVertically reports whether other fits within r on the vertical axis.
func (r Rect) containsVertically(other Rect) bool {
	return other.Top >= r.Top && other.Bottom() <= r.Bottom()
}

// containsHorizontally reports whether other fits within r on the horizontal
// axis.
func (r Rect) containsHorizontally(other Rect) bool {
	return other.Left >= r.Left && other.Right() <= r.Right()
}
