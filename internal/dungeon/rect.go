package dungeon

// Rect is an axis-aligned room bounding box. X2/Y2 are the far edge
// (X1+width, Y1+height).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the rectangle's center point.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether two rectangles overlap. The comparison is
// inclusive, so rectangles that merely touch edges count as overlapping
// and accepted rooms never share even a border tile.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
