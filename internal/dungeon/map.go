package dungeon

// Map is a fixed-size grid of tiles. It is regenerated wholesale on every
// dungeon-level transition and never patched in place.
type Map struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"` // column-major: Tiles[x][y]
}

// NewMap creates a map of the given size filled with wall tiles.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = Wall()
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the position lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at the given position. The caller must
// ensure the position is in bounds.
func (m *Map) At(x, y int) *Tile {
	return &m.Tiles[x][y]
}

// carveRoom empties the interior of the room, leaving its one-tile border
// as wall so adjacent rooms never merge.
func (m *Map) carveRoom(r Rect) {
	for x := r.X1 + 1; x < r.X2; x++ {
		for y := r.Y1 + 1; y < r.Y2; y++ {
			m.Tiles[x][y] = Empty()
		}
	}
}

// carveHTunnel empties a horizontal corridor between x1 and x2 inclusive.
func (m *Map) carveHTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.Tiles[x][y] = Empty()
	}
}

// carveVTunnel empties a vertical corridor between y1 and y2 inclusive.
func (m *Map) carveVTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.Tiles[x][y] = Empty()
	}
}
