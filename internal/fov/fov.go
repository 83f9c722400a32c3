// Package fov computes radius-limited, wall-aware fields of view. It is a
// collaborator of the simulation core: the core hands it the player
// position and light radius and consumes only the IsVisible predicate.
package fov

import "github.com/babysitterd/chasm/internal/dungeon"

// Map holds the visibility state for the current dungeon map.
type Map struct {
	width   int
	height  int
	visible [][]bool
}

// New creates an empty field of view. Recompute must run before IsVisible
// reports anything as seen.
func New() *Map {
	return &Map{}
}

// Recompute recalculates visibility from the given origin by casting rays
// at every tile within the light radius. Walls that border lit floor are
// themselves lit.
func (f *Map) Recompute(m *dungeon.Map, originX, originY, radius int) {
	if f.width != m.Width || f.height != m.Height {
		f.width = m.Width
		f.height = m.Height
		f.visible = make([][]bool, f.width)
		for x := range f.visible {
			f.visible[x] = make([]bool, f.height)
		}
	}
	for x := range f.visible {
		for y := range f.visible[x] {
			f.visible[x][y] = false
		}
	}

	for x := originX - radius; x <= originX+radius; x++ {
		for y := originY - radius; y <= originY+radius; y++ {
			if !m.InBounds(x, y) {
				continue
			}
			dx := x - originX
			dy := y - originY
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if f.lineClear(m, originX, originY, x, y) {
				f.visible[x][y] = true
			}
		}
	}
}

// IsVisible reports whether the tile was visible at the last Recompute.
func (f *Map) IsVisible(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.visible[x][y]
}

// lineClear walks the Bresenham line from the origin to the target and
// reports whether sight reaches the target. The target tile itself may be
// sight-blocking; only tiles strictly between matter.
func (f *Map) lineClear(m *dungeon.Map, x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		if (x != x0 || y != y0) && m.At(x, y).BlockSight {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
