// Package dungeon provides the tile grid model and the randomized
// room-and-tunnel level generator.
package dungeon

// Tile is a single map cell.
type Tile struct {
	// Blocked stops movement through the tile.
	Blocked bool `json:"blocked"`
	// Explored is set by the visibility collaborator once the tile has
	// been seen. It is never cleared for the lifetime of the map.
	Explored bool `json:"explored"`
	// BlockSight stops line of sight through the tile.
	BlockSight bool `json:"block_sight"`
}

// Wall returns the solid tile every map cell starts as.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// Empty returns a carved, walkable tile.
func Empty() Tile {
	return Tile{}
}
