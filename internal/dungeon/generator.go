package dungeon

import (
	"errors"
	"math/rand"

	"github.com/babysitterd/chasm/internal/entity"
)

// ErrGenerationExhausted is returned when no room placement attempt
// succeeds. Without a single room there is nowhere to put the player, so
// this is fatal for level construction.
var ErrGenerationExhausted = errors.New("dungeon: no rooms could be placed")

// Generator builds dungeon levels. It owns its random source so a seeded
// generator reproduces the same dungeon.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator creates a generator with the given parameters and random
// source.
func NewGenerator(params Params, rng *rand.Rand) *Generator {
	return &Generator{params: params.withDefaults(), rng: rng}
}

// Generate builds the map for the given dungeon level and repopulates the
// arena: everything but the player is discarded, then monsters and items
// are spawned room by room. The player is moved to the first accepted
// room's center and the stairs marker lands on the last room's center.
func (g *Generator) Generate(level int, arena *entity.Arena, playerID entity.ID) (*Map, error) {
	m := NewMap(g.params.MapWidth, g.params.MapHeight)

	rooms := g.placeRooms(m)
	if len(rooms) == 0 {
		return nil, ErrGenerationExhausted
	}
	// Fresh start: only the player crosses level boundaries.
	arena.Reset(playerID)
	if player := arena.Get(playerID); player != nil {
		px, py := rooms[0].Center()
		player.SetPos(px, py)
	}

	for _, room := range rooms {
		m.carveRoom(room)
		g.populateRoom(room, m, arena, level)
	}

	lx, ly := rooms[len(rooms)-1].Center()
	arena.Add(entity.NewStairs(lx, ly))

	return m, nil
}

// placeRooms rolls room placements, rejecting any that touch an already
// accepted room, and carves the connecting tunnels as it goes. Each new
// room links to the previous one with an L-shaped tunnel, horizontal-first
// or vertical-first at even odds.
func (g *Generator) placeRooms(m *Map) []Rect {
	var rooms []Rect

	for i := 0; i < g.params.MaxRooms; i++ {
		w := g.rng.Intn(g.params.RoomMaxSize-g.params.RoomMinSize+1) + g.params.RoomMinSize
		h := g.rng.Intn(g.params.RoomMaxSize-g.params.RoomMinSize+1) + g.params.RoomMinSize
		if w >= g.params.MapWidth || h >= g.params.MapHeight {
			continue
		}
		x := g.rng.Intn(g.params.MapWidth - w)
		y := g.rng.Intn(g.params.MapHeight - h)

		room := NewRect(x, y, w, h)

		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		if len(rooms) > 0 {
			px, py := rooms[len(rooms)-1].Center()
			cx, cy := room.Center()
			if g.rng.Intn(2) == 0 {
				m.carveHTunnel(px, cx, py)
				m.carveVTunnel(py, cy, cx)
			} else {
				m.carveVTunnel(py, cy, px)
				m.carveHTunnel(px, cx, cy)
			}
		}

		rooms = append(rooms, room)
	}

	return rooms
}

// populateRoom rolls monster and item spawns for one carved room.
// Occupied target tiles are skipped rather than retried.
func (g *Generator) populateRoom(room Rect, m *Map, arena *entity.Arena, level int) {
	monsters := monsterTable(level)
	numMonsters := g.rng.Intn(maxMonstersPerRoom(level) + 1)
	for i := 0; i < numMonsters; i++ {
		x := g.randInRoom(room.X1, room.X2)
		y := g.randInRoom(room.Y1, room.Y2)
		if g.isOccupied(x, y, m, arena) {
			continue
		}
		arena.Add(spawnMonster(pickWeighted(g.rng, monsters), x, y))
	}

	items := itemTable(level)
	numItems := g.rng.Intn(maxItemsPerRoom(level) + 1)
	for i := 0; i < numItems; i++ {
		x := g.randInRoom(room.X1, room.X2)
		y := g.randInRoom(room.Y1, room.Y2)
		if g.isOccupied(x, y, m, arena) {
			continue
		}
		item := entity.NewItem(pickWeighted(g.rng, items), x, y)
		item.AlwaysVisible = true
		arena.Add(item)
	}
}

// randInRoom samples a coordinate strictly inside the room border.
func (g *Generator) randInRoom(lo, hi int) int {
	return g.rng.Intn(hi-lo-1) + lo + 1
}

// isOccupied reports whether a tile is a wall or holds a blocking entity.
func (g *Generator) isOccupied(x, y int, m *Map, arena *entity.Arena) bool {
	if m.At(x, y).Blocked {
		return true
	}
	for _, id := range arena.IDs() {
		e := arena.Get(id)
		if e.Blocks && e.X == x && e.Y == y {
			return true
		}
	}
	return false
}
