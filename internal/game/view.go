package game

import "github.com/babysitterd/chasm/internal/entity"

// TileView is the per-tile slice of the read-only world view.
type TileView struct {
	Blocked    bool `json:"blocked"`
	Explored   bool `json:"explored"`
	BlockSight bool `json:"block_sight"`
	Visible    bool `json:"visible"`
}

// EntityView is the renderable projection of one entity.
type EntityView struct {
	X             int          `json:"x"`
	Y             int          `json:"y"`
	Glyph         string       `json:"glyph"`
	Color         entity.Color `json:"color"`
	Name          string       `json:"name"`
	AlwaysVisible bool         `json:"always_visible"`
}

// InventoryView is one carried item as shown in inventory menus.
type InventoryView struct {
	Name     string `json:"name"`
	Equipped bool   `json:"equipped"`
	Slot     string `json:"slot,omitempty"`
}

// Frame is the read-only view handed to the rendering collaborator. It
// carries no mutable references into the session.
type Frame struct {
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	Tiles        [][]TileView    `json:"tiles"`
	Entities     []EntityView    `json:"entities"`
	Messages     []Message       `json:"messages"` // newest first
	Inventory    []InventoryView `json:"inventory"`
	HP           int             `json:"hp"`
	MaxHP        int             `json:"max_hp"`
	Power        int             `json:"power"`
	Defense      int             `json:"defense"`
	Level        int             `json:"level"`
	XP           int             `json:"xp"`
	NextLevelXP  int             `json:"next_level_xp"`
	DungeonLevel int             `json:"dungeon_level"`
	PlayerX      int             `json:"player_x"`
	PlayerY      int             `json:"player_y"`
	PlayerAlive  bool            `json:"player_alive"`
}

// Render builds the current frame. Entities outside the field of view are
// omitted unless flagged always-visible; blocking entities come last so
// they draw on top of corpses and items.
func (s *Session) Render(maxMessages int) *Frame {
	player := s.Player()
	bonus := s.bonusFor(player)

	f := &Frame{
		Width:        s.Map.Width,
		Height:       s.Map.Height,
		Messages:     s.Messages.Newest(maxMessages),
		MaxHP:        player.MaxHP(bonus),
		Power:        player.Power(bonus),
		Defense:      player.Defense(bonus),
		Level:        player.Level,
		NextLevelXP:  LevelUpXP(player.Level),
		DungeonLevel: s.DungeonLevel,
		PlayerX:      player.X,
		PlayerY:      player.Y,
		PlayerAlive:  player.Alive,
	}
	if player.Fighter != nil {
		f.HP = player.Fighter.HP
		f.XP = player.Fighter.XP
	}

	f.Tiles = make([][]TileView, s.Map.Width)
	for x := 0; x < s.Map.Width; x++ {
		f.Tiles[x] = make([]TileView, s.Map.Height)
		for y := 0; y < s.Map.Height; y++ {
			tile := s.Map.At(x, y)
			f.Tiles[x][y] = TileView{
				Blocked:    tile.Blocked,
				Explored:   tile.Explored,
				BlockSight: tile.BlockSight,
				Visible:    s.IsVisible(x, y),
			}
		}
	}

	var blocking []EntityView
	for _, id := range s.Entities.IDs() {
		e := s.Entities.Get(id)
		if !e.AlwaysVisible && !s.IsVisible(e.X, e.Y) {
			continue
		}
		view := EntityView{X: e.X, Y: e.Y, Glyph: e.Glyph, Color: e.Color, Name: e.Name, AlwaysVisible: e.AlwaysVisible}
		if e.Blocks {
			blocking = append(blocking, view)
		} else {
			f.Entities = append(f.Entities, view)
		}
	}
	f.Entities = append(f.Entities, blocking...)

	for _, item := range s.Inventory {
		view := InventoryView{Name: item.Name}
		if item.Equipment != nil && item.Equipment.Equipped {
			view.Equipped = true
			view.Slot = item.Equipment.Slot.String()
		}
		f.Inventory = append(f.Inventory, view)
	}

	return f
}
