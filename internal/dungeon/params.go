package dungeon

// Params holds the generator's tunables. Zero values are replaced by the
// defaults below, so a partial YAML section is fine.
type Params struct {
	MapWidth    int `yaml:"map_width"`
	MapHeight   int `yaml:"map_height"`
	RoomMinSize int `yaml:"room_min_size"`
	RoomMaxSize int `yaml:"room_max_size"`
	MaxRooms    int `yaml:"max_rooms"`
}

// DefaultParams returns the classic 80x43 dungeon configuration.
func DefaultParams() Params {
	return Params{
		MapWidth:    80,
		MapHeight:   43,
		RoomMinSize: 6,
		RoomMaxSize: 10,
		MaxRooms:    30,
	}
}

// withDefaults fills unset fields from DefaultParams.
func (p Params) withDefaults() Params {
	def := DefaultParams()
	if p.MapWidth <= 0 {
		p.MapWidth = def.MapWidth
	}
	if p.MapHeight <= 0 {
		p.MapHeight = def.MapHeight
	}
	if p.RoomMinSize <= 0 {
		p.RoomMinSize = def.RoomMinSize
	}
	if p.RoomMaxSize <= 0 {
		p.RoomMaxSize = def.RoomMaxSize
	}
	if p.MaxRooms <= 0 {
		p.MaxRooms = def.MaxRooms
	}
	return p
}
