package game

import "github.com/babysitterd/chasm/internal/dungeon"

// Config holds the simulation tunables. Zero values fall back to the
// classic defaults, so partial YAML sections work.
type Config struct {
	Dungeon dungeon.Params `yaml:"dungeon"`
	Player  PlayerConfig   `yaml:"player"`

	// LightRadius is handed to the visibility collaborator.
	LightRadius int `yaml:"light_radius"`

	// InventoryCap is the maximum number of carried items.
	InventoryCap int `yaml:"inventory_cap"`
}

// PlayerConfig holds the player's starting base stats.
type PlayerConfig struct {
	MaxHP   int `yaml:"max_hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
}

// DefaultConfig returns the classic starting configuration.
func DefaultConfig() Config {
	return Config{
		Dungeon:      dungeon.DefaultParams(),
		Player:       PlayerConfig{MaxHP: 100, Defense: 1, Power: 2},
		LightRadius:  10,
		InventoryCap: 26,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Player.MaxHP <= 0 {
		c.Player = def.Player
	}
	if c.LightRadius <= 0 {
		c.LightRadius = def.LightRadius
	}
	if c.InventoryCap <= 0 {
		c.InventoryCap = def.InventoryCap
	}
	return c
}
