// Package game ties the simulation together: it owns the session state
// (map, entities, inventory, message log) and sequences turns. Rendering,
// raw input and visibility computation live outside; the session only
// exchanges read-only views, discrete intents and the visibility
// predicate with them.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/babysitterd/chasm/internal/dungeon"
	"github.com/babysitterd/chasm/internal/entity"
)

// Visibility is the boundary to the visibility collaborator. The core
// hands it the player position and light radius and consumes only the
// predicate.
type Visibility interface {
	Recompute(m *dungeon.Map, originX, originY, radius int)
	IsVisible(x, y int) bool
}

// Targeter is the boundary to the interactive targeting collaborator.
// Both calls block until the player selects or cancels; the core does no
// work while they run.
type Targeter interface {
	// TargetMonster returns a visible monster within range of the player.
	TargetMonster(maxRange int) (entity.ID, bool)
	// TargetTile returns a visible tile position.
	TargetTile() (x, y int, ok bool)
}

// Session is the whole simulation state for one game.
type Session struct {
	Map          *dungeon.Map
	Messages     *MessageLog
	Inventory    []*entity.Entity
	DungeonLevel int
	Entities     *entity.Arena
	PlayerID     entity.ID

	cfg      Config
	rng      *rand.Rand
	gen      *dungeon.Generator
	vision   Visibility
	chooser  UpgradeChooser
	targeter Targeter
}

// Collaborators bundles the external collaborators a session needs.
type Collaborators struct {
	Vision   Visibility
	Chooser  UpgradeChooser
	Targeter Targeter
}

func (c Collaborators) validate() error {
	if c.Vision == nil {
		return errors.New("game: visibility collaborator is required")
	}
	if c.Chooser == nil {
		return errors.New("game: upgrade chooser collaborator is required")
	}
	if c.Targeter == nil {
		return errors.New("game: targeting collaborator is required")
	}
	return nil
}

// NewSession starts a fresh game on dungeon level 1: a new player with the
// configured base stats and an equipped dagger, dropped into a freshly
// generated map.
func NewSession(cfg Config, rng *rand.Rand, collab Collaborators) (*Session, error) {
	if err := collab.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	arena := entity.NewArena()
	player := entity.NewPlayer(0, 0, cfg.Player.MaxHP, cfg.Player.Defense, cfg.Player.Power)
	playerID := arena.Add(player)

	gen := dungeon.NewGenerator(cfg.Dungeon, rng)
	m, err := gen.Generate(1, arena, playerID)
	if err != nil {
		return nil, fmt.Errorf("game: generating first level: %w", err)
	}

	s := &Session{
		Map:          m,
		Messages:     NewMessageLog(),
		DungeonLevel: 1,
		Entities:     arena,
		PlayerID:     playerID,
		cfg:          cfg,
		rng:          rng,
		gen:          gen,
		vision:       collab.Vision,
		chooser:      collab.Chooser,
		targeter:     collab.Targeter,
	}

	s.Inventory = append(s.Inventory, entity.NewDagger())
	s.Messages.Add("Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings.", entity.ColorRed)
	s.UpdateVision()

	return s, nil
}

// Player returns the player entity.
func (s *Session) Player() *entity.Entity {
	return s.Entities.Get(s.PlayerID)
}

// UpdateVision asks the visibility collaborator to recompute the field of
// view from the player's position and folds the visible set back into the
// map's explored flags.
func (s *Session) UpdateVision() {
	player := s.Player()
	s.vision.Recompute(s.Map, player.X, player.Y, s.cfg.LightRadius)
	for x := 0; x < s.Map.Width; x++ {
		for y := 0; y < s.Map.Height; y++ {
			if s.vision.IsVisible(x, y) {
				s.Map.At(x, y).Explored = true
			}
		}
	}
}

// IsBlocked reports whether a position is off-map, a wall, or occupied by
// a blocking entity.
func (s *Session) IsBlocked(x, y int) bool {
	if !s.Map.InBounds(x, y) {
		return true
	}
	if s.Map.At(x, y).Blocked {
		return true
	}
	for _, id := range s.Entities.IDs() {
		e := s.Entities.Get(id)
		if e.Blocks && e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// IsVisible reports whether the tile is inside the current field of view.
func (s *Session) IsVisible(x, y int) bool {
	return s.vision.IsVisible(x, y)
}

// nextLevel advances to the next dungeon floor: heal half the effective
// max HP, regenerate the map (discarding every transient entity) and
// start exploration over.
func (s *Session) nextLevel() error {
	player := s.Player()

	s.Messages.Add("You take a moment to rest, and recover your strength.", entity.ColorViolet)
	player.Heal(player.MaxHP(s.bonusFor(player))/2, s.bonusFor(player))

	s.Messages.Add("After a rare moment of peace, you descend deeper into the heart of the dungeon...", entity.ColorRed)
	s.DungeonLevel++

	m, err := s.gen.Generate(s.DungeonLevel, s.Entities, s.PlayerID)
	if err != nil {
		return fmt.Errorf("game: generating level %d: %w", s.DungeonLevel, err)
	}
	s.Map = m
	s.UpdateVision()
	return nil
}
