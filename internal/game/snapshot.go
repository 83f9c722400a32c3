package game

import (
	"errors"
	"math/rand"

	"github.com/babysitterd/chasm/internal/dungeon"
	"github.com/babysitterd/chasm/internal/entity"
)

// Snapshot is the complete serializable session state: one monolithic
// document with no schema version and no partial form. A structural
// change to the data model invalidates old documents.
type Snapshot struct {
	Map          *dungeon.Map     `json:"map"`
	Messages     *MessageLog      `json:"messages"`
	Inventory    []*entity.Entity `json:"inventory"`
	DungeonLevel int              `json:"dungeon_level"`
	Entities     *entity.Arena    `json:"entities"`
	PlayerID     entity.ID        `json:"player_id"`
}

// Snapshot captures the session state. The returned document shares no
// ownership semantics with the live session; callers persist it before
// mutating the session further.
func (s *Session) Snapshot() *Snapshot {
	return &Snapshot{
		Map:          s.Map,
		Messages:     s.Messages,
		Inventory:    s.Inventory,
		DungeonLevel: s.DungeonLevel,
		Entities:     s.Entities,
		PlayerID:     s.PlayerID,
	}
}

// Restore reconstructs a session from a snapshot, reattaching the
// collaborators and recomputing visibility. Explored tiles come back from
// the snapshot itself.
func Restore(snap *Snapshot, cfg Config, rng *rand.Rand, collab Collaborators) (*Session, error) {
	if err := collab.validate(); err != nil {
		return nil, err
	}
	if snap == nil || snap.Map == nil || snap.Entities == nil {
		return nil, errors.New("game: snapshot is incomplete")
	}
	if snap.Entities.Get(snap.PlayerID) == nil {
		return nil, errors.New("game: snapshot has no player entity")
	}
	cfg = cfg.withDefaults()

	s := &Session{
		Map:          snap.Map,
		Messages:     snap.Messages,
		Inventory:    snap.Inventory,
		DungeonLevel: snap.DungeonLevel,
		Entities:     snap.Entities,
		PlayerID:     snap.PlayerID,
		cfg:          cfg,
		rng:          rng,
		gen:          dungeon.NewGenerator(cfg.Dungeon, rng),
		vision:       collab.Vision,
		chooser:      collab.Chooser,
		targeter:     collab.Targeter,
	}
	if s.Messages == nil {
		s.Messages = NewMessageLog()
	}
	s.UpdateVision()
	return s, nil
}
