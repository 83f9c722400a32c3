package game

import (
	"github.com/babysitterd/chasm/internal/ai"
	"github.com/babysitterd/chasm/internal/entity"
)

// Outcome classifies what a player intent did to the turn cycle.
type Outcome int

const (
	// DidntTakeTurn covers menu browsing and informational commands:
	// monsters do not move and no world tick is consumed.
	DidntTakeTurn Outcome = iota
	// TookTurn consumed a world tick; every autonomous entity gets one
	// state-machine advance.
	TookTurn
	// Exit ends the session loop. The caller saves the session state.
	Exit
)

// Intent is a discrete, already-decoded player command. Raw key and mouse
// events never reach the core.
type Intent interface {
	isIntent()
}

// MoveIntent moves the player one step, or attacks what stands there.
type MoveIntent struct{ DX, DY int }

// WaitIntent passes the turn without acting.
type WaitIntent struct{}

// PickUpIntent picks up the item on the player's tile.
type PickUpIntent struct{}

// DropIntent drops the inventory item at the given index.
type DropIntent struct{ Index int }

// UseItemIntent uses the inventory item at the given index.
type UseItemIntent struct{ Index int }

// DescendIntent takes the stairs down, when standing on them.
type DescendIntent struct{}

// ExitIntent ends the session.
type ExitIntent struct{}

// UIIntent is any presentation-side command the turn logic ignores.
type UIIntent struct{ Name string }

func (MoveIntent) isIntent()    {}
func (WaitIntent) isIntent()    {}
func (PickUpIntent) isIntent()  {}
func (DropIntent) isIntent()    {}
func (UseItemIntent) isIntent() {}
func (DescendIntent) isIntent() {}
func (ExitIntent) isIntent()    {}
func (UIIntent) isIntent()      {}

// Step runs one scheduler cycle: the pending level-up check, the player's
// intent to completion, and, if a turn was consumed, exactly one AI
// advance per autonomous entity in collection order. Vision is refreshed
// last so the next cycle's AI sweep sees the player's new position.
func (s *Session) Step(intent Intent) (Outcome, error) {
	s.checkLevelUp()

	outcome, err := s.handleIntent(intent)
	if err != nil {
		return outcome, err
	}

	if outcome == TookTurn && s.Player().Alive {
		s.aiSweep()
	}
	s.UpdateVision()
	return outcome, nil
}

// handleIntent executes a single intent. Turn-consuming actions are only
// honored while the player lives; a dead player can still exit.
func (s *Session) handleIntent(intent Intent) (Outcome, error) {
	if _, ok := intent.(ExitIntent); ok {
		return Exit, nil
	}
	if !s.Player().Alive {
		return DidntTakeTurn, nil
	}

	switch it := intent.(type) {
	case MoveIntent:
		s.moveOrAttack(it.DX, it.DY)
		return TookTurn, nil
	case WaitIntent:
		return TookTurn, nil
	case PickUpIntent:
		s.pickUp()
		return DidntTakeTurn, nil
	case DropIntent:
		s.dropItem(it.Index)
		return DidntTakeTurn, nil
	case UseItemIntent:
		s.useItem(it.Index)
		return DidntTakeTurn, nil
	case DescendIntent:
		return DidntTakeTurn, s.descend()
	default:
		// UI intents and anything unrecognized never consume a tick.
		return DidntTakeTurn, nil
	}
}

// moveOrAttack steps the player, attacking instead when a combat-capable
// entity occupies the destination.
func (s *Session) moveOrAttack(dx, dy int) {
	player := s.Player()
	nx := player.X + dx
	ny := player.Y + dy

	for _, id := range s.Entities.IDs() {
		e := s.Entities.Get(id)
		if e != player && e.Fighter != nil && e.X == nx && e.Y == ny {
			s.attack(player, e)
			return
		}
	}

	if !s.IsBlocked(nx, ny) {
		player.SetPos(nx, ny)
	}
}

// descend moves the player one dungeon level down, valid only while
// standing on the stairs tile. Standing anywhere else degrades to a
// no-op.
func (s *Session) descend() error {
	player := s.Player()
	for _, id := range s.Entities.IDs() {
		e := s.Entities.Get(id)
		if e.Name == "stairs" && e.X == player.X && e.Y == player.Y {
			return s.nextLevel()
		}
	}
	return nil
}

// aiSweep advances every non-player, AI-bearing entity exactly once, in
// collection order. There is no initiative: each transition completes
// before the next entity acts.
func (s *Session) aiSweep() {
	for _, id := range s.Entities.IDs() {
		if id == s.PlayerID {
			continue
		}
		e := s.Entities.Get(id)
		if e == nil || e.AI == nil {
			continue
		}
		e.AI = ai.TakeTurn(e.AI, e, s, s.rng)
	}
}

var _ ai.World = (*Session)(nil)
var _ entity.Log = (*MessageLog)(nil)
