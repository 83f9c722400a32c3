package server

import (
	"fmt"

	"github.com/babysitterd/chasm/internal/entity"
	"github.com/babysitterd/chasm/internal/game"
	"github.com/babysitterd/chasm/internal/logger"
)

// collaborators answers the session's blocking prompts over the
// websocket. The session field is bound after construction because the
// session itself needs the collaborators to be created.
type collaborators struct {
	client  *client
	session *game.Session
}

func newCollaborators(c *client) *collaborators {
	return &collaborators{client: c}
}

func (cb *collaborators) bind(s *game.Session) {
	cb.session = s
}

// ChooseUpgrade presents the level-up menu and waits for a pick. A lost
// connection degrades to the first option so the session can unwind; the
// run loop notices the dead socket on its next read.
func (cb *collaborators) ChooseUpgrade(opts game.UpgradeOptions) (game.Upgrade, bool) {
	err := cb.client.send(serverMessage{
		Type:   "prompt",
		Prompt: "level_up",
		Options: []string{
			fmt.Sprintf("Constitution (+20 HP, from %d)", opts.BaseMaxHP),
			fmt.Sprintf("Strength (+1 attack, from %d)", opts.BasePower),
			fmt.Sprintf("Agility (+1 defense, from %d)", opts.BaseDefense),
		},
	})
	if err != nil {
		return game.UpgradeConstitution, true
	}

	msg, err := cb.client.read()
	if err != nil {
		logger.Warning("level-up prompt aborted", "error", err)
		return game.UpgradeConstitution, true
	}
	if msg.Type != "choice" {
		return 0, false
	}
	return game.Upgrade(msg.Index), true
}

// TargetMonster asks the client to click a monster and keeps asking until
// the pick names a visible fighter within range, or the player cancels.
func (cb *collaborators) TargetMonster(maxRange int) (entity.ID, bool) {
	for {
		x, y, ok := cb.promptTarget("target_monster")
		if !ok {
			return 0, false
		}
		if id, found := cb.monsterAt(x, y, maxRange); found {
			return id, true
		}
		if err := cb.client.sendError("No targetable monster there."); err != nil {
			return 0, false
		}
	}
}

// TargetTile asks the client to click a tile and keeps asking until the
// pick is visible, or the player cancels.
func (cb *collaborators) TargetTile() (int, int, bool) {
	for {
		x, y, ok := cb.promptTarget("target_tile")
		if !ok {
			return 0, 0, false
		}
		if cb.session.IsVisible(x, y) {
			return x, y, true
		}
		if err := cb.client.sendError("You can't target a tile you can't see."); err != nil {
			return 0, 0, false
		}
	}
}

func (cb *collaborators) promptTarget(prompt string) (int, int, bool) {
	if err := cb.client.send(serverMessage{Type: "prompt", Prompt: prompt}); err != nil {
		return 0, 0, false
	}
	msg, err := cb.client.read()
	if err != nil || msg.Cancel || msg.Type != "target" {
		return 0, 0, false
	}
	return msg.X, msg.Y, true
}

// monsterAt finds a visible living monster on the given tile within range
// of the player.
func (cb *collaborators) monsterAt(x, y, maxRange int) (entity.ID, bool) {
	if !cb.session.IsVisible(x, y) {
		return 0, false
	}
	player := cb.session.Player()
	if player.Distance(x, y) > float64(maxRange) {
		return 0, false
	}
	for _, id := range cb.session.Entities.IDs() {
		if id == cb.session.PlayerID {
			continue
		}
		e := cb.session.Entities.Get(id)
		if e == nil || e.Fighter == nil || e.X != x || e.Y != y {
			continue
		}
		return id, true
	}
	return 0, false
}
