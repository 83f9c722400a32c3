package game

import (
	"fmt"

	"github.com/babysitterd/chasm/internal/ai"
	"github.com/babysitterd/chasm/internal/entity"
)

// bonusFor returns the equipment bonus that applies to an entity. Only
// the player draws bonuses from an inventory; everything else fights on
// base stats.
func (s *Session) bonusFor(e *entity.Entity) entity.Bonus {
	if e == s.Player() {
		return entity.SumEquipped(s.Inventory)
	}
	return entity.Bonus{}
}

// PlayerBonus returns the player's current aggregate equipment bonus.
func (s *Session) PlayerBonus() entity.Bonus {
	return entity.SumEquipped(s.Inventory)
}

// attack resolves one melee attack: damage is the attacker's effective
// power minus the target's effective defense, never negative. The killing
// blow credits the victim's XP reward to the attacker.
func (s *Session) attack(attacker, target *entity.Entity) {
	damage := attacker.Power(s.bonusFor(attacker)) - target.Defense(s.bonusFor(target))
	if damage > 0 {
		s.Messages.Add(fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, target.Name, damage), entity.ColorWhite)
		if xp, killed := s.damageEntity(target, damage); killed && attacker.Fighter != nil {
			attacker.Fighter.XP += xp
		}
	} else {
		s.Messages.Add(fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, target.Name), entity.ColorWhite)
	}
}

// damageEntity applies damage and handles the alive-to-dead transition,
// which fires exactly once: the first time hit points reach zero while
// the entity is still alive. The victim's XP reward is returned so the
// caller can credit whoever dealt the killing blow.
func (s *Session) damageEntity(target *entity.Entity, damage int) (xp int, killed bool) {
	if target.Fighter == nil {
		return 0, false
	}
	target.Fighter.Damage(damage)
	if !target.Alive || target.Fighter.HP > 0 {
		return 0, false
	}

	target.Alive = false
	xp = target.Fighter.XP
	s.applyDeath(target)
	return xp, true
}

// applyDeath dispatches over the closed set of death kinds.
func (s *Session) applyDeath(e *entity.Entity) {
	switch e.Fighter.OnDeath {
	case entity.DeathPlayer:
		s.Messages.Add("You died!", entity.ColorRed)
		// The player stays in the world as a corpse but keeps its
		// Fighter so the final stats remain readable.
		e.Glyph = "%"
		e.Color = entity.ColorDarkRed
	default:
		s.Messages.Add(fmt.Sprintf("%s is dead! You gain %d experience points.", e.Name, e.Fighter.XP), entity.ColorOrange)
		e.IntoRemains()
	}
}

// ai.World implementation: the slice of the session an AI tick may touch.

// PlayerPos returns the player's position.
func (s *Session) PlayerPos() (int, int) {
	return s.Player().Pos()
}

// PlayerAlive reports whether the player can still be attacked.
func (s *Session) PlayerAlive() bool {
	return s.Player().Alive
}

// Attack resolves a monster's melee attack against the player.
func (s *Session) Attack(a ai.Actor) {
	attacker, ok := a.(*entity.Entity)
	if !ok {
		return
	}
	s.attack(attacker, s.Player())
}

// Announce records an AI narrative message in the session log.
func (s *Session) Announce(text string) {
	s.Messages.Add(text, entity.ColorRed)
}
