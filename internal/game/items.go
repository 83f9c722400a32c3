package game

import (
	"fmt"

	"github.com/babysitterd/chasm/internal/ai"
	"github.com/babysitterd/chasm/internal/entity"
)

// Item effect constants, straight from the classic rules.
const (
	healAmount      = 40
	lightningDamage = 40
	lightningRange  = 5
	confuseRange    = 8
	confuseTurns    = 10
	fireballRadius  = 3
	fireballDamage  = 25
)

// useResult classifies what using an item did to it.
type useResult int

const (
	useCancelled useResult = iota
	usedUp
	usedAndKept
)

// useItem uses the inventory item at the given index. Consumables are
// removed on success; equipment toggles stay; cancellations leave
// everything untouched.
func (s *Session) useItem(index int) {
	if index < 0 || index >= len(s.Inventory) {
		s.Messages.Add("No such inventory item.", entity.ColorRed)
		return
	}

	item := s.Inventory[index]
	if item.Item == entity.ItemNone {
		s.Messages.Add(fmt.Sprintf("The %s can't be used.", item.Name), entity.ColorWhite)
		return
	}

	var result useResult
	switch item.Item {
	case entity.ItemHeal:
		result = s.castHeal()
	case entity.ItemLightning:
		result = s.castLightning()
	case entity.ItemConfusion:
		result = s.castConfusion()
	case entity.ItemFireball:
		result = s.castFireball()
	case entity.ItemSword, entity.ItemShield:
		result = s.toggleEquipment(index)
	default:
		s.Messages.Add(fmt.Sprintf("The %s can't be used.", item.Name), entity.ColorWhite)
		return
	}

	switch result {
	case usedUp:
		s.Inventory = append(s.Inventory[:index], s.Inventory[index+1:]...)
	case useCancelled:
		s.Messages.Add("Cancelled.", entity.ColorWhite)
	}
}

// castHeal restores the player's hit points, refusing at full health.
func (s *Session) castHeal() useResult {
	player := s.Player()
	if player.Fighter == nil {
		return useCancelled
	}
	if player.Fighter.HP == player.MaxHP(s.bonusFor(player)) {
		s.Messages.Add("You are already at full health.", entity.ColorRed)
		return useCancelled
	}
	s.Messages.Add("Your wounds start to feel better!", entity.ColorLightViolet)
	player.Heal(healAmount, s.bonusFor(player))
	return usedUp
}

// castLightning strikes the closest visible monster within range.
func (s *Session) castLightning() useResult {
	targetID, ok := s.closestMonster(lightningRange)
	if !ok {
		s.Messages.Add("No enemy is close enough to strike.", entity.ColorRed)
		return useCancelled
	}

	target := s.Entities.Get(targetID)
	s.Messages.Add(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		target.Name, lightningDamage), entity.ColorLightBlue)
	if xp, killed := s.damageEntity(target, lightningDamage); killed {
		s.Player().Fighter.XP += xp
	}
	return usedUp
}

// castConfusion asks the targeting collaborator for a monster and
// overrides its behavior with a timed confusion.
func (s *Session) castConfusion() useResult {
	s.Messages.Add("Left-click an enemy to confuse it, or right-click to cancel.", entity.ColorLightCyan)
	targetID, ok := s.targeter.TargetMonster(confuseRange)
	if !ok {
		return useCancelled
	}
	target := s.Entities.Get(targetID)
	if target == nil || target.Fighter == nil {
		return useCancelled
	}

	s.Messages.Add(fmt.Sprintf("The eyes of %s look vacant, as he starts to stumble around!", target.Name), entity.ColorLightGreen)
	target.AI = ai.Confuse(target.AI, confuseTurns)
	return usedUp
}

// castFireball asks the targeting collaborator for a tile and burns every
// fighter in the blast radius, the player included. Self-inflicted damage
// never awards XP.
func (s *Session) castFireball() useResult {
	s.Messages.Add("Left-click a target tile for the fireball, or right-click to cancel.", entity.ColorLightCyan)
	x, y, ok := s.targeter.TargetTile()
	if !ok {
		return useCancelled
	}

	s.Messages.Add(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", fireballRadius), entity.ColorOrange)

	xpToGain := 0
	for _, id := range s.Entities.IDs() {
		e := s.Entities.Get(id)
		if e == nil || e.Fighter == nil || e.Distance(x, y) > fireballRadius {
			continue
		}
		s.Messages.Add(fmt.Sprintf("The %s gets burned for %d hit points.", e.Name, fireballDamage), entity.ColorOrange)
		if xp, killed := s.damageEntity(e, fireballDamage); killed && id != s.PlayerID {
			xpToGain += xp
		}
	}
	if player := s.Player(); player.Fighter != nil {
		player.Fighter.XP += xpToGain
	}
	return usedUp
}

// toggleEquipment equips or dequips gear, displacing whatever currently
// occupies the slot.
func (s *Session) toggleEquipment(index int) useResult {
	item := s.Inventory[index]
	if item.Equipment == nil {
		return useCancelled
	}

	if item.Equipment.Equipped {
		item.Dequip(s.Messages)
	} else {
		if current := entity.EquippedInSlot(s.Inventory, item.Equipment.Slot); current != -1 {
			s.Inventory[current].Dequip(s.Messages)
		}
		item.Equip(s.Messages)
	}
	return usedAndKept
}

// closestMonster finds the nearest visible AI-bearing fighter within
// range of the player.
func (s *Session) closestMonster(maxRange int) (entity.ID, bool) {
	player := s.Player()
	var closest entity.ID
	found := false
	closestDist := float64(maxRange) + 1

	for _, id := range s.Entities.IDs() {
		if id == s.PlayerID {
			continue
		}
		e := s.Entities.Get(id)
		if e.Fighter == nil || e.AI == nil || !s.IsVisible(e.X, e.Y) {
			continue
		}
		if dist := player.DistanceTo(e); dist < closestDist {
			closest = id
			closestDist = dist
			found = true
		}
	}
	return closest, found
}
