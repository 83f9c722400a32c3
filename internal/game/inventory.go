package game

import (
	"fmt"

	"github.com/babysitterd/chasm/internal/entity"
)

// pickUp transfers the item on the player's tile from the world into the
// inventory. A full inventory rejects the pickup with a log message and
// no other state change.
func (s *Session) pickUp() {
	player := s.Player()

	var itemID entity.ID
	var item *entity.Entity
	for _, id := range s.Entities.IDs() {
		e := s.Entities.Get(id)
		if e.Item != entity.ItemNone && e.X == player.X && e.Y == player.Y {
			itemID = id
			item = e
			break
		}
	}
	if item == nil {
		return
	}

	if len(s.Inventory) >= s.cfg.InventoryCap {
		s.Messages.Add(fmt.Sprintf("Your inventory is full, can't pick up %s.", item.Name), entity.ColorRed)
		return
	}

	s.Entities.Remove(itemID)
	s.Messages.Add(fmt.Sprintf("You've just picked up a %s!", item.Name), entity.ColorGreen)
	s.Inventory = append(s.Inventory, item)

	// Equipment goes straight on when its slot is free.
	if item.Equipment != nil && entity.EquippedInSlot(s.Inventory, item.Equipment.Slot) == -1 {
		item.Equip(s.Messages)
	}
}

// dropItem moves an inventory item back into the world at the player's
// position, dequipping it first if necessary.
func (s *Session) dropItem(index int) {
	if index < 0 || index >= len(s.Inventory) {
		s.Messages.Add("No such inventory item.", entity.ColorRed)
		return
	}

	item := s.Inventory[index]
	s.Inventory = append(s.Inventory[:index], s.Inventory[index+1:]...)

	if item.Equipment != nil {
		item.Dequip(s.Messages)
	}

	player := s.Player()
	item.SetPos(player.X, player.Y)
	s.Messages.Add(fmt.Sprintf("You dropped a %s.", item.Name), entity.ColorYellow)
	s.Entities.Add(item)
}
