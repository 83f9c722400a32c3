package entity

// Slot represents where a piece of equipment is worn.
type Slot int

const (
	SlotLeftHand Slot = iota
	SlotRightHand
	SlotHead
)

// String returns the string representation of a Slot.
func (s Slot) String() string {
	switch s {
	case SlotLeftHand:
		return "left hand"
	case SlotRightHand:
		return "right hand"
	case SlotHead:
		return "head"
	default:
		return "nowhere"
	}
}

// Equipment is the wearable-gear component. Bonuses only count while
// Equipped is set and the item sits in the player's inventory.
type Equipment struct {
	Slot         Slot `json:"slot"`
	Equipped     bool `json:"equipped"`
	MaxHPBonus   int  `json:"max_hp_bonus"`
	DefenseBonus int  `json:"defense_bonus"`
	PowerBonus   int  `json:"power_bonus"`
}

// Bonus is the aggregate stat contribution of a set of equipped items.
type Bonus struct {
	MaxHP   int
	Defense int
	Power   int
}

// SumEquipped aggregates the bonuses of every equipped item in the given
// inventory. Only the player's inventory ever feeds this: monsters fight
// on base stats alone.
func SumEquipped(inventory []*Entity) Bonus {
	var b Bonus
	for _, item := range inventory {
		if item.Equipment == nil || !item.Equipment.Equipped {
			continue
		}
		b.MaxHP += item.Equipment.MaxHPBonus
		b.Defense += item.Equipment.DefenseBonus
		b.Power += item.Equipment.PowerBonus
	}
	return b
}

// EquippedInSlot returns the inventory index of the item currently
// equipped in the given slot, or -1 if the slot is free.
func EquippedInSlot(inventory []*Entity, slot Slot) int {
	for i, item := range inventory {
		if item.Equipment != nil && item.Equipment.Equipped && item.Equipment.Slot == slot {
			return i
		}
	}
	return -1
}
