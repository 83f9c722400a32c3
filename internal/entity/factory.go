package entity

import "github.com/babysitterd/chasm/internal/ai"

// Constructors below are the only way game code builds entities, so
// invalid component combinations (equipment without an item kind, AI on a
// non-fighter) cannot be constructed.

// NewPlayer creates the player entity with the given base combat stats.
func NewPlayer(x, y, maxHP, defense, power int) *Entity {
	player := New(x, y, "@", ColorWhite, "player", true)
	player.Alive = true
	player.Fighter = &Fighter{
		BaseMaxHP:   maxHP,
		HP:          maxHP,
		BaseDefense: defense,
		BasePower:   power,
		OnDeath:     DeathPlayer,
	}
	return player
}

// NewOrc creates an orc monster.
func NewOrc(x, y int) *Entity {
	orc := New(x, y, "o", ColorDesaturatedGreen, "orc", true)
	orc.Alive = true
	orc.Fighter = &Fighter{
		BaseMaxHP:   20,
		HP:          20,
		BaseDefense: 0,
		BasePower:   4,
		XP:          35,
		OnDeath:     DeathMonster,
	}
	orc.AI = ai.Basic()
	return orc
}

// NewTroll creates a troll monster.
func NewTroll(x, y int) *Entity {
	troll := New(x, y, "T", ColorDarkerGreen, "troll", true)
	troll.Alive = true
	troll.Fighter = &Fighter{
		BaseMaxHP:   30,
		HP:          30,
		BaseDefense: 2,
		BasePower:   8,
		XP:          100,
		OnDeath:     DeathMonster,
	}
	troll.AI = ai.Basic()
	return troll
}

// NewItem creates a pickup-able item entity of the given kind.
func NewItem(kind ItemKind, x, y int) *Entity {
	switch kind {
	case ItemHeal:
		item := New(x, y, "!", ColorViolet, "healing potion", false)
		item.Item = ItemHeal
		return item
	case ItemLightning:
		item := New(x, y, "#", ColorLightYellow, "scroll of lightning bolt", false)
		item.Item = ItemLightning
		return item
	case ItemConfusion:
		item := New(x, y, "#", ColorLightYellow, "scroll of confusion", false)
		item.Item = ItemConfusion
		return item
	case ItemFireball:
		item := New(x, y, "#", ColorLightYellow, "scroll of fireball", false)
		item.Item = ItemFireball
		return item
	case ItemSword:
		item := New(x, y, "/", ColorSky, "sword", false)
		item.Item = ItemSword
		item.Equipment = &Equipment{Slot: SlotRightHand, PowerBonus: 3}
		return item
	case ItemShield:
		item := New(x, y, "o", ColorDarkerOrange, "shield", false)
		item.Item = ItemShield
		item.Equipment = &Equipment{Slot: SlotLeftHand, DefenseBonus: 1}
		return item
	default:
		return nil
	}
}

// NewDagger creates the starting weapon the player carries equipped.
func NewDagger() *Entity {
	dagger := New(0, 0, "-", ColorSky, "dagger", false)
	dagger.Item = ItemSword
	dagger.Equipment = &Equipment{Slot: SlotRightHand, Equipped: true, PowerBonus: 2}
	return dagger
}

// NewStairs creates the permanent, always-visible stairs marker.
func NewStairs(x, y int) *Entity {
	stairs := New(x, y, "<", ColorWhite, "stairs", false)
	stairs.AlwaysVisible = true
	return stairs
}
