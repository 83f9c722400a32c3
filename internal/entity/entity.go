// Package entity holds the uniform entity model: every world object (the
// player, monsters, items, the stairs) is an Entity with optional
// capability components. Entities live in an Arena and are addressed by
// stable IDs, never by list position.
package entity

import (
	"fmt"
	"math"

	"github.com/babysitterd/chasm/internal/ai"
)

// Log is the message sink entity operations report to. The session's
// message log implements it.
type Log interface {
	Add(text string, color Color)
}

// Entity is a generic world object. Which components are non-nil decides
// what it can do: Fighter for combat, AI for autonomy, Item for pickups,
// Equipment for wearable gear.
type Entity struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
	Color Color  `json:"color"`
	Name  string `json:"name"`

	// Blocks marks the entity as occupying its tile for movement.
	Blocks bool `json:"blocks"`
	Alive  bool `json:"alive"`
	Level  int  `json:"level"`

	// AlwaysVisible exempts the entity from visibility checks when
	// rendering (stairs, dropped items).
	AlwaysVisible bool `json:"always_visible"`

	Fighter   *Fighter   `json:"fighter,omitempty"`
	AI        *ai.State  `json:"ai,omitempty"`
	Item      ItemKind   `json:"item,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
}

// New creates a bare entity with no capability components.
func New(x, y int, glyph string, color Color, name string, blocks bool) *Entity {
	return &Entity{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
		Level:  1,
	}
}

// Pos returns the entity's position.
func (e *Entity) Pos() (int, int) {
	return e.X, e.Y
}

// SetPos moves the entity to the given position.
func (e *Entity) SetPos(x, y int) {
	e.X = x
	e.Y = y
}

// GetName returns the entity's display name.
func (e *Entity) GetName() string {
	return e.Name
}

// Distance returns the euclidean distance to the given position.
func (e *Entity) Distance(x, y int) float64 {
	dx := x - e.X
	dy := y - e.Y
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// DistanceTo returns the euclidean distance to another entity.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Distance(other.X, other.Y)
}

// MaxHP returns the effective maximum hit points under the given
// equipment bonus. Zero for non-fighters.
func (e *Entity) MaxHP(b Bonus) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseMaxHP + b.MaxHP
}

// Power returns the effective attack power under the given equipment
// bonus. Zero for non-fighters.
func (e *Entity) Power(b Bonus) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BasePower + b.Power
}

// Defense returns the effective defense under the given equipment bonus.
// Zero for non-fighters.
func (e *Entity) Defense(b Bonus) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseDefense + b.Defense
}

// Heal restores hit points, clamped to the effective maximum.
func (e *Entity) Heal(amount int, b Bonus) {
	if e.Fighter == nil {
		return
	}
	e.Fighter.HP += amount
	if maxHP := e.MaxHP(b); e.Fighter.HP > maxHP {
		e.Fighter.HP = maxHP
	}
}

// IntoRemains transforms a dead entity into an inert corpse: it stops
// blocking, loses its Fighter and AI components, and is renamed. Death is
// irreversible.
func (e *Entity) IntoRemains() {
	e.Glyph = "%"
	e.Color = ColorDarkRed
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = fmt.Sprintf("remains of %s", e.Name)
}

// Equip marks the entity's equipment as equipped and logs the change.
// No-op with a logged complaint for entities that aren't equippable gear.
func (e *Entity) Equip(log Log) {
	if e.Item == ItemNone {
		log.Add(fmt.Sprintf("Can't equip %s because it's not an item.", e.Name), ColorRed)
		return
	}
	if e.Equipment == nil {
		log.Add(fmt.Sprintf("Can't equip %s because it's not equipment.", e.Name), ColorRed)
		return
	}
	if !e.Equipment.Equipped {
		e.Equipment.Equipped = true
		log.Add(fmt.Sprintf("Equipped %s on %s.", e.Name, e.Equipment.Slot), ColorLightGreen)
	}
}

// Dequip clears the equipped flag and logs the change. No-op with a
// logged complaint for entities that aren't equippable gear.
func (e *Entity) Dequip(log Log) {
	if e.Item == ItemNone {
		log.Add(fmt.Sprintf("Can't dequip %s because it's not an item.", e.Name), ColorRed)
		return
	}
	if e.Equipment == nil {
		log.Add(fmt.Sprintf("Can't dequip %s because it's not equipment.", e.Name), ColorRed)
		return
	}
	if e.Equipment.Equipped {
		e.Equipment.Equipped = false
		log.Add(fmt.Sprintf("Dequipped %s from %s.", e.Name, e.Equipment.Slot), ColorLightGreen)
	}
}
