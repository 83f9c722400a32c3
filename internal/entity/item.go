package entity

// ItemKind categorizes pickup-able entities. ItemNone means the entity is
// not an item at all.
type ItemKind string

const (
	ItemNone      ItemKind = ""
	ItemHeal      ItemKind = "heal"
	ItemLightning ItemKind = "lightning"
	ItemConfusion ItemKind = "confusion"
	ItemFireball  ItemKind = "fireball"
	ItemSword     ItemKind = "sword"
	ItemShield    ItemKind = "shield"
)

// IsEquippable returns true for item kinds that carry an Equipment
// component.
func (k ItemKind) IsEquippable() bool {
	return k == ItemSword || k == ItemShield
}
