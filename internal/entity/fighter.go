package entity

// DeathKind selects which death handling applies when a fighter's hit
// points reach zero. The set is closed; the session switches over it.
type DeathKind int

const (
	// DeathMonster turns the entity into inert remains and awards XP.
	DeathMonster DeathKind = iota
	// DeathPlayer ends the game for the player without deleting it.
	DeathPlayer
)

// Fighter is the combat component: base stats, current hit points and the
// experience reward granted to whoever lands the killing blow.
type Fighter struct {
	BaseMaxHP   int       `json:"base_max_hp"`
	HP          int       `json:"hp"`
	BaseDefense int       `json:"base_defense"`
	BasePower   int       `json:"base_power"`
	XP          int       `json:"xp"`
	OnDeath     DeathKind `json:"on_death"`
}

// Damage reduces hit points by the given amount, never below zero.
// Negative amounts are ignored.
func (f *Fighter) Damage(amount int) {
	if amount <= 0 {
		return
	}
	f.HP -= amount
	if f.HP < 0 {
		f.HP = 0
	}
}
