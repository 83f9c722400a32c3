package game

import (
	"testing"

	"github.com/babysitterd/chasm/internal/entity"
)

func TestAttackDamageFormula(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	player := s.Player()
	orc := entity.NewOrc(6, 5)
	s.Entities.Add(orc)

	// Power 4 against defense 0: 4 damage per swing.
	s.attack(player, orc)
	s.attack(player, orc)
	s.attack(player, orc)

	if orc.Fighter.HP != 8 {
		t.Errorf("orc HP after three attacks = %d, want 8", orc.Fighter.HP)
	}
	if !hasMessage(s.Messages, "player attacks orc for 4 hit points.") {
		t.Error("attack message missing")
	}

	s.attack(player, orc)
	s.attack(player, orc)

	if orc.Alive {
		t.Fatal("orc still alive at 0 HP")
	}
	if player.Fighter.XP != 35 {
		t.Errorf("player XP = %d, want 35", player.Fighter.XP)
	}
	if orc.Blocks {
		t.Error("dead orc still blocks movement")
	}
	if orc.Name != "remains of orc" {
		t.Errorf("dead orc name = %q, want %q", orc.Name, "remains of orc")
	}
	if !hasMessage(s.Messages, "orc is dead! You gain 35 experience points.") {
		t.Error("death message missing")
	}
}

func TestAttackNoEffect(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	player := s.Player()
	orc := entity.NewOrc(6, 5)
	orc.Fighter.BaseDefense = 10
	s.Entities.Add(orc)

	s.attack(player, orc)

	if orc.Fighter.HP != 20 {
		t.Errorf("orc HP = %d after blocked attack, want 20", orc.Fighter.HP)
	}
	if !hasMessage(s.Messages, "player attacks orc but it has no effect!") {
		t.Error("no-effect message missing")
	}
}

func TestEquipmentBonusCountsForPlayerOnly(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	sword := entity.NewItem(entity.ItemSword, 0, 0)
	sword.Equipment.Equipped = true
	s.Inventory = append(s.Inventory, sword)

	orc := entity.NewOrc(6, 5)
	s.Entities.Add(orc)

	if got := s.bonusFor(s.Player()).Power; got != 3 {
		t.Errorf("player power bonus = %d, want 3", got)
	}
	if got := s.bonusFor(orc); got != (entity.Bonus{}) {
		t.Errorf("monster bonus = %+v, want zero", got)
	}

	// 4 base + 3 sword against 0 defense: 7 damage.
	s.attack(s.Player(), orc)
	if orc.Fighter.HP != 13 {
		t.Errorf("orc HP = %d, want 13", orc.Fighter.HP)
	}
}

func TestDeathFiresExactlyOnce(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	orc := entity.NewOrc(6, 5)
	s.Entities.Add(orc)

	xp, killed := s.damageEntity(orc, 25)
	if !killed || xp != 35 {
		t.Fatalf("first lethal hit: xp=%d killed=%v, want 35 true", xp, killed)
	}

	// Remains have no Fighter; further damage is a no-op.
	xp, killed = s.damageEntity(orc, 25)
	if killed || xp != 0 {
		t.Errorf("second hit: xp=%d killed=%v, want 0 false", xp, killed)
	}
}

func TestPlayerDeath(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	player := s.Player()
	player.Fighter.HP = 3
	orc := entity.NewOrc(6, 5)
	s.Entities.Add(orc)

	s.attack(orc, player)

	if player.Alive {
		t.Fatal("player still alive at 0 HP")
	}
	if player.Fighter == nil {
		t.Fatal("player corpse lost its Fighter; final stats unreadable")
	}
	if player.Fighter.HP != 0 {
		t.Errorf("player HP = %d, want 0", player.Fighter.HP)
	}
	if player.Glyph != "%" || player.Color != entity.ColorDarkRed {
		t.Errorf("player corpse drawn as %q %q", player.Glyph, player.Color)
	}
	if !hasMessage(s.Messages, "You died!") {
		t.Error("death message missing")
	}
}

func TestHPNeverNegative(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	orc := entity.NewOrc(6, 5)
	s.Entities.Add(orc)

	s.damageEntity(orc, 1000)

	// IntoRemains cleared the Fighter, but the clamp is what kept HP at
	// zero in the instant before death handling.
	if orc.Alive {
		t.Error("orc survived 1000 damage")
	}

	player := s.Player()
	s.damageEntity(player, 1000)
	if player.Fighter.HP != 0 {
		t.Errorf("player HP = %d after overkill, want 0", player.Fighter.HP)
	}
}
