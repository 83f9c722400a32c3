package entity

import "testing"

type recordedMessage struct {
	text  string
	color Color
}

// recordLog collects entity messages for assertions.
type recordLog struct {
	messages []recordedMessage
}

func (l *recordLog) Add(text string, color Color) {
	l.messages = append(l.messages, recordedMessage{text, color})
}

func TestSumEquippedAggregatesOnlyEquippedItems(t *testing.T) {
	dagger := NewDagger() // equipped, +2 power
	sword := NewItem(ItemSword, 0, 0)
	sword.Equipment.Equipped = true // +3 power
	shield := NewItem(ItemShield, 0, 0)
	shield.Equipment.Equipped = true // +1 defense
	potion := NewItem(ItemHeal, 0, 0)
	spare := NewItem(ItemSword, 0, 0) // carried but not equipped

	b := SumEquipped([]*Entity{dagger, sword, shield, potion, spare})

	if b.Power != 5 {
		t.Errorf("Power bonus = %d, want 5", b.Power)
	}
	if b.Defense != 1 {
		t.Errorf("Defense bonus = %d, want 1", b.Defense)
	}
	if b.MaxHP != 0 {
		t.Errorf("MaxHP bonus = %d, want 0", b.MaxHP)
	}
}

func TestEffectiveStatsUseBonus(t *testing.T) {
	player := NewPlayer(0, 0, 100, 1, 2)
	b := Bonus{MaxHP: 10, Defense: 1, Power: 3}

	if got := player.MaxHP(b); got != 110 {
		t.Errorf("MaxHP = %d, want 110", got)
	}
	if got := player.Defense(b); got != 2 {
		t.Errorf("Defense = %d, want 2", got)
	}
	if got := player.Power(b); got != 5 {
		t.Errorf("Power = %d, want 5", got)
	}
}

func TestHealClampsToEffectiveMax(t *testing.T) {
	player := NewPlayer(0, 0, 100, 1, 2)
	player.Fighter.HP = 95

	player.Heal(40, Bonus{MaxHP: 10})

	if player.Fighter.HP != 110 {
		t.Errorf("HP = %d after heal, want 110", player.Fighter.HP)
	}
}

func TestEquippedInSlot(t *testing.T) {
	dagger := NewDagger()
	shield := NewItem(ItemShield, 0, 0)
	inventory := []*Entity{shield, dagger}

	if got := EquippedInSlot(inventory, SlotRightHand); got != 1 {
		t.Errorf("EquippedInSlot(right hand) = %d, want 1", got)
	}
	if got := EquippedInSlot(inventory, SlotLeftHand); got != -1 {
		t.Errorf("EquippedInSlot(left hand) = %d, want -1", got)
	}
}

func TestEquipRejectsNonEquipment(t *testing.T) {
	log := &recordLog{}
	potion := NewItem(ItemHeal, 0, 0)

	potion.Equip(log)

	if potion.Equipment != nil {
		t.Fatal("potion grew an equipment component")
	}
	if len(log.messages) != 1 || log.messages[0].color != ColorRed {
		t.Errorf("expected one red complaint, got %v", log.messages)
	}
}

func TestEquipDequipToggle(t *testing.T) {
	log := &recordLog{}
	sword := NewItem(ItemSword, 0, 0)

	sword.Equip(log)
	if !sword.Equipment.Equipped {
		t.Fatal("sword not equipped after Equip")
	}

	// Equipping again is a silent no-op.
	sword.Equip(log)
	if len(log.messages) != 1 {
		t.Errorf("expected 1 message after double equip, got %d", len(log.messages))
	}

	sword.Dequip(log)
	if sword.Equipment.Equipped {
		t.Fatal("sword still equipped after Dequip")
	}
}

func TestIntoRemains(t *testing.T) {
	orc := NewOrc(3, 4)
	orc.IntoRemains()

	if orc.Blocks {
		t.Error("remains still block movement")
	}
	if orc.Fighter != nil || orc.AI != nil {
		t.Error("remains kept combat components")
	}
	if orc.Glyph != "%" || orc.Color != ColorDarkRed {
		t.Errorf("remains drawn as %q %q, want %% dark red", orc.Glyph, orc.Color)
	}
	if orc.Name != "remains of orc" {
		t.Errorf("Name = %q, want %q", orc.Name, "remains of orc")
	}
}
