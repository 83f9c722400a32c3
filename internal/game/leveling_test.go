package game

import "testing"

func TestLevelUpXPCurve(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 350},
		{2, 500},
		{3, 650},
	}
	for _, tt := range tests {
		if got := LevelUpXP(tt.level); got != tt.want {
			t.Errorf("LevelUpXP(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelUpAtExactThreshold(t *testing.T) {
	s, _, chooser, _ := newTestSession(t)
	chooser.picks = []Upgrade{UpgradeStrength}
	player := s.Player()
	player.Fighter.XP = 350

	s.Step(WaitIntent{})

	if player.Level != 2 {
		t.Errorf("Level = %d, want 2", player.Level)
	}
	if player.Fighter.XP != 0 {
		t.Errorf("XP = %d after level-up, want 0", player.Fighter.XP)
	}
	if player.Fighter.BasePower != 5 {
		t.Errorf("BasePower = %d, want 5", player.Fighter.BasePower)
	}
	if !hasMessage(s.Messages, "Your battle skills grow stronger! You reached level 2!") {
		t.Error("level-up message missing")
	}
}

func TestNoLevelUpBelowThreshold(t *testing.T) {
	s, _, chooser, _ := newTestSession(t)
	player := s.Player()
	player.Fighter.XP = 349

	s.Step(WaitIntent{})

	if player.Level != 1 {
		t.Errorf("Level = %d, want 1", player.Level)
	}
	if player.Fighter.XP != 349 {
		t.Errorf("XP = %d, want 349 untouched", player.Fighter.XP)
	}
	if chooser.calls != 0 {
		t.Error("chooser consulted below threshold")
	}
}

func TestExcessXPCarriesOver(t *testing.T) {
	s, _, chooser, _ := newTestSession(t)
	chooser.picks = []Upgrade{UpgradeAgility}
	player := s.Player()
	player.Fighter.XP = 400

	s.Step(WaitIntent{})

	if player.Fighter.XP != 50 {
		t.Errorf("XP = %d after level-up, want 50", player.Fighter.XP)
	}
	if player.Fighter.BaseDefense != 1 {
		t.Errorf("BaseDefense = %d, want 1", player.Fighter.BaseDefense)
	}
}

func TestInvalidChoiceIsRetried(t *testing.T) {
	s, _, chooser, _ := newTestSession(t)
	chooser.picks = []Upgrade{Upgrade(7), UpgradeAgility}
	player := s.Player()
	player.Fighter.XP = 350

	s.Step(WaitIntent{})

	if chooser.calls != 2 {
		t.Errorf("chooser called %d times, want 2", chooser.calls)
	}
	if player.Fighter.BaseDefense != 1 {
		t.Errorf("BaseDefense = %d, want 1 from the retried pick", player.Fighter.BaseDefense)
	}
	if player.Level != 2 {
		t.Errorf("Level = %d, want 2 exactly once", player.Level)
	}
}

func TestDismissedChoiceIsRetried(t *testing.T) {
	s, _, chooser, _ := newTestSession(t)
	chooser.picks = []Upgrade{UpgradeStrength, UpgradeConstitution}
	chooser.oks = []bool{false, true}
	player := s.Player()
	player.Fighter.XP = 350
	player.Fighter.HP = 10

	s.Step(WaitIntent{})

	// The dismissed strength pick left no trace; constitution applied.
	if player.Fighter.BasePower != 4 {
		t.Errorf("BasePower = %d, want 4 untouched", player.Fighter.BasePower)
	}
	if player.Fighter.BaseMaxHP != 50 {
		t.Errorf("BaseMaxHP = %d, want 50", player.Fighter.BaseMaxHP)
	}
	if player.Fighter.HP != 30 {
		t.Errorf("HP = %d, want 30 (+20 on constitution)", player.Fighter.HP)
	}
}
