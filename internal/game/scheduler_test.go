package game

import (
	"testing"

	"github.com/babysitterd/chasm/internal/ai"
	"github.com/babysitterd/chasm/internal/dungeon"
	"github.com/babysitterd/chasm/internal/entity"
)

func TestMoveStepsOntoFreeTile(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	outcome, err := s.Step(MoveIntent{DX: 1, DY: 0})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != TookTurn {
		t.Errorf("outcome = %v, want TookTurn", outcome)
	}

	player := s.Player()
	if player.X != 6 || player.Y != 5 {
		t.Errorf("player at (%d, %d), want (6, 5)", player.X, player.Y)
	}
}

func TestMoveIntoWallConsumesTurnWithoutMoving(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	*s.Map.At(6, 5) = dungeon.Wall()

	outcome, _ := s.Step(MoveIntent{DX: 1, DY: 0})
	if outcome != TookTurn {
		t.Errorf("outcome = %v, want TookTurn", outcome)
	}

	player := s.Player()
	if player.X != 5 || player.Y != 5 {
		t.Errorf("player at (%d, %d), want (5, 5)", player.X, player.Y)
	}
}

func TestMoveIntoMonsterAttacksInstead(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	orc := entity.NewOrc(6, 5)
	s.Entities.Add(orc)

	outcome, _ := s.Step(MoveIntent{DX: 1, DY: 0})
	if outcome != TookTurn {
		t.Errorf("outcome = %v, want TookTurn", outcome)
	}

	player := s.Player()
	if player.X != 5 || player.Y != 5 {
		t.Error("player moved onto an occupied tile")
	}
	if orc.Fighter.HP != 16 {
		t.Errorf("orc HP = %d, want 16", orc.Fighter.HP)
	}
	// The orc struck back during the AI sweep.
	if player.Fighter.HP != 26 {
		t.Errorf("player HP = %d after counterattack, want 26", player.Fighter.HP)
	}
}

func TestDidntTakeTurnFreezesMonsters(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.Entities.Add(entity.NewOrc(6, 5))

	// Picking up from an empty tile consumes no tick.
	outcome, _ := s.Step(PickUpIntent{})
	if outcome != DidntTakeTurn {
		t.Errorf("outcome = %v, want DidntTakeTurn", outcome)
	}
	if s.Player().Fighter.HP != 30 {
		t.Errorf("player HP = %d, monsters acted on a free action", s.Player().Fighter.HP)
	}
}

func TestUIIntentNeverConsumesTick(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.Entities.Add(entity.NewOrc(6, 5))

	outcome, _ := s.Step(UIIntent{Name: "open_inventory"})
	if outcome != DidntTakeTurn {
		t.Errorf("outcome = %v, want DidntTakeTurn", outcome)
	}
	if s.Player().Fighter.HP != 30 {
		t.Error("monsters acted on a UI intent")
	}
}

func TestExitIntent(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	outcome, err := s.Step(ExitIntent{})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != Exit {
		t.Errorf("outcome = %v, want Exit", outcome)
	}
}

func TestDeadPlayerCanOnlyExit(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	player := s.Player()
	player.Alive = false
	player.Fighter.HP = 0

	outcome, _ := s.Step(MoveIntent{DX: 1, DY: 0})
	if outcome != DidntTakeTurn {
		t.Errorf("move outcome = %v, want DidntTakeTurn", outcome)
	}
	if player.X != 5 {
		t.Error("dead player moved")
	}

	outcome, _ = s.Step(ExitIntent{})
	if outcome != Exit {
		t.Errorf("exit outcome = %v, want Exit", outcome)
	}
}

func TestMonstersIdleOutsideFieldOfView(t *testing.T) {
	s, vision, _, _ := newTestSession(t)
	vision.none = true
	orc := entity.NewOrc(9, 9)
	s.Entities.Add(orc)

	s.Step(WaitIntent{})

	if orc.X != 9 || orc.Y != 9 {
		t.Errorf("unseen orc moved to (%d, %d)", orc.X, orc.Y)
	}
}

func TestMonsterChasesThenAttacks(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	orc := entity.NewOrc(8, 5)
	s.Entities.Add(orc)

	s.Step(WaitIntent{})
	if orc.X != 7 || orc.Y != 5 {
		t.Fatalf("orc at (%d, %d) after first wait, want (7, 5)", orc.X, orc.Y)
	}

	s.Step(WaitIntent{})
	if orc.X != 6 || orc.Y != 5 {
		t.Fatalf("orc at (%d, %d) after second wait, want (6, 5)", orc.X, orc.Y)
	}

	s.Step(WaitIntent{})
	if orc.X != 6 || orc.Y != 5 {
		t.Error("adjacent orc moved instead of attacking")
	}
	if s.Player().Fighter.HP != 26 {
		t.Errorf("player HP = %d, want 26 after one orc hit", s.Player().Fighter.HP)
	}
}

func TestConfusionLifecycleThroughScheduler(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	orc := entity.NewOrc(9, 9)
	s.Entities.Add(orc)
	orc.AI = ai.Confuse(orc.AI, 1)

	// Turns 1 and 0 stumble; the third sweep announces the recovery.
	s.Step(WaitIntent{})
	s.Step(WaitIntent{})
	if orc.AI.Kind != ai.KindConfused {
		t.Fatal("confusion ended early")
	}
	if hasMessage(s.Messages, "The orc is no longer confused!") {
		t.Fatal("recovery announced early")
	}

	s.Step(WaitIntent{})
	if orc.AI.Kind != ai.KindBasic {
		t.Errorf("orc AI = %v after expiry, want basic", orc.AI.Kind)
	}
	if !hasMessage(s.Messages, "The orc is no longer confused!") {
		t.Error("recovery message missing")
	}
}

func TestDescendOnStairs(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.Entities.Add(entity.NewStairs(5, 5))
	s.Player().Fighter.HP = 10

	outcome, err := s.Step(DescendIntent{})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != DidntTakeTurn {
		t.Errorf("outcome = %v, want DidntTakeTurn", outcome)
	}

	if s.DungeonLevel != 2 {
		t.Errorf("DungeonLevel = %d, want 2", s.DungeonLevel)
	}
	// Rest bonus: half of max HP.
	if s.Player().Fighter.HP != 25 {
		t.Errorf("player HP = %d after descending, want 25", s.Player().Fighter.HP)
	}
	if !hasMessage(s.Messages, "You take a moment to rest, and recover your strength.") {
		t.Error("rest message missing")
	}
	// The map was regenerated at the configured size.
	if s.Map.Width != 80 || s.Map.Height != 43 {
		t.Errorf("regenerated map is %dx%d, want 80x43", s.Map.Width, s.Map.Height)
	}
}

func TestDescendAwayFromStairsIsNoOp(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.Entities.Add(entity.NewStairs(9, 9))

	outcome, err := s.Step(DescendIntent{})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if outcome != DidntTakeTurn {
		t.Errorf("outcome = %v, want DidntTakeTurn", outcome)
	}
	if s.DungeonLevel != 1 {
		t.Errorf("DungeonLevel = %d, want 1", s.DungeonLevel)
	}
}
