package game

import (
	"fmt"

	"github.com/babysitterd/chasm/internal/entity"
)

// Experience curve constants.
const (
	levelUpBase   = 200
	levelUpFactor = 150
)

// LevelUpXP returns the experience threshold for leaving the given level.
func LevelUpXP(level int) int {
	return levelUpBase + level*levelUpFactor
}

// Upgrade is one of the three stat raises offered on level-up.
type Upgrade int

const (
	// UpgradeConstitution grants +20 max HP and +20 current HP.
	UpgradeConstitution Upgrade = iota
	// UpgradeStrength grants +1 attack power.
	UpgradeStrength
	// UpgradeAgility grants +1 defense.
	UpgradeAgility
)

// UpgradeOptions is what the chooser collaborator shows the player.
type UpgradeOptions struct {
	NewLevel    int
	BaseMaxHP   int
	BasePower   int
	BaseDefense int
}

// UpgradeChooser is the boundary to the level-up menu collaborator. The
// call blocks until the player decides; ok=false means the input was
// invalid or dismissed, and the scheduler re-presents the same choice.
type UpgradeChooser interface {
	ChooseUpgrade(opts UpgradeOptions) (Upgrade, bool)
}

// checkLevelUp runs once per scheduler cycle. Crossing the threshold
// raises the character level, burns the threshold XP and applies exactly
// one valid upgrade; invalid choices are retried without side effects.
func (s *Session) checkLevelUp() {
	player := s.Player()
	if player.Fighter == nil {
		return
	}

	required := LevelUpXP(player.Level)
	if player.Fighter.XP < required {
		return
	}

	player.Level++
	s.Messages.Add(fmt.Sprintf("Your battle skills grow stronger! You reached level %d!", player.Level), entity.ColorYellow)

	opts := UpgradeOptions{
		NewLevel:    player.Level,
		BaseMaxHP:   player.Fighter.BaseMaxHP,
		BasePower:   player.Fighter.BasePower,
		BaseDefense: player.Fighter.BaseDefense,
	}

	var choice Upgrade
	for {
		c, ok := s.chooser.ChooseUpgrade(opts)
		if ok && c >= UpgradeConstitution && c <= UpgradeAgility {
			choice = c
			break
		}
	}

	player.Fighter.XP -= required
	switch choice {
	case UpgradeConstitution:
		player.Fighter.BaseMaxHP += 20
		player.Fighter.HP += 20
	case UpgradeStrength:
		player.Fighter.BasePower++
	case UpgradeAgility:
		player.Fighter.BaseDefense++
	}
}
