package dungeon

import (
	"math/rand"

	"github.com/babysitterd/chasm/internal/entity"
)

// transition is one step of a depth-scaled value: from the given dungeon
// level onward the value applies, until a deeper step overrides it.
type transition struct {
	level int
	value int
}

// fromDungeonLevel resolves a step table for the given depth. Levels
// before the first step yield zero.
func fromDungeonLevel(table []transition, level int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].level {
			return table[i].value
		}
	}
	return 0
}

// maxMonstersPerRoom returns the monster count cap for a room at depth.
func maxMonstersPerRoom(level int) int {
	return fromDungeonLevel([]transition{
		{level: 1, value: 2},
		{level: 4, value: 3},
		{level: 6, value: 5},
	}, level)
}

// maxItemsPerRoom returns the item count cap for a room at depth.
func maxItemsPerRoom(level int) int {
	return fromDungeonLevel([]transition{
		{level: 1, value: 1},
		{level: 4, value: 2},
	}, level)
}

// weighted is one candidate of a weighted random draw.
type weighted[T any] struct {
	weight int
	item   T
}

// pickWeighted draws one candidate with probability proportional to its
// weight. Zero-weight candidates can never be drawn.
func pickWeighted[T any](rng *rand.Rand, candidates []weighted[T]) T {
	total := 0
	for _, c := range candidates {
		total += c.weight
	}
	roll := rng.Intn(total)
	for _, c := range candidates {
		roll -= c.weight
		if roll < 0 {
			return c.item
		}
	}
	// Unreachable while total > 0.
	return candidates[len(candidates)-1].item
}

// monsterTable returns the depth-scaled monster spawn weights.
func monsterTable(level int) []weighted[monsterKind] {
	return []weighted[monsterKind]{
		{weight: 80, item: monsterOrc},
		{weight: fromDungeonLevel([]transition{
			{level: 3, value: 15},
			{level: 5, value: 30},
			{level: 7, value: 60},
		}, level), item: monsterTroll},
	}
}

// itemTable returns the depth-scaled item spawn weights.
func itemTable(level int) []weighted[entity.ItemKind] {
	return []weighted[entity.ItemKind]{
		{weight: 35, item: entity.ItemHeal},
		{weight: fromDungeonLevel([]transition{{level: 4, value: 5}}, level), item: entity.ItemSword},
		{weight: fromDungeonLevel([]transition{{level: 8, value: 15}}, level), item: entity.ItemShield},
		{weight: fromDungeonLevel([]transition{{level: 4, value: 25}}, level), item: entity.ItemLightning},
		{weight: fromDungeonLevel([]transition{{level: 6, value: 25}}, level), item: entity.ItemFireball},
		{weight: fromDungeonLevel([]transition{{level: 2, value: 10}}, level), item: entity.ItemConfusion},
	}
}

// monsterKind is the closed set of monster archetypes the generator can
// spawn.
type monsterKind int

const (
	monsterOrc monsterKind = iota
	monsterTroll
)

// spawnMonster creates a monster entity of the given kind.
func spawnMonster(kind monsterKind, x, y int) *entity.Entity {
	switch kind {
	case monsterTroll:
		return entity.NewTroll(x, y)
	default:
		return entity.NewOrc(x, y)
	}
}
