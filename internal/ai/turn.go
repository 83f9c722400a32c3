package ai

import (
	"fmt"
	"math"
)

// Actor is the entity whose state is being advanced.
type Actor interface {
	Pos() (x, y int)
	SetPos(x, y int)
	GetName() string
}

// World is the slice of the session an AI tick is allowed to touch.
// Movement goes through IsBlocked so the world keeps ownership of
// collision rules; Announce feeds the session message log.
type World interface {
	PlayerPos() (x, y int)
	PlayerAlive() bool
	IsVisible(x, y int) bool
	IsBlocked(x, y int) bool
	Attack(a Actor)
	Announce(text string)
}

// Rand is the subset of math/rand the state machine rolls with.
type Rand interface {
	Intn(n int) int
}

// TakeTurn advances the actor's state by exactly one tick and returns the
// resulting state.
func TakeTurn(s *State, a Actor, w World, rng Rand) *State {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case KindConfused:
		return tickConfused(s, a, w, rng)
	default:
		return tickBasic(s, a, w)
	}
}

func tickBasic(s *State, a Actor, w World) *State {
	x, y := a.Pos()
	if !w.IsVisible(x, y) {
		return s
	}

	px, py := w.PlayerPos()
	if distance(x, y, px, py) >= 2.0 {
		moveTowards(a, w, px, py)
	} else if w.PlayerAlive() {
		w.Attack(a)
	}
	return s
}

func tickConfused(s *State, a Actor, w World, rng Rand) *State {
	if s.TurnsLeft >= 0 {
		// Stumble in a random direction, possibly standing still.
		moveBy(a, w, rng.Intn(3)-1, rng.Intn(3)-1)
		return &State{Kind: KindConfused, Prev: s.Prev, TurnsLeft: s.TurnsLeft - 1}
	}
	w.Announce(fmt.Sprintf("The %s is no longer confused!", a.GetName()))
	return &State{Kind: s.Prev}
}

// moveTowards takes a single step along the normalized, rounded vector to
// the target. There is no pathfinding: an actor can stall forever against
// an obstacle it cannot route around.
func moveTowards(a Actor, w World, targetX, targetY int) {
	x, y := a.Pos()
	dx := targetX - x
	dy := targetY - y
	dist := math.Sqrt(float64(dx*dx + dy*dy))
	if dist == 0 {
		return
	}
	stepX := int(math.Round(float64(dx) / dist))
	stepY := int(math.Round(float64(dy) / dist))
	moveBy(a, w, stepX, stepY)
}

func moveBy(a Actor, w World, dx, dy int) {
	x, y := a.Pos()
	if w.IsBlocked(x+dx, y+dy) {
		return
	}
	a.SetPos(x+dx, y+dy)
}

func distance(x1, y1, x2, y2 int) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(float64(dx*dx + dy*dy))
}
