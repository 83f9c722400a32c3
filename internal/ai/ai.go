// Package ai implements the behavior state machine for autonomous
// entities. States advance exactly once per scheduler tick; the package
// never schedules itself.
package ai

// Kind identifies a behavior state.
type Kind int

const (
	// KindBasic chases the player while visible and attacks when adjacent.
	KindBasic Kind = iota
	// KindConfused stumbles randomly for a fixed number of turns, then
	// reverts to the prior state.
	KindConfused
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindConfused:
		return "confused"
	default:
		return "basic"
	}
}

// State is the behavior state carried by an autonomous entity.
// Confusion cannot stack, so a flat record with the prior kind is enough;
// re-confusing an already confused entity just refreshes the timer.
type State struct {
	Kind      Kind `json:"kind"`
	Prev      Kind `json:"prev"`
	TurnsLeft int  `json:"turns_left"`
}

// Basic returns the initial state every autonomous entity spawns with.
func Basic() *State {
	return &State{Kind: KindBasic}
}

// Confuse overrides the state with a timed confusion lasting the given
// number of turns. The prior state is restored when the timer runs out.
func Confuse(s *State, turns int) *State {
	if s == nil {
		s = Basic()
	}
	if s.Kind == KindConfused {
		// Already stumbling; keep the original prior state.
		return &State{Kind: KindConfused, Prev: s.Prev, TurnsLeft: turns}
	}
	return &State{Kind: KindConfused, Prev: s.Kind, TurnsLeft: turns}
}
