package components

import (
	"github.com/automoto/superkick/config"
	"github.com/yohamta/donburi"
)

// StateData is a character's behaviour state and its animation clock.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // frames since the last transition
}

var State = donburi.NewComponentType[StateData]()

// Set transitions to next and restarts the clock. Re-entering the current state
// is a no-op so a held input does not freeze the animation.
func (s *StateData) Set(next config.StateID) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	return true
}
