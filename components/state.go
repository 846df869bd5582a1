package components

import (
	"github.com/automoto/dinoclash/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds spent in CurrentState
}

// Enter switches to s and resets the timer. Re-entering the current state is a no-op.
func (s *StateData) Enter(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
