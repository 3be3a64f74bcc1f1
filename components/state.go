package components

import (
	"github.com/tamaki/bombwalk/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

// stateTransitions is the allowed transition set. GameOver is terminal:
// no outgoing edges, only a full world reset replaces the entity.
var stateTransitions = map[config.StateID]map[config.StateID]bool{
	config.Idle:   {config.Move: true, config.Attack: true, config.GameOver: true},
	config.Move:   {config.Idle: true, config.Attack: true, config.GameOver: true},
	config.Attack: {config.Idle: true, config.Move: true, config.GameOver: true},
	config.GameOver: {},
}

// Transition moves to the requested state if the transition table allows
// it. Re-entering the current state and any request out of GameOver are
// silent no-ops.
func (s *StateData) Transition(to config.StateID) bool {
	if s.CurrentState == to {
		return false
	}
	if !stateTransitions[s.CurrentState][to] {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = to
	return true
}

// Terminal reports whether the state machine has reached GameOver.
func (s *StateData) Terminal() bool {
	return s.CurrentState == config.GameOver
}

var State = donburi.NewComponentType[StateData]()
