package components

import (
	"testing"

	"github.com/tamaki/bombwalk/config"
)

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    config.StateID
		to      config.StateID
		allowed bool
	}{
		{"idle to move", config.Idle, config.Move, true},
		{"idle to attack", config.Idle, config.Attack, true},
		{"idle to game over", config.Idle, config.GameOver, true},
		{"move to idle", config.Move, config.Idle, true},
		{"move to attack", config.Move, config.Attack, true},
		{"attack to move", config.Attack, config.Move, true},
		{"attack to game over", config.Attack, config.GameOver, true},
		{"re-enter idle", config.Idle, config.Idle, false},
		{"re-enter attack", config.Attack, config.Attack, false},
		{"game over to idle", config.GameOver, config.Idle, false},
		{"game over to move", config.GameOver, config.Move, false},
		{"game over to attack", config.GameOver, config.Attack, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &StateData{CurrentState: tt.from}
			got := s.Transition(tt.to)
			if got != tt.allowed {
				t.Errorf("Transition(%v) from %v = %v, want %v", tt.to, tt.from, got, tt.allowed)
			}
			if tt.allowed && s.CurrentState != tt.to {
				t.Errorf("CurrentState = %v, want %v", s.CurrentState, tt.to)
			}
			if !tt.allowed && s.CurrentState != tt.from {
				t.Errorf("denied transition mutated state: %v", s.CurrentState)
			}
		})
	}
}

func TestStateTransitionRecordsPrevious(t *testing.T) {
	s := &StateData{CurrentState: config.Idle}
	s.Transition(config.Move)
	if s.PreviousState != config.Idle {
		t.Errorf("PreviousState = %v, want Idle", s.PreviousState)
	}
	s.Transition(config.Attack)
	if s.PreviousState != config.Move {
		t.Errorf("PreviousState = %v, want Move", s.PreviousState)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	s := &StateData{CurrentState: config.Move}
	if !s.Transition(config.GameOver) {
		t.Fatal("expected transition into GameOver to succeed")
	}
	if !s.Terminal() {
		t.Fatal("Terminal() = false after GameOver")
	}
	for _, to := range []config.StateID{config.Idle, config.Move, config.Attack} {
		if s.Transition(to) {
			t.Errorf("escaped GameOver into %v", to)
		}
	}
}
