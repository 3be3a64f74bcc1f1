package config

// StateID identifies a player behavior state. The sprite sheet for each
// state lives at images/spritesheets/player/<name>.png.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Move
	Attack
	GameOver
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Move:
		return "move"
	case Attack:
		return "attack"
	case GameOver:
		return "gameover"
	default:
		return "none"
	}
}

// StateToFileName maps a state to its sprite sheet base name.
var StateToFileName = map[StateID]string{
	Idle:     "idle",
	Move:     "move",
	Attack:   "attack",
	GameOver: "gameover",
}
