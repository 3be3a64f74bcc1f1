package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action
type ActionID int

const (
	ActionMoveUp ActionID = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionSpawnBomb
	ActionRestart
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionQuitToMenu

	ActionCount
)

// Binding maps an action to one or more keyboard keys
type Binding struct {
	Keys []ebiten.Key
}

// InputConfig contains input bindings
type InputConfig struct {
	Bindings map[ActionID]Binding
}

var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]Binding{
			ActionMoveUp:     {Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
			ActionMoveDown:   {Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
			ActionMoveLeft:   {Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
			ActionMoveRight:  {Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
			ActionAttack:     {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}},
			ActionSpawnBomb:  {Keys: []ebiten.Key{ebiten.KeyB, ebiten.KeyE}},
			ActionRestart:    {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}},
			ActionMenuUp:     {Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
			ActionMenuDown:   {Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
			ActionMenuSelect: {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionQuitToMenu: {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
