package components

import (
	"github.com/tamaki/bombwalk/config"
	"github.com/yohamta/donburi"
)

// Click is a buffered pointer press in screen coordinates.
type Click struct {
	X, Y int
}

type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	// Pointer clicks that arrived since the last frame, drained at frame top
	Clicks []Click
}

// ActionState is the derived per-frame state of one action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var Input = donburi.NewComponentType[InputData]()
