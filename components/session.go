package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData carries per-run frame loop state: the restart request raised
// while the player is in GameOver, and the overlay fade tween.
type SessionData struct {
	RestartRequested bool
	QuitToMenu       bool

	OverlayFade  *gween.Tween
	OverlayAlpha float32
}

var Session = donburi.NewComponentType[SessionData]()
