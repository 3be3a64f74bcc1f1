package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tamaki/bombwalk/assets"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRestart polls the restart and quit signals while the player is in
// the terminal state. It only raises flags on the session; the scene
// performs the actual world reset between frames.
func UpdateRestart(e *ecs.ECS) {
	if !IsGameOver(e) {
		return
	}

	input := getOrCreateInput(e)
	session := GetSession(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		session.RestartRequested = true
	}
	if GetAction(input, cfg.ActionQuitToMenu).JustPressed {
		session.QuitToMenu = true
	}
}

// GetSession returns the singleton session state, creating it on first use.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
	}
	return components.Session.Get(entry)
}

// DrawGameOverOverlay dims the scene and fades in the end-of-game image,
// centered on the viewport, once the player state is terminal.
func DrawGameOverOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOver(e) {
		return
	}

	session := GetSession(e)
	if session.OverlayFade == nil {
		session.OverlayFade = gween.New(0, 1, cfg.GameOverScreen.FadeDuration, ease.Linear)
	}
	clock := GetClock(e)
	alpha, _ := session.OverlayFade.Update(float32(clock.Delta))
	session.OverlayAlpha = alpha

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.GameOverScreen.OverlayColor
	overlay.A = uint8(float32(overlay.A) * alpha)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	img := assets.GetUIImage("gameover.png")
	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate((width-imgW)/2, (height-imgH)/2)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, drawOp)

	hint := cfg.GameOverScreen.Hint
	hintFont := fonts.Bold.Get()
	hintWidth := len(hint) * 12
	hintX := int((width - float64(hintWidth)) / 2)
	hintY := int((height+imgH)/2 + cfg.GameOverScreen.HintOffsetY)
	text.Draw(screen, hint, hintFont, hintX, hintY, cfg.GameOverScreen.HintColor)
}
