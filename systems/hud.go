package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/fonts"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD shows the survival clock and the live bomb count.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	clock := GetClock(e)

	bombs := 0
	tags.Bomb.Each(e.World, func(*donburi.Entry) {
		bombs++
	})

	line := fmt.Sprintf("TIME %6.1f   BOMBS %d", clock.Now, bombs)
	text.Draw(screen, line, fonts.Small.Get(), int(cfg.HUD.MarginX), int(cfg.HUD.MarginY), cfg.HUD.TextColor)
}
