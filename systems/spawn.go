package systems

import (
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/systems/factory"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawns creates bombs requested this frame: the spawn key places
// one at the player, pointer clicks place one at the click translated to
// world space. Runs after the script hook so all spawn sources share a
// frame.
func UpdateSpawns(e *ecs.ECS) {
	input := getOrCreateInput(e)
	clock := GetClock(e)

	if GetAction(input, cfg.ActionSpawnBomb).JustPressed {
		if playerEntry, ok := tags.Player.First(e.World); ok {
			obj := components.Object.Get(playerEntry)
			factory.CreateBomb(e, obj.CenterX(), obj.CenterY(), clock.Now)
		}
	}

	if len(input.Clicks) > 0 {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		for _, click := range input.Clicks {
			wx, wy := camera.ScreenToWorld(float64(click.X), float64(click.Y))
			factory.CreateBomb(e, wx, wy, clock.Now)
		}
	}
}
