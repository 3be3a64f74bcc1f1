package systems

import (
	"github.com/tamaki/bombwalk/components"
	"github.com/tamaki/bombwalk/script"
	"github.com/tamaki/bombwalk/systems/factory"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRunScripts builds the system invoking the script engine once per
// frame. Scripts spawn bombs through the same factory as player actions.
func NewRunScripts(engine *script.Engine) ecs.System {
	return func(e *ecs.ECS) {
		if engine == nil {
			return
		}

		clock := GetClock(e)
		ctx := &script.Context{
			Now: clock.Now,
			SpawnBomb: func(x, y float64) {
				factory.CreateBomb(e, x, y, clock.Now)
			},
		}

		if playerEntry, ok := tags.Player.First(e.World); ok {
			obj := components.Object.Get(playerEntry)
			ctx.PlayerX = obj.CenterX()
			ctx.PlayerY = obj.CenterY()
		}
		tags.Bomb.Each(e.World, func(*donburi.Entry) {
			ctx.BombCount++
		})

		engine.ExecuteAll(ctx)
	}
}
