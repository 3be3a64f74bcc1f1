package factory

import (
	"github.com/tamaki/bombwalk/archetypes"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		ViewWidth:  float64(cfg.C.Width),
		ViewHeight: float64(cfg.C.Height),
	})
}
