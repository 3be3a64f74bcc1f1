package factory

import (
	"github.com/tamaki/bombwalk/archetypes"
	"github.com/tamaki/bombwalk/assets"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	current := loader.MustLoad(cfg.C.LevelPath)

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
	})

	return level
}
