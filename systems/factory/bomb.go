package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tamaki/bombwalk/archetypes"
	"github.com/tamaki/bombwalk/assets"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBomb places a bomb centered on (x, y) with its fuse started at the
// current sim-clock time. All spawn paths (key, pointer, script) go
// through here.
func CreateBomb(ecs *ecs.ECS, x, y, now float64) *donburi.Entry {
	b := archetypes.Bomb.Spawn(ecs)

	w, h := cfg.Bomb.Width, cfg.Bomb.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvBomb)
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Bomb.SetValue(b, components.BombData{
		SpawnedAt: now,
		TTL:       cfg.Bomb.TTL,
	})

	img := assets.GetObjectImage("bomb.png")
	components.Sprite.SetValue(b, components.SpriteData{
		Image:  img,
		PivotX: float64(img.Bounds().Dx()) / 2,
		PivotY: float64(img.Bounds().Dy()) / 2,
	})

	return b
}
