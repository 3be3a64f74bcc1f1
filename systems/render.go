package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSprites renders every entity carrying a static sprite (bombs).
// Registry iteration order is the paint order; it carries no meaning.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	clock := GetClock(e)

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		sprite := components.Sprite.Get(entry)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		drawOp.GeoM.Rotate(sprite.Rotation)
		sx, sy := camera.WorldToScreen(o.CenterX(), o.CenterY())
		drawOp.GeoM.Translate(sx, sy)

		// Fuse warning: tint the bomb red when the fuse is nearly out
		if entry.HasComponent(components.Bomb) {
			bomb := components.Bomb.Get(entry)
			if bomb.Remaining(clock.Now) < cfg.Bomb.FuseWarning {
				drawOp.ColorScale.Scale(1, 0.4, 0.4, 1)
			}
		}

		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawAnimated renders the player from its current animation frame,
// after reaping so the player always paints above surviving bombs.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		animData := components.Animation.Get(entry)
		if animData.CurrentAnimation == nil {
			return
		}

		frame := animData.CurrentAnimation.Frame()

		var img *ebiten.Image
		if frames, ok := animData.CachedFrames[animData.CurrentSheet]; ok {
			img = frames[frame]
		}

		// Fallback to runtime slicing if not cached (safety)
		if img == nil && animData.SpriteSheets[animData.CurrentSheet] != nil {
			sx := frame * animData.FrameWidth
			srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
			img = animData.SpriteSheets[animData.CurrentSheet].SubImage(srcRect).(*ebiten.Image)

			if animData.CachedFrames[animData.CurrentSheet] == nil {
				animData.CachedFrames[animData.CurrentSheet] = make(map[int]*ebiten.Image)
			}
			animData.CachedFrames[animData.CurrentSheet][frame] = img
		}

		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		// Flip the sprite when facing left
		if entry.HasComponent(components.Player) {
			player := components.Player.Get(entry)
			if player.Facing == components.DirLeft {
				drawOp.GeoM.Scale(-1, 1)
			}
		}

		sx2, sy2 := camera.WorldToScreen(o.CenterX(), o.Y+o.H)
		drawOp.GeoM.Translate(sx2, sy2)

		screen.DrawImage(img, drawOp)
	})
}
