package systems

import (
	"math"

	"github.com/tamaki/bombwalk/components"
	"github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	targetX := playerObj.CenterX()
	targetY := playerObj.CenterY()

	// Camera bounds: keep the level filling the screen where possible
	minCameraX := camera.ViewWidth / 2
	maxCameraX := level.PixelWidth() - camera.ViewWidth/2
	minCameraY := camera.ViewHeight / 2
	maxCameraY := level.PixelHeight() - camera.ViewHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Follow with some smoothing
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera immediately, used right after world setup
// to avoid panning in from (0,0).
func SnapCamera(e *ecs.ECS, x, y float64) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = x
		camera.Position.Y = y
	}
}
