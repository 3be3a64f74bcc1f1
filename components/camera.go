package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2

	// Viewport dimensions, set when the camera is created
	ViewWidth  float64
	ViewHeight float64
}

// ScreenToWorld translates viewport pixel coordinates into world space.
func (c *CameraData) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := c.Position.X - c.ViewWidth/2 + sx
	wy := c.Position.Y - c.ViewHeight/2 + sy
	return wx, wy
}

// WorldToScreen translates world coordinates into viewport pixel space.
func (c *CameraData) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := wx - c.Position.X + c.ViewWidth/2
	sy := wy - c.Position.Y + c.ViewHeight/2
	return sx, sy
}

var Camera = donburi.NewComponentType[CameraData]()
