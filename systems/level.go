package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tamaki/bombwalk/components"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawLevel renders the terrain layers in order, row-major within each
// layer. A grid cell naming an unregistered tile id means the loaded
// level data is corrupt; that lookup failure is fatal, not skipped.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	tileW := float64(level.TileWidth)
	tileH := float64(level.TileHeight)

	// Visible cell window, padded one tile on each side
	left, top := camera.ScreenToWorld(0, 0)
	minCol := int(left/tileW) - 1
	minRow := int(top/tileH) - 1
	maxCol := minCol + int(camera.ViewWidth/tileW) + 3
	maxRow := minRow + int(camera.ViewHeight/tileH) + 3

	for _, layer := range level.Layers {
		for row := 0; row < level.Height; row++ {
			if row < minRow || row > maxRow {
				continue
			}
			for col := 0; col < level.Width; col++ {
				if col < minCol || col > maxCol {
					continue
				}
				cell := layer.Cell(level.Width, col, row)
				if cell < 0 {
					continue
				}
				tile, err := level.Catalog.Get(uint32(cell))
				if err != nil {
					panic(err)
				}

				drawOp.GeoM.Reset()
				drawOp.ColorScale.Reset()
				sx, sy := camera.WorldToScreen(float64(col)*tileW, float64(row)*tileH)
				drawOp.GeoM.Translate(sx, sy)
				screen.DrawImage(tile.Texture, drawOp)
			}
		}
	}
}
