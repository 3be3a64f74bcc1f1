package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/fonts"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type menuState struct {
	selected int
}

// NewUpdateMenu creates the title menu system.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	state := &menuState{}
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		numOptions := len(cfg.Menu.Options)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			state.selected = (state.selected - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			state.selected = (state.selected + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch state.selected {
			case 0:
				sceneChanger.ChangeScene(createWorldScene())
			case 1:
				os.Exit(0)
			}
		}

		menuSelected = state.selected
	}
}

// menuSelected mirrors the menu cursor for the renderer.
var menuSelected int

// DrawMenu renders the title menu.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	title := cfg.Menu.Title
	titleFont := fonts.Title.Get()
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menuSelected {
			textColor = cfg.Menu.TextColorSelected
		}

		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}
}
