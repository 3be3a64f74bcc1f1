package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/script"
	"github.com/tamaki/bombwalk/systems"
	"github.com/tamaki/bombwalk/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the tile world: per frame it advances the clock, applies
// input to the player, resolves bomb interactions, runs the script hook,
// then renders terrain, entities, and the game-over overlay. A restart
// raised from the terminal state rebuilds the whole world.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	engine       *script.Engine
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// World reset and scene transitions happen between frames, never
	// mid-update.
	session := systems.GetSession(ws.ecs)
	if session.QuitToMenu {
		ws.teardown()
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}
	if session.RestartRequested {
		ws.reset()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// reset is the full world reset: every entity id is dropped with the old
// world and the level, player, and script state are rebuilt from scratch.
func (ws *WorldScene) reset() {
	ws.teardown()
	ws.configure()
}

func (ws *WorldScene) teardown() {
	if ws.engine != nil {
		ws.engine.Close()
		ws.engine = nil
	}
}

func (ws *WorldScene) configure() {
	ws.engine = script.NewEngine(cfg.C.ScriptDir, log.Default())
	if err := ws.engine.LoadAll(); err != nil {
		log.Warn("no scripts loaded", "dir", cfg.C.ScriptDir, "err", err)
	} else if cfg.C.WatchScripts {
		if err := ws.engine.Watch(); err != nil {
			log.Warn("script watch unavailable", "err", err)
		}
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Frame order: clock, input, restart polling, then the gameplay
	// systems which freeze once the player state is terminal.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateRestart)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateInteractions))
	e.AddSystem(systems.WithGameplayChecks(systems.NewRunScripts(ws.engine)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawns))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Renderers: terrain, bombs, reap (with the blast proximity check),
	// player, HUD, overlay.
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.ReapExpired)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawGameOverOverlay)

	ws.ecs = e

	// Build the world: level first, then the space sized from it.
	levelEntry := factory.CreateLevel(e)
	level := components.Level.Get(levelEntry).CurrentLevel

	factory.CreateSpace(e,
		int(level.PixelWidth()),
		int(level.PixelHeight()),
		level.TileWidth, level.TileHeight,
	)

	factory.CreateCamera(e)

	spawnX, spawnY := cfg.Player.DefaultSpawnX, cfg.Player.DefaultSpawnY
	if level.Spawn != nil {
		spawnX, spawnY = level.Spawn.X, level.Spawn.Y
	}
	player := factory.CreatePlayer(e, spawnX, spawnY)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(components.Object.Get(player).Object)
	}

	obj := components.Object.Get(player)
	systems.SnapCamera(e, obj.CenterX(), obj.CenterY())
}
