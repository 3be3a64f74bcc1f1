// Package script runs the per-frame tengo hooks. Scripts are plain tengo
// programs compiled once at world setup and executed top-to-bottom every
// frame with a `game` API map and a persistent `state` map in scope.
package script

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Context is the engine handle handed to scripts each frame. SpawnBomb
// goes through the same spawn API as player actions.
type Context struct {
	Now       float64
	PlayerX   float64
	PlayerY   float64
	BombCount int
	SpawnBomb func(x, y float64)
}

type unit struct {
	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

type Engine struct {
	dir    string
	logger *log.Logger
	units  []*unit

	watcher *Watcher
}

func NewEngine(dir string, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{dir: dir, logger: logger}
}

// LoadAll compiles every *.tengo file in the engine's directory. A script
// that fails to compile is skipped with an error log; an unreadable
// directory is returned to the caller.
func (e *Engine) LoadAll() error {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return err
	}

	e.units = e.units[:0]
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tengo") {
			continue
		}
		path := filepath.Join(e.dir, entry.Name())
		u, err := compileUnit(path)
		if err != nil {
			e.logger.Error("script compile failed", "path", path, "err", err)
			continue
		}
		e.units = append(e.units, u)
		e.logger.Info("script loaded", "path", path)
	}
	return nil
}

// Watch starts recompiling scripts when files in the directory change.
// Reloads are applied between frames, at the top of ExecuteAll.
func (e *Engine) Watch() error {
	w, err := NewWatcher(e.dir)
	if err != nil {
		return err
	}
	e.watcher = w
	return nil
}

func (e *Engine) Close() {
	if e.watcher != nil {
		_ = e.watcher.Close()
		e.watcher = nil
	}
}

// ExecuteAll runs every loaded script once against ctx. Changed files
// queued by the watcher are recompiled first, so scripts never swap
// mid-frame.
func (e *Engine) ExecuteAll(ctx *Context) {
	e.drainReloads()

	game := buildGameAPI(ctx)
	for _, u := range e.units {
		if err := u.compiled.Set("game", game); err != nil {
			e.logger.Error("script global", "path", u.path, "err", err)
			continue
		}
		if err := u.compiled.Set("state", u.state); err != nil {
			e.logger.Error("script global", "path", u.path, "err", err)
			continue
		}
		if err := u.compiled.Run(); err != nil {
			e.logger.Error("script run failed", "path", u.path, "err", err)
		}
	}
}

func (e *Engine) drainReloads() {
	if e.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			reload = true
		case err, ok := <-e.watcher.Errors:
			if ok {
				e.logger.Warn("script watcher", "err", err)
			}
		default:
			if reload {
				if err := e.LoadAll(); err != nil {
					e.logger.Error("script reload failed", "err", err)
				}
			}
			return
		}
	}
}

func compileUnit(path string) (*unit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := tengo.NewScript(src)
	_ = s.Add("game", &tengo.ImmutableMap{Value: map[string]tengo.Object{}})
	state := &tengo.Map{Value: map[string]tengo.Object{}}
	_ = s.Add("state", state)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, err
	}
	return &unit{path: path, compiled: compiled, state: state}, nil
}

func buildGameAPI(ctx *Context) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["elapsed"] = &tengo.UserFunction{Name: "elapsed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.Now}, nil
	}}

	values["bombs"] = &tengo.UserFunction{Name: "bombs", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(ctx.BombCount)}, nil
	}}

	values["player_pos"] = &tengo.UserFunction{Name: "player_pos", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: ctx.PlayerX},
			&tengo.Float{Value: ctx.PlayerY},
		}}, nil
	}}

	values["spawn_bomb"] = &tengo.UserFunction{Name: "spawn_bomb", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx.SpawnBomb == nil || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		ctx.SpawnBomb(x, y)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
