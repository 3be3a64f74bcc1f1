package systems

import (
	"math"

	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	clock := GetClock(e)
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	up := GetAction(input, cfg.ActionMoveUp).Pressed
	down := GetAction(input, cfg.ActionMoveDown).Pressed
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	dx, dy := moveDelta(up, down, left, right, cfg.Player.Speed, clock.Delta)
	moving := dx != 0 || dy != 0
	if moving {
		obj.X += dx
		obj.Y += dy
		clampToLevel(e, obj)
		obj.Update()
		player.Facing = dominantAxis(dx, dy, player.Facing)
	}

	switch state.CurrentState {
	case cfg.Attack:
		// Attack holds until its animation completes, then falls back to
		// whatever the movement input says.
		if animData.CurrentAnimation == nil || animData.CurrentAnimation.Looped {
			if moving {
				state.Transition(cfg.Move)
			} else {
				state.Transition(cfg.Idle)
			}
		}
	default:
		attack := GetAction(input, cfg.ActionAttack)
		// Attacking while pushing both axes at once is rejected; the
		// attack input is simply ignored that frame.
		if attack.JustPressed && activeAxes(up, down, left, right) <= 1 {
			state.Transition(cfg.Attack)
		} else if moving {
			state.Transition(cfg.Move)
		} else {
			state.Transition(cfg.Idle)
		}
	}

	animData.SetAnimation(state.CurrentState)
	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}

// moveDelta turns four 0/1 direction weights into a world-space step:
// opposing weights cancel, the remainder scales by speed and elapsed time.
func moveDelta(up, down, left, right bool, speed, dt float64) (float64, float64) {
	var x, y float64
	if right {
		x++
	}
	if left {
		x--
	}
	if down {
		y++
	}
	if up {
		y--
	}
	return x * speed * dt, y * speed * dt
}

// dominantAxis picks the facing for a movement step: the axis with the
// larger component wins, ties go horizontal, zero movement keeps current.
func dominantAxis(dx, dy float64, current components.Direction) components.Direction {
	if dx == 0 && dy == 0 {
		return current
	}
	if math.Abs(dx) >= math.Abs(dy) && dx != 0 {
		if dx < 0 {
			return components.DirLeft
		}
		return components.DirRight
	}
	if dy < 0 {
		return components.DirUp
	}
	return components.DirDown
}

func activeAxes(up, down, left, right bool) int {
	axes := 0
	if up || down {
		axes++
	}
	if left || right {
		axes++
	}
	return axes
}

// clampToLevel keeps an object inside the level's pixel bounds.
func clampToLevel(e *ecs.ECS, obj *components.ObjectData) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	obj.X = clamp(obj.X, 0, level.PixelWidth()-obj.W)
	obj.Y = clamp(obj.Y, 0, level.PixelHeight()-obj.H)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, v))
}
