package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tamaki/bombwalk/components"
	cfg "github.com/tamaki/bombwalk/config"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteractions is the deflection pass. It runs after the player
// update, so the Attack check sees this frame's post-input state, and
// strictly before the render reap.
func UpdateInteractions(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Attack {
		return
	}

	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	clock := GetClock(e)

	tags.Bomb.Each(e.World, func(entry *donburi.Entry) {
		bomb := components.Bomb.Get(entry)
		if bomb.Deflected || bomb.Expired(clock.Now) {
			return
		}
		obj := components.Object.Get(entry)
		dx := obj.CenterX() - playerObj.CenterX()
		dy := obj.CenterY() - playerObj.CenterY()
		if !withinDeflectRange(dx, dy) || !inFacingCone(player.Facing, dx, dy) {
			return
		}
		bomb.Deflect(obj.Object, player.Facing)
	})
}

// withinDeflectRange is the circular range gate around the player.
func withinDeflectRange(dx, dy float64) bool {
	r := cfg.Bomb.DeflectRadius
	return dx*dx+dy*dy <= r*r
}

// inFacingCone checks the directional gate: the offset must sit on the
// facing side of the player, with its perpendicular component inside the
// cone half-width.
func inFacingCone(facing components.Direction, dx, dy float64) bool {
	half := cfg.Bomb.ConeHalfWidth
	switch facing {
	case components.DirUp:
		return dy <= 0 && math.Abs(dx) <= half
	case components.DirDown:
		return dy >= 0 && math.Abs(dx) <= half
	case components.DirLeft:
		return dx <= 0 && math.Abs(dy) <= half
	default:
		return dx >= 0 && math.Abs(dy) <= half
	}
}

// ReapExpired removes every bomb observed as expired this frame. Each
// removal checks blast proximity against the player: within 32 units on
// both axes the player transitions to GameOver. Registered as a renderer
// so reaping happens inside the render pass, after the bombs were drawn
// one last time.
func ReapExpired(e *ecs.ECS, screen *ebiten.Image) {
	clock := GetClock(e)

	var playerObj *components.ObjectData
	var playerState *components.StateData
	if playerEntry, ok := tags.Player.First(e.World); ok {
		playerObj = components.Object.Get(playerEntry)
		playerState = components.State.Get(playerEntry)
	}

	var expired []*donburi.Entry
	tags.Bomb.Each(e.World, func(entry *donburi.Entry) {
		if components.Bomb.Get(entry).Expired(clock.Now) {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		obj := components.Object.Get(entry)

		// Each simultaneous expiry is checked independently; the
		// transition is a no-op once the state machine is terminal.
		if playerObj != nil && !playerState.Terminal() &&
			withinBlast(obj.CenterX()-playerObj.CenterX(), obj.CenterY()-playerObj.CenterY()) {
			playerState.Transition(cfg.GameOver)
		}

		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		entry.Remove()
	}
}

// withinBlast is the per-axis proximity gate applied when a bomb expires.
func withinBlast(dx, dy float64) bool {
	r := cfg.Bomb.ProximityRange
	return math.Abs(dx) < r && math.Abs(dy) < r
}
