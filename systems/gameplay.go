package systems

import (
	"github.com/tamaki/bombwalk/components"
	"github.com/tamaki/bombwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system so it is skipped once the player has
// hit game over. Input, clock and render systems stay unwrapped.
func WithGameplayChecks(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsGameOver(e) {
			return
		}
		system(e)
	}
}

// IsGameOver reports whether the player entity is in its terminal state.
func IsGameOver(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	return components.State.Get(playerEntry).Terminal()
}
