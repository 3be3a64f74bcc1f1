package systems

import (
	"time"

	"github.com/tamaki/bombwalk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the sim clock by the wall-clock delta since the
// previous frame. Runs first every frame.
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e)
	clock.Tick(time.Now())
}

// GetClock returns the singleton clock, creating it on first use.
func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
