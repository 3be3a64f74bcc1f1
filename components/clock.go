package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData tracks wall-clock frame deltas and accumulated sim time.
// Tests set Now/Delta directly instead of ticking.
type ClockData struct {
	Now   float64 // seconds since world setup
	Delta float64 // seconds since the previous frame

	LastTick time.Time
	Started  bool
}

// Tick advances the clock to t.
func (c *ClockData) Tick(t time.Time) {
	if !c.Started {
		c.LastTick = t
		c.Started = true
		c.Delta = 0
		return
	}
	c.Delta = t.Sub(c.LastTick).Seconds()
	c.Now += c.Delta
	c.LastTick = t
}

var Clock = donburi.NewComponentType[ClockData]()
