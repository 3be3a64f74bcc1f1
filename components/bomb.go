package components

import (
	"github.com/solarlune/resolv"
	"github.com/tamaki/bombwalk/config"
	"github.com/yohamta/donburi"
)

type BombData struct {
	SpawnedAt float64 // sim-clock seconds at placement
	TTL       float64
	Deflected bool
}

// Expired reports whether the bomb's fuse has run out at the given
// sim-clock time.
func (b *BombData) Expired(now float64) bool {
	return now-b.SpawnedAt >= b.TTL
}

// Remaining returns the seconds of fuse left, clamped at zero.
func (b *BombData) Remaining(now float64) float64 {
	r := b.TTL - (now - b.SpawnedAt)
	if r < 0 {
		return 0
	}
	return r
}

// Deflect applies a single discrete push impulse along dir. The Deflected
// flag is a one-shot latch: a bomb that has already been deflected is left
// untouched. No velocity is retained afterward.
func (b *BombData) Deflect(obj *resolv.Object, dir Direction) {
	if b.Deflected {
		return
	}
	dx, dy := dir.Vector()
	obj.X += dx * config.Bomb.PushDistance
	obj.Y += dy * config.Bomb.PushDistance
	obj.Update()
	b.Deflected = true
}

var Bomb = donburi.NewComponentType[BombData]()
