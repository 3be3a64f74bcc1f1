package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Bomb   = donburi.NewTag().SetName("Bomb")
)

// Resolv tags for space objects
const (
	ResolvPlayer = "Player"
	ResolvBomb   = "Bomb"
)
