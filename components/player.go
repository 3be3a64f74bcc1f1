package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing Direction
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
