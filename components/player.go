package components

import (
	"github.com/yohamta/donburi"
)

// PlayerInput holds the intents applied on the next player update.
type PlayerInput struct {
	MoveX float64 // -1..1
	Jump  bool
	Fire  bool
}

type PlayerData struct {
	Input PlayerInput
	// EnemyContact is set while a live enemy body overlaps the player.
	// Contact alone never deals damage.
	EnemyContact bool
}

var Player = donburi.NewComponentType[PlayerData]()
