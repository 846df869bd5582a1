package components

import (
	"github.com/automoto/dinoclash/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Raptor", "TRex", "Pterodactyl" etc...
	TypeConfig *config.EnemyTypeConfig // Cached copy of the archetype configuration
	Services   *Services

	// Animation flags, read by renderers and the network sync.
	Running bool
	Flying  bool
	Diving  bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
