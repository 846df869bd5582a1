package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	TypeName     string // "Raptor", "TRex", ...
	State        int    // config.StateID
	Hitpoints    float64
	MaxHitpoints float64
	Dead         bool
	Diving       bool
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()
