package components

import (
	"github.com/automoto/dinoclash/timers"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner     donburi.Entity
	Damage    float64
	Speed     float64
	Direction float64 // -1 or 1, fixed at spawn
	Resolved  bool    // set by the first contact; later contacts are ignored
	Expire    timers.Handle
}

var Projectile = donburi.NewComponentType[ProjectileData]()
