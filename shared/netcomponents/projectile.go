package netcomponents

import "github.com/yohamta/donburi"

type NetProjectileData struct {
	Direction float64
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()
