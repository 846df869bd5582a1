package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerData struct {
	Health    int
	MaxHealth int
	Ammo      int
	Alive     bool
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()
