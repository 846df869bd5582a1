package components

import "github.com/yohamta/donburi"

// HealthData is the player's integer health pool.
type HealthData struct {
	Current         int
	Max             int
	InvincibleUntil float64 // clock time the post-hit invincibility ends
	Alive           bool
}

var Health = donburi.NewComponentType[HealthData]()

type AmmoData struct {
	Current int
	Max     int
}

var Ammo = donburi.NewComponentType[AmmoData]()
