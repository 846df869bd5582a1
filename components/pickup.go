package components

import "github.com/yohamta/donburi"

type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupAmmo
)

func (k PickupKind) String() string {
	if k == PickupAmmo {
		return "ammo"
	}
	return "health"
}

type PickupData struct {
	Kind   PickupKind
	Amount int
}

var Pickup = donburi.NewComponentType[PickupData]()
