package factory

import (
	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickup places a pickup resting at (x, y). amount <= 0 uses the
// configured default for kind.
func CreatePickup(ecs *ecs.ECS, x, y float64, kind components.PickupKind, amount int) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	size := cfg.Pickup.Size
	addToSpace(ecs, pickup, resolv.NewObject(x-size/2, y-size, size, size, tags.ResolvPickup))

	if amount <= 0 {
		amount = cfg.Pickup.HealthAmount
		if kind == components.PickupAmmo {
			amount = cfg.Pickup.AmmoAmount
		}
	}
	components.Pickup.SetValue(pickup, components.PickupData{Kind: kind, Amount: amount})

	return pickup
}
