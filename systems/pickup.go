package systems

import (
	"log"

	"github.com/automoto/dinoclash/components"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups consumes pickups the player touches. A health pickup stays
// in place while the player is at full health.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !components.Health.Get(playerEntry).Alive {
		return
	}
	obj := components.Object.Get(playerEntry)

	var consumed []donburi.Entity
	for _, hit := range overlapping(obj.Object, 0, 0, tags.ResolvPickup) {
		e, ok := entryOf(hit)
		if !ok || !e.HasComponent(components.Pickup) {
			continue
		}
		if ApplyPickup(playerEntry, components.Pickup.Get(e)) {
			consumed = append(consumed, e.Entity())
		}
	}
	for _, entity := range consumed {
		RemoveEntity(ecs, entity)
	}
}

// ApplyPickup gives the pickup to the player and reports whether it was used up.
func ApplyPickup(playerEntry *donburi.Entry, pickup *components.PickupData) bool {
	switch pickup.Kind {
	case components.PickupHealth:
		if !RestoreHealth(playerEntry, pickup.Amount) {
			return false
		}
	case components.PickupAmmo:
		AddAmmo(playerEntry, pickup.Amount)
	default:
		return false
	}
	log.Printf("picked up %d %s", pickup.Amount, pickup.Kind)
	return true
}
