package systems

import (
	"log"
	"math"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RefreshArchetypes copies the current archetype config onto every live
// enemy. Hitpoints already lost stay lost; they are only clamped to a
// lowered maximum. A motion profile change cannot be applied to a live
// body and is skipped until the next spawn. Returns the number of enemies
// refreshed.
func RefreshArchetypes(ecs *ecs.ECS) int {
	refreshed := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !IsAlive(e) {
			return
		}
		enemy := components.Enemy.Get(e)
		next, ok := cfg.Enemy.Types[enemy.TypeName]
		if !ok {
			return
		}
		if next.Motion != enemy.TypeConfig.Motion {
			log.Printf("reload: %s motion changed to %s, applies to new spawns only", enemy.TypeName, next.Motion)
			return
		}

		enemy.TypeConfig = &next

		combat := components.Combat.Get(e)
		combat.MaxHitpoints = next.Hitpoints
		combat.Hitpoints = math.Min(combat.Hitpoints, next.Hitpoints)
		combat.DisplayName = next.Name
		combat.Description = next.Description
		combat.Icon = next.Icon

		components.Attack.Get(e).Cooldown = next.AttackCooldown
		refreshed++
	})
	return refreshed
}
