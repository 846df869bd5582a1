package systems

import (
	"log"
	"math"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeHit applies damage to a combat entity. Hitpoints never increase; once
// they reach zero the entity dies exactly once and every later hit is ignored.
func TakeHit(ecs *ecs.ECS, e *donburi.Entry, damage float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Combat) {
		log.Printf("TakeHit: target is not a combat entity")
		return
	}
	if damage < 0 || math.IsNaN(damage) {
		log.Printf("TakeHit: ignoring invalid damage %v", damage)
		return
	}

	combat := components.Combat.Get(e)
	if combat.Dead {
		return
	}

	combat.Hitpoints -= damage
	if combat.Hitpoints > 0 {
		provokeOnHit(e)
		return
	}

	combat.Hitpoints = 0
	killEntity(ecs, e, combat)
}

// IsAlive reports whether e can still be damaged.
func IsAlive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Combat) {
		return false
	}
	return components.Combat.Get(e).Alive()
}

func killEntity(ecs *ecs.ECS, e *donburi.Entry, combat *components.CombatData) {
	combat.Dead = true
	combat.Collidable = false

	var enemy *components.EnemyData
	if e.HasComponent(components.Enemy) {
		enemy = components.Enemy.Get(e)
	}
	notifyDeath(enemy, combat)

	// No further movement, attacks or contacts.
	GetClock(ecs).Timer.CancelOwner(e.Entity())
	removeFromSpace(ecs, e)
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0
		physics.OnGround = nil
	}
	if e.HasComponent(components.Attack) {
		attack := components.Attack.Get(e)
		attack.IsAttacking = false
	}
	if e.HasComponent(components.Dive) {
		components.Dive.Get(e).Phase = cfg.DiveNone
	}
	if enemy != nil {
		enemy.Running = false
		enemy.Diving = false
	}

	delay := 0.0
	if enemy != nil && enemy.TypeConfig != nil {
		delay = enemy.TypeConfig.DeathDelay
	}
	log.Printf("%s died, removing in %.1fs", combat.DisplayName, delay)
	ScheduleRemoval(ecs, e, delay)
}

func notifyDeath(enemy *components.EnemyData, combat *components.CombatData) {
	if enemy == nil || enemy.Services == nil || enemy.Services.Notifier == nil {
		log.Printf("no creature notifier for %s, skipping info popup", combat.DisplayName)
		return
	}
	enemy.Services.Notifier.ShowCreatureInfo(combat.DisplayName, combat.Description, combat.Icon)
}

// provokeOnHit makes archetypes that react to damage start chasing.
func provokeOnHit(e *donburi.Entry) {
	if !e.HasComponent(components.Enemy) || !e.HasComponent(components.State) {
		return
	}
	enemy := components.Enemy.Get(e)
	if enemy.TypeConfig == nil || !enemy.TypeConfig.ProvokeOnHit {
		return
	}
	state := components.State.Get(e)
	if state.CurrentState == cfg.StatePatrol {
		state.Enter(cfg.StateChase)
	}
}
