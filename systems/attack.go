package systems

import (
	"log"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// IsFacing reports whether e looks toward target horizontally. A target
// straight above or below counts as not faced.
func IsFacing(e *donburi.Entry, target math.Vec2) bool {
	pos := components.Object.Get(e).Center()
	facing := components.Facing.Get(e).Direction
	return (target.X > pos.X && facing == components.FacingRight) ||
		(target.X < pos.X && facing == components.FacingLeft)
}

// CanAttack reports whether e may start an attack on a player at target now.
func CanAttack(ecs *ecs.ECS, e *donburi.Entry, target math.Vec2) bool {
	enemy := components.Enemy.Get(e)
	attack := components.Attack.Get(e)
	if !attack.Ready(GetClock(ecs).Now) {
		return false
	}
	pos := components.Object.Get(e).Center()
	if pos.Distance(target) > enemy.TypeConfig.AttackRange {
		return false
	}
	if enemy.TypeConfig.FacingCheck && !IsFacing(e, target) {
		return false
	}
	return true
}

// PerformAttack starts a melee attack. Damage lands immediately; the
// attack state is released after the archetype's attack duration.
// A trigger while an attack is running or cooling down is ignored.
func PerformAttack(ecs *ecs.ECS, e *donburi.Entry) bool {
	enemy := components.Enemy.Get(e)
	attack := components.Attack.Get(e)
	clock := GetClock(ecs)
	if !attack.Ready(clock.Now) {
		return false
	}

	attack.LastAttackTime = clock.Now
	attack.IsAttacking = true
	components.State.Get(e).Enter(cfg.StateAttacking)
	StopMoving(e)

	damagePlayer(enemy, enemy.TypeConfig.Damage)

	entity := e.Entity()
	attack.Release = clock.Timer.ScheduleFor(entity, clock.Now+enemy.TypeConfig.AttackDuration, func() {
		releaseAttack(ecs.World.Entry(entity))
	})
	return true
}

// releaseAttack ends an attack and returns the enemy to chasing.
func releaseAttack(e *donburi.Entry) {
	if !IsAlive(e) {
		return
	}
	attack := components.Attack.Get(e)
	attack.IsAttacking = false
	state := components.State.Get(e)
	if state.CurrentState == cfg.StateAttacking {
		state.Enter(cfg.StateChase)
	}
}

func damagePlayer(enemy *components.EnemyData, amount int) {
	if enemy.Services == nil || enemy.Services.Damager == nil {
		log.Printf("%s attack has no player health to damage", enemy.TypeName)
		return
	}
	enemy.Services.Damager.TakeDamage(amount)
}
