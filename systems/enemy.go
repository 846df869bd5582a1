package systems

import (
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateEnemies(ecs *ecs.ECS) {
	dt := GetClock(ecs).DT

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		// Dead enemies wait for removal.
		if components.Combat.Get(e).Dead {
			return
		}

		state := components.State.Get(e)
		state.StateTimer += dt

		updateEnemyAI(ecs, e)
	})
}

func updateEnemyAI(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	state := components.State.Get(e)
	pos := components.Object.Get(e).Center()

	playerPos, hasPlayer := locatePlayer(enemy)
	distanceToPlayer := 0.0
	if hasPlayer {
		distanceToPlayer = pos.Distance(playerPos)
	}

	// An attack in progress always runs to its release.
	if state.CurrentState == cfg.StateAttacking {
		handleAttackState(ecs, e)
		return
	}

	// Mode transitions are evaluated before acting on the mode.
	switch state.CurrentState {
	case cfg.StatePatrol:
		if hasPlayer && distanceToPlayer < enemy.TypeConfig.DetectionRange {
			state.Enter(cfg.StateChase)
		}
	case cfg.StateChase:
		// Hysteresis to prevent flapping at the detection boundary
		if !hasPlayer || distanceToPlayer > enemy.TypeConfig.DetectionRange*cfg.Enemy.HysteresisMultiplier {
			state.Enter(cfg.StatePatrol)
		}
	default:
		state.Enter(cfg.StatePatrol)
	}

	switch state.CurrentState {
	case cfg.StatePatrol:
		handlePatrol(e)
	case cfg.StateChase:
		if enemy.TypeConfig.Motion == cfg.MotionFlyingDive {
			handleFlyerChase(ecs, e, playerPos)
		} else {
			handleGroundChase(ecs, e, playerPos)
		}
	}
}

// handleGroundChase closes in on the player and strikes when in range.
// In range but facing away, the enemy turns this tick and strikes on a
// later one.
func handleGroundChase(ecs *ecs.ECS, e *donburi.Entry, playerPos math.Vec2) {
	enemy := components.Enemy.Get(e)
	pos := components.Object.Get(e).Center()

	if pos.Distance(playerPos) > enemy.TypeConfig.AttackRange {
		MoveToward(e, playerPos, enemy.TypeConfig.MoveSpeed)
		return
	}

	StopMoving(e)
	if CanAttack(ecs, e, playerPos) {
		PerformAttack(ecs, e)
		return
	}
	if enemy.TypeConfig.FacingCheck && !IsFacing(e, playerPos) {
		FaceToward(e, playerPos.X-pos.X)
	}
}

// handleFlyerChase hovers FlyHeight above the player and dives when the
// cooldown allows.
func handleFlyerChase(ecs *ecs.ECS, e *donburi.Entry, playerPos math.Vec2) {
	enemy := components.Enemy.Get(e)
	pos := components.Object.Get(e).Center()

	if CanAttack(ecs, e, playerPos) {
		PerformDive(ecs, e, playerPos)
		return
	}

	hover := math.Vec2{X: playerPos.X, Y: playerPos.Y - enemy.TypeConfig.FlyHeight}
	if pos.Distance(hover) < enemy.TypeConfig.ArrivalThreshold {
		StopMoving(e)
		FaceToward(e, playerPos.X-pos.X)
		return
	}
	MoveToward(e, hover, enemy.TypeConfig.MoveSpeed)
}

func handleAttackState(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if enemy.TypeConfig.Motion == cfg.MotionFlyingDive {
		updateDive(ecs, e)
		return
	}
	// Melee holds position until the attack is released.
	StopMoving(e)
}

func locatePlayer(enemy *components.EnemyData) (math.Vec2, bool) {
	if enemy.Services == nil || enemy.Services.Locator == nil {
		return math.Vec2{}, false
	}
	return enemy.Services.Locator.PlayerPosition()
}
