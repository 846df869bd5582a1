package systems

import (
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// windupRiseFactor scales MoveSpeed into the climb speed before a dive.
const windupRiseFactor = 0.5

// PerformDive starts the flyer's dive at the player position target.
// The dive runs windup, strike and recovery phases. Damage is only dealt if
// the flyer passes within ContactThreshold of the live player position
// during the strike.
func PerformDive(ecs *ecs.ECS, e *donburi.Entry, target math.Vec2) bool {
	enemy := components.Enemy.Get(e)
	attack := components.Attack.Get(e)
	dive := components.Dive.Get(e)
	physics := components.Physics.Get(e)
	clock := GetClock(ecs)
	if !attack.Ready(clock.Now) {
		return false
	}

	attack.LastAttackTime = clock.Now
	attack.IsAttacking = true
	components.State.Get(e).Enter(cfg.StateAttacking)

	dive.Generation++
	dive.Phase = cfg.DiveWindup
	dive.Target = target
	dive.HitLanded = false
	dive.Climb = nil
	enemy.Diving = true

	physics.SpeedX = 0
	physics.SpeedY = -enemy.TypeConfig.MoveSpeed * windupRiseFactor
	FaceToward(e, target.X-components.Object.Get(e).Center().X)

	scheduleDivePhase(ecs, e, dive.Generation, enemy.TypeConfig.DiveWindup, startStrike)
	return true
}

// scheduleDivePhase runs next after delay unless a newer dive has started
// or the flyer died in the meantime.
func scheduleDivePhase(ecs *ecs.ECS, e *donburi.Entry, generation int, delay float64, next func(*ecs.ECS, *donburi.Entry)) {
	clock := GetClock(ecs)
	entity := e.Entity()
	attack := components.Attack.Get(e)
	attack.Release = clock.Timer.ScheduleFor(entity, clock.Now+delay, func() {
		entry := ecs.World.Entry(entity)
		if !IsAlive(entry) || components.Dive.Get(entry).Generation != generation {
			return
		}
		next(ecs, entry)
	})
}

func startStrike(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	dive := components.Dive.Get(e)
	physics := components.Physics.Get(e)

	dive.Phase = cfg.DiveStrike
	dive.Direction = dive.Target.Sub(components.Object.Get(e).Center()).Normalized()
	v := dive.Direction.MulScalar(enemy.TypeConfig.DiveSpeed)
	physics.SpeedX = v.X
	physics.SpeedY = v.Y
	FaceToward(e, v.X)

	scheduleDivePhase(ecs, e, dive.Generation, enemy.TypeConfig.DiveDuration, endStrike)
}

// endStrike recovers from a dive that ran its full length without a hit.
func endStrike(ecs *ecs.ECS, e *donburi.Entry) {
	if components.Dive.Get(e).Phase == cfg.DiveStrike {
		startRecover(ecs, e)
	}
}

// startRecover stops the dive and climbs back to cruising height above
// the dive target, whether or not the dive connected.
func startRecover(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	dive := components.Dive.Get(e)
	physics := components.Physics.Get(e)

	dive.Phase = cfg.DiveRecover
	physics.SpeedX = 0
	physics.SpeedY = 0

	duration := enemy.TypeConfig.DiveRecovery
	fromY := components.Object.Get(e).Center().Y
	toY := dive.Target.Y - enemy.TypeConfig.FlyHeight
	if duration > 0 {
		dive.Climb = gween.New(float32(fromY), float32(toY), float32(duration), ease.OutQuad)
	}

	scheduleDivePhase(ecs, e, dive.Generation, duration, finishDive)
}

func finishDive(_ *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	dive := components.Dive.Get(e)
	physics := components.Physics.Get(e)

	dive.Phase = cfg.DiveNone
	dive.Climb = nil
	enemy.Diving = false
	physics.SpeedX = 0
	physics.SpeedY = 0
	releaseAttack(e)
}

// updateDive advances the active dive phase by one tick.
func updateDive(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	dive := components.Dive.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	dt := GetClock(ecs).DT

	switch dive.Phase {
	case cfg.DiveStrike:
		if dive.HitLanded || enemy.Services == nil || enemy.Services.Locator == nil {
			return
		}
		playerPos, ok := enemy.Services.Locator.PlayerPosition()
		if !ok {
			return
		}
		if obj.Center().Distance(playerPos) < enemy.TypeConfig.ContactThreshold {
			dive.HitLanded = true
			damagePlayer(enemy, enemy.TypeConfig.Damage)
			startRecover(ecs, e)
		}
	case cfg.DiveRecover:
		if dive.Climb == nil || dt <= 0 {
			return
		}
		y, _ := dive.Climb.Update(float32(dt))
		physics.SpeedX = 0
		physics.SpeedY = (float64(y) - obj.Center().Y) / dt
	}
}
