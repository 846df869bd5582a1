package systems

import (
	"math"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/shared/gamemath"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// MoveToward steers an enemy toward target at speed.
//
// Ground archetypes only assert horizontal velocity, and only while grounded
// (or when the archetype does not require ground); vertical velocity stays
// with physics. Flying archetypes move along the full 2D direction.
func MoveToward(e *donburi.Entry, target math2.Vec2, speed float64) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	pos := components.Object.Get(e).Center()
	delta := target.Sub(pos)

	if enemy.TypeConfig.Motion == cfg.MotionFlyingDive {
		v := delta.Normalized().MulScalar(speed)
		physics.SpeedX = v.X
		physics.SpeedY = v.Y
		FaceToward(e, delta.X)
		updateMotionFlags(enemy, physics)
		return
	}

	if enemy.TypeConfig.RequireGround && !IsGrounded(e) {
		enemy.Running = false
		return
	}
	physics.SpeedX = gamemath.Sign(delta.X) * speed
	FaceToward(e, delta.X)
	updateMotionFlags(enemy, physics)
}

// StopMoving zeroes the velocity the enemy controls. Like MoveToward, a
// ground archetype that needs footing leaves vx alone while airborne.
func StopMoving(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	switch {
	case enemy.TypeConfig.Motion == cfg.MotionFlyingDive:
		physics.SpeedX = 0
		physics.SpeedY = 0
	case enemy.TypeConfig.RequireGround && !IsGrounded(e):
		enemy.Running = false
		return
	default:
		physics.SpeedX = 0
	}
	updateMotionFlags(enemy, physics)
}

// FaceToward flips e when the horizontal direction dx disagrees with its
// facing. dx == 0 keeps the current facing.
func FaceToward(e *donburi.Entry, dx float64) {
	facing := components.Facing.Get(e)
	switch {
	case dx > 0 && facing.Direction != components.FacingRight:
		flip(facing)
	case dx < 0 && facing.Direction != components.FacingLeft:
		flip(facing)
	}
}

// flip toggles facing and the visual mirror. It never touches the body.
func flip(facing *components.FacingData) {
	if facing.Direction == components.FacingRight {
		facing.Direction = components.FacingLeft
	} else {
		facing.Direction = components.FacingRight
	}
	facing.MirrorX = !facing.MirrorX
}

// IsGrounded probes just below e for solid ground.
func IsGrounded(e *donburi.Entry) bool {
	obj := components.Object.Get(e)
	return len(overlapping(obj.Object, 0, cfg.Physics.GroundProbe, tags.ResolvSolid)) > 0
}

// updateMotionFlags derives the running/flying animation flags from the
// horizontal speed.
func updateMotionFlags(enemy *components.EnemyData, physics *components.PhysicsData) {
	moving := math.Abs(physics.SpeedX) > cfg.Enemy.RunningEpsilon
	flyer := enemy.TypeConfig.Motion == cfg.MotionFlyingDive
	enemy.Running = moving && !flyer
	enemy.Flying = moving && flyer
}
