package systems

import (
	"math"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// handlePatrol walks the enemy's route in a loop. An enemy without a
// route idles in place.
func handlePatrol(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	patrol := components.Patrol.Get(e)
	pos := components.Object.Get(e).Center()

	target, ok := patrol.Target()
	if !ok {
		StopMoving(e)
		return
	}

	if arrived(enemy.TypeConfig, pos, target) {
		patrol.Advance()
		target, _ = patrol.Target()
		if arrived(enemy.TypeConfig, pos, target) {
			// Single waypoint or overlapping points: hold position.
			StopMoving(e)
			return
		}
	}
	MoveToward(e, target, enemy.TypeConfig.MoveSpeed)
}

// arrived uses horizontal distance for walkers, which cannot reach a
// waypoint's height, and full distance for flyers.
func arrived(t *cfg.EnemyTypeConfig, pos, target math2.Vec2) bool {
	if t.Motion == cfg.MotionFlyingDive {
		return pos.Distance(target) < t.ArrivalThreshold
	}
	return math.Abs(target.X-pos.X) < t.ArrivalThreshold
}
