package systems

import (
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/shared/gamemath"
	"github.com/automoto/dinoclash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocities, applies gravity and stops bodies
// at solids. Horizontal and vertical movement are resolved separately.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := GetClock(ecs).DT

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Dead actors are out of the space and frozen until removal
		if e.HasComponent(components.Combat) && components.Combat.Get(e).Dead {
			return
		}
		if e.HasComponent(components.Health) && !components.Health.Get(e).Alive {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if obj.Space == nil {
			return
		}

		// Apply gravity
		physics.SpeedY += physics.Gravity * cfg.Physics.Gravity * dt
		if physics.Gravity > 0 {
			physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, cfg.Physics.MaxFallSpeed)
		}

		resolveHorizontal(physics, obj.Object, physics.SpeedX*dt)
		resolveVertical(physics, obj.Object, physics.SpeedY*dt)
		obj.Update()
	})
}

// resolveHorizontal moves obj by dx, stopping flush against the nearest solid.
func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	solids := overlapping(obj, dx, 0, tags.ResolvSolid)
	if len(solids) == 0 {
		obj.X += dx
		return
	}

	stop := obj.X + dx
	for _, s := range solids {
		if dx > 0 && s.X-obj.W < stop {
			stop = s.X - obj.W
		}
		if dx < 0 && s.X+s.W > stop {
			stop = s.X + s.W
		}
	}
	obj.X = stop
	physics.SpeedX = 0
}

// resolveVertical moves obj by dy and records the ground it lands on.
func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnGround = nil
	if dy != 0 {
		solids := overlapping(obj, 0, dy, tags.ResolvSolid)
		if len(solids) == 0 {
			obj.Y += dy
		} else {
			stop := obj.Y + dy
			var landed *resolv.Object
			for _, s := range solids {
				if dy > 0 && s.Y-obj.H < stop {
					stop = s.Y - obj.H
					landed = s
				}
				if dy < 0 && s.Y+s.H > stop {
					stop = s.Y + s.H
				}
			}
			obj.Y = stop
			physics.SpeedY = 0
			if landed != nil {
				physics.OnGround = landed
				return
			}
		}
	}

	if ground := overlapping(obj, 0, cfg.Physics.GroundProbe, tags.ResolvSolid); len(ground) > 0 {
		physics.OnGround = ground[0]
	}
}
