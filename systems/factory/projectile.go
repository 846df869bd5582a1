package factory

import (
	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	"github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile in front of owner, travelling along
// owner's facing. The direction never changes afterwards.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	direction := components.FacingRight.Sign()
	if owner.HasComponent(components.Facing) {
		direction = components.Facing.Get(owner).Direction.Sign()
	}

	// Start position (muzzle ahead of the owner's center)
	center := ownerObj.Center()
	startX := center.X + direction*config.Player.FireOffsetX
	startY := center.Y

	addToSpace(ecs, p, resolv.NewObject(
		startX-config.Projectile.Width/2,
		startY-config.Projectile.Height/2,
		config.Projectile.Width,
		config.Projectile.Height,
		tags.ResolvProjectile,
	))

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner.Entity(),
		Damage:    config.Projectile.Damage,
		Speed:     config.Projectile.Speed,
		Direction: direction,
	})

	return p
}
