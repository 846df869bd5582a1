package systems

import (
	"log"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ContactKind is how a contact was delivered. A body that is both solid
// and a trigger reports both kinds for the same overlap.
type ContactKind int

const (
	ContactCollision ContactKind = iota
	ContactTrigger
)

// offLevelMargin is how far outside the level a projectile may travel
// before it is discarded.
const offLevelMargin = 2.0

type projectileContact struct {
	projectile *donburi.Entry
	other      *donburi.Entry
	kind       ContactKind
}

// UpdateProjectiles moves projectiles at constant velocity and resolves
// their contacts after every projectile has moved.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := GetClock(ecs).DT

	var width, height float64
	if level, ok := components.Level.First(ecs.World); ok {
		if current := components.Level.Get(level).CurrentLevel; current != nil {
			width, height = current.Width, current.Height
		}
	}

	var contacts []projectileContact
	var offLevel []donburi.Entity

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		if projectile.Resolved {
			return
		}
		obj := components.Object.Get(e)
		obj.X += projectile.Direction * projectile.Speed * dt
		obj.Update()

		if width > 0 && (obj.X < -offLevelMargin || obj.X > width+offLevelMargin ||
			obj.Y < -offLevelMargin || obj.Y > height+offLevelMargin) {
			offLevel = append(offLevel, e.Entity())
			return
		}

		for _, hit := range overlapping(obj.Object, 0, 0, tags.ResolvSolid, tags.ResolvEnemy) {
			other, ok := entryOf(hit)
			if !ok || other.Entity() == projectile.Owner {
				continue
			}
			contacts = append(contacts, projectileContact{projectile: e, other: other, kind: ContactCollision})
			if hit.HasTags(tags.ResolvTrigger) {
				contacts = append(contacts, projectileContact{projectile: e, other: other, kind: ContactTrigger})
			}
		}
	})

	for _, c := range contacts {
		ResolveProjectileContact(ecs, c.projectile, c.other, c.kind)
	}
	for _, entity := range offLevel {
		RemoveEntity(ecs, entity)
	}
}

// ResolveProjectileContact applies a projectile contact. The first contact
// damages other if it is a live combat entity and removes the projectile;
// any further contact for the same projectile is ignored. Contacts with
// the projectile's owner are ignored. It reports whether the contact was applied.
func ResolveProjectileContact(ecs *ecs.ECS, projectile, other *donburi.Entry, kind ContactKind) bool {
	if projectile == nil || !projectile.Valid() || !projectile.HasComponent(components.Projectile) {
		return false
	}
	data := components.Projectile.Get(projectile)
	if data.Resolved {
		return false
	}
	if other != nil && other.Valid() && other.Entity() == data.Owner {
		return false
	}
	data.Resolved = true

	if IsAlive(other) {
		damage := data.Damage
		if damage <= 0 {
			damage = cfg.Projectile.Damage
		}
		TakeHit(ecs, other, damage)
	}

	RemoveEntity(ecs, projectile.Entity())
	return true
}

// FireProjectile spawns a projectile from shooter's facing and schedules
// its expiry.
func FireProjectile(ecs *ecs.ECS, shooter *donburi.Entry) *donburi.Entry {
	if shooter == nil || !shooter.Valid() {
		log.Printf("FireProjectile: no shooter")
		return nil
	}
	p := factory.CreateProjectile(ecs, shooter)
	components.Projectile.Get(p).Expire = ScheduleRemoval(ecs, p, cfg.Projectile.Lifetime)
	return p
}
