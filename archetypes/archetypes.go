package archetypes

import (
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Ammo,
		components.Physics,
		components.Facing,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Combat,
		components.Physics,
		components.Facing,
		components.State,
		components.Patrol,
		components.Attack,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Popup = newArchetype(
		components.PopupState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
