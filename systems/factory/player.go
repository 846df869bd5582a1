package factory

import (
	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	addToSpace(ecs, player, resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer))

	components.Player.SetValue(player, components.PlayerData{})
	components.Facing.SetValue(player, components.FacingData{Direction: components.FacingRight})
	components.Physics.SetValue(player, components.PhysicsData{Gravity: 1})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
		Alive:   true,
	})
	components.Ammo.SetValue(player, components.AmmoData{
		Current: cfg.Player.StartingAmmo,
		Max:     cfg.Player.MaxAmmo,
	})

	return player
}
