package factory

import (
	"log"

	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of enemyTypeName with its feet at (x, y).
// route may be empty, in which case the enemy idles until it spots the player.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string, route []math.Vec2, services *components.Services) *donburi.Entry {
	// Use the requested enemy type, falling back to the default if not found
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		log.Printf("unknown enemy type %q, using %s", enemyTypeName, cfg.Enemy.DefaultType)
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	flyer := enemyType.Motion == cfg.MotionFlyingDive
	var enemy *donburi.Entry
	if flyer {
		enemy = archetypes.Enemy.Spawn(ecs, components.Dive)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	// Create collision object. Enemies carry a trigger hurtbox as well as a body.
	w, h := enemyType.Width, enemyType.Height
	addToSpace(ecs, enemy, resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvEnemy, tags.ResolvTrigger))

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType, // Cached copy, swapped by RefreshArchetypes on reload
		Services:   services,
		Flying:     false,
	})
	components.Combat.SetValue(enemy, components.CombatData{
		Hitpoints:    enemyType.Hitpoints,
		MaxHitpoints: enemyType.Hitpoints,
		DisplayName:  enemyType.Name,
		Description:  enemyType.Description,
		Icon:         enemyType.Icon,
		Collidable:   true,
	})
	components.Facing.SetValue(enemy, components.FacingData{Direction: components.FacingLeft}) // Start facing left
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	components.Patrol.SetValue(enemy, components.PatrolData{
		Waypoints: append([]math.Vec2(nil), route...),
	})
	components.Attack.SetValue(enemy, components.NewAttackData(enemyType.AttackCooldown))

	gravity := 1.0
	if flyer {
		gravity = 0
	}
	components.Physics.SetValue(enemy, components.PhysicsData{Gravity: gravity})

	return enemy
}
