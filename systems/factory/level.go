package factory

import (
	"log"
	"strings"

	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores level as the current level and spawns its solids,
// player, enemies and pickups. The collision space must exist already.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, services *components.Services) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	for _, s := range level.Solids {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}

	if len(level.PlayerSpawns) > 0 {
		spawn := level.PlayerSpawns[0]
		CreatePlayer(ecs, spawn.X, spawn.Y)
	} else {
		log.Printf("level %s has no player spawn", level.Name)
	}

	for _, spawn := range level.EnemySpawns {
		var route leveldata.PatrolPath
		if spawn.PatrolPath != "" {
			var ok bool
			route, ok = level.PatrolPaths[spawn.PatrolPath]
			if !ok {
				log.Printf("level %s: enemy %s references unknown patrol path %q", level.Name, spawn.EnemyType, spawn.PatrolPath)
			}
		}
		e := CreateEnemy(ecs, spawn.X, spawn.Y, spawn.EnemyType, route.Points, services)
		components.Patrol.Get(e).PathName = route.Name
	}

	for _, p := range level.Pickups {
		kind := components.PickupHealth
		switch strings.ToLower(p.Kind) {
		case "ammo":
			kind = components.PickupAmmo
		case "health", "":
		default:
			log.Printf("level %s: unknown pickup kind %q, skipping", level.Name, p.Kind)
			continue
		}
		CreatePickup(ecs, p.X, p.Y, kind, p.Amount)
	}

	log.Printf("level %s: %d solids, %d enemies, %d pickups (%d archetypes loaded)",
		level.Name, len(level.Solids), len(level.EnemySpawns), len(level.Pickups), len(cfg.Enemy.Types))
	return entry
}
