package leveldata

import "github.com/yohamta/donburi/features/math"

// DemoLevel is a small built-in arena with one of each archetype, used
// when no TMX file is configured.
func DemoLevel() *Level {
	return &Level{
		Name:   "demo",
		Width:  40,
		Height: 12,
		Solids: []SolidRect{
			{X: 0, Y: 10, W: 40, H: 2}, // ground
			{X: 0, Y: 0, W: 1, H: 10},  // left wall
			{X: 39, Y: 0, W: 1, H: 10}, // right wall
		},
		PlayerSpawns: []SpawnPoint{{X: 4, Y: 10}},
		EnemySpawns: []EnemySpawn{
			{X: 14, Y: 10, EnemyType: "Raptor", PatrolPath: "meadow"},
			{X: 22, Y: 5, EnemyType: "Pterodactyl", PatrolPath: "sky"},
			{X: 31, Y: 10, EnemyType: "TRex", PatrolPath: "den"},
		},
		PatrolPaths: map[string]PatrolPath{
			"meadow": {Name: "meadow", Points: []math.Vec2{{X: 12, Y: 9.5}, {X: 18, Y: 9.5}}},
			"sky":    {Name: "sky", Points: []math.Vec2{{X: 18, Y: 5}, {X: 26, Y: 5}, {X: 22, Y: 3}}},
			"den":    {Name: "den", Points: []math.Vec2{{X: 28, Y: 9}, {X: 34, Y: 9}}},
		},
		Pickups: []PickupSpawn{
			{X: 8, Y: 10, Kind: "health"},
			{X: 25, Y: 10, Kind: "ammo", Amount: 5},
		},
	}
}
