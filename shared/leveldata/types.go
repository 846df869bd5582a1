// Package leveldata provides TMX level parsing for the simulation.
// It has no dependency on the ECS world or resolv, pure data only.
// All coordinates are world units: one unit is one map tile.
package leveldata

import "github.com/yohamta/donburi/features/math"

// Level holds everything the simulation needs from a level file.
type Level struct {
	Name         string
	Width        float64
	Height       float64
	Solids       []SolidRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
	PatrolPaths  map[string]PatrolPath
	Pickups      []PickupSpawn
}

// SolidRect is a blocking rectangle, top-left origin.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

type EnemySpawn struct {
	X, Y       float64
	EnemyType  string
	PatrolPath string
}

// PatrolPath is a named polyline enemies walk in a loop.
type PatrolPath struct {
	Name   string
	Points []math.Vec2
}

type PickupSpawn struct {
	X, Y   float64
	Kind   string // "health" or "ammo"
	Amount int    // 0 uses the configured default
}
