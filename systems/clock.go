package systems

import (
	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/timers"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one fixed step.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	clock.Tick++
	clock.Now += clock.DT
}

// UpdateTimers fires scheduled callbacks that are due. Callbacks owned by
// an entity that has been removed are dropped.
func UpdateTimers(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	clock.Timer.Advance(clock.Now, ecs.World.Valid)
}

// GetClock returns the clock singleton, creating it on first use.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
		components.Clock.SetValue(entry, components.ClockData{
			DT:    cfg.Sim.DT(),
			Timer: timers.NewScheduler(),
		})
	}
	return components.Clock.Get(entry)
}
