package systems

import (
	"math"
	"testing"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeHitHitpointsNeverIncrease(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	combat := components.Combat.Get(raptor)
	require.Equal(t, 5.0, combat.Hitpoints)

	TakeHit(e, raptor, 2)
	assert.Equal(t, 3.0, combat.Hitpoints)

	TakeHit(e, raptor, 0)
	assert.Equal(t, 3.0, combat.Hitpoints)

	TakeHit(e, raptor, -4)
	assert.Equal(t, 3.0, combat.Hitpoints, "negative damage must not heal")

	TakeHit(e, raptor, math.NaN())
	assert.Equal(t, 3.0, combat.Hitpoints)
	assert.True(t, IsAlive(raptor))
}

func TestTakeHitKillsExactlyOnce(t *testing.T) {
	e := createTestECS()
	_, notifier, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)

	TakeHit(e, raptor, 10)
	combat := components.Combat.Get(raptor)
	assert.True(t, combat.Dead)
	assert.False(t, combat.Collidable)
	assert.Equal(t, 0.0, combat.Hitpoints)
	assert.Equal(t, []string{"Raptor"}, notifier.names)

	TakeHit(e, raptor, 3)
	TakeHit(e, raptor, 1)
	assert.Equal(t, 0.0, combat.Hitpoints)
	assert.Len(t, notifier.names, 1, "death is reported once")
	assert.False(t, IsAlive(raptor))
}

func TestDeathRemovesEntityAfterDelay(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	entity := raptor.Entity()

	TakeHit(e, raptor, 5)
	assert.True(t, e.World.Valid(entity), "body stays until the death delay passes")

	advanceTo(e, 0.05)
	assert.True(t, e.World.Valid(entity))

	advanceTo(e, cfg.Enemy.Types["Raptor"].DeathDelay+0.01)
	assert.False(t, e.World.Valid(entity))
}

func TestDeathWithoutNotifier(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	services.Notifier = nil
	trex := factory.CreateEnemy(e, 10, groundY, "TRex", nil, services)

	assert.NotPanics(t, func() { TakeHit(e, trex, 100) })
	assert.True(t, components.Combat.Get(trex).Dead)
	assert.Empty(t, player.damage)
}

func TestTakeHitIgnoresNonCombatTargets(t *testing.T) {
	e := createTestECS()
	wall := factory.CreateWall(e, 0, 0, 1, 1)

	assert.NotPanics(t, func() { TakeHit(e, wall, 1) })
	assert.NotPanics(t, func() { TakeHit(e, nil, 1) })
	assert.False(t, IsAlive(wall))
}

func TestDeathCancelsPendingAttack(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	player.pos = center(raptor).Add(offset(-1, 0))

	require.True(t, PerformAttack(e, raptor))
	require.Equal(t, []int{1}, player.damage)

	TakeHit(e, raptor, 5)
	clock := GetClock(e)
	assert.Equal(t, 1, clock.Timer.PendingFor(raptor.Entity()), "only the removal is left")

	assert.NotPanics(t, func() { advanceTo(e, 2) })
	assert.Equal(t, []int{1}, player.damage)
}

func TestProvokeOnHit(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	player.present = false
	trex := factory.CreateEnemy(e, 10, groundY, "TRex", nil, services)
	raptor := factory.CreateEnemy(e, 20, groundY, "Raptor", nil, services)

	TakeHit(e, trex, 1)
	TakeHit(e, raptor, 1)

	assert.Equal(t, cfg.StateChase, components.State.Get(trex).CurrentState)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(raptor).CurrentState)
}
