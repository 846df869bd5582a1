package systems

import (
	"testing"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installArchetypes(t *testing.T, yaml string) {
	t.Helper()
	saved := cfg.Enemy
	t.Cleanup(func() { cfg.Enemy = saved })

	merged, err := cfg.LoadArchetypes([]byte(yaml))
	require.NoError(t, err)
	cfg.Enemy = merged
}

func TestRefreshArchetypesUpdatesLiveEnemies(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	trex := factory.CreateEnemy(e, 20, groundY, "TRex", nil, services)
	TakeHit(e, raptor, 2)
	require.Equal(t, 3.0, components.Combat.Get(raptor).Hitpoints)

	installArchetypes(t, "archetypes:\n  Raptor:\n    hitpoints: 9\n    move_speed: 4\n    attack_cooldown: 2\n  TRex:\n    hitpoints: 4\n")

	assert.Equal(t, 2, RefreshArchetypes(e))

	enemy := components.Enemy.Get(raptor)
	assert.Equal(t, 4.0, enemy.TypeConfig.MoveSpeed)
	assert.Equal(t, 2.0, components.Attack.Get(raptor).Cooldown)
	combat := components.Combat.Get(raptor)
	assert.Equal(t, 9.0, combat.MaxHitpoints)
	assert.Equal(t, 3.0, combat.Hitpoints, "damage taken is kept")

	assert.Equal(t, 4.0, components.Combat.Get(trex).Hitpoints, "clamped to the new maximum")
}

func TestRefreshedEnemyMovesAtNewSpeed(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	player.pos = center(raptor).Add(offset(4, 0))

	installArchetypes(t, "archetypes:\n  Raptor:\n    move_speed: 3.5\n")
	RefreshArchetypes(e)
	UpdateEnemies(e)

	assert.Equal(t, 3.5, components.Physics.Get(raptor).SpeedX)
}

func TestRefreshArchetypesSkipsDeadAndMotionChanges(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	dead := factory.CreateEnemy(e, 20, groundY, "TRex", nil, services)
	TakeHit(e, dead, 100)

	installArchetypes(t, "archetypes:\n  Raptor:\n    motion: flying_dive\n    dive_speed: 5\n")

	assert.Zero(t, RefreshArchetypes(e))
	assert.Equal(t, cfg.MotionGround, components.Enemy.Get(raptor).TypeConfig.Motion)
}
