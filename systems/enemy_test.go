package systems

import (
	"testing"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestPatrolToChaseAtDetectionRange(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     cfg.StateID
	}{
		{"inside", 4.9, cfg.StateChase},
		{"outside", 5.1, cfg.StatePatrol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestECS()
			player, _, services := createTestServices()
			raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
			player.pos = center(raptor).Add(offset(tt.distance, 0))

			UpdateEnemies(e)

			assert.Equal(t, tt.want, components.State.Get(raptor).CurrentState)
		})
	}
}

func TestChaseHysteresis(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     cfg.StateID
	}{
		{"keeps chasing", 7.4, cfg.StateChase},
		{"gives up", 7.6, cfg.StatePatrol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestECS()
			player, _, services := createTestServices()
			raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
			components.State.Get(raptor).Enter(cfg.StateChase)
			player.pos = center(raptor).Add(offset(tt.distance, 0))

			UpdateEnemies(e)

			assert.Equal(t, tt.want, components.State.Get(raptor).CurrentState)
		})
	}
}

func TestChaseMovesTowardPlayer(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	player.pos = center(raptor).Add(offset(4, 0))

	UpdateEnemies(e)

	physics := components.Physics.Get(raptor)
	assert.Equal(t, 2.0, physics.SpeedX)
	assert.Equal(t, components.FacingRight, components.Facing.Get(raptor).Direction)
	assert.True(t, components.Enemy.Get(raptor).Running)
}

func TestMissingPlayer(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	player.present = false
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	components.State.Get(raptor).Enter(cfg.StateChase)

	for i := 0; i < 120; i++ {
		UpdateEnemies(e)
	}

	assert.Equal(t, cfg.StatePatrol, components.State.Get(raptor).CurrentState)
	assert.Empty(t, player.damage)
}

func TestMeleeTurnsBeforeAttacking(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	components.State.Get(raptor).Enter(cfg.StateChase)
	player.pos = center(raptor).Add(offset(1, 0))
	require.Equal(t, components.FacingLeft, components.Facing.Get(raptor).Direction)

	UpdateEnemies(e)
	assert.Empty(t, player.damage, "facing away: turn first")
	assert.Equal(t, components.FacingRight, components.Facing.Get(raptor).Direction)

	UpdateEnemies(e)
	assert.Equal(t, []int{1}, player.damage)
	assert.Equal(t, cfg.StateAttacking, components.State.Get(raptor).CurrentState)
	assert.Equal(t, 0.0, components.Physics.Get(raptor).SpeedX)
}

func TestMeleeAttackCycle(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	components.State.Get(raptor).Enter(cfg.StateChase)
	player.pos = center(raptor).Add(offset(-1, 0))

	UpdateEnemies(e)
	require.Equal(t, []int{1}, player.damage)

	// Holding while the attack runs.
	UpdateEnemies(e)
	assert.Equal(t, cfg.StateAttacking, components.State.Get(raptor).CurrentState)

	advanceTo(e, 0.5)
	assert.Equal(t, cfg.StateChase, components.State.Get(raptor).CurrentState)
	assert.False(t, components.Attack.Get(raptor).IsAttacking)

	UpdateEnemies(e)
	assert.Equal(t, []int{1}, player.damage, "still cooling down")

	advanceTo(e, 1.1)
	UpdateEnemies(e)
	assert.Equal(t, []int{1, 1}, player.damage)
}

func TestAttackCooldown(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	player.pos = center(raptor).Add(offset(-1, 0))

	assert.True(t, CanAttack(e, raptor, player.pos), "no attack yet")
	require.True(t, PerformAttack(e, raptor))
	assert.False(t, PerformAttack(e, raptor), "attack already running")

	advanceTo(e, 0.5)
	assert.False(t, CanAttack(e, raptor, player.pos))

	advanceTo(e, 1.1)
	assert.True(t, CanAttack(e, raptor, player.pos))
}

func TestCanAttackFacingCheck(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	player.pos = center(raptor).Add(offset(-1, 0))
	facing := components.Facing.Get(raptor)

	facing.Direction = components.FacingRight
	assert.False(t, CanAttack(e, raptor, player.pos))

	facing.Direction = components.FacingLeft
	assert.True(t, CanAttack(e, raptor, player.pos))

	assert.False(t, CanAttack(e, raptor, center(raptor).Add(offset(-1.6, 0))), "out of range")
}

func TestHeavyMeleeDamage(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	trex := factory.CreateEnemy(e, 10, groundY, "TRex", nil, services)
	components.State.Get(trex).Enter(cfg.StateChase)
	player.pos = center(trex).Add(offset(-1.5, 0))

	UpdateEnemies(e)

	assert.Equal(t, []int{3}, player.damage)
}

func TestGroundMoveRequiresGround(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, 5, "Raptor", nil, services)
	require.False(t, IsGrounded(raptor))

	MoveToward(raptor, center(raptor).Add(offset(3, 0)), 2)

	assert.Equal(t, 0.0, components.Physics.Get(raptor).SpeedX)
	assert.False(t, components.Enemy.Get(raptor).Running)
}

func TestAirborneMeleeKeepsHorizontalSpeed(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, 5, "Raptor", nil, services)
	require.False(t, IsGrounded(raptor))
	components.State.Get(raptor).Enter(cfg.StateChase)
	components.Physics.Get(raptor).SpeedX = 2
	player.pos = center(raptor).Add(offset(-1, 0))

	UpdateEnemies(e)

	require.Equal(t, []int{1}, player.damage)
	assert.Equal(t, 2.0, components.Physics.Get(raptor).SpeedX, "in range")

	StopMoving(raptor)
	assert.Equal(t, 2.0, components.Physics.Get(raptor).SpeedX, "explicit stop")
}

func TestFlyerMovesInTwoDimensions(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	ptero := factory.CreateEnemy(e, 20, 5, "Pterodactyl", nil, services)

	MoveToward(ptero, center(ptero).Add(offset(3, 4)), 3)

	physics := components.Physics.Get(ptero)
	assert.InDelta(t, 1.8, physics.SpeedX, 1e-9)
	assert.InDelta(t, 2.4, physics.SpeedY, 1e-9)
	assert.Equal(t, components.FacingRight, components.Facing.Get(ptero).Direction)
	assert.True(t, components.Enemy.Get(ptero).Flying)
	assert.False(t, components.Enemy.Get(ptero).Running)
}

func TestFaceTowardFlips(t *testing.T) {
	e := createTestECS()
	_, _, services := createTestServices()
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	facing := components.Facing.Get(raptor)
	before := components.Object.Get(raptor).Rect()

	FaceToward(raptor, 0)
	assert.Equal(t, components.FacingLeft, facing.Direction)
	assert.False(t, facing.MirrorX)

	FaceToward(raptor, 1)
	assert.Equal(t, components.FacingRight, facing.Direction)
	assert.True(t, facing.MirrorX)
	assert.Equal(t, before, components.Object.Get(raptor).Rect(), "flipping never moves the body")

	FaceToward(raptor, -1)
	assert.Equal(t, components.FacingLeft, facing.Direction)
	assert.False(t, facing.MirrorX)
}

func TestPatrolLoopsWaypoints(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	player.present = false
	route := []math.Vec2{{X: 8, Y: groundY}, {X: 12, Y: groundY}}
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", route, services)

	UpdateEnemies(e)
	assert.Equal(t, -2.0, components.Physics.Get(raptor).SpeedX)

	obj := components.Object.Get(raptor)
	obj.SetCenter(math.Vec2{X: 8.1, Y: obj.Center().Y})
	UpdateEnemies(e)
	assert.Equal(t, 1, components.Patrol.Get(raptor).Index)
	assert.Equal(t, 2.0, components.Physics.Get(raptor).SpeedX)
}

func TestPatrolWithoutRouteIdles(t *testing.T) {
	e := createTestECS()
	player, _, services := createTestServices()
	player.present = false
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, services)
	components.Physics.Get(raptor).SpeedX = 1

	UpdateEnemies(e)

	assert.Equal(t, 0.0, components.Physics.Get(raptor).SpeedX)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(raptor).CurrentState)
}
