package systems

import (
	"testing"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/automoto/dinoclash/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPlayerInvincibilityWindow(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	health := components.Health.Get(player)
	damager := NewPlayerHealth(e)

	damager.TakeDamage(1)
	assert.Equal(t, 2, health.Current)

	damager.TakeDamage(1)
	assert.Equal(t, 2, health.Current, "invincible right after a hit")

	advanceTo(e, cfg.Player.InvincibilityTime)
	damager.TakeDamage(1)
	assert.Equal(t, 1, health.Current)
}

func TestPlayerDeath(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	locator := NewPlayerLocator(e)

	_, ok := locator.PlayerPosition()
	require.True(t, ok)

	NewPlayerHealth(e).TakeDamage(5)

	health := components.Health.Get(player)
	assert.False(t, health.Alive)
	assert.Equal(t, 0, health.Current)
	_, ok = locator.PlayerPosition()
	assert.False(t, ok, "dead players are not chased")
}

func TestPlayerCollaboratorsWithoutPlayer(t *testing.T) {
	e := createTestECS()

	_, ok := NewPlayerLocator(e).PlayerPosition()
	assert.False(t, ok)
	assert.NotPanics(t, func() { NewPlayerHealth(e).TakeDamage(1) })
}

func TestEnemyAttackHurtsPlayer(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 8.8, groundY)
	raptor := factory.CreateEnemy(e, 10, groundY, "Raptor", nil, NewServices(e))
	components.State.Get(raptor).Enter(cfg.StateChase)

	UpdateEnemies(e)

	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(player).Current)
}

func TestUpdatePlayerFires(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	components.Player.Get(player).Input.Fire = true

	UpdatePlayer(e)

	assert.Equal(t, cfg.Player.StartingAmmo-1, components.Ammo.Get(player).Current)
	count := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Equal(t, 1, count)
	assert.False(t, components.Player.Get(player).Input.Fire, "fire is a one-shot intent")
}

func TestUpdatePlayerOutOfAmmo(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	components.Ammo.Get(player).Current = 0
	components.Player.Get(player).Input.Fire = true

	UpdatePlayer(e)

	count := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Zero(t, count)
}

func TestUpdatePlayerMoveAndFacing(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	components.Player.Get(player).Input.MoveX = -1

	UpdatePlayer(e)

	assert.Equal(t, -cfg.Player.MoveSpeed, components.Physics.Get(player).SpeedX)
	assert.Equal(t, components.FacingLeft, components.Facing.Get(player).Direction)
}

func TestPickups(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	health := &components.PickupData{Kind: components.PickupHealth, Amount: 1}
	ammo := &components.PickupData{Kind: components.PickupAmmo, Amount: 50}

	assert.False(t, ApplyPickup(player, health), "full health leaves the pickup")

	NewPlayerHealth(e).TakeDamage(2)
	assert.True(t, ApplyPickup(player, health))
	assert.Equal(t, 2, components.Health.Get(player).Current)

	assert.True(t, ApplyPickup(player, ammo))
	assert.Equal(t, cfg.Player.MaxAmmo, components.Ammo.Get(player).Current)
}

func TestUpdatePickupsConsumesOnTouch(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 5, groundY)
	components.Ammo.Get(player).Current = 0
	pickup := factory.CreatePickup(e, 5, groundY, components.PickupAmmo, 5)
	entity := pickup.Entity()

	UpdatePickups(e)

	assert.Equal(t, 5, components.Ammo.Get(player).Current)
	assert.False(t, e.World.Valid(entity))
}

func TestEnemyContactDealsNoDamage(t *testing.T) {
	e := createTestECS()
	player := factory.CreatePlayer(e, 10, groundY)
	raptor := factory.CreateEnemy(e, 10.5, groundY, "Raptor", nil, NewServices(e))

	UpdatePlayerContacts(e)
	UpdatePlayerContacts(e)

	assert.True(t, components.Player.Get(player).EnemyContact)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)

	obj := components.Object.Get(raptor)
	obj.X += 5
	obj.Update()
	UpdatePlayerContacts(e)
	assert.False(t, components.Player.Get(player).EnemyContact)
}
