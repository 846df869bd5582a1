package systems

import (
	"log"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/shared/gamemath"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PlayerHealth applies damage to the player entity of a world. It is the
// health collaborator enemies are constructed with.
type PlayerHealth struct {
	ecs *ecs.ECS
}

func NewPlayerHealth(ecs *ecs.ECS) *PlayerHealth {
	return &PlayerHealth{ecs: ecs}
}

// TakeDamage is ignored while the player is invincible or dead. A hit that
// does not kill starts the invincibility window.
func (p *PlayerHealth) TakeDamage(amount int) {
	playerEntry, ok := tags.Player.First(p.ecs.World)
	if !ok {
		log.Printf("TakeDamage: no player")
		return
	}
	if amount <= 0 {
		return
	}

	health := components.Health.Get(playerEntry)
	now := GetClock(p.ecs).Now
	if !health.Alive || now < health.InvincibleUntil {
		return
	}

	health.Current -= amount
	if health.Current > 0 {
		health.InvincibleUntil = now + cfg.Player.InvincibilityTime
		return
	}

	health.Current = 0
	health.Alive = false
	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	log.Printf("player died at t=%.2f", now)
}

// PlayerLocator finds the live player of a world.
type PlayerLocator struct {
	ecs *ecs.ECS
}

func NewPlayerLocator(ecs *ecs.ECS) *PlayerLocator {
	return &PlayerLocator{ecs: ecs}
}

func (l *PlayerLocator) PlayerPosition() (math.Vec2, bool) {
	playerEntry, ok := tags.Player.First(l.ecs.World)
	if !ok || !components.Health.Get(playerEntry).Alive {
		return math.Vec2{}, false
	}
	return components.Object.Get(playerEntry).Center(), true
}

// NewServices wires the player collaborators and the creature popup of a world.
func NewServices(ecs *ecs.ECS) *components.Services {
	return &components.Services{
		Locator:  NewPlayerLocator(ecs),
		Damager:  NewPlayerHealth(ecs),
		Notifier: NewCreaturePopup(ecs),
	}
}

// RestoreHealth heals a live player up to max. It reports whether any
// health was restored.
func RestoreHealth(playerEntry *donburi.Entry, amount int) bool {
	health := components.Health.Get(playerEntry)
	if !health.Alive || amount <= 0 || health.Current >= health.Max {
		return false
	}
	health.Current = min(health.Current+amount, health.Max)
	return true
}

// UseAmmo spends one round. It fails when the player is out of ammo.
func UseAmmo(playerEntry *donburi.Entry) bool {
	ammo := components.Ammo.Get(playerEntry)
	if ammo.Current <= 0 {
		return false
	}
	ammo.Current--
	return true
}

// AddAmmo refills up to the ammo cap.
func AddAmmo(playerEntry *donburi.Entry, amount int) {
	ammo := components.Ammo.Get(playerEntry)
	if amount <= 0 {
		return
	}
	ammo.Current = min(ammo.Current+amount, ammo.Max)
}

// UpdatePlayer applies the player's input intents.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		health := components.Health.Get(e)
		physics := components.Physics.Get(e)
		input := &player.Input

		if !health.Alive {
			*input = components.PlayerInput{}
			return
		}

		moveX := gamemath.ClampSpeed(input.MoveX, 1)
		physics.SpeedX = moveX * cfg.Player.MoveSpeed
		if moveX != 0 {
			facing := components.Facing.Get(e)
			if gamemath.Sign(moveX) != facing.Direction.Sign() {
				facing.Direction = components.FacingDirection(gamemath.Sign(moveX))
				facing.MirrorX = facing.Direction == components.FacingLeft
			}
		}

		if input.Jump && physics.OnGround != nil {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = nil
		}
		input.Jump = false

		if input.Fire {
			if UseAmmo(e) {
				FireProjectile(ecs, e)
			} else {
				log.Printf("out of ammo")
			}
		}
		input.Fire = false
	})
}

// UpdatePlayerContacts tracks body contact between the player and live
// enemies. Enemies only hurt the player through their attacks, so contact
// is recorded and logged but deals no damage.
func UpdatePlayerContacts(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !components.Health.Get(playerEntry).Alive {
		player.EnemyContact = false
		return
	}

	obj := components.Object.Get(playerEntry)
	var touching *donburi.Entry
	for _, hit := range overlapping(obj.Object, 0, 0, tags.ResolvEnemy) {
		if other, ok := entryOf(hit); ok && IsAlive(other) {
			touching = other
			break
		}
	}

	if touching != nil && !player.EnemyContact {
		log.Printf("Player touched %s", components.Enemy.Get(touching).TypeName)
	}
	player.EnemyContact = touching != nil
}
