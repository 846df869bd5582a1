package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pickup     = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvPickup     = "pickup"

	// ResolvTrigger marks a body that also reports trigger contacts,
	// like an enemy hurtbox.
	ResolvTrigger = "trigger"
)
