package components

import "github.com/yohamta/donburi/features/math"

// PlayerLocator answers where the player is. ok is false when there is no
// live player.
type PlayerLocator interface {
	PlayerPosition() (pos math.Vec2, ok bool)
}

// PlayerDamager applies enemy damage to the player.
type PlayerDamager interface {
	TakeDamage(amount int)
}

// CreatureNotifier is told when an enemy dies.
type CreatureNotifier interface {
	ShowCreatureInfo(name, description, icon string)
}

// Services are the collaborators an enemy is constructed with. Notifier may be nil.
type Services struct {
	Locator  PlayerLocator
	Damager  PlayerDamager
	Notifier CreatureNotifier
}
