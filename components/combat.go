package components

import "github.com/yohamta/donburi"

// CombatData makes an entity damageable. Hitpoints only ever go down and
// the entity counts as dead from the moment they reach zero.
type CombatData struct {
	Hitpoints    float64
	MaxHitpoints float64

	// Shown by the creature info popup on death.
	DisplayName string
	Description string
	Icon        string

	Dead       bool
	Collidable bool
}

func (c *CombatData) Alive() bool {
	return !c.Dead && c.Hitpoints > 0
}

var Combat = donburi.NewComponentType[CombatData]()
