package components

import (
	"math"

	"github.com/automoto/dinoclash/timers"
	"github.com/yohamta/donburi"
)

// AttackData gates attacks on a cooldown measured in clock seconds.
type AttackData struct {
	LastAttackTime float64
	Cooldown       float64
	IsAttacking    bool
	Release        timers.Handle // pending end-of-attack callback
}

// NewAttackData returns an attack state that may fire immediately.
func NewAttackData(cooldown float64) AttackData {
	return AttackData{
		LastAttackTime: math.Inf(-1),
		Cooldown:       cooldown,
	}
}

// Ready reports whether a new attack may start at now.
func (a *AttackData) Ready(now float64) bool {
	return !a.IsAttacking && now >= a.LastAttackTime+a.Cooldown
}

var Attack = donburi.NewComponentType[AttackData]()
