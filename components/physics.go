package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the velocity the physics step integrates, in units per second.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64 // gravity scale; 0 for flyers and projectiles
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()

// FacingDirection is -1 for left and 1 for right.
type FacingDirection int

const (
	FacingLeft  FacingDirection = -1
	FacingRight FacingDirection = 1
)

func (f FacingDirection) Sign() float64 {
	return float64(f)
}

// FacingData is the horizontal orientation of an actor. MirrorX is the
// visual flip a renderer would apply and toggles with every flip.
type FacingData struct {
	Direction FacingDirection
	MirrorX   bool
}

var Facing = donburi.NewComponentType[FacingData]()
