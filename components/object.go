package components

import (
	"github.com/automoto/dinoclash/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box in world units.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetCenter moves the box so its middle sits on p.
func (o *ObjectData) SetCenter(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
