package netcomponents

import "github.com/yohamta/donburi"

// NetPoseData is where an actor is and which way it looks. Positions are
// world units, centered on the body.
type NetPoseData struct {
	X, Y   float64
	Facing int // -1 left, 1 right
}

var NetPose = donburi.NewComponentType[NetPoseData]()

// LerpNetPose interpolates the position; facing snaps to the newer pose.
func LerpNetPose(from, to NetPoseData, t float64) *NetPoseData {
	return &NetPoseData{
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		Facing: to.Facing,
	}
}
