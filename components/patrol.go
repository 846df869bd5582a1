package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PatrolData is a cyclic route. An empty route leaves the owner idle.
type PatrolData struct {
	PathName  string
	Waypoints []math.Vec2
	Index     int
}

// Target returns the current waypoint.
func (p *PatrolData) Target() (math.Vec2, bool) {
	if len(p.Waypoints) == 0 {
		return math.Vec2{}, false
	}
	return p.Waypoints[p.Index%len(p.Waypoints)], true
}

// Advance moves on to the next waypoint, wrapping at the end.
func (p *PatrolData) Advance() {
	if len(p.Waypoints) == 0 {
		return
	}
	p.Index = (p.Index + 1) % len(p.Waypoints)
}

var Patrol = donburi.NewComponentType[PatrolData]()
