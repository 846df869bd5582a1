package components

import (
	"github.com/automoto/dinoclash/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DiveData is the flyer's in-progress dive. Generation increments with
// every dive so callbacks from an earlier dive can recognise they are stale.
type DiveData struct {
	Phase      config.DivePhase
	Target     math.Vec2
	Direction  math.Vec2
	Generation int
	HitLanded  bool
	Climb      *gween.Tween // recovery climb back to cruising height
}

var Dive = donburi.NewComponentType[DiveData]()
