package components

import (
	"github.com/automoto/dinoclash/timers"
	"github.com/yohamta/donburi"
)

// ClockData is the singleton simulation clock.
type ClockData struct {
	Now   float64
	DT    float64
	Tick  int
	Timer *timers.Scheduler
}

var Clock = donburi.NewComponentType[ClockData]()
