package components

import "github.com/yohamta/donburi"

// BotData marks a player driven by the autopilot.
type BotData struct {
	DecisionTimer float64
	NextFireAt    float64
}

var Bot = donburi.NewComponentType[BotData]()
