package config

// BotConfigData tunes the autopilot that drives the player in headless runs.
type BotConfigData struct {
	Seed             int64
	DecisionInterval float64 // seconds between re-evaluations
	FireRange        float64
	KeepDistance     float64 // backs off from enemies closer than this
	FireInterval     float64
	JumpChance       float64 // per decision, while a flyer is diving
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Seed:             42,
		DecisionInterval: 0.25,
		FireRange:        6,
		KeepDistance:     2.5,
		FireInterval:     0.5,
		JumpChance:       0.5,
	}
}
