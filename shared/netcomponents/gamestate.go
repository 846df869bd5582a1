package netcomponents

import "github.com/yohamta/donburi"

// NetGameStateData is the per-match summary spectators render in the HUD.
type NetGameStateData struct {
	Level        string
	Tick         int
	Time         float64
	EnemiesAlive int
	Popup        string // creature info currently on screen, if any
	PopupAlpha   float64
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
