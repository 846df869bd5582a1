package components

import (
	"github.com/automoto/dinoclash/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
