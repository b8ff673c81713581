package components

import (
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level    *leveldata.Level
	Complete bool
	Respawns int
}

var Level = donburi.NewComponentType[LevelData]()
