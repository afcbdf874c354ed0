package components

import (
	"github.com/automoto/matinee/assets"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Data    *leveldata.Data
	Loader  *assets.LevelLoader
	Watcher *leveldata.Watcher
	// Revision increases every time Data is replaced.
	Revision int
	// Err is the last load failure, kept so it is logged once.
	Err error
}

var Level = donburi.NewComponentType[LevelData]()
