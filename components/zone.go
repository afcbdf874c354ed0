package components

import (
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ZoneData is a collision shape of the active sub-level.
type ZoneData struct {
	Shape leveldata.Shape
}

var Zone = donburi.NewComponentType[ZoneData]()

// CutsceneZoneData is the trigger circle of an authored cutscene.
type CutsceneZoneData struct {
	Index int
	Key   string
}

var CutsceneZone = donburi.NewComponentType[CutsceneZoneData]()
