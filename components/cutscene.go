package components

import (
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CutsceneData is the singleton script runner and the characters it has put
// on screen.
type CutsceneData struct {
	Interpreter *cutscene.Interpreter
	Characters  map[leveldata.Character]leveldata.Slot
	MouthOpen   bool
	Mouth       Timer
}

var Cutscene = donburi.NewComponentType[CutsceneData]()
