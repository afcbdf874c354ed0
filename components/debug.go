package components

import "github.com/yohamta/donburi"

type DebugData struct {
	ShowShapes    bool
	ShowCutscenes bool
}

var Debug = donburi.NewComponentType[DebugData]()
