package components

import (
	"github.com/automoto/matinee/shared/session"
	"github.com/yohamta/donburi"
)

// GameData is the singleton session state shared by every system.
type GameData struct {
	*session.State
}

var Game = donburi.NewComponentType[GameData]()
