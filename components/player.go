package components

import (
	"github.com/automoto/matinee/shared/session"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Kid session.KidID
	// Distracting is the guard this kid is keeping busy, or donburi.Null.
	Distracting donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()
