package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase index of trigger zones for the active sub-level.
var Space = donburi.NewComponentType[resolv.Space]()
