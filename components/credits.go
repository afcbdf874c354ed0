package components

import "github.com/yohamta/donburi"

// CreditsData is the end credits scroll. Offset runs from the start value
// down past the end margin.
type CreditsData struct {
	Offset float64
	Scroll Timer
}

var Credits = donburi.NewComponentType[CreditsData]()
