package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuFullscreen
	MenuExit
)

// PauseData stores the pause menu selection
type PauseData struct {
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
