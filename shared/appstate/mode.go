// Package appstate holds the application mode stack and the deferred
// transition queue that commits at most one mode change per frame.
package appstate

import "fmt"

// Mode is the active part of the experience.
type Mode int

const (
	MainMenu Mode = iota
	Loading
	Paused
	Cutscene
	InGame
	Lobby
	Movie
	ScoreDisplay
	LevelTitle
	ChangingLevel
	ResetLevel
	ResetLobby
	ResetMovie
	RestartLevel
	Credits
)

var modeNames = [...]string{
	MainMenu:      "MainMenu",
	Loading:       "Loading",
	Paused:        "Paused",
	Cutscene:      "Cutscene",
	InGame:        "InGame",
	Lobby:         "Lobby",
	Movie:         "Movie",
	ScoreDisplay:  "ScoreDisplay",
	LevelTitle:    "LevelTitle",
	ChangingLevel: "ChangingLevel",
	ResetLevel:    "ResetLevel",
	ResetLobby:    "ResetLobby",
	ResetMovie:    "ResetMovie",
	RestartLevel:  "RestartLevel",
	Credits:       "Credits",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsLevel reports whether m is one of the playable sub-level modes.
func (m Mode) IsLevel() bool {
	return m == InGame || m == Lobby || m == Movie
}

// IsOverlay reports whether m sits on top of another mode rather than
// replacing it.
func (m Mode) IsOverlay() bool {
	return m == Cutscene || m == Paused || m == LevelTitle
}
