package components

import (
	"github.com/automoto/matinee/shared/appstate"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AppStateData is the singleton mode stack with its deferred change queue and
// the per-mode setup/teardown hooks.
type AppStateData struct {
	Machine *appstate.Machine
	Hooks   *appstate.Registry[*ecs.ECS]
}

var AppState = donburi.NewComponentType[AppStateData]()

// ModeTimerData drives the timed modes (level reset, level title, loading).
// Timer reports finished once the mode has waited long enough.
type ModeTimerData struct {
	Mode    appstate.Mode
	Elapsed float64
	Timer   Timer
	Title   string
}

// Timer is the subset of gween.Tween the timed modes use.
type Timer interface {
	Update(dt float32) (float32, bool)
}

var ModeTimer = donburi.NewComponentType[ModeTimerData]()
