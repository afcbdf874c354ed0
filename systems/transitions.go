package systems

import (
	"log"

	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTransitions advances the deferred mode change. When a request is
// accepted the interrupted cutscene is dropped and the live kids are
// despawned before the change commits.
func UpdateTransitions(e *ecs.ECS) {
	as := appState(e)
	if as == nil {
		return
	}
	res, err := as.Machine.Tick(frameDelta)
	if err != nil {
		log.Printf("Warning: mode transition: %v", err)
		return
	}
	if !res.Accepted {
		return
	}
	despawnPlayers(e)
	if entry, ok := cutsceneEntry(e); ok {
		cs := components.Cutscene.Get(entry)
		cs.Interpreter.Clear()
		cs.Characters = make(map[leveldata.Character]leveldata.Slot)
		components.TextBox.SetValue(entry, components.TextBoxData{})
	}
	if st := gameState(e); st != nil {
		st.CurrentlyTalking = nil
	}
}

// UpdateModeHooks runs setup and teardown for modes entering and leaving the
// stack.
func UpdateModeHooks(e *ecs.ECS) {
	if as := appState(e); as != nil {
		as.Hooks.Sync(e, as.Machine.Stack())
	}
}

// RegisterModeHooks binds every mode with setup or teardown work.
func RegisterModeHooks(r *appstate.Registry[*ecs.ECS]) {
	for _, level := range []leveldata.SubLevel{leveldata.Outside, leveldata.Lobby, leveldata.Movie} {
		r.Register(LevelMode(level), appstate.Hooks[*ecs.ECS]{
			Setup:    newSetupLevel(level),
			Teardown: teardownLevel,
		})
		mode := ResetMode(level)
		r.Register(mode, appstate.Hooks[*ecs.ECS]{
			Setup:    newStartModeTimer(mode),
			Teardown: newStopModeTimer(mode),
		})
	}
	for _, mode := range []appstate.Mode{appstate.Loading, appstate.LevelTitle} {
		r.Register(mode, appstate.Hooks[*ecs.ECS]{
			Setup:    newStartModeTimer(mode),
			Teardown: newStopModeTimer(mode),
		})
	}
	r.Register(appstate.MainMenu, appstate.Hooks[*ecs.ECS]{
		Setup:    setupMenu,
		Teardown: teardownMenu,
	})
	r.Register(appstate.Paused, appstate.Hooks[*ecs.ECS]{
		Setup: setupPause,
	})
	r.Register(appstate.Credits, appstate.Hooks[*ecs.ECS]{
		Setup:    setupCredits,
		Teardown: teardownCredits,
	})
}
