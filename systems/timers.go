package systems

import (
	"log"

	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// modeHold is how long a timed mode lasts.
func modeHold(mode appstate.Mode) float64 {
	switch mode {
	case appstate.LevelTitle:
		return cfg.Transition.TitleHold
	case appstate.Loading:
		return cfg.Transition.LoadingMin
	}
	return cfg.Transition.ResetWait
}

func newStartModeTimer(mode appstate.Mode) func(*ecs.ECS) bool {
	return func(e *ecs.ECS) bool {
		data := components.ModeTimerData{
			Mode:  mode,
			Timer: gween.New(0, 1, float32(modeHold(mode)), ease.Linear),
		}
		if mode == appstate.LevelTitle {
			if st := gameState(e); st != nil {
				data.Title = cfg.Levels.Titles[st.CurrentLevel.String()]
			}
		}
		components.ModeTimer.SetValue(archetypes.ModeTimer.Spawn(e), data)
		return true
	}
}

func newStopModeTimer(mode appstate.Mode) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		var doomed []*donburi.Entry
		components.ModeTimer.Each(e.World, func(entry *donburi.Entry) {
			if components.ModeTimer.Get(entry).Mode == mode {
				doomed = append(doomed, entry)
			}
		})
		for _, entry := range doomed {
			e.World.Remove(entry.Entity())
		}
	}
}

// activeModeTimer returns the timer of the mode on top of the stack.
func activeModeTimer(e *ecs.ECS) *components.ModeTimerData {
	top := topMode(e)
	var found *components.ModeTimerData
	components.ModeTimer.Each(e.World, func(entry *donburi.Entry) {
		if t := components.ModeTimer.Get(entry); t.Mode == top {
			found = t
		}
	})
	return found
}

// UpdateModeTimers advances the timed modes: the reset modes restart their
// sub-level once they have waited, the level title pops itself, and loading
// moves on once the level data is ready.
func UpdateModeTimers(e *ecs.ECS) {
	as := appState(e)
	t := activeModeTimer(e)
	if as == nil || t == nil {
		return
	}
	t.Elapsed += frameDelta
	_, done := t.Timer.Update(float32(frameDelta))
	if !done {
		return
	}

	switch t.Mode {
	case appstate.ResetLevel, appstate.ResetLobby, appstate.ResetMovie:
		if t.Elapsed <= cfg.Transition.ResetWait {
			return
		}
		if level, ok := levelOfMode(t.Mode); ok {
			as.Machine.Set(LevelMode(level))
		}
	case appstate.LevelTitle:
		if _, err := as.Machine.Pop(); err != nil {
			log.Printf("Warning: leaving level title: %v", err)
		}
	case appstate.Loading:
		ld := levelData(e)
		st := gameState(e)
		if ld == nil || ld.Data == nil || st == nil {
			return
		}
		as.Machine.Set(LevelMode(st.CurrentLevel))
	}
}
