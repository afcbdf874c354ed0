package systems

import (
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the fixed update step at ebiten's default 60 TPS.
const frameDelta = 1.0 / 60

func appState(e *ecs.ECS) *components.AppStateData {
	entry, ok := components.AppState.First(e.World)
	if !ok {
		return nil
	}
	return components.AppState.Get(entry)
}

func gameState(e *ecs.ECS) *session.State {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry).State
}

func levelData(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func cutsceneEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Cutscene.First(e.World)
}

func cameraData(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// topMode is the mode on top of the stack, or MainMenu before the machine
// exists.
func topMode(e *ecs.ECS) appstate.Mode {
	if as := appState(e); as != nil {
		return as.Machine.Top()
	}
	return appstate.MainMenu
}

// playing reports whether a sub-level is live and accepting gameplay: its
// mode is on top, its setup has finished and no change is queued.
func playing(e *ecs.ECS) bool {
	as := appState(e)
	if as == nil {
		return false
	}
	top := as.Machine.Top()
	return top.IsLevel() && as.Machine.Pending() == 0 && !as.Hooks.SetupPending(top)
}

// LevelMode is the mode that plays a sub-level.
func LevelMode(level leveldata.SubLevel) appstate.Mode {
	switch level {
	case leveldata.Lobby:
		return appstate.Lobby
	case leveldata.Movie:
		return appstate.Movie
	}
	return appstate.InGame
}

// ResetMode is the mode that restarts a sub-level.
func ResetMode(level leveldata.SubLevel) appstate.Mode {
	switch level {
	case leveldata.Lobby:
		return appstate.ResetLobby
	case leveldata.Movie:
		return appstate.ResetMovie
	}
	return appstate.ResetLevel
}

// levelOfMode maps a level or reset mode back to its sub-level.
func levelOfMode(m appstate.Mode) (leveldata.SubLevel, bool) {
	switch m {
	case appstate.InGame, appstate.ResetLevel:
		return leveldata.Outside, true
	case appstate.Lobby, appstate.ResetLobby:
		return leveldata.Lobby, true
	case appstate.Movie, appstate.ResetMovie:
		return leveldata.Movie, true
	}
	return 0, false
}

// TriggerCutscene starts a script and pushes the cutscene mode over the
// current one.
func TriggerCutscene(e *ecs.ECS, segments []leveldata.Segment) {
	entry, ok := cutsceneEntry(e)
	as := appState(e)
	st := gameState(e)
	if !ok || as == nil || st == nil {
		return
	}
	components.Cutscene.Get(entry).Interpreter.Trigger(segments, st.CurrentLevel)
	as.Machine.Push(appstate.Cutscene)
}

// triggerAuthored starts an authored cutscene unless it already fired this
// session.
func triggerAuthored(e *ecs.ECS, c leveldata.Cutscene, key string) bool {
	st := gameState(e)
	if st == nil || !st.MarkTriggered(key) {
		return false
	}
	TriggerCutscene(e, c.Segments)
	return true
}

// controlledPlayer returns the entry of the kid under control.
func controlledPlayer(e *ecs.ECS, st *session.State) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).Kid == st.Controlling {
			found = entry
		}
	})
	return found, found != nil
}

// removeEntry deletes an entity along with its trigger-space object.
func removeEntry(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	e.World.Remove(entry.Entity())
}

// removeTagged deletes every entity carrying tag.
func removeTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var doomed []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		removeEntry(e, entry)
	}
}

// despawnPlayers removes the live kids without touching session positions.
func despawnPlayers(e *ecs.ECS) {
	removeTagged(e, tags.Player)
}
