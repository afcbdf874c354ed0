package systems

import (
	"log"
	"math"

	"github.com/automoto/matinee/assets"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/systems/factory"
	"github.com/automoto/matinee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// epilogueID is the authored cutscene played outside once the party made it
// past the movie guard.
const epilogueID = "epilogue"

func seeds(byName map[string]gamemath.Vec3) map[session.KidID]gamemath.Vec3 {
	out := make(map[session.KidID]gamemath.Vec3, len(byName))
	for _, k := range session.Kids {
		if p, ok := byName[k.String()]; ok {
			out[k] = p
		}
	}
	return out
}

// enterLevel updates the session for a sub-level that is starting. arriving
// is set when the party comes from another sub-level.
func enterLevel(st *session.State, level leveldata.SubLevel, arriving bool) {
	st.CurrentLevel = level
	switch level {
	case leveldata.Outside:
		st.Mode = session.Switch
		if arriving || len(st.InPlay()) == 0 {
			st.SeedPositions(seeds(cfg.Levels.OutsideSeeds))
		}
	case leveldata.Lobby:
		st.Mode = session.Switch
		st.SeedPositions(seeds(cfg.Levels.LobbySeeds))
	case leveldata.Movie:
		st.Mode = session.Follow
		if !st.HasSeenHalfOfMovie {
			st.SeedPositions(seeds(cfg.Levels.LobbySeeds))
		} else if len(st.InPlay()) == 0 {
			st.SeedPositions(cutscene.HalfwayPositions)
		}
	}
	if !st.IsInPlay(st.Controlling) {
		if inPlay := st.InPlay(); len(inPlay) > 0 {
			st.Controlling = inPlay[0]
		}
	}
}

// revealGuard moves a guard held off-stage into the movie once the first
// half has been watched.
func revealGuard(spawn leveldata.EnemySpawn, st *session.State) leveldata.EnemySpawn {
	hidden := cfg.Levels.HiddenGuard
	if spawn.Level != leveldata.Movie || !st.HasSeenHalfOfMovie {
		return spawn
	}
	if math.Abs(spawn.Location.X-hidden.X) > 1e-6 || math.Abs(spawn.Location.Y-hidden.Z) > 1e-6 {
		return spawn
	}
	spawn.Location.X = cfg.Levels.RevealedGuard.X
	spawn.Location.Y = cfg.Levels.RevealedGuard.Z
	return spawn
}

func newSetupLevel(level leveldata.SubLevel) func(*ecs.ECS) bool {
	return func(e *ecs.ECS) bool {
		ld := levelData(e)
		st := gameState(e)
		as := appState(e)
		if ld == nil || ld.Data == nil || st == nil || as == nil {
			return false
		}

		enterLevel(st, level, st.CurrentLevel != level)

		factory.CreateZones(e, ld.Data, level)
		factory.CreateEnemies(e, ld.Data, level, func(spawn leveldata.EnemySpawn) leveldata.EnemySpawn {
			return revealGuard(spawn, st)
		})
		factory.CreatePlayers(e, st)

		if cam := cameraData(e); cam != nil {
			pose := factory.DefaultCameraPose()
			cam.Target = pose
			cam.Translation = pose.Position
			cam.Rotation = pose.Rotation()
		}

		_ = SaveProgress(st)

		if !startEpilogue(e, ld.Data, st) {
			as.Machine.Push(appstate.LevelTitle)
		}
		return true
	}
}

func startEpilogue(e *ecs.ECS, data *leveldata.Data, st *session.State) bool {
	if st.CurrentLevel != leveldata.Outside || !st.HasAvoidedMovieGuard || st.GameIsDone {
		return false
	}
	for i, c := range data.Cutscenes {
		if c.ID == epilogueID {
			return triggerAuthored(e, c, session.CutsceneKey(c, i))
		}
	}
	return false
}

func teardownLevel(e *ecs.ECS) {
	removeTagged(e, tags.LevelScoped)
	if entry, ok := cutsceneEntry(e); ok {
		components.FollowText.SetValue(entry, components.FollowTextData{Entity: donburi.Null})
	}
}

// UpdateLevelLoader picks up finished level loads. A failed first load
// counts as loaded with no data so the game can still run.
func UpdateLevelLoader(e *ecs.ECS) {
	ld := levelData(e)
	if ld == nil || ld.Loader == nil {
		return
	}
	state, data, err := ld.Loader.Poll()
	switch state {
	case assets.Loaded:
		if data == ld.Data {
			return
		}
		reload := ld.Data != nil
		ld.Data = data
		ld.Err = nil
		ld.Revision++
		if reload {
			// Fresh data re-arms every authored cutscene.
			if st := gameState(e); st != nil {
				st.ResetTriggered()
			}
			restartCurrentLevel(e)
		}
	case assets.Failed:
		if err == nil || err == ld.Err {
			return
		}
		ld.Err = err
		log.Printf("Warning: Could not load level data: %v", err)
		if ld.Data == nil {
			ld.Data = &leveldata.Data{}
			ld.Revision++
		}
	}
}

// UpdateHotReload restarts the loader when a watched level file changes.
func UpdateHotReload(e *ecs.ECS) {
	ld := levelData(e)
	if ld == nil || ld.Watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case path := <-ld.Watcher.Events:
			log.Printf("Level file changed: %s", path)
			changed = true
			continue
		case err := <-ld.Watcher.Errors:
			log.Printf("Warning: level watcher: %v", err)
			continue
		default:
		}
		break
	}
	if changed {
		ld.Loader.Start()
	}
}

// restartCurrentLevel resets the sub-level in play, if any, so it is rebuilt
// from fresh data.
func restartCurrentLevel(e *ecs.ECS) {
	as := appState(e)
	st := gameState(e)
	if as == nil || st == nil {
		return
	}
	for _, m := range as.Machine.Stack().Modes() {
		if m.IsLevel() {
			as.Machine.Request(ResetMode(st.CurrentLevel))
			return
		}
	}
}
