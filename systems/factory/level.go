package factory

import (
	"log"

	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/assets"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel starts loading the level file. With a level directory set, the
// directory is also watched so edits reload in place.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader(assets.LevelFS(cfg.Debug.LevelDir), cfg.Levels.File, cfg.Levels.CollisionTMX)
	loader.Start()

	levelData := components.LevelData{Loader: loader}
	if cfg.Debug.LevelDir != "" {
		w, err := leveldata.NewWatcher(cfg.Debug.LevelDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Debug.LevelDir, err)
		} else {
			levelData.Watcher = w
		}
	}
	components.Level.SetValue(level, levelData)
	return level
}
