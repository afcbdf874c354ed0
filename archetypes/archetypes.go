package archetypes

import (
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.LevelScoped,
		components.Player,
		components.Transform,
		components.Physics,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.LevelScoped,
		components.Enemy,
		components.Transform,
		components.Physics,
	)
	Zone = newArchetype(
		tags.Zone,
		tags.LevelScoped,
		components.Zone,
		components.Object,
	)
	CutsceneZone = newArchetype(
		tags.Cutscene,
		tags.LevelScoped,
		components.CutsceneZone,
		components.Object,
	)
	Space = newArchetype(
		tags.LevelScoped,
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Level = newArchetype(
		components.Level,
	)
	ModeTimer = newArchetype(
		components.ModeTimer,
	)
	Credits = newArchetype(
		components.Credits,
	)
	Game = newArchetype(
		components.Game,
	)
	AppState = newArchetype(
		components.AppState,
	)
	Cutscene = newArchetype(
		components.Cutscene,
		components.TextBox,
		components.FollowText,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
