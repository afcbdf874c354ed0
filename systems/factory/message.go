package factory

import (
	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCutscene spawns the script runner with its text box and follow text.
func CreateCutscene(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Cutscene.Spawn(ecs)
	components.Cutscene.SetValue(entry, components.CutsceneData{
		Interpreter: cutscene.NewInterpreter(),
		Characters:  make(map[leveldata.Character]leveldata.Slot),
	})
	components.TextBox.SetValue(entry, components.TextBoxData{})
	components.FollowText.SetValue(entry, components.FollowTextData{Entity: donburi.Null})
	return entry
}
