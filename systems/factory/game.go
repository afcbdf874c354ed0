package factory

import (
	"log"

	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSession builds a fresh session with the configured kid palettes.
func NewSession() *session.State {
	st := session.New()
	specs := make(map[session.KidID]session.PaletteSpec, len(session.Kids))
	for _, kid := range session.Kids {
		k, ok := cfg.Kids[kid.String()]
		if !ok {
			continue
		}
		specs[kid] = session.PaletteSpec{Legs: k.Legs, Torso: k.Torso, Skin: k.Skin, Hair: k.Hair, LongHair: k.LongHair}
	}
	if err := st.LoadPalettes(specs); err != nil {
		log.Printf("Warning: %v", err)
	}
	return st
}

func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{State: NewSession()})
	return game
}

// CreateAppState spawns the mode machine starting in initial.
func CreateAppState(e *ecs.ECS, initial appstate.Mode) *donburi.Entry {
	entry := archetypes.AppState.Spawn(e)
	components.AppState.SetValue(entry, components.AppStateData{
		Machine: appstate.NewMachine(initial, cfg.Transition.Delay),
		Hooks:   appstate.NewRegistry[*ecs.ECS](),
	})
	return entry
}
