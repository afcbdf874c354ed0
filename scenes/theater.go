package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/systems"
	"github.com/automoto/matinee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TheaterScene runs the whole game. Menus, loading, the three sub-levels,
// cutscenes, pause and credits are modes on one stack rather than separate
// scenes.
type TheaterScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewTheaterScene() *TheaterScene {
	return &TheaterScene{}
}

func (ts *TheaterScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TheaterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TheaterScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	ts.ecs = ecs

	initial := appstate.MainMenu
	if cfg.Debug.SkipMenu {
		initial = appstate.Loading
	}

	// Singletons first: every system reads them.
	factory.CreateGame(ecs)
	factory.CreateCutscene(ecs)
	factory.CreateCamera(ecs)
	factory.CreateLevel(ecs)
	appState := factory.CreateAppState(ecs, initial)
	systems.RegisterModeHooks(components.AppState.Get(appState).Hooks)

	// Input and asset plumbing
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateHotReload)
	ecs.AddSystem(systems.UpdateLevelLoader)

	// Mode changes commit before anything reads the stack
	ecs.AddSystem(systems.UpdateTransitions)
	ecs.AddSystem(systems.UpdateModeHooks)

	ecs.AddSystem(systems.UpdateMenu)
	ecs.AddSystem(systems.UpdatePause)

	// Gameplay; each of these checks the live sub-level itself
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdatePatrol)
	ecs.AddSystem(systems.UpdatePerception)
	ecs.AddSystem(systems.UpdateDistraction)
	ecs.AddSystem(systems.UpdateZones)
	ecs.AddSystem(systems.UpdateMovieEnding)

	ecs.AddSystem(systems.UpdateCutscene)
	ecs.AddSystem(systems.UpdateMouth)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFollowText)
	ecs.AddSystem(systems.UpdateModeTimers)
	ecs.AddSystem(systems.UpdateCredits)

	// World layer
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawFollowText)

	// UI layer
	ecs.AddRenderer(cfg.Overlay, systems.DrawCutsceneCharacters)
	ecs.AddRenderer(cfg.Overlay, systems.DrawTextBox)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLevelTitle)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMenu)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLoading)
	ecs.AddRenderer(cfg.Overlay, systems.DrawCredits)
}
