package systems

import (
	"testing"

	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/systems/factory"
	"github.com/automoto/matinee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func testLevel() *leveldata.Data {
	floor := leveldata.Rectangle{LeftZ: -20, RightZ: 20, BottomX: -20, TopX: 20}
	return &leveldata.Data{
		CollisionInfo: []leveldata.PlacedShape{
			{Level: leveldata.Outside, Shape: leveldata.Rect{Rectangle: floor}},
			{Level: leveldata.Lobby, Shape: leveldata.Rect{Rectangle: floor}},
		},
		Cutscenes: []leveldata.Cutscene{{
			ID:       "hello",
			Level:    leveldata.Outside,
			Location: leveldata.Location{Point: dmath.Vec2{X: 5, Y: 5}, Radius: 1},
			Segments: []leveldata.Segment{leveldata.Textbox{Text: "hi"}},
		}},
		Enemies: []leveldata.EnemySpawn{{
			Level:    leveldata.Outside,
			Location: dmath.Vec2{X: 4, Y: 0},
			Type:     leveldata.Ticket{ChecksForRealTicket: true},
		}},
	}
}

// newTestWorld builds the singletons the theater scene creates, with data
// already loaded, starting in initial.
func newTestWorld(t *testing.T, data *leveldata.Data, initial appstate.Mode) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(e)
	factory.CreateCutscene(e)
	factory.CreateCamera(e)
	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{Data: data})
	as := factory.CreateAppState(e, initial)
	RegisterModeHooks(components.AppState.Get(as).Hooks)
	return e
}

// step runs the mode plumbing for one frame.
func step(e *ecs.ECS) {
	UpdateTransitions(e)
	UpdateModeHooks(e)
	UpdateModeTimers(e)
}

// stepUntil steps until cond holds, failing after a generous frame limit.
func stepUntil(t *testing.T, e *ecs.ECS, what string, cond func() bool) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if cond() {
			return
		}
		step(e)
	}
	t.Fatalf("gave up waiting for %s; stack %v", what, appState(e).Machine.Stack().Modes())
}

func countTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestLevelSetupShowsTitleThenPlays(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)

	UpdateModeHooks(e)
	if got := countTagged(e, tags.Player); got != 4 {
		t.Errorf("kids spawned = %d, want 4", got)
	}
	if got := countTagged(e, tags.Enemy); got != 1 {
		t.Errorf("guards spawned = %d, want 1", got)
	}
	if top := topMode(e); top != appstate.LevelTitle {
		t.Fatalf("top = %v, want LevelTitle", top)
	}
	if playing(e) {
		t.Error("playing while the title is up")
	}

	stepUntil(t, e, "the title to pop", func() bool { return topMode(e) == appstate.InGame })
	if !playing(e) {
		t.Error("not playing once the title is gone")
	}
}

func TestResetRebuildsLevel(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })

	st := gameState(e)
	moved := gamemath.V3(3, 0, -2)
	st.SetPosition(st.Controlling, moved)
	guard, _ := components.Enemy.First(e.World)
	guardEntity := guard.Entity()

	appState(e).Machine.Request(ResetMode(st.CurrentLevel))
	step(e)
	if got := countTagged(e, tags.Player); got != 0 {
		t.Errorf("kids left after the request was accepted = %d", got)
	}

	stepUntil(t, e, "the reset mode", func() bool { return topMode(e) == appstate.ResetLevel })
	if e.World.Valid(guardEntity) {
		t.Error("old guard survived teardown")
	}

	stepUntil(t, e, "play again", func() bool { return playing(e) })
	if got := countTagged(e, tags.Player); got != 4 {
		t.Errorf("kids after reset = %d, want 4", got)
	}
	if p := st.LastPositions[st.Controlling]; p == nil || *p != moved {
		t.Errorf("controlled kid position = %v, want kept at %v", p, moved)
	}
}

func TestLevelSwitchCommitsNextFrame(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })

	as := appState(e)
	as.Machine.Push(appstate.Cutscene)
	as.Machine.Request(appstate.Lobby)
	if top := as.Machine.Top(); top != appstate.Cutscene {
		t.Fatalf("request applied immediately, top = %v", top)
	}

	stepUntil(t, e, "the lobby", func() bool { return playing(e) && topMode(e) == appstate.Lobby })
	if st := gameState(e); st.CurrentLevel != leveldata.Lobby {
		t.Errorf("current level = %v, want lobby", st.CurrentLevel)
	}
	if got := as.Machine.Stack().Len(); got != 1 {
		t.Errorf("stack depth = %d, want the cutscene gone", got)
	}
}

func TestAuthoredCutsceneFiresOnce(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })

	c := levelData(e).Data.Cutscenes[0]
	if !triggerAuthored(e, c, c.ID) {
		t.Fatal("first trigger did not fire")
	}
	if top := topMode(e); top != appstate.Cutscene {
		t.Errorf("top = %v, want Cutscene", top)
	}
	if triggerAuthored(e, c, c.ID) {
		t.Error("cutscene fired twice")
	}
}

func TestPauseMenuReturnsToMainMenu(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })

	as := appState(e)
	as.Machine.Push(appstate.Paused)
	step(e)
	if GetOrCreatePause(e).SelectedOption != components.MenuResume {
		t.Error("pause did not start on Resume")
	}
	if got := countTagged(e, tags.Player); got != 4 {
		t.Errorf("pausing despawned kids: %d left", got)
	}

	as.Machine.Stack().Reset(appstate.MainMenu)
	step(e)
	if got := countTagged(e, tags.LevelScoped); got != 0 {
		t.Errorf("level entities left in the menu = %d", got)
	}
	if menu := GetOrCreateMenu(e); len(menu.VisibleOptions) == 0 {
		t.Error("menu has no options")
	}
}

func TestLoadingWaitsForData(t *testing.T) {
	e := newTestWorld(t, nil, appstate.Loading)
	for i := 0; i < 60; i++ {
		step(e)
	}
	if top := topMode(e); top != appstate.Loading {
		t.Fatalf("left loading without data, top = %v", top)
	}

	levelData(e).Data = testLevel()
	stepUntil(t, e, "the first sub-level", func() bool { return playing(e) })
	if top := topMode(e); top != appstate.InGame {
		t.Errorf("top = %v, want InGame", top)
	}
}

func TestTicketBoothGivesTicket(t *testing.T) {
	data := testLevel()
	seed := cfg.Levels.OutsideSeeds["A"]
	data.CollisionInfo = append(data.CollisionInfo, leveldata.PlacedShape{
		Level: leveldata.Outside,
		Shape: leveldata.GetTicket{Rectangle: leveldata.Rectangle{
			BottomX: seed.X - 0.2, TopX: seed.X + 0.2,
			LeftZ: seed.Z - 0.2, RightZ: seed.Z + 0.2,
		}},
	})
	e := newTestWorld(t, data, appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })

	UpdateZones(e)

	st := gameState(e)
	if !st.HasTicket[session.KidA] {
		t.Error("kid in the booth got no ticket")
	}
	if st.HasTicket[session.KidB] {
		t.Error("kid outside the booth got a ticket")
	}
}

func TestSwitchActionRotatesControl(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)
	st.Controlling = session.KidA

	input := getOrCreateInput(e)
	input.Current[cfg.ActionSwitch] = true
	UpdatePlayers(e)

	if st.Controlling != session.KidB {
		t.Errorf("controlling = %v, want B", st.Controlling)
	}

	input.Previous = input.Current
	UpdatePlayers(e)
	if st.Controlling != session.KidB {
		t.Error("holding switch kept rotating")
	}
}

func TestRestartActionRequestsReset(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })

	getOrCreateInput(e).Current[cfg.ActionRestart] = true
	UpdatePlayers(e)

	if n := appState(e).Machine.Pending(); n != 1 {
		t.Fatalf("pending = %d, want the reset queued", n)
	}
	if playing(e) {
		t.Error("still playing with a reset queued")
	}
}
