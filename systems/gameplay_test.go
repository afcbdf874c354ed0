package systems

import (
	"reflect"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/matinee/assets"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// runScripts plays frames with the accept button tapping, so text boxes
// advance, until cond holds.
func runScripts(t *testing.T, e *ecs.ECS, what string, cond func() bool) {
	t.Helper()
	input := getOrCreateInput(e)
	for i := 0; i < 1200; i++ {
		if cond() {
			return
		}
		input.Previous = input.Current
		input.Current[cfg.ActionAccept] = !input.Current[cfg.ActionAccept]
		UpdateCutscene(e)
		step(e)
	}
	t.Fatalf("gave up waiting for %s; stack %v", what, appState(e).Machine.Stack().Modes())
}

// script returns the segments of the running cutscene.
func script(t *testing.T, e *ecs.ECS) []leveldata.Segment {
	t.Helper()
	entry, ok := cutsceneEntry(e)
	if !ok {
		t.Fatal("no cutscene singleton")
	}
	return components.Cutscene.Get(entry).Interpreter.Script()
}

func firstEnemy(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Enemy.First(e.World)
	if !ok {
		t.Fatal("no guard spawned")
	}
	return entry
}

func kidEntry(t *testing.T, e *ecs.ECS, kid session.KidID) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).Kid == kid {
			found = entry
		}
	})
	if found == nil {
		t.Fatalf("kid %v not spawned", kid)
	}
	return found
}

// newLoadedLoader starts a loader on a one-shape level file.
func newLoadedLoader(t *testing.T) *assets.LevelLoader {
	t.Helper()
	fsys := fstest.MapFS{
		"theater.yaml": {Data: []byte("collision:\n  - {level: outside, kind: rect, left_z: -20, right_z: 20, top_x: 20, bottom_x: -20}\n")},
	}
	l := assets.NewLevelLoader(fsys, "theater.yaml", "")
	l.Start()
	return l
}

func waitBriefly() { time.Sleep(5 * time.Millisecond) }

// around is a rectangle of half-size r centered on p.
func around(p gamemath.Vec3, r float64) leveldata.Rectangle {
	return leveldata.Rectangle{BottomX: p.X - r, TopX: p.X + r, LeftZ: p.Z - r, RightZ: p.Z + r}
}

func TestGuardSightStartsCaughtScript(t *testing.T) {
	tests := []struct {
		name       string
		dx, dz     float64
		wantCaught bool
	}{
		{"facing the kids", 1, 0, true},
		{"facing away", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testLevel()
			data.Enemies = []leveldata.EnemySpawn{{
				Level:    leveldata.Outside,
				Location: dmath.Vec2{X: -12, Y: 10},
				Type:     leveldata.Patrol{Waypoints: []dmath.Vec2{{X: -12, Y: 10}}},
			}}
			e := newTestWorld(t, data, appstate.InGame)
			stepUntil(t, e, "play", func() bool { return playing(e) })

			st := gameState(e)
			kid := *st.LastPositions[st.Controlling]
			guard := components.Transform.Get(firstEnemy(t, e))
			guard.Position = kid.Sub(gamemath.V3(2, 0, 0))
			guard.Rotation, _ = gamemath.HeadingRotation(tt.dx, tt.dz)

			UpdatePerception(e)

			if !tt.wantCaught {
				if !playing(e) {
					t.Errorf("guard looking away caught a kid; top %v", topMode(e))
				}
				return
			}
			if top := topMode(e); top != appstate.Cutscene {
				t.Fatalf("top = %v, want Cutscene", top)
			}
			segments := script(t, e)
			if len(segments) < 2 {
				t.Fatalf("caught script = %v, want text then a reset", segments)
			}
			if _, ok := segments[len(segments)-1].(leveldata.LevelReset); !ok {
				t.Errorf("caught script ends with %T, want LevelReset", segments[len(segments)-1])
			}
			if _, ok := segments[0].(leveldata.Textbox); !ok {
				t.Errorf("caught script starts with %T, want Textbox", segments[0])
			}
		})
	}
}

// ticketCheckLevel puts kids A and B inside a ticket check, with guard
// standing next to A.
func ticketCheckLevel(guard leveldata.EnemyType) *leveldata.Data {
	data := testLevel()
	a, b := cfg.Levels.OutsideSeeds["A"], cfg.Levels.OutsideSeeds["B"]
	data.CollisionInfo = append(data.CollisionInfo, leveldata.PlacedShape{
		Level: leveldata.Outside,
		Shape: leveldata.TicketCheck{Rectangle: leveldata.Rectangle{
			BottomX: a.X - 1, TopX: a.X + 1,
			LeftZ: b.Z - 0.5, RightZ: a.Z + 0.5,
		}},
	})
	data.Enemies = []leveldata.EnemySpawn{{
		Level:    leveldata.Outside,
		Location: dmath.Vec2{X: a.X + 0.5, Y: a.Z},
		Type:     guard,
	}}
	return data
}

func TestTicketCheckStopsKidWithoutTicket(t *testing.T) {
	tests := []struct {
		name       string
		guard      leveldata.EnemyType
		distracted bool
		ticket     bool
		wantCaught bool
	}{
		{"ticket guard", leveldata.Ticket{ChecksForRealTicket: true}, false, false, true},
		{"any kind of guard", leveldata.Dog{}, false, false, true},
		{"distracted guard", leveldata.Ticket{ChecksForRealTicket: true}, true, false, false},
		{"kid holds a ticket", leveldata.Ticket{ChecksForRealTicket: true}, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t, ticketCheckLevel(tt.guard), appstate.InGame)
			stepUntil(t, e, "play", func() bool { return playing(e) })
			st := gameState(e)
			st.Controlling = session.KidA
			if tt.ticket {
				st.GiveTicket(session.KidA)
			}
			components.Enemy.Get(firstEnemy(t, e)).IsDistracted = tt.distracted

			UpdateZones(e)

			if !tt.wantCaught {
				if !playing(e) {
					t.Errorf("kid was stopped; top %v", topMode(e))
				}
				return
			}
			if top := topMode(e); top != appstate.Cutscene {
				t.Fatalf("top = %v, want Cutscene", top)
			}
			want := []leveldata.Segment{leveldata.Textbox{Text: noTicketText}, leveldata.LevelReset{}}
			if got := script(t, e); !reflect.DeepEqual(got, want) {
				t.Errorf("script = %v, want %v", got, want)
			}
		})
	}
}

func TestDistractionLetsNextKidPast(t *testing.T) {
	e := newTestWorld(t, ticketCheckLevel(leveldata.Ticket{ChecksForRealTicket: true}), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)
	st.Controlling = session.KidA
	st.GiveTicket(session.KidA)
	guard := firstEnemy(t, e)

	UpdateDistraction(e)
	entry, _ := cutsceneEntry(e)
	if got := components.FollowText.Get(entry).PlayerText; got != distractPrompt {
		t.Fatalf("prompt = %q, want %q", got, distractPrompt)
	}

	getOrCreateInput(e).Current[cfg.ActionAccept] = true
	UpdateDistraction(e)

	if !components.Enemy.Get(guard).IsDistracted {
		t.Fatal("guard not distracted after accept")
	}
	if st.Controlling != session.KidB {
		t.Errorf("controlling = %v, want control handed to B", st.Controlling)
	}
	if kidA := kidEntry(t, e, session.KidA); components.Player.Get(kidA).Distracting != guard.Entity() {
		t.Error("kid A does not record the guard it keeps busy")
	}

	UpdateZones(e)
	if !playing(e) {
		t.Errorf("B without a ticket was stopped by a distracted guard; top %v", topMode(e))
	}
}

func TestDistractionNeedsTicket(t *testing.T) {
	e := newTestWorld(t, ticketCheckLevel(leveldata.Ticket{ChecksForRealTicket: true}), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	gameState(e).Controlling = session.KidA

	getOrCreateInput(e).Current[cfg.ActionAccept] = true
	UpdateDistraction(e)

	if components.Enemy.Get(firstEnemy(t, e)).IsDistracted {
		t.Error("kid without a ticket distracted a checking guard")
	}
}

func TestTicketBoothServesControlledKidOnly(t *testing.T) {
	data := testLevel()
	b := cfg.Levels.OutsideSeeds["B"]
	data.CollisionInfo = append(data.CollisionInfo, leveldata.PlacedShape{
		Level: leveldata.Outside,
		Shape: leveldata.GetTicket{Rectangle: around(b, 0.2)},
	})
	e := newTestWorld(t, data, appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)

	st.Controlling = session.KidA
	UpdateZones(e)
	if st.HasTicket[session.KidB] {
		t.Error("kid B got a ticket while A was controlled")
	}

	st.Controlling = session.KidB
	UpdateZones(e)
	if !st.HasTicket[session.KidB] {
		t.Error("controlled kid B in the booth got no ticket")
	}
}

// exitLevel is the test level with a lobby exit under kid A's lobby seed.
func exitLevel() *leveldata.Data {
	data := testLevel()
	data.CollisionInfo = append(data.CollisionInfo, leveldata.PlacedShape{
		Level: leveldata.Lobby,
		Shape: leveldata.DespawnPlayer{Rectangle: around(cfg.Levels.LobbySeeds["A"], 0.2)},
	})
	return data
}

func TestExitRemovesKidAndPassesControl(t *testing.T) {
	e := newTestWorld(t, exitLevel(), appstate.Lobby)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)
	st.Controlling = session.KidA

	UpdateZones(e)

	if st.IsInPlay(session.KidA) {
		t.Error("kid A still in play after reaching the exit")
	}
	if got := countTagged(e, tags.Player); got != 3 {
		t.Errorf("kids left = %d, want 3", got)
	}
	if st.Controlling != session.KidD {
		t.Errorf("controlling = %v, want the last kid in play, D", st.Controlling)
	}
	if !playing(e) {
		t.Errorf("an exit with kids left started a script; top %v", topMode(e))
	}
}

func TestLastKidThroughExitStartsMovie(t *testing.T) {
	e := newTestWorld(t, exitLevel(), appstate.Lobby)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)
	st.Controlling = session.KidA
	for _, k := range []session.KidID{session.KidB, session.KidC, session.KidD} {
		st.RemoveKid(k)
	}

	UpdateZones(e)

	if !st.IsInPlay(session.KidA) {
		t.Error("last kid was removed instead of switching level")
	}
	want := []leveldata.Segment{leveldata.SwitchLevel{Target: leveldata.Movie}}
	if got := script(t, e); !reflect.DeepEqual(got, want) {
		t.Fatalf("script = %v, want %v", got, want)
	}

	runScripts(t, e, "the movie", func() bool { return playing(e) && topMode(e) == appstate.Movie })
	if st.CurrentLevel != leveldata.Movie {
		t.Errorf("current level = %v, want movie", st.CurrentLevel)
	}
}

func TestMovieEndingRollsEpilogueThenCredits(t *testing.T) {
	data := testLevel()
	data.CollisionInfo = append(data.CollisionInfo, leveldata.PlacedShape{
		Level: leveldata.Movie,
		Shape: leveldata.Rect{Rectangle: leveldata.Rectangle{LeftZ: -20, RightZ: 20, BottomX: -20, TopX: 30}},
	})
	data.Enemies = append(data.Enemies, leveldata.EnemySpawn{
		Level:    leveldata.Movie,
		Location: dmath.Vec2{X: 10, Y: -8},
		Type:     leveldata.Patrol{Waypoints: []dmath.Vec2{{X: 10, Y: -8}}},
	})
	data.Cutscenes = append(data.Cutscenes, leveldata.Cutscene{
		ID:       epilogueID,
		Level:    leveldata.Outside,
		Location: leveldata.Location{Point: dmath.Vec2{X: -100, Y: -100}},
		Segments: []leveldata.Segment{leveldata.Textbox{Text: "bye"}, leveldata.SetGameIsDone{}},
	})
	e := newTestWorld(t, data, appstate.Movie)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)

	UpdateMovieEnding(e)
	if !playing(e) {
		t.Fatal("movie ending ran before the guard was avoided")
	}

	st.HasAvoidedMovieGuard = true
	UpdateMovieEnding(e)
	if top := topMode(e); top != appstate.Cutscene {
		t.Fatalf("top = %v, want Cutscene", top)
	}
	if n := countTagged(e, tags.Player) + countTagged(e, tags.Enemy); n != 0 {
		t.Errorf("%d kids and guards left on stage", n)
	}
	segments := script(t, e)
	if last, ok := segments[len(segments)-1].(leveldata.SwitchLevel); !ok || last.Target != leveldata.Outside {
		t.Errorf("closing script ends with %v, want a switch outside", segments[len(segments)-1])
	}

	runScripts(t, e, "the epilogue", func() bool {
		return st.CurrentLevel == leveldata.Outside && topMode(e) == appstate.Cutscene
	})
	if !st.Triggered(epilogueID) {
		t.Error("epilogue not latched")
	}
	if st.GameIsDone {
		t.Error("game done before the epilogue played")
	}

	runScripts(t, e, "the credits", func() bool { return topMode(e) == appstate.Credits })
	if !st.GameIsDone {
		t.Error("credits rolled without the game being done")
	}
	if _, ok := components.Credits.First(e.World); !ok {
		t.Error("credits mode did not set up its scroll")
	}
}

func TestReloadRearmsCutscenes(t *testing.T) {
	e := newTestWorld(t, testLevel(), appstate.InGame)
	stepUntil(t, e, "play", func() bool { return playing(e) })
	st := gameState(e)
	st.MarkTriggered("hello")

	ld := levelData(e)
	rev := ld.Revision
	ld.Loader = newLoadedLoader(t)
	for i := 0; i < 200 && ld.Revision == rev; i++ {
		UpdateLevelLoader(e)
		waitBriefly()
	}
	if ld.Revision == rev {
		t.Fatal("reloaded data was never picked up")
	}
	if st.Triggered("hello") {
		t.Error("cutscene still latched after a reload")
	}
	if n := appState(e).Machine.Pending(); n != 1 {
		t.Errorf("pending = %d, want the level restart queued", n)
	}
}

func TestLoadingText(t *testing.T) {
	if got := loadingText(nil); got != "Loading..." {
		t.Errorf("no level data: %q", got)
	}

	fsys := fstest.MapFS{"bad.yaml": {Data: []byte("collision:\n  - {level: outside, kind: trampoline}\n")}}
	l := assets.NewLevelLoader(fsys, "bad.yaml", "")
	l.Start()
	ld := &components.LevelData{Loader: l}
	if got := loadingText(ld); got != "Loading..." {
		t.Errorf("in flight: %q", got)
	}
	for i := 0; i < 200; i++ {
		if state, _, _ := l.Poll(); state == assets.Failed {
			break
		}
		waitBriefly()
	}
	if got := loadingText(ld); got != "Could not load level data" {
		t.Errorf("after a failed load: %q", got)
	}
}
