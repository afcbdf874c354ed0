package systems

import (
	"math"
	"reflect"
	"testing"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestEnterLevelSeeding(t *testing.T) {
	t.Run("outside keeps kids still in play", func(t *testing.T) {
		st := session.New()
		st.SetPosition(session.KidB, gamemath.V3(1, 0, 1))
		st.Controlling = session.KidA

		enterLevel(st, leveldata.Outside, false)

		if got := st.InPlay(); !reflect.DeepEqual(got, []session.KidID{session.KidB}) {
			t.Errorf("in play = %v, want only B", got)
		}
		if st.Controlling != session.KidB {
			t.Errorf("controlling = %v, want B", st.Controlling)
		}
		if st.Mode != session.Switch {
			t.Errorf("mode = %v, want switch", st.Mode)
		}
	})

	t.Run("arriving outside reseeds everyone", func(t *testing.T) {
		st := session.New()
		st.CurrentLevel = leveldata.Movie
		st.SetPosition(session.KidB, gamemath.V3(1, 0, 1))

		enterLevel(st, leveldata.Outside, true)

		if got := len(st.InPlay()); got != 4 {
			t.Errorf("in play = %d, want 4", got)
		}
		want := cfg.Levels.OutsideSeeds["B"]
		if p := st.LastPositions[session.KidB]; p == nil || *p != want {
			t.Errorf("B at %v, want seed %v", p, want)
		}
	})

	t.Run("movie after the halfway point", func(t *testing.T) {
		st := session.New()
		st.HasSeenHalfOfMovie = true

		enterLevel(st, leveldata.Movie, false)

		if st.Mode != session.Follow {
			t.Errorf("mode = %v, want follow", st.Mode)
		}
		if p := st.LastPositions[session.KidD]; p == nil || *p != cutscene.HalfwayPositions[session.KidD] {
			t.Errorf("D at %v, want halfway seat", p)
		}
	})

	t.Run("movie before the halfway point starts from the lobby", func(t *testing.T) {
		st := session.New()
		enterLevel(st, leveldata.Movie, true)
		if p := st.LastPositions[session.KidA]; p == nil || *p != cfg.Levels.LobbySeeds["A"] {
			t.Errorf("A at %v, want lobby seed", p)
		}
	})
}

func TestRevealGuard(t *testing.T) {
	hidden := leveldata.EnemySpawn{
		Level:    leveldata.Movie,
		Location: dmath.Vec2{X: cfg.Levels.HiddenGuard.X, Y: cfg.Levels.HiddenGuard.Z},
	}
	st := session.New()

	if got := revealGuard(hidden, st); got.Location != hidden.Location {
		t.Errorf("guard moved before halfway: %v", got.Location)
	}

	st.HasSeenHalfOfMovie = true
	got := revealGuard(hidden, st)
	want := dmath.Vec2{X: cfg.Levels.RevealedGuard.X, Y: cfg.Levels.RevealedGuard.Z}
	if got.Location != want {
		t.Errorf("revealed at %v, want %v", got.Location, want)
	}

	other := leveldata.EnemySpawn{Level: leveldata.Movie, Location: dmath.Vec2{X: 1, Y: 2}}
	if got := revealGuard(other, st); got.Location != other.Location {
		t.Errorf("visible guard moved to %v", got.Location)
	}
}

func TestModeMapping(t *testing.T) {
	for _, level := range []leveldata.SubLevel{leveldata.Outside, leveldata.Lobby, leveldata.Movie} {
		if got, ok := levelOfMode(LevelMode(level)); !ok || got != level {
			t.Errorf("levelOfMode(LevelMode(%v)) = %v, %v", level, got, ok)
		}
		if got, ok := levelOfMode(ResetMode(level)); !ok || got != level {
			t.Errorf("levelOfMode(ResetMode(%v)) = %v, %v", level, got, ok)
		}
		if !LevelMode(level).IsLevel() {
			t.Errorf("LevelMode(%v) is not a level mode", level)
		}
	}
}

func TestMenuOptions(t *testing.T) {
	if got := menuOptions(false); !reflect.DeepEqual(got, []components.MainMenuOption{
		components.MainMenuStart, components.MainMenuExit,
	}) {
		t.Errorf("without save = %v", got)
	}
	got := menuOptions(true)
	if len(got) != 3 || got[0] != components.MainMenuContinue {
		t.Errorf("with save = %v, want Continue first", got)
	}
}

func TestProgressRestore(t *testing.T) {
	st := session.New()
	st.CurrentLevel = leveldata.Lobby
	st.HasSeenHalfOfMovie = true
	st.GiveTicket(session.KidC)
	st.MarkTriggered("lobby#2")
	st.MarkTriggered("intro")

	p := ProgressOf(st)
	if !reflect.DeepEqual(p.Triggered, []string{"intro", "lobby#2"}) {
		t.Errorf("triggered = %v, want sorted keys", p.Triggered)
	}

	fresh := session.New()
	p.Restore(fresh)
	if fresh.CurrentLevel != leveldata.Lobby || !fresh.HasSeenHalfOfMovie {
		t.Errorf("restored level %v half=%v", fresh.CurrentLevel, fresh.HasSeenHalfOfMovie)
	}
	if !fresh.HasTicket[session.KidC] || fresh.HasTicket[session.KidA] {
		t.Errorf("restored tickets = %v", fresh.HasTicket)
	}
	if fresh.MarkTriggered("intro") {
		t.Error("restored latch lets intro fire again")
	}
}

func TestProgressRestoreBadLevel(t *testing.T) {
	st := session.New()
	st.CurrentLevel = leveldata.Movie
	(&SavedProgress{Level: "balcony"}).Restore(st)
	if st.CurrentLevel != leveldata.Movie {
		t.Errorf("unknown saved level changed current level to %v", st.CurrentLevel)
	}
}

func TestCaughtScriptEndsWithReset(t *testing.T) {
	got := caughtScript([]string{"Hey!", "Out you go."})
	if len(got) != 3 {
		t.Fatalf("segments = %d, want 3", len(got))
	}
	if tb, ok := got[0].(leveldata.Textbox); !ok || tb.Text != "Hey!" {
		t.Errorf("first segment = %#v", got[0])
	}
	if _, ok := got[2].(leveldata.LevelReset); !ok {
		t.Errorf("last segment = %#v, want LevelReset", got[2])
	}
}

func TestMovieGuardsAreSlowerAndNarrower(t *testing.T) {
	if s := patrolSettings(leveldata.Movie); s.SpeedCap != cfg.Patrol.Speed/2 {
		t.Errorf("movie speed cap = %v", s.SpeedCap)
	}
	if s := patrolSettings(leveldata.Lobby); s.SpeedCap != 0 {
		t.Errorf("lobby speed cap = %v, want none", s.SpeedCap)
	}
	if visionFor(leveldata.Movie).HalfAngle >= visionFor(leveldata.Lobby).HalfAngle {
		t.Error("movie cone is not narrower")
	}
}

func TestInCutsceneZone(t *testing.T) {
	loc := leveldata.Location{Point: dmath.Vec2{X: 2, Y: -1}, Radius: 1}
	tests := []struct {
		name string
		pos  gamemath.Vec3
		want bool
	}{
		{"center", gamemath.V3(2, 0, -1), true},
		{"inside", gamemath.V3(2.5, 3, -1.5), true},
		{"on the edge", gamemath.V3(3, 0, -1), false},
		{"outside", gamemath.V3(0, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCutsceneZone(loc, tt.pos); got != tt.want {
				t.Errorf("InCutsceneZone(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	focus := gamemath.V3(2, 0, 3)
	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	ppu := cfg.Camera.PixelsPerUnit

	if x, y := WorldToScreen(focus, focus); x != cx || y != cy {
		t.Errorf("focus at (%v, %v), want screen center", x, y)
	}
	x, y := WorldToScreen(focus, gamemath.V3(3, 0, 4))
	if x != cx+ppu || y != cy-ppu {
		t.Errorf("up-right point at (%v, %v), want (%v, %v)", x, y, cx+ppu, cy-ppu)
	}
}

func TestBufferedInput(t *testing.T) {
	input := &components.InputData{}
	for i := range input.SincePressed {
		input.SincePressed[i] = neverPressed
	}
	if Buffered(input, cfg.ActionMoveUp, 0.1) {
		t.Fatal("buffered before any press")
	}

	var held [cfg.ActionCount]bool
	held[cfg.ActionMoveUp] = true
	advanceInput(input, held, frameDelta)
	if !GetAction(input, cfg.ActionMoveUp).JustPressed {
		t.Error("press not seen as just pressed")
	}

	var released [cfg.ActionCount]bool
	advanceInput(input, released, frameDelta)
	if !GetAction(input, cfg.ActionMoveUp).JustReleased {
		t.Error("release not seen")
	}
	if !Buffered(input, cfg.ActionMoveUp, 0.1) {
		t.Error("tap dropped right after release")
	}

	for i := 0; i < 10; i++ {
		advanceInput(input, released, frameDelta)
	}
	if Buffered(input, cfg.ActionMoveUp, 0.1) {
		t.Error("tap still buffered after the window")
	}
}

func TestCreditsEnd(t *testing.T) {
	for _, height := range []float64{360, 720} {
		rate := creditsRate(height)
		if want := 8592 / height; math.Abs(rate-want) > 1e-9 {
			t.Errorf("rate at %v = %v, want %v", height, rate, want)
		}

		d := creditsDuration(height)
		tween := gween.New(float32(cfg.Credits.Start), float32(creditsEnd(height)), float32(d), ease.Linear)
		frames := 0
		for {
			frames++
			v, done := tween.Update(float32(frameDelta))
			if done {
				if float64(v) > -60*rate+1e-3 {
					t.Errorf("height %v: ended at %v, want at or below %v", height, v, -60*rate)
				}
				break
			}
			if frames > 100000 {
				t.Fatalf("height %v: credits never end", height)
			}
		}
		if got := float64(frames) * frameDelta; math.Abs(got-d) > 2*frameDelta {
			t.Errorf("height %v: took %vs, want %vs", height, got, d)
		}
	}
}

func TestResolvePlaceholders(t *testing.T) {
	tests := []struct {
		method components.InputMethod
		want   string
	}{
		{components.InputKeyboard, "Space: distract the guard"},
		{components.InputXbox, "A: distract the guard"},
		{components.InputPlayStation, "Cross: distract the guard"},
	}
	for _, tt := range tests {
		if got := resolvePlaceholders(distractPrompt, tt.method); got != tt.want {
			t.Errorf("method %v: %q, want %q", tt.method, got, tt.want)
		}
	}
}
