package appstate

import (
	"errors"
	"reflect"
	"testing"
)

const frame = 1.0 / 60

func TestStackPushPop(t *testing.T) {
	s := NewStack(InGame)
	s.Push(Cutscene)
	if s.Top() != Cutscene || s.Len() != 2 {
		t.Fatalf("after push: top %v len %d", s.Top(), s.Len())
	}
	got, err := s.Pop()
	if err != nil || got != Cutscene {
		t.Fatalf("Pop = %v, %v; want Cutscene, nil", got, err)
	}
	if s.Top() != InGame {
		t.Errorf("top after pop = %v, want InGame", s.Top())
	}
}

func TestStackPopLastFails(t *testing.T) {
	s := NewStack(MainMenu)
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("Pop on single frame: err = %v, want ErrEmptyStack", err)
	}
	if s.Len() != 1 || s.Top() != MainMenu {
		t.Errorf("stack changed after failed pop: %v", s.Modes())
	}
}

func TestStackSetReplacesTop(t *testing.T) {
	s := NewStack(InGame)
	s.Push(Paused)
	s.Set(Credits)
	if want := []Mode{InGame, Credits}; !reflect.DeepEqual(s.Modes(), want) {
		t.Errorf("Modes = %v, want %v", s.Modes(), want)
	}
}

func TestStackResetLeavesOneMode(t *testing.T) {
	s := NewStack(InGame)
	s.Push(Cutscene)
	s.Push(Paused)
	s.Reset(MainMenu)
	if want := []Mode{MainMenu}; !reflect.DeepEqual(s.Modes(), want) {
		t.Errorf("Modes = %v, want %v", s.Modes(), want)
	}
}

func TestMachineDeferredSwitch(t *testing.T) {
	m := NewMachine(InGame, 0.01)
	m.Push(Cutscene)
	m.Request(Lobby)

	if m.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", m.Pending())
	}
	if m.Top() != Cutscene {
		t.Fatalf("request applied before Tick: top %v", m.Top())
	}

	res, err := m.Tick(frame)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !res.Accepted || res.Committed {
		t.Fatalf("first tick = %+v, want accepted only", res)
	}
	if m.Top() != InGame || m.Stack().Len() != 1 {
		t.Fatalf("after accept: %v, want [InGame]", m.Stack().Modes())
	}

	res, err = m.Tick(frame)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !res.Committed || res.Mode != Lobby {
		t.Fatalf("second tick = %+v, want commit to Lobby", res)
	}
	if want := []Mode{Lobby}; !reflect.DeepEqual(m.Stack().Modes(), want) {
		t.Errorf("Modes = %v, want %v", m.Stack().Modes(), want)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending = %d after commit", m.Pending())
	}
}

func TestMachineWaitsForDelay(t *testing.T) {
	m := NewMachine(InGame, 0.5)
	m.Request(Movie)
	m.Tick(frame)
	for i := 0; i < 10; i++ {
		if res, _ := m.Tick(frame); res.Committed {
			t.Fatalf("committed after %d frames, before the delay", i+1)
		}
	}
	var committed bool
	for i := 0; i < 30 && !committed; i++ {
		res, _ := m.Tick(frame)
		committed = res.Committed
	}
	if !committed || m.Top() != Movie {
		t.Errorf("top = %v, want Movie after the delay", m.Top())
	}
}

func TestMachineLatestRequestWins(t *testing.T) {
	m := NewMachine(InGame, 0.01)
	m.Push(Cutscene)
	m.Request(Lobby)
	m.Request(Movie)
	m.Tick(frame)
	if tgt, ok := m.PendingTarget(); !ok || tgt != Movie {
		t.Fatalf("pending target = %v, %v; want Movie", tgt, ok)
	}

	m.Request(InGame)
	res, _ := m.Tick(frame)
	if res.Committed {
		t.Fatal("a superseding request committed in the same tick")
	}
	res, _ = m.Tick(frame)
	if !res.Committed || m.Top() != InGame {
		t.Errorf("after supersede: %+v top %v, want InGame", res, m.Top())
	}
}

func TestMachineOneCommitPerTick(t *testing.T) {
	m := NewMachine(InGame, 0)
	m.Push(Cutscene)
	m.Request(Lobby)
	commits := 0
	for i := 0; i < 3; i++ {
		res, _ := m.Tick(frame)
		if res.Committed {
			commits++
		}
		if res.Accepted && res.Committed {
			t.Fatal("accepted and committed in one tick")
		}
	}
	if commits != 1 {
		t.Errorf("commits = %d, want 1", commits)
	}
}

type hookLog struct{ calls []string }

func TestRegistrySetupAndTeardown(t *testing.T) {
	r := NewRegistry[*hookLog]()
	ready := false
	r.Register(InGame, Hooks[*hookLog]{
		Setup: func(l *hookLog) bool {
			l.calls = append(l.calls, "setup InGame")
			return ready
		},
		Teardown: func(l *hookLog) { l.calls = append(l.calls, "teardown InGame") },
	})
	r.Register(Lobby, Hooks[*hookLog]{
		Setup: func(l *hookLog) bool {
			l.calls = append(l.calls, "setup Lobby")
			return true
		},
	})

	log := &hookLog{}
	s := NewStack(InGame)

	r.Sync(log, s)
	if !r.SetupPending(InGame) {
		t.Fatal("setup reported not ready but is not pending")
	}
	ready = true
	r.Sync(log, s)
	r.Sync(log, s)

	s.Push(Cutscene)
	r.Sync(log, s)
	s.Pop()
	r.Sync(log, s)

	s.Set(Lobby)
	r.Sync(log, s)

	want := []string{"setup InGame", "setup InGame", "teardown InGame", "setup Lobby"}
	if !reflect.DeepEqual(log.calls, want) {
		t.Errorf("calls = %v, want %v", log.calls, want)
	}
}

func TestModeString(t *testing.T) {
	if Credits.String() != "Credits" || Mode(99).String() != "Mode(99)" {
		t.Errorf("String: %q %q", Credits.String(), Mode(99).String())
	}
}
