// Package cutscene runs authored cutscene scripts. A script is a list of
// segments executed one after another; a segment may hold the script for a
// time, until the player accepts, or until the camera arrives.
package cutscene

import (
	"log"

	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
)

// Effects receives what a script asks the rest of the game to do.
type Effects interface {
	ShowText(text string)
	HideText()
	DisplayCharacter(c leveldata.Character, slot leveldata.Slot)
	ResetLevel()
	RequestLevel(level leveldata.SubLevel)
	// Camera returns the camera to steer, or nil when there is none.
	Camera() *Rig
}

// Wait is what a running script is waiting for.
type Wait int

const (
	WaitNone Wait = iota
	WaitTime
	WaitInteraction
)

func (w Wait) String() string {
	switch w {
	case WaitTime:
		return "time"
	case WaitInteraction:
		return "interaction"
	}
	return "none"
}

// Status is the outcome of one Update.
type Status int

const (
	// Running means a script is in progress.
	Running Status = iota
	// Ended means there is no script left to run and the cutscene mode should
	// be popped.
	Ended
)

const (
	debugHold    = 2.0
	acceptWindow = 0.1
)

// HalfwayPositions are where the kids stand after the first half of the
// movie.
var HalfwayPositions = map[session.KidID]gamemath.Vec3{
	session.KidA: gamemath.V3(21, 16, 0),
	session.KidB: gamemath.V3(21, 16, -1),
	session.KidC: gamemath.V3(21, 16, -0.5),
	session.KidD: gamemath.V3(21, 16, 0.5),
}

// Interpreter executes one script at a time.
type Interpreter struct {
	segments  []leveldata.Segment
	level     leveldata.SubLevel
	running   bool
	index     int
	wait      Wait
	remaining float64

	clock      float64
	lastAccept float64
}

func NewInterpreter() *Interpreter {
	return &Interpreter{lastAccept: -acceptWindow * 2}
}

// Trigger starts a script from its first segment. The caller pushes the
// cutscene mode.
func (in *Interpreter) Trigger(segments []leveldata.Segment, level leveldata.SubLevel) {
	in.segments = segments
	in.level = level
	in.running = true
	in.index = 0
	in.wait = WaitNone
	in.remaining = 0
}

// Clear drops the current script without finishing it.
func (in *Interpreter) Clear() {
	in.segments = nil
	in.running = false
	in.index = 0
	in.wait = WaitNone
}

func (in *Interpreter) Active() bool { return in.running }

func (in *Interpreter) Index() int { return in.index }

// Script is the segment list being run. It is nil once the script ends.
func (in *Interpreter) Script() []leveldata.Segment { return in.segments }

func (in *Interpreter) Waiting() Wait { return in.wait }

func (in *Interpreter) Level() leveldata.SubLevel { return in.level }

// Update runs the script for one frame. accept is the rising edge of the
// accept input.
func (in *Interpreter) Update(dt float64, accept bool, st *session.State, fx Effects) Status {
	in.clock += dt
	if !in.running {
		return Ended
	}

	switch in.wait {
	case WaitTime:
		in.remaining -= dt
		if in.remaining >= 0 {
			return Running
		}
		in.advance()
	case WaitInteraction:
		if !accept || in.clock-in.lastAccept <= acceptWindow {
			return Running
		}
		in.lastAccept = in.clock
		in.advance()
	}

	if in.index >= len(in.segments) {
		in.running = false
		in.segments = nil
		return Running
	}

	in.dispatch(in.segments[in.index], dt, st, fx)
	return Running
}

func (in *Interpreter) advance() {
	in.index++
	in.wait = WaitNone
}

func (in *Interpreter) hold(seconds float64) {
	in.wait = WaitTime
	in.remaining = seconds
}

func (in *Interpreter) dispatch(seg leveldata.Segment, dt float64, st *session.State, fx Effects) {
	switch s := seg.(type) {
	case leveldata.Debug:
		log.Printf("cutscene: %s", s.Text)
		in.hold(debugHold)
	case leveldata.Textbox:
		if s.Text == "" {
			fx.HideText()
			in.hold(0)
			return
		}
		fx.ShowText(s.Text)
		in.wait = WaitInteraction
	case leveldata.CharacterPosition:
		fx.DisplayCharacter(s.Character, s.Slot)
		in.hold(0)
	case leveldata.SetTalking:
		c := s.Character
		st.CurrentlyTalking = &c
		in.hold(0)
	case leveldata.LevelReset:
		fx.ResetLevel()
		in.hold(0)
	case leveldata.SwitchLevel:
		fx.RequestLevel(s.Target)
	case leveldata.SetHalfwayMovie:
		st.HasSeenHalfOfMovie = true
		st.SeedPositions(HalfwayPositions)
		fx.ResetLevel()
		in.hold(0)
	case leveldata.SetGameIsDone:
		st.GameIsDone = true
		in.hold(0)
	case leveldata.Delay:
		in.hold(s.Seconds)
	case leveldata.CameraPosition:
		rig := fx.Camera()
		if rig == nil || rig.Approach(s.Position, gamemath.QuatFromAxisAngle(s.Axis, s.Angle), s.Speed, dt) {
			in.hold(0)
		}
	case leveldata.Speech:
		log.Printf("Warning: cutscene speech segment is not supported yet, skipping %q", s.Text)
		in.hold(0)
	default:
		log.Printf("Warning: unhandled cutscene segment %T, skipping", seg)
		in.hold(0)
	}
}
