// Package session holds the mutable state of one play session: which
// sub-level is active, which kids are still in play, tickets, milestones and
// which authored cutscenes have already fired.
package session

import (
	"fmt"
	"image/color"

	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
)

// KidID is one of the four controllable kids.
type KidID int

const (
	KidA KidID = iota
	KidB
	KidC
	KidD
)

// Kids lists every kid in control order.
var Kids = []KidID{KidA, KidB, KidC, KidD}

func (k KidID) String() string {
	if k >= KidA && k <= KidD {
		return string(rune('A' + int(k)))
	}
	return fmt.Sprintf("KidID(%d)", int(k))
}

// Character is the cutscene character for a kid.
func (k KidID) Character() leveldata.Character {
	return leveldata.KidA + leveldata.Character(k)
}

// KidForCharacter maps a cutscene character back to a kid.
func KidForCharacter(c leveldata.Character) (KidID, bool) {
	if c < leveldata.KidA || c > leveldata.KidD {
		return 0, false
	}
	return KidID(c - leveldata.KidA), true
}

// ControlMode is the multi-character control scheme.
type ControlMode int

const (
	// Switch moves only the controlled kid; the others stand still.
	Switch ControlMode = iota
	// Follow steers the other kids after the controlled one.
	Follow
)

func (m ControlMode) String() string {
	if m == Follow {
		return "follow"
	}
	return "switch"
}

// Palette is how a kid is drawn.
type Palette struct {
	Legs, Torso, Skin, Hair color.RGBA
	LongHair                bool
}

// State is the single game-state instance for a session.
type State struct {
	CurrentLevel  leveldata.SubLevel
	Mode          ControlMode
	Controlling   KidID
	LastPositions map[KidID]*gamemath.Vec3
	KidColors     map[KidID]Palette
	HasTicket     map[KidID]bool

	HasSeenHalfOfMovie   bool
	HasAvoidedMovieGuard bool
	GameIsDone           bool

	CurrentlyTalking *leveldata.Character

	triggered map[string]bool
}

func New() *State {
	s := &State{
		LastPositions: make(map[KidID]*gamemath.Vec3),
		KidColors:     make(map[KidID]Palette),
		HasTicket:     make(map[KidID]bool),
		triggered:     make(map[string]bool),
	}
	for _, k := range Kids {
		s.LastPositions[k] = nil
	}
	return s
}

// SeedPositions puts every kid back in play at the given positions.
func (s *State) SeedPositions(positions map[KidID]gamemath.Vec3) {
	for _, k := range Kids {
		if p, ok := positions[k]; ok {
			p := p
			s.LastPositions[k] = &p
		} else {
			s.LastPositions[k] = nil
		}
	}
}

// InPlay returns the kids whose position is known, in control order.
func (s *State) InPlay() []KidID {
	var out []KidID
	for _, k := range Kids {
		if s.LastPositions[k] != nil {
			out = append(out, k)
		}
	}
	return out
}

// IsInPlay reports whether k has not been removed.
func (s *State) IsInPlay(k KidID) bool {
	return s.LastPositions[k] != nil
}

// SetPosition records where k is.
func (s *State) SetPosition(k KidID, p gamemath.Vec3) {
	s.LastPositions[k] = &p
}

// NextInPlay returns the kid after from in control order among the kids in
// play, wrapping around.
func (s *State) NextInPlay(from KidID) (KidID, bool) {
	inPlay := s.InPlay()
	if len(inPlay) == 0 {
		return 0, false
	}
	for _, k := range inPlay {
		if k > from {
			return k, true
		}
	}
	return inPlay[0], true
}

// SwitchControl hands control to the next kid in play.
func (s *State) SwitchControl() KidID {
	if next, ok := s.NextInPlay(s.Controlling); ok {
		s.Controlling = next
	}
	return s.Controlling
}

// RemoveKid takes k out of play. If k was controlled, control passes to the
// last kid still in play. It reports false when no kid is left.
func (s *State) RemoveKid(k KidID) bool {
	s.LastPositions[k] = nil
	inPlay := s.InPlay()
	if len(inPlay) == 0 {
		return false
	}
	if s.Controlling == k {
		s.Controlling = inPlay[len(inPlay)-1]
	}
	return true
}

func (s *State) GiveTicket(k KidID) {
	s.HasTicket[k] = true
}

// CutsceneKey identifies an authored cutscene for the triggered set.
func CutsceneKey(c leveldata.Cutscene, index int) string {
	if c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("%s#%d", c.Level, index)
}

// Triggered reports whether the cutscene with key has already fired.
func (s *State) Triggered(key string) bool {
	return s.triggered[key]
}

// MarkTriggered latches key. It reports false if key was already latched.
func (s *State) MarkTriggered(key string) bool {
	if s.triggered[key] {
		return false
	}
	s.triggered[key] = true
	return true
}

// TriggeredKeys returns the latched cutscene keys.
func (s *State) TriggeredKeys() []string {
	out := make([]string, 0, len(s.triggered))
	for k := range s.triggered {
		out = append(out, k)
	}
	return out
}

// ResetTriggered clears the latch set.
func (s *State) ResetTriggered() {
	s.triggered = make(map[string]bool)
}
