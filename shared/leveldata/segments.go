package leveldata

import (
	"fmt"
	"strings"

	"github.com/automoto/matinee/shared/gamemath"
)

// Character is someone who can appear in a cutscene.
type Character int

const (
	Dude Character = iota
	KidA
	KidB
	KidC
	KidD
	MomCharacter
)

var characterNames = map[Character]string{
	Dude:         "dude",
	KidA:         "a",
	KidB:         "b",
	KidC:         "c",
	KidD:         "d",
	MomCharacter: "mom",
}

func (c Character) String() string {
	if s, ok := characterNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Character(%d)", int(c))
}

func ParseCharacter(s string) (Character, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range characterNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown character %q", s)
}

// Slot is where a cutscene character stands on screen. Clear removes them.
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
	SlotCenterLeft
	SlotCenterRight
	SlotClear
)

var slotNames = map[Slot]string{
	SlotLeft:        "left",
	SlotRight:       "right",
	SlotCenterLeft:  "center_left",
	SlotCenterRight: "center_right",
	SlotClear:       "clear",
}

func (s Slot) String() string {
	if n, ok := slotNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

func ParseSlot(s string) (Slot, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for slot, name := range slotNames {
		if name == s {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("unknown slot %q", s)
}

// Segment is one step of a cutscene script. The set of implementations is
// closed.
type Segment interface {
	isSegment()
}

type (
	// Debug logs its text and holds for two seconds.
	Debug struct{ Text string }
	// Textbox shows text until the player accepts. Empty text hides the box.
	Textbox struct{ Text string }
	// CharacterPosition places a character in a screen slot.
	CharacterPosition struct {
		Character Character
		Slot      Slot
	}
	// SwitchLevel requests a move to another sub-level. It ends the script.
	SwitchLevel struct{ Target SubLevel }
	// SetTalking marks who is speaking.
	SetTalking struct{ Character Character }
	// CameraPosition eases the camera toward a pose.
	CameraPosition struct {
		Position gamemath.Vec3
		Axis     gamemath.Vec3
		Angle    float64
		Speed    float64
	}
	// LevelReset restarts the current sub-level.
	LevelReset struct{}
	// SetHalfwayMovie records that the party has seen half the movie.
	SetHalfwayMovie struct{}
	// SetGameIsDone records that the game is finished.
	SetGameIsDone struct{}
	// Delay holds for a number of seconds.
	Delay struct{ Seconds float64 }
	// Speech is reserved for voiced lines and has no behavior yet.
	Speech struct {
		Text      string
		Character Character
	}
)

func (Debug) isSegment()             {}
func (Textbox) isSegment()           {}
func (CharacterPosition) isSegment() {}
func (SwitchLevel) isSegment()       {}
func (SetTalking) isSegment()        {}
func (CameraPosition) isSegment()    {}
func (LevelReset) isSegment()        {}
func (SetHalfwayMovie) isSegment()   {}
func (SetGameIsDone) isSegment()     {}
func (Delay) isSegment()             {}
func (Speech) isSegment()            {}
