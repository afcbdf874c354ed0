// Package leveldata describes the authored theater levels: collision shapes,
// cutscene scripts and enemy spawns. It has no dependencies on ebitengine,
// donburi systems or resolv. Everything here is immutable once loaded.
package leveldata

import (
	"fmt"
	"strings"

	"github.com/automoto/matinee/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// SubLevel identifies one of the playable areas.
type SubLevel int

const (
	Outside SubLevel = iota
	Lobby
	Movie
)

func (l SubLevel) String() string {
	switch l {
	case Outside:
		return "outside"
	case Lobby:
		return "lobby"
	case Movie:
		return "movie"
	}
	return fmt.Sprintf("SubLevel(%d)", int(l))
}

// ParseSubLevel accepts the names produced by String, case-insensitively.
func ParseSubLevel(s string) (SubLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outside":
		return Outside, nil
	case "lobby":
		return Lobby, nil
	case "movie":
		return Movie, nil
	}
	return 0, fmt.Errorf("unknown sub-level %q", s)
}

// Data is one loaded level file.
type Data struct {
	CollisionInfo []PlacedShape
	Cutscenes     []Cutscene
	Enemies       []EnemySpawn
}

// ShapesFor returns the shapes tagged with level, in authoring order.
func (d *Data) ShapesFor(level SubLevel) []Shape {
	if d == nil {
		return nil
	}
	var out []Shape
	for _, ps := range d.CollisionInfo {
		if ps.Level == level {
			out = append(out, ps.Shape)
		}
	}
	return out
}

// Rectangle is an axis-aligned box on the ground plane. X runs from BottomX to
// TopX and Z from LeftZ to RightZ.
type Rectangle struct {
	LeftZ      float64 `yaml:"left_z"`
	RightZ     float64 `yaml:"right_z"`
	TopX       float64 `yaml:"top_x"`
	BottomX    float64 `yaml:"bottom_x"`
	Height     float64 `yaml:"height"`
	BaseHeight float64 `yaml:"base_height"`
}

// Contains reports whether p lies within r's ground bounds, edges included.
func (r Rectangle) Contains(p gamemath.Vec3) bool {
	return p.X >= r.BottomX && p.X <= r.TopX && p.Z <= r.RightZ && p.Z >= r.LeftZ
}

// Clamp pulls p's X and Z into r's bounds. Y is untouched.
func (r Rectangle) Clamp(p gamemath.Vec3) gamemath.Vec3 {
	p.X = gamemath.Clamp(p.X, r.BottomX, r.TopX)
	p.Z = gamemath.Clamp(p.Z, r.LeftZ, r.RightZ)
	return p
}

// CameraPose is a camera translation and orientation.
type CameraPose struct {
	Position gamemath.Vec3
	Axis     gamemath.Vec3
	Angle    float64
}

func (c CameraPose) Rotation() gamemath.Quat {
	return gamemath.QuatFromAxisAngle(c.Axis, c.Angle)
}

// Shape is a collision shape. The set of implementations is closed.
type Shape interface {
	Bounds() Rectangle
	isShape()
}

// Rect is walkable floor.
type Rect struct {
	Rectangle
	Camera *CameraPose
}

// Stair is walkable floor whose height rises from BaseHeight at BottomX to
// Height at TopX.
type Stair struct {
	Rectangle
}

// LevelSwitch moves the party to Target when the controlled kid walks in.
type LevelSwitch struct {
	Rectangle
	Target SubLevel
	Camera *CameraPose
}

// GetTicket hands a ticket to the kid standing in it.
type GetTicket struct {
	Rectangle
	Camera *CameraPose
}

// TicketCheck is guarded floor: a kid without a ticket is turned away when an
// alert ticket guard stands in it too.
type TicketCheck struct {
	Rectangle
	Camera *CameraPose
}

// DespawnPlayer removes a kid from play. It is not walkable floor.
type DespawnPlayer struct {
	Rectangle
	Fallback gamemath.Vec3
}

func (s Rect) Bounds() Rectangle          { return s.Rectangle }
func (s Stair) Bounds() Rectangle         { return s.Rectangle }
func (s LevelSwitch) Bounds() Rectangle   { return s.Rectangle }
func (s GetTicket) Bounds() Rectangle     { return s.Rectangle }
func (s TicketCheck) Bounds() Rectangle   { return s.Rectangle }
func (s DespawnPlayer) Bounds() Rectangle { return s.Rectangle }

func (Rect) isShape()          {}
func (Stair) isShape()         {}
func (LevelSwitch) isShape()   {}
func (GetTicket) isShape()     {}
func (TicketCheck) isShape()   {}
func (DespawnPlayer) isShape() {}

// CameraOf returns the camera pose a shape asks for, if any.
func CameraOf(s Shape) *CameraPose {
	switch v := s.(type) {
	case Rect:
		return v.Camera
	case LevelSwitch:
		return v.Camera
	case GetTicket:
		return v.Camera
	case TicketCheck:
		return v.Camera
	case Stair, DespawnPlayer:
		return nil
	}
	return nil
}

// PlacedShape binds a shape to the sub-level it belongs to.
type PlacedShape struct {
	Level SubLevel
	Shape Shape
}

// Location is a circular trigger region on the ground plane. Point holds
// (x, z).
type Location struct {
	Point  dmath.Vec2
	Radius float64
}

// Cutscene is an authored script and the region that starts it.
type Cutscene struct {
	ID       string
	Location Location
	Level    SubLevel
	Segments []Segment
}

// Direction is an authored facing.
type Direction int

const (
	FacingUp Direction = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Heading returns the ground-plane delta the facing points along. Up is +x
// and Right is +z.
func (d Direction) Heading() (dx, dz float64) {
	switch d {
	case FacingDown:
		return -1, 0
	case FacingLeft:
		return 0, -1
	case FacingRight:
		return 0, 1
	}
	return 1, 0
}

// EnemySpawn is an authored guard.
type EnemySpawn struct {
	Level    SubLevel
	Location dmath.Vec2
	Type     EnemyType
	Facing   Direction
}

// EnemyType is the behavior class of a guard. The set of implementations is
// closed.
type EnemyType interface {
	isEnemyType()
}

// Ticket guards stand at doors. A guard that does not check for a real
// ticket can be distracted by anyone.
type Ticket struct {
	ChecksForRealTicket bool
}

// Patrol guards walk a looping waypoint list and watch with a vision cone.
type Patrol struct {
	Waypoints []dmath.Vec2
}

// Mom, Camera and Dog are placeholder guard kinds with no behavior yet.
type (
	Mom    struct{}
	Camera struct{}
	Dog    struct{}
)

func (Ticket) isEnemyType() {}
func (Patrol) isEnemyType() {}
func (Mom) isEnemyType()    {}
func (Camera) isEnemyType() {}
func (Dog) isEnemyType()    {}
