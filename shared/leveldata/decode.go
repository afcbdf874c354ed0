package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/automoto/matinee/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownShape   = errors.New("unknown collision shape")
	ErrUnknownSegment = errors.New("unknown cutscene segment")
	ErrUnknownEnemy   = errors.New("unknown enemy type")
)

// DecodeError reports which entry of a level file failed to decode.
type DecodeError struct {
	Section string
	Index   int
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Section, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type fileSpec struct {
	Collision []shapeSpec    `yaml:"collision"`
	Cutscenes []cutsceneSpec `yaml:"cutscenes"`
	Enemies   []enemySpec    `yaml:"enemies"`
}

type poseSpec struct {
	Position []float64 `yaml:"position"`
	Axis     []float64 `yaml:"axis"`
	Angle    float64   `yaml:"angle"`
}

type shapeSpec struct {
	Level     string `yaml:"level"`
	Kind      string `yaml:"kind"`
	Rectangle `yaml:",inline"`
	Camera    *poseSpec `yaml:"camera"`
	Target    string    `yaml:"target"`
	Fallback  []float64 `yaml:"fallback"`
}

type locationSpec struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

type cutsceneSpec struct {
	ID       string       `yaml:"id"`
	Level    string       `yaml:"level"`
	Location locationSpec `yaml:"location"`
	Segments []yaml.Node  `yaml:"segments"`
}

type enemySpec struct {
	Level               string      `yaml:"level"`
	Location            []float64   `yaml:"location"`
	Facing              string      `yaml:"facing"`
	Type                string      `yaml:"type"`
	ChecksForRealTicket bool        `yaml:"checks_for_real_ticket"`
	Waypoints           [][]float64 `yaml:"waypoints"`
}

// Load reads and decodes a level file from fsys.
func Load(fsys fs.FS, name string) (*Data, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", name, err)
	}
	return data, nil
}

// Parse decodes a level file.
func Parse(raw []byte) (*Data, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	data := &Data{}
	for i, s := range spec.Collision {
		ps, err := s.build()
		if err != nil {
			return nil, &DecodeError{Section: "collision", Index: i, Err: err}
		}
		data.CollisionInfo = append(data.CollisionInfo, ps)
	}
	for i, s := range spec.Cutscenes {
		c, err := s.build()
		if err != nil {
			return nil, &DecodeError{Section: "cutscenes", Index: i, Err: err}
		}
		data.Cutscenes = append(data.Cutscenes, c)
	}
	for i, s := range spec.Enemies {
		e, err := s.build()
		if err != nil {
			return nil, &DecodeError{Section: "enemies", Index: i, Err: err}
		}
		data.Enemies = append(data.Enemies, e)
	}
	return data, nil
}

func vec3(v []float64, field string) (gamemath.Vec3, error) {
	if len(v) != 3 {
		return gamemath.Vec3{}, fmt.Errorf("%s: want 3 components, got %d", field, len(v))
	}
	return gamemath.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func vec2(v []float64, field string) (dmath.Vec2, error) {
	if len(v) != 2 {
		return dmath.Vec2{}, fmt.Errorf("%s: want 2 components, got %d", field, len(v))
	}
	return dmath.Vec2{X: v[0], Y: v[1]}, nil
}

func (p *poseSpec) build() (*CameraPose, error) {
	if p == nil {
		return nil, nil
	}
	pos, err := vec3(p.Position, "camera.position")
	if err != nil {
		return nil, err
	}
	axis, err := vec3(p.Axis, "camera.axis")
	if err != nil {
		return nil, err
	}
	return &CameraPose{Position: pos, Axis: axis, Angle: p.Angle}, nil
}

func (s shapeSpec) build() (PlacedShape, error) {
	level, err := ParseSubLevel(s.Level)
	if err != nil {
		return PlacedShape{}, err
	}
	cam, err := s.Camera.build()
	if err != nil {
		return PlacedShape{}, err
	}

	var shape Shape
	switch strings.ToLower(s.Kind) {
	case "rect":
		shape = Rect{Rectangle: s.Rectangle, Camera: cam}
	case "stair":
		shape = Stair{Rectangle: s.Rectangle}
	case "get_ticket":
		shape = GetTicket{Rectangle: s.Rectangle, Camera: cam}
	case "ticket_check":
		shape = TicketCheck{Rectangle: s.Rectangle, Camera: cam}
	case "level_switch":
		target, err := ParseSubLevel(s.Target)
		if err != nil {
			return PlacedShape{}, fmt.Errorf("level_switch target: %w", err)
		}
		shape = LevelSwitch{Rectangle: s.Rectangle, Target: target, Camera: cam}
	case "despawn_player":
		fallback, err := vec3(s.Fallback, "fallback")
		if err != nil {
			return PlacedShape{}, err
		}
		shape = DespawnPlayer{Rectangle: s.Rectangle, Fallback: fallback}
	default:
		return PlacedShape{}, fmt.Errorf("%w %q", ErrUnknownShape, s.Kind)
	}
	return PlacedShape{Level: level, Shape: shape}, nil
}

func (s cutsceneSpec) build() (Cutscene, error) {
	level, err := ParseSubLevel(s.Level)
	if err != nil {
		return Cutscene{}, err
	}
	c := Cutscene{
		ID:    s.ID,
		Level: level,
		Location: Location{
			Point:  dmath.Vec2{X: s.Location.X, Y: s.Location.Z},
			Radius: s.Location.Radius,
		},
	}
	for i := range s.Segments {
		seg, err := decodeSegment(&s.Segments[i])
		if err != nil {
			return Cutscene{}, fmt.Errorf("segment %d: %w", i, err)
		}
		c.Segments = append(c.Segments, seg)
	}
	return c, nil
}

// decodeSegment accepts either a bare name for segments without a payload,
// or a single-key mapping from segment name to payload.
func decodeSegment(node *yaml.Node) (Segment, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "level_reset":
			return LevelReset{}, nil
		case "set_halfway_movie":
			return SetHalfwayMovie{}, nil
		case "set_game_is_done":
			return SetGameIsDone{}, nil
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownSegment, node.Value)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, fmt.Errorf("segment mapping must have exactly one key")
		}
		return decodeSegmentPayload(node.Content[0].Value, node.Content[1])
	}
	return nil, fmt.Errorf("segment must be a name or a mapping")
}

func decodeSegmentPayload(name string, value *yaml.Node) (Segment, error) {
	switch name {
	case "debug":
		return Debug{Text: value.Value}, nil
	case "textbox":
		return Textbox{Text: value.Value}, nil
	case "delay":
		var secs float64
		if err := value.Decode(&secs); err != nil {
			return nil, fmt.Errorf("delay: %w", err)
		}
		return Delay{Seconds: secs}, nil
	case "level_switch":
		target, err := ParseSubLevel(value.Value)
		if err != nil {
			return nil, err
		}
		return SwitchLevel{Target: target}, nil
	case "set_talking":
		c, err := ParseCharacter(value.Value)
		if err != nil {
			return nil, err
		}
		return SetTalking{Character: c}, nil
	case "character_position":
		var raw struct {
			Character string `yaml:"character"`
			Slot      string `yaml:"slot"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("character_position: %w", err)
		}
		c, err := ParseCharacter(raw.Character)
		if err != nil {
			return nil, err
		}
		slot, err := ParseSlot(raw.Slot)
		if err != nil {
			return nil, err
		}
		return CharacterPosition{Character: c, Slot: slot}, nil
	case "camera_position":
		var raw struct {
			poseSpec `yaml:",inline"`
			Speed    float64 `yaml:"speed"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("camera_position: %w", err)
		}
		pose, err := raw.poseSpec.build()
		if err != nil {
			return nil, err
		}
		return CameraPosition{Position: pose.Position, Axis: pose.Axis, Angle: pose.Angle, Speed: raw.Speed}, nil
	case "speech":
		var raw struct {
			Text      string `yaml:"text"`
			Character string `yaml:"character"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("speech: %w", err)
		}
		c, err := ParseCharacter(raw.Character)
		if err != nil {
			return nil, err
		}
		return Speech{Text: raw.Text, Character: c}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSegment, name)
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "up":
		return FacingUp, nil
	case "down":
		return FacingDown, nil
	case "left":
		return FacingLeft, nil
	case "right":
		return FacingRight, nil
	}
	return 0, fmt.Errorf("unknown facing %q", s)
}

func (s enemySpec) build() (EnemySpawn, error) {
	level, err := ParseSubLevel(s.Level)
	if err != nil {
		return EnemySpawn{}, err
	}
	loc, err := vec2(s.Location, "location")
	if err != nil {
		return EnemySpawn{}, err
	}
	facing, err := parseDirection(s.Facing)
	if err != nil {
		return EnemySpawn{}, err
	}

	var kind EnemyType
	switch strings.ToLower(s.Type) {
	case "ticket":
		kind = Ticket{ChecksForRealTicket: s.ChecksForRealTicket}
	case "patrol":
		p := Patrol{}
		for i, w := range s.Waypoints {
			wp, err := vec2(w, fmt.Sprintf("waypoints[%d]", i))
			if err != nil {
				return EnemySpawn{}, err
			}
			p.Waypoints = append(p.Waypoints, wp)
		}
		if len(p.Waypoints) == 0 {
			return EnemySpawn{}, fmt.Errorf("patrol needs at least one waypoint")
		}
		kind = p
	case "mom":
		kind = Mom{}
	case "camera":
		kind = Camera{}
	case "dog":
		kind = Dog{}
	default:
		return EnemySpawn{}, fmt.Errorf("%w %q", ErrUnknownEnemy, s.Type)
	}
	return EnemySpawn{Level: level, Location: loc, Type: kind, Facing: facing}, nil
}
