package components

import (
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity gamemath.Vec3
}

var Physics = donburi.NewComponentType[PhysicsData]()

// TransformData places an entity in the world. X is up the screen, Z is to
// the right and Y is height.
type TransformData struct {
	Position gamemath.Vec3
	Rotation gamemath.Quat
}

var Transform = donburi.NewComponentType[TransformData]()
