package factory

import (
	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The trigger space covers world X and Z in [-SpaceExtent, SpaceExtent].
// World Z maps to the space's horizontal axis and world X to its vertical
// axis, growing upward like the screen.
const (
	SpaceExtent = 128.0
	SpaceScale  = 16.0
	spaceCell   = 16
)

// SpacePoint maps a world position onto the trigger space.
func SpacePoint(p gamemath.Vec3) (x, y float64) {
	return (p.Z + SpaceExtent) * SpaceScale, (SpaceExtent - p.X) * SpaceScale
}

// SpaceRect maps a ground rectangle onto the trigger space.
func SpaceRect(r leveldata.Rectangle) (x, y, w, h float64) {
	x, y = SpacePoint(gamemath.V3(r.TopX, 0, r.LeftZ))
	return x, y, (r.RightZ - r.LeftZ) * SpaceScale, (r.TopX - r.BottomX) * SpaceScale
}

func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	size := int(2 * SpaceExtent * SpaceScale)
	components.Space.Set(space, resolv.NewSpace(size, size, spaceCell, spaceCell))
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
