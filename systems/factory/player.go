package factory

import (
	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/session"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// footprintSize is the side of the square a kid occupies in the trigger space.
const footprintSize = 2.0

// CreatePlayer spawns a kid at pos.
func CreatePlayer(ecs *ecs.ECS, kid session.KidID, pos gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Kid: kid, Distracting: donburi.Null})
	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Rotation: gamemath.Identity,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	obj := resolv.NewObject(0, 0, footprintSize, footprintSize)
	obj.SetShape(resolv.NewRectangle(0, 0, footprintSize, footprintSize))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	MoveFootprint(obj, pos)

	addToSpace(ecs, obj)
	return player
}

// MoveFootprint centers a kid's footprint on pos.
func MoveFootprint(obj *resolv.Object, pos gamemath.Vec3) {
	obj.X, obj.Y = SpacePoint(pos)
	obj.X -= footprintSize / 2
	obj.Y -= footprintSize / 2
	obj.Update()
}

// CreatePlayers spawns every kid still in play at its last position.
func CreatePlayers(ecs *ecs.ECS, st *session.State) {
	for _, kid := range st.InPlay() {
		CreatePlayer(ecs, kid, *st.LastPositions[kid])
	}
}
