package factory

import (
	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a guard facing its authored direction.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	rotation := gamemath.Identity
	dx, dz := spawn.Facing.Heading()
	if q, ok := gamemath.HeadingRotation(dx, dz); ok {
		rotation = q
	}

	components.Enemy.SetValue(enemy, components.EnemyData{Spawn: spawn})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: gamemath.V3(spawn.Location.X, 0, spawn.Location.Y),
		Rotation: rotation,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{})
	return enemy
}

// CreateEnemies spawns the guards authored for level. place, when set, can
// move a spawn before it is created.
func CreateEnemies(ecs *ecs.ECS, data *leveldata.Data, level leveldata.SubLevel, place func(leveldata.EnemySpawn) leveldata.EnemySpawn) {
	for _, spawn := range data.Enemies {
		if spawn.Level != level {
			continue
		}
		if place != nil {
			spawn = place(spawn)
		}
		CreateEnemy(ecs, spawn)
	}
}
