package components

import (
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Spawn        leveldata.EnemySpawn
	IsDistracted bool

	// TargetWaypoint is the index of the waypoint a patrol guard walks to.
	TargetWaypoint int
}

var Enemy = donburi.NewComponentType[EnemyData]()
