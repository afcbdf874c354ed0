package components

import (
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	cutscene.Rig
	// Target is the pose the camera eases toward outside of cutscenes.
	Target leveldata.CameraPose
	// Focus is the ground point the top-down view is centered on.
	Focus gamemath.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
