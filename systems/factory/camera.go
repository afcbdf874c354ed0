package factory

import (
	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultCameraPose is where the camera sits when no shape asks otherwise.
func DefaultCameraPose() leveldata.CameraPose {
	return leveldata.CameraPose{
		Position: cfg.Camera.Position,
		Axis:     cfg.Camera.Axis,
		Angle:    cfg.Camera.Angle,
	}
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	pose := DefaultCameraPose()
	components.Camera.SetValue(camera, components.CameraData{
		Rig: cutscene.Rig{
			Translation: pose.Position,
			Rotation:    pose.Rotation(),
		},
		Target: pose,
	})
	return camera
}
