package systems

import (
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// LookPoint is roughly where the rig looks on the ground: straight ahead
// along +x by its height.
func LookPoint(rig cutscene.Rig) gamemath.Vec3 {
	return gamemath.V3(rig.Translation.X+rig.Translation.Y, 0, rig.Translation.Z)
}

// UpdateCamera eases the rig toward the pose asked for by the zone the
// controlled kid stands in, and moves the view focus toward the kid. Camera
// segments steer the rig directly during cutscenes.
func UpdateCamera(e *ecs.ECS) {
	camera := cameraData(e)
	if camera == nil {
		return
	}

	focus := LookPoint(camera.Rig)
	if playing(e) {
		camera.Approach(camera.Target.Position, camera.Target.Rotation(), config.Camera.RetargetRate, frameDelta)
		if st := gameState(e); st != nil {
			if kid, ok := controlledPlayer(e, st); ok {
				focus = components.Transform.Get(kid).Position
			}
		}
	}

	camera.Focus.X += (focus.X - camera.Focus.X) * config.Camera.Smoothing
	camera.Focus.Z += (focus.Z - camera.Focus.Z) * config.Camera.Smoothing
}

// WorldToScreen projects a ground point into the top-down view. Up the
// screen is +x and right is +z.
func WorldToScreen(focus, p gamemath.Vec3) (float64, float64) {
	ppu := config.Camera.PixelsPerUnit
	return float64(config.C.Width)/2 + (p.Z-focus.Z)*ppu,
		float64(config.C.Height)/2 - (p.X-focus.X)*ppu
}
