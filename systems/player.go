package systems

import (
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/motion"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func kidSettings() motion.Settings {
	return motion.Settings{
		Speed:    cfg.Movement.PlayerSpeed,
		Friction: cfg.Movement.PlayerFriction,
		MaxSpeed: cfg.Movement.MaxSpeed,
	}
}

func followSettings() motion.FollowSettings {
	return motion.FollowSettings{
		Settings:           kidSettings(),
		FollowDistance:     cfg.Movement.FollowDistance,
		SeparationDistance: cfg.Movement.SeparationDistance,
		SpeedFactor:        cfg.Movement.FollowSpeedFactor,
	}
}

// levelFitter resolves moves against the active sub-level.
func levelFitter(e *ecs.ECS, st *session.State) motion.Fitter {
	var shapes []leveldata.PlacedShape
	if ld := levelData(e); ld != nil && ld.Data != nil {
		shapes = ld.Data.CollisionInfo
	}
	return motion.LevelFitter(shapes, st.CurrentLevel)
}

func intentFrom(input *components.InputData) motion.Intent {
	window := cfg.Movement.InputBuffer
	return motion.Intent{
		Up:    Buffered(input, cfg.ActionMoveUp, window),
		Down:  Buffered(input, cfg.ActionMoveDown, window),
		Left:  Buffered(input, cfg.ActionMoveLeft, window),
		Right: Buffered(input, cfg.ActionMoveRight, window),
	}
}

// UpdatePlayers moves the controlled kid from input and, in follow mode,
// steers the others after it. The switch action hands control to the next
// kid in play and the restart action resets the sub-level.
func UpdatePlayers(e *ecs.ECS) {
	if !playing(e) {
		return
	}
	st := gameState(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		appState(e).Machine.Request(ResetMode(st.CurrentLevel))
		return
	}
	if GetAction(input, cfg.ActionSwitch).JustPressed {
		st.SwitchControl()
	}

	fit := levelFitter(e, st)
	leader, ok := controlledPlayer(e, st)
	if !ok {
		return
	}

	lt := components.Transform.Get(leader)
	lp := components.Physics.Get(leader)
	lp.Velocity = motion.Accelerate(lp.Velocity, intentFrom(input), kidSettings(), frameDelta)
	moveKid(leader, lt, lp, fit)

	var companions []*donburi.Entry
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.Entity() != leader.Entity() {
			companions = append(companions, entry)
		}
	})

	for _, entry := range companions {
		t := components.Transform.Get(entry)
		p := components.Physics.Get(entry)
		if st.Mode != session.Follow {
			p.Velocity = gamemath.Vec3{}
			continue
		}
		var others []gamemath.Vec3
		for _, other := range companions {
			if other.Entity() != entry.Entity() {
				others = append(others, components.Transform.Get(other).Position)
			}
		}
		p.Velocity = motion.Companion(t.Position, p.Velocity, lt.Position, others, followSettings(), frameDelta)
		moveKid(entry, t, p, fit)
	}
}

func moveKid(entry *donburi.Entry, t *components.TransformData, p *components.PhysicsData, fit motion.Fitter) {
	pos, vel, heading, turned := motion.Step(t.Position, p.Velocity, fit)
	t.Position = pos
	p.Velocity = vel
	if turned {
		t.Rotation = heading
	}
	if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
		factory.MoveFootprint(obj.Object, pos)
	}
}
