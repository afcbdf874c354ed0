package systems

import (
	"math/rand"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/motion"
	"github.com/automoto/matinee/shared/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	distractedText = "I'm distracted!"
	distractPrompt = "{accept}: distract the guard"
)

func patrolSettings(level leveldata.SubLevel) motion.PatrolSettings {
	s := motion.PatrolSettings{
		Speed:        cfg.Patrol.Speed,
		Friction:     cfg.Patrol.Friction,
		ArriveRadius: cfg.Patrol.ArriveRadius,
		SlowRadius:   cfg.Patrol.SlowRadius,
	}
	if level == leveldata.Movie {
		s.SpeedCap = s.Speed / 2
	}
	return s
}

// visionFor returns the guard view cone used in level.
func visionFor(level leveldata.SubLevel) motion.Vision {
	if level == leveldata.Movie {
		return motion.Vision{HalfAngle: cfg.Perception.MovieHalfAngle, Distance: cfg.Perception.MovieDistance}
	}
	return motion.Vision{HalfAngle: cfg.Perception.HalfAngle, Distance: cfg.Perception.Distance}
}

// UpdatePatrol walks patrol guards along their waypoints. The movie guard
// reaching its last waypoint means the party got past it.
func UpdatePatrol(e *ecs.ECS) {
	if !playing(e) {
		return
	}
	st := gameState(e)
	fit := levelFitter(e, st)
	settings := patrolSettings(st.CurrentLevel)

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		patrol, ok := enemy.Spawn.Type.(leveldata.Patrol)
		if !ok {
			return
		}
		t := components.Transform.Get(entry)
		p := components.Physics.Get(entry)

		res := motion.StepPatrol(motion.PatrolState{
			Position: t.Position,
			Velocity: p.Velocity,
			Target:   enemy.TargetWaypoint,
		}, patrol.Waypoints, settings, frameDelta, fit)

		t.Position = res.Position
		p.Velocity = res.Velocity
		enemy.TargetWaypoint = res.Target
		if res.Turned {
			t.Rotation = res.Heading
		}
		if st.CurrentLevel == leveldata.Movie && res.Target == len(patrol.Waypoints)-1 {
			st.HasAvoidedMovieGuard = true
		}
	})
}

// caughtScript builds the script played when a guard spots a kid. It always
// ends with a level reset.
func caughtScript(lines []string) []leveldata.Segment {
	segments := make([]leveldata.Segment, 0, len(lines)+1)
	for _, line := range lines {
		segments = append(segments, leveldata.Textbox{Text: line})
	}
	return append(segments, leveldata.LevelReset{})
}

// UpdatePerception checks every patrol guard's view cone against every kid.
// The first kid seen starts a caught script.
func UpdatePerception(e *ecs.ECS) {
	if !playing(e) {
		return
	}
	st := gameState(e)
	vision := visionFor(st.CurrentLevel)

	var kids []gamemath.Vec3
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		kids = append(kids, components.Transform.Get(entry).Position)
	})

	var spotter *donburi.Entry
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if spotter != nil {
			return
		}
		if _, ok := components.Enemy.Get(entry).Spawn.Type.(leveldata.Patrol); !ok {
			return
		}
		t := components.Transform.Get(entry)
		for _, kid := range kids {
			if vision.Sees(t.Position, t.Rotation, kid) {
				spotter = entry
				return
			}
		}
	})
	if spotter == nil {
		return
	}

	pulseFollowText(e, spotter.Entity(), cfg.Perception.CaughtText)
	var lines []string
	if scripts := cfg.Perception.CaughtScripts; len(scripts) > 0 {
		lines = scripts[rand.Intn(len(scripts))]
	}
	TriggerCutscene(e, caughtScript(lines))
}

// canDistract reports whether kid may keep guard busy.
func canDistract(st *session.State, kid session.KidID, guard *components.EnemyData) bool {
	ticket, ok := guard.Spawn.Type.(leveldata.Ticket)
	if !ok || guard.IsDistracted {
		return false
	}
	return st.HasTicket[kid] || !ticket.ChecksForRealTicket
}

// UpdateDistraction offers the controlled kid a prompt next to a ticket guard
// it can distract. Accepting marks the guard distracted, which lets the
// others past the ticket check, and hands control to the next kid.
func UpdateDistraction(e *ecs.ECS) {
	entry, ok := cutsceneEntry(e)
	if !ok {
		return
	}
	ft := components.FollowText.Get(entry)
	ft.PlayerText = ""
	if !playing(e) {
		return
	}
	st := gameState(e)
	kid, ok := controlledPlayer(e, st)
	if !ok {
		return
	}
	pos := components.Transform.Get(kid).Position

	var target *donburi.Entry
	best := cfg.Movement.DistractionRadius
	components.Enemy.Each(e.World, func(guard *donburi.Entry) {
		if !canDistract(st, st.Controlling, components.Enemy.Get(guard)) {
			return
		}
		if d := gamemath.GroundDistance(pos, components.Transform.Get(guard).Position); d < best {
			best, target = d, guard
		}
	})
	if target == nil {
		return
	}

	ft.PlayerText = distractPrompt
	if !GetAction(getOrCreateInput(e), cfg.ActionAccept).JustPressed {
		return
	}
	components.Enemy.Get(target).IsDistracted = true
	components.Player.Get(kid).Distracting = target.Entity()
	pulseFollowText(e, target.Entity(), distractedText)
	st.SwitchControl()
	ft.PlayerText = ""
}
