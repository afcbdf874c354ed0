package systems

import (
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	noTicketText   = "Ahh I don't have a ticket"
	closeCallText  = "Wow, that was close!"
	closeCallActor = leveldata.KidD
)

// kidZone is one kid and the zones its footprint overlaps.
type kidZone struct {
	entry *donburi.Entry
	kid   session.KidID
	pos   gamemath.Vec3
	check *resolv.Collision
}

// overlaps returns the shapes of the zones carrying tag that contain the kid.
func (k kidZone) overlaps(tag string) []leveldata.Shape {
	if k.check == nil {
		return nil
	}
	var out []leveldata.Shape
	for _, obj := range k.check.ObjectsByTags(tag) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Zone) {
			continue
		}
		shape := components.Zone.Get(entry).Shape
		if shape.Bounds().Contains(k.pos) {
			out = append(out, shape)
		}
	}
	return out
}

func kidZones(e *ecs.ECS) []kidZone {
	var out []kidZone
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		k := kidZone{
			entry: entry,
			kid:   components.Player.Get(entry).Kid,
			pos:   components.Transform.Get(entry).Position,
		}
		if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
			k.check = obj.Check(0, 0,
				tags.ResolvCutscene,
				tags.ResolvCamera,
				tags.ResolvGetTicket,
				tags.ResolvTicketCheck,
				tags.ResolvLevelSwitch,
				tags.ResolvDespawnPlayer,
			)
		}
		out = append(out, k)
	})
	return out
}

// UpdateZones reacts to kids standing in trigger zones. At most one script
// starts per frame.
func UpdateZones(e *ecs.ECS) {
	if !playing(e) {
		return
	}
	st := gameState(e)
	ld := levelData(e)
	if st == nil || ld == nil || ld.Data == nil {
		return
	}
	kids := kidZones(e)

	for _, k := range kids {
		if triggerCutsceneZone(e, ld.Data, st, k) {
			return
		}
	}

	for _, k := range kids {
		if k.kid != st.Controlling {
			continue
		}
		if len(k.overlaps(tags.ResolvGetTicket)) > 0 {
			st.GiveTicket(k.kid)
		}
		if cam := cameraData(e); cam != nil {
			for _, shape := range k.overlaps(tags.ResolvCamera) {
				if pose := leveldata.CameraOf(shape); pose != nil {
					cam.Target = *pose
				}
			}
		}
		if !st.HasTicket[k.kid] {
			for _, shape := range k.overlaps(tags.ResolvTicketCheck) {
				if guardedBy(e, shape.Bounds()) {
					TriggerCutscene(e, []leveldata.Segment{
						leveldata.Textbox{Text: noTicketText},
						leveldata.LevelReset{},
					})
					return
				}
			}
		}
	}

	for _, k := range kids {
		for _, shape := range k.overlaps(tags.ResolvLevelSwitch) {
			if sw, ok := shape.(leveldata.LevelSwitch); ok {
				TriggerCutscene(e, []leveldata.Segment{leveldata.SwitchLevel{Target: sw.Target}})
				return
			}
		}
	}

	for _, k := range kids {
		if len(k.overlaps(tags.ResolvDespawnPlayer)) == 0 {
			continue
		}
		if len(st.InPlay()) <= 1 {
			TriggerCutscene(e, []leveldata.Segment{leveldata.SwitchLevel{Target: leveldata.Movie}})
			return
		}
		st.RemoveKid(k.kid)
		removeEntry(e, k.entry)
	}
}

// triggerCutsceneZone starts the first authored cutscene whose circle holds
// the kid.
func triggerCutsceneZone(e *ecs.ECS, data *leveldata.Data, st *session.State, k kidZone) bool {
	if k.check == nil {
		return false
	}
	for _, obj := range k.check.ObjectsByTags(tags.ResolvCutscene) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.CutsceneZone) {
			continue
		}
		zone := components.CutsceneZone.Get(entry)
		if zone.Index < 0 || zone.Index >= len(data.Cutscenes) {
			continue
		}
		c := data.Cutscenes[zone.Index]
		if c.Level != st.CurrentLevel || st.Triggered(zone.Key) {
			continue
		}
		if !InCutsceneZone(c.Location, k.pos) {
			continue
		}
		if triggerAuthored(e, c, zone.Key) {
			return true
		}
	}
	return false
}

// InCutsceneZone reports whether pos is strictly inside loc's circle.
func InCutsceneZone(loc leveldata.Location, pos gamemath.Vec3) bool {
	dx, dz := pos.X-loc.Point.X, pos.Z-loc.Point.Y
	return dx*dx+dz*dz < loc.Radius*loc.Radius
}

// guardedBy reports whether any guard that is not distracted stands inside r.
func guardedBy(e *ecs.ECS, r leveldata.Rectangle) bool {
	guarded := false
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).IsDistracted {
			return
		}
		if r.Contains(components.Transform.Get(entry).Position) {
			guarded = true
		}
	})
	return guarded
}

// UpdateMovieEnding plays the closing scene of the movie once the guard has
// been avoided.
func UpdateMovieEnding(e *ecs.ECS) {
	if !playing(e) {
		return
	}
	st := gameState(e)
	if st.CurrentLevel != leveldata.Movie || !st.HasAvoidedMovieGuard {
		return
	}
	despawnPlayers(e)
	removeTagged(e, tags.Enemy)
	TriggerCutscene(e, []leveldata.Segment{
		leveldata.CharacterPosition{Character: closeCallActor, Slot: leveldata.SlotRight},
		leveldata.Textbox{Text: closeCallText},
		leveldata.SwitchLevel{Target: leveldata.Outside},
	})
}
