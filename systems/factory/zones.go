package factory

import (
	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/automoto/matinee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ZoneTags returns the resolv tags for a collision shape.
func ZoneTags(shape leveldata.Shape) []string {
	var out []string
	switch shape.(type) {
	case leveldata.Rect:
		out = append(out, tags.ResolvFloor)
	case leveldata.Stair:
		out = append(out, tags.ResolvStair)
	case leveldata.LevelSwitch:
		out = append(out, tags.ResolvLevelSwitch)
	case leveldata.GetTicket:
		out = append(out, tags.ResolvGetTicket)
	case leveldata.TicketCheck:
		out = append(out, tags.ResolvTicketCheck)
	case leveldata.DespawnPlayer:
		out = append(out, tags.ResolvDespawnPlayer)
	}
	if leveldata.CameraOf(shape) != nil {
		out = append(out, tags.ResolvCamera)
	}
	return out
}

// CreateZone indexes one collision shape of the active sub-level.
func CreateZone(ecs *ecs.ECS, shape leveldata.Shape) *donburi.Entry {
	zone := archetypes.Zone.Spawn(ecs)

	x, y, w, h := SpaceRect(shape.Bounds())
	obj := resolv.NewObject(x, y, w, h, ZoneTags(shape)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	components.Zone.SetValue(zone, components.ZoneData{Shape: shape})

	addToSpace(ecs, obj)
	return zone
}

// CreateCutsceneZone indexes the trigger circle of an authored cutscene by
// its bounding square.
func CreateCutsceneZone(ecs *ecs.ECS, index int, c leveldata.Cutscene) *donburi.Entry {
	zone := archetypes.CutsceneZone.Spawn(ecs)

	r := c.Location.Radius
	x, y, w, h := SpaceRect(leveldata.Rectangle{
		BottomX: c.Location.Point.X - r,
		TopX:    c.Location.Point.X + r,
		LeftZ:   c.Location.Point.Y - r,
		RightZ:  c.Location.Point.Y + r,
	})
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCutscene)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	components.CutsceneZone.SetValue(zone, components.CutsceneZoneData{
		Index: index,
		Key:   session.CutsceneKey(c, index),
	})

	addToSpace(ecs, obj)
	return zone
}

// CreateZones indexes every shape and cutscene trigger of level.
func CreateZones(ecs *ecs.ECS, data *leveldata.Data, level leveldata.SubLevel) {
	CreateSpace(ecs)
	for _, shape := range data.ShapesFor(level) {
		CreateZone(ecs, shape)
	}
	for i, c := range data.Cutscenes {
		if c.Level == level {
			CreateCutsceneZone(ecs, i, c)
		}
	}
}
