package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/matinee/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// tmxUnit is how many Tiled pixels make one world unit.
const tmxUnit = 16.0

// LoadTMXShapes reads collision shapes drawn as rectangle objects in a TMX
// file. Each object group names the shape kind (rect, stair, get_ticket,
// ticket_check, level_switch, despawn_player). Tiled's horizontal axis maps to
// world Z and its vertical axis to world X, with X growing toward the top of
// the map. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
//
// Object properties: level (required), height, base_height, target
// (level_switch) and fallback_x/fallback_y/fallback_z (despawn_player). The
// map properties origin_x and origin_z place the map's bottom-left corner in
// the world.
func LoadTMXShapes(fsys fs.FS, tmxPath string) ([]PlacedShape, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapH := float64(levelMap.Height*levelMap.TileHeight) / tmxUnit
	var originX, originZ float64
	if props := levelMap.Properties; props != nil {
		originX = props.GetFloat("origin_x")
		originZ = props.GetFloat("origin_z")
	}

	var shapes []PlacedShape
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			level, err := ParseSubLevel(o.Properties.GetString("level"))
			if err != nil {
				return nil, fmt.Errorf("TMX object %d in %s: %w", o.ID, og.Name, err)
			}
			r := Rectangle{
				LeftZ:      originZ + o.X/tmxUnit,
				RightZ:     originZ + (o.X+o.Width)/tmxUnit,
				TopX:       originX + mapH - o.Y/tmxUnit,
				BottomX:    originX + mapH - (o.Y+o.Height)/tmxUnit,
				Height:     o.Properties.GetFloat("height"),
				BaseHeight: o.Properties.GetFloat("base_height"),
			}

			var shape Shape
			switch og.Name {
			case "rect":
				shape = Rect{Rectangle: r}
			case "stair":
				shape = Stair{Rectangle: r}
			case "get_ticket":
				shape = GetTicket{Rectangle: r}
			case "ticket_check":
				shape = TicketCheck{Rectangle: r}
			case "level_switch":
				target, err := ParseSubLevel(o.Properties.GetString("target"))
				if err != nil {
					return nil, fmt.Errorf("TMX object %d target: %w", o.ID, err)
				}
				shape = LevelSwitch{Rectangle: r, Target: target}
			case "despawn_player":
				shape = DespawnPlayer{
					Rectangle: r,
					Fallback: gamemath.V3(
						o.Properties.GetFloat("fallback_x"),
						o.Properties.GetFloat("fallback_y"),
						o.Properties.GetFloat("fallback_z"),
					),
				}
			default:
				return nil, fmt.Errorf("TMX group %q: %w", og.Name, ErrUnknownShape)
			}
			shapes = append(shapes, PlacedShape{Level: level, Shape: shape})
		}
	}
	return shapes, nil
}
