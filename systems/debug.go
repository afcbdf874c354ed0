package systems

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug handles the debug toggles: collision boxes, cutscene trigger
// circles and a dump of every kid and guard transform to the log.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	debug := GetOrCreateDebug(e)

	if GetAction(input, cfg.ActionDebugShapes).JustPressed {
		debug.ShowShapes = !debug.ShowShapes
	}
	if GetAction(input, cfg.ActionDebugCutscenes).JustPressed {
		debug.ShowCutscenes = !debug.ShowCutscenes
	}
	if GetAction(input, cfg.ActionDebugDump).JustPressed {
		for _, line := range transformDump(e) {
			log.Println(line)
		}
	}
}

func transformDump(e *ecs.ECS) []string {
	var lines []string
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		lines = append(lines, fmt.Sprintf("kid %s: %s", components.Player.Get(entry).Kid, describeTransform(t)))
	})
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		lines = append(lines, fmt.Sprintf("guard %T: %s", components.Enemy.Get(entry).Spawn.Type, describeTransform(t)))
	})
	if entry, ok := cutsceneEntry(e); ok {
		if in := components.Cutscene.Get(entry).Interpreter; in != nil && in.Active() {
			lines = append(lines, fmt.Sprintf("cutscene in %s: segment %d/%d waiting for %s",
				in.Level(), in.Index()+1, len(in.Script()), in.Waiting()))
		}
	}
	return lines
}

func describeTransform(t *components.TransformData) string {
	return fmt.Sprintf("pos=(%.2f, %.2f, %.2f) facing=%.2f",
		t.Position.X, t.Position.Y, t.Position.Z, gamemath.FacingAngle(t.Rotation))
}

func shapeColor(s leveldata.Shape) color.RGBA {
	switch s.(type) {
	case leveldata.Rect:
		return color.RGBA{R: 100, G: 100, B: 100, A: 255}
	case leveldata.Stair:
		return color.RGBA{R: 160, G: 120, B: 60, A: 255}
	case leveldata.LevelSwitch:
		return cfg.Green
	case leveldata.GetTicket:
		return cfg.Yellow
	case leveldata.TicketCheck:
		return cfg.Red
	case leveldata.DespawnPlayer:
		return cfg.Magenta
	}
	return cfg.White
}

// DrawDebug outlines the collision shapes and cutscene trigger circles of
// the active sub-level, with the mode stack in the corner.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debug := GetOrCreateDebug(e)
	if !debug.ShowShapes && !debug.ShowCutscenes {
		return
	}
	camera := cameraData(e)
	ld := levelData(e)
	st := gameState(e)
	if camera == nil || ld == nil || ld.Data == nil || st == nil {
		return
	}

	if debug.ShowShapes {
		for _, shape := range ld.Data.ShapesFor(st.CurrentLevel) {
			strokeRectangle(screen, camera.Focus, shape.Bounds(), shapeColor(shape))
		}
	}

	if debug.ShowCutscenes {
		for i, c := range ld.Data.Cutscenes {
			if c.Level != st.CurrentLevel {
				continue
			}
			clr := cfg.Blue
			if st.Triggered(session.CutsceneKey(c, i)) {
				clr = cfg.DarkBlue
			}
			center := gamemath.V3(c.Location.Point.X, 0, c.Location.Point.Y)
			x, y := WorldToScreen(camera.Focus, center)
			r := c.Location.Radius * cfg.Camera.PixelsPerUnit
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, clr, true)
		}
	}

	if as := appState(e); as != nil {
		modes := make([]string, 0, as.Machine.Stack().Len())
		for _, m := range as.Machine.Stack().Modes() {
			modes = append(modes, m.String())
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  [%s]", st.CurrentLevel, strings.Join(modes, " > ")), 4, 4)
	}
}

func strokeRectangle(screen *ebiten.Image, focus gamemath.Vec3, r leveldata.Rectangle, c color.RGBA) {
	x0, y0 := WorldToScreen(focus, gamemath.V3(r.TopX, 0, r.LeftZ))
	x1, y1 := WorldToScreen(focus, gamemath.V3(r.BottomX, 0, r.RightZ))
	w, h := float32(x1-x0), float32(y1-y0)
	vector.FillRect(screen, float32(x0), float32(y0), w, 1, c, false)   // Top
	vector.FillRect(screen, float32(x0), float32(y1)-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, float32(x0), float32(y0), 1, h, c, false)   // Left
	vector.FillRect(screen, float32(x1)-1, float32(y0), 1, h, c, false) // Right
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(e.World); !ok {
		entry := e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{ShowShapes: cfg.Debug.ShowShapes})
	}

	ent, _ := components.Debug.First(e.World)
	return components.Debug.Get(ent)
}
