package systems

import (
	"image/color"

	"github.com/automoto/matinee/assets"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/fonts"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	backgroundColor = color.RGBA{R: 12, G: 10, B: 18, A: 255}
	floorColor      = color.RGBA{R: 58, G: 48, B: 66, A: 255}
	stairColor      = color.RGBA{R: 78, G: 62, B: 70, A: 255}
	guardColor      = color.RGBA{R: 40, G: 40, B: 90, A: 255}
	coneColor       = color.RGBA{R: 255, G: 220, B: 120, A: 160}
	mouthColor      = color.RGBA{R: 60, G: 10, B: 10, A: 255}
	dudeColors      = session.Palette{
		Legs:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Torso: color.RGBA{R: 150, G: 20, B: 30, A: 255},
		Skin:  color.RGBA{R: 224, G: 172, B: 105, A: 255},
		Hair:  color.RGBA{R: 90, G: 60, B: 30, A: 255},
	}
	momColors = session.Palette{
		Legs:     color.RGBA{R: 70, G: 70, B: 110, A: 255},
		Torso:    color.RGBA{R: 120, G: 170, B: 120, A: 255},
		Skin:     color.RGBA{R: 241, G: 194, B: 125, A: 255},
		Hair:     color.RGBA{R: 120, G: 70, B: 30, A: 255},
		LongHair: true,
	}
)

// showsLevel reports whether the sub-level is drawn under the top mode.
func showsLevel(m appstate.Mode) bool {
	switch m {
	case appstate.MainMenu, appstate.Loading, appstate.Credits:
		return false
	}
	return true
}

// DrawLevel renders the active sub-level top-down: floor, guards with their
// view cones, and the kids.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	if !showsLevel(topMode(e)) {
		return
	}
	camera := cameraData(e)
	ld := levelData(e)
	st := gameState(e)
	if camera == nil || ld == nil || st == nil {
		return
	}
	screen.Fill(backgroundColor)

	for _, shape := range ld.Data.ShapesFor(st.CurrentLevel) {
		var c color.RGBA
		switch shape.(type) {
		case leveldata.Rect, leveldata.GetTicket, leveldata.TicketCheck, leveldata.LevelSwitch:
			c = floorColor
		case leveldata.Stair:
			c = stairColor
		default:
			continue
		}
		fillRectangle(screen, camera.Focus, shape.Bounds(), c)
	}

	ppu := float32(cfg.Camera.PixelsPerUnit)
	vision := visionFor(st.CurrentLevel)
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		guard := components.Enemy.Get(entry)
		t := components.Transform.Get(entry)
		x, y := WorldToScreen(camera.Focus, t.Position)

		if _, ok := guard.Spawn.Type.(leveldata.Patrol); ok && !guard.IsDistracted {
			cone := vision.Cone(t.Position, t.Rotation)
			strokeTriangle(screen, camera.Focus, cone, coneColor)
		}
		c := guardColor
		if guard.IsDistracted {
			c = color.RGBA{R: 90, G: 90, B: 90, A: 255}
		}
		vector.FillCircle(screen, float32(x), float32(y), 0.35*ppu, c, true)
	})

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		kid := components.Player.Get(entry).Kid
		x, y := WorldToScreen(camera.Focus, components.Transform.Get(entry).Position)
		p := st.KidColors[kid]
		vector.FillCircle(screen, float32(x), float32(y), 0.3*ppu, p.Torso, true)
		vector.FillCircle(screen, float32(x), float32(y), 0.16*ppu, p.Hair, true)
		if kid == st.Controlling {
			vector.StrokeCircle(screen, float32(x), float32(y), 0.45*ppu, 1, cfg.Yellow, true)
		}
	})
}

func fillRectangle(screen *ebiten.Image, focus gamemath.Vec3, r leveldata.Rectangle, c color.RGBA) {
	x0, y0 := WorldToScreen(focus, gamemath.V3(r.TopX, 0, r.LeftZ))
	x1, y1 := WorldToScreen(focus, gamemath.V3(r.BottomX, 0, r.RightZ))
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}

func strokeTriangle(screen *ebiten.Image, focus gamemath.Vec3, t gamemath.Triangle, c color.RGBA) {
	points := [3][2]float64{}
	for i, v := range []gamemath.Vec3{
		gamemath.V3(t.A.X, 0, t.A.Y),
		gamemath.V3(t.B.X, 0, t.B.Y),
		gamemath.V3(t.C.X, 0, t.C.Y),
	} {
		points[i][0], points[i][1] = WorldToScreen(focus, v)
	}
	for i := range points {
		a, b := points[i], points[(i+1)%3]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, c, true)
	}
}

// slotScreen projects a cutscene slot, given in camera space, onto the
// screen. It also returns the pixel size of a character standing there.
func slotScreen(slot gamemath.Vec3, width, height float64) (x, y, size float64) {
	focal := width / 2
	depth := -slot.Z
	if depth <= 0 {
		depth = 1
	}
	return width/2 + slot.X/depth*focal,
		height/2 - slot.Y/depth*focal,
		cfg.Cutscene.SlotScale / depth * focal
}

func characterPalette(st *session.State, c leveldata.Character) session.Palette {
	if kid, ok := session.KidForCharacter(c); ok {
		return st.KidColors[kid]
	}
	if c == leveldata.MomCharacter {
		return momColors
	}
	return dudeColors
}

// DrawCutsceneCharacters renders the characters a script has placed in
// screen slots. The one talking opens and closes their mouth.
func DrawCutsceneCharacters(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := cutsceneEntry(e)
	st := gameState(e)
	if !ok || st == nil || !showsLevel(topMode(e)) {
		return
	}
	cs := components.Cutscene.Get(entry)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	for c, slot := range cs.Characters {
		pos, ok := cfg.Cutscene.Slots[slot.String()]
		if !ok {
			continue
		}
		x, y, size := slotScreen(pos, width, height)
		talking := st.CurrentlyTalking != nil && *st.CurrentlyTalking == c && cs.MouthOpen
		drawCharacter(screen, characterPalette(st, c), float32(x), float32(y), float32(size), talking)
	}
}

// drawCharacter draws a standing figure whose feet are at (x, y).
func drawCharacter(screen *ebiten.Image, p session.Palette, x, y, size float32, mouthOpen bool) {
	half := size / 2
	head := size / 3
	vector.FillRect(screen, x-half*0.6, y-size, half*1.2, size, p.Legs, false)
	vector.FillRect(screen, x-half, y-size*2, size, size, p.Torso, false)
	headY := y - size*2 - head
	if p.LongHair {
		vector.FillRect(screen, x-head*1.1, headY, head*2.2, head*2, p.Hair, false)
	}
	vector.FillCircle(screen, x, headY-head*0.2, head*1.1, p.Hair, true)
	vector.FillCircle(screen, x, headY, head, p.Skin, true)
	if mouthOpen {
		vector.FillRect(screen, x-head*0.3, headY+head*0.4, head*0.6, head*0.25, mouthColor, false)
	}
}

// DrawLevelTitle shows the name of the sub-level while the title overlay is
// up.
func DrawLevelTitle(e *ecs.ECS, screen *ebiten.Image) {
	if topMode(e) != appstate.LevelTitle {
		return
	}
	t := activeModeTimer(e)
	if t == nil || t.Title == "" {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	face := fonts.Title.Get()
	bounds := text.BoundString(face, t.Title) //nolint:staticcheck // TODO: migrate to text/v2
	vector.FillRect(screen, 0, float32(height/3-bounds.Dy()), float32(width), float32(bounds.Dy()*2), cfg.BlackOverlay, false)
	text.Draw(screen, t.Title, face, (width-bounds.Dx())/2, height/3+bounds.Dy()/2, cfg.Menu.TitleColor)
}

// loadingText describes the loader for the loading screen.
func loadingText(ld *components.LevelData) string {
	if ld != nil && ld.Loader != nil && ld.Loader.State() == assets.Failed {
		return "Could not load level data"
	}
	return "Loading..."
}

// DrawLoading covers the screen while level data loads.
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	if topMode(e) != appstate.Loading {
		return
	}
	screen.Fill(cfg.Menu.BackgroundColor)
	line := loadingText(levelData(e))
	face := fonts.Heading.Get()
	bounds := text.BoundString(face, line) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, line, face, (screen.Bounds().Dx()-bounds.Dx())/2, screen.Bounds().Dy()/2, cfg.Menu.TextColorNormal)
}
