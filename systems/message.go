package systems

import (
	"strings"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// followTextRise is how far above an entity its line is drawn, in pixels.
const followTextRise = 14

// pulseFollowText shows text above entity for the follow-text lock time.
func pulseFollowText(e *ecs.ECS, entity donburi.Entity, line string) {
	entry, ok := cutsceneEntry(e)
	if !ok {
		return
	}
	ft := components.FollowText.Get(entry)
	ft.Entity = entity
	ft.Text = line
	ft.Lock = cfg.Cutscene.FollowText
}

// UpdateFollowText counts down the follow-text lock and drops the line once
// it runs out or its entity is gone.
func UpdateFollowText(e *ecs.ECS) {
	entry, ok := cutsceneEntry(e)
	if !ok {
		return
	}
	ft := components.FollowText.Get(entry)
	if ft.Text == "" {
		return
	}
	ft.Lock -= frameDelta
	if ft.Lock <= 0 || !e.World.Valid(ft.Entity) {
		ft.Text = ""
		ft.Entity = donburi.Null
		ft.Lock = 0
	}
}

// DrawTextBox renders the cutscene dialogue box along the bottom of the
// screen.
func DrawTextBox(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := cutsceneEntry(e)
	if !ok {
		return
	}
	box := components.TextBox.Get(entry)
	if !box.Visible || box.Text == "" {
		return
	}

	face := fonts.Speech.Get()
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	y := float32(cfg.Cutscene.TextBoxY)
	vector.FillRect(screen, 0, y, width, height-y, cfg.Cutscene.TextBoxColor, false)

	padding := int(cfg.Cutscene.BoxPadding)
	bounds := text.BoundString(face, box.Text) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, box.Text, face, padding*2, int(y)+padding+bounds.Dy(), cfg.Cutscene.TextColor)

	hint := resolvePlaceholders("{accept}", getOrCreateInput(e).LastInputMethod)
	small := fonts.Small.Get()
	hintBounds := text.BoundString(small, hint) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, small, int(width)-hintBounds.Dx()-padding, int(height)-padding, cfg.Cutscene.TextColor)
}

// DrawFollowText renders the short line above its entity and the prompt above
// the controlled kid.
func DrawFollowText(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := cutsceneEntry(e)
	camera := cameraData(e)
	if !ok || camera == nil {
		return
	}
	ft := components.FollowText.Get(entry)
	face := fonts.Body.Get()

	if ft.Text != "" && e.World.Valid(ft.Entity) {
		target := e.World.Entry(ft.Entity)
		if target.HasComponent(components.Transform) {
			x, y := WorldToScreen(camera.Focus, components.Transform.Get(target).Position)
			drawBoxedLine(screen, face, ft.Text, x, y-followTextRise)
		}
	}

	st := gameState(e)
	if ft.PlayerText == "" || st == nil {
		return
	}
	if kid, ok := controlledPlayer(e, st); ok {
		line := resolvePlaceholders(ft.PlayerText, getOrCreateInput(e).LastInputMethod)
		x, y := WorldToScreen(camera.Focus, components.Transform.Get(kid).Position)
		drawBoxedLine(screen, face, line, x, y-followTextRise)
	}
}

// drawBoxedLine draws line centered on x with its baseline at y.
func drawBoxedLine(screen *ebiten.Image, face font.Face, line string, x, y float64) {
	bounds := text.BoundString(face, line) //nolint:staticcheck // TODO: migrate to text/v2
	padding := float32(cfg.Cutscene.BoxPadding) / 2
	left := float32(x) - float32(bounds.Dx())/2
	vector.FillRect(screen,
		left-padding, float32(y)-float32(bounds.Dy())-padding,
		float32(bounds.Dx())+padding*2, float32(bounds.Dy())+padding*2,
		cfg.Cutscene.TextBoxColor, false)
	text.Draw(screen, line, face, int(left), int(y), cfg.Cutscene.TextColor)
}

// resolvePlaceholders replaces {placeholder} tokens with input-specific labels
func resolvePlaceholders(line string, inputMethod components.InputMethod) string {
	var labels map[string]string

	switch inputMethod {
	case components.InputPlayStation:
		labels = cfg.Cutscene.PlayStationLabels
	case components.InputXbox:
		labels = cfg.Cutscene.XboxLabels
	default:
		labels = cfg.Cutscene.KeyboardLabels
	}

	result := line
	for placeholder, label := range labels {
		result = strings.ReplaceAll(result, "{"+placeholder+"}", label)
	}

	return result
}
