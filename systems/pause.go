package systems

import (
	"log"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/fonts"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func setupPause(e *ecs.ECS) bool {
	GetOrCreatePause(e).SelectedOption = components.MenuResume
	return true
}

// UpdatePause pushes the pause overlay over a live sub-level and handles its
// menu. The pause action pops it again.
func UpdatePause(e *ecs.ECS) {
	as := appState(e)
	if as == nil {
		return
	}
	input := getOrCreateInput(e)

	if as.Machine.Top() != appstate.Paused {
		if playing(e) && GetAction(input, cfg.ActionPause).JustPressed {
			as.Machine.Push(appstate.Paused)
		}
		return
	}

	pause := GetOrCreatePause(e)
	if GetAction(input, cfg.ActionPause).JustPressed || GetAction(input, cfg.ActionMenuBack).JustPressed {
		resume(as)
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			resume(as)
		case components.MenuFullscreen:
			fullscreen := !ebiten.IsFullscreen()
			ebiten.SetFullscreen(fullscreen)
			_ = SaveSettings(&SavedSettings{Fullscreen: fullscreen})
		case components.MenuExit:
			if st := gameState(e); st != nil {
				_ = SaveProgress(st)
			}
			as.Machine.Stack().Reset(appstate.MainMenu)
		}
	}
}

func resume(as *components.AppStateData) {
	if _, err := as.Machine.Pop(); err != nil {
		log.Printf("Warning: resuming: %v", err)
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if topMode(e) != appstate.Paused {
		return
	}
	pause := GetOrCreatePause(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * cfg.Pause.MenuItemHeight
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Heading.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*cfg.Pause.MenuItemHeight

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		bounds := text.BoundString(fontFace, option) //nolint:staticcheck // TODO: migrate to text/v2
		x := int((width - float64(bounds.Dx())) / 2)
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintBounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
