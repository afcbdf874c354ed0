package systems

import (
	"log"
	"os"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/fonts"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func setupMenu(e *ecs.ECS) bool {
	menu := GetOrCreateMenu(e)
	menu.HasSaveGame = HasSaveGame()
	menu.VisibleOptions = menuOptions(menu.HasSaveGame)
	menu.SelectedIndex = 0
	return true
}

func teardownMenu(e *ecs.ECS) {
	if entry, ok := components.Menu.First(e.World); ok {
		e.World.Remove(entry.Entity())
	}
}

// menuOptions lists the main menu entries. Continue is offered only when a
// save exists.
func menuOptions(hasSave bool) []components.MainMenuOption {
	if hasSave {
		return []components.MainMenuOption{
			components.MainMenuContinue,
			components.MainMenuStart,
			components.MainMenuExit,
		}
	}
	return []components.MainMenuOption{
		components.MainMenuStart,
		components.MainMenuExit,
	}
}

// UpdateMenu handles main menu navigation while the menu mode is on top.
func UpdateMenu(e *ecs.ECS) {
	if topMode(e) != appstate.MainMenu {
		return
	}
	menu := GetOrCreateMenu(e)
	input := getOrCreateInput(e)

	// Navigate menu with wrap-around
	numOptions := len(menu.VisibleOptions)
	if numOptions == 0 {
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch menu.VisibleOptions[menu.SelectedIndex] {
		case components.MainMenuStart:
			StartGame(e, nil)
		case components.MainMenuContinue:
			progress, err := LoadProgress()
			if err != nil {
				log.Printf("Warning: Could not continue: %v", err)
			}
			StartGame(e, progress)
		case components.MainMenuExit:
			os.Exit(0)
		}
		return
	}

	// Allow back/escape to exit
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		os.Exit(0)
	}
}

// StartGame replaces the session, restoring progress when given, and goes
// through loading into the session's sub-level.
func StartGame(e *ecs.ECS, progress *SavedProgress) {
	entry, ok := components.Game.First(e.World)
	as := appState(e)
	if !ok || as == nil {
		return
	}
	st := factory.NewSession()
	if progress != nil {
		progress.Restore(st)
	}
	components.Game.SetValue(entry, components.GameData{State: st})
	as.Machine.Set(appstate.Loading)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	if topMode(e) != appstate.MainMenu {
		return
	}
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleBounds := text.BoundString(titleFont, title) //nolint:staticcheck // TODO: migrate to text/v2
	titleX := int((width - float64(titleBounds.Dx())) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Heading.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		bounds := text.BoundString(menuFont, label) //nolint:staticcheck // TODO: migrate to text/v2
		x := int((width - float64(bounds.Dx())) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintBounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "New Game"
	case components.MainMenuContinue:
		return "Continue"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			VisibleOptions: menuOptions(false),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
