package systems

import (
	"log"

	"github.com/automoto/matinee/archetypes"
	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/fonts"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const creditsLineHeight = 24

// creditsRate is the scroll speed in percent of the screen per second. It is
// scaled by the screen height so short windows scroll the same content
// faster.
func creditsRate(height float64) float64 {
	return cfg.Credits.Rate / height
}

// creditsEnd is the offset below which the scroll is over.
func creditsEnd(height float64) float64 {
	return -cfg.Credits.EndMargin * creditsRate(height)
}

// creditsDuration is how long the scroll takes from start to end.
func creditsDuration(height float64) float64 {
	return (cfg.Credits.Start - creditsEnd(height)) / creditsRate(height)
}

func setupCredits(e *ecs.ECS) bool {
	height := float64(cfg.C.Height)
	entry := archetypes.Credits.Spawn(e)
	components.Credits.SetValue(entry, components.CreditsData{
		Offset: cfg.Credits.Start,
		Scroll: gween.New(
			float32(cfg.Credits.Start),
			float32(creditsEnd(height)),
			float32(creditsDuration(height)),
			ease.Linear,
		),
	})
	return true
}

func teardownCredits(e *ecs.ECS) {
	var doomed []*donburi.Entry
	components.Credits.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		e.World.Remove(entry.Entity())
	}
}

// UpdateCredits scrolls the credits and returns to the main menu when they
// are over or skipped.
func UpdateCredits(e *ecs.ECS) {
	as := appState(e)
	if as == nil || as.Machine.Top() != appstate.Credits || as.Machine.Pending() > 0 {
		return
	}
	entry, ok := components.Credits.First(e.World)
	if !ok {
		return
	}
	credits := components.Credits.Get(entry)

	v, done := credits.Scroll.Update(float32(frameDelta))
	credits.Offset = float64(v)

	if done || GetAction(getOrCreateInput(e), cfg.ActionMenuBack).JustPressed {
		log.Printf("credits over at offset %.1f", credits.Offset)
		as.Machine.Set(appstate.MainMenu)
	}
}

// DrawCredits renders the scrolling credits. Offset is the top of the block
// in percent of the screen height.
func DrawCredits(e *ecs.ECS, screen *ebiten.Image) {
	if topMode(e) != appstate.Credits {
		return
	}
	entry, ok := components.Credits.First(e.World)
	if !ok {
		return
	}
	credits := components.Credits.Get(entry)

	screen.Fill(cfg.Menu.BackgroundColor)
	width := screen.Bounds().Dx()
	height := float64(screen.Bounds().Dy())
	top := credits.Offset / 100 * height

	face := fonts.Heading.Get()
	for i, line := range cfg.Credits.Lines {
		if line == "" {
			continue
		}
		y := int(top) + i*creditsLineHeight
		bounds := text.BoundString(face, line) //nolint:staticcheck // TODO: migrate to text/v2
		x := (width - bounds.Dx()) / 2
		text.Draw(screen, line, face, x, y, cfg.Credits.TextColor)
	}
}
