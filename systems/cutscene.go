package systems

import (
	"log"

	"github.com/automoto/matinee/components"
	cfg "github.com/automoto/matinee/config"
	"github.com/automoto/matinee/shared/appstate"
	"github.com/automoto/matinee/shared/cutscene"
	"github.com/automoto/matinee/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cutsceneEffects carries script effects into the world.
type cutsceneEffects struct {
	e     *ecs.ECS
	entry *donburi.Entry
}

func (fx cutsceneEffects) ShowText(text string) {
	components.TextBox.SetValue(fx.entry, components.TextBoxData{Text: text, Visible: true})
}

func (fx cutsceneEffects) HideText() {
	components.TextBox.SetValue(fx.entry, components.TextBoxData{})
}

func (fx cutsceneEffects) DisplayCharacter(c leveldata.Character, slot leveldata.Slot) {
	cs := components.Cutscene.Get(fx.entry)
	if slot == leveldata.SlotClear {
		delete(cs.Characters, c)
		return
	}
	cs.Characters[c] = slot
}

func (fx cutsceneEffects) ResetLevel() {
	if as, st := appState(fx.e), gameState(fx.e); as != nil && st != nil {
		as.Machine.Request(ResetMode(st.CurrentLevel))
	}
}

func (fx cutsceneEffects) RequestLevel(level leveldata.SubLevel) {
	if as := appState(fx.e); as != nil {
		as.Machine.Request(LevelMode(level))
	}
}

func (fx cutsceneEffects) Camera() *cutscene.Rig {
	if cam := cameraData(fx.e); cam != nil {
		return &cam.Rig
	}
	return nil
}

// UpdateCutscene runs the active script while the cutscene mode is on top.
// When the script is over the mode is popped, and a finished game rolls the
// credits.
func UpdateCutscene(e *ecs.ECS) {
	as := appState(e)
	st := gameState(e)
	entry, ok := cutsceneEntry(e)
	if as == nil || st == nil || !ok || as.Machine.Top() != appstate.Cutscene || as.Machine.Pending() > 0 {
		return
	}
	cs := components.Cutscene.Get(entry)
	accept := GetAction(getOrCreateInput(e), cfg.ActionAccept).JustPressed

	if cs.Interpreter.Update(frameDelta, accept, st, cutsceneEffects{e: e, entry: entry}) != cutscene.Ended {
		return
	}

	components.TextBox.SetValue(entry, components.TextBoxData{})
	cs.Characters = make(map[leveldata.Character]leveldata.Slot)
	st.CurrentlyTalking = nil
	if _, err := as.Machine.Pop(); err != nil {
		log.Printf("Warning: leaving cutscene: %v", err)
		return
	}
	if st.GameIsDone {
		_ = SaveProgress(st)
		as.Machine.Set(appstate.Credits)
	}
}

// UpdateMouth flaps the talking character's mouth.
func UpdateMouth(e *ecs.ECS) {
	entry, ok := cutsceneEntry(e)
	st := gameState(e)
	if !ok || st == nil {
		return
	}
	cs := components.Cutscene.Get(entry)
	if st.CurrentlyTalking == nil {
		cs.MouthOpen = false
		cs.Mouth = nil
		return
	}
	if cs.Mouth == nil {
		cs.Mouth = gween.New(0, 1, float32(cfg.Cutscene.MouthToggle), ease.Linear)
	}
	if _, done := cs.Mouth.Update(float32(frameDelta)); done {
		cs.MouthOpen = !cs.MouthOpen
		cs.Mouth = gween.New(0, 1, float32(cfg.Cutscene.MouthToggle), ease.Linear)
	}
}
