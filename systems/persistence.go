package systems

import (
	"encoding/json"
	"log"
	"sort"

	"github.com/automoto/matinee/shared/leveldata"
	"github.com/automoto/matinee/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

// SavedProgress is the part of a session that survives a restart.
type SavedProgress struct {
	Level                string   `json:"level"`
	HasTicket            []string `json:"hasTicket"`
	HasSeenHalfOfMovie   bool     `json:"hasSeenHalfOfMovie"`
	HasAvoidedMovieGuard bool     `json:"hasAvoidedMovieGuard"`
	GameIsDone           bool     `json:"gameIsDone"`
	Triggered            []string `json:"triggered"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "matinee",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is
// saved.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem("settings", &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// ApplySavedSettings applies loaded settings to the window.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadProgress loads the saved session. It returns nil when nothing is
// saved.
func LoadProgress() (*SavedProgress, error) {
	var p SavedProgress
	ok, err := loadItem("progress", &p)
	if !ok {
		return nil, err
	}
	return &p, nil
}

// SaveProgress stores the session milestones.
func SaveProgress(st *session.State) error {
	return saveItem("progress", ProgressOf(st))
}

// HasSaveGame reports whether a progress record is stored.
func HasSaveGame() bool {
	p, err := LoadProgress()
	return err == nil && p != nil
}

// ProgressOf captures st for saving.
func ProgressOf(st *session.State) *SavedProgress {
	p := &SavedProgress{
		Level:                st.CurrentLevel.String(),
		HasSeenHalfOfMovie:   st.HasSeenHalfOfMovie,
		HasAvoidedMovieGuard: st.HasAvoidedMovieGuard,
		GameIsDone:           st.GameIsDone,
		Triggered:            st.TriggeredKeys(),
	}
	for _, k := range session.Kids {
		if st.HasTicket[k] {
			p.HasTicket = append(p.HasTicket, k.String())
		}
	}
	sort.Strings(p.Triggered)
	return p
}

// Restore applies saved progress to a fresh session.
func (p *SavedProgress) Restore(st *session.State) {
	if level, err := leveldata.ParseSubLevel(p.Level); err == nil {
		st.CurrentLevel = level
	} else {
		log.Printf("Warning: saved level: %v", err)
	}
	st.HasSeenHalfOfMovie = p.HasSeenHalfOfMovie
	st.HasAvoidedMovieGuard = p.HasAvoidedMovieGuard
	st.GameIsDone = p.GameIsDone
	for _, name := range p.HasTicket {
		for _, k := range session.Kids {
			if k.String() == name {
				st.GiveTicket(k)
			}
		}
	}
	for _, key := range p.Triggered {
		st.MarkTriggered(key)
	}
}
