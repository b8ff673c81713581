package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/gombli/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	DebugOverlay    bool `json:"debugOverlay"`
}

// SavedProgress remembers the furthest level reached.
type SavedProgress struct {
	LevelIndex int `json:"levelIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gombli",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
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

// LoadSettings loads settings from disk. Nil means nothing was saved yet.
func LoadSettings() *SavedSettings {
	var settings SavedSettings
	if !loadItem("settings", &settings) {
		return nil
	}
	return &settings
}

// SaveCurrentSettings stores the live window and debug state.
func SaveCurrentSettings() {
	saved := &SavedSettings{
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: cfg.Display.DefaultResolutionIndex,
		DebugOverlay:    cfg.Debug.Overlay,
	}
	if saved.ResolutionIndex >= len(cfg.Display.Resolutions) {
		saved.ResolutionIndex = 0
	}
	_ = saveItem("settings", saved)
}

// ApplySavedSettings applies loaded settings before the first scene starts.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Debug.Overlay = saved.DebugOverlay

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Display.Resolutions) {
		cfg.Display.DefaultResolutionIndex = saved.ResolutionIndex
		res := cfg.Display.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// LoadProgress returns the saved level index, or 0 when there is none.
func LoadProgress() int {
	var progress SavedProgress
	if !loadItem("progress", &progress) {
		return 0
	}
	return progress.LevelIndex
}

func SaveProgress(levelIndex int) error {
	return saveItem("progress", &SavedProgress{LevelIndex: levelIndex})
}
