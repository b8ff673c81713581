package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/engine"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/systems"
	"github.com/automoto/gombli/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const layerDefault ecs.LayerID = 0

// SandboxScene plays one level and moves between levels on request.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	index        int
	flags        *ui.FlagsUI
	saved        bool
	once         sync.Once
}

// NewSandboxScene plays levels[index]. Out of range indexes wrap to the first level.
func NewSandboxScene(sc SceneChanger, levels []*leveldata.Level, index int) *SandboxScene {
	if index < 0 || index >= len(levels) {
		index = 0
	}
	return &SandboxScene{sceneChanger: sc, levels: levels, index: index}
}

func (ss *SandboxScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if cfg.Debug.FlagsPanel {
		if heroEntry, ok := engine.Hero(ss.ecs.World); ok {
			ss.flags.Refresh(components.Surface.Get(heroEntry), components.Body.Get(heroEntry))
		}
		ss.flags.UI.Update()
	}

	ss.handleControls()
}

func (ss *SandboxScene) handleControls() {
	if systems.JustPressed(systems.ActionToggleDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		cfg.Debug.FlagsPanel = cfg.Debug.Overlay
		systems.SaveCurrentSettings()
	}

	levelEntry, ok := engine.Level(ss.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.Complete && !ss.saved {
		ss.saved = true
		next := (ss.index + 1) % len(ss.levels)
		if err := systems.SaveProgress(next); err != nil {
			log.Printf("Warning: Could not save progress: %v", err)
		}
	}

	switch {
	case systems.JustPressed(systems.ActionRestart):
		ss.sceneChanger.ChangeScene(NewSandboxScene(ss.sceneChanger, ss.levels, ss.index))
	case systems.JustPressed(systems.ActionNextLevel) && (level.Complete || cfg.Debug.Overlay):
		ss.sceneChanger.ChangeScene(NewSandboxScene(ss.sceneChanger, ss.levels, ss.index+1))
	}
}

func (ss *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	if ss.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	screen.Fill(cfg.Background)
	ss.ecs.Draw(screen)

	if cfg.Debug.FlagsPanel && ss.flags != nil {
		ss.flags.UI.Draw(screen)
	}
}

func (ss *SandboxScene) configure() {
	lvl := ss.levels[ss.index]
	world, err := engine.NewWorld(lvl)
	if err != nil {
		panic("failed to build level " + lvl.Name + ": " + err.Error())
	}
	log.Printf("Playing level %s", lvl.Name)

	ecs := ecs.NewECS(world)

	// Input must be written before the simulation reads it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateEngine)

	// Add renderers
	ecs.AddRenderer(layerDefault, systems.DrawLevel)
	ecs.AddRenderer(layerDefault, systems.DrawEntities)
	ecs.AddRenderer(layerDefault, systems.DrawDebug)
	ecs.AddRenderer(layerDefault, systems.DrawHUD)

	ss.ecs = ecs
	ss.flags = ui.NewFlagsUI()
}
