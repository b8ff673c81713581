package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/gombli/assets"
	"github.com/automoto/gombli/config"
	"github.com/automoto/gombli/fonts"
	"github.com/automoto/gombli/scenes"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []*leveldata.Level, start int) *Game {
	if err := fonts.LoadAll(goregular.TTF); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSandboxScene(g, levels, start)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// startIndex picks the level named on the command line, then saved progress.
func startIndex(levels []*leveldata.Level, name string) int {
	if name != "" {
		for i, lvl := range levels {
			if lvl.Name == name {
				return i
			}
		}
		log.Printf("Warning: level %q not found, using saved progress", name)
	}
	return systems.LoadProgress()
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Gombli")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedSettings(systems.LoadSettings())

	// Command-line options override saved settings
	levelsDir := flag.String("levels", "", "Load levels from this directory instead of the embedded set")
	flag.StringVar(&config.Debug.Level, "level", config.Debug.Level, "Start at the level with this name")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "Show collision proxies and surface flags")
	flag.Parse()
	config.Debug.FlagsPanel = config.Debug.Overlay

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewDirLevelLoader(*levelsDir)
	}
	levels, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if err := ebiten.RunGame(NewGame(levels, startIndex(levels, config.Debug.Level))); err != nil {
		log.Fatal(err)
	}
}
