package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader reads every level in a directory of a file system.
type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: config.C.LevelsDir}
}

// NewDirLevelLoader reads levels from a directory on disk, for editing levels
// without rebuilding.
func NewDirLevelLoader(dir string) *LevelLoader {
	return &LevelLoader{fsys: os.DirFS(dir), dir: "."}
}

// Options is the text level defaults derived from the game config.
func Options() leveldata.Options {
	return leveldata.Options{
		Puzzle:     leveldata.PuzzleSliding,
		TileWidth:  config.C.TileWidth,
		TileHeight: config.C.TileHeight,
	}
}

func (l *LevelLoader) LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAll(l.fsys, l.dir, Options())
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	for _, lvl := range levels {
		log.Printf("Loaded level %s: %dx%d tiles, %d power-up spawns, %d hostiles",
			lvl.Name, lvl.Grid.Width(), lvl.Grid.Height(), len(lvl.PowerUps), len(lvl.Hostiles))
	}
	return levels, nil
}

func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
