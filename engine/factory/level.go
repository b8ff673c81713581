package factory

import (
	"errors"
	"math"

	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ErrNoGrid is returned for a level without a collision grid.
var ErrNoGrid = errors.New("level has no grid")

// CreateLevel spawns the level entity and every actor and obstacle it lists.
func CreateLevel(w donburi.World, lvl *leveldata.Level) (*donburi.Entry, error) {
	if lvl == nil || lvl.Grid == nil {
		return nil, ErrNoGrid
	}
	g := lvl.Grid
	tileW, tileH := g.TileWidth(), g.TileHeight()

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Level: lvl})
	components.Frame.SetValue(level, components.FrameData{Delta: cfg.C.Delta})
	components.OzonePuzzle.SetValue(level, components.OzonePuzzleData{
		Moves:    cfg.Ozone.MaxMoves,
		MaxMoves: cfg.Ozone.MaxMoves,
		Reset:    lvl.Reset,
		HasReset: lvl.HasReset,
	})
	components.SlidingPuzzle.SetValue(level, components.SlidingPuzzleData{Home: lvl.PuzzleHome})

	cellW, cellH := int(math.Ceil(tileW)), int(math.Ceil(tileH))
	CreateSpace(w, g.Width()*cellW, g.Height()*cellH, cellW, cellH)
	CreateCamera(w, float64(cfg.C.Width), float64(cfg.C.Height))

	for i, p := range lvl.MovingPlatforms {
		CreateMovingPlatform(w, i, p)
	}
	for i, p := range lvl.FloatingPlatforms {
		CreateFloatingPlatform(w, len(lvl.MovingPlatforms)+i, p)
	}
	for i, p := range lvl.Breakables {
		CreateBreakable(w, i, p, tileW, tileH)
	}
	for i, o := range lvl.OzoneTiles {
		CreateOzoneTile(w, i, o, tileW, tileH)
	}
	for i, b := range lvl.PuzzleBlocks {
		CreatePuzzleBlock(w, i, b, tileW, tileH)
	}
	seq := 0
	for _, p := range lvl.PowerUps {
		for i := 0; i < p.Count; i++ {
			CreatePowerUp(w, seq, p.Kind, p.Position, i%2 == 0)
			seq++
		}
	}
	for i, h := range lvl.Hostiles {
		CreateHostile(w, i, h)
	}
	CreateHero(w, lvl.Start)

	return level, nil
}
