package factory

import (
	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateBreakable(w donburi.World, seq int, anchor dmath.Vec2, tileW, tileH float64) *donburi.Entry {
	block := archetypes.Breakable.Spawn(w)
	data := components.BreakableData{Seq: seq, Anchor: anchor, W: tileW, H: 2 * tileH}
	components.Breakable.SetValue(block, data)
	addObject(w, block, data.Bounds(), tags.ResolvBreakable)

	return block
}

func CreateOzoneTile(w donburi.World, seq int, spawn leveldata.OzoneSpawn, tileW, tileH float64) *donburi.Entry {
	tile := archetypes.OzoneTile.Spawn(w)
	data := components.OzoneTileData{
		Seq:          seq,
		Rect:         gamemath.NewRect(spawn.Position.X, spawn.Position.Y, tileW, tileH),
		Glowing:      spawn.Glowing,
		OriginalGlow: spawn.Glowing,
		Static:       spawn.Static,
	}
	components.OzoneTile.SetValue(tile, data)
	addObject(w, tile, data.Rect, tags.ResolvOzone)

	return tile
}

func CreatePuzzleBlock(w donburi.World, seq int, spawn leveldata.PuzzleBlockSpawn, tileW, tileH float64) *donburi.Entry {
	block := archetypes.PuzzleBlock.Spawn(w)
	components.PuzzleBlock.SetValue(block, components.PuzzleBlockData{
		Seq:      seq,
		Number:   spawn.Number,
		Position: spawn.Position,
		Origin:   spawn.Position,
		W:        tileW,
		H:        tileH,
	})
	return block
}
