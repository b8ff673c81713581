package leveldata

import (
	"strings"
	"testing"

	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

var testOpts = Options{TileWidth: 40, TileHeight: 32}

func parse(t *testing.T, src string, opts Options) (*Level, error) {
	t.Helper()
	return ParseText("test", strings.NewReader(src), opts)
}

func TestParseTextKindsAndSpawns(t *testing.T) {
	src := strings.Join([]string{
		"..........",
		".A..m..*Z.",
		"-~L/\\|B..#",
		"##########",
	}, "\n")

	lvl, err := parse(t, src, testOpts)
	require.NoError(t, err)

	g := lvl.Grid
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, tilegrid.Platform, g.Classify(0, 2))
	assert.Equal(t, tilegrid.Water, g.Classify(1, 2))
	assert.Equal(t, tilegrid.Ladder, g.Classify(2, 2))
	assert.Equal(t, tilegrid.SlopeMinus, g.Classify(3, 2))
	assert.Equal(t, tilegrid.SlopePlus, g.Classify(4, 2))
	assert.Equal(t, tilegrid.Passable, g.Classify(5, 2), "breakable cell is open in the grid")
	assert.Equal(t, tilegrid.Impassable, g.Classify(9, 3))

	assert.Equal(t, dmath.NewVec2(60, 64), lvl.Start)
	assert.Equal(t, dmath.NewVec2(340, 48), lvl.Exit)
	assert.Equal(t, []dmath.Vec2{dmath.NewVec2(180, 64)}, lvl.MovingPlatforms)
	assert.Equal(t, []dmath.Vec2{dmath.NewVec2(220, 96)}, lvl.Breakables)

	require.Len(t, lvl.PowerUps, 1)
	assert.Equal(t, Marble, lvl.PowerUps[0].Kind)
	assert.Equal(t, 10, lvl.PowerUps[0].Count)

	require.Len(t, lvl.Hostiles, 1)
	assert.True(t, lvl.Hostiles[0].Pollutant)
	assert.Equal(t, 0.5, lvl.Hostiles[0].Damage)
}

func TestParseTextPuzzleModes(t *testing.T) {
	src := "A0123Z\n######"

	sliding, err := parse(t, src, testOpts)
	require.NoError(t, err)
	assert.True(t, sliding.HasPuzzleHome)
	assert.Equal(t, dmath.NewVec2(40, 0), sliding.PuzzleHome)
	require.Len(t, sliding.PuzzleBlocks, 3)
	assert.Equal(t, 3, sliding.PuzzleBlocks[2].Number)

	_, err = parse(t, src, Options{TileWidth: 40, TileHeight: 32, Puzzle: PuzzleOzone})
	assert.ErrorIs(t, err, ErrNoOzoneReset)

	ozone, err := parse(t, "; puzzle=ozone\nA012RZ\n######", testOpts)
	require.NoError(t, err)
	require.Len(t, ozone.OzoneTiles, 3)
	assert.False(t, ozone.OzoneTiles[0].Glowing)
	assert.True(t, ozone.OzoneTiles[1].Glowing)
	assert.True(t, ozone.OzoneTiles[2].Static)
	assert.True(t, ozone.HasReset)
}

func TestParseTextSubmerged(t *testing.T) {
	lvl, err := parse(t, "; submerged\n~A~Z\n####", testOpts)
	require.NoError(t, err)
	assert.Equal(t, tilegrid.Water, lvl.Grid.Classify(1, 0))
	assert.Equal(t, tilegrid.Water, lvl.Grid.Classify(3, 0))
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"ragged", "A..Z\n###", ErrRaggedRow},
		{"unknown", "A.?Z\n####", ErrUnknownTile},
		{"no start", "...Z\n####", ErrNoStart},
		{"two starts", "A.AZ\n####", ErrDuplicateStart},
		{"no exit", "A...\n####", ErrNoExit},
		{"two exits", "AZ.Z\n####", ErrDuplicateExit},
		{"empty", "", ErrEmptyLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.src, testOpts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseTextRejectsZeroTileSize(t *testing.T) {
	_, err := parse(t, "AZ\n##", Options{})
	assert.ErrorIs(t, err, tilegrid.ErrInvalidDimensions)
}
