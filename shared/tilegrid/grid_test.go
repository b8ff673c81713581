package tilegrid

import (
	"testing"

	"github.com/automoto/gombli/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDegenerateSizes(t *testing.T) {
	for _, dims := range [][4]float64{{0, 5, 40, 32}, {5, -1, 40, 32}, {5, 5, 0, 32}, {5, 5, 40, -2}} {
		_, err := New(int(dims[0]), int(dims[1]), dims[2], dims[3])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestClassifyEdgePolicy(t *testing.T) {
	g, err := New(4, 3, 40, 32)
	require.NoError(t, err)
	g.Set(1, 2, Platform)

	assert.Equal(t, Platform, g.Classify(1, 2))
	assert.Equal(t, Impassable, g.Classify(-1, 0))
	assert.Equal(t, Impassable, g.Classify(4, 1))
	assert.Equal(t, Passable, g.Classify(2, -1))
	assert.Equal(t, Passable, g.Classify(2, 3))
	assert.Equal(t, Impassable, g.Classify(-1, 7), "column rule wins outside both ranges")
}

func TestBoundsTileWithoutGaps(t *testing.T) {
	g, err := New(4, 3, 40, 32)
	require.NoError(t, err)

	assert.Equal(t, gamemath.NewRect(80, 32, 40, 32), g.Bounds(2, 1))
	assert.Equal(t, g.Bounds(1, 1).Right(), g.Bounds(2, 1).Left())
	assert.Equal(t, g.Bounds(2, 0).Bottom(), g.Bounds(2, 1).Top())
}

func TestSpanAndFootCell(t *testing.T) {
	g, err := New(10, 10, 40, 32)
	require.NoError(t, err)

	l, tp, r, b := g.Span(gamemath.NewRect(30, 40, 20, 52))
	assert.Equal(t, []int{0, 1, 1, 2}, []int{l, tp, r, b})

	// A foot resting on the boundary between rows 2 and 3 stands in row 2.
	x, y := g.FootCell(50, 96, 0)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	_, above := g.FootCell(50, 96, 1)
	assert.Equal(t, 1, above)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("SlopeMinus")
	assert.True(t, ok)
	assert.Equal(t, SlopeMinus, k)
	assert.True(t, k.IsSlope())
	assert.Equal(t, gamemath.SlopeMinus, k.Slope())

	_, ok = ParseKind("Lava")
	assert.False(t, ok)
}
