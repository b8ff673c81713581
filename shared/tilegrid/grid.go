package tilegrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/gombli/shared/gamemath"
)

// ErrInvalidDimensions is returned when a grid is created with a non-positive size.
var ErrInvalidDimensions = errors.New("tilegrid: invalid dimensions")

// Grid is a fixed width x height array of kinds over congruent tiles.
type Grid struct {
	width, height int
	tileW, tileH  float64
	kinds         []Kind
}

// New returns a grid filled with Passable cells.
func New(width, height int, tileW, tileH float64) (*Grid, error) {
	if width <= 0 || height <= 0 || tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %gx%g", ErrInvalidDimensions, width, height, tileW, tileH)
	}
	return &Grid{
		width:  width,
		height: height,
		tileW:  tileW,
		tileH:  tileH,
		kinds:  make([]Kind, width*height),
	}, nil
}

func (g *Grid) Width() int           { return g.width }
func (g *Grid) Height() int          { return g.height }
func (g *Grid) TileWidth() float64   { return g.tileW }
func (g *Grid) TileHeight() float64  { return g.tileH }
func (g *Grid) PixelWidth() float64  { return float64(g.width) * g.tileW }
func (g *Grid) PixelHeight() float64 { return float64(g.height) * g.tileH }

// Set stores a kind. Out of range coordinates are ignored.
func (g *Grid) Set(x, y int, k Kind) {
	if !g.inside(x, y) {
		return
	}
	g.kinds[y*g.width+x] = k
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Classify returns the kind at (x, y). Columns outside the level are walls;
// rows above or below it are open, so jumping past the top and falling out the
// bottom are both legal.
func (g *Grid) Classify(x, y int) Kind {
	if x < 0 || x >= g.width {
		return Impassable
	}
	if y < 0 || y >= g.height {
		return Passable
	}
	return g.kinds[y*g.width+x]
}

// Bounds returns the world rectangle of cell (x, y), for any coordinates.
func (g *Grid) Bounds(x, y int) gamemath.Rect {
	return gamemath.NewRect(float64(x)*g.tileW, float64(y)*g.tileH, g.tileW, g.tileH)
}

// Span returns the inclusive range of cells a box overlaps.
func (g *Grid) Span(box gamemath.Rect) (left, top, right, bottom int) {
	left = int(math.Floor(box.Left() / g.tileW))
	right = int(math.Ceil(box.Right()/g.tileW)) - 1
	top = int(math.Floor(box.Top() / g.tileH))
	bottom = int(math.Ceil(box.Bottom()/g.tileH)) - 1
	return left, top, right, bottom
}

// FootCell returns the cell a foot point stands in, shifted up by at rows.
// at = 0 is the cell directly containing the point's bottom edge.
func (g *Grid) FootCell(x, y float64, at int) (int, int) {
	cx := int(math.Floor(x / g.tileW))
	cy := int(math.Ceil(y/g.tileH)) - 1 - at
	return cx, cy
}

// FootKind classifies the cell returned by FootCell.
func (g *Grid) FootKind(x, y float64, at int) Kind {
	return g.Classify(g.FootCell(x, y, at))
}

// FootBounds returns the bounds of the cell under a foot point.
func (g *Grid) FootBounds(x, y float64) gamemath.Rect {
	return g.Bounds(g.FootCell(x, y, 0))
}

// Cells calls fn for every cell in the inclusive span, rows top to bottom.
func (g *Grid) Cells(left, top, right, bottom int, fn func(x, y int, k Kind)) {
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			fn(x, y, g.Classify(x, y))
		}
	}
}
