package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Slope identifies which diagonal of a tile forms a slope's walking surface.
type Slope int

const (
	// SlopePlus runs from the tile's top-left corner down to its bottom-right corner.
	SlopePlus Slope = iota
	// SlopeMinus runs from the tile's bottom-left corner up to its top-right corner.
	SlopeMinus
)

func (s Slope) String() string {
	if s == SlopeMinus {
		return "SlopeMinus"
	}
	return "SlopePlus"
}

// surfaceY is the height of the hypotenuse at x. Interpolating from the left corner
// keeps both corners exact for integer tile sizes.
func surfaceY(x float64, tile Rect, s Slope) float64 {
	leftY, rightY := tile.Top(), tile.Bottom()
	if s == SlopeMinus {
		leftY, rightY = tile.Bottom(), tile.Top()
	}
	return leftY + (x-tile.Left())*(rightY-leftY)/tile.W
}

// SlopeDepthY returns the signed vertical distance p must move to rest on the slope
// surface at p.X. Negative values push the point up.
func SlopeDepthY(p dmath.Vec2, tile Rect, s Slope) float64 {
	if p.X < tile.Left() {
		if s == SlopeMinus {
			return 0
		}
		return tile.Top() - p.Y
	}
	if p.X > tile.Right() {
		if s == SlopePlus {
			return 0
		}
		return tile.Top() - p.Y
	}
	return surfaceY(p.X, tile, s) - p.Y
}

// SlopeIsAbove reports whether p lies on or above the slope's hypotenuse line.
// The line is extended past the tile edges.
func SlopeIsAbove(p dmath.Vec2, tile Rect, s Slope) bool {
	return p.Y-surfaceY(p.X, tile, s) <= 0
}
