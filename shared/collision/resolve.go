// Package collision resolves one actor against one tile-sized obstacle at a time.
// The hero and every thrown power-up go through the same two functions.
package collision

import (
	"math"

	"github.com/automoto/gombli/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Surface selects how a rectangle blocks an actor.
type Surface int

const (
	// Solid blocks on both axes.
	Solid Surface = iota
	// OneWay blocks only an actor coming down onto its top.
	OneWay
)

// Body is an actor whose box derives from its position.
type Body interface {
	// Box is the current axis-aligned bounding box.
	Box() gamemath.Rect
	// Foot is the point tested against slope surfaces.
	Foot() dmath.Vec2
	// PreviousFoot is Foot as it was before this frame's integration.
	PreviousFoot() dmath.Vec2
	// PreviousBottom is the box bottom before this frame's integration.
	PreviousBottom() float64
	// Shift moves the body's position.
	Shift(dx, dy float64)
}

// Contact collects what the resolution calls of one frame touched.
type Contact struct {
	Grounded bool
	Wall     bool
}

// Merge ORs o into c.
func (c *Contact) Merge(o Contact) {
	c.Grounded = c.Grounded || o.Grounded
	c.Wall = c.Wall || o.Wall
}

// ResolveRect separates b from tile along the shallower axis.
//
// A one-way surface always resolves on Y, and only when the body's bottom was at
// or above the tile top last frame. On X only solid tiles push back.
func ResolveRect(b Body, tile gamemath.Rect, s Surface) Contact {
	var c Contact

	depth := gamemath.IntersectionDepth(b.Box(), tile)
	if depth.X == 0 && depth.Y == 0 {
		return c
	}

	if math.Abs(depth.Y) < math.Abs(depth.X) || s == OneWay {
		if b.PreviousBottom() <= tile.Top() {
			c.Grounded = true
		}
		if s == Solid || c.Grounded {
			b.Shift(0, depth.Y)
		}
		return c
	}

	if s == Solid {
		b.Shift(depth.X, 0)
		c.Wall = true
	}
	return c
}

// ResolveSlope lifts b onto a slope surface when its foot is below the hypotenuse.
// The correction applies only when the body was above the slope line last frame,
// or when standing is set and the body rested exactly on the tile top, so a body
// jumping up from underneath is never snapped through the tile.
func ResolveSlope(b Body, tile gamemath.Rect, s gamemath.Slope, standing bool) bool {
	depth := gamemath.SlopeDepthY(b.Foot(), tile, s)
	if depth >= 0 {
		return false
	}
	if !(standing && b.PreviousBottom() == tile.Top()) && !gamemath.SlopeIsAbove(b.PreviousFoot(), tile, s) {
		return false
	}
	b.Shift(0, depth)
	return true
}
