package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in world units. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() dmath.Vec2 {
	return dmath.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

// BottomCenter is the point actors anchored on this rectangle stand on.
func (r Rect) BottomCenter() dmath.Vec2 {
	return dmath.NewVec2(r.X+r.W/2, r.Bottom())
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inflate grows the rectangle by dx on both horizontal sides and dy on both vertical sides.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Intersects reports whether the two rectangles share interior area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// Contains is inclusive on the top/left edges and exclusive on the bottom/right edges,
// so a foot point resting exactly on a top edge is contained.
func (r Rect) Contains(p dmath.Vec2) bool {
	return r.X <= p.X && p.X < r.Right() && r.Y <= p.Y && p.Y < r.Bottom()
}

// IntersectionDepth returns the signed amount a must move along each axis to stop
// overlapping b. The zero vector means no overlap.
func IntersectionDepth(a, b Rect) dmath.Vec2 {
	halfWidthA, halfHeightA := a.W/2, a.H/2
	halfWidthB, halfHeightB := b.W/2, b.H/2

	centerA := a.Center()
	centerB := b.Center()

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if math.Abs(distanceX) >= minDistanceX || math.Abs(distanceY) >= minDistanceY {
		return dmath.Vec2{}
	}

	depthX := -minDistanceX - distanceX
	if distanceX > 0 {
		depthX = minDistanceX - distanceX
	}
	depthY := -minDistanceY - distanceY
	if distanceY > 0 {
		depthY = minDistanceY - distanceY
	}
	return dmath.NewVec2(depthX, depthY)
}

// Circle is a bounding circle used by thrown power-ups and hostiles.
type Circle struct {
	Center dmath.Vec2
	Radius float64
}

func (c Circle) Intersects(o Circle) bool {
	dx := c.Center.X - o.Center.X
	dy := c.Center.Y - o.Center.Y
	r := c.Radius + o.Radius
	return dx*dx+dy*dy < r*r
}

// IntersectsRect tests the circle against the closest point of the rectangle.
func (c Circle) IntersectsRect(r Rect) bool {
	x := Clamp(c.Center.X, r.Left(), r.Right())
	y := Clamp(c.Center.Y, r.Top(), r.Bottom())
	dx := c.Center.X - x
	dy := c.Center.Y - y
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// Square is the circle treated as an axis-aligned square of side 2*Radius.
func (c Circle) Square() Rect {
	return Rect{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}
