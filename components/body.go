package components

import (
	"math"

	"github.com/automoto/gombli/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodyData is the physical state shared by the hero and thrown power-ups.
// The box is never stored: it is always derived from Position and Local.
type BodyData struct {
	Position         dmath.Vec2
	Velocity         dmath.Vec2
	PreviousPosition dmath.Vec2
	PrevBottom       float64
	Local            gamemath.Rect // box offset relative to Position
}

// NewHeroBody anchors a w x h box on its bottom-centre point.
func NewHeroBody(pos dmath.Vec2, w, h float64) BodyData {
	b := BodyData{Position: pos, Local: gamemath.NewRect(-w/2, -h, w, h)}
	b.BeginFrame()
	return b
}

// NewCircleBody treats a circle of radius r around pos as a square.
func NewCircleBody(pos dmath.Vec2, r float64) BodyData {
	b := BodyData{Position: pos}
	b.SetRadius(r)
	b.BeginFrame()
	return b
}

// SetRadius resizes a circle body around its centre.
func (b *BodyData) SetRadius(r float64) {
	b.Local = gamemath.NewRect(-r, -r, 2*r, 2*r)
}

// Box rounds the position so resolution works on whole units.
func (b *BodyData) Box() gamemath.Rect {
	return gamemath.NewRect(math.Round(b.Position.X)+b.Local.X, math.Round(b.Position.Y)+b.Local.Y, b.Local.W, b.Local.H)
}

func (b *BodyData) footAt(p dmath.Vec2) dmath.Vec2 {
	return dmath.NewVec2(p.X+b.Local.X+b.Local.W/2, p.Y+b.Local.Y+b.Local.H)
}

// Foot is the bottom-centre of the unrounded box.
func (b *BodyData) Foot() dmath.Vec2 {
	return b.footAt(b.Position)
}

func (b *BodyData) PreviousFoot() dmath.Vec2 {
	return b.footAt(b.PreviousPosition)
}

func (b *BodyData) PreviousBottom() float64 {
	return b.PrevBottom
}

func (b *BodyData) Shift(dx, dy float64) {
	b.Position.X += dx
	b.Position.Y += dy
}

// BeginFrame records the state resolution compares against.
func (b *BodyData) BeginFrame() {
	b.PreviousPosition = b.Position
	b.PrevBottom = b.Box().Bottom()
}

// Integrate advances the position by velocity*dt and rounds it to whole units.
func (b *BodyData) Integrate(dt float64) {
	b.Position.X = math.Round(b.Position.X + b.Velocity.X*dt)
	b.Position.Y = math.Round(b.Position.Y + b.Velocity.Y*dt)
}

var Body = donburi.NewComponentType[BodyData]()
