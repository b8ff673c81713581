package components

import (
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position dmath.Vec2 // top-left corner of the view
	ViewW    float64
	ViewH    float64
}

// Visible returns the rectangle of the level currently on screen.
func (c *CameraData) Visible() gamemath.Rect {
	return gamemath.NewRect(c.Position.X, c.Position.Y, c.ViewW, c.ViewH)
}

var Camera = donburi.NewComponentType[CameraData]()
