package components

import (
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// HostileData is a target for thrown power-ups. Hostile steering is not simulated;
// Direction and StunTime are outputs for the gameplay layer.
type HostileData struct {
	Seq       int
	Position  dmath.Vec2
	Radius    float64
	Health    float64
	Damage    float64 // dealt to a power-up on contact
	Pollutant bool
	Vertical  bool
	Direction float64
	StunTime  float64
}

func (h *HostileData) Alive() bool {
	return h.Health > 0
}

func (h *HostileData) Circle() gamemath.Circle {
	return gamemath.Circle{Center: h.Position, Radius: h.Radius}
}

var Hostile = donburi.NewComponentType[HostileData]()
