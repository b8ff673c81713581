package components

import (
	"github.com/yohamta/donburi"
)

type HeroData struct {
	JumpTime    float64
	MaxJumpTime float64
	WasJumping  bool
	Facing      float64 // -1 left, 1 right

	ThrowTime   float64
	WasThrowing bool
	// Threw is set on the step a throw starts and cleared on the next.
	Threw bool
}

var Hero = donburi.NewComponentType[HeroData]()
