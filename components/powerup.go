package components

import (
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/yohamta/donburi"
)

// PowerState is the power-up lifecycle. It only moves forward.
type PowerState int

const (
	PowerGround PowerState = iota
	PowerPick
	PowerDrop
	PowerActive
	PowerDie
)

func (s PowerState) String() string {
	switch s {
	case PowerGround:
		return "Ground"
	case PowerPick:
		return "Pick"
	case PowerDrop:
		return "Drop"
	case PowerActive:
		return "Active"
	case PowerDie:
		return "Die"
	}
	return "Unknown"
}

type PowerUpData struct {
	Kind      leveldata.PowerUpKind
	State     PowerState
	Seq       int
	Radius    float64
	Direction float64 // -1 left, 1 right
	Health    float64
	Damage    float64

	OnGround bool
	OnWall   bool

	// Bubble: timed drop, then bobbing flight. OnTop alternates per pair.
	DropTime float64
	OnTop    bool
	// Remaining active seconds for kinds with a lifetime.
	Lifetime float64
	// RecycleBall: view captured when it activated.
	AttackRect gamemath.Rect
}

// Hurt subtracts damage and kills the power-up when health runs out.
func (p *PowerUpData) Hurt(damage float64) {
	p.Health -= damage
	if p.Health <= 0 {
		p.State = PowerDie
	}
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
