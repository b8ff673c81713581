package components

import (
	"math"

	"github.com/automoto/gombli/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlatformMotion selects how a moving platform travels.
type PlatformMotion int

const (
	// MotionPace walks horizontally and waits before turning at walls and ledges.
	MotionPace PlatformMotion = iota
	// MotionFloat bobs vertically along a tween sequence.
	MotionFloat
)

// MovingPlatformData is a one-way platform anchored at its bottom-centre.
type MovingPlatformData struct {
	Motion    PlatformMotion
	Seq       int
	Anchor    dmath.Vec2
	W, H      float64
	Direction float64
	WaitTime  float64
	// Velocity is this step's displacement, in units per step.
	Velocity dmath.Vec2
}

// Bounds rounds the anchor the same way actor boxes are rounded.
func (m *MovingPlatformData) Bounds() gamemath.Rect {
	return boundsAbove(m.Anchor, m.W, m.H)
}

// BreakState is the damage level of a breakable block.
type BreakState int

const (
	Intact BreakState = iota
	Cracked
	Broken
)

func (s BreakState) String() string {
	switch s {
	case Intact:
		return "Intact"
	case Cracked:
		return "Cracked"
	}
	return "Broken"
}

// BreakableData is a solid block one tile wide and two tall above its anchor.
type BreakableData struct {
	Seq    int
	Anchor dmath.Vec2
	W, H   float64
	State  BreakState
}

func (b *BreakableData) Bounds() gamemath.Rect {
	return boundsAbove(b.Anchor, b.W, b.H)
}

// Hit advances the block one damage level.
func (b *BreakableData) Hit() {
	if b.State < Broken {
		b.State++
	}
}

func (b *BreakableData) Live() bool {
	return b.State != Broken
}

// OzoneTileData is a one-tile toggle block that acts as a one-way platform.
type OzoneTileData struct {
	Seq          int
	Rect         gamemath.Rect
	Glowing      bool
	OriginalGlow bool
	Static       bool
	HeroOn       bool
}

// SwitchGlow flips the glow unless the tile is static.
func (o *OzoneTileData) SwitchGlow() {
	if o.Static {
		return
	}
	o.Glowing = !o.Glowing
}

func (o *OzoneTileData) ResetGlow() {
	o.Glowing = o.OriginalGlow
}

func boundsAbove(anchor dmath.Vec2, w, h float64) gamemath.Rect {
	return gamemath.NewRect(math.Round(anchor.X-w/2), math.Round(anchor.Y-h), w, h)
}

var (
	MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
	Breakable      = donburi.NewComponentType[BreakableData]()
	OzoneTile      = donburi.NewComponentType[OzoneTileData]()
	Tween          = donburi.NewComponentType[gween.Sequence]()
)
