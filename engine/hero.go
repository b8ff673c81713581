package engine

import (
	"math"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// heroStep is the working state of one hero for one step.
type heroStep struct {
	w      donburi.World
	grid   *tilegrid.Grid
	body   *components.BodyData
	surf   *components.SurfaceData
	hero   *components.HeroData
	obj    *components.ObjectData
	intent components.IntentData

	// box before any collision stage ran, and the cell span it covers
	start                    gamemath.Rect
	left, top, right, bottom int
	aboveSlope               bool
}

func updateHeroes(w donburi.World, dt float64) {
	grid := gridOf(w)
	if grid == nil {
		return
	}
	tags.Hero.Each(w, func(e *donburi.Entry) {
		s := &heroStep{
			w:      w,
			grid:   grid,
			body:   components.Body.Get(e),
			surf:   components.Surface.Get(e),
			hero:   components.Hero.Get(e),
			obj:    components.Object.Get(e),
			intent: *components.Intent.Get(e),
		}
		inv := components.Inventory.Get(e)

		// A throw locks movement and jumping until it finishes.
		if s.hero.ThrowTime > 0 {
			s.intent.Move = dmath.Vec2{}
			s.intent.Jump = false
		} else if s.intent.SelectNext {
			inv.Cycle(1)
		} else if s.intent.SelectPrev {
			inv.Cycle(-1)
		}

		s.applyPhysics(dt)
		throw(s.hero, inv, s.intent.Throw, dt)
		s.obj.Sync(s.body.Box())
	})
}

func (s *heroStep) applyPhysics(dt float64) {
	h := cfg.Hero
	body, surf, move := s.body, s.surf, s.intent.Move
	body.BeginFrame()

	v := &body.Velocity
	v.X += move.X * h.MoveAcceleration * dt
	v.Y = gamemath.Clamp(v.Y+h.Gravity*dt, -h.MaxFallSpeed, h.MaxFallSpeed)
	v.Y = s.jump(v.Y, dt)

	if surf.OnLadder {
		v.Y = move.Y * h.MoveAcceleration * dt
	}
	if surf.OnLadderTop && move.Y > 0 {
		v.Y = move.Y * h.MoveAcceleration * dt
	}
	if surf.Underwater && move.Y < 0 && s.hero.JumpTime == 0 {
		v.Y = move.Y * h.MoveAcceleration * dt * h.WaterBuoyancy
	}

	switch {
	case surf.OnSlope:
		v.X *= h.GroundDrag * h.SlopeDragScale
	case surf.OnGround || surf.OnLadder:
		v.X *= h.GroundDrag
	default:
		v.X *= h.AirDrag
	}
	if surf.Underwater {
		v.X *= h.WaterDrag
		v.Y *= h.WaterDrag
	}
	v.X = gamemath.Clamp(v.X, -h.MaxMoveSpeed, h.MaxMoveSpeed)

	body.Integrate(dt)
	s.resolve()

	if body.Position.X == body.PreviousPosition.X {
		v.X = 0
	}
	if body.Position.Y == body.PreviousPosition.Y {
		v.Y = 0
	}
	if v.X > 0 {
		s.hero.Facing = cfg.DirectionRight
	} else if v.X < 0 {
		s.hero.Facing = cfg.DirectionLeft
	}
}

// jump keeps the launch going while the button is held and the ascent time lasts.
// A new jump needs a fresh press while grounded, on a slope or on a ladder top.
func (s *heroStep) jump(vy, dt float64) float64 {
	hero, surf := s.hero, s.surf
	if s.intent.Jump {
		if (!hero.WasJumping && (surf.OnGround || surf.OnSlope || surf.OnLadderTop)) || hero.JumpTime > 0 {
			hero.JumpTime += dt
		}
		if hero.JumpTime > 0 && hero.JumpTime <= hero.MaxJumpTime {
			vy = gamemath.JumpVelocity(cfg.Hero.JumpLaunchVelocity, hero.JumpTime, hero.MaxJumpTime, cfg.Hero.JumpControlPower)
		} else {
			hero.JumpTime = 0
		}
	} else {
		hero.JumpTime = 0
	}
	hero.WasJumping = s.intent.Jump
	return vy
}

// throw starts a throw on a fresh press when something of the selected kind is
// held. Threw stays set for exactly the step the throw starts.
func throw(hero *components.HeroData, inv *components.InventoryData, pressed bool, dt float64) {
	hero.Threw = false
	if hero.ThrowTime > 0 {
		hero.ThrowTime = math.Max(0, hero.ThrowTime-dt)
	} else if pressed && !hero.WasThrowing && inv.Count() > 0 {
		hero.ThrowTime = cfg.Hero.MaxThrowTime
		hero.Threw = true
	}
	hero.WasThrowing = pressed
}

// footPoints returns the left, right and centre points of the hero's feet.
func footPoints(body *components.BodyData) (left, right, center dmath.Vec2) {
	x, y := math.Trunc(body.Position.X), math.Trunc(body.Position.Y)
	half := math.Trunc(body.Local.W / 2)
	return dmath.NewVec2(x-half, y), dmath.NewVec2(x+half, y), dmath.NewVec2(x, y)
}
