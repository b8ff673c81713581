package engine

import (
	"math"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/collision"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type powerUp struct {
	entry *donburi.Entry
	data  *components.PowerUpData
	body  *components.BodyData
	obj   *components.ObjectData
}

func powerUpOf(e *donburi.Entry) powerUp {
	return powerUp{
		entry: e,
		data:  components.PowerUp.Get(e),
		body:  components.Body.Get(e),
		obj:   components.Object.Get(e),
	}
}

func kindConfig(k leveldata.PowerUpKind) cfg.PowerUpKindConfig {
	return cfg.PowerUp.Kinds[int(k)]
}

func updatePowerUps(w donburi.World, dt float64) {
	heroEntry, ok := Hero(w)
	if !ok {
		return
	}
	grid := gridOf(w)
	if grid == nil {
		return
	}
	heroBody := components.Body.Get(heroEntry)
	hero := components.Hero.Get(heroEntry)
	inv := components.Inventory.Get(heroEntry)
	visible := Visible(w)
	now := frameTime(w)

	all := sortedBy(w, tags.PowerUp.Each, powerUpSeq)
	fire := hero.Threw
	for i, e := range all {
		p := powerUpOf(e)
		if fire && p.data.Kind == inv.Selected && p.data.State == components.PowerPick {
			fire = false
			release(all[i:], inv, heroBody, hero.Facing)
		}

		p.update(w, grid, visible, now, dt)

		if p.data.State == components.PowerGround && circleOf(p).IntersectsRect(heroBody.Box()) {
			p.data.State = components.PowerPick
			inv.Picked[p.data.Kind]++
		}
		if p.data.State == components.PowerActive {
			hitHostiles(w, p)
		}

		if p.data.State == components.PowerDie {
			retire(w, p)
		} else {
			p.obj.Sync(p.body.Box())
		}
	}
}

// release drops up to the kind's drop count of held power-ups from the hero's hand.
func release(candidates []*donburi.Entry, inv *components.InventoryData, hero *components.BodyData, facing float64) {
	kind := inv.Selected
	left := kindConfig(kind).DropCount
	hand := dmath.NewVec2(
		hero.Position.X+facing*math.Trunc(hero.Local.W/2)*cfg.Hero.ThrowOffsetX,
		hero.Position.Y-hero.Local.H*cfg.Hero.ThrowOffsetY,
	)
	for _, e := range candidates {
		if left == 0 || inv.Picked[kind] == 0 {
			return
		}
		p := powerUpOf(e)
		if p.data.Kind != kind || p.data.State != components.PowerPick {
			continue
		}
		p.data.State = components.PowerDrop
		p.data.Direction = facing
		p.body.Position = hand
		p.body.BeginFrame()
		inv.Picked[kind]--
		left--
	}
}

// retire takes a dead power-up out of the broadphase.
func retire(w donburi.World, p powerUp) {
	if p.obj.Space == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(p.obj.Object)
	}
}

func circleOf(p powerUp) gamemath.Circle {
	return gamemath.Circle{Center: p.body.Position, Radius: p.data.Radius}
}

func (p powerUp) setRadius(r float64) {
	p.data.Radius = r
	p.body.SetRadius(r)
}

func (p powerUp) update(w donburi.World, grid *tilegrid.Grid, visible gamemath.Rect, now, dt float64) {
	switch p.data.State {
	case components.PowerDrop, components.PowerActive:
	default:
		return
	}
	switch p.data.Kind {
	case leveldata.Marble:
		p.updateMarble(w, grid, dt)
	case leveldata.BeanSeed:
		p.updateBeanSeed(w, grid, dt)
	case leveldata.Bubble:
		p.updateBubble(w, grid, now, dt)
	case leveldata.RecycleBall:
		p.updateRecycleBall(w, grid, visible, dt)
	}
}

// ballistic flies forward at constant speed while gravity pulls it down.
func (p powerUp) ballistic(w donburi.World, grid *tilegrid.Grid, dt float64) {
	pc := cfg.PowerUp
	p.body.BeginFrame()
	p.body.Velocity.X = p.data.Direction * pc.MoveSpeed
	p.body.Velocity.Y += gamemath.Clamp(pc.Gravity*dt, -pc.MoveSpeed, pc.MoveSpeed)
	p.body.Integrate(dt)
	p.collide(w, grid)
}

func (p powerUp) updateMarble(w donburi.World, grid *tilegrid.Grid, dt float64) {
	if p.data.State == components.PowerDrop {
		p.setRadius(kindConfig(leveldata.Marble).DropRadius)
		p.data.State = components.PowerActive
	}
	p.ballistic(w, grid, dt)
	if p.data.OnGround {
		p.data.State = components.PowerDie
	} else if p.data.OnWall {
		p.data.Direction = -p.data.Direction
	}
}

func (p powerUp) updateBeanSeed(w donburi.World, grid *tilegrid.Grid, dt float64) {
	kc := kindConfig(leveldata.BeanSeed)
	if p.data.State == components.PowerActive {
		p.data.Lifetime -= dt
		if p.data.Lifetime < 0 {
			p.data.State = components.PowerDie
		}
		return
	}

	p.setRadius(kc.DropRadius)
	p.ballistic(w, grid, dt)
	if p.data.OnGround {
		p.data.State = components.PowerActive
		p.body.Position.Y -= kc.GrowShift
		p.setRadius(kc.ActiveRadius)
	} else if p.data.OnWall {
		p.data.Direction = -p.data.Direction
	}
}

func (p powerUp) updateBubble(w donburi.World, grid *tilegrid.Grid, now, dt float64) {
	pc := cfg.PowerUp
	kc := kindConfig(leveldata.Bubble)
	speed := p.data.Direction * pc.MoveSpeed / pc.BubbleSpeedDivisor

	if p.data.State == components.PowerDrop {
		p.body.BeginFrame()
		p.body.Velocity.X = speed
		if !p.data.OnTop {
			p.body.Velocity.Y = math.Abs(speed)
		} else {
			p.body.Velocity.X *= pc.BubbleTopBoost
		}
		p.body.Integrate(dt)
		p.data.DropTime -= dt
		if p.data.DropTime <= 0 {
			p.data.State = components.PowerActive
			p.setRadius(kc.ActiveRadius)
		}
		return
	}

	p.data.Lifetime -= dt
	if p.data.Lifetime < 0 || p.data.Health <= 0 {
		p.data.State = components.PowerDie
		return
	}
	p.body.BeginFrame()
	p.body.Velocity = dmath.NewVec2(speed, 0)
	p.body.Position.X += speed * dt
	phase := now*pc.BounceRate + p.body.Position.X*pc.BounceSync
	p.body.Position.Y += math.Sin(phase) * pc.BounceHeight
	p.collide(w, grid)
	if p.data.OnWall {
		p.data.State = components.PowerDie
	}
}

func (p powerUp) updateRecycleBall(w donburi.World, grid *tilegrid.Grid, visible gamemath.Rect, dt float64) {
	if p.data.State == components.PowerDrop {
		p.setRadius(kindConfig(leveldata.RecycleBall).DropRadius)
		p.ballistic(w, grid, dt)
		if p.data.OnGround || !circleOf(p).IntersectsRect(visible) {
			p.data.State = components.PowerActive
			p.data.AttackRect = visible
		} else if p.data.OnWall {
			p.data.Direction = -p.data.Direction
		}
		return
	}

	target, ok := nearestHostile(w, p)
	if !ok {
		p.data.State = components.PowerDie
		return
	}
	p.body.BeginFrame()
	p.body.Position = gamemath.StepToward(p.body.Position, target, cfg.PowerUp.HomingStep)
}

// nearestHostile finds the closest live hostile inside the ball's attack area.
func nearestHostile(w donburi.World, p powerUp) (dmath.Vec2, bool) {
	best := cfg.PowerUp.HomingRange
	var target dmath.Vec2
	found := false
	for _, e := range sortedBy(w, tags.Hostile.Each, hostileSeq) {
		h := components.Hostile.Get(e)
		if !h.Alive() || !h.Circle().IntersectsRect(p.data.AttackRect) {
			continue
		}
		if d := gamemath.Distance(p.body.Position, h.Position); d < best {
			best = d
			target = h.Position
			found = true
		}
	}
	return target, found
}

// collide resolves a power-up against the grid and the dynamic obstacles with the
// same rules the hero uses. Slopes only catch a power-up falling onto them.
func (p powerUp) collide(w donburi.World, grid *tilegrid.Grid) {
	p.data.OnGround = false
	p.data.OnWall = false
	touch := func(c collision.Contact) {
		p.data.OnGround = p.data.OnGround || c.Grounded
		p.data.OnWall = p.data.OnWall || c.Wall
	}

	l, t, r, b := grid.Span(p.body.Box())
	grid.Cells(l, t, r, b, func(x, y int, k tilegrid.Kind) {
		switch {
		case k.IsSlope():
			if collision.ResolveSlope(p.body, grid.Bounds(x, y), k.Slope(), false) {
				p.data.OnGround = true
			}
		case k.IsBlock():
			touch(collision.ResolveRect(p.body, grid.Bounds(x, y), surfaceOf(k)))
		}
	})

	p.obj.Sync(p.body.Box().Inflate(1, 1))
	for _, e := range nearby(p.obj, tags.ResolvOzone, ozoneSeq) {
		o := components.OzoneTile.Get(e)
		if p.body.Box().Intersects(o.Rect) {
			touch(collision.ResolveRect(p.body, o.Rect, collision.OneWay))
		}
	}
	if p.data.Kind != leveldata.Marble {
		for _, e := range nearby(p.obj, tags.ResolvBreakable, breakableSeq) {
			br := components.Breakable.Get(e)
			if br.Live() && p.body.Box().Intersects(br.Bounds()) {
				touch(collision.ResolveRect(p.body, br.Bounds(), collision.Solid))
			}
		}
	}
	for _, e := range nearby(p.obj, tags.ResolvPlatform, platformSeq) {
		pb := components.MovingPlatform.Get(e).Bounds()
		if p.body.Box().Intersects(pb) {
			touch(collision.ResolveRect(p.body, pb, collision.OneWay))
		}
	}
}
