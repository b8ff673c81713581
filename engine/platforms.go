package engine

import (
	"math"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// updatePlatforms moves every platform, then carries a hero standing on one by
// the platform's displacement for this step.
func updatePlatforms(w donburi.World, dt float64) {
	grid := gridOf(w)
	if grid == nil {
		return
	}

	type rider struct {
		body        *components.BodyData
		left, right dmath.Vec2
	}
	var riders []rider
	tags.Hero.Each(w, func(e *donburi.Entry) {
		if !components.Surface.Get(e).OnMovingTile {
			return
		}
		body := components.Body.Get(e)
		l, r, _ := footPoints(body)
		riders = append(riders, rider{body: body, left: l, right: r})
	})

	for _, e := range sortedBy(w, tags.MovingPlatform.Each, platformSeq) {
		p := components.MovingPlatform.Get(e)
		switch p.Motion {
		case components.MotionFloat:
			floatPlatform(e, p, dt)
		default:
			pacePlatform(grid, p, dt)
		}
		components.Object.Get(e).Sync(p.Bounds())

		b := p.Bounds()
		for _, r := range riders {
			if b.Contains(r.left) || b.Contains(r.right) {
				r.body.Shift(p.Velocity.X, p.Velocity.Y)
			}
		}
	}
}

// pacePlatform walks until the cell ahead of its leading edge is not open, waits,
// then turns around.
func pacePlatform(grid *tilegrid.Grid, p *components.MovingPlatformData, dt float64) {
	if p.WaitTime > 0 {
		p.WaitTime = math.Max(0, p.WaitTime-dt)
		if p.WaitTime <= 0 {
			p.Direction = -p.Direction
		}
		return
	}

	edge := p.Anchor.X + math.Trunc(p.W/2)*p.Direction
	col := int(math.Floor(edge / grid.TileWidth()))
	row := int(math.Floor(p.Anchor.Y/grid.TileHeight())) - 1
	if grid.Classify(col, row) != tilegrid.Passable {
		p.WaitTime = cfg.MovingPlatform.WaitTime
		p.Velocity = dmath.Vec2{}
		return
	}

	p.Velocity = dmath.NewVec2(p.Direction*cfg.MovingPlatform.MoveSpeed*dt, 0)
	p.Anchor.X = math.Round(p.Anchor.X + p.Velocity.X)
	p.Anchor.Y = math.Round(p.Anchor.Y + p.Velocity.Y)
}

// floatPlatform follows its tween sequence up and back down, restarting it at the end.
func floatPlatform(e *donburi.Entry, p *components.MovingPlatformData, dt float64) {
	seq := components.Tween.Get(e)
	y, _, done := seq.Update(float32(dt))
	if done {
		seq.Reset()
	}
	ny := float64(y)
	p.Velocity = dmath.NewVec2(0, ny-p.Anchor.Y)
	p.Anchor.Y = ny
}
