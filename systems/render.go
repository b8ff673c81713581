package systems

import (
	"image/color"
	"math"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/engine"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/automoto/gombli/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var powerUpColors = [...]color.RGBA{cfg.Grey, cfg.Green, cfg.LightBlue, cfg.Orange}

// view is the camera offset applied to every world-space draw call.
type view struct {
	x, y float64
	rect gamemath.Rect
}

func viewOf(ecs *ecs.ECS) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return view{x: -camera.Position.X, y: -camera.Position.Y, rect: camera.Visible()}, true
}

func (v view) fill(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X+v.x), float32(r.Y+v.y), float32(r.W), float32(r.H), c, false)
}

func (v view) line(screen *ebiten.Image, x0, y0, x1, y1 float64, c color.Color) {
	vector.StrokeLine(screen, float32(x0+v.x), float32(y0+v.y), float32(x1+v.x), float32(y1+v.y), 2, c, false)
}

// DrawLevel renders the tile grid visible through the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs)
	if !ok {
		return
	}
	levelEntry, ok := engine.Level(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).Level
	grid := lvl.Grid

	// Viewport culling: only the cells under the camera are drawn
	left, top, right, bottom := grid.Span(v.rect)
	left, top = max(left, 0), max(top, 0)
	right, bottom = min(right, grid.Width()-1), min(bottom, grid.Height()-1)
	grid.Cells(left, top, right, bottom, func(x, y int, k tilegrid.Kind) {
		r := grid.Bounds(x, y)
		switch k {
		case tilegrid.Impassable:
			v.fill(screen, r, cfg.Brown)
		case tilegrid.Platform:
			v.fill(screen, gamemath.NewRect(r.X, r.Y, r.W, 4), cfg.Brown)
		case tilegrid.Water:
			v.fill(screen, r, cfg.WaterBlue)
		case tilegrid.Ladder:
			v.line(screen, r.X+r.W/4, r.Y, r.X+r.W/4, r.Bottom(), cfg.Yellow)
			v.line(screen, r.Right()-r.W/4, r.Y, r.Right()-r.W/4, r.Bottom(), cfg.Yellow)
			for rung := r.Y + r.H/4; rung < r.Bottom(); rung += r.H / 2 {
				v.line(screen, r.X+r.W/4, rung, r.Right()-r.W/4, rung, cfg.Yellow)
			}
		case tilegrid.SlopePlus:
			v.line(screen, r.X, r.Y, r.Right(), r.Bottom(), cfg.Brown)
		case tilegrid.SlopeMinus:
			v.line(screen, r.X, r.Bottom(), r.Right(), r.Y, cfg.Brown)
		}
	})

	exit := grid.Bounds(int(math.Floor(lvl.Exit.X/grid.TileWidth())), int(math.Floor(lvl.Exit.Y/grid.TileHeight())))
	exitColor := cfg.Grey
	if engine.AllGlowing(ecs.World) {
		exitColor = cfg.Green
	}
	v.fill(screen, exit.Inflate(-4, -4), exitColor)
}

// DrawEntities renders obstacles, puzzle pieces, hostiles, power-ups and the hero
// as flat shapes.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs)
	if !ok {
		return
	}
	w := ecs.World

	components.MovingPlatform.Each(w, func(e *donburi.Entry) {
		v.fill(screen, components.MovingPlatform.Get(e).Bounds(), cfg.Purple)
	})
	tags.Breakable.Each(w, func(e *donburi.Entry) {
		b := components.Breakable.Get(e)
		switch b.State {
		case components.Intact:
			v.fill(screen, b.Bounds(), cfg.Grey)
		case components.Cracked:
			r := b.Bounds()
			v.fill(screen, r, cfg.Grey)
			v.line(screen, r.X, r.Y, r.Right(), r.Bottom(), cfg.Background)
		}
	})
	tags.OzoneTile.Each(w, func(e *donburi.Entry) {
		o := components.OzoneTile.Get(e)
		c := cfg.Blue
		if o.Glowing {
			c = cfg.Cyan
		}
		v.fill(screen, o.Rect, c)
		if o.Static {
			v.fill(screen, o.Rect.Inflate(-8, -8), cfg.White)
		}
	})
	tags.PuzzleBlock.Each(w, func(e *donburi.Entry) {
		b := components.PuzzleBlock.Get(e)
		c := cfg.Orange
		if b.Solved() {
			c = cfg.Green
		}
		v.fill(screen, b.Bounds().Inflate(-1, -1), c)
	})
	tags.Hostile.Each(w, func(e *donburi.Entry) {
		h := components.Hostile.Get(e)
		if !h.Alive() {
			return
		}
		c := cfg.Red
		if h.StunTime > 0 {
			c = cfg.Purple
		}
		vector.DrawFilledCircle(screen, float32(h.Position.X+v.x), float32(h.Position.Y+v.y), float32(h.Radius), c, true)
	})
	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		p := components.PowerUp.Get(e)
		if p.State == components.PowerPick || p.State == components.PowerDie {
			return
		}
		body := components.Body.Get(e)
		vector.DrawFilledCircle(screen, float32(body.Position.X+v.x), float32(body.Position.Y+v.y), float32(p.Radius), powerUpColors[p.Kind], true)
	})

	if heroEntry, ok := engine.Hero(w); ok {
		body := components.Body.Get(heroEntry)
		hero := components.Hero.Get(heroEntry)
		box := body.Box()
		heroColor := cfg.Blue
		if !components.Surface.Get(heroEntry).OnGround {
			heroColor = cfg.Purple
		}
		v.fill(screen, box, heroColor)
		// Facing marker
		eyeX := box.Center().X + hero.Facing*box.W/4
		v.fill(screen, gamemath.NewRect(eyeX-2, box.Y+8, 4, 4), cfg.White)
	}
}
