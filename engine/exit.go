package engine

import (
	"github.com/automoto/gombli/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// updateExit puts a hero that fell out of the level back at the start, and
// completes the level once the hero stands on the exit with every ozone tile lit.
func updateExit(w donburi.World, dt float64) {
	level, ok := Level(w)
	if !ok {
		return
	}
	heroEntry, ok := Hero(w)
	if !ok {
		return
	}
	ld := components.Level.Get(level)
	body := components.Body.Get(heroEntry)
	surf := components.Surface.Get(heroEntry)

	if body.Box().Top() >= ld.Level.Grid.PixelHeight() {
		respawn(heroEntry, ld.Level.Start)
		ld.Respawns++
		return
	}

	if surf.OnGround && body.Box().Contains(ld.Level.Exit) && AllGlowing(w) {
		ld.Complete = true
	}
}

func respawn(e *donburi.Entry, start dmath.Vec2) {
	body := components.Body.Get(e)
	body.Position = start
	body.Velocity = dmath.Vec2{}
	body.BeginFrame()

	*components.Surface.Get(e) = components.SurfaceData{}
	hero := components.Hero.Get(e)
	hero.JumpTime = 0
	hero.WasJumping = false
	components.Object.Get(e).Sync(body.Box())
}
