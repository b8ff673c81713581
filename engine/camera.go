package engine

import (
	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/yohamta/donburi"
)

// updateCamera scrolls the view once the hero leaves the centre band, keeping the
// view inside the level. On a level smaller than the view the origin wins.
func updateCamera(w donburi.World, dt float64) {
	camEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	heroEntry, ok := Hero(w)
	if !ok {
		return
	}
	grid := gridOf(w)
	if grid == nil {
		return
	}
	cam := components.Camera.Get(camEntry)
	pos := components.Body.Get(heroEntry).Position

	cam.Position.X = scrollAxis(cam.Position.X, pos.X, cam.ViewW, grid.PixelWidth())
	cam.Position.Y = scrollAxis(cam.Position.Y, pos.Y, cam.ViewH, grid.PixelHeight())
}

func scrollAxis(cam, target, view, level float64) float64 {
	margin := view * cfg.Camera.ViewMargin
	lo, hi := cam+margin, cam+view-margin

	move := 0.0
	if target < lo {
		move = target - lo
	} else if target > hi {
		move = target - hi
	}
	return gamemath.Clamp(cam+move, 0, level-view)
}

// Visible returns the part of the level currently in view.
func Visible(w donburi.World) gamemath.Rect {
	e, ok := components.Camera.First(w)
	if !ok {
		return gamemath.Rect{}
	}
	return components.Camera.Get(e).Visible()
}
