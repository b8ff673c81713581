package systems

import (
	"image/color"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase proxy in the level space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	v, ok := viewOf(ecs)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < v.rect.X || obj.X > v.rect.Right() || obj.Y+obj.H < v.rect.Y || obj.Y > v.rect.Bottom() {
			continue
		}

		x := obj.X + v.x
		y := obj.Y + v.y

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvHero) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvHostile) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvPowerUp) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvBreakable) || obj.HasTags(tags.ResolvPlatform) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
