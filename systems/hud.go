package systems

import (
	"fmt"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/engine"
	"github.com/automoto/gombli/fonts"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudSlotWidth  = 96
	hudSlotHeight = 18
	hudLineHeight = 14
)

// DrawHUD renders the inventory strip along the top and the level status below it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	heroEntry, ok := engine.Hero(ecs.World)
	if !ok {
		return
	}
	inv := components.Inventory.Get(heroEntry)
	fontFace := fonts.HUDSmall.Get()

	for i, kind := range leveldata.PowerUpKinds {
		x := float32(hudMargin + i*(hudSlotWidth+4))
		vector.DrawFilledRect(screen, x, hudMargin, hudSlotWidth, hudSlotHeight, cfg.PanelColor, false)
		if kind == inv.Selected {
			vector.FillRect(screen, x, hudMargin+hudSlotHeight-2, hudSlotWidth, 2, cfg.Yellow, false)
		}
		vector.DrawFilledCircle(screen, x+9, hudMargin+hudSlotHeight/2, 5, powerUpColors[kind], true)
		label := fmt.Sprintf("%s %d", kind, inv.Picked[kind])
		text.Draw(screen, label, fontFace, int(x)+18, hudMargin+13, cfg.White)
	}

	levelEntry, ok := engine.Level(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	y := hudMargin + hudSlotHeight + hudLineHeight
	status := fmt.Sprintf("%s  falls %d", level.Level.Name, level.Respawns)
	if levelEntry.HasComponent(components.OzonePuzzle) && len(level.Level.OzoneTiles) > 0 {
		ozone := components.OzonePuzzle.Get(levelEntry)
		status += fmt.Sprintf("  moves %d/%d", ozone.Moves, ozone.MaxMoves)
	}
	if levelEntry.HasComponent(components.SlidingPuzzle) && components.SlidingPuzzle.Get(levelEntry).Solved {
		status += "  solved"
	}
	text.Draw(screen, status, fontFace, hudMargin, y, cfg.White)

	if level.Complete {
		drawLevelComplete(screen)
	}
}

func drawLevelComplete(screen *ebiten.Image) {
	width, height := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, height/2-40, width, 80, cfg.PanelColor, false)

	title := "LEVEL COMPLETE"
	titleFont := fonts.Title.Get()
	titleX := int(width)/2 - text.BoundString(titleFont, title).Dx()/2
	text.Draw(screen, title, titleFont, titleX, int(height)/2, cfg.Yellow)

	hint := "N: next level   R: restart"
	hintFont := fonts.HUDSmall.Get()
	hintX := int(width)/2 - text.BoundString(hintFont, hint).Dx()/2
	text.Draw(screen, hint, hintFont, hintX, int(height)/2+24, cfg.White)
}
