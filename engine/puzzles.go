package engine

import (
	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// updateOzonePuzzle flips the glow of a tile each time the hero steps onto it,
// while moves remain. Standing on an ozone tile at the reset point restores the
// move budget and every tile's starting glow.
func updateOzonePuzzle(w donburi.World, dt float64) {
	level, ok := Level(w)
	if !ok {
		return
	}
	heroEntry, ok := Hero(w)
	if !ok {
		return
	}
	puzzle := components.OzonePuzzle.Get(level)
	surf := components.Surface.Get(heroEntry)
	body := components.Body.Get(heroEntry)
	tiles := sortedBy(w, tags.OzoneTile.Each, ozoneSeq)

	if surf.OnOzoneTile {
		_, _, foot := footPoints(body)
		for _, e := range tiles {
			o := components.OzoneTile.Get(e)
			if !o.Rect.Contains(foot) {
				o.HeroOn = false
				continue
			}
			if !o.HeroOn && puzzle.Moves > 0 {
				o.SwitchGlow()
				puzzle.Moves--
			}
			o.HeroOn = true
		}
	}

	if puzzle.HasReset && surf.OnOzoneTile && body.Box().Contains(puzzle.Reset) {
		puzzle.Moves = puzzle.MaxMoves
		for _, e := range tiles {
			components.OzoneTile.Get(e).ResetGlow()
		}
	}
}

// AllGlowing reports whether every ozone tile glows. A level without ozone tiles
// counts as lit.
func AllGlowing(w donburi.World) bool {
	lit := true
	tags.OzoneTile.Each(w, func(e *donburi.Entry) {
		if !components.OzoneTile.Get(e).Glowing {
			lit = false
		}
	})
	return lit
}

// updateSlidingPuzzle moves numbered blocks into a 3x3 frame. Touching a resting
// block sends it toward its slot; it stops at the frame edge or against a block
// that has already settled. Touching a settled block that missed its slot sends
// it back to where it started. Only one block slides at a time.
func updateSlidingPuzzle(w donburi.World, dt float64) {
	level, ok := Level(w)
	if !ok {
		return
	}
	heroEntry, ok := Hero(w)
	if !ok {
		return
	}
	puzzle := components.SlidingPuzzle.Get(level)
	heroBox := components.Body.Get(heroEntry).Box()

	blocks := sortedBy(w, tags.PuzzleBlock.Each, func(e *donburi.Entry) int {
		return components.PuzzleBlock.Get(e).Seq
	})
	if len(blocks) == 0 {
		return
	}

	for _, e := range blocks {
		b := components.PuzzleBlock.Get(e)
		slideBlock(puzzle, b)

		touching := heroBox.Intersects(b.Bounds())
		if !puzzle.Sliding && touching {
			switch {
			case b.State == components.BlockResting:
				activateBlock(puzzle, b)
			case b.State == components.BlockSettled && !b.Touched && !b.Solved():
				returnBlock(puzzle, b)
			}
		}
		b.Touched = touching

		for _, oe := range blocks {
			if oe == e || b.State != components.BlockSliding {
				continue
			}
			o := components.PuzzleBlock.Get(oe)
			if o.State == components.BlockSettled && b.Bounds().Intersects(o.Bounds()) {
				stopAgainst(puzzle, b, o.Bounds())
			}
		}
	}

	solved := true
	for _, e := range blocks {
		if !components.PuzzleBlock.Get(e).Solved() {
			solved = false
			break
		}
	}
	puzzle.Solved = solved
}

// slot returns the column and row of block number n in the frame.
func slot(n int) (int, int) {
	cols := cfg.Puzzle.Columns
	return (n - 1) % cols, (n - 1) / cols
}

func activateBlock(puzzle *components.SlidingPuzzleData, b *components.PuzzleBlockData) {
	col, row := slot(b.Number)
	if !b.HasDest {
		b.Dest = dmath.NewVec2(puzzle.Home.X+float64(col)*b.W, puzzle.Home.Y+float64(row)*b.H)
		b.HasDest = true
	}

	b.Dir = dmath.NewVec2(gamemath.Sign(b.Dest.X-b.Position.X), gamemath.Sign(b.Dest.Y-b.Position.Y))
	if b.Dir.X == 0 && b.Dir.Y == 0 {
		b.State = components.BlockSettled
		return
	}

	// The block slides along one axis to the frame edge it is heading for.
	edge := cfg.Puzzle.Columns - 1
	if b.Dir.X != 0 {
		b.Dir.Y = 0
		col = 0
		if b.Dir.X > 0 {
			col = edge
		}
	} else {
		row = 0
		if b.Dir.Y > 0 {
			row = edge
		}
	}
	b.MaxSlide = dmath.NewVec2(puzzle.Home.X+float64(col)*b.W, puzzle.Home.Y+float64(row)*b.H)
	b.State = components.BlockSliding
	puzzle.Sliding = true
}

// returnBlock reverses a settled block back along its last slide.
func returnBlock(puzzle *components.SlidingPuzzleData, b *components.PuzzleBlockData) {
	if b.Position == b.Origin {
		b.State = components.BlockResting
		return
	}
	b.Dir = dmath.NewVec2(-b.Dir.X, -b.Dir.Y)
	b.State = components.BlockReturning
	puzzle.Sliding = true
}

func slideBlock(puzzle *components.SlidingPuzzleData, b *components.PuzzleBlockData) {
	target, next := b.MaxSlide, components.BlockSettled
	switch b.State {
	case components.BlockSliding:
	case components.BlockReturning:
		target, next = b.Origin, components.BlockResting
	default:
		return
	}
	step := cfg.Puzzle.SlideStep
	prev := b.Position
	b.Position.X += b.Dir.X * step
	b.Position.Y += b.Dir.Y * step

	arrived := crossed(prev.Y, b.Position.Y, target.Y)
	if b.Dir.X != 0 {
		arrived = crossed(prev.X, b.Position.X, target.X)
	}
	if arrived {
		b.Position = target
		b.State = next
		puzzle.Sliding = false
	}
}

// crossed reports whether moving from a to b reached or passed target.
func crossed(a, b, target float64) bool {
	if a <= b {
		return a <= target && target <= b
	}
	return b <= target && target <= a
}

// stopAgainst parks a sliding block flush against the settled block it ran into.
func stopAgainst(puzzle *components.SlidingPuzzleData, b *components.PuzzleBlockData, other gamemath.Rect) {
	b.State = components.BlockSettled
	puzzle.Sliding = false
	if b.Dir.X != 0 {
		b.Position.X = other.Left() - b.Dir.X*b.W
	} else {
		b.Position.Y = other.Top() - b.Dir.Y*b.H
	}
}
