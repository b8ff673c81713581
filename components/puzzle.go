package components

import (
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SlidingPuzzleData coordinates the sliding blocks of one level. Only one block
// may slide at a time.
type SlidingPuzzleData struct {
	Home    dmath.Vec2 // top-left corner of the 3x3 target area
	Sliding bool
	Solved  bool
}

// BlockState is a sliding block's progress.
type BlockState int

const (
	BlockResting BlockState = iota
	BlockSliding
	BlockSettled
	BlockReturning
)

type PuzzleBlockData struct {
	Seq      int
	Number   int
	Position dmath.Vec2
	Origin   dmath.Vec2
	W, H     float64
	State    BlockState
	HasDest  bool
	Dest     dmath.Vec2
	MaxSlide dmath.Vec2
	Dir      dmath.Vec2
	Touched  bool // hero overlapped the block last frame
}

func (b *PuzzleBlockData) Bounds() gamemath.Rect {
	return gamemath.NewRect(b.Position.X, b.Position.Y, b.W, b.H)
}

// Solved reports whether the block rests on its destination.
func (b *PuzzleBlockData) Solved() bool {
	return b.HasDest && b.Position == b.Dest
}

// OzonePuzzleData counts the glow toggles left before the reset point must be used.
type OzonePuzzleData struct {
	Moves    int
	MaxMoves int
	Reset    dmath.Vec2
	HasReset bool
}

var (
	SlidingPuzzle = donburi.NewComponentType[SlidingPuzzleData]()
	PuzzleBlock   = donburi.NewComponentType[PuzzleBlockData]()
	OzonePuzzle   = donburi.NewComponentType[OzonePuzzleData]()
)
