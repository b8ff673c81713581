// Package leveldata parses level files into collision grids and spawn lists.
// It has no dependencies on ebitengine, donburi or resolv: pure data only.
package leveldata

import (
	"github.com/automoto/gombli/shared/tilegrid"
	dmath "github.com/yohamta/donburi/features/math"
)

// PuzzleMode selects what the digit characters of a text level spawn.
type PuzzleMode int

const (
	// PuzzleSliding turns '1'-'9' into sliding blocks and '0' into the puzzle home corner.
	PuzzleSliding PuzzleMode = iota
	// PuzzleOzone turns '0' (off), '1' (glowing) and '2' (static) into ozone tiles.
	PuzzleOzone
)

// Options tune how a text level is read.
type Options struct {
	Puzzle PuzzleMode
	// Submerged fills the cells under spawn markers with water instead of air.
	Submerged bool
	TileWidth  float64
	TileHeight float64
}

// PowerUpKind is the kind of a collectable, throwable power-up.
type PowerUpKind int

const (
	Marble PowerUpKind = iota
	BeanSeed
	Bubble
	RecycleBall
)

// PowerUpKinds is the selection order used by the inventory.
var PowerUpKinds = []PowerUpKind{Marble, BeanSeed, Bubble, RecycleBall}

func (k PowerUpKind) String() string {
	switch k {
	case Marble:
		return "Marble"
	case BeanSeed:
		return "BeanSeed"
	case Bubble:
		return "Bubble"
	case RecycleBall:
		return "RecycleBall"
	}
	return "Unknown"
}

// Level holds the static grid plus every spawn point found in a level file.
type Level struct {
	Name string
	Grid *tilegrid.Grid

	// Start is the hero's bottom-centre spawn point.
	Start dmath.Vec2
	// Exit is the centre of the exit tile.
	Exit dmath.Vec2
	// Reset is the centre of the ozone reset tile, when HasReset is set.
	Reset    dmath.Vec2
	HasReset bool
	// PuzzleHome is the top-left corner of the sliding puzzle's 3x3 target area.
	PuzzleHome    dmath.Vec2
	HasPuzzleHome bool

	MovingPlatforms   []dmath.Vec2 // bottom-centre anchors
	FloatingPlatforms []dmath.Vec2 // bottom-centre anchors
	Breakables        []dmath.Vec2 // bottom-centre anchors
	OzoneTiles        []OzoneSpawn
	PuzzleBlocks      []PuzzleBlockSpawn
	PowerUps          []PowerUpSpawn
	Hostiles          []HostileSpawn
}

// OzoneSpawn is a toggle tile at a top-left corner.
type OzoneSpawn struct {
	Position dmath.Vec2
	Glowing  bool
	Static   bool
}

// PuzzleBlockSpawn is a numbered sliding block at a top-left corner.
type PuzzleBlockSpawn struct {
	Position dmath.Vec2
	Number   int
}

// PowerUpSpawn places Count power-ups of one kind at a centre point.
type PowerUpSpawn struct {
	Kind     PowerUpKind
	Position dmath.Vec2
	Count    int
}

// HostileSpawn is a target for thrown power-ups.
type HostileSpawn struct {
	Position  dmath.Vec2
	Pollutant bool
	// Damage is dealt to a power-up on contact and is also the hostile's health.
	Damage   float64
	Vertical bool
}
