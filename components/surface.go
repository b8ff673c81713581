package components

import "github.com/yohamta/donburi"

// SurfaceData is recomputed from geometry on every hero step. OnLadderTop is read
// once from the previous step before being cleared.
type SurfaceData struct {
	OnGround       bool
	OnSlope        bool
	OnWall         bool
	OnLadder       bool
	OnLadderTop    bool
	Underwater     bool
	OnWaterSurface bool
	OnMovingTile   bool
	OnOzoneTile    bool
}

var Surface = donburi.NewComponentType[SurfaceData]()
