package tags

import "github.com/yohamta/donburi"

var (
	Hero             = donburi.NewTag().SetName("Hero")
	MovingPlatform   = donburi.NewTag().SetName("MovingPlatform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Breakable        = donburi.NewTag().SetName("Breakable")
	OzoneTile        = donburi.NewTag().SetName("OzoneTile")
	PowerUp          = donburi.NewTag().SetName("PowerUp")
	Hostile          = donburi.NewTag().SetName("Hostile")
	PuzzleBlock      = donburi.NewTag().SetName("PuzzleBlock")
)

// Resolv tags for broadphase queries
const (
	ResolvHero      = "hero"
	ResolvPlatform  = "platform"
	ResolvBreakable = "breakable"
	ResolvOzone     = "ozone"
	ResolvPowerUp   = "powerup"
	ResolvHostile   = "hostile"
	ResolvPuzzle    = "puzzle"
)
