package config

import "image/color"

// HeroConfig contains all hero movement tuning. Speeds are units per second.
type HeroConfig struct {
	// Horizontal movement
	MoveAcceleration float64
	MaxMoveSpeed     float64

	// Drag factors applied to vx each frame, selected by surface
	GroundDrag     float64
	AirDrag        float64
	WaterDrag      float64
	SlopeDragScale float64 // extra multiplier on GroundDrag while on a slope

	// Jump
	JumpLaunchVelocity float64
	MaxJumpTime        float64 // seconds of ascent on normal ground
	MaxJumpTimeOzone   float64 // shorter ascent when taking off from an ozone tile
	JumpControlPower   float64

	// Vertical
	Gravity       float64
	MaxFallSpeed  float64
	WaterBuoyancy float64 // scale on upward swim input

	// Throwing
	MaxThrowTime float64 // seconds input is locked after a throw
	ThrowOffsetX float64 // fraction of half box width the hand sits in front of the hero
	ThrowOffsetY float64 // fraction of box height the hand sits above the feet

	// Dimensions
	CollisionW float64
	CollisionH float64
}

// PowerUpKindConfig contains per-kind power-up values.
type PowerUpKindConfig struct {
	Radius       float64 // ground (collectable) radius
	DropRadius   float64 // radius while dropping and, unless ActiveRadius is set, while active
	ActiveRadius float64
	Damage       float64
	Health       float64
	DropCount    int     // how many are released per throw
	Lifetime     float64 // seconds active before dying, 0 = unlimited
	DropTime     float64 // seconds of timed drop, 0 = ballistic drop
	GrowShift    float64 // upward shift applied when it lands and activates
}

// PowerUpConfig contains shared projectile physics.
type PowerUpConfig struct {
	MoveSpeed       float64
	Gravity         float64
	LaunchVelocityY float64
	KillDamage      float64 // damage a power-up takes when it neutralises a matched hostile

	// Bubble motion
	BubbleSpeedDivisor float64
	BubbleTopBoost     float64
	BounceHeight       float64
	BounceRate         float64
	BounceSync         float64

	// Recycle ball homing
	HomingStep  float64 // units per frame
	HomingRange float64

	Kinds map[int]PowerUpKindConfig
}

// MovingPlatformConfig contains cloud platform tuning.
type MovingPlatformConfig struct {
	Width, Height float64
	MoveSpeed     float64
	WaitTime      float64

	// Floating (tweened) platforms
	FloatDistance float64
	FloatDuration float64
}

// HostileConfig contains targets for thrown power-ups.
type HostileConfig struct {
	Radius   float64
	StunTime float64
}

// OzoneConfig contains the toggle tile puzzle rules.
type OzoneConfig struct {
	MaxMoves int
}

// PuzzleConfig contains the sliding block puzzle rules.
type PuzzleConfig struct {
	SlideStep float64 // units per frame
	Columns   int
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	ViewMargin float64 // fraction of the view kept between the hero and the view edge
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool
	FlagsPanel bool
	Level      string
}

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64
	Delta      float64 // fixed step in seconds
	LevelsDir  string
}

// Global configuration instances
var C *Config
var Hero HeroConfig
var PowerUp PowerUpConfig
var MovingPlatform MovingPlatformConfig
var Hostile HostileConfig
var Ozone OzoneConfig
var Puzzle PuzzleConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	WaterBlue  = color.RGBA{R: 40, G: 90, B: 200, A: 140}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown      = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	PanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

// Power-up kind indices, matching leveldata.PowerUpKind.
const (
	KindMarble = iota
	KindBeanSeed
	KindBubble
	KindRecycleBall
)

func init() {
	C = &Config{
		Width:      800,
		Height:     480,
		TileWidth:  40,
		TileHeight: 32,
		Delta:      1.0 / 60.0,
		LevelsDir:  "levels",
	}

	Hero = HeroConfig{
		MoveAcceleration: 14000,
		MaxMoveSpeed:     2000,

		GroundDrag:     0.58,
		AirDrag:        0.65,
		WaterDrag:      0.52,
		SlopeDragScale: 0.7,

		JumpLaunchVelocity: -4000,
		MaxJumpTime:        0.42,
		MaxJumpTimeOzone:   0.14,
		JumpControlPower:   0.14,

		Gravity:       3500,
		MaxFallSpeed:  600,
		WaterBuoyancy: 0.98,
		MaxThrowTime:  0.60,
		CollisionW:    20,
		CollisionH:    52,
		ThrowOffsetX:  0.8,
		ThrowOffsetY:  0.61,
	}

	PowerUp = PowerUpConfig{
		MoveSpeed:       200,
		Gravity:         200,
		LaunchVelocityY: -75,
		KillDamage:      10,

		BubbleSpeedDivisor: 2.5,
		BubbleTopBoost:     1.5,
		BounceHeight:       0.38,
		BounceRate:         3.0,
		BounceSync:         -0.01,

		HomingStep:  7,
		HomingRange: 2000,

		Kinds: map[int]PowerUpKindConfig{
			KindMarble:      {Radius: 10, DropRadius: 5, Damage: 0.4, Health: 0.1, DropCount: 1},
			KindBeanSeed:    {Radius: 10, DropRadius: 5, ActiveRadius: 12, Damage: 1, Health: 1, DropCount: 1, Lifetime: 10, GrowShift: 11},
			KindBubble:      {Radius: 10, DropRadius: 10, ActiveRadius: 14, Health: 1, DropCount: 2, Lifetime: 5, DropTime: 0.5},
			KindRecycleBall: {Radius: 10, DropRadius: 5, Damage: 1.5, Health: 20000, DropCount: 1},
		},
	}

	MovingPlatform = MovingPlatformConfig{
		Width:         96,
		Height:        24,
		MoveSpeed:     150,
		WaitTime:      0.92,
		FloatDistance: 128,
		FloatDuration: 2,
	}

	Hostile = HostileConfig{
		Radius:   24,
		StunTime: 4,
	}

	Ozone = OzoneConfig{
		MaxMoves: 9,
	}

	Puzzle = PuzzleConfig{
		SlideStep: 3,
		Columns:   3,
	}

	Camera = CameraConfig{
		ViewMargin: 0.35,
	}

	Debug = DebugConfig{
		Overlay:    false,
		FlagsPanel: false,
	}
}

// Direction constants for hero facing and projectile travel
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
