package factory

import (
	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateMovingPlatform(w donburi.World, seq int, anchor dmath.Vec2) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(w)
	data := components.MovingPlatformData{
		Motion:    components.MotionPace,
		Seq:       seq,
		Anchor:    anchor,
		W:         cfg.MovingPlatform.Width,
		H:         cfg.MovingPlatform.Height,
		Direction: cfg.DirectionLeft,
	}
	components.MovingPlatform.SetValue(platform, data)
	addObject(w, platform, data.Bounds(), tags.ResolvPlatform)

	return platform
}

func CreateFloatingPlatform(w donburi.World, seq int, anchor dmath.Vec2) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(w)
	data := components.MovingPlatformData{
		Motion: components.MotionFloat,
		Seq:    seq,
		Anchor: anchor,
		W:      cfg.MovingPlatform.Width,
		H:      cfg.MovingPlatform.Height,
	}
	components.MovingPlatform.SetValue(platform, data)
	addObject(w, platform, data.Bounds(), tags.ResolvPlatform)

	// The floating platform moves using a *gween.Sequence of tweens, moving it up and back down.
	y := float32(anchor.Y)
	dist := float32(cfg.MovingPlatform.FloatDistance)
	dur := float32(cfg.MovingPlatform.FloatDuration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(y, y-dist, dur, ease.Linear),
		gween.New(y-dist, y, dur, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
