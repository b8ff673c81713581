package factory

import (
	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePowerUp places one power-up. onTop alternates bubble pairs between the
// upper and lower flight paths.
func CreatePowerUp(w donburi.World, seq int, kind leveldata.PowerUpKind, pos dmath.Vec2, onTop bool) *donburi.Entry {
	power := archetypes.PowerUp.Spawn(w)
	kc := cfg.PowerUp.Kinds[int(kind)]

	data := components.PowerUpData{
		Kind:      kind,
		State:     components.PowerGround,
		Seq:       seq,
		Radius:    kc.Radius,
		Direction: cfg.DirectionLeft,
		Health:    kc.Health,
		Damage:    kc.Damage,
		DropTime:  kc.DropTime,
		Lifetime:  kc.Lifetime,
		OnTop:     onTop,
	}
	components.PowerUp.SetValue(power, data)

	body := components.NewCircleBody(pos, kc.Radius)
	if kind != leveldata.Bubble {
		body.Velocity = dmath.NewVec2(0, cfg.PowerUp.LaunchVelocityY)
	}
	components.Body.SetValue(power, body)
	addObject(w, power, body.Box(), tags.ResolvPowerUp)

	return power
}

func CreateHostile(w donburi.World, seq int, spawn leveldata.HostileSpawn) *donburi.Entry {
	hostile := archetypes.Hostile.Spawn(w)
	data := components.HostileData{
		Seq:       seq,
		Position:  spawn.Position,
		Radius:    cfg.Hostile.Radius,
		Health:    spawn.Damage,
		Damage:    spawn.Damage,
		Pollutant: spawn.Pollutant,
		Vertical:  spawn.Vertical,
		Direction: cfg.DirectionLeft,
	}
	components.Hostile.SetValue(hostile, data)
	addObject(w, hostile, data.Circle().Square(), tags.ResolvHostile)

	return hostile
}
