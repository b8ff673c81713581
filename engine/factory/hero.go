package factory

import (
	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateHero(w donburi.World, start dmath.Vec2) *donburi.Entry {
	hero := archetypes.Hero.Spawn(w)

	body := components.NewHeroBody(start, cfg.Hero.CollisionW, cfg.Hero.CollisionH)
	components.Body.SetValue(hero, body)
	components.Hero.SetValue(hero, components.HeroData{
		MaxJumpTime: cfg.Hero.MaxJumpTime,
		Facing:      cfg.DirectionLeft,
	})
	addObject(w, hero, body.Box(), tags.ResolvHero)

	return hero
}
