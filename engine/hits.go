package engine

import (
	"math"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
)

// hitHostiles applies contact between an active power-up and live hostiles.
// A bubble stuns a pollutant and a bean seed turns any other hostile around;
// those matches cost the power-up its life. Any other contact trades damage.
func hitHostiles(w donburi.World, p powerUp) {
	p.obj.Sync(p.body.Box().Inflate(1, 1))
	for _, e := range nearby(p.obj, tags.ResolvHostile, hostileSeq) {
		if p.data.State != components.PowerActive {
			return
		}
		h := components.Hostile.Get(e)
		if !h.Alive() || !circleOf(p).Intersects(h.Circle()) {
			continue
		}
		switch {
		case p.data.Kind == leveldata.Bubble && h.Pollutant:
			h.StunTime = cfg.Hostile.StunTime
			p.data.Hurt(cfg.PowerUp.KillDamage)
		case p.data.Kind == leveldata.BeanSeed && !h.Pollutant:
			h.Direction = -h.Direction
			p.data.Hurt(cfg.PowerUp.KillDamage)
		default:
			h.Health -= p.data.Damage
			p.data.Hurt(h.Damage)
		}
	}
}

func updateHostiles(w donburi.World, dt float64) {
	tags.Hostile.Each(w, func(e *donburi.Entry) {
		h := components.Hostile.Get(e)
		if h.StunTime > 0 {
			h.StunTime = math.Max(0, h.StunTime-dt)
		}
	})
}

// updateBreakables cracks a breakable block each time an active marble hits it.
func updateBreakables(w donburi.World, dt float64) {
	for _, e := range sortedBy(w, tags.Breakable.Each, breakableSeq) {
		b := components.Breakable.Get(e)
		if !b.Live() {
			continue
		}
		obj := components.Object.Get(e)
		for _, pe := range nearby(obj, tags.ResolvPowerUp, powerUpSeq) {
			p := powerUpOf(pe)
			if p.data.Kind != leveldata.Marble || p.data.State != components.PowerActive {
				continue
			}
			if !circleOf(p).IntersectsRect(b.Bounds()) {
				continue
			}
			p.data.Hurt(cfg.PowerUp.KillDamage)
			b.Hit()
			if !b.Live() {
				break
			}
		}
	}
}
