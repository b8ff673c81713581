package engine

import (
	"math"

	"github.com/automoto/gombli/components"
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/collision"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/automoto/gombli/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

// heroStages run in order after integration. Slopes go first because they read
// the contact flags of the previous step before those are cleared.
var heroStages = []struct {
	name string
	run  func(*heroStep)
}{
	{"slopes", (*heroStep).resolveSlopes},
	{"clear", (*heroStep).clearFlags},
	{"ladders", (*heroStep).resolveLadders},
	{"tiles", (*heroStep).resolveTiles},
	{"moving platforms", (*heroStep).resolveMovingPlatforms},
	{"breakables", (*heroStep).resolveBreakables},
	{"jump limit", (*heroStep).restoreJumpLimit},
	{"water", (*heroStep).resolveWater},
	{"ozone", (*heroStep).resolveOzone},
	{"ladder ground", (*heroStep).resolveLadderGround},
}

func (s *heroStep) resolve() {
	s.start = s.body.Box()
	s.left, s.top, s.right, s.bottom = s.grid.Span(s.start)
	s.aboveSlope = false
	for _, stage := range heroStages {
		stage.run(s)
	}
}

func (s *heroStep) foot() (float64, float64) {
	return s.body.Position.X, s.body.Position.Y
}

// probe moves the broadphase proxy onto the current box, grown by one unit so
// obstacles touching an edge are found.
func (s *heroStep) probe() {
	s.obj.Sync(s.body.Box().Inflate(1, 1))
}

func (s *heroStep) touch(c collision.Contact) {
	s.surf.OnGround = s.surf.OnGround || c.Grounded
	s.surf.OnWall = s.surf.OnWall || c.Wall
}

func (s *heroStep) resolveSlopes() {
	standing := s.surf.OnGround || s.surf.OnLadderTop
	s.surf.OnSlope = false
	s.grid.Cells(s.left, s.top, s.right, s.bottom, func(x, y int, k tilegrid.Kind) {
		if !k.IsSlope() {
			return
		}
		tile := s.grid.Bounds(x, y)
		if collision.ResolveSlope(s.body, tile, k.Slope(), standing) {
			s.surf.OnSlope = true
		}
		s.aboveSlope = s.aboveSlope || s.surf.OnSlope || gamemath.SlopeIsAbove(s.body.Foot(), tile, k.Slope())
	})
}

func (s *heroStep) clearFlags() {
	s.surf.OnWaterSurface = false
	s.surf.Underwater = false
	s.surf.OnGround = false
	s.surf.OnWall = false
	s.surf.OnLadder = false
	s.surf.OnLadderTop = false
}

func (s *heroStep) resolveLadders() {
	x, y := s.foot()
	move := s.intent.Move
	if s.grid.FootKind(x, y, 0) == tilegrid.Ladder && s.body.PrevBottom <= s.grid.FootBounds(x, y).Top() && move.Y <= 0 {
		s.body.Position.Y = math.Floor(y/s.grid.TileHeight()) * s.grid.TileHeight()
		s.surf.OnLadderTop = true
	}

	x, y = s.foot()
	if s.grid.FootKind(x, y, 0) == tilegrid.Ladder && s.hero.JumpTime == 0 {
		s.surf.OnLadder = true
		if s.body.PrevBottom != s.body.Box().Bottom() && move.Y != 0 {
			tw := s.grid.TileWidth()
			s.body.Position.X = math.Floor(x/tw)*tw + tw/2
		}
	}
}

func (s *heroStep) resolveTiles() {
	for y := s.top; y <= s.bottom; y++ {
		for x := s.left; x <= s.right; x++ {
			// Where a slope meets the ground, the block beside the low end of the
			// slope would otherwise stop the walk off it.
			if y == s.bottom && s.left != s.right && s.aboveSlope {
				fk := s.grid.FootKind(s.body.Position.X, s.body.Position.Y, 0)
				if (x == s.left && fk == tilegrid.SlopePlus) || (x == s.right && fk == tilegrid.SlopeMinus) {
					continue
				}
			}
			k := s.grid.Classify(x, y)
			if !k.IsBlock() {
				continue
			}
			s.touch(collision.ResolveRect(s.body, s.grid.Bounds(x, y), surfaceOf(k)))
		}
	}
}

func surfaceOf(k tilegrid.Kind) collision.Surface {
	if k == tilegrid.Platform {
		return collision.OneWay
	}
	return collision.Solid
}

// resolveMovingPlatforms lands the hero on moving platforms and decides whether
// the hero rides one next step.
func (s *heroStep) resolveMovingPlatforms() {
	left, right, center := footPoints(s.body)
	wasAirborne := !s.surf.OnGround
	isOn := false

	s.probe()
	for _, e := range nearby(s.obj, tags.ResolvPlatform, platformSeq) {
		p := components.MovingPlatform.Get(e)
		pb := p.Bounds()
		if !pb.Contains(left) && !pb.Contains(right) {
			continue
		}
		if wasAirborne {
			s.touch(collision.ResolveRect(s.body, pb, collision.OneWay))
		}

		bottom := s.body.Box().Bottom()
		if pb.Top() == bottom {
			isOn = true
			if !wasAirborne && p.Velocity == (dmath.Vec2{}) {
				s.surf.OnMovingTile = false
			}
		}

		// The foot on the side the platform travels toward must be on it.
		leading := left
		if p.Velocity.X > 0 {
			leading = right
		}
		if (wasAirborne && s.surf.OnGround) ||
			(s.surf.OnMovingTile && bottom == pb.Top()) ||
			(!wasAirborne && pb.Contains(center) && bottom == pb.Top() && pb.Contains(leading)) {
			s.surf.OnMovingTile = true
		}
	}
	if !isOn {
		s.surf.OnMovingTile = false
	}
}

func (s *heroStep) resolveBreakables() {
	s.probe()
	for _, e := range nearby(s.obj, tags.ResolvBreakable, breakableSeq) {
		b := components.Breakable.Get(e)
		if !b.Live() || !s.body.Box().Intersects(b.Bounds()) {
			continue
		}
		s.touch(collision.ResolveRect(s.body, b.Bounds(), collision.Solid))
	}
}

// restoreJumpLimit gives back the full ascent once the hero has been pushed up
// onto something this step.
func (s *heroStep) restoreJumpLimit() {
	if s.start.Bottom() > s.body.Box().Bottom() {
		s.hero.MaxJumpTime = cfg.Hero.MaxJumpTime
	}
}

func (s *heroStep) resolveWater() {
	x, y := s.foot()
	if s.grid.FootKind(x, y, 0) != tilegrid.Water {
		return
	}
	above := s.grid.FootKind(x, y, 1)
	if above == tilegrid.Water {
		s.surf.Underwater = true
	}
	fb := s.grid.FootBounds(x, y)
	if above == tilegrid.Passable && s.hero.JumpTime == 0 && s.body.PrevBottom >= fb.Bottom() {
		s.body.Position.Y = fb.Bottom()
		s.surf.Underwater = true
		s.surf.OnWaterSurface = true
	}
}

func (s *heroStep) resolveOzone() {
	before := s.body.Box().Bottom()
	s.surf.OnOzoneTile = false

	s.probe()
	for _, e := range nearby(s.obj, tags.ResolvOzone, ozoneSeq) {
		o := components.OzoneTile.Get(e)
		if !s.body.Box().Intersects(o.Rect) {
			continue
		}
		s.touch(collision.ResolveRect(s.body, o.Rect, collision.OneWay))
	}
	if before > s.body.Box().Bottom() {
		s.surf.OnOzoneTile = true
		s.hero.MaxJumpTime = cfg.Hero.MaxJumpTimeOzone
	}
}

func (s *heroStep) resolveLadderGround() {
	x, y := s.foot()
	if s.grid.FootKind(x, y, 0) == tilegrid.Ladder && s.surf.OnGround {
		s.surf.OnLadder = true
	}
}
