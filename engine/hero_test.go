package engine

import (
	"testing"

	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSystemsOrder(t *testing.T) {
	assert.Equal(t, []string{
		"frame", "platforms", "hero", "camera", "powerups",
		"hostiles", "breakables", "ozone", "sliding", "exit",
	}, Systems())
}

func TestHeroFallsAndRests(t *testing.T) {
	w := newTestWorld(t,
		"..........",
		"..........",
		"..........",
		"....A.....",
		"..........",
		"..........",
		".........Z",
		"##########",
	)
	h := heroOf(t, w)

	run(w, 60, dt)

	assert.Equal(t, 224.0, h.body.Box().Bottom())
	assert.True(t, h.surf.OnGround)
	assert.Equal(t, 0.0, h.body.Velocity.Y)

	rest := h.body.Position
	for i := 0; i < 30; i++ {
		Step(w, dt)
		assert.Equal(t, rest, h.body.Position)
		assert.Equal(t, 0.0, h.body.Velocity.Y)
		assert.True(t, h.surf.OnGround)
	}
}

func TestHeroStopsAtWall(t *testing.T) {
	w := newTestWorld(t,
		"Z........#",
		".........#",
		".A.......#",
		".........#",
		"##########",
	)
	h := heroOf(t, w)
	run(w, 10, dt)

	h.intent.Move = dmath.NewVec2(1, 0)
	run(w, 120, dt)

	assert.Equal(t, 360.0, h.body.Box().Right())
	assert.Equal(t, 0.0, h.body.Velocity.X)
	assert.Equal(t, cfg.DirectionRight, h.hero.Facing)
}

func TestHeroJumpCurve(t *testing.T) {
	w := newTestWorld(t,
		"..........",
		"..........",
		"....A.....",
		".........Z",
		"##########",
	)
	h := heroOf(t, w)
	run(w, 30, dt)
	require.True(t, h.surf.OnGround)

	h.intent.Jump = true
	Step(w, dt)

	assert.InDelta(t, dt, h.hero.JumpTime, 1e-12)
	want := gamemath.JumpVelocity(cfg.Hero.JumpLaunchVelocity, dt, cfg.Hero.MaxJumpTime, cfg.Hero.JumpControlPower)
	assert.InDelta(t, want, h.body.Velocity.Y, 1e-9)
	assert.Less(t, h.body.Velocity.Y, 0.0)
	assert.Greater(t, h.body.Velocity.Y, cfg.Hero.JumpLaunchVelocity)

	// Holding the button past the ascent time does not start another jump.
	run(w, 120, dt)
	assert.True(t, h.surf.OnGround)
	assert.Equal(t, 0.0, h.hero.JumpTime)
}

func TestHeroJumpsThroughPlatformAndLandsOnIt(t *testing.T) {
	w := newTestWorld(t,
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"...---....",
		"..........",
		"..........",
		"....A.....",
		".........Z",
		"##########",
	)
	h := heroOf(t, w)
	run(w, 30, dt)
	require.Equal(t, 320.0, h.body.Box().Bottom())

	h.intent.Jump = true
	run(w, 40, dt)
	h.intent.Jump = false
	run(w, 120, dt)

	assert.Equal(t, 160.0, h.body.Box().Bottom())
	assert.True(t, h.surf.OnGround)
}

func TestHeroNeverOverlapsSolidTiles(t *testing.T) {
	w := newTestWorld(t,
		"Z..........#",
		"...........#",
		"......#....#",
		".A.........#",
		"....##.....#",
		"############",
	)
	h := heroOf(t, w)
	g := gridOf(w)

	for i := 0; i < 400; i++ {
		h.intent.Move = dmath.NewVec2(1, 0)
		if i > 200 {
			h.intent.Move = dmath.NewVec2(-1, 0)
		}
		h.intent.Jump = i%40 < 20
		Step(w, dt)

		box := h.body.Box()
		l, tp, r, b := g.Span(box)
		g.Cells(l, tp, r, b, func(x, y int, k tilegrid.Kind) {
			if k == tilegrid.Impassable {
				assert.False(t, box.Intersects(g.Bounds(x, y)), "step %d overlaps cell %d,%d", i, x, y)
			}
		})
		assert.False(t, h.surf.Underwater && h.surf.OnLadder)
	}
}

func TestHeroSwimsUnderwater(t *testing.T) {
	w := newTestWorld(t,
		".A......",
		".~......",
		".~.....Z",
		".~......",
		"########",
	)
	h := heroOf(t, w)

	run(w, 120, dt)

	assert.True(t, h.surf.Underwater)
	assert.False(t, h.surf.OnLadder)
	assert.Equal(t, 128.0, h.body.Box().Bottom())
}

func TestHeroClimbsSlopes(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		move  float64
		onTop func(x float64) bool
	}{
		{
			name: "rising to the right",
			rows: []string{
				"Z.........",
				"..........",
				"..........",
				"..........",
				".A.../####",
				"##########",
			},
			move:  1,
			onTop: func(x float64) bool { return x > 290 },
		},
		{
			name: "rising to the left",
			rows: []string{
				"Z.........",
				"..........",
				"..........",
				"..........",
				"####\\...A.",
				"##########",
			},
			move:  -1,
			onTop: func(x float64) bool { return x < 110 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.rows...)
			h := heroOf(t, w)
			run(w, 10, dt)
			require.Equal(t, 160.0, h.body.Box().Bottom())

			h.intent.Move = dmath.NewVec2(tt.move, 0)
			sawSlope := false
			require.True(t, runUntil(w, 240, func() bool {
				if h.surf.OnSlope {
					sawSlope = true
					bottom := h.body.Box().Bottom()
					assert.True(t, bottom >= 128 && bottom <= 160, "bottom %v off the slope", bottom)
				}
				// The plateau tile beside the slope must not act as a wall.
				assert.False(t, h.surf.OnWall, "blocked at x=%v", h.body.Position.X)
				return tt.onTop(h.body.Position.X)
			}))
			assert.True(t, sawSlope)

			h.intent.Move = dmath.Vec2{}
			run(w, 30, dt)
			assert.Equal(t, 128.0, h.body.Box().Bottom())
			assert.True(t, h.surf.OnGround)
			assert.False(t, h.surf.OnSlope)
		})
	}
}

func TestHeroSwimsUpToSurface(t *testing.T) {
	w := newTestWorld(t,
		".A......",
		".~......",
		".~.....Z",
		".~......",
		"########",
	)
	h := heroOf(t, w)
	run(w, 120, dt)
	require.Equal(t, 128.0, h.body.Box().Bottom())
	require.False(t, h.surf.OnWaterSurface)

	h.intent.Move = dmath.NewVec2(0, -1)
	require.True(t, runUntil(w, 120, func() bool { return h.surf.OnWaterSurface }))
	assert.True(t, h.surf.Underwater)
	assert.Equal(t, 64.0, h.body.Box().Bottom())

	// Holding up keeps the hero floating at the top water cell.
	run(w, 30, dt)
	assert.True(t, h.surf.OnWaterSurface)
	assert.Equal(t, 64.0, h.body.Box().Bottom())
}

func TestOzoneTileShortensJump(t *testing.T) {
	w := newTestWorld(t,
		"; puzzle=ozone",
		"Z.......",
		"........",
		"........",
		".A.....R",
		".1......",
		"########",
	)
	h := heroOf(t, w)
	run(w, 10, dt)
	require.True(t, h.surf.OnOzoneTile)
	require.True(t, h.surf.OnGround)
	assert.Equal(t, cfg.Hero.MaxJumpTimeOzone, h.hero.MaxJumpTime)

	h.intent.Jump = true
	peak := 0.0
	run(w, 1, dt)
	for i := 0; i < 60; i++ {
		peak = max(peak, h.hero.JumpTime)
		Step(w, dt)
	}
	h.intent.Jump = false
	assert.LessOrEqual(t, peak, cfg.Hero.MaxJumpTimeOzone)
	assert.Greater(t, peak, cfg.Hero.MaxJumpTimeOzone-dt)

	run(w, 60, dt)
	require.True(t, h.surf.OnOzoneTile)

	// Landing on ordinary ground gives back the full ascent.
	h.intent.Move = dmath.NewVec2(1, 0)
	require.True(t, runUntil(w, 120, func() bool { return h.hero.MaxJumpTime == cfg.Hero.MaxJumpTime }))
	h.intent.Move = dmath.Vec2{}
	assert.False(t, h.surf.OnOzoneTile)
	assert.True(t, h.surf.OnGround)
	assert.Equal(t, 160.0, h.body.Box().Bottom())
}

func TestThrowLocksMovement(t *testing.T) {
	w := newTestWorld(t,
		".......Z",
		".A*.....",
		"########",
	)
	h := heroOf(t, w)

	h.intent.Move = dmath.NewVec2(1, 0)
	require.True(t, runUntil(w, 60, func() bool { return h.inv.Count() > 0 }))
	assert.Equal(t, 10, h.inv.Count())

	h.intent.Move = dmath.Vec2{}
	run(w, 60, dt)

	h.intent.Throw = true
	Step(w, dt)
	assert.True(t, h.hero.Threw)
	assert.Equal(t, cfg.Hero.MaxThrowTime, h.hero.ThrowTime)
	assert.Equal(t, 9, h.inv.Count())

	x := h.body.Position.X
	h.intent.Move = dmath.NewVec2(1, 0)
	Step(w, dt)
	assert.False(t, h.hero.Threw, "holding the button does not throw again")
	assert.Equal(t, x, h.body.Position.X)
	assert.Equal(t, 9, h.inv.Count())
}
