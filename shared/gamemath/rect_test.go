package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestIntersectionDepth(t *testing.T) {
	tile := NewRect(0, 480, 40, 32)

	t.Run("no overlap when touching", func(t *testing.T) {
		box := NewRect(10, 428, 20, 52)
		assert.Equal(t, dmath.Vec2{}, IntersectionDepth(box, tile))
	})

	t.Run("sinking from above", func(t *testing.T) {
		box := NewRect(10, 434, 20, 52)
		d := IntersectionDepth(box, tile)
		assert.Equal(t, -6.0, d.Y)
		assert.Equal(t, -30.0, d.X)
	})

	t.Run("pushing into the right side", func(t *testing.T) {
		box := NewRect(35, 470, 20, 52)
		d := IntersectionDepth(box, tile)
		assert.Equal(t, 5.0, d.X)
	})
}

func TestRectContainsEdges(t *testing.T) {
	r := NewRect(0, 100, 96, 24)

	assert.True(t, r.Contains(dmath.NewVec2(0, 100)))
	assert.False(t, r.Contains(dmath.NewVec2(96, 100)))
	assert.False(t, r.Contains(dmath.NewVec2(10, 124)))
}

func TestCircleIntersectsRect(t *testing.T) {
	r := NewRect(0, 0, 40, 32)

	assert.True(t, Circle{Center: dmath.NewVec2(45, 16), Radius: 6}.IntersectsRect(r))
	assert.False(t, Circle{Center: dmath.NewVec2(50, 16), Radius: 6}.IntersectsRect(r))
	assert.Equal(t, NewRect(40, 10, 12, 12), Circle{Center: dmath.NewVec2(46, 16), Radius: 6}.Square())
}

func TestClampLowerBoundWins(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(50, 0, -100))
	assert.Equal(t, 30.0, Clamp(30, 0, 100))
}

func TestJumpVelocityEndpoints(t *testing.T) {
	assert.Equal(t, -4000.0, JumpVelocity(-4000, 0, 0.42, 0.14))
	assert.Equal(t, 0.0, JumpVelocity(-4000, 0.42, 0.42, 0.14))

	mid := JumpVelocity(-4000, 0.21, 0.42, 0.14)
	assert.Less(t, mid, 0.0)
	assert.Greater(t, mid, -4000.0)
}

func TestStepToward(t *testing.T) {
	from := dmath.NewVec2(0, 0)

	assert.Equal(t, dmath.NewVec2(3, 4), StepToward(from, dmath.NewVec2(3, 4), 7))

	got := StepToward(from, dmath.NewVec2(30, 40), 5)
	assert.InDelta(t, 3.0, got.X, 1e-9)
	assert.InDelta(t, 4.0, got.Y, 1e-9)
}
