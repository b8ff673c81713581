package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

var slopeTile = NewRect(80, 64, 40, 32)

func TestSlopeDepthYCorners(t *testing.T) {
	tests := []struct {
		name  string
		slope Slope
		point dmath.Vec2
		want  float64
	}{
		{"plus low end", SlopePlus, dmath.NewVec2(120, 96), 0},
		{"plus high end", SlopePlus, dmath.NewVec2(80, 96), -32},
		{"minus low end", SlopeMinus, dmath.NewVec2(80, 96), 0},
		{"minus high end", SlopeMinus, dmath.NewVec2(120, 96), -32},
		{"plus midpoint", SlopePlus, dmath.NewVec2(100, 96), -16},
		{"minus midpoint above surface", SlopeMinus, dmath.NewVec2(100, 70), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlopeDepthY(tt.point, slopeTile, tt.slope))
		})
	}
}

func TestSlopeDepthYOutsideTile(t *testing.T) {
	left := dmath.NewVec2(70, 90)
	right := dmath.NewVec2(130, 90)

	assert.Equal(t, 0.0, SlopeDepthY(left, slopeTile, SlopeMinus))
	assert.Equal(t, 64.0-90.0, SlopeDepthY(left, slopeTile, SlopePlus))
	assert.Equal(t, 0.0, SlopeDepthY(right, slopeTile, SlopePlus))
	assert.Equal(t, 64.0-90.0, SlopeDepthY(right, slopeTile, SlopeMinus))
}

func TestSlopeIsAbove(t *testing.T) {
	assert.True(t, SlopeIsAbove(dmath.NewVec2(100, 80), slopeTile, SlopePlus), "exactly on the line")
	assert.True(t, SlopeIsAbove(dmath.NewVec2(100, 60), slopeTile, SlopePlus))
	assert.False(t, SlopeIsAbove(dmath.NewVec2(100, 90), slopeTile, SlopePlus))

	assert.True(t, SlopeIsAbove(dmath.NewVec2(110, 70), slopeTile, SlopeMinus))
	assert.False(t, SlopeIsAbove(dmath.NewVec2(90, 90), slopeTile, SlopeMinus))
}
