package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// CalculateHomingVelocity returns velocity components to home toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// StepToward moves from toward target by at most step units without overshooting.
func StepToward(from, target dmath.Vec2, step float64) dmath.Vec2 {
	dx := target.X - from.X
	dy := target.Y - from.Y
	if dx*dx+dy*dy <= step*step {
		return target
	}
	vx, vy := CalculateHomingVelocity(from.X, from.Y, target.X, target.Y, step)
	return dmath.NewVec2(from.X+vx, from.Y+vy)
}

func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
