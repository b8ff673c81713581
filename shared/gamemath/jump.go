package gamemath

import "math"

// JumpVelocity returns the vertical velocity during the ascent of a jump.
// The curve starts at launch when jumpTime is 0 and decays to 0 at maxJumpTime;
// a small power gives the player fine control near the top of the jump.
func JumpVelocity(launch, jumpTime, maxJumpTime, power float64) float64 {
	return launch * (1 - math.Pow(jumpTime/maxJumpTime, power))
}
