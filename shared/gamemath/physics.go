package gamemath

import "math"

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins, which keeps a
// camera pinned to the origin on levels smaller than the view.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Round rounds half away from zero, the same rule used for every integrated position.
func Round(v float64) float64 {
	return math.Round(v)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
