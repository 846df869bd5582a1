package gamemath

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

// Sign returns -1, 0 or 1. Unlike a float sign helper that maps 0 to 1,
// a zero offset yields zero so an actor standing on its target stays still.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		current += step
		if current > target {
			return target
		}
		return current
	}
	current -= step
	if current < target {
		return target
	}
	return current
}
