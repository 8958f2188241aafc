package gamemath

import "math"

// ClampSpeed limits the magnitude of speed to limit, keeping its sign.
// A negative limit is treated as zero.
func ClampSpeed(speed, limit float64) float64 {
	limit = math.Max(limit, 0)
	return math.Max(-limit, math.Min(speed, limit))
}

// MoveTowards steps current toward target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Approach integrates horizontal speed toward axis*maxSpeed. It accelerates
// while the target is non-zero and decelerates otherwise; the change per step
// is clamped to rate*dt.
func Approach(speed, axis, maxSpeed, accel, decel, dt float64) float64 {
	target := axis * maxSpeed
	rate := decel
	if math.Abs(target) > 0.01 {
		rate = accel
	}
	return MoveTowards(speed, target, rate*dt)
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
