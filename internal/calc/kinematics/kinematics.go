// Package kinematics holds the projectile-motion helpers shared by the jump
// calculators. Heights are in inches, times in seconds.
package kinematics

import "math"

// Gravity is standard gravitational acceleration in ft/s².
const Gravity = 32.174

const inchesPerFoot = 12.0

// HangTime returns the total airborne time for a jump that raises the
// centre of mass by jumpIn inches. Zero or negative jumps have no flight.
func HangTime(jumpIn float64) float64 {
	if jumpIn <= 0 {
		return 0
	}
	h := jumpIn / inchesPerFoot
	return 2 * math.Sqrt(2*h/Gravity)
}

// JumpFromHangTime inverts HangTime: h = g·t²/8, converted to inches.
func JumpFromHangTime(hangTimeS float64) float64 {
	if hangTimeS <= 0 {
		return 0
	}
	return Gravity * hangTimeS * hangTimeS / 8 * inchesPerFoot
}

// TakeoffVelocity is the vertical launch speed in ft/s needed to reach jumpIn.
func TakeoffVelocity(jumpIn float64) float64 {
	if jumpIn <= 0 {
		return 0
	}
	return math.Sqrt(2 * Gravity * jumpIn / inchesPerFoot)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Floor0 clamps negative values to zero.
func Floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
