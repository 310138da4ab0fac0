package geom

import "math"

// Angles are compass-style degrees: 0 points up (decreasing Y), 90 points
// towards +X, and the angle grows clockwise. All values are kept in [0, 360).

// StartAngle is the angle of the first tile of every new branch.
const StartAngle = 90.0

// NormalizeDegrees folds any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod can hand back -0 or a value that rounds up to 360.
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}

// QuantizeStep converts a pointer displacement into a run of unit steps.
// steps is floor(|d|); callers only call it once |d| >= 1. The angle is
// shared by every step of the run.
func QuantizeStep(d Vec) (steps int, deg float64) {
	steps = int(math.Floor(d.Len()))
	deg = NormalizeDegrees(math.Atan2(d.Y, d.X)*180/math.Pi + 90)
	return steps, deg
}

// StepDelta is the inverse of QuantizeStep: the displacement of count unit
// steps taken at deg.
func StepDelta(deg float64, count int) Vec {
	rad := deg * math.Pi / 180
	n := float64(count)
	return Vec{X: math.Sin(rad) * n, Y: -math.Cos(rad) * n}
}

// EngineAngle converts an angle to the level engine's convention, where 0
// points towards +X and angles grow counter-clockwise.
func EngineAngle(deg float64) float64 {
	return math.Mod(720+90-deg, 360)
}

// IsRightAngle reports whether deg is a multiple of 90.
func IsRightAngle(deg float64) bool {
	return math.Mod(deg, 90) == 0
}
