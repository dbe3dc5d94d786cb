package angle

import "math"

const π = math.Pi

// Radians converts degrees to radians
func Radians(a float64) float64 {
	return a * π / 180.0
}

// Degrees converts radians to degrees
func Degrees(a float64) float64 {
	return a * 180.0 / π
}

// Wrap360 folds an angle into [0, 360)
func Wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// -1e-17 + 360 rounds to 360
	if d >= 360.0 {
		d -= 360.0
	}
	return d
}

// Wrap180 folds an angle into (-180, 180]
func Wrap180(d float64) float64 {
	if -180.0 < d && d <= 180.0 {
		return d
	}
	d = Wrap360(d)
	if d > 180.0 {
		d -= 360.0
	}
	return d
}

// Positive shifts a signed angle by one turn when it is negative.
func Positive(d float64) float64 {
	if d < 0 {
		d += 360
	}
	return d
}

// Cartesian maps a compass bearing (0 = north, clockwise) to a cartesian
// angle (0 = east, counter-clockwise), in radians.
func Cartesian(bearing float64) float64 {
	return Radians(90.0 - bearing)
}

// Bearing is the inverse of Cartesian, folded into [0, 360).
func Bearing(θ float64) float64 {
	return Wrap360(90.0 - Degrees(θ))
}

// Twa returns the signed angle, in (-180, 180], from a heading to a wind
// direction
func Twa(heading, wind float64) float64 {
	return Wrap180(wind - heading)
}

// Direction returns the direction, in [0, 360), lying twa degrees off heading
func Direction(heading, twa float64) float64 {
	return Wrap360(heading + twa)
}
