// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// SunDirection converts longitude/latitude angles to a light direction
// vector. Longitude is rotation around the Y axis in degrees, latitude
// is elevation above the horizon (0-90). Returns a normalized direction
// pointing towards the sun.
func SunDirection(longitude, latitude float32) [3]float32 {
	lonRad := float64(longitude) * math.Pi / 180.0
	latRad := float64(latitude) * math.Pi / 180.0

	x := float32(math.Cos(latRad) * math.Sin(lonRad))
	y := float32(math.Sin(latRad))
	z := float32(math.Cos(latRad) * math.Cos(lonRad))

	return [3]float32{x, y, z}
}

// SunPosition returns a point along the sun direction at the given
// distance, for shaders that light from a positional source.
func SunPosition(longitude, latitude, distance float32) [3]float32 {
	d := SunDirection(longitude, latitude)
	return [3]float32{d[0] * distance, d[1] * distance, d[2] * distance}
}
