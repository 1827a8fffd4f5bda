// Package spatial holds the 3D positioning model for memories: points on
// the unit sphere and the normalization rule applied on every save.
package spatial

import (
	"math"
	"math/rand/v2"
)

// Vector is a point in 3D space.
type Vector struct {
	X float64
	Y float64
	Z float64
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize projects v onto the unit sphere. The zero vector has no
// direction and is returned unchanged. Applying Normalize twice yields
// the same result as applying it once.
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude > 0 {
		return Vector{
			X: v.X / magnitude,
			Y: v.Y / magnitude,
			Z: v.Z / magnitude,
		}
	}

	return v
}

// RandomOnSphere returns a random point on the unit sphere, used when a
// memory is created without an explicit position. The polar angle is
// drawn uniformly over [0, π], which clusters points toward the poles;
// the gallery frontend depends on this exact distribution, so it must
// not be replaced with an area-uniform sampler.
func RandomOnSphere() Vector {
	theta := rand.Float64() * 2 * math.Pi
	phi := rand.Float64() * math.Pi

	return Vector{
		X: math.Sin(phi) * math.Cos(theta),
		Y: math.Sin(phi) * math.Sin(theta),
		Z: math.Cos(phi),
	}
}
