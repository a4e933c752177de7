package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	smath "github.com/Faultbox/sannhet/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit vector
// pointing towards the sun. Longitude rotates around Y, latitude is the
// elevation above the horizon.
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	cosLat := smath.Cos(latitude)
	return mgl32.Vec3{
		cosLat * smath.Sin(longitude),
		smath.Sin(latitude),
		cosLat * smath.Cos(longitude),
	}
}

// Sun returns an unattenuated light placed distance units towards the sun.
func Sun(longitude, latitude, distance float32, colour mgl32.Vec3) Light {
	return New(SunDirection(longitude, latitude).Mul(distance), colour)
}
