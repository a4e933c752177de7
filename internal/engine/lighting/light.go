// Package lighting provides the scene lights uploaded to every shader.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
)

// MaxLights is the number of light slots every shader declares.
const MaxLights = 4

// NoAttenuation keeps a light at full strength regardless of distance.
var NoAttenuation = mgl32.Vec3{1, 0, 0}

// Light is a point light. Attenuation holds the constant, linear and
// quadratic falloff factors.
type Light struct {
	Position    mgl32.Vec3
	Colour      mgl32.Vec3
	Attenuation mgl32.Vec3
}

// New returns a light without distance falloff.
func New(position, colour mgl32.Vec3) Light {
	return Light{Position: position, Colour: colour, Attenuation: NoAttenuation}
}

// NewPoint returns a light with the given falloff.
func NewPoint(position, colour, attenuation mgl32.Vec3) Light {
	return Light{Position: position, Colour: colour, Attenuation: attenuation}
}

// Load writes up to MaxLights lights into u. Unused slots get a black light
// so stale values from earlier frames never contribute.
func Load(u gfx.Uniforms, lights []Light) {
	for i := 0; i < MaxLights; i++ {
		l := Light{Attenuation: NoAttenuation}
		if i < len(lights) {
			l = lights[i]
		}
		u.SetVec3(fmt.Sprintf("lightPosition[%d]", i), l.Position)
		u.SetVec3(fmt.Sprintf("lightColour[%d]", i), l.Colour)
		u.SetVec3(fmt.Sprintf("attenuation[%d]", i), l.Attenuation)
	}
}
