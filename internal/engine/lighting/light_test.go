package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sannhet/internal/engine/gfx/gfxtest"
)

func TestNewHasNoAttenuation(t *testing.T) {
	l := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1})
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.Attenuation)
}

func TestLoadPadsUnusedSlots(t *testing.T) {
	p := gfxtest.NewProgram("entity", nil)
	lamp := NewPoint(mgl32.Vec3{10, 5, 10}, mgl32.Vec3{2, 0, 0}, mgl32.Vec3{1, 0.01, 0.002})

	Load(p, []Light{lamp})

	assert.Equal(t, lamp.Position, p.Values["lightPosition[0]"])
	assert.Equal(t, lamp.Attenuation, p.Values["attenuation[0]"])
	for _, slot := range []string{"1", "2", "3"} {
		assert.Equal(t, mgl32.Vec3{}, p.Values["lightColour["+slot+"]"])
		assert.Equal(t, NoAttenuation, p.Values["attenuation["+slot+"]"])
	}
}

func TestLoadTruncates(t *testing.T) {
	p := gfxtest.NewProgram("entity", nil)
	lights := make([]Light, MaxLights+2)
	for i := range lights {
		lights[i] = New(mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{1, 1, 1})
	}

	Load(p, lights)

	assert.Equal(t, mgl32.Vec3{3, 0, 0}, p.Values["lightPosition[3]"])
	assert.NotContains(t, p.Values, "lightPosition[4]")
	assert.Equal(t, 1, p.Sets["lightPosition[0]"])
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     mgl32.Vec3
	}{
		{"zenith", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"south horizon", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"east horizon", 90, 0, mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			assert.InDeltaSlice(t, tt.want[:], got[:], 1e-5, "got %v", got)
			assert.InDelta(t, 1, got.Len(), 1e-5)
		})
	}
}

func TestSun(t *testing.T) {
	s := Sun(0, 90, 1000, mgl32.Vec3{1, 1, 1})
	assert.InDeltaSlice(t, []float32{0, 1000, 0}, s.Position[:], 1e-2)
	assert.Equal(t, NoAttenuation, s.Attenuation)
}
