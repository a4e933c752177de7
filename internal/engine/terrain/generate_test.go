package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHeightImageDeterministic(t *testing.T) {
	a := GenerateHeightImage(16, 123, 4)
	b := GenerateHeightImage(16, 123, 4)
	c := GenerateHeightImage(16, 124, 4)

	assert.Equal(t, 16, a.Bounds().Dx())
	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestGenerateHeightImageRange(t *testing.T) {
	img := GenerateHeightImage(32, 1, 0)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := img.RGBAAt(x, y)
			assert.Equal(t, uint8(255), c.A)
			h := DecodeHeight(c, 40)
			assert.GreaterOrEqual(t, h, float32(-40))
			assert.Less(t, h, float32(40))
		}
	}
}
