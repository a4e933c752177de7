package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encode(t *testing.T, img image.Image, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	src := Solid(4, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	tests := []struct {
		name   string
		enc    func(*bytes.Buffer, image.Image) error
		format string
	}{
		{"png", func(w *bytes.Buffer, m image.Image) error { return png.Encode(w, m) }, "png"},
		{"bmp", func(w *bytes.Buffer, m image.Image) error { return bmp.Encode(w, m) }, "bmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := Decode(encode(t, src, tt.enc))
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, 4, img.Bounds().Dx())

			r, g, b, _ := img.At(1, 1).RGBA()
			assert.Equal(t, uint32(10), r>>8)
			assert.Equal(t, uint32(20), g>>8)
			assert.Equal(t, uint32(30), b>>8)
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(2, 2, 5, 5))
	gray.SetGray(2, 2, color.Gray{Y: 200})

	rgba := ToRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 3, 3), rgba.Bounds())
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, rgba.RGBAAt(0, 0))

	same := Solid(2, color.RGBA{A: 255})
	assert.Same(t, same, ToRGBA(same))
}

func TestResampleNearestKeepsColours(t *testing.T) {
	a := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}
	b := color.RGBA{R: 0xfe, G: 0x01, B: 0x80, A: 255}
	dst := ResampleNearest(Checker(4, 2, a, b), 8)
	require.Equal(t, image.Rect(0, 0, 8, 8), dst.Bounds())
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := dst.RGBAAt(x, y)
			assert.True(t, c == a || c == b, "blended pixel %v at %d,%d", c, x, y)
		}
	}
	assert.Equal(t, a, dst.RGBAAt(0, 0))
	assert.Equal(t, b, dst.RGBAAt(7, 0))
}

func TestChecker(t *testing.T) {
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}
	img := Checker(4, 2, a, b)
	assert.Equal(t, a, img.RGBAAt(0, 0))
	assert.Equal(t, b, img.RGBAAt(2, 0))
	assert.Equal(t, a, img.RGBAAt(3, 3))
}

func TestHasTransparency(t *testing.T) {
	img := Solid(2, color.RGBA{A: 255})
	assert.False(t, HasTransparency(img))
	img.SetRGBA(1, 1, color.RGBA{})
	assert.True(t, HasTransparency(img))
}
