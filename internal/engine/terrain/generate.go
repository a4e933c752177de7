package terrain

import (
	"image"
	"image/color"

	"github.com/ojrac/opensimplex-go"
)

// Noise parameters for generated height maps.
const (
	noiseScale  = 64.0
	lacunarity  = 2.0
	persistence = 0.5
)

// EncodeHeight encodes a height fraction in [-1, 1) as an opaque pixel that
// DecodeHeight maps back to fraction*maxHeight.
func EncodeHeight(fraction float64) color.RGBA {
	v := int64((fraction + 1) * MaxPixelColour / 2)
	if v < 0 {
		v = 0
	}
	if v > MaxPixelColour-1 {
		v = MaxPixelColour - 1
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// GenerateHeightImage renders a size×size fractal simplex height map.
// The same seed always yields the same image.
func GenerateHeightImage(size int, seed int64, octaves int) *image.RGBA {
	if octaves < 1 {
		octaves = 1
	}
	noise := opensimplex.New(seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Normalise so the sum of all octave amplitudes stays within [-1, 1].
	var total float64
	for i, amp := 0, 1.0; i < octaves; i, amp = i+1, amp*persistence {
		total += amp
	}

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			var h float64
			freq, amp := 1/noiseScale, 1.0
			for i := 0; i < octaves; i++ {
				h += noise.Eval2(float64(x)*freq, float64(z)*freq) * amp
				freq *= lacunarity
				amp *= persistence
			}
			img.SetRGBA(x, z, EncodeHeight(h/total))
		}
	}
	return img
}
