// Package terrain builds height-mapped terrain tiles and answers ground
// height queries against them.
package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	smath "github.com/Faultbox/sannhet/pkg/math"
)

// MaxPixelColour is the number of distinct 24-bit RGB values.
const MaxPixelColour = 256 * 256 * 256

// NormalSlopeScale is the Y component of the unnormalized vertex normal.
// Larger values flatten the shading of slopes.
const NormalSlopeScale = 2.0

var (
	// ErrNotSquare is returned for height images whose width differs from their height.
	ErrNotSquare = errors.New("terrain: height map is not square")
	// ErrTooSmall is returned for height images with fewer than 2 pixels per side.
	ErrTooSmall = errors.New("terrain: height map needs at least 2x2 pixels")
)

// DecodeHeight maps a pixel to a height in [-maxHeight, maxHeight).
// The pixel is read as a packed signed 32-bit ARGB value, so an opaque black
// pixel is the lowest point and an opaque white one the highest.
func DecodeHeight(c color.Color, maxHeight float32) float32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	argb := int32(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))

	const half = MaxPixelColour / 2
	h := (float64(argb) + half) / half
	return float32(h) * maxHeight
}

// HeightField is the N×N height matrix of one tile, indexed [x][z].
type HeightField struct {
	Size     int
	TileSize float32
	OriginX  float32
	OriginZ  float32
	heights  [][]float32
}

// NewHeightField wraps an existing [x][z] matrix. Every column must have len(heights) entries.
func NewHeightField(heights [][]float32, tileSize float32) (*HeightField, error) {
	n := len(heights)
	if n < 2 {
		return nil, ErrTooSmall
	}
	for x := range heights {
		if len(heights[x]) != n {
			return nil, fmt.Errorf("%w: column %d has %d entries", ErrNotSquare, x, len(heights[x]))
		}
	}
	return &HeightField{Size: n, TileSize: tileSize, heights: heights}, nil
}

// Height returns the stored height at grid point (x, z), or 0 off the grid.
func (f *HeightField) Height(x, z int) float32 {
	if x < 0 || z < 0 || x >= f.Size || z >= f.Size {
		return 0
	}
	return f.heights[x][z]
}

// CellSize returns the world-space width of one grid cell.
func (f *HeightField) CellSize() float32 {
	return f.TileSize / float32(f.Size-1)
}

// Contains reports whether the world position lies within the tile footprint.
func (f *HeightField) Contains(worldX, worldZ float32) bool {
	lx, lz := worldX-f.OriginX, worldZ-f.OriginZ
	return lx >= 0 && lz >= 0 && lx <= f.TileSize && lz <= f.TileSize
}

// SampleHeight returns the terrain height at a world position by
// interpolating over the triangle of the grid cell that contains it.
// Positions outside the tile return 0. The far edge of the tile belongs to
// the last cell.
func (f *HeightField) SampleHeight(worldX, worldZ float32) float32 {
	if !f.Contains(worldX, worldZ) {
		return 0
	}
	lx, lz := worldX-f.OriginX, worldZ-f.OriginZ
	cell := f.CellSize()

	gx := f.cellIndex(lx, cell)
	gz := f.cellIndex(lz, cell)

	xCoord := (lx - float32(gx)*cell) / cell
	zCoord := (lz - float32(gz)*cell) / cell
	pos := mgl32.Vec2{xCoord, zCoord}

	h := f.heights
	if xCoord <= 1-zCoord {
		return smath.Barycentric(
			mgl32.Vec3{0, h[gx][gz], 0},
			mgl32.Vec3{1, h[gx+1][gz], 0},
			mgl32.Vec3{0, h[gx][gz+1], 1},
			pos)
	}
	return smath.Barycentric(
		mgl32.Vec3{1, h[gx+1][gz], 0},
		mgl32.Vec3{1, h[gx+1][gz+1], 1},
		mgl32.Vec3{0, h[gx][gz+1], 1},
		pos)
}

func (f *HeightField) cellIndex(local, cell float32) int {
	i := int(gomath.Floor(float64(local / cell)))
	if i > f.Size-2 {
		i = f.Size - 2
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Build generates the tile mesh and height matrix from a square height image.
// Vertex (j, i) lies at (j/(N-1)*tileSize, H[j][i], i/(N-1)*tileSize).
func Build(img image.Image, tileSize, maxHeight float32) (gfx.MeshData, *HeightField, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return gfx.MeshData{}, nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, b.Dx(), b.Dy())
	}
	n := b.Dx()
	if n < 2 {
		return gfx.MeshData{}, nil, ErrTooSmall
	}

	heightAt := func(x, z int) float32 {
		if x < 0 || z < 0 || x >= n || z >= n {
			return 0
		}
		return DecodeHeight(img.At(b.Min.X+x, b.Min.Y+z), maxHeight)
	}

	heights := make([][]float32, n)
	for x := range heights {
		heights[x] = make([]float32, n)
	}

	count := n * n
	data := gfx.MeshData{
		Positions: make([]float32, 0, count*3),
		TexCoords: make([]float32, 0, count*2),
		Normals:   make([]float32, 0, count*3),
		Indices:   make([]uint32, 0, 6*(n-1)*(n-1)),
	}

	last := float32(n - 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h := heightAt(j, i)
			heights[j][i] = h

			u, v := float32(j)/last, float32(i)/last
			data.Positions = append(data.Positions, u*tileSize, h, v*tileSize)
			data.TexCoords = append(data.TexCoords, u, v)

			normal := mgl32.Vec3{
				heightAt(j-1, i) - heightAt(j+1, i),
				NormalSlopeScale,
				heightAt(j, i-1) - heightAt(j, i+1),
			}.Normalize()
			data.Normals = append(data.Normals, normal[:]...)
		}
	}

	for gz := 0; gz < n-1; gz++ {
		for gx := 0; gx < n-1; gx++ {
			topLeft := uint32(gz*n + gx)
			topRight := topLeft + 1
			bottomLeft := uint32((gz+1)*n + gx)
			bottomRight := bottomLeft + 1
			data.Indices = append(data.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight)
		}
	}

	return data, &HeightField{Size: n, TileSize: tileSize, heights: heights}, nil
}
