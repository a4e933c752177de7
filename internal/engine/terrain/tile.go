package terrain

import (
	"fmt"
	"image"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/model"
)

// TexturePack holds the four textures a blend map mixes between.
type TexturePack struct {
	Background gfx.TextureHandle
	R          gfx.TextureHandle
	G          gfx.TextureHandle
	B          gfx.TextureHandle
}

// MeshLoader uploads mesh data.
type MeshLoader interface {
	LoadMesh(data gfx.MeshData) (model.RawModel, error)
}

// Options sizes a terrain tile.
type Options struct {
	TileSize  float32
	MaxHeight float32
}

// Terrain is one square tile of the world grid.
type Terrain struct {
	GridX, GridZ int
	X, Z         float32
	Model        model.RawModel
	Textures     TexturePack
	BlendMap     gfx.TextureHandle
	Field        *HeightField
}

// New builds the tile at grid coordinates (gridX, gridZ) from a height image
// and uploads its mesh. The tile's origin is (gridX*TileSize, gridZ*TileSize).
func New(gridX, gridZ int, img image.Image, loader MeshLoader, pack TexturePack, blendMap gfx.TextureHandle, opts Options) (*Terrain, error) {
	data, field, err := Build(img, opts.TileSize, opts.MaxHeight)
	if err != nil {
		return nil, fmt.Errorf("building terrain (%d,%d): %w", gridX, gridZ, err)
	}

	raw, err := loader.LoadMesh(data)
	if err != nil {
		return nil, fmt.Errorf("uploading terrain (%d,%d): %w", gridX, gridZ, err)
	}

	x, z := float32(gridX)*opts.TileSize, float32(gridZ)*opts.TileSize
	field.OriginX, field.OriginZ = x, z

	return &Terrain{
		GridX:    gridX,
		GridZ:    gridZ,
		X:        x,
		Z:        z,
		Model:    raw,
		Textures: pack,
		BlendMap: blendMap,
		Field:    field,
	}, nil
}

// HeightAt samples the ground height at a world position, 0 outside the tile.
func (t *Terrain) HeightAt(worldX, worldZ float32) float32 {
	return t.Field.SampleHeight(worldX, worldZ)
}

// Contains reports whether the world position lies on this tile.
func (t *Terrain) Contains(worldX, worldZ float32) bool {
	return t.Field.Contains(worldX, worldZ)
}
