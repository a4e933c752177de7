package terrain

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/gfx/gfxtest"
	"github.com/Faultbox/sannhet/internal/engine/model"
)

type recorderLoader struct{ rec *gfxtest.Recorder }

func (l recorderLoader) LoadMesh(data gfx.MeshData) (model.RawModel, error) {
	h, err := l.rec.UploadMesh(data)
	if err != nil {
		return model.RawModel{}, err
	}
	return model.RawModel{Mesh: h, VertexCount: data.VertexCount()}, nil
}

func TestNewTile(t *testing.T) {
	rec := gfxtest.NewRecorder()
	img := uniformImage(3, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	pack := TexturePack{Background: 1, R: 2, G: 3, B: 4}

	tile, err := New(1, -1, img, recorderLoader{rec}, pack, 5, Options{TileSize: 100, MaxHeight: 40})
	require.NoError(t, err)

	assert.Equal(t, float32(100), tile.X)
	assert.Equal(t, float32(-100), tile.Z)
	assert.Equal(t, int32(24), tile.Model.VertexCount)
	assert.Contains(t, rec.Meshes, tile.Model.Mesh)
	assert.Equal(t, pack, tile.Textures)
	assert.Equal(t, gfx.TextureHandle(5), tile.BlendMap)

	assert.True(t, tile.Contains(150, -50))
	assert.False(t, tile.Contains(50, -50))
	assert.InDelta(t, 40, tile.HeightAt(150, -50), 1e-3)
	assert.Zero(t, tile.HeightAt(50, 50))
}

func TestNewTileBadImage(t *testing.T) {
	rec := gfxtest.NewRecorder()
	_, err := New(0, 0, image.NewRGBA(image.Rect(0, 0, 3, 2)), recorderLoader{rec}, TexturePack{}, 0, Options{TileSize: 100, MaxHeight: 40})
	assert.ErrorIs(t, err, ErrNotSquare)
	assert.Empty(t, rec.Meshes)
}
