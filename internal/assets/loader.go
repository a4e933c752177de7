package assets

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/model"
	"github.com/Faultbox/sannhet/internal/engine/shader"
	"github.com/Faultbox/sannhet/internal/engine/texture"
	"github.com/Faultbox/sannhet/internal/logger"
)

// Loader turns asset files and mesh data into GPU resources and remembers
// every resource it created so CleanUp can release them.
type Loader struct {
	device  gfx.Device
	files   *Manager
	shaders fs.FS
	log     *zap.Logger

	meshes   []gfx.MeshHandle
	textures []gfx.TextureHandle
	fallback gfx.TextureHandle
}

// NewLoader creates a loader uploading through device. Shader sources are
// read from shaders (see shader.Sources).
func NewLoader(device gfx.Device, files *Manager, shaders fs.FS) *Loader {
	return &Loader{
		device:  device,
		files:   files,
		shaders: shaders,
		log:     logger.Named("assets"),
	}
}

// LoadMesh uploads mesh data. The returned model's vertex count is the
// number of indices.
func (l *Loader) LoadMesh(data gfx.MeshData) (model.RawModel, error) {
	h, err := l.device.UploadMesh(data)
	if err != nil {
		return model.RawModel{}, fmt.Errorf("uploading mesh: %w", err)
	}
	l.meshes = append(l.meshes, h)
	return model.RawModel{Mesh: h, VertexCount: data.VertexCount()}, nil
}

// LoadImage uploads an in-memory image as a texture.
func (l *Loader) LoadImage(img image.Image, opts gfx.TextureOptions) (gfx.TextureHandle, error) {
	h, err := l.device.UploadTexture(texture.ToRGBA(img), opts)
	if err != nil {
		return 0, fmt.Errorf("uploading texture: %w", err)
	}
	l.textures = append(l.textures, h)
	return h, nil
}

// DecodeImage reads and decodes an image asset.
func (l *Loader) DecodeImage(name string) (image.Image, error) {
	data, err := l.files.Load(name)
	if err != nil {
		return nil, err
	}
	img, _, err := texture.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// LoadTexture reads, decodes and uploads an image asset.
func (l *Loader) LoadTexture(name string, opts gfx.TextureOptions) (gfx.TextureHandle, error) {
	img, err := l.DecodeImage(name)
	if err != nil {
		return 0, err
	}
	h, err := l.LoadImage(img, opts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	l.log.Debug("texture loaded", zap.String("name", name), zap.Uint32("handle", uint32(h)))
	return h, nil
}

// LoadTextureOrFallback loads a texture, substituting FallbackTexture with a
// warning when the asset is missing or unreadable.
func (l *Loader) LoadTextureOrFallback(name string, opts gfx.TextureOptions) (gfx.TextureHandle, error) {
	h, err := l.LoadTexture(name, opts)
	if err == nil {
		return h, nil
	}
	l.log.Warn("using fallback texture", zap.String("name", name), zap.Error(err))
	return l.FallbackTexture()
}

// FallbackTexture returns a shared checkerboard texture, creating it on first use.
func (l *Loader) FallbackTexture() (gfx.TextureHandle, error) {
	if l.fallback != 0 {
		return l.fallback, nil
	}
	img := texture.Checker(8, 4, color.RGBA{R: 255, B: 255, A: 255}, color.RGBA{A: 255})
	h, err := l.LoadImage(img, gfx.TextureOptions{Nearest: true})
	if err != nil {
		return 0, err
	}
	l.fallback = h
	return h, nil
}

// LoadShaderSource reads a vertex/fragment pair by program name.
func (l *Loader) LoadShaderSource(name string) (shader.Source, error) {
	return shader.LoadSource(l.shaders, name)
}

// CleanUp releases every mesh and texture created by this loader.
func (l *Loader) CleanUp() {
	for _, h := range l.meshes {
		l.device.DeleteMesh(h)
	}
	for _, h := range l.textures {
		l.device.DeleteTexture(h)
	}
	l.log.Debug("released GPU resources",
		zap.Int("meshes", len(l.meshes)),
		zap.Int("textures", len(l.textures)),
	)
	l.meshes = nil
	l.textures = nil
	l.fallback = 0
}
