// Package renderer draws the scene: batched static entities, the animated
// player and the terrain tiles.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/lighting"
	"github.com/Faultbox/sannhet/internal/engine/terrain"
	"github.com/Faultbox/sannhet/internal/game/entity"
	"github.com/Faultbox/sannhet/internal/logger"
)

// Programs holds one linked shader per renderer.
type Programs struct {
	Entity   gfx.Program
	Animated gfx.Program
	Terrain  gfx.Program
}

// View supplies the camera transform.
type View interface {
	ViewMatrix() mgl32.Mat4
}

// Projection returns the perspective matrix for a viewport of width×height.
func Projection(cfg config.GraphicsConfig, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(cfg.FOV), aspect, cfg.NearPlane, cfg.FarPlane)
}

// MasterRenderer collects what to draw each frame and renders it in one pass.
type MasterRenderer struct {
	device   gfx.Device
	programs Programs
	sky      mgl32.Vec3
	log      *zap.Logger

	entities *EntityRenderer
	animated *AnimatedRenderer
	terrains *TerrainRenderer

	batcher     *Batcher
	terrainList []*terrain.Terrain
	closed      bool
}

// New creates the renderers and loads the projection into every program.
func New(device gfx.Device, programs Programs, projection mgl32.Mat4, sky mgl32.Vec3) *MasterRenderer {
	r := &MasterRenderer{
		device:   device,
		programs: programs,
		sky:      sky,
		log:      logger.Named("renderer"),
		entities: NewEntityRenderer(programs.Entity, device, projection),
		animated: NewAnimatedRenderer(programs.Animated, device, projection),
		terrains: NewTerrainRenderer(programs.Terrain, device, projection),
		batcher:  NewBatcher(),
	}
	device.SetCulling(true)
	r.log.Info("renderer initialized", zap.Float32("sky_r", sky.X()), zap.Float32("sky_g", sky.Y()), zap.Float32("sky_b", sky.Z()))
	return r
}

// ProcessEntity queues e for the next Render.
func (r *MasterRenderer) ProcessEntity(e *entity.Entity) {
	r.batcher.Submit(e)
}

// ProcessTerrain queues t for the next Render.
func (r *MasterRenderer) ProcessTerrain(t *terrain.Terrain) {
	if t != nil {
		r.terrainList = append(r.terrainList, t)
	}
}

// Pending returns the number of queued entities and terrain tiles.
func (r *MasterRenderer) Pending() (entities, terrains int) {
	return r.batcher.Len(), len(r.terrainList)
}

// Prepare clears the frame to the sky colour with depth testing on.
func (r *MasterRenderer) Prepare() {
	r.device.SetDepthTest(true)
	r.device.Clear(r.sky.X(), r.sky.Y(), r.sky.Z())
}

// Render draws everything queued since the last call, plus subject, then
// forgets the queue. A subject without an animated model is drawn as a
// static entity.
func (r *MasterRenderer) Render(lights []lighting.Light, view View, subject *entity.WorldObject) {
	r.Prepare()
	viewMatrix := view.ViewMatrix()

	if subject != nil && !subject.IsAnimated() {
		r.batcher.Submit(&subject.Entity)
	}

	r.begin(r.programs.Entity, lights, viewMatrix)
	r.entities.Render(r.batcher)
	r.programs.Entity.Unuse()

	if subject != nil && subject.IsAnimated() {
		r.begin(r.programs.Animated, lights, viewMatrix)
		r.animated.Render(subject.Animation, subject.Transform())
		r.programs.Animated.Unuse()
	}

	r.begin(r.programs.Terrain, lights, viewMatrix)
	r.terrains.Render(r.terrainList)
	r.programs.Terrain.Unuse()

	r.terrainList = r.terrainList[:0]
	r.batcher.Reset()
}

// begin activates p and loads the per-frame scene uniforms.
func (r *MasterRenderer) begin(p gfx.Program, lights []lighting.Light, view mgl32.Mat4) {
	p.Use()
	p.SetVec3("skyColour", r.sky)
	lighting.Load(p, lights)
	p.SetMat4("viewMatrix", view)
}

// Resize updates the viewport and every program's projection.
func (r *MasterRenderer) Resize(cfg config.GraphicsConfig, width, height int) {
	r.device.Viewport(width, height)
	projection := Projection(cfg, width, height)
	r.entities.SetProjection(projection)
	r.animated.SetProjection(projection)
	r.terrains.SetProjection(projection)
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// CleanUp deletes the shader programs. Calling it again does nothing.
func (r *MasterRenderer) CleanUp() {
	if r.closed {
		return
	}
	r.closed = true
	r.log.Info("closing renderer")
	r.programs.Entity.Delete()
	r.programs.Animated.Delete()
	r.programs.Terrain.Delete()
}
