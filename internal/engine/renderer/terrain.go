package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/terrain"
)

// Texture units of the terrain shader's samplers.
const (
	unitBackground = iota
	unitR
	unitG
	unitB
	unitBlendMap
)

// TerrainRenderer draws terrain tiles with blend-mapped textures.
type TerrainRenderer struct {
	program gfx.Program
	device  gfx.Device
}

// NewTerrainRenderer loads the projection and binds the samplers to their
// texture units.
func NewTerrainRenderer(program gfx.Program, device gfx.Device, projection mgl32.Mat4) *TerrainRenderer {
	r := &TerrainRenderer{program: program, device: device}
	program.Use()
	program.SetInt("backgroundTexture", unitBackground)
	program.SetInt("rTexture", unitR)
	program.SetInt("gTexture", unitG)
	program.SetInt("bTexture", unitB)
	program.SetInt("blendMap", unitBlendMap)
	program.SetMat4("projectionMatrix", projection)
	program.Unuse()
	return r
}

// SetProjection uploads a new projection matrix.
func (r *TerrainRenderer) SetProjection(projection mgl32.Mat4) {
	r.program.Use()
	r.program.SetMat4("projectionMatrix", projection)
	r.program.Unuse()
}

// Render draws every tile. The program must be in use.
func (r *TerrainRenderer) Render(terrains []*terrain.Terrain) {
	for _, t := range terrains {
		r.device.BindMesh(t.Model.Mesh, gfx.StaticAttribs)
		r.device.BindTexture(unitBackground, t.Textures.Background)
		r.device.BindTexture(unitR, t.Textures.R)
		r.device.BindTexture(unitG, t.Textures.G)
		r.device.BindTexture(unitB, t.Textures.B)
		r.device.BindTexture(unitBlendMap, t.BlendMap)
		r.program.SetFloat("shineDamper", 1)
		r.program.SetFloat("reflectivity", 0)

		r.program.SetMat4("transformationMatrix", mgl32.Translate3D(t.X, 0, t.Z))
		r.device.DrawIndexed(t.Model.VertexCount)

		r.device.UnbindMesh(gfx.StaticAttribs)
	}
}
