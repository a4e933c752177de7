package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sannhet/internal/assets"
	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/clock"
	"github.com/Faultbox/sannhet/internal/engine/controls"
	"github.com/Faultbox/sannhet/internal/engine/gfx/gfxtest"
	"github.com/Faultbox/sannhet/internal/engine/lighting"
	"github.com/Faultbox/sannhet/internal/engine/renderer"
	"github.com/Faultbox/sannhet/internal/engine/shader"
	"github.com/Faultbox/sannhet/internal/engine/terrain"
	"github.com/Faultbox/sannhet/internal/engine/texture"
	"github.com/Faultbox/sannhet/internal/logger"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Terrain.Resolution = 17
	cfg.Terrain.TileSize = 100
	cfg.Terrain.Grid = [][2]int{{0, 0}, {1, 0}}
	cfg.World.Trees = 10
	cfg.World.Grass = 10
	cfg.World.Rocks = 10
	cfg.Player.Start = [3]float32{50, -1000, 50}
	return cfg
}

func buildTestScene(t *testing.T, cfg *config.Config, files *assets.Manager) (*Simulation, *gfxtest.Recorder) {
	t.Helper()
	rec := gfxtest.NewRecorder()
	loader := assets.NewLoader(rec, files, shader.Embedded())
	sim, err := BuildScene(cfg, loader)
	require.NoError(t, err)
	return sim, rec
}

func TestBuildSceneGenerated(t *testing.T) {
	sim, rec := buildTestScene(t, testConfig(), assets.NewManager())

	require.Len(t, sim.World.Terrains, 2)
	assert.NotZero(t, sim.World.Entities.Count())
	assert.Len(t, sim.World.Lights, 3)
	assert.LessOrEqual(t, len(sim.World.Lights), lighting.MaxLights)

	require.True(t, sim.Player.IsAnimated())
	assert.Same(t, sim.Controller.Idle, sim.Player.Animation.Animator.Clip())

	// Start height below ground is lifted onto the terrain.
	p := sim.Player.Position()
	assert.InDelta(t, sim.World.HeightAt(p.X(), p.Z()), p.Y(), 1e-4)

	// 2 tiles, 3 scenery models, 1 player.
	assert.Len(t, rec.Meshes, 6)
}

func TestBuildSceneMissingHeightMap(t *testing.T) {
	cfg := testConfig()
	cfg.Terrain.HeightMap = "missing.png"
	loader := assets.NewLoader(gfxtest.NewRecorder(), assets.NewManager(), shader.Embedded())

	_, err := BuildScene(cfg, loader)
	assert.ErrorIs(t, err, assets.ErrNotFound)
}

func TestBuildSceneHeightMapFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, terrain.GenerateHeightImage(9, 1, 2)))

	files := assets.NewManager()
	files.AddFS(fstest.MapFS{"hm.png": {Data: buf.Bytes()}})

	cfg := testConfig()
	cfg.Terrain.HeightMap = "hm.png"
	cfg.Terrain.Resolution = 0
	sim, _ := buildTestScene(t, cfg, files)

	require.Len(t, sim.World.Terrains, 2)
	assert.Equal(t, 9, sim.World.Terrains[0].Field.Size)
}

func TestSimulationStepAndDraw(t *testing.T) {
	sim, rec := buildTestScene(t, testConfig(), assets.NewManager())
	start := sim.Player.Position()

	sim.Step(clock.FrameClock{Delta: 0.5}, controls.Press(controls.KeyW))

	moved := sim.Player.Position()
	assert.InDelta(t, 10, moved.Z()-start.Z(), 1e-3)
	assert.InDelta(t, sim.World.HeightAt(moved.X(), moved.Z()), moved.Y(), 1e-4)
	assert.Same(t, sim.Controller.Run, sim.Player.Animation.Animator.Clip())
	assert.InDelta(t, 0.5, sim.Player.Animation.Animator.Time(), 1e-5)
	assert.InDelta(t, moved.Z()-sim.Camera.Position().Z(), 50*0.9396926, 1e-2)

	programs := renderer.Programs{
		Entity:   gfxtest.NewProgram("entity", rec),
		Animated: gfxtest.NewProgram("animated", rec),
		Terrain:  gfxtest.NewProgram("terrain", rec),
	}
	master := renderer.New(rec, programs, renderer.Projection(config.Default().Graphics, 4, 3), mgl32.Vec3{})
	rec.Reset()

	sim.Draw(master)

	// One draw per entity, per tile and for the player.
	want := sim.World.Entities.Count() + len(sim.World.Terrains) + 1
	assert.Equal(t, want, rec.Count("DrawIndexed"))
	assert.LessOrEqual(t, rec.Count("BindMesh"), 3+len(sim.World.Terrains)+1)
}

func TestGrassAtlas(t *testing.T) {
	img := grassAtlas(4)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.NotEqual(t, img.RGBAAt(0, 0), img.RGBAAt(3, 0))
	assert.NotEqual(t, img.RGBAAt(0, 0), img.RGBAAt(0, 3))
	assert.Equal(t, img.RGBAAt(0, 0), img.RGBAAt(1, 1))
	assert.True(t, texture.HasTransparency(img))
}

func TestSceneryTransparencyFollowsTexture(t *testing.T) {
	newBuilder := func(files *assets.Manager) *sceneBuilder {
		loader := assets.NewLoader(gfxtest.NewRecorder(), files, shader.Embedded())
		return &sceneBuilder{cfg: testConfig(), loader: loader, log: logger.Named("scene")}
	}

	s, err := newBuilder(assets.NewManager()).scenery()
	require.NoError(t, err)
	assert.True(t, s.Grass.Texture.HasTransparency)
	assert.False(t, s.Tree.Texture.HasTransparency)
	assert.False(t, s.Rock.Texture.HasTransparency)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, texture.Solid(4, color.RGBA{G: 200, A: 255})))
	files := assets.NewManager()
	files.AddFS(fstest.MapFS{"grassAtlas.png": {Data: buf.Bytes()}})

	s, err = newBuilder(files).scenery()
	require.NoError(t, err)
	assert.False(t, s.Grass.Texture.HasTransparency)
	assert.Equal(t, 2, s.Grass.Texture.NumberOfRows)
}
