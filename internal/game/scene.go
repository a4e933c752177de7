package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/assets"
	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/animation"
	"github.com/Faultbox/sannhet/internal/engine/camera"
	"github.com/Faultbox/sannhet/internal/engine/character"
	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/lighting"
	"github.com/Faultbox/sannhet/internal/engine/model"
	"github.com/Faultbox/sannhet/internal/engine/terrain"
	"github.com/Faultbox/sannhet/internal/engine/texture"
	"github.com/Faultbox/sannhet/internal/game/entity"
	"github.com/Faultbox/sannhet/internal/game/world"
	"github.com/Faultbox/sannhet/internal/logger"
)

const (
	defaultHeightMapSize = 257
	heightMapOctaves     = 4

	runCycleSeconds  = 0.8
	idleCycleSeconds = 2.5

	generatedTextureSize = 16
)

// Texture options shared by terrain and scenery.
var mipmapped = gfx.TextureOptions{Mipmaps: true, LODBias: -0.4}

type sceneBuilder struct {
	cfg    *config.Config
	loader *assets.Loader
	log    *zap.Logger
}

// BuildScene loads or generates everything the demo needs: terrain tiles,
// scattered scenery, the animated player, lights and the follow camera.
// A height map that cannot be read is an error; missing textures are not.
func BuildScene(cfg *config.Config, loader *assets.Loader) (*Simulation, error) {
	b := &sceneBuilder{cfg: cfg, loader: loader, log: logger.Named("scene")}

	w := world.New()
	if err := b.terrains(w); err != nil {
		return nil, err
	}

	s, err := b.scenery()
	if err != nil {
		return nil, err
	}
	w.Populate(s, cfg.World)

	player, run, idle, err := b.player(w)
	if err != nil {
		return nil, err
	}
	w.Player = player

	start := player.Position()
	w.AddLight(lighting.Sun(200, 35, 7000, mgl32.Vec3{0.6, 0.6, 0.6}))
	w.AddLight(lighting.NewPoint(start.Add(mgl32.Vec3{30, 15, 30}), mgl32.Vec3{2, 0.6, 0.2}, mgl32.Vec3{1, 0.01, 0.002}))
	w.AddLight(lighting.NewPoint(start.Add(mgl32.Vec3{-40, 15, 60}), mgl32.Vec3{0.2, 0.6, 2}, mgl32.Vec3{1, 0.01, 0.002}))

	b.log.Info("scene built",
		zap.Int("terrains", len(w.Terrains)),
		zap.Int("entities", w.Entities.Count()),
		zap.Int("lights", len(w.Lights)),
	)

	return &Simulation{
		World:      w,
		Player:     player,
		Camera:     camera.New(player, cfg.Camera),
		Controller: character.New(character.ConfigFrom(cfg.Player), run, idle),
	}, nil
}

// heightImage reads the configured height map or generates one.
func (b *sceneBuilder) heightImage() (image.Image, error) {
	tc := b.cfg.Terrain
	if tc.HeightMap == "" {
		size := tc.Resolution
		if size <= 0 {
			size = defaultHeightMapSize
		}
		b.log.Info("generating height map", zap.Int("size", size), zap.Int64("seed", tc.Seed))
		return terrain.GenerateHeightImage(size, tc.Seed, heightMapOctaves), nil
	}

	img, err := b.loader.DecodeImage(tc.HeightMap)
	if err != nil {
		return nil, fmt.Errorf("reading height map: %w", err)
	}
	if tc.Resolution > 0 && img.Bounds().Dx() != tc.Resolution {
		img = texture.ResampleNearest(img, tc.Resolution)
	}
	return img, nil
}

func (b *sceneBuilder) terrains(w *world.World) error {
	img, err := b.heightImage()
	if err != nil {
		return err
	}

	tex := b.cfg.Terrain.Textures
	var pack terrain.TexturePack
	for _, t := range []struct {
		name string
		dst  *gfx.TextureHandle
	}{
		{tex.Background, &pack.Background},
		{tex.R, &pack.R},
		{tex.G, &pack.G},
		{tex.B, &pack.B},
	} {
		if *t.dst, err = b.loader.LoadTextureOrFallback(t.name, mipmapped); err != nil {
			return err
		}
	}
	blend, err := b.loader.LoadTextureOrFallback(tex.BlendMap, gfx.TextureOptions{Clamp: true})
	if err != nil {
		return err
	}

	opts := terrain.Options{TileSize: b.cfg.Terrain.TileSize, MaxHeight: b.cfg.Terrain.MaxHeight}
	for _, g := range b.cfg.Terrain.Grid {
		t, err := terrain.New(g[0], g[1], img, b.loader, pack, blend, opts)
		if err != nil {
			return err
		}
		w.AddTerrain(t)
	}
	return nil
}

// texture loads name from the assets, or uploads the generated stand-in
// when there is no such file. It also reports whether the image has any
// transparent pixels.
func (b *sceneBuilder) texture(name string, generated *image.RGBA) (gfx.TextureHandle, bool, error) {
	img := generated
	if decoded, err := b.loader.DecodeImage(name); err == nil {
		img = texture.ToRGBA(decoded)
	} else {
		b.log.Debug("using generated texture", zap.String("name", name))
	}
	h, err := b.loader.LoadImage(img, mipmapped)
	return h, texture.HasTransparency(img), err
}

func (b *sceneBuilder) textured(name string, mesh *model.Mesh, textureName string, generated *image.RGBA) (*model.TexturedModel, error) {
	raw, err := b.loader.LoadMesh(mesh.Data())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tex, transparent, err := b.texture(textureName, generated)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	mt := model.NewModelTexture(tex)
	mt.HasTransparency = transparent
	return &model.TexturedModel{Name: name, Raw: raw, Texture: mt}, nil
}

func (b *sceneBuilder) scenery() (world.Scenery, error) {
	tree, err := b.textured("tree", model.Tree(1, 4, 6, 10), "tree.png",
		texture.Solid(generatedTextureSize, color.RGBA{R: 40, G: 110, B: 40, A: 255}))
	if err != nil {
		return world.Scenery{}, err
	}

	grass, err := b.textured("grass", model.Grass(3, 2), "grassAtlas.png", grassAtlas(generatedTextureSize))
	if err != nil {
		return world.Scenery{}, err
	}
	grass.Texture.NumberOfRows = 2
	grass.Texture.UseFakeLighting = true

	rock, err := b.textured("rock", model.Pyramid(3, 2), "rock.png",
		texture.Checker(generatedTextureSize, 4, color.RGBA{R: 120, G: 120, B: 125, A: 255}, color.RGBA{R: 95, G: 95, B: 100, A: 255}))
	if err != nil {
		return world.Scenery{}, err
	}
	rock.Texture.ShineDamper = 10
	rock.Texture.Reflectivity = 0.5

	return world.Scenery{Tree: tree, Grass: grass, Rock: rock}, nil
}

// grassAtlas returns a 2×2 atlas of grass tints. The upper half of every
// other column in each cell is cut out to leave gaps between blades.
func grassAtlas(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	tints := [4]color.RGBA{
		{R: 70, G: 150, B: 50, A: 255},
		{R: 100, G: 170, B: 60, A: 255},
		{R: 140, G: 160, B: 60, A: 255},
		{R: 60, G: 120, B: 70, A: 255},
	}
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := 0
			if x >= half {
				i++
			}
			if y >= half {
				i += 2
			}
			if (x%half)%2 == 1 && y%half < half/2 {
				continue
			}
			img.SetRGBA(x, y, tints[i])
		}
	}
	return img
}

func (b *sceneBuilder) player(w *world.World) (*entity.WorldObject, *animation.Animation, *animation.Animation, error) {
	run, err := animation.NewRunCycle(runCycleSeconds)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("run cycle: %w", err)
	}
	idle, err := animation.NewIdleCycle(idleCycleSeconds)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("idle cycle: %w", err)
	}

	raw, err := b.loader.LoadMesh(animation.FigureMesh().Data())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("player mesh: %w", err)
	}
	tex, _, err := b.texture("player.png", texture.Solid(generatedTextureSize, color.RGBA{R: 200, G: 80, B: 60, A: 255}))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("player texture: %w", err)
	}
	material := model.NewModelTexture(tex)
	material.ShineDamper = 10
	material.Reflectivity = 0.3

	anim, err := animation.NewAnimatedModel(raw, material, animation.FigureSkeleton())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("player skeleton: %w", err)
	}
	anim.Play(idle)
	anim.Update(0)

	pc := b.cfg.Player
	pos := mgl32.Vec3{pc.Start[0], pc.Start[1], pc.Start[2]}
	if ground := w.HeightAt(pos.X(), pos.Z()); pos.Y() < ground {
		pos[1] = ground
	}
	e := entity.New(nil, pos, 0, 0, 0, pc.Scale)
	return entity.NewWorldObject(*e, anim), run, idle, nil
}
