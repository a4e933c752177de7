package world

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/model"
	"github.com/Faultbox/sannhet/internal/game/entity"
)

// Perlin parameters of the scenery density field.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3

	// densityScale is the world distance covered by one unit of noise input.
	densityScale = 150.0

	// maxAttemptsPerEntity bounds rejection sampling on sparse density fields.
	maxAttemptsPerEntity = 20
)

// Scenery holds the models scattered across the terrain. Nil models are skipped.
type Scenery struct {
	Tree  *model.TexturedModel
	Grass *model.TexturedModel
	Rock  *model.TexturedModel
}

type placement struct {
	name     string
	model    *model.TexturedModel
	count    int
	minScale float32
	maxScale float32
	accept   func(density float64) bool
}

// Populate scatters scenery over the terrain tiles. Trees grow where the
// perlin density is above cfg.DensityThreshold, grass in the clearings
// below it, rocks anywhere. Placement is deterministic for a given seed.
// It returns the number of entities placed.
func (w *World) Populate(s Scenery, cfg config.WorldConfig) int {
	if len(w.Terrains) == 0 {
		return 0
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	placements := []placement{
		{"tree", s.Tree, cfg.Trees, 3, 5, func(d float64) bool { return d > cfg.DensityThreshold }},
		{"grass", s.Grass, cfg.Grass, 0.8, 1.4, func(d float64) bool { return d <= cfg.DensityThreshold }},
		{"rock", s.Rock, cfg.Rocks, 0.5, 1.5, func(float64) bool { return true }},
	}

	placed := 0
	for _, p := range placements {
		if p.model == nil || p.count <= 0 {
			continue
		}
		n := 0
		for attempt := 0; n < p.count && attempt < p.count*maxAttemptsPerEntity; attempt++ {
			t := w.Terrains[rng.Intn(len(w.Terrains))]
			x := t.X + rng.Float32()*t.Field.TileSize
			z := t.Z + rng.Float32()*t.Field.TileSize
			if !p.accept(noise.Noise2D(float64(x)/densityScale, float64(z)/densityScale)) {
				continue
			}

			scale := p.minScale + rng.Float32()*(p.maxScale-p.minScale)
			e := entity.New(p.model, mgl32.Vec3{x, w.HeightAt(x, z), z}, 0, rng.Float32()*360, 0, scale)
			if tex := p.model.Texture; tex != nil && tex.Rows() > 1 {
				rows := tex.Rows()
				e.TextureIndex = rng.Intn(rows * rows)
			}
			w.Entities.Add(e)
			n++
		}
		if n < p.count {
			w.log.Warn("density too sparse, placed fewer entities",
				zap.String("kind", p.name), zap.Int("wanted", p.count), zap.Int("placed", n))
		}
		placed += n
	}

	w.log.Info("world populated", zap.Int("entities", placed), zap.Int64("seed", cfg.Seed))
	return placed
}
