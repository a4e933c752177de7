// Package world holds the playable scene: terrain tiles, scattered
// scenery, the player and the lights.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/engine/lighting"
	"github.com/Faultbox/sannhet/internal/engine/terrain"
	"github.com/Faultbox/sannhet/internal/game/entity"
	"github.com/Faultbox/sannhet/internal/logger"
)

// Submitter accepts the scene each frame.
type Submitter interface {
	ProcessEntity(e *entity.Entity)
	ProcessTerrain(t *terrain.Terrain)
}

// World is the scene.
type World struct {
	Terrains []*terrain.Terrain
	Entities *entity.Manager
	Player   *entity.WorldObject
	Lights   []lighting.Light

	log *zap.Logger
}

// New creates an empty world.
func New() *World {
	return &World{
		Entities: entity.NewManager(),
		log:      logger.Named("world"),
	}
}

// AddTerrain adds a tile.
func (w *World) AddTerrain(t *terrain.Terrain) {
	w.Terrains = append(w.Terrains, t)
	w.log.Debug("terrain added", zap.Int("grid_x", t.GridX), zap.Int("grid_z", t.GridZ))
}

// AddLight adds a light. Only the first lighting.MaxLights reach the shaders.
func (w *World) AddLight(l lighting.Light) {
	if len(w.Lights) == lighting.MaxLights {
		w.log.Warn("light ignored, all slots taken", zap.Int("max", lighting.MaxLights))
	}
	w.Lights = append(w.Lights, l)
}

// TerrainAt returns the tile whose footprint contains (x, z), or nil.
func (w *World) TerrainAt(x, z float32) *terrain.Terrain {
	for _, t := range w.Terrains {
		if t.Contains(x, z) {
			return t
		}
	}
	return nil
}

// HeightAt returns the ground height at (x, z), 0 off the terrain.
func (w *World) HeightAt(x, z float32) float32 {
	if t := w.TerrainAt(x, z); t != nil {
		return t.HeightAt(x, z)
	}
	return 0
}

// Submit hands every tile and entity to r for this frame. The player is
// passed to the renderer separately.
func (w *World) Submit(r Submitter) {
	for _, t := range w.Terrains {
		r.ProcessTerrain(t)
	}
	for _, e := range w.Entities.All() {
		r.ProcessEntity(e)
	}
}
