package game

import (
	"github.com/Faultbox/sannhet/internal/engine/camera"
	"github.com/Faultbox/sannhet/internal/engine/character"
	"github.com/Faultbox/sannhet/internal/engine/clock"
	"github.com/Faultbox/sannhet/internal/engine/controls"
	"github.com/Faultbox/sannhet/internal/engine/renderer"
	"github.com/Faultbox/sannhet/internal/game/entity"
	"github.com/Faultbox/sannhet/internal/game/world"
)

// Simulation is the per-frame game state, free of any window or GL context.
type Simulation struct {
	World      *world.World
	Player     *entity.WorldObject
	Camera     *camera.Rig
	Controller *character.Controller
}

// Step advances one frame: player movement, then animation, then the camera.
func (s *Simulation) Step(clk clock.FrameClock, in controls.State) {
	s.Controller.Update(s.Player, clk, in, s.World)
	if s.Player.Animation != nil {
		s.Player.Animation.Update(clk.Delta)
	}
	s.Camera.Move(in)
}

// Draw submits the world and renders it from the camera.
func (s *Simulation) Draw(r *renderer.MasterRenderer) {
	s.World.Submit(r)
	r.Render(s.World.Lights, s.Camera, s.Player)
}
