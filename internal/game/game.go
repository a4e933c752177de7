// Package game wires the window, renderer and simulation together and runs
// the frame loop.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/assets"
	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/clock"
	"github.com/Faultbox/sannhet/internal/engine/gfx/opengl"
	"github.com/Faultbox/sannhet/internal/engine/input"
	"github.com/Faultbox/sannhet/internal/engine/renderer"
	"github.com/Faultbox/sannhet/internal/engine/shader"
	"github.com/Faultbox/sannhet/internal/engine/window"
	"github.com/Faultbox/sannhet/internal/logger"
)

// Title is the window title.
const Title = "Sannhet"

// Game is the main game instance.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.MasterRenderer
	input    *input.Input
	sim      *Simulation

	closers []func()
	closed  bool
}

// New opens the window and builds the scene. On error everything acquired
// so far is released.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{cfg: cfg}
	if err := g.init(); err != nil {
		g.Close()
		return nil, err
	}

	logger.Info("game initialized successfully")
	return g, nil
}

func (g *Game) init() error {
	cfg := g.cfg
	var err error

	// Window first, the GL context must exist before any GL call.
	g.window, err = window.New(window.Config{
		Title:         Title,
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		RelativeMouse: true,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	g.onClose(g.window.Close)

	device, err := opengl.New()
	if err != nil {
		return fmt.Errorf("creating device: %w", err)
	}

	files := assets.NewManager()
	for _, dir := range cfg.Data.AssetDirs {
		if err := files.AddDir(dir); err != nil {
			logger.Warn("skipping asset dir", zap.String("dir", dir), zap.Error(err))
		}
	}
	g.onClose(files.Close)

	loader := assets.NewLoader(device, files, shader.Sources(cfg.Data.ShaderDir))
	g.onClose(loader.CleanUp)

	programs, err := buildPrograms(loader)
	if err != nil {
		return err
	}

	width, height := g.window.Size()
	device.Viewport(width, height)
	sky := mgl32.Vec3{cfg.Graphics.SkyColour[0], cfg.Graphics.SkyColour[1], cfg.Graphics.SkyColour[2]}
	g.renderer = renderer.New(device, programs, renderer.Projection(cfg.Graphics, width, height), sky)
	g.onClose(g.renderer.CleanUp)

	g.sim, err = BuildScene(cfg, loader)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	g.input = input.New()
	return nil
}

// buildPrograms compiles the three shader programs. Programs compiled
// before a failure are deleted.
func buildPrograms(loader *assets.Loader) (renderer.Programs, error) {
	var built []*shader.Program
	compile := func(name string) (*shader.Program, error) {
		src, err := loader.LoadShaderSource(name)
		if err != nil {
			return nil, err
		}
		p, err := shader.Compile(name, src.Vertex, src.Fragment, shader.Attributes(name))
		if err != nil {
			return nil, err
		}
		built = append(built, p)
		return p, nil
	}

	var programs renderer.Programs
	for _, s := range []struct {
		name string
		set  func(*shader.Program)
	}{
		{shader.Entity, func(p *shader.Program) { programs.Entity = p }},
		{shader.Animated, func(p *shader.Program) { programs.Animated = p }},
		{shader.Terrain, func(p *shader.Program) { programs.Terrain = p }},
	} {
		p, err := compile(s.name)
		if err != nil {
			for _, b := range built {
				b.Delete()
			}
			return renderer.Programs{}, fmt.Errorf("building %s shader: %w", s.name, err)
		}
		s.set(p)
	}
	return programs, nil
}

// onClose registers a cleanup to run, in reverse order, from Close.
func (g *Game) onClose(f func()) {
	g.closers = append(g.closers, f)
}

// Run runs the frame loop until the window is closed or ESC is pressed.
func (g *Game) Run() error {
	var timer clock.Timer
	limiter := clock.NewLimiter(g.cfg.Graphics.FPSLimit)

	frameCount := 0
	fpsTimer := time.Now()
	clk := timer.Tick(time.Now())

	logger.Info("starting game loop", zap.Int("fps_limit", g.cfg.Graphics.FPSLimit))

	for {
		if g.input.Update() {
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(g.cfg.Graphics, event.Width, event.Height)
			}
		}

		g.sim.Step(clk, g.input.State())
		g.sim.Draw(g.renderer)
		g.window.SwapBuffers()

		limiter.Wait(time.Now())
		clk = timer.Tick(time.Now())

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", clk.Delta*1000))
			g.window.SetTitle(fmt.Sprintf("%s - %d fps", Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("game loop finished")
	return nil
}

// Close releases every resource in reverse order of acquisition. It is
// safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	logger.Info("closing game")
	for i := len(g.closers) - 1; i >= 0; i-- {
		g.closers[i]()
	}
	g.closers = nil
}
