package game

import (
	"fmt"
	"time"

	"sandbox3d/internal/assets"
	"sandbox3d/internal/camera"
	"sandbox3d/internal/config"
	"sandbox3d/internal/engine"
	"sandbox3d/internal/input"
	"sandbox3d/internal/platform"
	"sandbox3d/internal/render"
	"sandbox3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// targetReach is how far the crosshair looks for a block to report in the HUD.
const targetReach = 8

type Game struct {
	cfg      config.Config
	bindings platform.Bindings

	World  *world.World
	Camera *camera.Camera
	Player *world.Player
	HUD    render.HUD

	window   *platform.Window
	cursor   camera.Cursor
	library  *assets.Library
	renderer *render.Renderer

	state input.State
	edges input.Edge

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds everything that does not need a window: the world, the camera and the
// player body.
func New(cfg config.Config) (*Game, error) {
	bindings, err := platform.ParseBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	w, err := world.Generate(cfg.World)
	if err != nil {
		return nil, err
	}

	cam := camera.New(cfg.Camera.Position, cfg.Camera.Speed, cfg.Camera.Sensitivity)
	cam.BoostMultiplier = cfg.Camera.BoostMultiplier
	cam.SetProjection(cfg.Camera.FOVDegrees, cfg.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	cam.UpdateView()

	player, err := world.NewPlayer(cam.Position(), cfg.Player)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		bindings: bindings,
		World:    w,
		Camera:   cam,
		Player:   player,
	}, nil
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	rl.SetTraceLogLevel(platform.TraceLevel(g.cfg.LogLevel))

	g.window = platform.OpenWindow(g.cfg.Window)
	defer g.window.Close()
	g.cursor = g.window
	g.Camera.SetAspect(g.window.Aspect())

	// GPU resources need the context, so they are created after the window.
	g.library = assets.NewLibrary()
	defer g.library.Close()

	textures, err := g.library.Textures(g.cfg.World.Textures, g.cfg.World.TextureSize)
	if err != nil {
		return err
	}
	cubemap, err := g.library.Cubemap(g.cfg.World.Skybox, g.cfg.World.SkyboxFaceSize)
	if err != nil {
		return err
	}

	g.renderer, err = render.NewRenderer(textures, cubemap)
	if err != nil {
		return err
	}
	defer g.renderer.Close()

	sampler := platform.NewSampler(g.bindings)
	clock := engine.NewFrameClock(engine.MonotonicTicks())

	for !g.window.ShouldClose() {
		if g.window.PollResize() {
			g.Camera.SetAspect(g.window.Aspect())
		}
		g.Update(sampler.Sample(), clock.Tick())
		g.Draw()
	}
	return nil
}

// Update advances one frame: toggles, camera, then the collision check that may pull
// the camera back to where the body stopped.
func (g *Game) Update(state input.State, dt float32) {
	updateStart := time.Now()
	g.state = state

	for _, action := range g.edges.Pressed(state) {
		if action == input.Debug {
			g.HUD.Toggle()
		}
	}

	g.Camera.ProcessInput(state, dt, g.cursor)
	eye := g.Player.Move(g.Camera.Position(), g.World.Obstacles, dt)
	g.Camera.SetPosition(eye)
	g.Camera.UpdateView()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	drawStart := time.Now()
	g.renderer.Draw(g.World, g.Camera, g.state.Down(input.Wireframe))
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw(g.hudInfo(), &g.renderer.Culling, &g.Camera.Sensitivity)
	rl.EndDrawing()
}

func (g *Game) hudInfo() render.HUDInfo {
	info := render.HUDInfo{
		FPS:         rl.GetFPS(),
		Position:    g.Camera.Position(),
		Orientation: g.Camera.Orientation(),
		Speed:       g.Camera.Speed(),
		Mode:        g.Camera.Mode().String(),
		Blocked:     g.Player.Blocked(),
		Rejects:     g.Player.Rejects(),
		Target:      g.Target(),
		UpdateMs:    g.updateMs,
		DrawMs:      g.drawMs,
	}
	if g.renderer != nil {
		info.Stats = g.renderer.Stats
	}
	return info
}

// Target describes the block under the crosshair, or "" when there is none in reach.
func (g *Game) Target() string {
	hit, ok := g.World.Obstacles.Raycast(g.Camera.Position(), g.Camera.Orientation(), targetReach)
	if !ok {
		return ""
	}
	if hit.Index < len(g.World.Blocks) {
		b := g.World.Blocks[hit.Index]
		if b.Box.Equal(g.World.Obstacles.Boxes()[hit.Index]) {
			return fmt.Sprintf("block %v tex %d at %.1f", b.Cell, b.Texture, hit.Distance)
		}
	}
	return fmt.Sprintf("obstacle %d at %.1f", hit.Index, hit.Distance)
}
