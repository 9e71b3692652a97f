package game

import (
	"fmt"

	"github.com/MironCo/mirgo-player/internal/config"
	"github.com/MironCo/mirgo-player/internal/debug"
	"github.com/MironCo/mirgo-player/internal/device"
	"github.com/MironCo/mirgo-player/internal/input"
	"github.com/MironCo/mirgo-player/internal/logger"
	"github.com/MironCo/mirgo-player/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// reloadDebounce groups the burst of writes an editor makes on save.
const reloadDebounce = 150 // ms

type Game struct {
	Config     *config.Config
	ConfigPath string
	Input      *input.State
	World      *world.World

	poller   *device.Poller
	renderer *world.Renderer
	hud      *debug.HUD
	watcher  *config.Watcher

	startScene int
	focused    bool
	setCursor  func(locked bool)
}

func New(cfg *config.Config, configPath string, startScene int) (*Game, error) {
	poller, err := device.NewPoller(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	in := input.NewState()
	g := &Game{
		Config:     cfg,
		ConfigPath: configPath,
		Input:      in,
		World:      world.New(cfg.Scenes, cfg.Player, in),
		poller:     poller,
		renderer:   world.NewRenderer(),
		hud:        debug.NewHUD(cfg.Debug.Gizmos, cfg.Debug.HUD),
		startScene: startScene,
		focused:    true,
		setCursor:  setCursorLocked,
	}
	return g, nil
}

func setCursorLocked(locked bool) {
	if locked {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (g *Game) Run() error {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(w.TargetFPS)
	rl.SetExitKey(rl.KeyNull)

	g.setCursor(g.Input.CursorLocked())

	if err := g.World.LoadScene(g.startScene); err != nil {
		return err
	}
	g.startWatcher()
	defer g.stopWatcher()

	for !rl.WindowShouldClose() {
		g.Update(ClampDelta(rl.GetFrameTime(), w.MaxFrameTime))
		g.Draw()
	}
	return nil
}

// ClampDelta caps a frame's delta time so a stall does not tunnel the player
// through geometry.
func ClampDelta(dt, max float32) float32 {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

func (g *Game) Update(deltaTime float32) {
	g.poller.Poll(g.Input)
	g.handleFocus(rl.IsWindowFocused())

	if rl.IsKeyPressed(rl.KeyF1) {
		g.hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.hud.ShowGizmos = !g.hud.ShowGizmos
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.Input.SetCursorLocked(!g.Input.CursorLocked())
		g.setCursor(g.Input.CursorLocked())
	}

	g.World.Update(deltaTime)

	if err := g.World.ApplyPendingScene(); err != nil {
		logger.L().WithError(err).Error("scene transition failed")
	}

	g.drainReloads()
}

// handleFocus reapplies the cursor lock whenever the window gains or loses focus.
func (g *Game) handleFocus(focused bool) {
	if focused == g.focused {
		return
	}
	g.focused = focused
	g.setCursor(g.Input.OnFocus(focused))
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	if g.World.Camera != nil {
		camera := g.World.Camera.GetRaylibCamera()
		g.renderer.Draw(g.World.Scene, camera, func() {
			if g.hud.ShowGizmos && g.World.Player != nil {
				debug.DrawProbes(g.World.Player.Probes())
			}
		})
	}

	if g.World.Player != nil {
		cfg, changed := g.hud.Draw(g.World.Player.State(), g.Input.Scheme(), g.World.PlayerConfig())
		if changed {
			g.World.SetPlayerConfig(cfg)
		}
	}

	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
	rl.EndDrawing()
}
