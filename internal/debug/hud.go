package debug

import (
	"fmt"

	"github.com/MironCo/mirgo-player/internal/input"
	"github.com/MironCo/mirgo-player/internal/movement"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudX       = 10
	hudY       = 10
	hudWidth   = 260
	lineHeight = 20
)

// HUD is the on-screen movement readout with toggles for itself and the probe gizmos.
type HUD struct {
	ShowGizmos bool
	Visible    bool
}

func NewHUD(showGizmos, visible bool) *HUD {
	return &HUD{ShowGizmos: showGizmos, Visible: visible}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	h.Visible = !h.Visible
}

// Lines formats the readout rows.
func Lines(s movement.State, scheme input.Scheme) []string {
	return []string{
		fmt.Sprintf("Speed      %.3f / %.1f", s.Speed, s.TargetSpeed),
		fmt.Sprintf("Vertical   %.2f", s.VerticalVelocity),
		fmt.Sprintf("Pitch      %.1f", s.Pitch),
		fmt.Sprintf("Height     %.2f", s.Height),
		fmt.Sprintf("Grounded   %t", s.Grounded),
		fmt.Sprintf("Covered    %t", s.Covered),
		fmt.Sprintf("Scheme     %s", scheme),
	}
}

// Draw renders the panel and returns cfg with any slider edits applied. changed is
// true when the caller should push the new config to the controller.
func (h *HUD) Draw(s movement.State, scheme input.Scheme, cfg movement.Config) (movement.Config, bool) {
	if !h.Visible {
		return cfg, false
	}

	lines := Lines(s, scheme)
	height := float32(len(lines)*lineHeight + 3*lineHeight + 16)
	rl.DrawRectangleRec(rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: height}, rl.Fade(rl.Black, 0.6))

	y := float32(hudY + 8)
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: hudX + 8, Y: y, Width: hudWidth - 16, Height: lineHeight}, line)
		y += lineHeight
	}

	h.ShowGizmos = gui.CheckBox(rl.Rectangle{X: hudX + 8, Y: y + 4, Width: 12, Height: 12}, "Probe gizmos", h.ShowGizmos)
	y += lineHeight

	gui.Label(rl.Rectangle{X: hudX + 8, Y: y, Width: 120, Height: lineHeight}, "Speed change rate")
	y += lineHeight
	rate := gui.Slider(rl.Rectangle{X: hudX + 8, Y: y, Width: hudWidth - 60, Height: 14}, "", fmt.Sprintf("%.1f", cfg.SpeedChangeRate), cfg.SpeedChangeRate, 1, 30)

	if rate == cfg.SpeedChangeRate {
		return cfg, false
	}
	cfg.SpeedChangeRate = rate
	return cfg, true
}
