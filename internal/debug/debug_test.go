package debug

import (
	"strings"
	"testing"

	"github.com/MironCo/mirgo-player/internal/input"
	"github.com/MironCo/mirgo-player/internal/movement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestProbeColor(t *testing.T) {
	tests := []struct {
		name     string
		probe    movement.Probe
		expected rl.Color
	}{
		{"grounded hit", movement.Probe{Kind: movement.ProbeGrounded, Hit: true}, rl.Green},
		{"grounded miss", movement.Probe{Kind: movement.ProbeGrounded}, rl.Red},
		{"covered hit", movement.Probe{Kind: movement.ProbeCovered, Hit: true}, rl.Red},
		{"covered clear", movement.Probe{Kind: movement.ProbeCovered}, rl.Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProbeColor(tt.probe)
			if got.R != tt.expected.R || got.G != tt.expected.G || got.B != tt.expected.B {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if got.A == 255 {
				t.Error("Expected a translucent color")
			}
		})
	}
}

func TestLines(t *testing.T) {
	s := movement.State{Speed: 3.25, TargetSpeed: 4, Grounded: true, Height: 2}
	lines := Lines(s, input.SchemeGamepad)

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"3.250 / 4.0", "Grounded   true", "Covered    false", "Gamepad"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected readout to contain %q, got:\n%s", want, joined)
		}
	}
}

func TestHiddenHUDKeepsConfig(t *testing.T) {
	h := NewHUD(true, false)
	cfg := movement.DefaultConfig()

	got, changed := h.Draw(movement.State{}, input.SchemeKeyboardMouse, cfg)
	if changed || got != cfg {
		t.Error("Expected a hidden HUD to leave the config alone")
	}

	h.Toggle()
	if !h.Visible {
		t.Error("Expected Toggle to show the HUD")
	}
}
