package device

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MironCo/mirgo-player/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeSource struct {
	keys    map[int32]bool
	mouse   mgl32.Vec2
	pad     bool
	axes    map[int32]float32
	buttons map[int32]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		keys:    make(map[int32]bool),
		axes:    make(map[int32]float32),
		buttons: make(map[int32]bool),
	}
}

func (f *fakeSource) KeyDown(key int32) bool              { return f.keys[key] }
func (f *fakeSource) MouseDelta() mgl32.Vec2              { return f.mouse }
func (f *fakeSource) GamepadAvailable() bool              { return f.pad }
func (f *fakeSource) GamepadAxis(axis int32) float32      { return f.axes[axis] }
func (f *fakeSource) GamepadButtonDown(button int32) bool { return f.buttons[button] }

func newTestPoller(t *testing.T, src Source) *Poller {
	t.Helper()
	p, err := NewPollerWithSource(DefaultBindings(), src)
	if err != nil {
		t.Fatalf("NewPollerWithSource: %v", err)
	}
	return p
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		expected int32
	}{
		{"W", rl.KeyW},
		{"e", rl.KeyE},
		{"7", rl.KeySeven},
		{"Space", rl.KeySpace},
		{"leftshift", rl.KeyLeftShift},
		{" LeftControl ", rl.KeyLeftControl},
		{"F1", rl.KeyF1},
		{"f12", rl.KeyF12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if err != nil {
				t.Fatalf("ParseKey(%q) returned %v", tt.name, err)
			}
			if got != tt.expected {
				t.Errorf("ParseKey(%q) = %d, expected %d", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "Hyper", "F13", "F1x", "ab"} {
		if _, err := ParseKey(name); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("ParseKey(%q): expected ErrUnknownKey, got %v", name, err)
		}
	}
}

func TestBindingsValidate(t *testing.T) {
	if err := DefaultBindings().Validate(); err != nil {
		t.Fatalf("Default bindings should validate, got %v", err)
	}

	b := DefaultBindings()
	b.Jump = "Meta"
	if err := b.Validate(); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey for bad jump key, got %v", err)
	}

	b = DefaultBindings()
	b.StickDeadzone = 1
	if err := b.Validate(); err == nil {
		t.Error("Expected deadzone of 1 to be rejected")
	}
}

func TestPollKeyboardMove(t *testing.T) {
	src := newFakeSource()
	src.keys[rl.KeyW] = true
	src.keys[rl.KeyD] = true
	p := newTestPoller(t, src)
	state := input.NewState()

	p.Poll(state)

	if state.Move() != (mgl32.Vec2{1, 1}) {
		t.Errorf("Expected move (1,1), got %v", state.Move())
	}

	src.keys[rl.KeyW] = false
	src.keys[rl.KeyD] = false
	src.keys[rl.KeyS] = true
	p.Poll(state)
	if state.Move() != (mgl32.Vec2{0, -1}) {
		t.Errorf("Expected move (0,-1), got %v", state.Move())
	}
}

func TestPollMouseLookScaled(t *testing.T) {
	src := newFakeSource()
	src.mouse = mgl32.Vec2{20, -10}
	p := newTestPoller(t, src)
	state := input.NewState()

	p.Poll(state)

	if state.Look() != (mgl32.Vec2{2, -1}) {
		t.Errorf("Expected look (2,-1), got %v", state.Look())
	}
	if !state.IsCurrentDeviceMouse() {
		t.Error("Expected keyboard and mouse scheme")
	}
}

func TestPollJumpReportsEdges(t *testing.T) {
	src := newFakeSource()
	src.keys[rl.KeySpace] = true
	p := newTestPoller(t, src)
	state := input.NewState()

	p.Poll(state)
	if !state.Jump() {
		t.Fatal("Expected press to set jump")
	}

	// The controller consumes the jump while airborne; holding the key must not re-arm it.
	state.SetJump(false)
	p.Poll(state)
	if state.Jump() {
		t.Error("Expected held key not to re-arm jump")
	}

	src.keys[rl.KeySpace] = false
	p.Poll(state)
	src.keys[rl.KeySpace] = true
	p.Poll(state)
	if !state.Jump() {
		t.Error("Expected a fresh press to set jump")
	}
}

func TestPollGamepad(t *testing.T) {
	src := newFakeSource()
	src.pad = true
	src.axes[rl.GamepadAxisLeftY] = -1
	src.axes[rl.GamepadAxisRightX] = 0.5
	src.buttons[rl.GamepadButtonRightFaceDown] = true
	p := newTestPoller(t, src)
	state := input.NewState()

	p.Poll(state)

	if state.Scheme() != input.SchemeGamepad {
		t.Fatalf("Expected gamepad scheme, got %q", state.Scheme())
	}
	if state.IsCurrentDeviceMouse() {
		t.Error("Gamepad scheme should not report mouse")
	}
	if state.Move() != (mgl32.Vec2{0, 1}) {
		t.Errorf("Expected stick up to move forward, got %v", state.Move())
	}
	if state.Look() != (mgl32.Vec2{60, 0}) {
		t.Errorf("Expected look (60,0), got %v", state.Look())
	}
	if !state.Jump() {
		t.Error("Expected face button to jump")
	}
}

func TestPollStickDeadzone(t *testing.T) {
	src := newFakeSource()
	src.pad = true
	src.axes[rl.GamepadAxisLeftX] = 0.1
	p := newTestPoller(t, src)
	state := input.NewState()

	p.Poll(state)

	if state.Move() != (mgl32.Vec2{}) {
		t.Errorf("Expected drift inside deadzone to be ignored, got %v", state.Move())
	}
	if state.Scheme() != input.SchemeKeyboardMouse {
		t.Errorf("Expected idle gamepad to keep the scheme, got %q", state.Scheme())
	}
}

func TestPollKeyboardWinsScheme(t *testing.T) {
	src := newFakeSource()
	src.pad = true
	src.axes[rl.GamepadAxisLeftX] = 1
	p := newTestPoller(t, src)
	state := input.NewState()
	p.Poll(state)

	src.mouse = mgl32.Vec2{1, 0}
	p.Poll(state)

	if state.Scheme() != input.SchemeKeyboardMouse {
		t.Errorf("Expected mouse activity to switch back, got %q", state.Scheme())
	}
	if state.Move() != (mgl32.Vec2{}) {
		t.Errorf("Expected keyboard move while on keyboard scheme, got %v", state.Move())
	}
}
