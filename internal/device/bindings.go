package device

import (
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownKey = errors.New("unknown key")

// Bindings maps player actions to keyboard keys by name and tunes the analog devices.
type Bindings struct {
	Forward  string `yaml:"forward"`
	Back     string `yaml:"back"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Jump     string `yaml:"jump"`
	Sprint   string `yaml:"sprint"`
	Crouch   string `yaml:"crouch"`
	Interact string `yaml:"interact"`

	// Degrees of look per pixel of mouse travel.
	MouseSensitivity float32 `yaml:"mouseSensitivity"`
	// Degrees per second at full right-stick deflection.
	GamepadLookSpeed float32 `yaml:"gamepadLookSpeed"`
	StickDeadzone    float32 `yaml:"stickDeadzone"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:  "W",
		Back:     "S",
		Left:     "A",
		Right:    "D",
		Jump:     "Space",
		Sprint:   "LeftShift",
		Crouch:   "LeftControl",
		Interact: "E",

		MouseSensitivity: 0.1,
		GamepadLookSpeed: 120,
		StickDeadzone:    0.2,
	}
}

// Keymap is Bindings with every key name resolved to a raylib key code.
type Keymap struct {
	Forward, Back, Left, Right int32
	Jump, Sprint, Crouch       int32
	Interact                   int32
}

// Resolve parses every key name.
func (b Bindings) Resolve() (Keymap, error) {
	var km Keymap
	fields := []struct {
		action string
		name   string
		dst    *int32
	}{
		{"forward", b.Forward, &km.Forward},
		{"back", b.Back, &km.Back},
		{"left", b.Left, &km.Left},
		{"right", b.Right, &km.Right},
		{"jump", b.Jump, &km.Jump},
		{"sprint", b.Sprint, &km.Sprint},
		{"crouch", b.Crouch, &km.Crouch},
		{"interact", b.Interact, &km.Interact},
	}
	for _, f := range fields {
		key, err := ParseKey(f.name)
		if err != nil {
			return Keymap{}, fmt.Errorf("binding %s: %w", f.action, err)
		}
		*f.dst = key
	}
	return km, nil
}

func (b Bindings) Validate() error {
	if _, err := b.Resolve(); err != nil {
		return err
	}
	if b.MouseSensitivity < 0 || b.GamepadLookSpeed < 0 {
		return fmt.Errorf("look speeds must not be negative, got mouse=%g gamepad=%g", b.MouseSensitivity, b.GamepadLookSpeed)
	}
	if b.StickDeadzone < 0 || b.StickDeadzone >= 1 {
		return fmt.Errorf("stick deadzone must be in [0, 1), got %g", b.StickDeadzone)
	}
	return nil
}

var namedKeys = map[string]int32{
	"space":        rl.KeySpace,
	"enter":        rl.KeyEnter,
	"tab":          rl.KeyTab,
	"escape":       rl.KeyEscape,
	"backspace":    rl.KeyBackspace,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftalt":      rl.KeyLeftAlt,
	"rightalt":     rl.KeyRightAlt,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
}

// ParseKey maps a key name to its raylib key code. Names are case-insensitive: single
// letters and digits, F1 to F12, and the named keys above ("LeftShift", "Space", ...).
func ParseKey(name string) (int32, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if key, ok := namedKeys[n]; ok {
		return key, nil
	}
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), nil
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	var f int
	if _, err := fmt.Sscanf(n, "f%d", &f); err == nil && f >= 1 && f <= 12 && n == fmt.Sprintf("f%d", f) {
		return rl.KeyF1 + int32(f-1), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
