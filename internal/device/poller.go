package device

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/MironCo/mirgo-player/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Source is the raw device surface read once per frame.
type Source interface {
	KeyDown(key int32) bool
	MouseDelta() mgl32.Vec2
	GamepadAvailable() bool
	GamepadAxis(axis int32) float32
	GamepadButtonDown(button int32) bool
}

const gamepad = 0

type raylibSource struct{}

func (raylibSource) KeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (raylibSource) MouseDelta() mgl32.Vec2 {
	d := rl.GetMouseDelta()
	return mgl32.Vec2{d.X, d.Y}
}

func (raylibSource) GamepadAvailable() bool { return rl.IsGamepadAvailable(gamepad) }

func (raylibSource) GamepadAxis(axis int32) float32 { return rl.GetGamepadAxisMovement(gamepad, axis) }

func (raylibSource) GamepadButtonDown(button int32) bool { return rl.IsGamepadButtonDown(gamepad, button) }

type buttons struct {
	jump, sprint, crouch, interact bool
}

// Poller turns device state into input events. Buttons are reported on change only,
// so a held jump does not re-arm after the controller clears it.
type Poller struct {
	bindings Bindings
	keys     Keymap
	src      Source
	prev     buttons
}

// NewPoller reads the keyboard, mouse and first gamepad through raylib.
func NewPoller(b Bindings) (*Poller, error) {
	return NewPollerWithSource(b, raylibSource{})
}

func NewPollerWithSource(b Bindings, src Source) (*Poller, error) {
	keys, err := b.Resolve()
	if err != nil {
		return nil, err
	}
	return &Poller{bindings: b, keys: keys, src: src}, nil
}

func (p *Poller) Bindings() Bindings { return p.bindings }

// Poll samples every device and dispatches the frame's events to state. The scheme
// follows whichever device saw activity, keyboard and mouse first.
func (p *Poller) Poll(state *input.State) {
	kbMove := p.keyAxis()
	mouse := p.src.MouseDelta()
	kb := buttons{
		jump:     p.src.KeyDown(p.keys.Jump),
		sprint:   p.src.KeyDown(p.keys.Sprint),
		crouch:   p.src.KeyDown(p.keys.Crouch),
		interact: p.src.KeyDown(p.keys.Interact),
	}
	kbActive := kbMove != (mgl32.Vec2{}) || mouse != (mgl32.Vec2{}) || kb != (buttons{})

	var padMove, padLook mgl32.Vec2
	var pad buttons
	padActive := false
	if p.src.GamepadAvailable() {
		// raylib sticks report +Y down; stick flips it so +Y is forward.
		padMove = p.stick(rl.GamepadAxisLeftX, rl.GamepadAxisLeftY)
		padLook = p.stick(rl.GamepadAxisRightX, rl.GamepadAxisRightY)
		pad = buttons{
			jump:     p.src.GamepadButtonDown(rl.GamepadButtonRightFaceDown),
			sprint:   p.src.GamepadButtonDown(rl.GamepadButtonLeftThumb),
			crouch:   p.src.GamepadButtonDown(rl.GamepadButtonRightFaceRight),
			interact: p.src.GamepadButtonDown(rl.GamepadButtonRightFaceLeft),
		}
		padActive = padMove != (mgl32.Vec2{}) || padLook != (mgl32.Vec2{}) || pad != (buttons{})
	}

	scheme := state.Scheme()
	switch {
	case kbActive:
		scheme = input.SchemeKeyboardMouse
	case padActive:
		scheme = input.SchemeGamepad
	}

	move, look := kbMove, mouse.Mul(p.bindings.MouseSensitivity)
	if scheme == input.SchemeGamepad {
		move = padMove
		// Look follows the mouse convention, +Y pitches down. It is a rate here and
		// the controller scales it by the frame time.
		look = mgl32.Vec2{padLook.X(), -padLook.Y()}.Mul(p.bindings.GamepadLookSpeed)
	}

	state.Dispatch(input.Event{Action: input.ActionMove, Axis: move, Scheme: scheme})
	state.Dispatch(input.Event{Action: input.ActionLook, Axis: look, Scheme: scheme})

	now := buttons{
		jump:     kb.jump || pad.jump,
		sprint:   kb.sprint || pad.sprint,
		crouch:   kb.crouch || pad.crouch,
		interact: kb.interact || pad.interact,
	}
	p.dispatchButton(state, input.ActionJump, p.prev.jump, now.jump, scheme)
	p.dispatchButton(state, input.ActionSprint, p.prev.sprint, now.sprint, scheme)
	p.dispatchButton(state, input.ActionCrouch, p.prev.crouch, now.crouch, scheme)
	p.dispatchButton(state, input.ActionInteract, p.prev.interact, now.interact, scheme)
	p.prev = now
}

func (p *Poller) dispatchButton(state *input.State, action input.Action, was, is bool, scheme input.Scheme) {
	if was == is {
		return
	}
	state.Dispatch(input.Event{Action: action, Pressed: is, Scheme: scheme})
}

func (p *Poller) keyAxis() mgl32.Vec2 {
	var v mgl32.Vec2
	if p.src.KeyDown(p.keys.Right) {
		v[0]++
	}
	if p.src.KeyDown(p.keys.Left) {
		v[0]--
	}
	if p.src.KeyDown(p.keys.Forward) {
		v[1]++
	}
	if p.src.KeyDown(p.keys.Back) {
		v[1]--
	}
	// Diagonals are not normalized; the controller only uses the direction.
	return v
}

// stick reads a stick as (x, forward), zeroed inside the deadzone.
func (p *Poller) stick(axisX, axisY int32) mgl32.Vec2 {
	v := mgl32.Vec2{p.src.GamepadAxis(axisX), -p.src.GamepadAxis(axisY)}
	if v.Len() <= p.bindings.StickDeadzone {
		return mgl32.Vec2{}
	}
	return v
}
