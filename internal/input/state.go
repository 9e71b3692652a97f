package input

import "github.com/go-gl/mathgl/mgl32"

// Scheme names the control scheme of the device that produced the latest input.
type Scheme string

const (
	SchemeKeyboardMouse Scheme = "Keyboard&Mouse"
	SchemeGamepad       Scheme = "Gamepad"
)

// State holds the latest known player input. Device callbacks write it whenever an
// event arrives; the movement controller reads it once per tick.
type State struct {
	move mgl32.Vec2
	look mgl32.Vec2

	jump     bool
	sprint   bool
	crouch   bool
	interact bool

	cursorLocked       bool
	cursorInputForLook bool

	scheme Scheme
}

// NewState returns an input state with the cursor locked and mouse look enabled.
func NewState() *State {
	return &State{
		cursorLocked:       true,
		cursorInputForLook: true,
		scheme:             SchemeKeyboardMouse,
	}
}

func (s *State) Move() mgl32.Vec2 { return s.move }
func (s *State) Look() mgl32.Vec2 { return s.look }
func (s *State) Jump() bool { return s.jump }
func (s *State) Sprint() bool { return s.sprint }
func (s *State) Crouch() bool { return s.crouch }
func (s *State) Interact() bool { return s.interact }
func (s *State) CursorLocked() bool { return s.cursorLocked }
func (s *State) CursorInputForLook() bool { return s.cursorInputForLook }
func (s *State) Scheme() Scheme { return s.scheme }

// IsCurrentDeviceMouse reports whether look input comes from a mouse. Mouse deltas are
// already per-frame, so the controller skips the delta-time scaling for them.
func (s *State) IsCurrentDeviceMouse() bool {
	return s.scheme == SchemeKeyboardMouse
}

func (s *State) SetJump(v bool) { s.jump = v }
func (s *State) SetSprint(v bool) { s.sprint = v }
func (s *State) SetCrouch(v bool) { s.crouch = v }
func (s *State) SetInteract(v bool) { s.interact = v }

func (s *State) SetCursorLocked(v bool) { s.cursorLocked = v }
func (s *State) SetCursorInputForLook(v bool) { s.cursorInputForLook = v }
func (s *State) SetScheme(scheme Scheme) { s.scheme = scheme }

func (s *State) OnMove(v mgl32.Vec2) {
	s.move = v
}

// OnLook stores the look axis unless cursor look input is disabled.
func (s *State) OnLook(v mgl32.Vec2) {
	if s.cursorInputForLook {
		s.look = v
	}
}

func (s *State) OnJump(pressed bool) { s.jump = pressed }
func (s *State) OnSprint(pressed bool) { s.sprint = pressed }
func (s *State) OnCrouch(pressed bool) { s.crouch = pressed }
func (s *State) OnInteract(pressed bool) { s.interact = pressed }

// OnFocus returns the cursor lock the host should apply after a focus change. The
// stored lock is reapplied on both gain and loss of focus.
func (s *State) OnFocus(_ bool) bool {
	return s.cursorLocked
}
