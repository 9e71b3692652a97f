package input

import "github.com/go-gl/mathgl/mgl32"

type Action int

const (
	ActionMove Action = iota
	ActionLook
	ActionJump
	ActionSprint
	ActionCrouch
	ActionInteract
)

var actionNames = map[Action]string{
	ActionMove:     "Move",
	ActionLook:     "Look",
	ActionJump:     "Jump",
	ActionSprint:   "Sprint",
	ActionCrouch:   "Crouch",
	ActionInteract: "Interact",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Event is one device report. Axis is used by Move and Look, Pressed by the buttons.
type Event struct {
	Action  Action
	Pressed bool
	Axis    mgl32.Vec2
	Scheme  Scheme
}

// Dispatch routes a device event to its handler. The event's scheme, when set,
// becomes the current control scheme.
func (s *State) Dispatch(e Event) {
	if e.Scheme != "" {
		s.scheme = e.Scheme
	}

	switch e.Action {
	case ActionMove:
		s.OnMove(e.Axis)
	case ActionLook:
		s.OnLook(e.Axis)
	case ActionJump:
		s.OnJump(e.Pressed)
	case ActionSprint:
		s.OnSprint(e.Pressed)
	case ActionCrouch:
		s.OnCrouch(e.Pressed)
	case ActionInteract:
		s.OnInteract(e.Pressed)
	}
}
