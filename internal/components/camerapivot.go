package components

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/MironCo/mirgo-player/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraPivot is the look target on a child of the player. It carries the camera pitch
// as its local X rotation while the parent carries the yaw. Positive pitch looks down.
type CameraPivot struct {
	engine.BaseComponent
}

func NewCameraPivot() *CameraPivot {
	return &CameraPivot{}
}

func (p *CameraPivot) SetLocalPitch(degrees float32) {
	p.GetGameObject().Transform.Rotation.X = degrees
}

func (p *CameraPivot) Pitch() float32 {
	return p.GetGameObject().Transform.Rotation.X
}

// LookDirection returns the unit view direction from the pivot's world yaw and pitch.
func (p *CameraPivot) LookDirection() rl.Vector3 {
	g := p.GetGameObject()
	rot := g.WorldRotation()
	forward := engine.Transform{Rotation: rl.Vector3{Y: rot.Y}}.Forward()

	s, c := math32.Sincos(mgl32.DegToRad(p.Pitch()))
	return rl.Vector3{
		X: forward.X * c,
		Y: -s,
		Z: forward.Z * c,
	}
}
