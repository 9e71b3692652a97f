package components

import (
	"github.com/MironCo/mirgo-player/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera places the camera at its object's world position. It looks along
// the CameraPivot on the same object when there is one, else along the object's yaw.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	var lookDir rl.Vector3
	if pivot := engine.GetComponent[*CameraPivot](g); pivot != nil {
		lookDir = pivot.LookDirection()
	} else {
		lookDir = engine.Transform{Rotation: g.WorldRotation()}.Forward()
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, lookDir),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
